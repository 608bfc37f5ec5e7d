package tui

import (
	"strconv"
	"strings"

	"cynllun-cli/internal/leads"
	"cynllun-cli/internal/plan"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := msg.Width - 8
		if w > 70 {
			w = 70
		}
		if w > 10 {
			m.contextInput.SetWidth(w)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case activitiesDoneMsg:
		// A newer request supersedes this one; drop the stale result.
		if msg.seq != m.genSeq {
			return m, nil
		}
		m.generating = false
		if msg.err != nil {
			m.genErr = genErrText(msg.err)
			return m, nil
		}
		m.genErr = ""
		m.enhancement = msg.text
		return m, nil

	case leadSavedMsg:
		if msg.err != nil {
			m.regErr = "Could not save details: " + msg.err.Error()
			return m, nil
		}
		m.registered = true
		m.showRegister = false
		m.regErr = ""
		pending := m.pending
		m.pending = actionNone
		switch pending {
		case actionGenerate:
			return m.startGenerate()
		case actionExport:
			return m, m.exportCmd()
		}
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.status = "Export failed: " + msg.err.Error()
		} else {
			m.status = "Saved " + msg.path
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m wizardModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showRegister {
		return m.updateRegister(msg)
	}

	if m.showDetail {
		switch key {
		case "esc", "d", "enter", "q":
			m.showDetail = false
		}
		return m, nil
	}

	if m.confirmRestart {
		switch key {
		case "y", "enter":
			m.restart()
		case "esc", "n":
			m.confirmRestart = false
		}
		return m, nil
	}

	// Step navigation and restart work regardless of what's focused.
	switch key {
	case "pgdown":
		return m.advance()
	case "pgup":
		return m.retreat()
	case "ctrl+r":
		m.confirmRestart = true
		return m, nil
	}

	if m.cursor.Current() == plan.StepSetting {
		return m.updateSetting(msg)
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "right", "n", "l":
		return m.advance()
	case "left", "p", "h":
		return m.retreat()
	case "up", "k":
		st := m.cursor.Current()
		if i := m.row(st); i > 0 {
			m.rowIdx[st] = i - 1
		}
		return m, nil
	case "down", "j":
		st := m.cursor.Current()
		if i := m.row(st); i < len(m.cards(st))-1 {
			m.rowIdx[st] = i + 1
		}
		return m, nil
	case " ", "enter":
		st := m.cursor.Current()
		if cat, ok := st.Category(); ok {
			if cards := m.cards(st); len(cards) > 0 {
				// Unknown ids can't come off a catalog-built card.
				_ = m.sel.Toggle(cat, cards[m.row(st)].id)
			}
		}
		return m, nil
	case "d":
		if _, ok := m.cursor.Current().Category(); ok && len(m.cards(m.cursor.Current())) > 0 {
			m.showDetail = true
		}
		return m, nil
	case "c":
		if cat, ok := m.cursor.Current().Category(); ok {
			m.sel.ClearCategory(cat)
		}
		return m, nil
	case "g":
		if m.cursor.Current() == plan.StepPlan && !m.generating && m.enhancement == "" {
			return m.startGenerate()
		}
		return m, nil
	case "r":
		if m.cursor.Current() == plan.StepPlan && !m.generating {
			return m.startGenerate()
		}
		return m, nil
	case "e":
		if m.cursor.Current() == plan.StepPlan {
			return m.startExport()
		}
		return m, nil
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(plan.Steps()) {
		if m.cursor.JumpTo(plan.Step(n - 1)) {
			m.enterStep()
		}
		return m, nil
	}
	return m, nil
}

func (m wizardModel) advance() (tea.Model, tea.Cmd) {
	m.leaveSetting()
	m.cursor.Next()
	m.enterStep()
	return m, nil
}

func (m wizardModel) retreat() (tea.Model, tea.Cmd) {
	m.leaveSetting()
	m.cursor.Prev()
	m.enterStep()
	return m, nil
}

// restart clears the whole session back to a blank setting step. The
// registration gate is per session and survives a restart; an in-flight
// generation is orphaned by bumping the sequence number.
func (m *wizardModel) restart() {
	m.confirmRestart = false
	m.sel.Reset()
	m.cursor.JumpTo(plan.StepSetting)
	m.rowIdx = map[plan.Step]int{}
	m.topicInput.SetValue("")
	m.contextInput.SetValue("")
	m.stepIdx = 0
	m.durIdx = 0
	m.focus = focusTopic
	m.applySettingFocus()
	m.generating = false
	m.genSeq++
	m.genErr = ""
	m.enhancement = ""
	m.status = ""
}

// enterStep restores focus state appropriate for the current step.
func (m *wizardModel) enterStep() {
	if m.cursor.Current() == plan.StepSetting {
		m.applySettingFocus()
	}
}

func (m *wizardModel) leaveSetting() {
	m.topicInput.Blur()
	m.contextInput.Blur()
}

func (m *wizardModel) applySettingFocus() {
	m.topicInput.Blur()
	m.contextInput.Blur()
	switch m.focus {
	case focusTopic:
		m.topicInput.Focus()
	case focusContext:
		m.contextInput.Focus()
	}
}

func (m wizardModel) updateSetting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "tab":
		m.focus = (m.focus + 1) % settingFieldCount
		m.applySettingFocus()
		return m, textinput.Blink
	case "shift+tab":
		m.focus = (m.focus + settingFieldCount - 1) % settingFieldCount
		m.applySettingFocus()
		return m, textinput.Blink
	}

	// Arrow keys cycle values on the chooser fields; elsewhere they
	// belong to the focused text input.
	switch m.focus {
	case focusStep:
		switch key {
		case "right", " ":
			if m.stepIdx < len(m.cat.ProgressionSteps) {
				m.stepIdx++
			}
			m.sel.Setting.Step = m.stepIdx
			return m, nil
		case "left":
			if m.stepIdx > 0 {
				m.stepIdx--
			}
			m.sel.Setting.Step = m.stepIdx
			return m, nil
		case "up":
			m.focus = focusTopic
			m.applySettingFocus()
			return m, textinput.Blink
		case "down", "enter":
			m.focus = focusDuration
			m.applySettingFocus()
			return m, nil
		}
		return m, nil
	case focusDuration:
		switch key {
		case "right", " ":
			if m.durIdx < len(m.durChoices)-1 {
				m.durIdx++
			}
			m.sel.Setting.Duration = m.durChoices[m.durIdx]
			return m, nil
		case "left":
			if m.durIdx > 0 {
				m.durIdx--
			}
			m.sel.Setting.Duration = m.durChoices[m.durIdx]
			return m, nil
		case "up":
			m.focus = focusStep
			m.applySettingFocus()
			return m, nil
		case "down", "enter":
			m.focus = focusContext
			m.applySettingFocus()
			return m, textinput.Blink
		}
		return m, nil
	case focusTopic:
		switch key {
		case "down", "enter":
			m.focus = focusStep
			m.applySettingFocus()
			return m, nil
		}
		var cmd tea.Cmd
		m.topicInput, cmd = m.topicInput.Update(msg)
		m.sel.Setting.Topic = strings.TrimSpace(m.topicInput.Value())
		return m, cmd
	case focusContext:
		var cmd tea.Cmd
		m.contextInput, cmd = m.contextInput.Update(msg)
		m.sel.Setting.Context = strings.TrimSpace(m.contextInput.Value())
		return m, cmd
	}
	return m, nil
}

func (m *wizardModel) applyRegFocus() {
	m.nameInput.Blur()
	m.emailInput.Blur()
	m.schoolInput.Blur()
	switch m.regFocus {
	case regName:
		m.nameInput.Focus()
	case regEmail:
		m.emailInput.Focus()
	case regSchool:
		m.schoolInput.Focus()
	}
}

func (m wizardModel) updateRegister(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.showRegister = false
		m.pending = actionNone
		m.regErr = ""
		return m, nil
	case "tab", "down":
		m.regFocus = (m.regFocus + 1) % regFieldCount
		m.applyRegFocus()
		return m, textinput.Blink
	case "shift+tab", "up":
		m.regFocus = (m.regFocus + regFieldCount - 1) % regFieldCount
		m.applyRegFocus()
		return m, textinput.Blink
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		email := strings.TrimSpace(m.emailInput.Value())
		if name == "" || email == "" {
			m.regErr = "Name and email are required"
			return m, nil
		}
		planType := "pdf"
		if m.pending == actionGenerate {
			planType = "ai"
		}
		return m, m.saveLeadCmd(leads.Lead{
			Name:     name,
			Email:    email,
			School:   strings.TrimSpace(m.schoolInput.Value()),
			PlanType: planType,
		})
	}

	var cmd tea.Cmd
	switch m.regFocus {
	case regName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case regEmail:
		m.emailInput, cmd = m.emailInput.Update(msg)
	case regSchool:
		m.schoolInput, cmd = m.schoolInput.Update(msg)
	}
	return m, cmd
}

// startGenerate begins an activity-ideas request, routing through the
// registration gate first. Each request gets a fresh sequence number;
// only the newest response is kept.
func (m wizardModel) startGenerate() (tea.Model, tea.Cmd) {
	if m.gen == nil {
		m.genErr = "API key not configured. Set GEMINI_API_KEY to enable activity ideas."
		return m, nil
	}
	if !m.registered {
		m.showRegister = true
		m.pending = actionGenerate
		m.regFocus = regName
		m.applyRegFocus()
		return m, textinput.Blink
	}
	m.generating = true
	m.genErr = ""
	m.genSeq++
	return m, tea.Batch(m.spin.Tick, m.generateCmd(m.genSeq))
}

func (m wizardModel) startExport() (tea.Model, tea.Cmd) {
	if !m.registered {
		m.showRegister = true
		m.pending = actionExport
		m.regFocus = regName
		m.applyRegFocus()
		return m, textinput.Blink
	}
	return m, m.exportCmd()
}
