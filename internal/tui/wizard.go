package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"cynllun-cli/internal/curriculum"
	"cynllun-cli/internal/leads"
	"cynllun-cli/internal/llm"
	"cynllun-cli/internal/plan"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// settingFocus indexes the fields of the setting form, top to bottom.
type settingFocus int

const (
	focusTopic settingFocus = iota
	focusStep
	focusDuration
	focusContext

	settingFieldCount
)

// regFocus indexes the fields of the registration modal.
type regFocus int

const (
	regName regFocus = iota
	regEmail
	regSchool

	regFieldCount
)

// pendingAction is what the registration gate resumes once details are
// saved.
type pendingAction int

const (
	actionNone pendingAction = iota
	actionGenerate
	actionExport
)

type activitiesDoneMsg struct {
	seq  int
	text string
	err  error
}

type leadSavedMsg struct {
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

// card is one selectable entry on a picker step, resolved from the
// catalog for display. group labels subdivide a step (skill frameworks,
// statements by owning area).
type card struct {
	id       string
	icon     string
	title    string
	subtitle string
	detail   string
	color    string
	group    string
}

type wizardModel struct {
	cat   *curriculum.Catalog
	gen   llm.Generator
	store leads.Store

	sel    *plan.Selection
	cursor plan.Cursor

	width  int
	height int

	// rowIdx remembers the focused card per step so moving between
	// steps doesn't lose your place.
	rowIdx map[plan.Step]int

	topicInput   textinput.Model
	contextInput textarea.Model
	stepIdx      int // 0 = not specified, otherwise progression step
	durIdx       int // index into durChoices
	durChoices   []curriculum.Duration
	focus        settingFocus

	showDetail     bool
	confirmRestart bool

	registered   bool
	showRegister bool
	nameInput    textinput.Model
	emailInput   textinput.Model
	schoolInput  textinput.Model
	regFocus     regFocus
	regErr       string
	pending      pendingAction

	spin        spinner.Model
	generating  bool
	genSeq      int
	genErr      string
	enhancement string

	status string
}

func newWizardModel(cat *curriculum.Catalog, gen llm.Generator, store leads.Store) wizardModel {
	topic := textinput.New()
	topic.Placeholder = "e.g. Castles of Wales"
	topic.CharLimit = 120
	topic.Width = 48
	topic.Focus()

	ctxArea := textarea.New()
	ctxArea.Placeholder = "Class context, prior learning, resources…"
	ctxArea.CharLimit = 0
	ctxArea.SetWidth(60)
	ctxArea.SetHeight(3)

	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 80
	name.Width = 40
	email := textinput.New()
	email.Placeholder = "you@school.cymru"
	email.CharLimit = 120
	email.Width = 40
	school := textinput.New()
	school.Placeholder = "School (optional)"
	school.CharLimit = 120
	school.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleAccent()

	return wizardModel{
		cat:          cat,
		gen:          gen,
		store:        store,
		sel:          plan.NewSelection(cat),
		rowIdx:       map[plan.Step]int{},
		topicInput:   topic,
		contextInput: ctxArea,
		durChoices:   append([]curriculum.Duration{""}, curriculum.Durations()...),
		nameInput:    name,
		emailInput:   email,
		schoolInput:  school,
		spin:         sp,
	}
}

func (m wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// cards resolves the pickable entries for a step. The statements step
// only offers statements of the currently selected areas; deselecting
// an area also removes its picked statements, so the two stay in sync.
func (m wizardModel) cards(st plan.Step) []card {
	var out []card
	switch st {
	case plan.StepPurposes:
		for _, p := range m.cat.Purposes {
			out = append(out, card{
				id:       p.ID,
				icon:     p.Icon,
				title:    p.Title,
				subtitle: p.Subtitle,
				detail:   "Key characteristics:\n• " + strings.Join(p.Characteristics, "\n• "),
				color:    p.Color,
			})
		}
	case plan.StepAreas:
		for _, a := range m.cat.Areas {
			out = append(out, card{
				id:       a.ID,
				icon:     a.Icon,
				title:    a.Title,
				subtitle: a.Disciplines,
				detail:   a.Introduction,
				color:    a.Color,
			})
		}
	case plan.StepStatements:
		for _, a := range m.cat.Areas {
			if !m.sel.IsSelected(curriculum.Areas, a.ID) {
				continue
			}
			for _, stm := range a.Statements {
				out = append(out, card{
					id:       stm.ID,
					title:    stm.Title,
					subtitle: stm.Summary,
					detail:   stm.Description + m.goodWithLine(stm.GoodWith),
					color:    a.Color,
					group:    a.Icon + " " + a.Title,
				})
			}
		}
	case plan.StepSkills:
		for _, sk := range m.cat.CrossCurricularSkills {
			out = append(out, card{
				id:       sk.ID,
				icon:     sk.Icon,
				title:    sk.Title,
				subtitle: sk.Description,
				detail:   skillDetail(sk) + m.goodWithLine(sk.GoodWith),
				color:    sk.Color,
				group:    "Cross-curricular skills (mandatory frameworks)",
			})
		}
		for _, sk := range m.cat.WiderSkills {
			out = append(out, card{
				id:       sk.ID,
				icon:     sk.Icon,
				title:    sk.Title,
				subtitle: sk.Description,
				detail:   skillDetail(sk) + m.goodWithLine(sk.GoodWith),
				color:    sk.Color,
				group:    "Integral (wider) skills",
			})
		}
	case plan.StepTeaching:
		for _, tm := range m.cat.TeachingMethods {
			refs := append(append([]string{}, tm.GoodWith...), tm.GoodWithMethods...)
			var d strings.Builder
			d.WriteString("Steps:\n")
			for i, s := range tm.Steps {
				fmt.Fprintf(&d, "%d. %s\n", i+1, s)
			}
			d.WriteString("\nWelsh context: " + tm.WelshContext)
			out = append(out, card{
				id:       tm.ID,
				icon:     tm.Icon,
				title:    fmt.Sprintf("%s (%s)", tm.Title, tm.Abbrev),
				subtitle: tm.Description,
				detail:   d.String() + m.goodWithLine(refs),
				color:    tm.Color,
			})
		}
	case plan.StepAssessment:
		for _, am := range m.cat.AssessmentMethods {
			out = append(out, card{
				id:       am.ID,
				icon:     am.Icon,
				title:    am.Title,
				subtitle: am.Description,
				detail:   "Approach: " + am.Approach + "\n\nWelsh context: " + am.WelshContext + m.goodWithLine(am.GoodWith),
				color:    am.Color,
			})
		}
	}
	return out
}

// goodWithLine resolves cross-reference ids (which mix categories) to
// display labels for the detail modal.
func (m wizardModel) goodWithLine(ids []string) string {
	var names []string
	for _, id := range ids {
		if t, ok := m.cat.Label(id); ok {
			names = append(names, t)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return "\n\nGood with: " + strings.Join(names, ", ")
}

func skillDetail(sk curriculum.Skill) string {
	if len(sk.Elements) == 0 {
		return sk.Description
	}
	return sk.Description + "\n\nElements:\n• " + strings.Join(sk.Elements, "\n• ")
}

// row returns the focused card index for a step, clamped to the current
// card count (the statements list shrinks when areas are deselected).
func (m wizardModel) row(st plan.Step) int {
	n := len(m.cards(st))
	if n == 0 {
		return 0
	}
	i := m.rowIdx[st]
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func (m wizardModel) generateCmd(seq int) tea.Cmd {
	gen := m.gen
	payload := m.sel.Context()
	return func() tea.Msg {
		text, err := gen.Activities(context.Background(), payload)
		return activitiesDoneMsg{seq: seq, text: text, err: err}
	}
}

func (m wizardModel) saveLeadCmd(l leads.Lead) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		_, err := store.Append(context.Background(), l)
		return leadSavedMsg{err: err}
	}
}

func (m wizardModel) exportCmd() tea.Cmd {
	doc := plan.BuildDocument(m.sel, time.Now())
	doc.Enhancement = m.enhancement
	path := fmt.Sprintf("cynllun-lesson-plan-%s.txt", time.Now().Format("2006-01-02"))
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		defer f.Close()
		if err := doc.RenderText(f); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

// genErrText turns a generation failure into the line shown on the plan
// step.
func genErrText(err error) string {
	if errors.Is(err, llm.ErrNotConfigured) {
		return "API key not configured. Set GEMINI_API_KEY to enable activity ideas."
	}
	var up *llm.UpstreamError
	if errors.As(err, &up) {
		return "AI service error: " + up.Err.Error()
	}
	return "Generation failed: " + err.Error()
}
