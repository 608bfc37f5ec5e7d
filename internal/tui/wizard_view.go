package tui

import (
	"fmt"
	"strings"
	"time"

	"cynllun-cli/internal/parse"
	"cynllun-cli/internal/plan"

	"github.com/charmbracelet/lipgloss"
)

func (m wizardModel) View() string {
	if m.width == 0 {
		return "Loading…"
	}
	if m.showRegister {
		return m.viewRegister()
	}
	if m.showDetail {
		return m.viewDetail()
	}
	if m.confirmRestart {
		return m.viewConfirmRestart()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())

	switch m.cursor.Current() {
	case plan.StepSetting:
		b.WriteString(m.viewSetting())
	case plan.StepPlan:
		b.WriteString(m.viewPlan())
	default:
		b.WriteString(m.viewPicker())
	}

	if m.status != "" {
		b.WriteString("\n" + styleAccent().Render(m.status) + "\n")
	}
	b.WriteString("\n" + styleMuted().Render(m.footerKeys()) + "\n")
	return b.String()
}

func (m wizardModel) viewHeader() string {
	var b strings.Builder
	b.WriteString(styleTitle().Render("🏴 Cynllun · Curriculum for Wales lesson planner"))
	b.WriteString("\n")

	cur := m.cursor.Current()
	var trail []string
	for _, st := range plan.Steps() {
		label := fmt.Sprintf("%s %s", st.Icon(), st.Label())
		switch {
		case st == cur:
			label = styleAccent().Bold(true).Render(label)
		case st.Ready(m.sel) && st < cur:
			label = styleAccent().Render(label)
		default:
			label = styleMuted().Render(label)
		}
		trail = append(trail, label)
	}
	b.WriteString(strings.Join(trail, styleMuted().Render(" · ")))
	fmt.Fprintf(&b, "\n%s\n", styleMuted().Render(fmt.Sprintf("Step %d of %d", int(cur)+1, len(plan.Steps()))))

	if chips := m.sel.Chips(); len(chips) > 0 {
		var row []string
		for _, c := range chips {
			row = append(row, styleChip(c.Color).Render(c.Icon+" "+c.Title))
		}
		b.WriteString(strings.Join(row, " ") + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m wizardModel) viewSetting() string {
	var b strings.Builder
	b.WriteString(styleTitle().Render("Where does this plan live?") + "\n\n")

	field := func(f settingFocus, label, value string) {
		marker := "  "
		if m.focus == f {
			marker = styleAccent().Render("▸ ")
		}
		fmt.Fprintf(&b, "%s%s\n  %s\n\n", marker, styleTitle().Render(label), value)
	}

	field(focusTopic, "Topic", m.topicInput.View())

	stepVal := "Not specified"
	if ps, ok := m.cat.Step(m.stepIdx); ok {
		stepVal = fmt.Sprintf("Step %d · ages %s · %s", ps.Step, ps.Ages, ps.Description)
	}
	field(focusStep, "Progression step  ←/→", stepVal)

	field(focusDuration, "Duration  ←/→", m.durChoices[m.durIdx].Label())
	field(focusContext, "Context (optional)", m.contextInput.View())

	if m.sel.Setting.Topic == "" {
		b.WriteString(styleMuted().Render("Tip: a topic makes the generated ideas much more useful.") + "\n")
	}
	return b.String()
}

func (m wizardModel) viewPicker() string {
	st := m.cursor.Current()
	cards := m.cards(st)
	cat, _ := st.Category()

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", styleTitle().Render(st.Label()),
		styleMuted().Render(fmt.Sprintf("(%d selected)", m.sel.Count(cat))))

	if len(cards) == 0 {
		if st == plan.StepStatements {
			b.WriteString("\n" + styleMuted().Render("Select one or more areas of learning first — statements of what matters belong to areas.") + "\n")
		} else {
			b.WriteString("\n" + styleMuted().Render("Nothing to pick here.") + "\n")
		}
		return b.String()
	}

	row := m.row(st)
	first, last := m.visibleWindow(len(cards), row)
	if first > 0 {
		fmt.Fprintf(&b, "%s\n", styleMuted().Render(fmt.Sprintf("… %d above", first)))
	}

	group := ""
	for i := first; i <= last; i++ {
		c := cards[i]
		if c.group != "" && c.group != group {
			group = c.group
			b.WriteString(styleMuted().Render(group) + "\n")
		}
		b.WriteString(m.renderCard(c, m.sel.IsSelected(cat, c.id), i == row) + "\n")
	}

	if last < len(cards)-1 {
		fmt.Fprintf(&b, "%s\n", styleMuted().Render(fmt.Sprintf("… %d below", len(cards)-1-last)))
	}
	if !st.Ready(m.sel) {
		b.WriteString(styleMuted().Render("Nothing selected yet — you can still move on and come back.") + "\n")
	}
	return b.String()
}

// visibleWindow keeps the focused card on screen when the list is
// taller than the terminal. Cards render at roughly four lines each.
func (m wizardModel) visibleWindow(n, row int) (first, last int) {
	visible := (m.height - 12) / 4
	if visible < 3 {
		visible = 3
	}
	if visible >= n {
		return 0, n - 1
	}
	first = row - visible/2
	if first < 0 {
		first = 0
	}
	last = first + visible - 1
	if last > n-1 {
		last = n - 1
		first = last - visible + 1
	}
	return first, last
}

func (m wizardModel) renderCard(c card, selected, focused bool) string {
	check := "  "
	if selected {
		check = styleAccent().Render("✓ ")
	}
	title := c.title
	if c.icon != "" {
		title = c.icon + " " + title
	}
	head := check + lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.color)).Render(title)
	body := head
	if c.subtitle != "" {
		w := m.width - 8
		if w < 20 {
			w = 20
		}
		body += "\n" + styleMuted().Width(w).Render(c.subtitle)
	}
	return styleCard(selected, focused).Width(m.cardWidth()).Render(body)
}

func (m wizardModel) cardWidth() int {
	w := m.width - 4
	if w > 76 {
		w = 76
	}
	if w < 24 {
		w = 24
	}
	return w
}

func (m wizardModel) viewPlan() string {
	var b strings.Builder

	doc := plan.BuildDocument(m.sel, time.Now())
	b.WriteString(renderMarkdown(doc.RenderMarkdown(), m.cardWidth()) + "\n")

	switch {
	case m.generating:
		fmt.Fprintf(&b, "\n%s Generating activity ideas…\n", m.spin.View())
	case m.genErr != "":
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(colorError).Render(m.genErr) + "\n")
	case m.enhancement != "":
		b.WriteString("\n" + styleTitle().Render("✨ AI-generated activity ideas") + "\n")
		if cards := parse.Activities(m.enhancement); len(cards) > 0 {
			w := m.cardWidth()
			for _, c := range cards {
				body := lipgloss.NewStyle().Bold(true).Render(c.Title)
				if len(c.Body) > 0 {
					body += "\n" + lipgloss.NewStyle().Width(w-4).Render(strings.Join(c.Body, "\n"))
				}
				b.WriteString(styleCard(false, false).Width(w).Render(body) + "\n")
			}
		} else {
			// No recognizable activity markers: show the text as-is.
			b.WriteString(renderMarkdown(m.enhancement, m.cardWidth()) + "\n")
		}
	default:
		b.WriteString("\n" + styleMuted().Render("Press g to generate activity ideas for this plan.") + "\n")
	}
	return b.String()
}

func (m wizardModel) viewDetail() string {
	st := m.cursor.Current()
	cards := m.cards(st)
	if len(cards) == 0 {
		return m.viewHeader()
	}
	c := cards[m.row(st)]

	w := m.cardWidth()
	var b strings.Builder
	title := c.title
	if c.icon != "" {
		title = c.icon + " " + title
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.color)).Render(title) + "\n")
	if c.subtitle != "" {
		b.WriteString(styleMuted().Width(w).Render(c.subtitle) + "\n")
	}
	if c.detail != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Width(w).Render(c.detail) + "\n")
	}
	b.WriteString("\n" + styleMuted().Render("esc close"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		styleModal().Width(w+4).Render(b.String()))
}

func (m wizardModel) viewConfirmRestart() string {
	var b strings.Builder
	b.WriteString(styleTitle().Render("Start over?") + "\n")
	b.WriteString(styleMuted().Width(42).Render("This clears the topic, every selection and any generated ideas.") + "\n\n")
	b.WriteString(styleMuted().Render("y start over · esc keep working"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		styleModal().Render(b.String()))
}

func (m wizardModel) viewRegister() string {
	var b strings.Builder
	b.WriteString(styleTitle().Render("Almost there") + "\n")
	b.WriteString(styleMuted().Width(46).Render("Leave your details to unlock AI-generated ideas and plan downloads. Asked once per session.") + "\n\n")

	field := func(f regFocus, label, view string) {
		marker := "  "
		if m.regFocus == f {
			marker = styleAccent().Render("▸ ")
		}
		fmt.Fprintf(&b, "%s%s\n  %s\n", marker, label, view)
	}
	field(regName, "Name", m.nameInput.View())
	field(regEmail, "Email", m.emailInput.View())
	field(regSchool, "School", m.schoolInput.View())

	if m.regErr != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(colorError).Render(m.regErr) + "\n")
	}
	b.WriteString("\n" + styleMuted().Render("enter save · tab next field · esc cancel"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		styleModal().Render(b.String()))
}

func (m wizardModel) footerKeys() string {
	switch m.cursor.Current() {
	case plan.StepSetting:
		return "tab next field · pgdn next step · ctrl+c quit"
	case plan.StepPlan:
		if m.enhancement != "" {
			return "r regenerate · e export · 1-8 revisit a step · ctrl+r start over · q quit"
		}
		return "g generate · e export · 1-8 revisit a step · ctrl+r start over · q quit"
	default:
		return "↑/↓ move · space select · c clear step · d detail · ←/→ steps · 1-8 revisit · q quit"
	}
}
