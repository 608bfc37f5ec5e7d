package plan

import (
	"fmt"
	"io"
	"strings"
	"time"

	"cynllun-cli/internal/curriculum"
)

// Item is one card inside a document section.
type Item struct {
	Icon     string
	Title    string
	Subtitle string
	Detail   string
	Color    string
}

type Section struct {
	Category curriculum.Category
	Icon     string
	Title    string
	Items    []Item
}

// Document is the assembled lesson plan: the learning context, one
// section per non-empty category (selection order, resolved live from
// the catalog), the assessment principles, and the optional generated
// enhancement text.
type Document struct {
	GeneratedAt time.Time

	Topic         string
	StepLine      string
	DurationLabel string
	ContextNote   string

	Sections   []Section
	Principles []string

	// Enhancement is raw generated activity text, appended verbatim
	// under a divider when present. The latest generation wins.
	Enhancement string
}

// BuildDocument assembles a document from the current selection. A
// missing topic becomes a placeholder, never an error.
func BuildDocument(s *Selection, now time.Time) Document {
	doc := Document{
		GeneratedAt:   now.UTC(),
		Topic:         s.Setting.Topic,
		DurationLabel: s.Setting.Duration.Label(),
		ContextNote:   s.Setting.Context,
		Principles:    s.cat.AssessmentPrinciples,
	}
	if doc.Topic == "" {
		doc.Topic = "Topic not specified"
	}
	if ps, ok := s.cat.Step(s.Setting.Step); ok {
		doc.StepLine = fmt.Sprintf("Step %d: %s (ages %s)", ps.Step, ps.Description, ps.Ages)
	} else {
		doc.StepLine = "Not specified"
	}

	addSection := func(cat curriculum.Category, icon, title string, items []Item) {
		if len(items) == 0 {
			return
		}
		doc.Sections = append(doc.Sections, Section{Category: cat, Icon: icon, Title: title, Items: items})
	}

	var purposes []Item
	for _, id := range s.Selected(curriculum.Purposes) {
		if p, ok := s.cat.Purpose(id); ok {
			detail := ""
			if len(p.Characteristics) > 0 {
				n := len(p.Characteristics)
				if n > 3 {
					n = 3
				}
				detail = "Key characteristics: " + strings.Join(p.Characteristics[:n], " · ")
			}
			purposes = append(purposes, Item{Icon: p.Icon, Title: p.Title, Subtitle: p.Subtitle, Detail: detail, Color: p.Color})
		}
	}
	addSection(curriculum.Purposes, "🎯", "Four Purposes", purposes)

	var areas []Item
	for _, id := range s.Selected(curriculum.Areas) {
		if a, ok := s.cat.Area(id); ok {
			areas = append(areas, Item{Icon: a.Icon, Title: a.Title, Subtitle: a.Disciplines, Color: a.Color})
		}
	}
	addSection(curriculum.Areas, "📖", "Areas of Learning & Experience", areas)

	var statements []Item
	for _, id := range s.Selected(curriculum.Statements) {
		if st, area, ok := s.cat.FindStatement(id); ok {
			statements = append(statements, Item{Title: st.Title, Subtitle: st.Summary, Detail: clip(st.Description, 200), Color: area.Color})
		}
	}
	addSection(curriculum.Statements, "💡", "Statements of What Matters", statements)

	var skills []Item
	for _, id := range s.Selected(curriculum.Skills) {
		if sk, ok := s.cat.Skill(id); ok {
			skills = append(skills, Item{Icon: sk.Icon, Title: sk.Title, Subtitle: sk.Description, Color: sk.Color})
		}
	}
	addSection(curriculum.Skills, "🔗", "Cross-Curricular & Wider Skills", skills)

	var teaching []Item
	for _, id := range s.Selected(curriculum.TeachingMethods) {
		if m, ok := s.cat.TeachingMethod(id); ok {
			var d strings.Builder
			d.WriteString("Steps:\n")
			for i, step := range m.Steps {
				fmt.Fprintf(&d, "  %d. %s\n", i+1, step)
			}
			d.WriteString("Welsh context: " + m.WelshContext)
			teaching = append(teaching, Item{
				Icon:     m.Icon,
				Title:    fmt.Sprintf("%s (%s)", m.Title, m.Abbrev),
				Subtitle: m.Description,
				Detail:   d.String(),
				Color:    m.Color,
			})
		}
	}
	addSection(curriculum.TeachingMethods, "🏗️", "Teaching Methods", teaching)

	var assessment []Item
	for _, id := range s.Selected(curriculum.AssessmentMethods) {
		if m, ok := s.cat.AssessmentMethod(id); ok {
			assessment = append(assessment, Item{
				Icon:     m.Icon,
				Title:    m.Title,
				Subtitle: m.Description,
				Detail:   "Approach: " + m.Approach + "\nWelsh context: " + m.WelshContext,
				Color:    m.Color,
			})
		}
	}
	addSection(curriculum.AssessmentMethods, "📋", "Assessment Methods", assessment)

	return doc
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

// RenderText writes the plain-text export of the document: what the
// "download plan" button produces.
func (d Document) RenderText(w io.Writer) error {
	var b strings.Builder

	b.WriteString("CURRICULUM PLANNING CARD — LESSON PLAN\n")
	fmt.Fprintf(&b, "Generated %s · Curriculum for Wales 2022\n\n", d.GeneratedAt.Format("2 January 2006"))

	b.WriteString("LEARNING CONTEXT\n")
	fmt.Fprintf(&b, "  Topic: %s\n", d.Topic)
	fmt.Fprintf(&b, "  Progression step: %s\n", d.StepLine)
	fmt.Fprintf(&b, "  Duration: %s\n", d.DurationLabel)
	if d.ContextNote != "" {
		fmt.Fprintf(&b, "  Context: %s\n", d.ContextNote)
	}

	for _, sec := range d.Sections {
		fmt.Fprintf(&b, "\n%s\n", strings.ToUpper(sec.Title))
		for _, it := range sec.Items {
			fmt.Fprintf(&b, "  • %s\n", it.Title)
			if it.Subtitle != "" {
				fmt.Fprintf(&b, "    %s\n", it.Subtitle)
			}
			if it.Detail != "" {
				for _, line := range strings.Split(it.Detail, "\n") {
					fmt.Fprintf(&b, "    %s\n", line)
				}
			}
		}
	}

	if len(d.Principles) > 0 {
		b.WriteString("\nASSESSMENT PRINCIPLES\n")
		for _, p := range d.Principles {
			fmt.Fprintf(&b, "  • %s\n", p)
		}
	}

	b.WriteString("\nPRACTITIONER NOTES\n  (space for your own notes)\n")

	if d.Enhancement != "" {
		b.WriteString("\n" + strings.Repeat("─", 40) + "\n")
		b.WriteString("AI-GENERATED ACTIVITY IDEAS\n\n")
		b.WriteString(d.Enhancement)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderMarkdown renders the document for glamour display in the TUI.
func (d Document) RenderMarkdown() string {
	var b strings.Builder

	b.WriteString("# Curriculum Planning Card — Lesson Plan\n\n")
	fmt.Fprintf(&b, "*Generated %s · Curriculum for Wales 2022*\n\n", d.GeneratedAt.Format("2 January 2006"))

	b.WriteString("## 📍 Learning Context\n\n")
	fmt.Fprintf(&b, "**%s**\n\n", d.Topic)
	fmt.Fprintf(&b, "- Progression step: %s\n", d.StepLine)
	fmt.Fprintf(&b, "- Duration: %s\n", d.DurationLabel)
	if d.ContextNote != "" {
		fmt.Fprintf(&b, "- Context: %s\n", d.ContextNote)
	}

	for _, sec := range d.Sections {
		fmt.Fprintf(&b, "\n## %s %s\n\n", sec.Icon, sec.Title)
		for _, it := range sec.Items {
			title := it.Title
			if it.Icon != "" {
				title = it.Icon + " " + title
			}
			fmt.Fprintf(&b, "**%s**", title)
			if it.Subtitle != "" {
				fmt.Fprintf(&b, " — %s", it.Subtitle)
			}
			b.WriteString("\n\n")
			if it.Detail != "" {
				for _, line := range strings.Split(it.Detail, "\n") {
					fmt.Fprintf(&b, "> %s\n", line)
				}
				b.WriteString("\n")
			}
		}
	}

	if len(d.Principles) > 0 {
		b.WriteString("\n## Assessment Principles\n\n")
		for _, p := range d.Principles {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}

	return b.String()
}
