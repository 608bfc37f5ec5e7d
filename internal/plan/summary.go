package plan

import (
	"fmt"
	"strings"

	"cynllun-cli/internal/curriculum"
)

// Chip is a compact badge for the running selection summary shown under
// the step header: selected purposes first, then areas, both in catalog
// declaration order.
type Chip struct {
	Icon  string
	Title string
	Color string
}

func (s *Selection) Chips() []Chip {
	var out []Chip
	for _, p := range s.cat.Purposes {
		if s.IsSelected(curriculum.Purposes, p.ID) {
			out = append(out, Chip{Icon: p.Icon, Title: p.Title, Color: p.Color})
		}
	}
	for _, a := range s.cat.Areas {
		if s.IsSelected(curriculum.Areas, a.ID) {
			out = append(out, Chip{Icon: a.Icon, Title: a.Title, Color: a.Color})
		}
	}
	return out
}

// Context renders the selection as the plain-text payload handed to the
// generation service. The format is a stable contract: upper-case
// labelled lines for the setting, then one block per non-empty category
// with "- title: summary" item lines. Deterministic for a given
// selection; empty categories are omitted entirely.
func (s *Selection) Context() string {
	var b strings.Builder

	topic := s.Setting.Topic
	if topic == "" {
		topic = "Not specified"
	}
	fmt.Fprintf(&b, "TOPIC: %s\n", topic)
	if s.Setting.Step > 0 {
		fmt.Fprintf(&b, "PROGRESSION STEP: Step %d\n", s.Setting.Step)
	} else {
		b.WriteString("PROGRESSION STEP: Not specified\n")
	}
	fmt.Fprintf(&b, "DURATION: %s\n", s.Setting.Duration.Label())
	if s.Setting.Context != "" {
		fmt.Fprintf(&b, "CONTEXT: %s\n", s.Setting.Context)
	}

	writeBlock := func(label string, lines []string) {
		if len(lines) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s:\n%s\n", label, strings.Join(lines, "\n"))
	}

	var purposes []string
	for _, id := range s.Selected(curriculum.Purposes) {
		if p, ok := s.cat.Purpose(id); ok {
			purposes = append(purposes, fmt.Sprintf("- %s: %s", p.Title, p.Subtitle))
		}
	}
	writeBlock("FOUR PURPOSES", purposes)

	var areas []string
	for _, id := range s.Selected(curriculum.Areas) {
		if a, ok := s.cat.Area(id); ok {
			areas = append(areas, fmt.Sprintf("- %s: %s", a.Title, a.Disciplines))
		}
	}
	writeBlock("AREAS OF LEARNING", areas)

	var statements []string
	for _, id := range s.Selected(curriculum.Statements) {
		if st, _, ok := s.cat.FindStatement(id); ok {
			statements = append(statements, fmt.Sprintf("- %s: %s", st.Title, st.Summary))
		}
	}
	writeBlock("STATEMENTS OF WHAT MATTERS", statements)

	var skills []string
	for _, id := range s.Selected(curriculum.Skills) {
		if sk, ok := s.cat.Skill(id); ok {
			skills = append(skills, fmt.Sprintf("- %s: %s", sk.Title, sk.Description))
		}
	}
	writeBlock("CROSS-CURRICULAR SKILLS", skills)

	var teaching []string
	for _, id := range s.Selected(curriculum.TeachingMethods) {
		if m, ok := s.cat.TeachingMethod(id); ok {
			teaching = append(teaching, fmt.Sprintf("- %s: %s", m.Title, m.Description))
		}
	}
	writeBlock("TEACHING METHODS", teaching)

	var assessment []string
	for _, id := range s.Selected(curriculum.AssessmentMethods) {
		if m, ok := s.cat.AssessmentMethod(id); ok {
			assessment = append(assessment, fmt.Sprintf("- %s: %s", m.Title, m.Description))
		}
	}
	writeBlock("ASSESSMENT METHODS", assessment)

	return b.String()
}
