package plan

import "cynllun-cli/internal/curriculum"

// Step is one of the fixed wizard stages, in order.
type Step int

const (
	StepSetting Step = iota
	StepPurposes
	StepAreas
	StepStatements
	StepSkills
	StepTeaching
	StepAssessment
	StepPlan

	stepCount
)

// Steps returns all wizard steps in order.
func Steps() []Step {
	out := make([]Step, 0, stepCount)
	for st := StepSetting; st < stepCount; st++ {
		out = append(out, st)
	}
	return out
}

func (st Step) Label() string {
	switch st {
	case StepSetting:
		return "Setting"
	case StepPurposes:
		return "Purposes"
	case StepAreas:
		return "Areas"
	case StepStatements:
		return "What Matters"
	case StepSkills:
		return "Skills"
	case StepTeaching:
		return "Teaching"
	case StepAssessment:
		return "Assessment"
	case StepPlan:
		return "Your Plan"
	}
	return "Unknown"
}

func (st Step) Icon() string {
	switch st {
	case StepSetting:
		return "📍"
	case StepPurposes:
		return "🎯"
	case StepAreas:
		return "📖"
	case StepStatements:
		return "💡"
	case StepSkills:
		return "🔗"
	case StepTeaching:
		return "🏗️"
	case StepAssessment:
		return "📋"
	case StepPlan:
		return "✨"
	}
	return ""
}

// Category maps a picker step to the catalog category it toggles.
// The setting and plan steps have no category.
func (st Step) Category() (curriculum.Category, bool) {
	switch st {
	case StepPurposes:
		return curriculum.Purposes, true
	case StepAreas:
		return curriculum.Areas, true
	case StepStatements:
		return curriculum.Statements, true
	case StepSkills:
		return curriculum.Skills, true
	case StepTeaching:
		return curriculum.TeachingMethods, true
	case StepAssessment:
		return curriculum.AssessmentMethods, true
	}
	return "", false
}

// Ready reports whether the step has enough input to be useful. Advisory
// only: advancing is never blocked, the UI just surfaces it.
func (st Step) Ready(sel *Selection) bool {
	if cat, ok := st.Category(); ok {
		return sel.Count(cat) > 0
	}
	if st == StepSetting {
		return sel.Setting.Topic != ""
	}
	return true
}

// Cursor walks the fixed step sequence. Next and Prev are bounded;
// JumpTo only moves backwards (or stays), never ahead.
type Cursor struct {
	cur Step
}

func (c *Cursor) Current() Step { return c.cur }

// Next advances one step. Returns false at the last step.
func (c *Cursor) Next() bool {
	if c.cur >= stepCount-1 {
		return false
	}
	c.cur++
	return true
}

// Prev moves back one step. Returns false at the first step.
func (c *Cursor) Prev() bool {
	if c.cur <= 0 {
		return false
	}
	c.cur--
	return true
}

// JumpTo moves directly to an already-passed step. Jumping ahead of the
// current step is rejected so later steps can't be reached with earlier
// ones skipped.
func (c *Cursor) JumpTo(st Step) bool {
	if st < 0 || st > c.cur {
		return false
	}
	c.cur = st
	return true
}
