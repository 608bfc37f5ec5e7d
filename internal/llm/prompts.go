package llm

import (
	"fmt"
	"strings"
)

const activitiesSystemPrompt = `You are a creative educational activity designer specialising in the Curriculum for Wales 2022 (Cwricwlwm i Gymru).

Your role is to generate engaging, practical activity ideas for Welsh teachers based on their lesson plan selections.

Key principles:
- Activities should be rooted in the Four Purposes of the curriculum
- Activities should reflect the Welsh context (cynefin — sense of place, Welsh language, Welsh culture, local environment)
- Activities should be inclusive and support learner progression
- Activities should be practical, creative, and achievable in the given timeframe
- Where appropriate, suggest bilingual (Welsh/English) elements
- Reference the specific Areas of Learning & Experience, Statements of What Matters, and teaching/assessment methods the teacher has chosen

Format your response as 4-6 activity ideas. For each activity:
1. Give it a creative name (with an emoji)
2. Brief description (2-3 sentences)
3. How it connects to the selected curriculum elements
4. Differentiation tip (how to adapt for different learners)
5. Welsh language/culture connection (where relevant)

Make activities varied — mix individual, pair, group, indoor, outdoor, digital, hands-on.`

func activitiesUserMessage(planContext string) string {
	return fmt.Sprintf(`Please generate creative activity ideas for this Welsh curriculum lesson plan:

%s

Generate 4-6 varied, engaging activity ideas that align with these selections.`, planContext)
}

const rubricSystemPrompt = `You are an expert Welsh education assessment designer specialising in the Curriculum for Wales 2022 (Cwricwlwm i Gymru).

Your task is to create professional analytic rubrics that Welsh teachers can use directly in their classrooms.

Key principles:
- Criteria must be mapped to the selected Statements of What Matters from the Curriculum for Wales
- Performance levels must align with Descriptions of Learning from the curriculum
- Language must be appropriate for the specified Progression Step
- Use Welsh curriculum terminology throughout (cynefin, Four Purposes, Descriptions of Learning, etc.)
- Rubric must be specific enough to be immediately usable
- Each criterion should have clear, distinct descriptors at each performance level

CRITICAL: You MUST return valid JSON in this exact format:
{
  "title": "Rubric title describing the assessment",
  "levels": ["Emerging", "Developing", "Securing", "Excelling"],
  "criteria": [
    {
      "name": "Criterion name",
      "swm": "Related Statement of What Matters (if applicable)",
      "descriptors": {
        "emerging": "What emerging performance looks like for this criterion",
        "developing": "What developing performance looks like",
        "securing": "What securing performance looks like",
        "excelling": "What excelling performance looks like"
      }
    }
  ]
}

Generate 4-8 criteria depending on the complexity of the task. Each descriptor should be 1-3 sentences.
The four levels should show clear, meaningful progression:
- Emerging: Beginning to engage; needs significant support; shows initial awareness
- Developing: Growing understanding; needs some support; can demonstrate with guidance
- Securing: Confident application; works independently; consistent demonstration
- Excelling: Sophisticated, deep understanding; leads and innovates; exceeds expectations

Return ONLY the JSON object. No markdown code fences, no explanation — just the raw JSON.`

// RubricRequest carries everything the rubric prompt can use. All
// fields are optional; validation (at least one of area, outcomes or
// task) happens at the API/CLI boundary.
type RubricRequest struct {
	Area            string            `json:"area,omitempty"`
	ProgressionStep string            `json:"progressionStep,omitempty"`
	Statements      []RubricStatement `json:"selectedStatements,omitempty"`
	CustomOutcomes  string            `json:"customOutcomes,omitempty"`
	TaskDescription string            `json:"taskDescription,omitempty"`
	UploadedText    string            `json:"uploadedText,omitempty"`
}

type RubricStatement struct {
	Title       string `json:"title"`
	Area        string `json:"area"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
}

// uploadedTextLimit caps document excerpts handed to the prompt.
const uploadedTextLimit = 3000

func rubricUserMessage(req RubricRequest) string {
	var b strings.Builder
	b.WriteString("Create an analytic rubric for the following:\n\n")
	fmt.Fprintf(&b, "AREA OF LEARNING AND EXPERIENCE: %s\n", orNotSpecified(req.Area))
	fmt.Fprintf(&b, "PROGRESSION STEP: %s\n\n", orNotSpecified(req.ProgressionStep))

	if len(req.Statements) > 0 {
		var lines []string
		for _, s := range req.Statements {
			lines = append(lines, fmt.Sprintf("- %q (%s): %s\n  Full: %s", s.Title, s.Area, s.Summary, s.Description))
		}
		fmt.Fprintf(&b, "STATEMENTS OF WHAT MATTERS (from the Curriculum for Wales):\n%s\n\n", strings.Join(lines, "\n"))
	}
	if req.CustomOutcomes != "" {
		fmt.Fprintf(&b, "CUSTOM LEARNING OUTCOMES:\n%s\n\n", req.CustomOutcomes)
	}
	if req.TaskDescription != "" {
		fmt.Fprintf(&b, "TASK DESCRIPTION:\n%s\n\n", req.TaskDescription)
	}
	if req.UploadedText != "" {
		excerpt := req.UploadedText
		if r := []rune(excerpt); len(r) > uploadedTextLimit {
			excerpt = string(r[:uploadedTextLimit])
		}
		fmt.Fprintf(&b, "ADDITIONAL CONTEXT FROM UPLOADED DOCUMENT:\n%s\n\n", excerpt)
	}

	step := req.ProgressionStep
	if step == "" {
		step = "the selected step"
	}
	fmt.Fprintf(&b, "Generate the rubric as JSON now. Remember: criteria mapped to the Statements of What Matters, language appropriate for %s, Welsh curriculum terminology throughout.", step)
	return b.String()
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}
