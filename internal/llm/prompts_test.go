package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivitiesUserMessageEmbedsContext(t *testing.T) {
	msg := activitiesUserMessage("TOPIC: Rivers\nDURATION: Half day\n")
	assert.Contains(t, msg, "TOPIC: Rivers")
	assert.Contains(t, msg, "4-6 varied, engaging activity ideas")
}

func TestRubricUserMessagePlaceholders(t *testing.T) {
	msg := rubricUserMessage(RubricRequest{})
	assert.Contains(t, msg, "AREA OF LEARNING AND EXPERIENCE: Not specified")
	assert.Contains(t, msg, "PROGRESSION STEP: Not specified")
	assert.Contains(t, msg, "language appropriate for the selected step")
	assert.NotContains(t, msg, "STATEMENTS OF WHAT MATTERS")
	assert.NotContains(t, msg, "TASK DESCRIPTION")
}

func TestRubricUserMessageSections(t *testing.T) {
	msg := rubricUserMessage(RubricRequest{
		Area:            "Humanities",
		ProgressionStep: "Step 3",
		Statements: []RubricStatement{
			{Title: "Our Natural World", Area: "Humanities", Summary: "Diverse and dynamic.", Description: "Full text."},
		},
		CustomOutcomes:  "Can read an OS map",
		TaskDescription: "Fieldwork report",
	})
	assert.Contains(t, msg, "AREA OF LEARNING AND EXPERIENCE: Humanities")
	assert.Contains(t, msg, `- "Our Natural World" (Humanities): Diverse and dynamic.`)
	assert.Contains(t, msg, "Full: Full text.")
	assert.Contains(t, msg, "CUSTOM LEARNING OUTCOMES:\nCan read an OS map")
	assert.Contains(t, msg, "TASK DESCRIPTION:\nFieldwork report")
	assert.Contains(t, msg, "language appropriate for Step 3")
}

func TestRubricUserMessageTruncatesUpload(t *testing.T) {
	long := strings.Repeat("x", uploadedTextLimit+500)
	msg := rubricUserMessage(RubricRequest{TaskDescription: "t", UploadedText: long})
	assert.Contains(t, msg, strings.Repeat("x", uploadedTextLimit))
	assert.NotContains(t, msg, strings.Repeat("x", uploadedTextLimit+1))
}
