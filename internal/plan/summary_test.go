package plan

import (
	"strings"
	"testing"
	"time"

	"cynllun-cli/internal/curriculum"
)

func TestContextFormat(t *testing.T) {
	s := newTestSelection(t)
	s.Setting = Setting{
		Topic:    "Local river ecosystems",
		Step:     3,
		Duration: curriculum.DurationDouble,
		Context:  "Outdoor learning, bilingual setting",
	}
	_ = s.Toggle(curriculum.Purposes, "ethical")
	_ = s.Toggle(curriculum.Areas, "science-tech")
	_ = s.Toggle(curriculum.Statements, "st-swm3")

	got := s.Context()

	wantPrefix := "TOPIC: Local river ecosystems\n" +
		"PROGRESSION STEP: Step 3\n" +
		"DURATION: Double lesson (2 hours)\n" +
		"CONTEXT: Outdoor learning, bilingual setting\n"
	if !strings.HasPrefix(got, wantPrefix) {
		t.Fatalf("unexpected header, got=%q", got)
	}
	if !strings.Contains(got, "\nFOUR PURPOSES:\n- Ethical, Informed Citizens: Of Wales and the world\n") {
		t.Fatalf("missing purposes block, got=%q", got)
	}
	if !strings.Contains(got, "\nAREAS OF LEARNING:\n- Science & Technology: ") {
		t.Fatalf("missing areas block, got=%q", got)
	}
	if !strings.Contains(got, "\nSTATEMENTS OF WHAT MATTERS:\n- Living Things & Ecosystems: ") {
		t.Fatalf("missing statements block, got=%q", got)
	}
}

func TestContextOmitsEmptyCategories(t *testing.T) {
	s := newTestSelection(t)
	s.Setting.Topic = "The Mabinogion"
	_ = s.Toggle(curriculum.Purposes, "ambitious")

	got := s.Context()
	for _, label := range []string{"AREAS OF LEARNING", "STATEMENTS OF WHAT MATTERS", "CROSS-CURRICULAR SKILLS", "TEACHING METHODS", "ASSESSMENT METHODS"} {
		if strings.Contains(got, label) {
			t.Fatalf("empty category %s should be omitted, got=%q", label, got)
		}
	}
	if strings.Contains(got, "CONTEXT:") {
		t.Fatalf("empty context line should be omitted, got=%q", got)
	}
}

func TestContextPlaceholdersAndDeterminism(t *testing.T) {
	s := newTestSelection(t)
	got := s.Context()
	if !strings.HasPrefix(got, "TOPIC: Not specified\nPROGRESSION STEP: Not specified\nDURATION: Not specified\n") {
		t.Fatalf("expected placeholders for empty setting, got=%q", got)
	}
	// Same selection, same payload.
	_ = s.Toggle(curriculum.Purposes, "healthy")
	first := s.Context()
	second := s.Context()
	if first != second {
		t.Fatalf("context not deterministic:\n%q\n%q", first, second)
	}
}

func TestChipsFollowCatalogOrder(t *testing.T) {
	s := newTestSelection(t)
	// Select in reverse catalog order; chips still come out catalog-ordered.
	_ = s.Toggle(curriculum.Areas, "humanities")
	_ = s.Toggle(curriculum.Purposes, "healthy")
	_ = s.Toggle(curriculum.Purposes, "ambitious")

	chips := s.Chips()
	if len(chips) != 3 {
		t.Fatalf("expected 3 chips, got=%d", len(chips))
	}
	if chips[0].Title != "Ambitious, Capable Learners" {
		t.Fatalf("expected ambitious first, got=%q", chips[0].Title)
	}
	if chips[1].Title != "Healthy, Confident Individuals" {
		t.Fatalf("expected healthy second, got=%q", chips[1].Title)
	}
	if chips[2].Title != "Humanities" {
		t.Fatalf("expected area chip last, got=%q", chips[2].Title)
	}
}

func TestBuildDocumentOmitsEmptySectionsAndResolvesLive(t *testing.T) {
	s := newTestSelection(t)
	_ = s.Toggle(curriculum.Areas, "expressive-arts")
	_ = s.Toggle(curriculum.Statements, "ea-swm3")
	_ = s.Toggle(curriculum.TeachingMethods, "tm-playful")

	doc := BuildDocument(s, time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC))

	if doc.Topic != "Topic not specified" {
		t.Fatalf("expected topic placeholder, got=%q", doc.Topic)
	}
	if len(doc.Sections) != 3 {
		t.Fatalf("expected 3 sections (areas, statements, teaching), got=%d", len(doc.Sections))
	}
	if doc.Sections[0].Category != curriculum.Areas {
		t.Fatalf("expected areas section first, got=%v", doc.Sections[0].Category)
	}
	if got := doc.Sections[1].Items[0].Title; got != "Creating" {
		t.Fatalf("statement not resolved from catalog, got=%q", got)
	}
	if len(doc.Principles) == 0 {
		t.Fatalf("expected assessment principles carried into document")
	}
}

func TestRenderTextIncludesEnhancement(t *testing.T) {
	s := newTestSelection(t)
	s.Setting.Topic = "Castles of Gwynedd"
	doc := BuildDocument(s, time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC))
	doc.Enhancement = "1. 🏰 Castle detectives\nExplore a local castle."

	var b strings.Builder
	if err := doc.RenderText(&b); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "Topic: Castles of Gwynedd") {
		t.Fatalf("missing topic line, got=%q", out)
	}
	if !strings.Contains(out, "AI-GENERATED ACTIVITY IDEAS") {
		t.Fatalf("missing enhancement divider, got=%q", out)
	}
	if !strings.Contains(out, "Castle detectives") {
		t.Fatalf("missing enhancement body, got=%q", out)
	}
}
