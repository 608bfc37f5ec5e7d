package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCatalogListCategory(t *testing.T) {
	out, _, err := run(t, "catalog", "list", "areas")
	if err != nil {
		t.Fatalf("catalog list areas: %v", err)
	}
	if !strings.Contains(out, `"humanities"`) {
		t.Fatalf("expected humanities in output, got=%s", out)
	}

	var resp struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(resp.Data) != 6 {
		t.Fatalf("expected 6 areas, got=%d", len(resp.Data))
	}
}

func TestCatalogListUnknownCategory(t *testing.T) {
	_, _, err := run(t, "catalog", "list", "nope")
	if err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestCatalogShowStatementCarriesOwningArea(t *testing.T) {
	out, _, err := run(t, "catalog", "show", "hu-swm1")
	if err != nil {
		t.Fatalf("catalog show: %v", err)
	}
	var resp struct {
		Category string `json:"category"`
		Area     string `json:"area"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if resp.Category != "statements" || resp.Area != "humanities" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestCatalogShowUnknownID(t *testing.T) {
	_, _, err := run(t, "catalog", "show", "no-such-id")
	if err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestRubricRequiresSomeInput(t *testing.T) {
	_, errOut, err := run(t, "rubric", "--step", "3")
	if err == nil {
		t.Fatal("expected validation error with only a step")
	}
	if !strings.Contains(errOut, "provide an area, outcomes, or a task description") {
		t.Fatalf("unexpected message: %q", errOut)
	}
}

func TestExportRendersDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.json")
	selections := `{
		"topic": "Castles of Wales",
		"progressionStep": 3,
		"duration": "double",
		"purposes": ["ambitious"],
		"areas": ["humanities"],
		"statements": ["hu-swm1"]
	}`
	if err := os.WriteFile(path, []byte(selections), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := run(t, "export", path)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	for _, want := range []string{
		"Topic: Castles of Wales",
		"Duration: Double lesson (2 hours)",
		"FOUR PURPOSES",
		"STATEMENTS OF WHAT MATTERS",
		"ASSESSMENT PRINCIPLES",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in export output, got=\n%s", want, out)
		}
	}
}

func TestExportRejectsUnknownID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.json")
	if err := os.WriteFile(path, []byte(`{"topic":"x","areas":["atlantis"]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := run(t, "export", path); err == nil {
		t.Fatal("expected error for unknown area id")
	}
}
