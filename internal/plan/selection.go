// Package plan holds the wizard's working state: the setting form, the
// per-category selections, the step cursor, and the builders that turn a
// selection into a plan document and a generation context.
package plan

import (
	"fmt"

	"cynllun-cli/internal/curriculum"
)

// Setting is the free-form part of the plan: what, for whom, how long.
type Setting struct {
	Topic    string              `json:"topic"`
	Step     int                 `json:"progressionStep,omitempty"`
	Duration curriculum.Duration `json:"duration,omitempty"`
	Context  string              `json:"context,omitempty"`
}

// Selection tracks which catalog items are part of the plan. Items are
// referenced by id only and resolved against the catalog on read, so a
// selection never holds stale display data.
//
// Not safe for concurrent use; the wizard owns it single-threaded.
type Selection struct {
	Setting Setting

	cat   *curriculum.Catalog
	picks map[curriculum.Category][]string
}

func NewSelection(cat *curriculum.Catalog) *Selection {
	return &Selection{
		cat:   cat,
		picks: map[curriculum.Category][]string{},
	}
}

func (s *Selection) Catalog() *curriculum.Catalog { return s.cat }

// Toggle adds id to the category if absent, removes it if present.
// Toggling twice is a no-op. Removing an area also removes any selected
// statements that no longer have a selected owning area.
func (s *Selection) Toggle(cat curriculum.Category, id string) error {
	if !s.cat.Contains(cat, id) {
		return fmt.Errorf("%w: %s/%s", ErrUnknownID, cat, id)
	}
	ids := s.picks[cat]
	for i, have := range ids {
		if have == id {
			s.picks[cat] = append(ids[:i:i], ids[i+1:]...)
			if cat == curriculum.Areas {
				s.dropOrphanStatements()
			}
			return nil
		}
	}
	s.picks[cat] = append(ids, id)
	return nil
}

// dropOrphanStatements removes statements whose owning area has been
// deselected, preserving the order of the survivors.
func (s *Selection) dropOrphanStatements() {
	kept := s.picks[curriculum.Statements][:0]
	for _, id := range s.picks[curriculum.Statements] {
		_, area, ok := s.cat.FindStatement(id)
		if ok && s.IsSelected(curriculum.Areas, area.ID) {
			kept = append(kept, id)
		}
	}
	s.picks[curriculum.Statements] = kept
}

// Selected returns the ids picked in a category, in first-insertion order.
func (s *Selection) Selected(cat curriculum.Category) []string {
	ids := s.picks[cat]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

func (s *Selection) IsSelected(cat curriculum.Category, id string) bool {
	for _, have := range s.picks[cat] {
		if have == id {
			return true
		}
	}
	return false
}

func (s *Selection) Count(cat curriculum.Category) int { return len(s.picks[cat]) }

func (s *Selection) ClearCategory(cat curriculum.Category) {
	delete(s.picks, cat)
	if cat == curriculum.Areas {
		s.dropOrphanStatements()
	}
}

// Reset starts a fresh session: empty setting, empty picks.
func (s *Selection) Reset() {
	s.Setting = Setting{}
	s.picks = map[curriculum.Category][]string{}
}
