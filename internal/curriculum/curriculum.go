// Package curriculum holds the Curriculum for Wales 2022 reference data:
// the four purposes, the six areas of learning and experience with their
// statements of what matters, cross-curricular and wider skills, teaching
// and assessment methods, and progression steps.
//
// The data ships embedded in the binary and is immutable after Load.
// Display metadata (titles, icons, colors) is opaque to the rest of the
// code; only ids participate in logic.
package curriculum

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/curriculum.yaml
var rawCatalog []byte

// Category names a pickable group of catalog items. Values match the
// selection payload keys used by the export format.
type Category string

const (
	Purposes          Category = "purposes"
	Areas             Category = "areas"
	Statements        Category = "statements"
	Skills            Category = "skills"
	TeachingMethods   Category = "teachingMethods"
	AssessmentMethods Category = "assessmentMethods"
)

// Categories returns the pickable categories in wizard order.
func Categories() []Category {
	return []Category{Purposes, Areas, Statements, Skills, TeachingMethods, AssessmentMethods}
}

type Purpose struct {
	ID              string   `yaml:"id" json:"id"`
	Title           string   `yaml:"title" json:"title"`
	Subtitle        string   `yaml:"subtitle" json:"subtitle"`
	Color           string   `yaml:"color" json:"color"`
	Icon            string   `yaml:"icon" json:"icon"`
	Characteristics []string `yaml:"characteristics" json:"characteristics"`
}

// Statement is a statement of what matters. Statement ids are unique
// across all areas, so a statement resolves even when its owning area
// is not part of the current selection.
type Statement struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Summary     string   `yaml:"summary" json:"summary"`
	Description string   `yaml:"description" json:"description"`
	GoodWith    []string `yaml:"goodWith" json:"goodWith,omitempty"`
}

type Area struct {
	ID           string      `yaml:"id" json:"id"`
	Title        string      `yaml:"title" json:"title"`
	Color        string      `yaml:"color" json:"color"`
	LightColor   string      `yaml:"lightColor" json:"lightColor,omitempty"`
	BorderColor  string      `yaml:"borderColor" json:"borderColor,omitempty"`
	Icon         string      `yaml:"icon" json:"icon"`
	Disciplines  string      `yaml:"disciplines" json:"disciplines"`
	Introduction string      `yaml:"introduction" json:"introduction,omitempty"`
	Statements   []Statement `yaml:"statementsOfWhatMatters" json:"statementsOfWhatMatters"`
}

// Skill covers both cross-curricular skills (which carry elements and
// colors) and the wider skills framework (which doesn't).
type Skill struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Color       string   `yaml:"color" json:"color,omitempty"`
	LightColor  string   `yaml:"lightColor" json:"lightColor,omitempty"`
	Icon        string   `yaml:"icon" json:"icon,omitempty"`
	Description string   `yaml:"description" json:"description"`
	Elements    []string `yaml:"elements" json:"elements,omitempty"`
	GoodWith    []string `yaml:"goodWith" json:"goodWith,omitempty"`
}

type TeachingMethod struct {
	ID              string   `yaml:"id" json:"id"`
	Title           string   `yaml:"title" json:"title"`
	Abbrev          string   `yaml:"abbrev" json:"abbrev"`
	Color           string   `yaml:"color" json:"color"`
	Icon            string   `yaml:"icon" json:"icon"`
	Description     string   `yaml:"description" json:"description"`
	Steps           []string `yaml:"steps" json:"steps"`
	WelshContext    string   `yaml:"welshContext" json:"welshContext"`
	GoodWith        []string `yaml:"goodWith" json:"goodWith,omitempty"`
	GoodWithMethods []string `yaml:"goodWithMethods" json:"goodWithMethods,omitempty"`
}

type AssessmentMethod struct {
	ID           string   `yaml:"id" json:"id"`
	Title        string   `yaml:"title" json:"title"`
	Color        string   `yaml:"color" json:"color"`
	Icon         string   `yaml:"icon" json:"icon"`
	Description  string   `yaml:"description" json:"description"`
	Approach     string   `yaml:"approach" json:"approach"`
	WelshContext string   `yaml:"welshContext" json:"welshContext"`
	GoodWith     []string `yaml:"goodWith" json:"goodWith,omitempty"`
}

type ProgressionStep struct {
	Step        int    `yaml:"step" json:"step"`
	Ages        string `yaml:"ages" json:"ages"`
	Description string `yaml:"description" json:"description"`
}

type Catalog struct {
	Purposes              []Purpose          `yaml:"purposes" json:"purposes"`
	Areas                 []Area             `yaml:"areas" json:"areas"`
	CrossCurricularSkills []Skill            `yaml:"crossCurricularSkills" json:"crossCurricularSkills"`
	WiderSkills           []Skill            `yaml:"widerSkills" json:"widerSkills"`
	TeachingMethods       []TeachingMethod   `yaml:"teachingMethods" json:"teachingMethods"`
	AssessmentMethods     []AssessmentMethod `yaml:"assessmentMethods" json:"assessmentMethods"`
	AssessmentPrinciples  []string           `yaml:"assessmentPrinciples" json:"assessmentPrinciples"`
	ProgressionSteps      []ProgressionStep  `yaml:"progressionSteps" json:"progressionSteps"`
}

// Load parses the embedded catalog and validates id uniqueness.
func Load() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(rawCatalog, &c); err != nil {
		return nil, fmt.Errorf("curriculum: parse catalog: %w", err)
	}
	seen := map[string]string{}
	check := func(cat Category, id string) error {
		id = strings.TrimSpace(id)
		if id == "" {
			return fmt.Errorf("curriculum: empty id in %s", cat)
		}
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("curriculum: duplicate id %q (%s and %s)", id, prev, cat)
		}
		seen[id] = string(cat)
		return nil
	}
	for _, p := range c.Purposes {
		if err := check(Purposes, p.ID); err != nil {
			return nil, err
		}
	}
	for _, a := range c.Areas {
		if err := check(Areas, a.ID); err != nil {
			return nil, err
		}
		for _, st := range a.Statements {
			if err := check(Statements, st.ID); err != nil {
				return nil, err
			}
		}
	}
	for _, s := range c.CrossCurricularSkills {
		if err := check(Skills, s.ID); err != nil {
			return nil, err
		}
	}
	for _, s := range c.WiderSkills {
		if err := check(Skills, s.ID); err != nil {
			return nil, err
		}
	}
	for _, m := range c.TeachingMethods {
		if err := check(TeachingMethods, m.ID); err != nil {
			return nil, err
		}
	}
	for _, m := range c.AssessmentMethods {
		if err := check(AssessmentMethods, m.ID); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

// MustLoad is for callers where a broken embedded catalog is a build
// defect, not a runtime condition.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Purpose(id string) (Purpose, bool) {
	for _, p := range c.Purposes {
		if p.ID == id {
			return p, true
		}
	}
	return Purpose{}, false
}

func (c *Catalog) Area(id string) (Area, bool) {
	for _, a := range c.Areas {
		if a.ID == id {
			return a, true
		}
	}
	return Area{}, false
}

// FindStatement resolves a statement id across all areas and reports the
// owning area.
func (c *Catalog) FindStatement(id string) (Statement, Area, bool) {
	for _, a := range c.Areas {
		for _, st := range a.Statements {
			if st.ID == id {
				return st, a, true
			}
		}
	}
	return Statement{}, Area{}, false
}

// Skill resolves against cross-curricular skills first, then the wider
// skills framework.
func (c *Catalog) Skill(id string) (Skill, bool) {
	for _, s := range c.CrossCurricularSkills {
		if s.ID == id {
			return s, true
		}
	}
	for _, s := range c.WiderSkills {
		if s.ID == id {
			return s, true
		}
	}
	return Skill{}, false
}

func (c *Catalog) TeachingMethod(id string) (TeachingMethod, bool) {
	for _, m := range c.TeachingMethods {
		if m.ID == id {
			return m, true
		}
	}
	return TeachingMethod{}, false
}

func (c *Catalog) AssessmentMethod(id string) (AssessmentMethod, bool) {
	for _, m := range c.AssessmentMethods {
		if m.ID == id {
			return m, true
		}
	}
	return AssessmentMethod{}, false
}

func (c *Catalog) Step(n int) (ProgressionStep, bool) {
	for _, s := range c.ProgressionSteps {
		if s.Step == n {
			return s, true
		}
	}
	return ProgressionStep{}, false
}

// Resolve returns the full catalog item for an id within a category.
func (c *Catalog) Resolve(cat Category, id string) (any, bool) {
	switch cat {
	case Purposes:
		if p, ok := c.Purpose(id); ok {
			return p, true
		}
	case Areas:
		if a, ok := c.Area(id); ok {
			return a, true
		}
	case Statements:
		if st, _, ok := c.FindStatement(id); ok {
			return st, true
		}
	case Skills:
		if s, ok := c.Skill(id); ok {
			return s, true
		}
	case TeachingMethods:
		if m, ok := c.TeachingMethod(id); ok {
			return m, true
		}
	case AssessmentMethods:
		if m, ok := c.AssessmentMethod(id); ok {
			return m, true
		}
	}
	return nil, false
}

// Contains reports whether id names an item of the given category.
func (c *Catalog) Contains(cat Category, id string) bool {
	_, ok := c.Title(cat, id)
	return ok
}

// Title returns the display title of an item within a category.
func (c *Catalog) Title(cat Category, id string) (string, bool) {
	switch cat {
	case Purposes:
		if p, ok := c.Purpose(id); ok {
			return p.Title, true
		}
	case Areas:
		if a, ok := c.Area(id); ok {
			return a.Title, true
		}
	case Statements:
		if st, _, ok := c.FindStatement(id); ok {
			return st.Title, true
		}
	case Skills:
		if s, ok := c.Skill(id); ok {
			return s.Title, true
		}
	case TeachingMethods:
		if m, ok := c.TeachingMethod(id); ok {
			return m.Title, true
		}
	case AssessmentMethods:
		if m, ok := c.AssessmentMethod(id); ok {
			return m.Title, true
		}
	}
	return "", false
}

// Label resolves an id of any category to its display title. Used for
// "good with" cross-references, which mix categories freely.
func (c *Catalog) Label(id string) (string, bool) {
	for _, cat := range Categories() {
		if t, ok := c.Title(cat, id); ok {
			return t, true
		}
	}
	return "", false
}
