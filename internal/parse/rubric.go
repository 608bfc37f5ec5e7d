package parse

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Rubric is the structured form of a generated analytic rubric.
type Rubric struct {
	Title    string
	Levels   []string
	Criteria []Criterion
}

// Criterion is one rubric row: a name, the related statement of what
// matters (optional), and one descriptor per level.
type Criterion struct {
	Name        string
	SWM         string
	Descriptors map[string]string
}

// Descriptor returns the text for a level, matching the lowercased
// level name first, then the exact spelling.
func (c Criterion) Descriptor(level string) string {
	if d, ok := c.Descriptors[strings.ToLower(level)]; ok {
		return d
	}
	return c.Descriptors[level]
}

// DefaultLevels is the performance scale used when the generated rubric
// doesn't carry its own.
func DefaultLevels() []string {
	return []string{"Emerging", "Developing", "Securing", "Excelling"}
}

var fencedBlock = regexp.MustCompile("```(?:json)?\\s*((?s:.*?))```")

// rubricJSON tolerates the field aliases seen in generated output:
// criteria may use "criterion" for "name" and "levels" for
// "descriptors".
type rubricJSON struct {
	Title    string `json:"title"`
	Levels   []string `json:"levels"`
	Criteria []struct {
		Name        string            `json:"name"`
		Criterion   string            `json:"criterion"`
		SWM         string            `json:"swm"`
		Descriptors map[string]string `json:"descriptors"`
		Levels      map[string]string `json:"levels"`
	} `json:"criteria"`
}

// ExtractRubric parses generated rubric text. If the text carries a
// fenced code block, only its interior is parsed; otherwise the raw
// text is. A parse failure is returned to the caller, which renders the
// text as prose instead.
func ExtractRubric(text string) (*Rubric, error) {
	payload := text
	if m := fencedBlock.FindStringSubmatch(text); m != nil {
		payload = m[1]
	}

	var raw rubricJSON
	if err := json.Unmarshal([]byte(strings.TrimSpace(payload)), &raw); err != nil {
		return nil, fmt.Errorf("parse: rubric is not valid JSON: %w", err)
	}

	r := &Rubric{Title: raw.Title, Levels: raw.Levels}
	if len(r.Levels) == 0 {
		r.Levels = DefaultLevels()
	}
	for _, c := range raw.Criteria {
		name := c.Name
		if name == "" {
			name = c.Criterion
		}
		desc := c.Descriptors
		if desc == nil {
			desc = c.Levels
		}
		if desc == nil {
			desc = map[string]string{}
		}
		r.Criteria = append(r.Criteria, Criterion{Name: name, SWM: c.SWM, Descriptors: desc})
	}
	return r, nil
}
