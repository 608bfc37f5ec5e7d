package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"cynllun-cli/internal/curriculum"
	"cynllun-cli/internal/plan"

	"github.com/spf13/cobra"
)

// selectionFile is the on-disk shape accepted by `cynllun export`: the
// setting fields plus one id list per category, keyed like the catalog
// categories.
type selectionFile struct {
	plan.Setting
	Purposes          []string `json:"purposes"`
	Areas             []string `json:"areas"`
	Statements        []string `json:"statements"`
	Skills            []string `json:"skills"`
	TeachingMethods   []string `json:"teachingMethods"`
	AssessmentMethods []string `json:"assessmentMethods"`
}

func newExportCmd(app *App) *cobra.Command {
	var outPath string
	var markdown bool

	cmd := &cobra.Command{
		Use:   "export <selections.json>",
		Short: "Render a lesson plan document from a selections file",
		Long: strings.TrimSpace(`
Render the printable lesson plan without the wizard: read a selections
file (topic, progression step, duration, context, plus catalog ids per
category) and write the assembled document.
`),
		Example: strings.TrimSpace(`
cynllun export plan.json
cynllun export plan.json -o lesson-plan.txt
cynllun export plan.json --markdown
`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			b, err := os.ReadFile(args[0])
			if err != nil {
				return writeErr(cmd, fmt.Errorf("export: %w", err))
			}
			var sf selectionFile
			if err := json.Unmarshal(b, &sf); err != nil {
				return writeErr(cmd, fmt.Errorf("export: parse selections: %w", err))
			}

			sel := plan.NewSelection(cat)
			sel.Setting = sf.Setting
			toggles := []struct {
				cat curriculum.Category
				ids []string
			}{
				{curriculum.Purposes, sf.Purposes},
				{curriculum.Areas, sf.Areas},
				{curriculum.Statements, sf.Statements},
				{curriculum.Skills, sf.Skills},
				{curriculum.TeachingMethods, sf.TeachingMethods},
				{curriculum.AssessmentMethods, sf.AssessmentMethods},
			}
			for _, t := range toggles {
				for _, id := range t.ids {
					if err := sel.Toggle(t.cat, id); err != nil {
						return writeErr(cmd, fmt.Errorf("export: %w", err))
					}
				}
			}

			doc := plan.BuildDocument(sel, time.Now())

			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return writeErr(cmd, fmt.Errorf("export: %w", err))
				}
				defer f.Close()
				out = f
			}
			if markdown {
				_, err = fmt.Fprint(out, doc.RenderMarkdown())
				return err
			}
			return doc.RenderText(out)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Emit Markdown instead of plain text")
	return cmd
}
