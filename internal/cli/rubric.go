package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"cynllun-cli/internal/llm"
	"cynllun-cli/internal/parse"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newRubricCmd(app *App) *cobra.Command {
	var area string
	var step int
	var statementIDs []string
	var outcomes string
	var task string
	var uploadPath string
	var rawJSON bool

	cmd := &cobra.Command{
		Use:   "rubric",
		Short: "Generate an assessment rubric in one shot",
		Long: strings.TrimSpace(`
Generate an analytic assessment rubric without walking the wizard.

Give it at least one of an area of learning, custom outcomes, or a task
description. Statements of what matters (by id, see "catalog list
statements") sharpen the criteria. A task sheet can be passed with
--upload; its text is included in the request.
`),
		Example: strings.TrimSpace(`
# Rubric for a humanities enquiry at progression step 3
cynllun rubric --area humanities --step 3 --statement hu-swm1

# From a task description alone, raw JSON out
cynllun rubric --task "Design a bilingual museum exhibit" --json
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			if strings.TrimSpace(area) == "" && strings.TrimSpace(outcomes) == "" && strings.TrimSpace(task) == "" {
				return writeErr(cmd, errors.New("rubric: provide an area, outcomes, or a task description"))
			}

			cat, err := loadCatalog(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			req := llm.RubricRequest{
				Area:            strings.TrimSpace(area),
				CustomOutcomes:  strings.TrimSpace(outcomes),
				TaskDescription: strings.TrimSpace(task),
			}
			if step > 0 {
				req.ProgressionStep = fmt.Sprintf("Step %d", step)
			}
			for _, id := range statementIDs {
				st, owner, ok := cat.FindStatement(strings.TrimSpace(id))
				if !ok {
					return writeErr(cmd, fmt.Errorf("rubric: unknown statement id %q", id))
				}
				req.Statements = append(req.Statements, llm.RubricStatement{
					Title:       st.Title,
					Area:        owner.Title,
					Summary:     st.Summary,
					Description: st.Description,
				})
			}
			if uploadPath != "" {
				b, err := os.ReadFile(uploadPath)
				if err != nil {
					return writeErr(cmd, fmt.Errorf("rubric: read upload: %w", err))
				}
				req.UploadedText = string(b)
			}

			gen, err := llm.New(cmd.Context(), llm.Config{})
			if err != nil {
				return writeErr(cmd, err)
			}
			raw, err := gen.Rubric(cmd.Context(), req)
			if err != nil {
				return writeErr(cmd, err)
			}

			if rawJSON {
				fmt.Fprintln(cmd.OutOrStdout(), raw)
				return nil
			}

			r, err := parse.ExtractRubric(raw)
			if err != nil {
				// Best effort: unparseable output is still a usable rubric,
				// just prose.
				fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(raw))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), renderRubric(r))
			return nil
		},
	}

	cmd.Flags().StringVar(&area, "area", "", "Area of learning (id or name)")
	cmd.Flags().IntVar(&step, "step", 0, "Progression step (1-5)")
	cmd.Flags().StringArrayVar(&statementIDs, "statement", nil, "Statement of what matters id (repeatable)")
	cmd.Flags().StringVar(&outcomes, "outcomes", "", "Custom learning outcomes")
	cmd.Flags().StringVar(&task, "task", "", "Task description")
	cmd.Flags().StringVar(&uploadPath, "upload", "", "Path to a task sheet to include")
	cmd.Flags().BoolVar(&rawJSON, "json", false, "Print the raw generated JSON")
	return cmd
}

// renderRubric lays the rubric out one criterion at a time. NO_COLOR
// and dumb terminals get plain text.
func renderRubric(r *parse.Rubric) string {
	color := !termenv.EnvNoColor()
	bold := func(s string) string {
		if color {
			return lipgloss.NewStyle().Bold(true).Render(s)
		}
		return s
	}
	faint := func(s string) string {
		if color {
			return lipgloss.NewStyle().Faint(true).Render(s)
		}
		return s
	}

	var b strings.Builder
	title := r.Title
	if title == "" {
		title = "Assessment rubric"
	}
	b.WriteString(bold(title) + "\n")
	b.WriteString(faint("Levels: "+strings.Join(r.Levels, " · ")) + "\n")

	for _, c := range r.Criteria {
		b.WriteString("\n" + bold(c.Name))
		if c.SWM != "" {
			b.WriteString("  " + faint(c.SWM))
		}
		b.WriteString("\n")
		for _, level := range r.Levels {
			d := c.Descriptor(level)
			if d == "" {
				d = "—"
			}
			fmt.Fprintf(&b, "  %-12s %s\n", level, d)
		}
	}
	return b.String()
}
