package cli

import (
	"fmt"
	"strings"

	"cynllun-cli/internal/curriculum"

	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the embedded curriculum reference data",
	}
	cmd.AddCommand(newCatalogListCmd(app))
	cmd.AddCommand(newCatalogShowCmd(app))
	return cmd
}

// itemSummary is the one-line JSON shape for catalog listings.
type itemSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon,omitempty"`
}

func newCatalogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [category]",
		Short: "List catalog items (all categories, or one of: purposes, areas, statements, skills, teachingMethods, assessmentMethods)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			if len(args) == 0 {
				out := map[string][]itemSummary{}
				for _, c := range curriculum.Categories() {
					out[string(c)] = listCategory(cat, c)
				}
				return writeOut(cmd, app, map[string]any{"data": out})
			}

			c := curriculum.Category(strings.TrimSpace(args[0]))
			items := listCategory(cat, c)
			if items == nil {
				return writeErr(cmd, fmt.Errorf("catalog: unknown category %q", args[0]))
			}
			return writeOut(cmd, app, map[string]any{"data": items})
		},
	}
}

func listCategory(cat *curriculum.Catalog, c curriculum.Category) []itemSummary {
	var out []itemSummary
	add := func(id, title, icon string) {
		out = append(out, itemSummary{ID: id, Title: title, Icon: icon})
	}
	switch c {
	case curriculum.Purposes:
		for _, p := range cat.Purposes {
			add(p.ID, p.Title, p.Icon)
		}
	case curriculum.Areas:
		for _, a := range cat.Areas {
			add(a.ID, a.Title, a.Icon)
		}
	case curriculum.Statements:
		for _, a := range cat.Areas {
			for _, st := range a.Statements {
				add(st.ID, st.Title, a.Icon)
			}
		}
	case curriculum.Skills:
		for _, s := range cat.CrossCurricularSkills {
			add(s.ID, s.Title, s.Icon)
		}
		for _, s := range cat.WiderSkills {
			add(s.ID, s.Title, s.Icon)
		}
	case curriculum.TeachingMethods:
		for _, m := range cat.TeachingMethods {
			add(m.ID, m.Title, m.Icon)
		}
	case curriculum.AssessmentMethods:
		for _, m := range cat.AssessmentMethods {
			add(m.ID, m.Title, m.Icon)
		}
	default:
		return nil
	}
	if out == nil {
		out = []itemSummary{}
	}
	return out
}

func newCatalogShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one catalog item in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])

			// Statements carry their owning area in the envelope.
			if st, area, ok := cat.FindStatement(id); ok {
				return writeOut(cmd, app, map[string]any{
					"category": string(curriculum.Statements),
					"area":     area.ID,
					"data":     st,
				})
			}
			for _, c := range curriculum.Categories() {
				if v, ok := cat.Resolve(c, id); ok {
					return writeOut(cmd, app, wrapItem(c, v))
				}
			}
			return writeErr(cmd, fmt.Errorf("catalog: unknown id %q", id))
		},
	}
}

func wrapItem(c curriculum.Category, v any) map[string]any {
	return map[string]any{"category": string(c), "data": v}
}
