package tui

import (
	"cynllun-cli/internal/curriculum"
	"cynllun-cli/internal/leads"
	"cynllun-cli/internal/llm"

	tea "github.com/charmbracelet/bubbletea"
)

func Run(cat *curriculum.Catalog, gen llm.Generator, store leads.Store) error {
	m := newWizardModel(cat, gen, store)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
