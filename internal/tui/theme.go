package tui

import "github.com/charmbracelet/lipgloss"

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal
// backgrounds, so everything routes through lipgloss.AdaptiveColor.
// Catalog colors (per-purpose, per-area hex values) are used as-is for
// chips and card accents.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted          lipgloss.TerminalColor = ac("240", "243")
	colorAccent         lipgloss.TerminalColor = ac("28", "77") // welsh green
	colorSelectedBorder lipgloss.TerminalColor = ac("232", "255")
	colorCardBorder     lipgloss.TerminalColor = ac("250", "243")
	colorWarn           lipgloss.TerminalColor = ac("130", "214")
	colorError          lipgloss.TerminalColor = ac("160", "203")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func styleAccent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorAccent)
}

func styleCard(selected, focused bool) lipgloss.Style {
	border := colorCardBorder
	if selected {
		border = colorSelectedBorder
	}
	st := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	if focused {
		st = st.BorderForeground(colorAccent)
	}
	return st
}

func styleChip(hex string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(hex)).
		Padding(0, 1)
}

func styleModal() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1, 2)
}
