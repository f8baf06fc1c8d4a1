package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/wardrobe"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Accent  lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t wardrobe.Theme) Styles {
	return Styles{
		Accent:  lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Success: lipgloss.NewStyle().Foreground(ansiColor(t.Success)),
		Warning: lipgloss.NewStyle().Foreground(ansiColor(t.Warning)),
		Error:   lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
