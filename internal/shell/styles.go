package shell

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used for console output.
type Styles struct {
	Title   lipgloss.Style
	Prompt  lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Option  lipgloss.Style
	Removed lipgloss.Style
	Target  lipgloss.Style
	Move    lipgloss.Style
}

// DefaultStyles returns the colour scheme used on a terminal.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
		Option:  lipgloss.NewStyle().Foreground(lipgloss.Color("#74B9FF")).Bold(true),
		Removed: lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")).Strikethrough(true),
		Target:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Move:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Title:   plain,
		Prompt:  plain,
		Info:    plain,
		Success: plain,
		Error:   plain,
		Warning: plain,
		Option:  plain,
		Removed: plain,
		Target:  plain,
		Move:    plain,
	}
}
