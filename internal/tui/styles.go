package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains the style definitions of the browser
type Styles struct {
	Title    lipgloss.Style
	Status   lipgloss.Style
	Row      lipgloss.Style
	Cursor   lipgloss.Style
	Focused  lipgloss.Style
	Dim      lipgloss.Style
	Modal    lipgloss.Style
	Caption  lipgloss.Style
	Source   lipgloss.Style
	Control  lipgloss.Style
	Disabled lipgloss.Style
	Page     lipgloss.Style
	Current  lipgloss.Style
	Help     lipgloss.Style
}

// NewStyles creates a Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginBottom(1),
		Row:     lipgloss.NewStyle(),
		Cursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Focused: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		Caption:  lipgloss.NewStyle().Bold(true),
		Source:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Control:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
		Page:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Current:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Help:     lipgloss.NewStyle().Faint(true).MarginTop(1),
	}
}
