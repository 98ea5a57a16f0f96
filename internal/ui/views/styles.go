package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Body           lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	StatusTitle    lipgloss.Style
	StatusError    lipgloss.Style
	StatusSuccess  lipgloss.Style
	Prompt         lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Card           lipgloss.Style
	CardCurrent    lipgloss.Style
	CardCursor     lipgloss.Style
	CardNumber     lipgloss.Style
	HelpBox        lipgloss.Style
	Title          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Body:        lipgloss.NewStyle(),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color("78")), // green
		Prompt:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Button:         lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		ButtonDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		CardCurrent: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		CardCursor: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("226")).
			Padding(0, 1),
		CardNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
	}
}
