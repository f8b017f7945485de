// Package ui is the terminal storefront: product listing, search filter,
// image sliders and the cart panel.
package ui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	Primary     = lipgloss.Color("#101F38")
	Accent      = lipgloss.Color("#8BC34A")
	Muted       = lipgloss.Color("#8a94a6")
	Border      = lipgloss.Color("#2a3850")
	Destructive = lipgloss.Color("#e53935")
	Warning     = lipgloss.Color("#FFC107")
)

// Styles groups the lipgloss styles used by the view.
type Styles struct {
	Header   lipgloss.Style
	Badge    lipgloss.Style
	Hero     lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Price    lipgloss.Style
	Original lipgloss.Style
	Caption  lipgloss.Style
	Panel    lipgloss.Style
	Title    lipgloss.Style
	Empty    lipgloss.Style
	Total    lipgloss.Style
	Disabled lipgloss.Style
	Button   lipgloss.Style
	Notice   lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles returns the storefront styles.
func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(Accent),
		Badge:    lipgloss.NewStyle().Bold(true),
		Hero:     lipgloss.NewStyle().Foreground(Muted).Italic(true),
		Item:     lipgloss.NewStyle().PaddingLeft(2),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(Accent),
		Price:    lipgloss.NewStyle().Bold(true),
		Original: lipgloss.NewStyle().Foreground(Muted).Strikethrough(true),
		Caption:  lipgloss.NewStyle().Foreground(Muted),
		Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(0, 1).MarginLeft(2),
		Title:    lipgloss.NewStyle().Bold(true).Underline(true),
		Empty:    lipgloss.NewStyle().Foreground(Muted).Italic(true),
		Total:    lipgloss.NewStyle().Bold(true),
		Disabled: lipgloss.NewStyle().Foreground(Muted),
		Button:   lipgloss.NewStyle().Bold(true).Foreground(Accent),
		Notice:   lipgloss.NewStyle().Foreground(Warning),
		Error:    lipgloss.NewStyle().Foreground(Destructive),
	}
}
