package tui

import "github.com/charmbracelet/lipgloss"

// Colors bound to the quadrant and risk styling tokens
var tokenColors = map[string]lipgloss.Color{
	"green":      lipgloss.Color("#38a169"),
	"blue":       lipgloss.Color("#3182ce"),
	"purple":     lipgloss.Color("#805ad5"),
	"teal":       lipgloss.Color("#319795"),
	"orange":     lipgloss.Color("#dd6b20"),
	"red":        lipgloss.Color("#e53e3e"),
	"gray-light": lipgloss.Color("#cbd5e0"),
	"gray":       lipgloss.Color("#a0aec0"),
	"gray-dark":  lipgloss.Color("#4a5568"),
}

func tokenColor(token string) lipgloss.Color {
	if c, ok := tokenColors[token]; ok {
		return c
	}
	return tokenColors["gray"]
}

// Styles holds the lipgloss styles used by the dashboard views
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Cell      lipgloss.Style
	CellLabel lipgloss.Style
	Item      lipgloss.Style
	Focused   lipgloss.Style
	Empty     lipgloss.Style
	Panel     lipgloss.Style
	Label     lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
	Status    lipgloss.Style
}

// DefaultStyles returns the dashboard styles
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3182ce")),
		Subtitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#718096")),
		Cell:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		CellLabel: lipgloss.NewStyle().Bold(true),
		Item:      lipgloss.NewStyle(),
		Focused:   lipgloss.NewStyle().Bold(true).Reverse(true),
		Empty:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#a0aec0")),
		Panel:     lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 2),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("#718096")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#e53e3e")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("#a0aec0")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("#dd6b20")),
	}
}

// badge renders a risk label on its token color
func badge(text, token string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(tokenColor(token)).
		Padding(0, 1).
		Render(text)
}
