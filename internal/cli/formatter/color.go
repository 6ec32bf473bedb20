package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/almanac/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleQuote  = lipgloss.NewStyle().Foreground(ColorFg).Italic(true)
)

// ScoreColor picks a style for a relevance score in [0,1].
func ScoreColor(score float64) lipgloss.Style {
	switch {
	case score >= 0.6:
		return StyleGreen
	case score >= 0.3:
		return StyleYellow
	default:
		return StyleDim
	}
}

// ScoreIndicator renders a score as "● 0.72" in its score color.
func ScoreIndicator(score float64) string {
	return ScoreColor(score).Render(fmt.Sprintf("● %.2f", score))
}

// CategoryBadge renders a category as a purple label ("debt-management" -> "Debt Management").
func CategoryBadge(c domain.Category) string {
	if c == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(TitleWords(string(c)))
}

// RiskBadge renders a risk profile; aggressive is red, conservative blue.
func RiskBadge(r domain.RiskProfile) string {
	switch r {
	case domain.RiskAggressive:
		return StyleRed.Render("▲ Aggressive")
	case domain.RiskConservative:
		return StyleBlue.Render("■ Conservative")
	case domain.RiskModerate:
		return StyleYellow.Render("● Moderate")
	default:
		return StyleDim.Render(string(r))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
