package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: package names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for created files (bright, high-visibility).
	ColorGreen = lipgloss.Color("82")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (package names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleCreated styles entries that were written to disk.
	StyleCreated = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleDim styles structural chrome (separators, file descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Checkmark returns the styled completion checkmark.
func Checkmark() string {
	return lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
}
