package output

import "github.com/charmbracelet/lipgloss"

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: project names, module paths, file paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorYellow is used for skipped or degraded tool steps.
	ColorYellow = lipgloss.Color("220")

	// ColorDimGray is used for descriptions and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Styles groups the semantic styles used across commands.
type Styles struct {
	// Bold styles headings and the file-tree root.
	Bold lipgloss.Style

	// Muted styles file descriptions and structural chrome.
	Muted lipgloss.Style

	// Noun styles identifiable nouns (project names, module paths).
	Noun lipgloss.Style
}

var defaultStyles = Styles{
	Bold:  lipgloss.NewStyle().Bold(true),
	Muted: lipgloss.NewStyle().Foreground(ColorDimGray),
	Noun:  lipgloss.NewStyle().Foreground(ColorCyan),
}

// GetStyles returns the semantic styles.
func GetStyles() Styles {
	return defaultStyles
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatSkipped renders a yellow marker for a skipped or failed step.
func FormatSkipped(msg string) string {
	mark := lipgloss.NewStyle().Foreground(ColorYellow).Render("!")
	return mark + " " + msg
}
