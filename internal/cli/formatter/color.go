package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/menttor/menttor-cli/internal/domain"
)

// Palette tuned to the platform's indigo accent.
var (
	ColorAccent = lipgloss.Color("#818cf8")
	ColorGreen  = lipgloss.Color("#34d399")
	ColorYellow = lipgloss.Color("#fbbf24")
	ColorRed    = lipgloss.Color("#f87171")
	ColorDim    = lipgloss.Color("#6b7280")
	ColorFg     = lipgloss.Color("#e5e7eb")
)

// Predefined lipgloss styles.
var (
	StyleAccent = lipgloss.NewStyle().Foreground(ColorAccent)
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the dim style.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// KindStyle returns the style used for a schedule entry kind.
func KindStyle(kind domain.EntryKind) lipgloss.Style {
	switch kind {
	case domain.EntryModule:
		return StyleHeader
	case domain.EntryTopic:
		return StyleBold
	default:
		return StyleFg
	}
}
