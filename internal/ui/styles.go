// Package ui styles bot output for terminals and leaves it untouched elsewhere.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ColorMode selects when output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates s as a ColorMode. The empty string means ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("ui: color must be \"auto\", \"always\" or \"never\", got %q", s)
	}
}

// Styles renders the prompt, replies, errors and report headings.
// The zero value renders plain text.
type Styles struct {
	enabled bool
	prompt  lipgloss.Style
	errText lipgloss.Style
	heading lipgloss.Style
	info    lipgloss.Style
}

// NewStyles returns styles for w. Under ColorAuto, color is enabled only when
// w is a terminal.
func NewStyles(w io.Writer, mode ColorMode) Styles {
	switch mode {
	case ColorNever:
		return Styles{}
	case ColorAlways:
	default:
		if !isTTY(w) {
			return Styles{}
		}
	}

	r := lipgloss.NewRenderer(w)
	return Styles{
		enabled: true,
		prompt: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}),
		errText: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"}),
		heading: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "208", Dark: "208"}),
		info: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"}),
	}
}

// Enabled reports whether output is styled.
func (s Styles) Enabled() bool { return s.enabled }

// Prompt renders the input prompt.
func (s Styles) Prompt(text string) string { return s.render(s.prompt, text) }

// Error renders an error reply.
func (s Styles) Error(text string) string { return s.render(s.errText, text) }

// Info renders greetings and other secondary text.
func (s Styles) Info(text string) string { return s.render(s.info, text) }

// ReportLine renders a "Weekday: names" line with a highlighted weekday.
func (s Styles) ReportLine(line string) string {
	day, names, ok := strings.Cut(line, ": ")
	if !ok {
		return line
	}
	return s.render(s.heading, day+":") + " " + names
}

// render styles each line separately so multi-line text is not padded.
func (s Styles) render(style lipgloss.Style, text string) string {
	if !s.enabled || text == "" {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = style.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
