package config

import (
	"github.com/charmbracelet/lipgloss"

	qerrors "github.com/arthur-debert/quickref/pkg/errors"
	"github.com/arthur-debert/quickref/pkg/render"
)

// Color names accepted in style records.
const (
	ColorBlack  = "black"
	ColorRed    = "red"
	ColorGreen  = "green"
	ColorYellow = "yellow"
	ColorBlue   = "blue"
	ColorPurple = "purple"
	ColorCyan   = "cyan"
	ColorWhite  = "white"
)

// ansiColors maps color names to the basic ANSI palette so styles
// degrade sanely on 8-color terminals.
var ansiColors = map[string]lipgloss.Color{
	ColorBlack:  lipgloss.Color("0"),
	ColorRed:    lipgloss.Color("1"),
	ColorGreen:  lipgloss.Color("2"),
	ColorYellow: lipgloss.Color("3"),
	ColorBlue:   lipgloss.Color("4"),
	ColorPurple: lipgloss.Color("5"),
	ColorCyan:   lipgloss.Color("6"),
	ColorWhite:  lipgloss.Color("7"),
}

// Style is one user-configurable style record: optional foreground
// and background colors plus font attributes.
type Style struct {
	Foreground string `koanf:"foreground" toml:"foreground,omitempty"`
	Background string `koanf:"background" toml:"background,omitempty"`
	Bold       bool   `koanf:"bold" toml:"bold"`
	Italic     bool   `koanf:"italic" toml:"italic"`
	Underline  bool   `koanf:"underline" toml:"underline"`
}

// Lipgloss converts the record to a lipgloss style. Unknown color
// names are rejected by Load; here they are simply skipped.
func (s Style) Lipgloss() lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := ansiColors[s.Foreground]; ok {
		style = style.Foreground(c)
	}
	if c, ok := ansiColors[s.Background]; ok {
		style = style.Background(c)
	}
	if s.Bold {
		style = style.Bold(true)
	}
	if s.Italic {
		style = style.Italic(true)
	}
	if s.Underline {
		style = style.Underline(true)
	}
	return style
}

func (s Style) validate() error {
	for _, color := range []string{s.Foreground, s.Background} {
		if color == "" {
			continue
		}
		if _, ok := ansiColors[color]; !ok {
			return qerrors.Newf(qerrors.ErrConfigValid,
				"unknown color name: %q", color)
		}
	}
	return nil
}

// StyleSheet converts the five records into the renderer's style
// sheet. When styled is false a zero sheet is returned so output
// stays plain.
func (c *Config) StyleSheet(styled bool) render.StyleSheet {
	if !styled {
		return render.StyleSheet{}
	}
	return render.StyleSheet{
		Description:     c.Style.Description.Lipgloss(),
		ExampleText:     c.Style.ExampleText.Lipgloss(),
		ExampleCode:     c.Style.ExampleCode.Lipgloss(),
		ExampleVariable: c.Style.ExampleVariable.Lipgloss(),
	}
}
