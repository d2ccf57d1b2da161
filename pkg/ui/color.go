// Package ui decides how output is presented: whether styles are
// enabled, how warnings and errors look, and how output is paged.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode controls whether styled output is produced.
type ColorMode int

const (
	// ColorAuto enables styles when stdout is a capable terminal
	ColorAuto ColorMode = iota
	// ColorAlways forces styles on
	ColorAlways
	// ColorNever forces styles off
	ColorNever
)

// ParseColorMode parses the --color flag value.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode: %q (expected always, auto or never)", s)
	}
}

// StylesEnabled reports whether styled output should be written to
// the given file under the chosen mode. In auto mode, NO_COLOR, a
// non-terminal output, and an ASCII-only terminal all disable styles.
func StylesEnabled(mode ColorMode, output *os.File) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}

	return termenv.ColorProfile() != termenv.Ascii
}
