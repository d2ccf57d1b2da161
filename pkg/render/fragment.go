// Package render turns a stream of classified page lines into styled
// terminal output, one line in, zero or more fragments out.
package render

import (
	"strings"

	"github.com/arthur-debert/quickref/pkg/markup"
)

// FragmentKind selects the style applied to a fragment.
type FragmentKind int

const (
	// FragmentLinebreak is a bare newline
	FragmentLinebreak FragmentKind = iota
	// FragmentIndent is the unstyled two-column body indent
	FragmentIndent
	// FragmentDescription is description text
	FragmentDescription
	// FragmentText is example text, bullet included
	FragmentText
	// FragmentCode is example code outside placeholder spans
	FragmentCode
	// FragmentVariable is a {{placeholder}} span, delimiters stripped
	FragmentVariable
)

// Fragment is one unit of styled output.
type Fragment struct {
	Kind FragmentKind
	Text string
}

// bodyIndent is the indentation for every rendered body line.
const bodyIndent = "  "

// Fragments maps one classified line to its output fragments. Title
// and unrecognized lines produce nothing; empty lines produce a bare
// line break (the caller decides whether compact mode drops it).
func Fragments(line markup.Line) []Fragment {
	switch line.Kind {
	case markup.KindEmpty:
		return []Fragment{{Kind: FragmentLinebreak}}
	case markup.KindDescription:
		return []Fragment{
			{Kind: FragmentIndent, Text: bodyIndent},
			{Kind: FragmentDescription, Text: line.Text},
			{Kind: FragmentLinebreak},
		}
	case markup.KindExampleText:
		// The bullet sits inside the styled run so coloring wraps
		// bullet and text together.
		return []Fragment{
			{Kind: FragmentIndent, Text: bodyIndent},
			{Kind: FragmentText, Text: "- " + line.Text},
			{Kind: FragmentLinebreak},
		}
	case markup.KindExampleCode:
		frags := []Fragment{{Kind: FragmentIndent, Text: bodyIndent}}
		frags = append(frags, splitPlaceholders(line.Text)...)
		return append(frags, Fragment{Kind: FragmentLinebreak})
	default:
		// Titles are consumed by surrounding tooling, Other lines are
		// dropped so malformed pages degrade gracefully.
		return nil
	}
}

// splitPlaceholders splits example code on the {{ }} delimiter pair,
// alternating strictly between code and variable fragments. A {{ with
// no closing }} leaves the remainder of the line, braces included, as
// a code-styled tail. Empty segments are dropped.
func splitPlaceholders(text string) []Fragment {
	var frags []Fragment
	for len(text) > 0 {
		open := strings.Index(text, "{{")
		if open < 0 {
			frags = appendNonEmpty(frags, FragmentCode, text)
			break
		}
		rest := text[open+2:]
		closing := strings.Index(rest, "}}")
		if closing < 0 {
			// Unterminated placeholder: keep the raw tail visible
			frags = appendNonEmpty(frags, FragmentCode, text)
			break
		}
		frags = appendNonEmpty(frags, FragmentCode, text[:open])
		frags = appendNonEmpty(frags, FragmentVariable, rest[:closing])
		text = rest[closing+2:]
	}
	return frags
}

func appendNonEmpty(frags []Fragment, kind FragmentKind, text string) []Fragment {
	if text == "" {
		return frags
	}
	return append(frags, Fragment{Kind: kind, Text: text})
}
