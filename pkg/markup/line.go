// Package markup turns raw page bytes into a stream of classified
// lines. Two historical markup dialects are supported and
// auto-detected from the shape of the first line(s), so downstream
// consumers never need to know which one a page uses.
package markup

import "strings"

// Kind classifies one line of page content.
type Kind int

const (
	// KindEmpty is a blank or whitespace-only line
	KindEmpty Kind = iota
	// KindTitle is the page title (dropped by the renderer)
	KindTitle
	// KindDescription is a "> ..." description line
	KindDescription
	// KindExampleText introduces an example
	KindExampleText
	// KindExampleCode is a runnable example line
	KindExampleCode
	// KindOther is unrecognized content, ignored so malformed pages
	// degrade gracefully
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindTitle:
		return "title"
	case KindDescription:
		return "description"
	case KindExampleText:
		return "example-text"
	case KindExampleCode:
		return "example-code"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Line is one classified line: a kind plus the payload text with the
// dialect's markers already stripped.
type Line struct {
	Kind Kind
	Text string
}

// classifyMarkers implements the per-line rule of the marker-based
// dialect: every line carries its own prefix marker.
func classifyMarkers(raw string) Line {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Line{Kind: KindEmpty}
	}
	switch trimmed[0] {
	case '#':
		return Line{Kind: KindTitle, Text: stripLeading(trimmed, '#')}
	case '>':
		return Line{Kind: KindDescription, Text: stripLeading(trimmed, '>')}
	case '-':
		return Line{Kind: KindExampleText, Text: stripLeading(trimmed, '-')}
	case '`':
		if len(trimmed) > 1 && trimmed[len(trimmed)-1] == '`' {
			code := strings.TrimFunc(trimmed, func(r rune) bool {
				return r == '`' || r == ' ' || r == '\t'
			})
			return Line{Kind: KindExampleCode, Text: code}
		}
	}
	return Line{Kind: KindOther, Text: trimmed}
}

// classifyIndented implements the per-line rule of the
// indentation-based dialect: example code is indented, example text
// is bare.
func classifyIndented(raw string) Line {
	trimmed := strings.TrimRight(raw, " \t\r\n")
	if trimmed == "" {
		return Line{Kind: KindEmpty}
	}
	switch trimmed[0] {
	case '#':
		return Line{Kind: KindTitle, Text: stripLeading(trimmed, '#')}
	case '>':
		return Line{Kind: KindDescription, Text: stripLeading(trimmed, '>')}
	case ' ', '\t':
		return Line{Kind: KindExampleCode, Text: strings.TrimLeft(trimmed, " \t")}
	}
	return Line{Kind: KindExampleText, Text: trimmed}
}

// stripLeading removes every leading occurrence of marker or
// whitespace, mirroring how both dialects strip their line prefixes.
func stripLeading(s string, marker byte) string {
	return strings.TrimLeft(s, string(marker)+" \t")
}
