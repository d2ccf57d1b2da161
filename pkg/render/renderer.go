package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/quickref/pkg/markup"
)

// StyleSheet holds the lipgloss styles applied per fragment kind.
// The zero value renders everything unstyled.
type StyleSheet struct {
	Description     lipgloss.Style
	ExampleText     lipgloss.Style
	ExampleCode     lipgloss.Style
	ExampleVariable lipgloss.Style
}

// Renderer writes styled page output incrementally: one classified
// line in, zero or more fragments out, no whole-document buffering.
type Renderer struct {
	w       io.Writer
	styles  StyleSheet
	compact bool
}

// New creates a Renderer writing to w. In compact mode the decorative
// blank lines between sections are dropped.
func New(w io.Writer, styles StyleSheet, compact bool) *Renderer {
	return &Renderer{w: w, styles: styles, compact: compact}
}

// Line renders one classified line.
func (r *Renderer) Line(line markup.Line) error {
	if line.Kind == markup.KindEmpty && r.compact {
		return nil
	}
	for _, frag := range Fragments(line) {
		if err := r.write(frag); err != nil {
			return err
		}
	}
	return nil
}

// RenderAll drives a scanner to exhaustion and terminates the output
// with a final line break.
func (r *Renderer) RenderAll(scanner *markup.Scanner) error {
	for {
		line, ok := scanner.Next()
		if !ok {
			break
		}
		if err := r.Line(line); err != nil {
			return err
		}
	}
	return r.write(Fragment{Kind: FragmentLinebreak})
}

func (r *Renderer) write(frag Fragment) error {
	var out string
	switch frag.Kind {
	case FragmentLinebreak:
		out = "\n"
	case FragmentIndent:
		out = frag.Text
	case FragmentDescription:
		out = r.styles.Description.Render(frag.Text)
	case FragmentText:
		out = r.styles.ExampleText.Render(frag.Text)
	case FragmentCode:
		out = r.styles.ExampleCode.Render(frag.Text)
	case FragmentVariable:
		out = r.styles.ExampleVariable.Render(frag.Text)
	}
	_, err := io.WriteString(r.w, out)
	return err
}
