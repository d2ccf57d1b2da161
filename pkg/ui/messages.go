package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Messages writes user-facing warnings and errors, styled or plain.
// Quiet suppresses informational messages but never errors.
type Messages struct {
	w      io.Writer
	styled bool
	quiet  bool
}

// NewMessages creates a message writer, usually on stderr.
func NewMessages(w io.Writer, styled, quiet bool) *Messages {
	return &Messages{w: w, styled: styled, quiet: quiet}
}

// Info prints an informational message unless quiet is set.
func (m *Messages) Info(format string, args ...interface{}) {
	if m.quiet {
		return
	}
	fmt.Fprintf(m.w, format+"\n", args...)
}

// Warning prints a warning, yellow when styles are enabled.
func (m *Messages) Warning(format string, args ...interface{}) {
	if m.quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if m.styled {
		fmt.Fprintln(m.w, warningStyle.Render("Warning: "+msg))
		return
	}
	fmt.Fprintln(m.w, msg)
}

// Error prints an error, red when styles are enabled.
func (m *Messages) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if m.styled {
		fmt.Fprintln(m.w, errorStyle.Render("Error: "+msg))
		return
	}
	fmt.Fprintln(m.w, msg)
}
