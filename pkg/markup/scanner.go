package markup

import (
	"bufio"
	"io"
	"strings"

	"github.com/arthur-debert/quickref/pkg/logging"
)

// Dialect identifies the markup convention of a page. It is decided
// once, from the first line, and never re-evaluated mid-stream.
type Dialect int

const (
	// DialectUndecided means no line has been read yet
	DialectUndecided Dialect = iota
	// DialectMarkers is the legacy format: the title line starts with
	// '#' and every line carries a prefix marker
	DialectMarkers
	// DialectIndented is the newer format: a bare title line followed
	// by a decorative underline, with example code indented
	DialectIndented
)

// Scanner is a pull-style producer of classified lines. It makes a
// single forward pass over the stream and is not restartable. Read
// errors terminate the stream instead of being surfaced: a truncated
// page is still useful to show.
type Scanner struct {
	reader  *bufio.Reader
	dialect Dialect
	started bool
	done    bool
}

// NewScanner wraps a raw page content stream.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{reader: bufio.NewReader(r)}
}

// Dialect returns the detected dialect, or DialectUndecided before
// the first call to Next.
func (s *Scanner) Dialect() Dialect {
	return s.dialect
}

// Next returns the next classified line. The second return value is
// false once the stream is exhausted.
func (s *Scanner) Next() (Line, bool) {
	if s.done {
		return Line{}, false
	}

	raw, ok := s.readLine()
	if !ok {
		s.done = true
		return Line{}, false
	}

	if !s.started {
		s.started = true
		return s.detect(raw), true
	}

	return s.classify(raw), true
}

// detect fixes the dialect from the shape of the first line. First
// line evidence is authoritative: later content never changes the
// dialect.
func (s *Scanner) detect(first string) Line {
	if strings.HasPrefix(first, "#") {
		s.dialect = DialectMarkers
		return classifyMarkers(first)
	}

	// Indented dialect: the title is bare text and the next raw line
	// is a pure underline decoration, consumed and discarded unread.
	s.dialect = DialectIndented
	if _, ok := s.readLine(); !ok {
		// Truncated page: the title is still shown, then the
		// sequence ends.
		s.done = true
	}
	return Line{Kind: KindTitle, Text: strings.TrimRight(first, " \t\r\n")}
}

func (s *Scanner) classify(raw string) Line {
	if s.dialect == DialectMarkers {
		return classifyMarkers(raw)
	}
	return classifyIndented(raw)
}

// readLine returns the next raw line including its terminator. A
// final line without a trailing newline is still returned. Errors end
// the stream.
func (s *Scanner) readLine() (string, bool) {
	line, err := s.reader.ReadString('\n')
	if err == io.EOF {
		return line, line != ""
	}
	if err != nil {
		logger := logging.GetLogger("markup")
		logger.Warn().Err(err).Msg("Could not read line from page stream")
		return "", false
	}
	return line, true
}
