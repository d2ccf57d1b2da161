package ui

import (
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/quickref/pkg/logging"
)

// defaultPager is used when $PAGER is unset. -R lets ANSI styles
// through.
const defaultPager = "less -R"

// Pager pipes written output through the user's pager. Use Start to
// obtain the writer and Wait after all output is written.
type Pager struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
}

// StartPager launches the pager process. On any failure it returns a
// nil Pager and the passthrough writer, so output still appears.
func StartPager(passthrough *os.File) (*Pager, io.Writer) {
	logger := logging.GetLogger("ui")

	pagerCmd := os.Getenv("PAGER")
	if pagerCmd == "" {
		pagerCmd = defaultPager
	}
	parts := strings.Fields(pagerCmd)
	if len(parts) == 0 {
		return nil, passthrough
	}

	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdout = passthrough
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		logger.Warn().Err(err).Msg("Could not create pager pipe")
		return nil, passthrough
	}
	if err := cmd.Start(); err != nil {
		logger.Warn().Err(err).Str("pager", pagerCmd).Msg("Could not start pager")
		return nil, passthrough
	}

	return &Pager{cmd: cmd, stdin: stdin}, stdin
}

// Wait closes the pager's input and blocks until the user quits it.
func (p *Pager) Wait() error {
	if p == nil {
		return nil
	}
	if err := p.stdin.Close(); err != nil {
		return err
	}
	return p.cmd.Wait()
}
