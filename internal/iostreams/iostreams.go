// Package iostreams provides an abstraction over standard I/O with TTY detection,
// color support, and quiet-mode filtering. It follows the gh-cli IOStreams pattern.
package iostreams

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

// IOStreams bundles the three standard streams together with display options.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	quiet        bool
	colorEnabled bool
	profile      termenv.Profile

	// terminal overrides TTY detection when set.
	terminal *bool
}

// New returns IOStreams wired to the real stdin/stdout/stderr.
// Color is enabled when stdout is a TTY and the NO_COLOR env var is not set.
func New() *IOStreams {
	return &IOStreams{
		In:           os.Stdin,
		Out:          os.Stdout,
		ErrOut:       os.Stderr,
		colorEnabled: fileIsTerminal(os.Stdout) && os.Getenv("NO_COLOR") == "",
		profile:      termenv.ColorProfile(),
	}
}

// Test returns IOStreams backed by in-memory buffers. Color is off and the
// output is treated as a pipe.
func Test() (*IOStreams, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	in, out, errOut := &bytes.Buffer{}, &bytes.Buffer{}, &bytes.Buffer{}
	s := &IOStreams{
		In:      in,
		Out:     out,
		ErrOut:  errOut,
		profile: termenv.Ascii,
	}
	s.SetTerminal(false)
	return s, in, out, errOut
}

// SetQuiet enables or disables quiet mode. In quiet mode Printf is suppressed.
func (s *IOStreams) SetQuiet(q bool) {
	s.quiet = q
}

// IsQuiet reports whether quiet mode is active.
func (s *IOStreams) IsQuiet() bool {
	return s.quiet
}

// SetTerminal forces IsTerminal to report t.
func (s *IOStreams) SetTerminal(t bool) {
	s.terminal = &t
}

// IsTerminal reports whether stdout is connected to a terminal.
func (s *IOStreams) IsTerminal() bool {
	if s.terminal != nil {
		return *s.terminal
	}
	if f, ok := s.Out.(*os.File); ok {
		return fileIsTerminal(f)
	}
	return false
}

// ColorEnabled reports whether colored output should be produced.
func (s *IOStreams) ColorEnabled() bool {
	return s.colorEnabled
}

// Printf writes formatted output to Out, suppressed in quiet mode.
func (s *IOStreams) Printf(format string, a ...any) {
	if s.quiet {
		return
	}
	fmt.Fprintf(s.Out, format, a...)
}

// Println writes a line to Out, suppressed in quiet mode.
func (s *IOStreams) Println(a ...any) {
	if s.quiet {
		return
	}
	fmt.Fprintln(s.Out, a...)
}

// Errorf writes formatted output to ErrOut. It is never suppressed.
func (s *IOStreams) Errorf(format string, a ...any) {
	fmt.Fprintf(s.ErrOut, format, a...)
}

// --- Color helpers ---

func (s *IOStreams) fg(text, color string) string {
	if !s.colorEnabled {
		return text
	}
	return termenv.String(text).Foreground(s.profile.Color(color)).String()
}

// Success returns text styled as green (success).
func (s *IOStreams) Success(text string) string { return s.fg(text, "2") }

// Failure returns text styled as red (error).
func (s *IOStreams) Failure(text string) string { return s.fg(text, "1") }

// Warning returns text styled as yellow.
func (s *IOStreams) Warning(text string) string { return s.fg(text, "3") }

// Muted returns text styled as gray/dim.
func (s *IOStreams) Muted(text string) string {
	if !s.colorEnabled {
		return text
	}
	return termenv.String(text).Faint().String()
}

// Bold returns text styled as bold.
func (s *IOStreams) Bold(text string) string {
	if !s.colorEnabled {
		return text
	}
	return termenv.String(text).Bold().String()
}

// State colors an entity state or job status: enabled and SUCCESS in green,
// paused and IN_PROGRESS in yellow, archived and FAILURE in red.
func (s *IOStreams) State(text string) string {
	switch text {
	case "enabled", "SUCCESS":
		return s.Success(text)
	case "paused", "IN_PROGRESS", "pending":
		return s.Warning(text)
	case "archived", "FAILURE":
		return s.Failure(text)
	}
	return text
}

// fileIsTerminal checks if f is a character device (terminal).
func fileIsTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
