package editor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// defaultColumns is assumed when the terminal width cannot be learned.
const defaultColumns = 80

// Terminals that cannot interpret the escape sequences the render
// engine emits. They get a plain, non-editing read path.
var unsupportedTerms = []string{"dumb", "cons25", "emacs"}

func isUnsupportedTerm() bool {
	t := os.Getenv("TERM")
	for _, u := range unsupportedTerms {
		if strings.EqualFold(t, u) {
			return true
		}
	}
	return false
}

// rawMode holds the terminal state to restore when the session ends.
// At most one session holds raw mode at a time; acquisition is paired
// with a deferred restore on every exit path.
type rawMode struct {
	fd    int
	state *term.State
}

func enterRawMode(f *os.File) (*rawMode, error) {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("editor: enter raw mode: %w", err)
	}
	return &rawMode{fd: fd, state: state}, nil
}

func (m *rawMode) restore() {
	if m == nil || m.state == nil {
		return
	}
	// Too late to act on failure here.
	_ = term.Restore(m.fd, m.state)
	m.state = nil
}

// terminalColumns learns the terminal width: a fixed configured value,
// the OS report for the output descriptor, the ESC[6n probe, then 80.
func (e *Editor) terminalColumns() int {
	if e.columns > 0 {
		return e.columns
	}
	if e.outFile != nil {
		if w, _, err := term.GetSize(int(e.outFile.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if cols, ok := probeColumns(e.in, e.out); ok {
		return cols
	}
	return defaultColumns
}

// probeColumns discovers the width of a terminal that cannot be asked
// via the OS: jump to the right margin and compare cursor positions.
func probeColumns(in io.Reader, out io.Writer) (int, bool) {
	start, ok := cursorColumn(in, out)
	if !ok {
		return 0, false
	}
	if _, err := io.WriteString(out, "\x1b[999C"); err != nil {
		return 0, false
	}
	cols, ok := cursorColumn(in, out)
	if !ok {
		return 0, false
	}
	if cols > start {
		fmt.Fprintf(out, "\x1b[%dD", cols-start)
	}
	return cols, true
}

// cursorColumn requests a cursor-position report (ESC[6n) and parses
// the ESC[row;colR reply.
func cursorColumn(in io.Reader, out io.Writer) (int, bool) {
	if _, err := io.WriteString(out, "\x1b[6n"); err != nil {
		return 0, false
	}

	var reply [32]byte
	i := 0
	for i < len(reply)-1 {
		var b [1]byte
		if _, err := in.Read(b[:]); err != nil {
			break
		}
		reply[i] = b[0]
		if b[0] == 'R' {
			break
		}
		i++
	}

	if i < 2 || reply[0] != keyEsc || reply[1] != '[' {
		return 0, false
	}
	var row, col int
	if _, err := fmt.Sscanf(string(reply[2:i]), "%d;%d", &row, &col); err != nil {
		return 0, false
	}
	return col, true
}
