// Package editor implements interactive line editing over a character
// terminal: raw key decoding, cursor and buffer mutation, single-line
// and multi-line screen refresh, history navigation, completion, and
// hints. One blocking ReadLine call runs one edit session.
package editor

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/iw2rmb/lineedit/encoding"
	"github.com/iw2rmb/lineedit/history"
	"github.com/iw2rmb/lineedit/linebuf"
)

// Config configures an Editor. Zero values select defaults.
type Config struct {
	// Prompt precedes the buffer on every refresh. It may embed ANSI
	// styling sequences; they are excluded from width computation.
	Prompt string

	// In is the input stream. Defaults to os.Stdin. When it is an
	// *os.File attached to a terminal, ReadLine switches it to raw mode
	// for the duration of the call.
	In io.Reader

	// Out is the output stream. Defaults to os.Stdout.
	Out io.Writer

	// Bell receives the completion beep. Defaults to os.Stderr.
	Bell io.Writer

	// Encoding selects the character strategy. Defaults to
	// encoding.ASCII. Use encoding.UTF8 for multi-byte input.
	Encoding encoding.Strategy

	// History backs up/down navigation. Defaults to a fresh store.
	History *history.Store

	Completer Completer
	Hinter    Hinter

	// Multiline wraps long lines across terminal rows instead of
	// horizontally scrolling a single row.
	Multiline bool

	// Columns fixes the terminal width. Zero means detect per session.
	Columns int

	// MaxLineLen caps the edit buffer, in bytes.
	// Defaults to linebuf.DefaultMaxLen.
	MaxLineLen int
}

// Editor reads edited lines from a terminal. Not safe for concurrent
// use; the editing model is strictly single-threaded.
type Editor struct {
	prompt    string
	in        io.Reader
	inFile    *os.File
	out       io.Writer
	outFile   *os.File
	bell      io.Writer
	enc       encoding.Strategy
	hist      *history.Store
	completer Completer
	hinter    Hinter
	multiline bool
	columns   int
	maxLine   int
}

func New(cfg Config) *Editor {
	e := &Editor{
		prompt:    cfg.Prompt,
		bell:      cfg.Bell,
		enc:       cfg.Encoding,
		hist:      cfg.History,
		completer: cfg.Completer,
		hinter:    cfg.Hinter,
		multiline: cfg.Multiline,
		columns:   cfg.Columns,
		maxLine:   cfg.MaxLineLen,
	}

	in := cfg.In
	if in == nil {
		in = os.Stdin
	}
	if f, ok := in.(*os.File); ok {
		e.inFile = f
	}
	e.in = bufio.NewReader(in)

	e.out = cfg.Out
	if e.out == nil {
		e.out = os.Stdout
	}
	if f, ok := e.out.(*os.File); ok {
		e.outFile = f
	}

	if e.bell == nil {
		e.bell = os.Stderr
	}
	if e.enc == nil {
		e.enc = encoding.ASCII{}
	}
	if e.hist == nil {
		e.hist = history.New()
	}
	if e.maxLine <= 0 {
		e.maxLine = linebuf.DefaultMaxLen
	}
	return e
}

// History returns the store backing up/down navigation, for persistence
// and for recording accepted lines.
func (e *Editor) History() *history.Store { return e.hist }

// SetPrompt changes the prompt used by subsequent ReadLine calls.
func (e *Editor) SetPrompt(prompt string) { e.prompt = prompt }

// SetMultiline toggles wrapped multi-row rendering for subsequent
// ReadLine calls.
func (e *Editor) SetMultiline(on bool) { e.multiline = on }

// ClearScreen clears the terminal and homes the cursor.
func (e *Editor) ClearScreen() error {
	if _, err := io.WriteString(e.out, "\x1b[H\x1b[2J"); err != nil {
		return fmt.Errorf("editor: clear screen: %w", err)
	}
	return nil
}

// ReadLine runs one blocking edit session and returns the accepted
// line. It returns ErrInterrupt when the user presses Ctrl-C and io.EOF
// on end of input (Ctrl-D on an empty line, or the stream closing; any
// bytes typed before the stream closed are returned alongside io.EOF).
//
// Input not attached to a terminal is read as a plain line with no
// editing, as is input from a terminal type that cannot interpret
// escape sequences.
func (e *Editor) ReadLine() (string, error) {
	if e.inFile != nil {
		if !isatty.IsTerminal(e.inFile.Fd()) {
			return e.readPlainLine(false)
		}
		if isUnsupportedTerm() {
			return e.readPlainLine(true)
		}

		raw, err := enterRawMode(e.inFile)
		if err != nil {
			return "", err
		}
		defer raw.restore()

		line, err := e.edit()
		io.WriteString(e.out, "\n")
		return line, err
	}

	// No file descriptor to configure: assume the stream already
	// delivers raw bytes (tests, remote terminals).
	return e.edit()
}

// session is the per-ReadLine editing state.
type session struct {
	ed  *Editor
	out io.Writer
	enc encoding.Strategy

	buf    *linebuf.Buffer
	hinter Hinter

	prompt     string
	promptCols int
	cols       int
	multiline  bool

	maxRows   int // rows used by the current render, high-water mark
	oldColPos int // cursor column as of the previous render
	histIndex int // offset from the newest history entry; 0 = live
}

func (e *Editor) newSession() *session {
	s := &session{
		ed:        e,
		out:       e.out,
		enc:       e.enc,
		hinter:    e.hinter,
		prompt:    e.prompt,
		cols:      e.terminalColumns(),
		multiline: e.multiline,
	}
	s.promptCols = promptColumns(e.enc, e.prompt)
	s.buf = linebuf.New(linebuf.Options{Encoding: e.enc, MaxLen: e.maxLine})
	return s
}

// edit is the blocking edit loop: decode one key, mutate the buffer,
// refresh, repeat until the line is accepted or the session aborts.
func (e *Editor) edit() (string, error) {
	s := e.newSession()

	// The newest history slot mirrors the live buffer for the whole
	// session so navigation can always come back to it.
	e.hist.Add("")
	dropScratch := func() { e.hist.RemoveNewest() }

	if _, err := io.WriteString(e.out, e.prompt); err != nil {
		dropScratch()
		return "", fmt.Errorf("editor: write prompt: %w", err)
	}

	dec := NewDecoder(e.in, e.enc)
	for {
		key, err := dec.Next()
		if err != nil {
			dropScratch()
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return s.buf.String(), io.EOF
			}
			return "", fmt.Errorf("editor: read: %w", err)
		}

		if key.Action == ActionComplete {
			if e.completer == nil {
				key = Key{Action: ActionInsert, Bytes: key.Bytes, Code: key.Code}
			} else {
				key, err = s.completeLine(dec)
				if err != nil {
					dropScratch()
					if err == io.EOF || err == io.ErrUnexpectedEOF {
						return s.buf.String(), io.EOF
					}
					return "", fmt.Errorf("editor: read: %w", err)
				}
			}
		}

		done, line, err := s.apply(key)
		if err != nil {
			dropScratch()
			return "", err
		}
		if done {
			dropScratch()
			switch key.Action {
			case ActionAccept:
				return line, nil
			case ActionInterrupt:
				return "", ErrInterrupt
			default:
				return "", io.EOF
			}
		}
	}
}

// apply performs one decoded action. It reports whether the session is
// over and, for an accepted line, its content.
func (s *session) apply(key Key) (done bool, line string, err error) {
	switch key.Action {
	case ActionAccept:
		if s.multiline && s.buf.MoveEnd() {
			if err := s.refresh(true); err != nil {
				return false, "", err
			}
		}
		if s.hinter != nil {
			// Repaint without the hint so the accepted line is left
			// clean on screen.
			if err := s.refresh(false); err != nil {
				return false, "", err
			}
		}
		return true, s.buf.String(), nil

	case ActionInterrupt:
		return true, "", nil

	case ActionDeleteOrEOF:
		if s.buf.Len() == 0 {
			return true, "", nil
		}
		return false, "", s.refreshIf(s.buf.Delete())

	case ActionInsert:
		return false, "", s.insert(key.Bytes)

	case ActionBackspace:
		return false, "", s.refreshIf(s.buf.Backspace())
	case ActionDelete:
		return false, "", s.refreshIf(s.buf.Delete())
	case ActionTranspose:
		return false, "", s.refreshIf(s.buf.Transpose())
	case ActionMoveLeft:
		return false, "", s.refreshIf(s.buf.MoveLeft())
	case ActionMoveRight:
		return false, "", s.refreshIf(s.buf.MoveRight())
	case ActionMoveHome:
		return false, "", s.refreshIf(s.buf.MoveHome())
	case ActionMoveEnd:
		return false, "", s.refreshIf(s.buf.MoveEnd())
	case ActionMoveWordStart:
		return false, "", s.refreshIf(s.buf.MoveWordStart())
	case ActionMoveWordEnd:
		return false, "", s.refreshIf(s.buf.MoveWordEnd())
	case ActionKillToEnd:
		return false, "", s.refreshIf(s.buf.KillToEnd())
	case ActionKillWholeLine:
		return false, "", s.refreshIf(s.buf.KillWholeLine())
	case ActionDeletePrevWord:
		return false, "", s.refreshIf(s.buf.DeletePrevWord())
	case ActionDeleteNextWord:
		return false, "", s.refreshIf(s.buf.DeleteNextWord())

	case ActionHistoryPrev:
		return false, "", s.historyStep(true)
	case ActionHistoryNext:
		return false, "", s.historyStep(false)

	case ActionClearScreen:
		if err := s.ed.ClearScreen(); err != nil {
			return false, "", err
		}
		return false, "", s.refresh(true)
	}

	// ActionNone: discarded.
	return false, "", nil
}

func (s *session) refreshIf(changed bool) error {
	if !changed {
		return nil
	}
	return s.refresh(true)
}

// insert splices bytes at the cursor. Appending to the end of a
// non-wrapping line with no hinter skips the full refresh and writes
// the bytes straight through.
func (s *session) insert(p []byte) error {
	if !s.buf.Insert(p) {
		return nil // over capacity: dropped
	}

	atEnd := s.buf.Pos() == s.buf.Len()
	if atEnd && !s.multiline && s.hinter == nil &&
		s.promptCols+columnPos(s.enc, s.buf.Bytes(), s.buf.Len()) < s.cols {
		if _, err := s.out.Write(p); err != nil {
			return fmt.Errorf("editor: write: %w", err)
		}
		return nil
	}
	return s.refresh(true)
}

// historyStep swaps the live buffer for the previous or next history
// entry. The slot being left mirrors the live buffer first, so nothing
// typed is lost; moves past either end clamp without redrawing.
func (s *session) historyStep(prev bool) error {
	h := s.ed.hist
	if h.Len() <= 1 {
		return nil
	}

	h.Set(h.Len()-1-s.histIndex, s.buf.String())

	if prev {
		s.histIndex++
	} else {
		s.histIndex--
	}
	if s.histIndex < 0 {
		s.histIndex = 0
		return nil
	}
	if s.histIndex >= h.Len() {
		s.histIndex = h.Len() - 1
		return nil
	}

	s.buf.Set(h.Get(h.Len() - 1 - s.histIndex))
	return s.refresh(true)
}
