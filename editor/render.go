package editor

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/lineedit/encoding"
	"github.com/iw2rmb/lineedit/internal/trace"
)

// columnPos returns the display width of buf[:pos].
func columnPos(enc encoding.Strategy, buf []byte, pos int) int {
	cols := 0
	off := 0
	for off < pos {
		n, w := enc.NextCharLen(buf, off)
		if n == 0 {
			break
		}
		off += n
		cols += w
	}
	return cols
}

// wrappedColPos returns the cumulative display column of byte offset pos
// once the content has wrapped at cols-wide rows, starting iniPos columns
// into the first row (the prompt's width). When a character does not fit
// at the end of a row, the excess carries over as the running column of
// the next row; a character landing exactly on the edge resets it to
// zero.
func wrappedColPos(enc encoding.Strategy, buf []byte, pos, cols, iniPos int) int {
	ret := 0
	colwid := iniPos

	off := 0
	for off < len(buf) {
		n, w := enc.NextCharLen(buf, off)
		if n == 0 {
			break
		}

		dif := colwid + w - cols
		switch {
		case dif > 0:
			ret += dif
			colwid = w
		case dif == 0:
			colwid = 0
		default:
			colwid += w
		}

		if off >= pos {
			break
		}
		off += n
		ret += w
	}

	return ret
}

// promptColumns returns the display width of the prompt with any
// embedded styling escape sequences excluded.
func promptColumns(enc encoding.Strategy, prompt string) int {
	plain := []byte(ansi.Strip(prompt))
	return columnPos(enc, plain, len(plain))
}

// appendHint asks the hinter for trailing text and appends it, styled
// and right-truncated to the free columns, to the refresh buffer.
func (s *session) appendHint(ab *bytes.Buffer) {
	if s.hinter == nil {
		return
	}
	buf := s.buf.Bytes()
	collen := s.promptCols + columnPos(s.enc, buf, len(buf))
	if collen >= s.cols {
		return
	}

	h := s.hinter.Hint(s.buf.String())
	if h == nil || h.Text == "" {
		return
	}

	text := h.Text
	if free := s.cols - collen; len(text) > free {
		text = text[:free]
	}

	color := h.Color
	bold := 0
	if h.Bold {
		bold = 1
	}
	if bold == 1 && color <= 0 {
		color = 37
	}

	styled := color > 0 || bold != 0
	if styled {
		fmt.Fprintf(ab, "\x1b[%d;%d;49m", bold, color)
	}
	ab.WriteString(text)
	if styled {
		ab.WriteString("\x1b[0m")
	}
}

// refresh redraws the prompt and buffer so the terminal matches the
// in-memory state. All escape output is batched and flushed in a single
// write.
func (s *session) refresh(withHint bool) error {
	if s.multiline {
		return s.refreshMultiLine(withHint)
	}
	return s.refreshSingleLine(withHint)
}

// refreshSingleLine clips a window of the buffer to the terminal width,
// keeping the cursor visible, and repaints the one row in place.
func (s *session) refreshSingleLine(withHint bool) error {
	buf := s.buf.Bytes()
	pos := s.buf.Pos()

	// Clip the window, not the buffer: drop characters from the left
	// until the cursor fits, then from the right until the content fits.
	for s.promptCols+columnPos(s.enc, buf, pos) >= s.cols {
		n, _ := s.enc.NextCharLen(buf, 0)
		if n == 0 {
			break
		}
		buf = buf[n:]
		pos -= n
	}
	for s.promptCols+columnPos(s.enc, buf, len(buf)) > s.cols {
		n, _ := s.enc.PrevCharLen(buf, len(buf))
		if n == 0 {
			break
		}
		buf = buf[:len(buf)-n]
	}

	var ab bytes.Buffer
	ab.WriteByte('\r')
	ab.WriteString(s.prompt)
	ab.Write(buf)
	if withHint {
		s.appendHint(&ab)
	}
	ab.WriteString("\x1b[0K")
	fmt.Fprintf(&ab, "\r\x1b[%dC", columnPos(s.enc, buf, pos)+s.promptCols)

	_, err := s.out.Write(ab.Bytes())
	return err
}

// refreshMultiLine repaints every wrapped row the line occupies: move to
// the last row used by the previous render, erase rows bottom-up, write
// prompt and buffer, then walk the cursor back to its wrapped row and
// column.
func (s *session) refreshMultiLine(withHint bool) error {
	buf := s.buf.Bytes()
	colpos := wrappedColPos(s.enc, buf, len(buf), s.cols, s.promptCols)
	rows := (s.promptCols + colpos + s.cols - 1) / s.cols
	rpos := (s.promptCols + s.oldColPos + s.cols) / s.cols
	oldRows := s.maxRows

	if rows > s.maxRows {
		s.maxRows = rows
	}

	var ab bytes.Buffer
	if oldRows-rpos > 0 {
		trace.Logf("go down %d", oldRows-rpos)
		fmt.Fprintf(&ab, "\x1b[%dB", oldRows-rpos)
	}

	for j := 0; j < oldRows-1; j++ {
		ab.WriteString("\r\x1b[0K\x1b[1A")
	}
	ab.WriteString("\r\x1b[0K")

	ab.WriteString(s.prompt)
	ab.Write(buf)
	if withHint {
		s.appendHint(&ab)
	}

	colpos2 := wrappedColPos(s.enc, buf, s.buf.Pos(), s.cols, s.promptCols)

	// Cursor at end of buffer on the last column of a row: force the
	// wrap ourselves so the terminal does not leave it ambiguous.
	if s.buf.Pos() > 0 && s.buf.Pos() == len(buf) && (colpos2+s.promptCols)%s.cols == 0 {
		trace.Logf("forced newline")
		ab.WriteString("\n\r")
		rows++
		if rows > s.maxRows {
			s.maxRows = rows
		}
	}

	rpos2 := (s.promptCols + colpos2 + s.cols) / s.cols
	if rows-rpos2 > 0 {
		trace.Logf("go up %d", rows-rpos2)
		fmt.Fprintf(&ab, "\x1b[%dA", rows-rpos2)
	}

	if col := (s.promptCols + colpos2) % s.cols; col != 0 {
		fmt.Fprintf(&ab, "\r\x1b[%dC", col)
	} else {
		ab.WriteByte('\r')
	}

	s.oldColPos = colpos2

	_, err := s.out.Write(ab.Bytes())
	return err
}
