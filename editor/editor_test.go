package editor

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/iw2rmb/lineedit/history"
)

// readFrom runs one edit session over scripted input bytes.
func readFrom(t *testing.T, input string, cfg Config) (string, error) {
	t.Helper()
	cfg.In = strings.NewReader(input)
	if cfg.Out == nil {
		cfg.Out = &bytes.Buffer{}
	}
	if cfg.Bell == nil {
		cfg.Bell = &bytes.Buffer{}
	}
	if cfg.Columns == 0 {
		cfg.Columns = 80
	}
	return New(cfg).ReadLine()
}

func TestReadLine_TypeAndAccept(t *testing.T) {
	line, err := readFrom(t, "hello\r", Config{Prompt: "> "})
	if err != nil {
		t.Fatalf("readline: %v", err)
	}
	if line != "hello" {
		t.Fatalf("line=%q, want %q", line, "hello")
	}
}

func TestReadLine_BackspaceThenRetype(t *testing.T) {
	// "hello", two backspaces, "p!": ends as "help!".
	line, err := readFrom(t, "hello\x7f\x7fp!\r", Config{Prompt: "> "})
	if err != nil {
		t.Fatalf("readline: %v", err)
	}
	if line != "help!" {
		t.Fatalf("line=%q, want %q", line, "help!")
	}
}

func TestReadLine_CtrlUClearsWholeLine(t *testing.T) {
	// Cursor parked mid-line by two left arrows; Ctrl-U still clears all.
	line, err := readFrom(t, "hello world\x1b[D\x1b[D\x15x\r", Config{Prompt: "> "})
	if err != nil {
		t.Fatalf("readline: %v", err)
	}
	if line != "x" {
		t.Fatalf("line=%q, want %q", line, "x")
	}
}

func TestReadLine_CtrlWDeletesPrevWord(t *testing.T) {
	line, err := readFrom(t, "foo bar \x17\r", Config{Prompt: "> "})
	if err != nil {
		t.Fatalf("readline: %v", err)
	}
	if line != "foo " {
		t.Fatalf("line=%q, want %q", line, "foo ")
	}
}

func TestReadLine_CtrlKKillsToEnd(t *testing.T) {
	line, err := readFrom(t, "hello\x1b[D\x1b[D\x0b\r", Config{Prompt: "> "})
	if err != nil {
		t.Fatalf("readline: %v", err)
	}
	if line != "hel" {
		t.Fatalf("line=%q, want %q", line, "hel")
	}
}

func TestReadLine_TransposeSwapsAroundCursor(t *testing.T) {
	line, err := readFrom(t, "ab\x1b[D\x14\r", Config{Prompt: "> "})
	if err != nil {
		t.Fatalf("readline: %v", err)
	}
	if line != "ba" {
		t.Fatalf("line=%q, want %q", line, "ba")
	}
}

func TestReadLine_CtrlCInterrupts(t *testing.T) {
	hist := history.New()
	hist.Add("old")

	_, err := readFrom(t, "partial\x03", Config{Prompt: "> ", History: hist})
	if !errors.Is(err, ErrInterrupt) {
		t.Fatalf("err=%v, want ErrInterrupt", err)
	}
	// The scratch slot is cleaned up on interrupt too.
	if got, want := hist.Entries(), []string{"old"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("history=%v, want %v", got, want)
	}
}

func TestReadLine_CtrlDOnEmptyIsEOF(t *testing.T) {
	_, err := readFrom(t, "\x04", Config{Prompt: "> "})
	if err != io.EOF {
		t.Fatalf("err=%v, want io.EOF", err)
	}
}

func TestReadLine_CtrlDOnContentDeletesRight(t *testing.T) {
	line, err := readFrom(t, "abc\x02\x04\r", Config{Prompt: "> "})
	if err != nil {
		t.Fatalf("readline: %v", err)
	}
	if line != "ab" {
		t.Fatalf("line=%q, want %q", line, "ab")
	}
}

func TestReadLine_StreamEndReturnsPartialWithEOF(t *testing.T) {
	line, err := readFrom(t, "abc", Config{Prompt: "> "})
	if err != io.EOF {
		t.Fatalf("err=%v, want io.EOF", err)
	}
	if line != "abc" {
		t.Fatalf("line=%q, want %q", line, "abc")
	}
}

func TestReadLine_HistoryNavigationRoundTrip(t *testing.T) {
	hist := history.New()
	hist.Add("a")
	hist.Add("b")

	// Type "c", go up twice, down twice: back to the in-progress "c".
	line, err := readFrom(t, "c\x1b[A\x1b[A\x1b[B\x1b[B\r", Config{Prompt: "> ", History: hist})
	if err != nil {
		t.Fatalf("readline: %v", err)
	}
	if line != "c" {
		t.Fatalf("line=%q, want %q", line, "c")
	}
	if got, want := hist.Entries(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("history=%v, want %v", got, want)
	}
}

func TestReadLine_HistoryPrevRecallsEntry(t *testing.T) {
	hist := history.New()
	hist.Add("first")
	hist.Add("second")

	line, err := readFrom(t, "\x1b[A\r", Config{Prompt: "> ", History: hist})
	if err != nil {
		t.Fatalf("readline: %v", err)
	}
	if line != "second" {
		t.Fatalf("line=%q, want %q", line, "second")
	}
}

func TestReadLine_HistoryClampsAtOldest(t *testing.T) {
	hist := history.New()
	hist.Add("only")

	// Far more "up" presses than entries; clamped moves are no-ops.
	line, err := readFrom(t, "\x1b[A\x1b[A\x1b[A\x1b[A\r", Config{Prompt: "> ", History: hist})
	if err != nil {
		t.Fatalf("readline: %v", err)
	}
	if line != "only" {
		t.Fatalf("line=%q, want %q", line, "only")
	}
}

func TestReadLine_WordMotionAndDeletion(t *testing.T) {
	// meta-b to word start, meta-d deletes the word ahead.
	line, err := readFrom(t, "foo bar\x1bb\x1bd\r", Config{Prompt: "> "})
	if err != nil {
		t.Fatalf("readline: %v", err)
	}
	if line != "foo " {
		t.Fatalf("line=%q, want %q", line, "foo ")
	}
}

func TestReadLine_UnknownEscapeSequenceIgnored(t *testing.T) {
	line, err := readFrom(t, "ab\x1b[Zc\r", Config{Prompt: "> "})
	if err != nil {
		t.Fatalf("readline: %v", err)
	}
	if line != "abc" {
		t.Fatalf("line=%q, want %q", line, "abc")
	}
}

func TestReadLine_InsertCapacityExceededIsSilent(t *testing.T) {
	line, err := readFrom(t, "abcdef\r", Config{Prompt: "> ", MaxLineLen: 4})
	if err != nil {
		t.Fatalf("readline: %v", err)
	}
	if line != "abcd" {
		t.Fatalf("line=%q, want %q", line, "abcd")
	}
}

func TestReadLine_FastPathAppendsRawBytes(t *testing.T) {
	out := &bytes.Buffer{}
	line, err := readFrom(t, "hi\r", Config{Prompt: "> ", Out: out})
	if err != nil {
		t.Fatalf("readline: %v", err)
	}
	if line != "hi" {
		t.Fatalf("line=%q, want %q", line, "hi")
	}
	// End-of-line inserts with room to spare bypass the full refresh:
	// the output is just the prompt and the raw bytes.
	if got, want := out.String(), "> hi"; got != want {
		t.Fatalf("output=%q, want %q", got, want)
	}
}

func TestReadLine_TabWithoutCompleterInserts(t *testing.T) {
	line, err := readFrom(t, "a\tb\r", Config{Prompt: "> "})
	if err != nil {
		t.Fatalf("readline: %v", err)
	}
	if line != "a\tb" {
		t.Fatalf("line=%q, want %q", line, "a\tb")
	}
}

func TestReadLine_ScratchSlotDroppedOnAccept(t *testing.T) {
	hist := history.New()
	hist.Add("old")

	_, err := readFrom(t, "new\r", Config{Prompt: "> ", History: hist})
	if err != nil {
		t.Fatalf("readline: %v", err)
	}
	// Recording the accepted line is the caller's decision; the session
	// itself leaves history as it found it.
	if got, want := hist.Entries(), []string{"old"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("history=%v, want %v", got, want)
	}
}

func TestClearScreen(t *testing.T) {
	out := &bytes.Buffer{}
	e := New(Config{In: strings.NewReader(""), Out: out, Columns: 80})

	if err := e.ClearScreen(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got, want := out.String(), "\x1b[H\x1b[2J"; got != want {
		t.Fatalf("output=%q, want %q", got, want)
	}
}
