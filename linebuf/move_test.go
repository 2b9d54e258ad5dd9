package linebuf

import (
	"testing"

	"github.com/iw2rmb/lineedit/encoding"
)

func TestBuffer_MoveLeftRight_Boundaries(t *testing.T) {
	b := newASCII("ab")

	if b.MoveRight() {
		t.Fatalf("move right at end must be a no-op")
	}
	if !b.MoveLeft() || b.Pos() != 1 {
		t.Fatalf("move left: pos=%d, want 1", b.Pos())
	}
	b.SetPos(0)
	if b.MoveLeft() {
		t.Fatalf("move left at start must be a no-op")
	}
}

func TestBuffer_MoveLeftRight_MultiByte(t *testing.T) {
	b := New(Options{Encoding: encoding.UTF8{}})
	b.Set("aテb")

	b.SetPos(0)
	if !b.MoveRight() || b.Pos() != 1 {
		t.Fatalf("pos=%d, want 1", b.Pos())
	}
	if !b.MoveRight() || b.Pos() != 4 {
		t.Fatalf("pos=%d, want 4 (past 3-byte cluster)", b.Pos())
	}
	if !b.MoveLeft() || b.Pos() != 1 {
		t.Fatalf("pos=%d, want 1", b.Pos())
	}
}

func TestBuffer_MoveHomeEnd(t *testing.T) {
	b := newASCII("hello")
	b.SetPos(2)

	if !b.MoveHome() || b.Pos() != 0 {
		t.Fatalf("home: pos=%d, want 0", b.Pos())
	}
	if b.MoveHome() {
		t.Fatalf("home at start must be a no-op")
	}
	if !b.MoveEnd() || b.Pos() != 5 {
		t.Fatalf("end: pos=%d, want 5", b.Pos())
	}
	if b.MoveEnd() {
		t.Fatalf("end at end must be a no-op")
	}
}

func TestBuffer_MoveWordStart(t *testing.T) {
	cases := []struct {
		text string
		pos  int
		want int
	}{
		{text: "foo bar", pos: 7, want: 4},
		{text: "foo bar", pos: 4, want: 0},  // leading spaces skipped first
		{text: "foo   bar", pos: 6, want: 0},
		{text: "foo bar", pos: 5, want: 4},
		{text: "foo", pos: 0, want: 0},
	}

	for _, tc := range cases {
		b := newASCII(tc.text)
		b.SetPos(tc.pos)
		b.MoveWordStart()
		if got := b.Pos(); got != tc.want {
			t.Fatalf("MoveWordStart(%q@%d): pos=%d, want %d", tc.text, tc.pos, got, tc.want)
		}
	}
}

func TestBuffer_MoveWordEnd(t *testing.T) {
	cases := []struct {
		text string
		pos  int
		want int
	}{
		{text: "foo bar", pos: 0, want: 3},
		{text: "foo bar", pos: 3, want: 7}, // spaces skipped, then word
		{text: "foo   ", pos: 3, want: 6},
		{text: "foo", pos: 3, want: 3},
	}

	for _, tc := range cases {
		b := newASCII(tc.text)
		b.SetPos(tc.pos)
		b.MoveWordEnd()
		if got := b.Pos(); got != tc.want {
			t.Fatalf("MoveWordEnd(%q@%d): pos=%d, want %d", tc.text, tc.pos, got, tc.want)
		}
	}
}

func TestBuffer_Set_TruncatesToCapacity(t *testing.T) {
	b := New(Options{MaxLen: 3})
	b.Set("abcdef")

	if got, want := b.String(), "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Pos(), 3; got != want {
		t.Fatalf("pos=%d, want %d", got, want)
	}
}
