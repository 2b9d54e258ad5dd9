// Package linebuf provides the single-line edit buffer: byte content, a
// cursor that always sits on a character boundary, and bounds-checked
// mutation operations. It performs no I/O and knows nothing about the
// terminal; character stepping is delegated to an encoding.Strategy.
package linebuf

import "github.com/iw2rmb/lineedit/encoding"

// DefaultMaxLen is the byte capacity used when Options.MaxLen is zero.
const DefaultMaxLen = 4096

// Options configures a Buffer.
type Options struct {
	// Encoding used for character stepping. Defaults to encoding.ASCII.
	Encoding encoding.Strategy

	// MaxLen is the content capacity in bytes. Inserts that would exceed
	// it are dropped silently.
	MaxLen int
}

// Buffer is the pure edit state: bytes, cursor, capacity.
//
// Invariant after every operation: 0 <= Pos() <= Len() <= MaxLen().
type Buffer struct {
	enc encoding.Strategy
	b   []byte
	pos int
	max int
}

func New(opt Options) *Buffer {
	if opt.Encoding == nil {
		opt.Encoding = encoding.ASCII{}
	}
	if opt.MaxLen <= 0 {
		opt.MaxLen = DefaultMaxLen
	}
	return &Buffer{enc: opt.Encoding, max: opt.MaxLen}
}

func (b *Buffer) String() string { return string(b.b) }

// Bytes returns the live content slice. Callers must not modify it.
func (b *Buffer) Bytes() []byte { return b.b }

func (b *Buffer) Len() int { return len(b.b) }

func (b *Buffer) Pos() int { return b.pos }

func (b *Buffer) MaxLen() int { return b.max }

func (b *Buffer) Encoding() encoding.Strategy { return b.enc }

// Set replaces the content with s, truncated to capacity, and moves the
// cursor to the end.
func (b *Buffer) Set(s string) {
	if len(s) > b.max {
		s = s[:b.max]
	}
	b.b = append(b.b[:0], s...)
	b.pos = len(b.b)
}
