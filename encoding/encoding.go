// Package encoding defines the character encoding strategy used by the
// editor: how many bytes and terminal columns the character around a byte
// offset occupies, and how to read one logical character from an input
// stream. Strategies are swapped as a unit, never per function.
package encoding

import "io"

// Strategy answers byte-length and column-width questions for the
// character before or after a byte offset, and reads one logical
// character's bytes from a stream.
//
// Offsets passed to PrevCharLen and NextCharLen must lie on character
// boundaries for the strategy in use.
type Strategy interface {
	// PrevCharLen describes the character immediately before pos.
	// It returns (0, 0) when pos is at the start of the buffer.
	PrevCharLen(buf []byte, pos int) (byteLen, width int)

	// NextCharLen describes the character at pos.
	// It returns (0, 0) when pos is at or past the end of the buffer.
	NextCharLen(buf []byte, pos int) (byteLen, width int)

	// ReadChar blocks until one logical character has been read from r.
	// It returns the raw bytes and the decoded codepoint. On end of
	// input or read failure the returned error is non-nil and the
	// other results are unspecified.
	ReadChar(r io.Reader) (b []byte, code rune, err error)
}
