package encoding

import (
	"io"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// UTF8 treats each grapheme cluster as one character. Cluster boundaries
// come from uniseg and column widths from runewidth, so combining marks
// stay attached to their base and wide CJK glyphs count as two columns.
type UTF8 struct{}

func (UTF8) NextCharLen(buf []byte, pos int) (int, int) {
	if pos < 0 || pos >= len(buf) {
		return 0, 0
	}
	cluster, _, _, _ := uniseg.FirstGraphemeCluster(buf[pos:], -1)
	if len(cluster) == 0 {
		return 0, 0
	}
	return len(cluster), runewidth.StringWidth(string(cluster))
}

func (u UTF8) PrevCharLen(buf []byte, pos int) (int, int) {
	if pos <= 0 || pos > len(buf) {
		return 0, 0
	}
	// Grapheme boundaries only segment forward; scan from the start and
	// keep the last cluster that ends at pos.
	off := 0
	for off < pos {
		n, w := u.NextCharLen(buf, off)
		if n == 0 {
			return 0, 0
		}
		if off+n >= pos {
			return n, w
		}
		off += n
	}
	return 0, 0
}

func (UTF8) ReadChar(r io.Reader) ([]byte, rune, error) {
	var b [utf8.UTFMax]byte
	if _, err := io.ReadFull(r, b[:1]); err != nil {
		return nil, 0, err
	}

	n := seqLen(b[0])
	if n > 1 {
		if _, err := io.ReadFull(r, b[1:n]); err != nil {
			return nil, 0, err
		}
	}

	code, _ := utf8.DecodeRune(b[:n])
	out := make([]byte, n)
	copy(out, b[:n])
	return out, code, nil
}

// seqLen returns the byte length of a UTF-8 sequence from its lead byte.
// Invalid lead bytes count as a single byte so the stream stays in sync.
func seqLen(lead byte) int {
	switch {
	case lead&0x80 == 0:
		return 1
	case lead&0xe0 == 0xc0:
		return 2
	case lead&0xf0 == 0xe0:
		return 3
	case lead&0xf8 == 0xf0:
		return 4
	default:
		return 1
	}
}
