package encoding

import "io"

// ASCII is the default strategy: every byte is one character occupying
// one terminal column.
type ASCII struct{}

func (ASCII) PrevCharLen(buf []byte, pos int) (int, int) {
	if pos <= 0 || pos > len(buf) {
		return 0, 0
	}
	return 1, 1
}

func (ASCII) NextCharLen(buf []byte, pos int) (int, int) {
	if pos < 0 || pos >= len(buf) {
		return 0, 0
	}
	return 1, 1
}

func (ASCII) ReadChar(r io.Reader) ([]byte, rune, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return nil, 0, err
	}
	return []byte{b[0]}, rune(b[0]), nil
}
