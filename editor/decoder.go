package editor

import (
	"io"

	"github.com/iw2rmb/lineedit/encoding"
)

// Decoder turns the raw byte stream of a terminal in raw mode into
// discrete editing actions. It is a pure function of the stream, so it
// can be driven from any io.Reader.
type Decoder struct {
	r   io.Reader
	enc encoding.Strategy
}

func NewDecoder(r io.Reader, enc encoding.Strategy) *Decoder {
	if enc == nil {
		enc = encoding.ASCII{}
	}
	return &Decoder{r: r, enc: enc}
}

// Next reads one logical character and decodes it, consuming further
// bytes when it opens an escape sequence.
func (d *Decoder) Next() (Key, error) {
	b, code, err := d.enc.ReadChar(d.r)
	if err != nil {
		return Key{}, err
	}
	return d.Decode(b, code)
}

// Decode classifies an already-read character. Escape sequences pull
// their remaining bytes from the stream.
func (d *Decoder) Decode(b []byte, code rune) (Key, error) {
	switch code {
	case keyEnter, keyLineFeed:
		return Key{Action: ActionAccept, Code: code}, nil
	case keyCtrlC:
		return Key{Action: ActionInterrupt, Code: code}, nil
	case keyCtrlD:
		return Key{Action: ActionDeleteOrEOF, Code: code}, nil
	case keyBackspace, keyCtrlH:
		return Key{Action: ActionBackspace, Code: code}, nil
	case keyCtrlT:
		return Key{Action: ActionTranspose, Code: code}, nil
	case keyCtrlB:
		return Key{Action: ActionMoveLeft, Code: code}, nil
	case keyCtrlF:
		return Key{Action: ActionMoveRight, Code: code}, nil
	case keyCtrlP:
		return Key{Action: ActionHistoryPrev, Code: code}, nil
	case keyCtrlN:
		return Key{Action: ActionHistoryNext, Code: code}, nil
	case keyCtrlA:
		return Key{Action: ActionMoveHome, Code: code}, nil
	case keyCtrlE:
		return Key{Action: ActionMoveEnd, Code: code}, nil
	case keyCtrlL:
		return Key{Action: ActionClearScreen, Code: code}, nil
	case keyCtrlU:
		return Key{Action: ActionKillWholeLine, Code: code}, nil
	case keyCtrlK:
		return Key{Action: ActionKillToEnd, Code: code}, nil
	case keyCtrlW:
		return Key{Action: ActionDeletePrevWord, Code: code}, nil
	case keyTab:
		return Key{Action: ActionComplete, Bytes: b, Code: code}, nil
	case keyEsc:
		return d.decodeEscape()
	default:
		return Key{Action: ActionInsert, Bytes: b, Code: code}, nil
	}
}

// Escape decoding states. One byte is consumed per transition.
type escState int

const (
	escSeen escState = iota
	escBracketSeen
	escBracketDigitSeen
	escKeypadSeen
	escDiscard
)

// decodeEscape runs the escape-sequence state machine. Sequences that
// do not map to an action decode to ActionNone so the session silently
// discards them.
func (d *Decoder) decodeEscape() (Key, error) {
	state := escSeen
	var digit byte

	for {
		b, err := d.readByte()
		if err != nil {
			return Key{}, err
		}

		switch state {
		case escSeen:
			switch {
			case b == '[':
				state = escBracketSeen
			case b == 'O':
				state = escKeypadSeen
			case b >= '0' && b <= '9':
				state = escDiscard
			default:
				// Meta sequence.
				switch b {
				case 'f':
					return Key{Action: ActionMoveWordEnd}, nil
				case 'b':
					return Key{Action: ActionMoveWordStart}, nil
				case 'd':
					return Key{Action: ActionDeleteNextWord}, nil
				default:
					return Key{Action: ActionNone}, nil
				}
			}

		case escBracketSeen:
			if b >= '0' && b <= '9' {
				digit = b
				state = escBracketDigitSeen
				continue
			}
			switch b {
			case 'A':
				return Key{Action: ActionHistoryPrev}, nil
			case 'B':
				return Key{Action: ActionHistoryNext}, nil
			case 'C':
				return Key{Action: ActionMoveRight}, nil
			case 'D':
				return Key{Action: ActionMoveLeft}, nil
			case 'H':
				return Key{Action: ActionMoveHome}, nil
			case 'F':
				return Key{Action: ActionMoveEnd}, nil
			case 'd':
				return Key{Action: ActionDeleteNextWord}, nil
			default:
				return Key{Action: ActionNone}, nil
			}

		case escBracketDigitSeen:
			if b != '~' {
				return Key{Action: ActionNone}, nil
			}
			switch digit {
			case '3':
				return Key{Action: ActionDelete}, nil
			case '1':
				return Key{Action: ActionMoveHome}, nil
			case '4':
				return Key{Action: ActionMoveEnd}, nil
			default:
				return Key{Action: ActionNone}, nil
			}

		case escKeypadSeen:
			switch b {
			case 'H':
				return Key{Action: ActionMoveHome}, nil
			case 'F':
				return Key{Action: ActionMoveEnd}, nil
			default:
				return Key{Action: ActionNone}, nil
			}

		case escDiscard:
			return Key{Action: ActionNone}, nil
		}
	}
}

func (d *Decoder) readByte() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(d.r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}
