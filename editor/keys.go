package editor

// Control bytes recognized by the decoder.
const (
	keyCtrlA     = 1
	keyCtrlB     = 2
	keyCtrlC     = 3
	keyCtrlD     = 4
	keyCtrlE     = 5
	keyCtrlF     = 6
	keyCtrlH     = 8
	keyTab       = 9
	keyLineFeed  = 10
	keyCtrlK     = 11
	keyCtrlL     = 12
	keyEnter     = 13
	keyCtrlN     = 14
	keyCtrlP     = 16
	keyCtrlT     = 20
	keyCtrlU     = 21
	keyCtrlW     = 23
	keyEsc       = 27
	keyBackspace = 127
)

// Action is the editing operation a decoded key maps to.
type Action int

const (
	// ActionNone is a silently discarded input, such as an unrecognized
	// escape sequence.
	ActionNone Action = iota

	// ActionInsert inserts Key.Bytes at the cursor.
	ActionInsert

	// ActionComplete is the Tab key; the session routes it to the
	// completer when one is registered and inserts it otherwise.
	ActionComplete

	ActionAccept
	ActionInterrupt

	// ActionDeleteOrEOF is Ctrl-D: delete-right on a non-empty buffer,
	// end of input on an empty one.
	ActionDeleteOrEOF

	ActionBackspace
	ActionDelete
	ActionTranspose
	ActionMoveLeft
	ActionMoveRight
	ActionMoveHome
	ActionMoveEnd
	ActionMoveWordStart
	ActionMoveWordEnd
	ActionHistoryPrev
	ActionHistoryNext
	ActionClearScreen
	ActionKillToEnd
	ActionKillWholeLine
	ActionDeletePrevWord
	ActionDeleteNextWord
)

// Key is one decoded input: an action plus, for insertions, the raw
// bytes of the character as read from the stream.
type Key struct {
	Action Action
	Bytes  []byte
	Code   rune
}
