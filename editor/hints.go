package editor

// Hint is optional styled text rendered after the buffer, typically a
// usage reminder for the command being typed. Color is an ANSI SGR
// foreground code (31..37); zero leaves the hint unstyled unless Bold is
// set, in which case white (37) is assumed.
type Hint struct {
	Text  string
	Color int
	Bold  bool
}

// Hinter supplies a hint for the current buffer contents. Returning nil
// or an empty Text renders nothing.
type Hinter interface {
	Hint(line string) *Hint
}

// HinterFunc adapts a function to the Hinter interface.
type HinterFunc func(line string) *Hint

func (f HinterFunc) Hint(line string) *Hint { return f(line) }

// Completer supplies candidate replacement lines for the current buffer
// contents, cycled by repeated Tab presses.
type Completer interface {
	Complete(line string) []string
}

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func(line string) []string

func (f CompleterFunc) Complete(line string) []string { return f(line) }
