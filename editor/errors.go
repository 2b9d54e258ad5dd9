package editor

import "errors"

// ErrInterrupt is returned by ReadLine when the user aborts the line
// with Ctrl-C. End of input (Ctrl-D on an empty line, or the stream
// closing) is reported as io.EOF.
var ErrInterrupt = errors.New("lineedit: interrupted")
