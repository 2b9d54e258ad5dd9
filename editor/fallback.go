package editor

import (
	"fmt"
	"io"
	"strings"
)

// readPlainLine is the non-editing read path for piped input and for
// terminals that cannot interpret escape sequences. Only the latter get
// the prompt; pipes read silently and without a length cap.
func (e *Editor) readPlainLine(showPrompt bool) (string, error) {
	if showPrompt {
		if _, err := io.WriteString(e.out, e.prompt); err != nil {
			return "", fmt.Errorf("editor: write prompt: %w", err)
		}
	}

	var sb strings.Builder
	var b [1]byte
	for {
		_, err := e.in.Read(b[:])
		if err == io.EOF {
			if sb.Len() == 0 {
				return "", io.EOF
			}
			return trimLineEnding(sb.String()), nil
		}
		if err != nil {
			return "", fmt.Errorf("editor: read: %w", err)
		}
		if b[0] == '\n' {
			return trimLineEnding(sb.String()), nil
		}
		sb.WriteByte(b[0])
	}
}

func trimLineEnding(s string) string {
	return strings.TrimRight(s, "\r")
}
