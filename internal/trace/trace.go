// Package trace writes refresh-geometry diagnostics to a side file when
// the LINEEDIT_TRACE environment variable names one. Tracing must never
// touch the terminal the editor is drawing on.
package trace

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvVar is the environment variable holding the trace file path.
const EnvVar = "LINEEDIT_TRACE"

var (
	once   sync.Once
	logger *log.Logger
)

func get() *log.Logger {
	once.Do(func() {
		path := os.Getenv(EnvVar)
		if path == "" {
			return
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return
		}
		logger = log.New(f)
		logger.SetReportTimestamp(false)
	})
	return logger
}

// Enabled reports whether tracing is active for this process.
func Enabled() bool { return get() != nil }

// Logf writes one formatted trace line. A no-op when tracing is off.
func Logf(format string, args ...any) {
	if l := get(); l != nil {
		l.Printf(format, args...)
	}
}
