package history

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Save writes all entries to path, newline-delimited. The file is
// created with owner-only read/write permission.
func (s *Store) Save(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("history: save %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for _, e := range s.entries {
		w.WriteString(e)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("history: save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("history: save %s: %w", path, err)
	}
	return nil
}

// Load reads newline-delimited entries from path, feeding each through
// Add, so capacity and duplicate suppression apply as usual.
func (s *Store) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("history: load %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		s.Add(line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("history: load %s: %w", path, err)
	}
	return nil
}
