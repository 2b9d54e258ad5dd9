// Package history provides the bounded, order-preserving store of past
// input lines that backs up/down navigation, plus newline-delimited file
// persistence.
package history

import "strings"

// DefaultMaxLen is the entry capacity of a zero-configured store.
const DefaultMaxLen = 100

// Store holds up to a configured number of lines, oldest first.
// No two adjacent entries are ever equal.
type Store struct {
	entries []string
	max     int
}

func New() *Store {
	return &Store{max: DefaultMaxLen}
}

// Add appends line, evicting the oldest entry when the store is full.
// Adding the same line twice in a row is a no-op, as is adding to a
// store whose capacity is zero. It reports whether an entry was added.
func (s *Store) Add(line string) bool {
	if s.max == 0 {
		return false
	}
	if n := len(s.entries); n > 0 && s.entries[n-1] == line {
		return false
	}
	if len(s.entries) >= s.max {
		drop := len(s.entries) - s.max + 1
		s.entries = append(s.entries[:0], s.entries[drop:]...)
	}
	s.entries = append(s.entries, line)
	return true
}

// SetMaxLen changes the capacity, retaining only the newest n entries
// when the store already holds more. n < 1 is rejected.
func (s *Store) SetMaxLen(n int) bool {
	if n < 1 {
		return false
	}
	if len(s.entries) > n {
		s.entries = append(s.entries[:0:0], s.entries[len(s.entries)-n:]...)
	}
	s.max = n
	return true
}

func (s *Store) Len() int { return len(s.entries) }

func (s *Store) MaxLen() int { return s.max }

// Get returns the entry at index i, oldest first.
func (s *Store) Get(i int) string { return s.entries[i] }

// Set overwrites the entry at index i. The editor uses it to mirror the
// live buffer into the slot being navigated away from.
func (s *Store) Set(i int, line string) { s.entries[i] = line }

// RemoveNewest drops the most recent entry, if any. The editor uses it
// to discard the session scratch slot.
func (s *Store) RemoveNewest() {
	if n := len(s.entries); n > 0 {
		s.entries = s.entries[:n-1]
	}
}

// Entries returns a copy of the stored lines, oldest first.
func (s *Store) Entries() []string {
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}

// PrefixMatches returns every entry beginning with prefix, compared
// case-insensitively, oldest first. Useful as a completion source.
func (s *Store) PrefixMatches(prefix string) []string {
	var out []string
	for _, e := range s.entries {
		if len(e) >= len(prefix) && strings.EqualFold(e[:len(prefix)], prefix) {
			out = append(out, e)
		}
	}
	return out
}
