// Command lineedit-demo is a small REPL exercising the editor: styled
// prompt, persistent history, Tab completion over a keyword set, and
// inline hints.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"

	"github.com/iw2rmb/lineedit/editor"
	"github.com/iw2rmb/lineedit/encoding"
	"github.com/iw2rmb/lineedit/history"
)

var keywords = []string{"hello", "help", "history", "clear", "exit"}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lineedit_history"
	}
	return filepath.Join(home, ".lineedit_history")
}

func completer(hist *history.Store) editor.Completer {
	return editor.CompleterFunc(func(line string) []string {
		var out []string
		for _, w := range keywords {
			if strings.HasPrefix(w, line) {
				out = append(out, w)
			}
		}
		for _, h := range hist.PrefixMatches(line) {
			if h != line {
				out = append(out, h)
			}
		}
		return out
	})
}

func hinter(line string) *editor.Hint {
	switch line {
	case "hello":
		return &editor.Hint{Text: " <name>", Color: 35}
	case "history":
		return &editor.Hint{Text: " [len N]", Color: 90}
	}
	return nil
}

func main() {
	multiline := flag.Bool("multiline", false, "wrap long lines across rows")
	histFile := flag.String("history", historyPath(), "history file")
	flag.Parse()

	out := termenv.NewOutput(os.Stdout)
	prompt := out.String("demo").Foreground(out.Color("6")).Bold().String() + "> "

	hist := history.New()
	if err := hist.Load(*histFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "lineedit-demo: %v\n", err)
	}

	ed := editor.New(editor.Config{
		Prompt:    prompt,
		Encoding:  encoding.UTF8{},
		History:   hist,
		Completer: completer(hist),
		Hinter:    editor.HinterFunc(hinter),
		Multiline: *multiline,
	})

	for {
		line, err := ed.ReadLine()
		switch {
		case err == editor.ErrInterrupt:
			continue
		case err == io.EOF:
			goodbye(hist, *histFile)
			return
		case err != nil:
			fmt.Fprintf(os.Stderr, "lineedit-demo: %v\n", err)
			os.Exit(1)
		}

		if line == "" {
			continue
		}
		hist.Add(line)

		switch {
		case line == "exit":
			goodbye(hist, *histFile)
			return
		case line == "clear":
			if err := ed.ClearScreen(); err != nil {
				fmt.Fprintf(os.Stderr, "lineedit-demo: %v\n", err)
			}
		case line == "history":
			for i, entry := range hist.Entries() {
				fmt.Printf("%4d  %s\n", i, entry)
			}
		case strings.HasPrefix(line, "history len "):
			var n int
			if _, err := fmt.Sscanf(line, "history len %d", &n); err != nil || !hist.SetMaxLen(n) {
				fmt.Println("usage: history len N (N >= 1)")
				continue
			}
			fmt.Printf("history capped at %d entries\n", n)
		default:
			fmt.Printf("echo: %s\n", line)
		}
	}
}

func goodbye(hist *history.Store, path string) {
	if err := hist.Save(path); err != nil {
		fmt.Fprintf(os.Stderr, "lineedit-demo: %v\n", err)
	}
}
