package main

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"questlog/internal/progress"
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

func renderStatus(status progress.Status, colorize bool) string {
	label := string(status)
	if !colorize {
		return label
	}
	switch status {
	case progress.StatusSolved:
		return ansiGreen + label + ansiReset
	case progress.StatusAttempted:
		return ansiYellow + label + ansiReset
	default:
		return label
	}
}

// displayCategory renders stored category slugs the way the backend's own
// frontend shows them: known short names uppercased, anything else titled.
func displayCategory(category string) string {
	trimmed := strings.TrimSpace(category)
	if len(trimmed) <= 3 {
		return strings.ToUpper(trimmed)
	}
	return cases.Title(language.Und).String(trimmed)
}

func displayDifficulty(difficulty string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(difficulty))
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
