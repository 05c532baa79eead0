package textutil

import (
	"strings"
	"unicode/utf8"
)

// Wrap splits text into lines of at most width runes, breaking at spaces. A word longer than
// width is kept whole on its own line; use [Fit] to split it as well.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	var (
		lines         []string
		currentLine   []string
		currentLength int
	)
	for _, word := range words {
		n := utf8.RuneCountInString(word)
		if currentLength+n+1 > width {
			if len(currentLine) > 0 {
				lines = append(lines, strings.Join(currentLine, " "))
				currentLine = []string{word}
				currentLength = n
			} else {
				lines = append(lines, word)
			}
		} else {
			currentLine = append(currentLine, word)
			if currentLength == 0 {
				currentLength = n
			} else {
				currentLength += n + 1
			}
		}
	}
	if len(currentLine) > 0 {
		lines = append(lines, strings.Join(currentLine, " "))
	}
	return lines
}

// Fit wraps text like [Wrap] and then cuts any line still longer than width into chunks of width
// runes. It always returns at least one line, which is empty for blank text.
func Fit(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	var lines []string
	for _, line := range Wrap(text, width) {
		lines = append(lines, Chunk(line, width)...)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// Chunk splits s into consecutive pieces of at most width runes.
func Chunk(s string, width int) []string {
	if width <= 0 || utf8.RuneCountInString(s) <= width {
		return []string{s}
	}
	var chunks []string
	runes := []rune(s)
	for len(runes) > width {
		chunks = append(chunks, string(runes[:width]))
		runes = runes[width:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}

// PadRight pads s with spaces to width runes.
func PadRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
