// Package style holds styled text as plain values. Text is built without touching any output
// stream; only [Write] applies the styling, as ANSI escape sequences, when asked to.
package style

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Color is a foreground color.
type Color int

const (
	Default Color = iota
	Red
	Green
	Yellow
	DarkBlue
	Cyan
	Gray
	DarkGray
)

// ansi holds the SGR parameter for each color.
var ansi = map[Color]string{
	Red:      "31",
	Green:    "32",
	Yellow:   "33",
	DarkBlue: "34",
	Cyan:     "36",
	Gray:     "37",
	DarkGray: "90",
}

// Span is a run of text in a single color.
type Span struct {
	Text  string
	Color Color
}

// Line is a single line of output, without the trailing newline.
type Line []Span

// Text is a sequence of lines.
type Text []Line

// Colored returns a line holding s in color c.
func Colored(c Color, s string) Line {
	return Line{{Text: s, Color: c}}
}

// Plain returns an unstyled line.
func Plain(s string) Line {
	return Line{{Text: s}}
}

func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// String returns the text without styling, one line per row, each terminated by a newline.
func (t Text) String() string {
	var b strings.Builder
	for _, l := range t {
		b.WriteString(l.String())
		b.WriteRune('\n')
	}
	return b.String()
}

// Append returns t followed by o.
func (t Text) Append(o ...Line) Text {
	return append(t, o...)
}

// Write writes t to w. When color is false the output equals t.String().
func Write(w io.Writer, t Text, color bool) error {
	if !color {
		_, err := io.WriteString(w, t.String())
		return err
	}
	var b strings.Builder
	for _, l := range t {
		for _, s := range l {
			code, ok := ansi[s.Color]
			if !ok || s.Text == "" {
				b.WriteString(s.Text)
				continue
			}
			b.WriteString("\x1b[" + code + "m")
			b.WriteString(s.Text)
			b.WriteString("\x1b[0m")
		}
		b.WriteRune('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Enabled reports whether w is a terminal that should receive colored output.
func Enabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
