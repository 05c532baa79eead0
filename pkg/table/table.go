// Package table renders rows of text as a bordered table:
//
//	+------+-------+
//	| Name | Flag  |
//	+------+-------+
//	| List | list  |
//	+------+-------+
package table

import (
	"strings"
	"unicode/utf8"

	"github.com/mtscli/executor/pkg/style"
	"github.com/mtscli/executor/pkg/textutil"
)

// minColumnWidth is the narrowest a column is shrunk to when the table exceeds its maximum width.
const minColumnWidth = 5

// Table is a header row followed by body rows. Rows may have fewer cells than the widest row.
type Table struct {
	Header []string
	Rows   [][]string
}

// Options control rendering.
type Options struct {
	// MaxWidth is the maximum total width of the table. Columns are shrunk proportionally, and
	// their cells wrapped, to fit. Zero means unbounded.
	MaxWidth int
}

// Render returns the table as styled text: borders in dark gray, the header in cyan and body rows
// in gray. An empty table renders as a single notice line.
func Render(t Table, opts Options) style.Text {
	rows := make([][]string, 0, len(t.Rows)+1)
	if len(t.Header) > 0 {
		rows = append(rows, t.Header)
	}
	rows = append(rows, t.Rows...)
	if len(rows) == 0 {
		return style.Text{style.Colored(style.Yellow, "Nothing to show here.")}
	}

	widths := columnWidths(rows)
	fit(widths, opts.MaxWidth)

	separator := separatorLine(widths)
	out := style.Text{style.Colored(style.DarkGray, separator)}
	for i, row := range rows {
		color := style.Gray
		if i == 0 && len(t.Header) > 0 {
			color = style.Cyan
		}
		for _, line := range rowLines(row, widths) {
			out = append(out, style.Colored(color, line))
		}
		out = append(out, style.Colored(style.DarkGray, separator))
	}
	return out
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}
	return widths
}

// fit shrinks widths in place so the rendered table is at most maxWidth wide. Every cell takes
// three characters of padding and border, plus one for the closing border.
func fit(widths []int, maxWidth int) {
	if maxWidth <= 0 {
		return
	}
	sum := 0
	for _, w := range widths {
		sum += w
	}
	overhead := 3*len(widths) + 1
	if sum == 0 || sum+overhead <= maxWidth {
		return
	}
	ratio := float64(maxWidth-overhead) / float64(sum)
	for i, w := range widths {
		widths[i] = max(minColumnWidth, int(float64(w)*ratio))
	}
}

func separatorLine(widths []int) string {
	var b strings.Builder
	b.WriteRune('+')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteRune('+')
	}
	return b.String()
}

func rowLines(row []string, widths []int) []string {
	cells := make([][]string, len(widths))
	height := 1
	for i, w := range widths {
		var cell string
		if i < len(row) {
			cell = row[i]
		}
		cells[i] = textutil.Fit(cell, w)
		height = max(height, len(cells[i]))
	}

	lines := make([]string, 0, height)
	for n := 0; n < height; n++ {
		var b strings.Builder
		b.WriteRune('|')
		for i, w := range widths {
			var part string
			if n < len(cells[i]) {
				part = cells[i][n]
			}
			b.WriteString(" " + textutil.PadRight(part, w) + " |")
		}
		lines = append(lines, b.String())
	}
	return lines
}
