package executor

import (
	"io"

	"github.com/mtscli/executor/pkg/style"
	"github.com/mtscli/executor/pkg/table"
)

// Help returns the help text of a command: its name, flags and description, followed by a table
// of its declared options. width bounds the table width; zero means unbounded.
func Help(c *Command, width int) style.Text {
	if c == nil {
		return nil
	}
	text := style.Text{
		style.Colored(style.Yellow, "Command name: "+c.Name),
		style.Colored(style.Yellow, "Flag: --"+c.Flag+", -"+c.ShortFlag),
		style.Colored(style.Yellow, "Description: "+c.Description),
		style.Plain(""),
	}
	if len(c.Options) == 0 {
		return text.Append(style.Colored(style.Yellow, "No options available for this command."))
	}

	t := table.Table{Header: []string{"Flag", "Short", "Description", "Required"}}
	for _, opt := range c.Options {
		short := ""
		if opt.ShortName != "" {
			short = "-" + opt.ShortName
		}
		required := "No"
		if opt.Required {
			required = "Yes"
		}
		t.Rows = append(t.Rows, []string{"--" + opt.Name, short, opt.Description, required})
	}
	text = text.Append(style.Colored(style.Yellow, "Options:"))
	return text.Append(table.Render(t, table.Options{MaxWidth: width})...)
}

// CommandList returns a table of the given commands with their flags and descriptions.
func CommandList(commands []*Command, width int) style.Text {
	t := table.Table{Header: []string{"Name", "Flag", "ShortFlag", "Description"}}
	for _, c := range commands {
		t.Rows = append(t.Rows, []string{c.Name, c.Flag, c.ShortFlag, c.Description})
	}
	return table.Render(t, table.Options{MaxWidth: width})
}

// WriteHelp writes the help text of c to w, colored when w is a terminal.
func WriteHelp(w io.Writer, c *Command) error {
	return style.Write(w, Help(c, 0), style.Enabled(w))
}
