package executor

import (
	"cmp"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/mfridman/xflag"

	"github.com/mtscli/executor/pkg/style"
)

// Invocation is the result of parsing one argument vector: the selected command and the values of
// its options. It is built by [Parse] and consumed by [Execute].
type Invocation struct {
	// RawArgs is a copy of the arguments passed to [Parse], including the program name.
	RawArgs []string

	// Command is the command selected by the first user argument.
	Command *Command

	// Arguments holds the parsed option values.
	Arguments Arguments

	// Standard I/O streams, set by [Execute] from [RunOptions].
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	tableWidth int
	noColor    bool
}

// HelpRequested reports whether --help or -h was passed.
func (inv *Invocation) HelpRequested() bool {
	return inv.Arguments.Has(helpOption.Name)
}

func (inv *Invocation) printHelpIfRequested() bool {
	if !inv.HelpRequested() {
		return false
	}
	w := inv.Stdout
	if w == nil {
		w = os.Stdout
	}
	_ = style.Write(w, Help(inv.Command, inv.tableWidth), !inv.noColor && style.Enabled(w))
	return true
}

// Arguments maps option names to their parsed string values. Lookups are case-insensitive and
// values are always stored under the option's long name, so -p and --path are read back with
// Get("path"). Options given without a value hold "true".
//
// The zero value is an empty, read-only set.
type Arguments struct {
	values map[string]argument
}

type argument struct {
	name  string
	value string
}

func (a *Arguments) set(name, value string) {
	if a.values == nil {
		a.values = make(map[string]argument)
	}
	a.values[fold(name)] = argument{name: name, value: value}
}

// Lookup returns the value of the named option and whether it was passed.
func (a Arguments) Lookup(name string) (string, bool) {
	arg, ok := a.values[fold(name)]
	return arg.value, ok
}

// Get returns the value of the named option, or the empty string if it was not passed.
func (a Arguments) Get(name string) string {
	v, _ := a.Lookup(name)
	return v
}

// Has reports whether the named option was passed.
func (a Arguments) Has(name string) bool {
	_, ok := a.Lookup(name)
	return ok
}

// Len returns the number of distinct options passed.
func (a Arguments) Len() int {
	return len(a.values)
}

// Names returns the long names of the options passed, sorted.
func (a Arguments) Names() []string {
	names := make([]string, 0, len(a.values))
	for _, arg := range a.values {
		names = append(names, arg.name)
	}
	slices.SortFunc(names, cmp.Compare[string])
	return names
}

// Map returns a copy of the arguments keyed by long option name.
func (a Arguments) Map() map[string]string {
	m := make(map[string]string, len(a.values))
	for _, arg := range a.values {
		m[arg.name] = arg.value
	}
	return m
}

// Bind decodes the arguments into the typed flags of fs. Every flag defined in fs whose name
// matches a passed option is set from that option's value; other flags keep their defaults and
// options without a matching flag are ignored. Example usage:
//
//	fs := flag.NewFlagSet("remove-dir", flag.ContinueOnError)
//	verbose := fs.Bool("verbose", false, "print deleted directories")
//	if err := inv.Arguments.Bind(fs); err != nil {
//	    return executor.Result{}, err
//	}
//
// Bind silences fs's own error output; decoding errors are returned instead.
func (a Arguments) Bind(fs *flag.FlagSet) error {
	var tokens []string
	fs.VisitAll(func(f *flag.Flag) {
		if v, ok := a.Lookup(f.Name); ok {
			tokens = append(tokens, "-"+f.Name+"="+v)
		}
	})
	fs.SetOutput(io.Discard)
	if err := xflag.ParseToEnd(fs, tokens); err != nil {
		return fmt.Errorf("bind options: %w", err)
	}
	return nil
}
