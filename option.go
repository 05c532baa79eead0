package executor

import (
	"strings"

	"golang.org/x/text/cases"
)

// optionMarker is the leading character that distinguishes an option token from a value.
const optionMarker = "-"

// Option describes a single option accepted by a command.
type Option struct {
	// Name is the long name of the option, typed as --name. It identifies the option within its
	// command and is the key under which the parsed value is stored.
	Name string

	// ShortName is an alternate identifier, typed as -short. It may be empty.
	ShortName string

	// Description is shown in the command's help table.
	Description string

	// Required options must be present unless help was requested.
	Required bool
}

// helpOption is accepted by every command without being declared.
var helpOption = Option{
	Name:        "help",
	ShortName:   "h",
	Description: "Show help information",
}

// matches reports whether name selects the option, by long or short name.
func (o Option) matches(name string) bool {
	if name == "" {
		return false
	}
	return equalFold(o.Name, name) || (o.ShortName != "" && equalFold(o.ShortName, name))
}

func isOption(token string) bool {
	return strings.HasPrefix(token, optionMarker)
}

func trimMarker(token string) string {
	return strings.TrimLeft(token, optionMarker)
}

// fold returns the case-folded form of s, used for every case-insensitive comparison and as the
// key of parsed arguments.
func fold(s string) string {
	return cases.Fold().String(s)
}

func equalFold(a, b string) bool {
	return fold(a) == fold(b)
}
