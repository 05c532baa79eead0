package executor

import (
	"fmt"
	"slices"
)

// Parse resolves the command selected by args and parses its options. It returns a [ParseError]
// if the arguments are invalid, and stops at the first problem found.
//
// args is the full argument vector, typically os.Args: the first element is the program name and
// is ignored. The next element selects the command by its Flag or ShortFlag. Every remaining
// element must be an option (-name or --name) optionally followed by a value. An option followed
// by another option, or by nothing, is a boolean option and holds "true". When an option is passed
// more than once, the last value wins.
//
// Required options are only enforced when help was not requested, so "cmd --help" always parses.
func Parse(commands []*Command, args []string) (*Invocation, error) {
	if err := validateCommands(commands); err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}
	if len(args) < 2 {
		return nil, &ParseError{Code: ErrEmptyInput}
	}
	parts := args[1:]

	selector := parts[0]
	cmd := findCommand(commands, selector)
	if cmd == nil {
		return nil, unknownCommandError(commands, selector)
	}
	options := cmd.effectiveOptions()

	var arguments Arguments
	for i := 1; i < len(parts); i++ {
		part := parts[i]
		if !isOption(part) {
			return nil, &ParseError{Code: ErrUnexpectedArgument, Command: cmd.Name, Token: part}
		}
		name := trimMarker(part)
		opt, ok := findOption(options, name)
		if !ok {
			return nil, unknownOptionError(cmd, options, name)
		}
		value := "true"
		if i+1 < len(parts) && !isOption(parts[i+1]) {
			value = parts[i+1]
			i++
		}
		arguments.set(opt.Name, value)
	}

	if !arguments.Has(helpOption.Name) {
		for _, opt := range cmd.Options {
			if opt.Required && !arguments.Has(opt.Name) {
				return nil, &ParseError{Code: ErrMissingRequiredOption, Command: cmd.Name, Token: opt.Name}
			}
		}
	}

	return &Invocation{
		RawArgs:   slices.Clone(args),
		Command:   cmd,
		Arguments: arguments,
	}, nil
}
