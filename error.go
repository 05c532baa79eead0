package executor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse matches every [ParseError] with [errors.Is], regardless of its code.
var ErrParse = errors.New("parse error")

// ErrorCode identifies the kind of a [ParseError]. An ErrorCode is itself an error, so callers can
// test for a specific kind with errors.Is:
//
//	if errors.Is(err, executor.ErrUnknownCommand) { ... }
type ErrorCode int

const (
	ErrEmptyInput ErrorCode = iota + 1
	ErrUnknownCommand
	ErrUnknownOption
	ErrUnexpectedArgument
	ErrMissingRequiredOption
)

func (c ErrorCode) String() string {
	return convertErrorCode(c)
}

func (c ErrorCode) Error() string {
	return convertErrorCode(c)
}

func convertErrorCode(code ErrorCode) string {
	switch code {
	case ErrEmptyInput:
		return "empty input"
	case ErrUnknownCommand:
		return "unknown command"
	case ErrUnknownOption:
		return "unknown option"
	case ErrUnexpectedArgument:
		return "unexpected argument"
	case ErrMissingRequiredOption:
		return "missing required option"
	default:
		return "unknown error"
	}
}

// ParseError is returned by [Parse] when the arguments do not match any command or do not satisfy
// the selected command's option schema.
type ParseError struct {
	Code ErrorCode

	// Command is the name of the resolved command. Empty for errors raised before a command was
	// selected.
	Command string

	// Token is the offending token: the unknown selector, the unknown option name, the unexpected
	// argument or the missing option name.
	Token string

	// Suggestions holds similar known names for unknown commands and options.
	Suggestions []string
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	var msg string
	switch e.Code {
	case ErrEmptyInput:
		return "input cannot be empty"
	case ErrUnknownCommand:
		msg = fmt.Sprintf("command %q not found", e.Token)
	case ErrUnknownOption:
		msg = fmt.Sprintf("unknown option %q for command %q", e.Token, e.Command)
	case ErrUnexpectedArgument:
		return fmt.Sprintf("unexpected argument %q", e.Token)
	case ErrMissingRequiredOption:
		return fmt.Sprintf("missing required option %q for command %q", e.Token, e.Command)
	default:
		return convertErrorCode(e.Code) + ": " + e.Token
	}
	if len(e.Suggestions) > 0 {
		msg += ". Did you mean one of these?\n\t" + strings.Join(e.Suggestions, "\n\t")
	}
	return msg
}

// Is reports whether target is [ErrParse] or the error's [ErrorCode].
func (e *ParseError) Is(target error) bool {
	if target == ErrParse {
		return true
	}
	code, ok := target.(ErrorCode)
	return ok && code == e.Code
}

// DiscoveryError is returned by [Registry.Load] when a command cannot be instantiated or its
// definition is invalid.
type DiscoveryError struct {
	// Name is the registration identity, or the command name for validation failures.
	Name string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("load command %q: %v", e.Name, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// ExecutionError describes a failure raised by a command's own logic. It never escapes [Execute];
// the dispatcher converts it into a failed [Result].
type ExecutionError struct {
	Command string
	Err     error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("command %q: %v", e.Command, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }
