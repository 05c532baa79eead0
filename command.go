package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/mtscli/executor/pkg/suggest"
)

// Command describes a command: how users select it, which options it accepts and how it runs.
type Command struct {
	// Name is the human-readable name of the command, shown in help and listings. It may contain
	// spaces.
	Name string

	// Flag is the selector users type to run the command.
	//
	// Example: "remove-dir"
	Flag string

	// ShortFlag is the short alternative to Flag.
	//
	// Example: "rm"
	ShortFlag string

	// Description is a brief description of the command's purpose.
	Description string

	// Options lists the options the command accepts, in the order they are shown in help. The
	// --help (-h) option is always accepted and must not be declared here.
	Options []Option

	// Exec defines the command's execution logic. Build it with [Blocking] or [Suspending].
	Exec Exec
}

// ExecKind tells the two execution styles apart.
type ExecKind int

const (
	// KindBlocking commands return their result directly.
	KindBlocking ExecKind = iota + 1
	// KindSuspending commands deliver their result later on a channel.
	KindSuspending
)

func (k ExecKind) String() string {
	switch k {
	case KindBlocking:
		return "blocking"
	case KindSuspending:
		return "suspending"
	default:
		return "none"
	}
}

// BlockingFunc runs a command to completion and returns its result. A non-nil error is reported
// as a failed [Result].
type BlockingFunc func(ctx context.Context, inv *Invocation) (Result, error)

// SuspendingFunc starts a command and returns a channel on which exactly one [Result] is sent
// when the command completes.
type SuspendingFunc func(ctx context.Context, inv *Invocation) <-chan Result

// Exec is the execution contract of a command: either a [BlockingFunc] or a [SuspendingFunc]. The
// zero value has no execution function and is rejected when commands are loaded or parsed.
type Exec struct {
	kind       ExecKind
	blocking   BlockingFunc
	suspending SuspendingFunc
}

// Blocking returns an Exec that runs fn synchronously. Like every Exec, it prints the command's
// help and succeeds without calling fn when --help was passed.
func Blocking(fn BlockingFunc) Exec {
	if fn == nil {
		return Exec{}
	}
	return Exec{
		kind: KindBlocking,
		blocking: func(ctx context.Context, inv *Invocation) (Result, error) {
			if inv.printHelpIfRequested() {
				return Result{}, nil
			}
			return fn(ctx, inv)
		},
	}
}

// Suspending returns an Exec whose result arrives on the channel returned by fn. Like every Exec,
// it prints the command's help and succeeds without calling fn when --help was passed.
func Suspending(fn SuspendingFunc) Exec {
	if fn == nil {
		return Exec{}
	}
	return Exec{
		kind: KindSuspending,
		suspending: func(ctx context.Context, inv *Invocation) <-chan Result {
			if inv.printHelpIfRequested() {
				done := make(chan Result, 1)
				done <- Result{}
				return done
			}
			return fn(ctx, inv)
		},
	}
}

// Kind returns the execution style, or 0 for the zero Exec.
func (e Exec) Kind() ExecKind {
	return e.kind
}

// effectiveOptions returns the declared options plus the implicit help option.
func (c *Command) effectiveOptions() []Option {
	options := make([]Option, 0, len(c.Options)+1)
	options = append(options, c.Options...)
	return append(options, helpOption)
}

func (c *Command) selectedBy(selector string) bool {
	return equalFold(c.Flag, selector) || equalFold(c.ShortFlag, selector)
}

func findCommand(commands []*Command, selector string) *Command {
	for _, c := range commands {
		if c.selectedBy(selector) {
			return c
		}
	}
	return nil
}

func findOption(options []Option, name string) (Option, bool) {
	for _, opt := range options {
		if opt.matches(name) {
			return opt, true
		}
	}
	return Option{}, false
}

func unknownCommandError(commands []*Command, selector string) error {
	known := make([]string, 0, len(commands))
	for _, c := range commands {
		known = append(known, c.Flag)
	}
	return &ParseError{
		Code:        ErrUnknownCommand,
		Token:       selector,
		Suggestions: suggest.FindSimilar(selector, known, 3),
	}
}

func unknownOptionError(c *Command, options []Option, name string) error {
	known := make([]string, 0, len(options))
	for _, opt := range options {
		known = append(known, opt.Name)
	}
	return &ParseError{
		Code:        ErrUnknownOption,
		Command:     c.Name,
		Token:       name,
		Suggestions: suggest.FindSimilar(name, known, 3),
	}
}

// validateCommands checks every command definition and the uniqueness of selectors across
// commands. All problems are reported, each as a [DiscoveryError].
func validateCommands(commands []*Command) error {
	var errs []error
	owners := make(map[string]*Command)
	for i, c := range commands {
		if c == nil {
			errs = append(errs, &DiscoveryError{Name: fmt.Sprintf("#%d", i), Err: errors.New("command is nil")})
			continue
		}
		if err := validateCommand(c); err != nil {
			errs = append(errs, &DiscoveryError{Name: c.Name, Err: err})
		}
		for _, selector := range []string{c.Flag, c.ShortFlag} {
			if selector == "" {
				continue
			}
			key := fold(selector)
			if owner, ok := owners[key]; ok && owner != c {
				errs = append(errs, &DiscoveryError{
					Name: c.Name,
					Err:  fmt.Errorf("flag %q is already used by command %q", selector, owner.Name),
				})
				continue
			}
			owners[key] = c
		}
	}
	return errors.Join(errs...)
}

func validateCommand(c *Command) error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return errors.New("command has no name")
	case strings.TrimSpace(c.Description) == "":
		return errors.New("command has no description")
	case c.Exec.Kind() == 0:
		return errors.New("command has no execution function")
	}
	if err := validateSelector("flag", c.Flag); err != nil {
		return err
	}
	if err := validateSelector("short flag", c.ShortFlag); err != nil {
		return err
	}

	seen := map[string]string{
		fold(helpOption.Name):      helpOption.Name,
		fold(helpOption.ShortName): helpOption.Name,
	}
	for _, opt := range c.Options {
		if err := validateSelector("option name", opt.Name); err != nil {
			return err
		}
		names := []string{opt.Name}
		if opt.ShortName != "" {
			if err := validateSelector("option short name", opt.ShortName); err != nil {
				return err
			}
			if !equalFold(opt.ShortName, opt.Name) {
				names = append(names, opt.ShortName)
			}
		}
		for _, name := range names {
			key := fold(name)
			if owner, ok := seen[key]; ok {
				return fmt.Errorf("option %q conflicts with option %q", name, owner)
			}
			seen[key] = opt.Name
		}
	}
	return nil
}

func validateSelector(kind, s string) error {
	if s == "" {
		return fmt.Errorf("%s is empty", kind)
	}
	if isOption(s) {
		return fmt.Errorf("%s %q must not start with %q", kind, s, optionMarker)
	}
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%s %q contains spaces, must be a single word", kind, s)
	}
	return nil
}
