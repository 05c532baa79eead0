package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// Result is the outcome of running a command. ExitCode 0 means success; any other value is a
// failure described by Error.
type Result struct {
	ExitCode int
	Output   string
	Error    string
}

// OK reports whether the command succeeded.
func (r Result) OK() bool {
	return r.ExitCode == 0
}

// Failure returns a failed Result carrying err's message.
func Failure(err error) Result {
	msg := "<nil>"
	if err != nil {
		msg = err.Error()
	}
	return Result{ExitCode: 1, Error: msg}
}

// ParseAndExecute parses args and runs the selected command. A convenience function that combines
// [Parse] and [Execute] into a single call. Only parse failures are returned as errors; failures of
// the command itself are reported in the [Result].
func ParseAndExecute(
	ctx context.Context,
	commands []*Command,
	args []string,
	options *RunOptions,
) (Result, error) {
	inv, err := Parse(commands, args)
	if err != nil {
		return Result{}, err
	}
	return Execute(ctx, inv, options), nil
}

// RunOptions specifies options for running a command.
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard input, output, and error streams for the command.
	// If any of these are nil, the command will use the default streams ([os.Stdin], [os.Stdout],
	// and [os.Stderr], respectively).
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// TableWidth bounds the width of help tables. Zero means unbounded.
	TableWidth int

	// NoColor disables styling of help output even when Stdout is a terminal.
	NoColor bool
}

// Execute runs the command of a parsed invocation and returns its result. Blocking commands are
// called directly; for suspending commands Execute waits for their result or for ctx to be done.
//
// Execute never fails on its own: an error returned by the command, a panic, or a suspending
// command that completes without a result are all reported as a Result with ExitCode 1.
//
// The options parameter may be nil, in which case default values are used. See [RunOptions] for
// more details.
func Execute(ctx context.Context, inv *Invocation, options *RunOptions) Result {
	if inv == nil || inv.Command == nil {
		return Failure(errors.New("command has not been parsed"))
	}
	options = checkAndSetRunOptions(options)
	updateInvocation(inv, options)

	res, err := dispatch(ctx, inv)
	if err != nil {
		return Failure(&ExecutionError{Command: inv.Command.Name, Err: err})
	}
	if res.ExitCode != 0 && res.Error == "" {
		res.Error = fmt.Sprintf("command %q exited with code %d", inv.Command.Name, res.ExitCode)
	}
	return res
}

func dispatch(ctx context.Context, inv *Invocation) (Result, error) {
	exec := inv.Command.Exec
	switch exec.kind {
	case KindBlocking:
		return callBlocking(ctx, inv, exec.blocking)
	case KindSuspending:
		done, err := callSuspending(ctx, inv, exec.suspending)
		if err != nil {
			return Result{}, err
		}
		return await(ctx, done)
	default:
		return Result{}, errors.New("no execution function")
	}
}

func callBlocking(ctx context.Context, inv *Invocation, fn BlockingFunc) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = Result{}, fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(ctx, inv)
}

func callSuspending(ctx context.Context, inv *Invocation, fn SuspendingFunc) (done <-chan Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			done, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	done = fn(ctx, inv)
	if done == nil {
		return nil, errors.New("no result channel returned")
	}
	return done, nil
}

func await(ctx context.Context, done <-chan Result) (Result, error) {
	select {
	case res, ok := <-done:
		if !ok {
			return Result{}, errors.New("completed without a result")
		}
		return res, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

func updateInvocation(inv *Invocation, opt *RunOptions) {
	if inv.Stdin == nil {
		inv.Stdin = opt.Stdin
	}
	if inv.Stdout == nil {
		inv.Stdout = opt.Stdout
	}
	if inv.Stderr == nil {
		inv.Stderr = opt.Stderr
	}
	inv.tableWidth = opt.TableWidth
	inv.noColor = opt.NoColor
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	return opt
}
