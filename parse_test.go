package executor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testState holds the commands used by the parser tests
//
//	sample (s)        --alpha/-a (required) --beta/-b
//	remove-dir (rm)   --path/-p (required) --directories/-d --verbose/-v (required)
//	list (l)          no options
type testState struct {
	sample, remove, list *Command
	commands             []*Command
}

func newTestState() testState {
	exec := Blocking(func(ctx context.Context, inv *Invocation) (Result, error) {
		return Result{}, errors.New("not implemented")
	})
	sample := &Command{
		Name:        "Sample",
		Flag:        "sample",
		ShortFlag:   "s",
		Description: "sample command",
		Options: []Option{
			{Name: "alpha", ShortName: "a", Description: "first", Required: true},
			{Name: "beta", ShortName: "b", Description: "second"},
		},
		Exec: exec,
	}
	remove := &Command{
		Name:        "Directory remover",
		Flag:        "remove-dir",
		ShortFlag:   "rm",
		Description: "deletes directories",
		Options: []Option{
			{Name: "path", ShortName: "p", Required: true},
			{Name: "directories", ShortName: "d"},
			{Name: "verbose", ShortName: "v", Required: true},
		},
		Exec: exec,
	}
	list := &Command{
		Name:        "List modules",
		Flag:        "list",
		ShortFlag:   "l",
		Description: "lists commands",
		Exec:        exec,
	}
	return testState{
		sample:   sample,
		remove:   remove,
		list:     list,
		commands: []*Command{sample, remove, list},
	}
}

func requireParseError(t *testing.T, err error, code ErrorCode) *ParseError {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrParse)
	require.ErrorIs(t, err, code)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	return perr
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("value and boolean options", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		inv, err := Parse(s.commands, []string{"prog", "sample", "-a", "1", "-b"})
		require.NoError(t, err)
		assert.Equal(t, s.sample, inv.Command)
		assert.Equal(t, map[string]string{"alpha": "1", "beta": "true"}, inv.Arguments.Map())
		assert.Equal(t, []string{"prog", "sample", "-a", "1", "-b"}, inv.RawArgs)
	})
	t.Run("last write wins", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		inv, err := Parse(s.commands, []string{"prog", "sample", "-b", "1", "-b", "2", "-a"})
		require.NoError(t, err)
		assert.Equal(t, "2", inv.Arguments.Get("beta"))
		assert.Equal(t, 2, inv.Arguments.Len())
	})
	t.Run("last write wins across long and short names", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		inv, err := Parse(s.commands, []string{"prog", "s", "-a", "1", "--alpha", "2"})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"alpha": "2"}, inv.Arguments.Map())
	})
	t.Run("option followed by option is boolean", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		inv, err := Parse(s.commands, []string{"prog", "sample", "-b", "-a", "1"})
		require.NoError(t, err)
		assert.Equal(t, "true", inv.Arguments.Get("beta"))
		assert.Equal(t, "1", inv.Arguments.Get("alpha"))
	})
	t.Run("any number of markers", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		inv, err := Parse(s.commands, []string{"prog", "sample", "--alpha", "x", "---beta", "y"})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"alpha": "x", "beta": "y"}, inv.Arguments.Map())
	})
	t.Run("selector and options are case insensitive", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		inv, err := Parse(s.commands, []string{"prog", "SAMPLE", "--ALPHA", "Value"})
		require.NoError(t, err)
		assert.Equal(t, s.sample, inv.Command)
		assert.Equal(t, []string{"alpha"}, inv.Arguments.Names())
		assert.Equal(t, "Value", inv.Arguments.Get("Alpha"))
	})
	t.Run("short flag selects command", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		inv, err := Parse(s.commands, []string{"prog", "RM", "-p", ".", "-v"})
		require.NoError(t, err)
		assert.Equal(t, s.remove, inv.Command)
	})
	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		s := newTestState()
		args := []string{"prog", "rm", "-p", "/tmp", "-d", "bin;obj", "-v"}

		first, err := Parse(s.commands, args)
		require.NoError(t, err)
		second, err := Parse(s.commands, args)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
	t.Run("raw args are copied", func(t *testing.T) {
		t.Parallel()
		s := newTestState()
		args := []string{"prog", "list"}

		inv, err := Parse(s.commands, args)
		require.NoError(t, err)
		args[1] = "changed"
		assert.Equal(t, []string{"prog", "list"}, inv.RawArgs)
	})
	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		_, err := Parse(s.commands, []string{"prog"})
		requireParseError(t, err, ErrEmptyInput)

		_, err = Parse(s.commands, nil)
		requireParseError(t, err, ErrEmptyInput)
	})
	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		_, err := Parse(s.commands, []string{"prog", "bogus"})
		perr := requireParseError(t, err, ErrUnknownCommand)
		assert.Equal(t, "bogus", perr.Token)
		assert.Empty(t, perr.Suggestions)
		assert.EqualError(t, err, `command "bogus" not found`)
	})
	t.Run("unknown command with suggestion", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		_, err := Parse(s.commands, []string{"prog", "lst"})
		perr := requireParseError(t, err, ErrUnknownCommand)
		assert.Equal(t, []string{"list"}, perr.Suggestions)
		assert.ErrorContains(t, err, "Did you mean one of these?\n\tlist")
	})
	t.Run("selector must not be an option", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		_, err := Parse(s.commands, []string{"prog", "--sample"})
		requireParseError(t, err, ErrUnknownCommand)
	})
	t.Run("unknown option", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		_, err := Parse(s.commands, []string{"prog", "sample", "-z"})
		perr := requireParseError(t, err, ErrUnknownOption)
		assert.Equal(t, "z", perr.Token)
		assert.Equal(t, "Sample", perr.Command)
	})
	t.Run("unknown option with suggestion", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		_, err := Parse(s.commands, []string{"prog", "rm", "--verbos"})
		perr := requireParseError(t, err, ErrUnknownOption)
		assert.Equal(t, []string{"verbose"}, perr.Suggestions)
	})
	t.Run("bare marker is an unknown option", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		_, err := Parse(s.commands, []string{"prog", "sample", "--"})
		perr := requireParseError(t, err, ErrUnknownOption)
		assert.Empty(t, perr.Token)
	})
	t.Run("unexpected argument", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		_, err := Parse(s.commands, []string{"prog", "sample", "stray", "other"})
		perr := requireParseError(t, err, ErrUnexpectedArgument)
		assert.Equal(t, "stray", perr.Token)
		assert.EqualError(t, err, `unexpected argument "stray"`)
	})
	t.Run("unexpected argument after value", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		_, err := Parse(s.commands, []string{"prog", "sample", "-a", "1", "2"})
		perr := requireParseError(t, err, ErrUnexpectedArgument)
		assert.Equal(t, "2", perr.Token)
	})
	t.Run("stops at first error", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		_, err := Parse(s.commands, []string{"prog", "sample", "-z", "-y"})
		perr := requireParseError(t, err, ErrUnknownOption)
		assert.Equal(t, "z", perr.Token)
	})
	t.Run("missing required option", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		_, err := Parse(s.commands, []string{"prog", "sample"})
		perr := requireParseError(t, err, ErrMissingRequiredOption)
		assert.Equal(t, "alpha", perr.Token)
		assert.EqualError(t, err, `missing required option "alpha" for command "Sample"`)
	})
	t.Run("missing required options reported in declaration order", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		_, err := Parse(s.commands, []string{"prog", "rm", "-v"})
		perr := requireParseError(t, err, ErrMissingRequiredOption)
		assert.Equal(t, "path", perr.Token)
	})
	t.Run("help bypasses required options", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		for _, token := range []string{"--help", "-h", "-H", "--HELP"} {
			inv, err := Parse(s.commands, []string{"prog", "sample", token})
			require.NoError(t, err, token)
			assert.True(t, inv.HelpRequested(), token)
			assert.Equal(t, []string{"help"}, inv.Arguments.Names())
		}
	})
	t.Run("help bypasses required options alongside other options", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		inv, err := Parse(s.commands, []string{"prog", "rm", "-d", "bin", "--help"})
		require.NoError(t, err)
		assert.True(t, inv.HelpRequested())
		assert.Equal(t, "bin", inv.Arguments.Get("directories"))
	})
	t.Run("help consumes a value", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		inv, err := Parse(s.commands, []string{"prog", "list", "-h", "me"})
		require.NoError(t, err)
		assert.Equal(t, "me", inv.Arguments.Get("help"))
		assert.True(t, inv.HelpRequested())
	})
	t.Run("value starting with marker is never consumed", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		_, err := Parse(s.commands, []string{"prog", "sample", "-a", "-1"})
		perr := requireParseError(t, err, ErrUnknownOption)
		assert.Equal(t, "1", perr.Token)
	})
	t.Run("invalid commands", func(t *testing.T) {
		t.Parallel()
		s := newTestState()
		s.list.ShortFlag = "S"

		_, err := Parse(s.commands, []string{"prog", "list"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrParse)
		var derr *DiscoveryError
		require.ErrorAs(t, err, &derr)
		assert.ErrorContains(t, err, `failed to parse: load command "List modules": flag "S" is already used by command "Sample"`)
	})
	t.Run("no commands", func(t *testing.T) {
		t.Parallel()

		_, err := Parse(nil, []string{"prog", "list"})
		requireParseError(t, err, ErrUnknownCommand)
	})
}
