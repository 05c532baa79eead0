// Package executor provides a small command dispatch framework for command-line tools. It resolves
// a command from the first user argument, parses the remaining arguments against the command's
// declared options, and runs the command through a single execution contract that covers both
// blocking and suspending commands.
//
// Commands are registered explicitly in a [Registry], parsed with [Parse] and run with [Execute].
// Every command accepts an implicit --help (-h) option that prints the command's help instead of
// running it.
package executor
