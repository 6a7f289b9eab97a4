// Package commands holds the builtin commands of the juokse interpreter.
package commands

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/josephlewis42/juokse/core/interp"
	getopt "github.com/pborman/getopt/v2"
)

// Builtins returns a new table holding every builtin command.
func Builtins() interp.Builtins {
	return interp.Builtins{
		"!":        Not,
		".":        Source,
		"break":    Break,
		"cd":       Cd,
		"continue": Continue,
		"echo":     interp.BuiltinFunc(Echo),
		"exit":     Exit,
		"false":    False,
		"printf":   interp.BuiltinFunc(Printf),
		"pwd":      Pwd,
		"return":   Return,
		"source":   Source,
		"true":     True,
		"unset":    Unset,
		"which":    interp.BuiltinFunc(Which),
	}
}

// Names returns the sorted names of the builtin commands.
func Names() []string {
	names := Builtins().Names()
	sort.Strings(names)
	return names
}

// Unlimited disables the upper bound of CountedCommand.
const Unlimited = -1

// CountedCommand is a builtin that accepts between Min and Max arguments.
// The count is checked before Run is called.
type CountedCommand struct {
	Min int
	Max int
	Run func(c *interp.Context, args []string) (interp.Result, error)
}

var _ interp.Builtin = (*CountedCommand)(nil)

// Main implements interp.Builtin.
func (cc *CountedCommand) Main(c *interp.Context, name string, args []string) (interp.Result, error) {
	switch {
	case len(args) < cc.Min:
		fmt.Fprintf(c.Stderr(), "%s: Too few arguments\n", name)
		return interp.Completed(interp.StatusInvalidArgs), nil
	case cc.Max != Unlimited && len(args) > cc.Max:
		fmt.Fprintf(c.Stderr(), "%s: Too many arguments\n", name)
		return interp.Completed(interp.StatusInvalidArgs), nil
	}

	return cc.Run(c, args)
}

// SimpleCommand parses POSIX style flags for a builtin.
type SimpleCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a one line description of the command.
	Short string
	// MinArgs is the minimum number of operands left after the flags.
	MinArgs int

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run parses the flags, if that was successful the callback is called with
// the remaining operands.
func (s *SimpleCommand) Run(c *interp.Context, name string, args []string, callback func(operands []string) int) interp.Result {
	opts := s.Flags()
	showHelp := opts.BoolLong("help", 0, "show this help and exit")

	if err := opts.Getopt(append([]string{name}, args...), nil); err != nil {
		fmt.Fprintf(c.Stderr(), "%s: %s\n\n", name, err)
		s.PrintHelp(c.Stderr())
		return interp.Completed(interp.StatusInvalidArgs)
	}

	if *showHelp {
		s.PrintHelp(c.Stdout())
		return interp.Completed(interp.StatusOK)
	}

	if opts.NArgs() < s.MinArgs {
		fmt.Fprintf(c.Stderr(), "%s: Too few arguments\n", name)
		return interp.Completed(interp.StatusInvalidArgs)
	}

	return interp.Completed(callback(opts.Args()))
}

// parseLevel reads the optional loop or function level of break, continue
// and return.
func parseLevel(c *interp.Context, args []string) (int, bool) {
	if len(args) == 0 {
		return 1, true
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		fmt.Fprintf(c.Stderr(), "Illegal number: %s\n", args[0])
		return 0, false
	}
	return n, true
}
