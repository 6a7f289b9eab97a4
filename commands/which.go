package commands

import (
	"fmt"

	"github.com/josephlewis42/juokse/core/interp"
	"github.com/josephlewis42/juokse/core/vos"
)

// Which prints where the executables named by its arguments are found in
// PATH. Builtins and functions aren't reported.
func Which(c *interp.Context, name string, args []string) (interp.Result, error) {
	cmd := &SimpleCommand{
		Use:     "which [-a] FILENAME...",
		Short:   "Locate a command.",
		MinArgs: 1,
	}
	all := cmd.Flags().Bool('a', "print all matching pathnames of each argument")

	return cmd.Run(c, name, args, func(operands []string) int {
		found := false
		for _, file := range operands {
			var matches []string
			if *all {
				matches = vos.LookPathAll(c.Fs, c.Path(), file)
			} else if match, err := vos.LookPath(c.Fs, c.Path(), file); err == nil {
				matches = []string{match}
			}

			for _, match := range matches {
				fmt.Fprintln(c.Stdout(), match)
				found = true
			}
		}

		if !found {
			return interp.StatusError
		}
		return interp.StatusOK
	}), nil
}
