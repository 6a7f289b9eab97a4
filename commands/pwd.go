package commands

import (
	"fmt"

	"github.com/josephlewis42/juokse/core/interp"
)

// Pwd prints the current working directory.
var Pwd = &CountedCommand{
	Run: func(c *interp.Context, _ []string) (interp.Result, error) {
		fmt.Fprintln(c.Stdout(), c.Cwd())
		return interp.Completed(interp.StatusOK), nil
	},
}

// Cd changes the working directory to the argument, the home directory if
// there's none or the previous directory for "-".
var Cd = &CountedCommand{
	Min: 0,
	Max: 1,
	Run: func(c *interp.Context, args []string) (interp.Result, error) {
		var dir string
		if len(args) > 0 {
			dir = args[0]
		}
		if dir == "" {
			if dir = c.Home(); dir == "" {
				fmt.Fprintln(c.Stderr(), "Unable to determine home directory")
				return interp.Completed(interp.StatusError), nil
			}
		}

		if err := c.SetCwd(dir); err != nil {
			fmt.Fprintf(c.Stderr(), "Directory '%s' does not exist\n", dir)
			return interp.Completed(interp.StatusError), nil
		}
		return interp.Completed(interp.StatusOK), nil
	},
}
