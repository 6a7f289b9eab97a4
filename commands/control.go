package commands

import (
	"fmt"
	"strconv"

	"github.com/josephlewis42/juokse/core/interp"
)

// Break exits from the enclosing loops, one unless a level is given.
var Break = signalCommand(interp.SignalBreak)

// Continue resumes the next iteration of the enclosing loops.
var Continue = signalCommand(interp.SignalContinue)

// Return ends the enclosing function calls.
var Return = signalCommand(interp.SignalReturn)

func signalCommand(kind interp.SignalKind) *CountedCommand {
	return &CountedCommand{
		Min: 0,
		Max: 1,
		Run: func(c *interp.Context, args []string) (interp.Result, error) {
			n, ok := parseLevel(c, args)
			if !ok {
				return interp.Completed(interp.StatusError), nil
			}
			return interp.Unwinding(kind, n), nil
		},
	}
}

// True does nothing, successfully.
var True = &CountedCommand{
	Run: func(*interp.Context, []string) (interp.Result, error) {
		return interp.Completed(interp.StatusOK), nil
	},
}

// False does nothing, unsuccessfully.
var False = &CountedCommand{
	Run: func(*interp.Context, []string) (interp.Result, error) {
		return interp.Completed(interp.StatusError), nil
	},
}

// Not runs the command given as arguments and negates its status.
var Not = &CountedCommand{
	Min: 1,
	Max: Unlimited,
	Run: func(c *interp.Context, args []string) (interp.Result, error) {
		result, err := c.Execute(args[0], args[1:]...)
		if err != nil || !result.Completed() {
			return result, err
		}

		if result.Status == interp.StatusOK {
			return interp.Completed(interp.StatusError), nil
		}
		return interp.Completed(interp.StatusOK), nil
	},
}

// Exit stops the script with the given status, 0 by default.
var Exit = &CountedCommand{
	Min: 0,
	Max: 1,
	Run: func(c *interp.Context, args []string) (interp.Result, error) {
		status := interp.StatusOK
		if len(args) > 0 {
			var err error
			if status, err = strconv.Atoi(args[0]); err != nil {
				fmt.Fprintf(c.Stderr(), "Argument '%s' must be an integer\n", args[0])
				return interp.Completed(interp.StatusError), nil
			}
		}

		return interp.Completed(status), &interp.ExitError{Status: status}
	},
}

// Unset deletes variables.
var Unset = &CountedCommand{
	Min: 1,
	Max: Unlimited,
	Run: func(c *interp.Context, names []string) (interp.Result, error) {
		for _, name := range names {
			c.Variables.Unsetenv(name)
		}
		return interp.Completed(interp.StatusOK), nil
	},
}
