package commands

import (
	"fmt"
	"path/filepath"

	"github.com/josephlewis42/juokse/core/interp"
	"github.com/spf13/afero"
)

// Source runs a script file in the current context. Control signals raised
// by the script aren't absorbed, so "return" in a sourced file ends the
// enclosing function.
var Source = &CountedCommand{
	Min: 1,
	Max: 1,
	Run: func(c *interp.Context, args []string) (interp.Result, error) {
		filename := args[0]
		path := filename
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.Cwd(), path)
		}

		source, err := afero.ReadFile(c.Fs, path)
		if err != nil {
			fmt.Fprintf(c.Stderr(), "%s: %s\n", filename, err)
			return interp.Completed(interp.StatusError), nil
		}

		statements, err := interp.Compile(filename, string(source))
		if err != nil {
			return interp.Completed(interp.StatusError), err
		}

		result, err := c.Exec(statements)
		if err != nil || !result.Completed() {
			return result, err
		}
		return interp.Completed(interp.StatusOK), nil
	},
}
