package interp

import (
	"fmt"
	"io/fs"

	"github.com/josephlewis42/juokse/core/ast"
	"github.com/josephlewis42/juokse/core/diag"
)

// CommandExitError is returned when a command exits with a non-zero status.
type CommandExitError struct {
	Pos         *ast.Position
	CommandLine string
	Status      int
}

func (e *CommandExitError) Error() string {
	return diag.Errorf(e.Pos, "'%s' exited with status %d", e.CommandLine, e.Status).Error()
}

// CommandKilledError is returned when a command was terminated by a signal.
type CommandKilledError struct {
	Pos         *ast.Position
	CommandLine string
	Signal      string
}

func (e *CommandKilledError) Error() string {
	return diag.Errorf(e.Pos, "'%s' was killed with signal %s", e.CommandLine, e.Signal).Error()
}

// GlobError is returned when a wildcard doesn't match any files.
type GlobError struct {
	Pos     *ast.Position
	Pattern string
}

func (e *GlobError) Error() string {
	return diag.Errorf(e.Pos, "No matches for wildcard '%s'.", e.Pattern).Error()
}

// NotFoundError is returned when a command can't be resolved to a builtin,
// function or executable.
type NotFoundError struct {
	Pos  *ast.Position
	Name string
}

func (e *NotFoundError) Error() string {
	return diag.Errorf(e.Pos, "No such file or directory: %s", e.Name).Error()
}

func (e *NotFoundError) Unwrap() error {
	return fs.ErrNotExist
}

// ExitError is returned by the exit builtin. It stops the script, callers
// running the script decide what to do with the status.
type ExitError struct {
	Status int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Status)
}

// unabsorbedError reports a control signal that reached the top level.
func unabsorbedError(u *Unwind) error {
	if u.Kind == SignalReturn {
		return diag.Errorf(u.Pos, "Used 'return' outside function.")
	}
	return diag.Errorf(u.Pos, "Used '%s' outside loop.", u.Kind)
}

// errorf creates a positioned error.
func errorf(pos ast.Position, format string, a ...interface{}) error {
	return diag.Errorf(&pos, format, a...)
}
