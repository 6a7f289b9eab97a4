package interp

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/josephlewis42/juokse/core/ast"
	"github.com/josephlewis42/juokse/core/vos"
)

// Executable is a resolved command. Exactly one of Builtin, Function or Path
// is set.
type Executable struct {
	Builtin  Builtin
	Function ast.Statement
	Path     string
}

// ResolveExecutable finds what a command name refers to. Absolute paths are
// looked up directly, other names are checked against the builtins, then the
// user defined functions, then each directory of PATH in order.
func (c *Context) ResolveExecutable(name string) (*Executable, bool) {
	if filepath.IsAbs(name) {
		if err := vos.FindExecutable(c.Fs, name); err != nil {
			return nil, false
		}
		return &Executable{Path: name}, true
	}

	if builtin, ok := c.Builtins[name]; ok {
		return &Executable{Builtin: builtin}, true
	}

	if body, ok := c.Function(name); ok {
		return &Executable{Function: body}, true
	}

	path, err := vos.LookPath(c.Fs, c.Path(), name)
	if err != nil {
		return nil, false
	}
	return &Executable{Path: path}, true
}

// Execute resolves and runs a command, recording its status in "?".
func (c *Context) Execute(name string, args ...string) (Result, error) {
	exe, ok := c.ResolveExecutable(name)
	if !ok {
		return Completed(StatusError), &NotFoundError{Name: name}
	}

	c.emit(c.startListeners, ProcessEvent{Executable: name, Args: args})

	var result Result
	var err error
	switch {
	case exe.Builtin != nil:
		result, err = exe.Builtin.Main(c, name, args)
	case exe.Function != nil:
		result, err = c.callFunction(name, exe.Function, args)
	default:
		result, err = c.spawn(exe.Path, name, args)
	}
	var exitErr *ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return result, err
	}

	if result.Completed() {
		c.Variables.Setenv(VarStatus, strconv.Itoa(result.Status))
	}

	c.emit(c.finishListeners, ProcessEvent{
		Executable: name,
		Args:       args,
		Status:     result.Status,
		Pid:        result.Pid,
		Signal:     result.Signal,
	})

	return result, err
}

// callFunction runs a user defined function with its own positional
// parameters. A return signal ends the call; when it targets an outer call
// it keeps propagating.
func (c *Context) callFunction(name string, body ast.Statement, args []string) (Result, error) {
	saved := c.positionalSnapshot()
	defer c.restorePositional(saved)
	c.SetArgs(name, args)

	result, err := c.ExecStatement(body)
	if err != nil || result.Completed() {
		return result, err
	}

	if result.Unwind.Kind != SignalReturn {
		// break and continue pass through to loops around the call.
		return result, nil
	}
	if result.Unwind.N <= 1 {
		return Completed(StatusOK), nil
	}
	return Result{Unwind: result.Unwind.propagate()}, nil
}

func (c *Context) spawn(path, name string, args []string) (Result, error) {
	state, err := vos.RunProcess(path, append([]string{name}, args...), &vos.ProcAttr{
		Dir:    c.Cwd(),
		Env:    c.Env.Environ(),
		Stdin:  c.Stdin(),
		Stdout: c.Stdout(),
		Stderr: c.Stderr(),
	})
	if err != nil {
		return Completed(StatusError), err
	}

	return Result{Status: state.Status, Pid: state.Pid, Signal: state.Signal}, nil
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
