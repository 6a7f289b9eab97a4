package vos

import (
	"errors"
	"io"
	"os/exec"
	"syscall"
)

type ProcAttr struct {
	// Dir specifies the working directory of the process.
	Dir string
	// Env gives the environment variables for the new process in the form
	// returned by Environ.
	Env []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// ProcessState describes an exited process.
type ProcessState struct {
	Pid    int
	Status int
	// Signal is the name of the signal that terminated the process, it's
	// empty if the process exited normally.
	Signal string
}

// RunProcess runs the executable at path with the given argv, which should
// start with the program name, and waits for it to exit. Errors are only
// returned if the process couldn't be started or waited on, a non-zero exit
// is reported through the ProcessState.
func RunProcess(path string, argv []string, attr *ProcAttr) (*ProcessState, error) {
	if attr == nil {
		attr = &ProcAttr{}
	}
	if argv == nil {
		argv = []string{path}
	}

	cmd := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Dir:    attr.Dir,
		Env:    attr.Env,
		Stdout: attr.Stdout,
		Stderr: attr.Stderr,
	}
	if attr.Stdin != nil && !IsNull(attr.Stdin) {
		cmd.Stdin = attr.Stdin
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	err := cmd.Wait()
	state := &ProcessState{Pid: cmd.Process.Pid}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return state, nil
	case errors.As(err, &exitErr):
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			state.Signal = SignalName(ws.Signal())
			state.Status = 128 + int(ws.Signal())
			return state, nil
		}
		state.Status = exitErr.ExitCode()
		return state, nil
	default:
		return nil, err
	}
}
