package interp

import (
	"errors"

	"github.com/josephlewis42/juokse/core/ast"
)

// ExecStatement runs a single statement.
func (c *Context) ExecStatement(stmt ast.Statement) (Result, error) {
	switch s := stmt.(type) {
	case *ast.Assignment:
		return c.execAssignment(s)
	case *ast.Block:
		return c.execBlock(s)
	case *ast.Command:
		return c.execCommand(s)
	case *ast.For:
		return c.execFor(s)
	case *ast.FunctionDefinition:
		c.DefineFunction(s.Name, s.Body)
		return Completed(StatusOK), nil
	case *ast.If:
		return c.execIf(s)
	case *ast.Pass:
		return Completed(StatusOK), nil
	case *ast.While:
		return c.execWhile(s)
	default:
		return Completed(StatusError), errorf(stmt.Position(), "Unrecognized statement %T.", stmt)
	}
}

func (c *Context) execAssignment(s *ast.Assignment) (Result, error) {
	value, err := c.ExpandJoined(s.Value)
	if err != nil {
		return Completed(StatusError), err
	}

	c.Variables.Setenv(s.Variable, value)
	return Completed(StatusOK), nil
}

func (c *Context) execBlock(s *ast.Block) (Result, error) {
	result := Completed(StatusOK)
	for _, child := range s.Body {
		var err error
		result, err = c.ExecStatement(child)
		if err != nil || !result.Completed() {
			return result, err
		}
	}
	return result, nil
}

func (c *Context) execCommand(s *ast.Command) (Result, error) {
	name, err := c.ExpandJoined(s.Command)
	if err != nil {
		return Completed(StatusError), err
	}

	var args []string
	for _, arg := range s.Args {
		values, err := c.Expand(arg)
		if err != nil {
			return Completed(StatusError), err
		}
		args = append(args, values...)
	}

	result, err := c.Execute(name, args...)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) && notFound.Pos == nil {
			notFound.Pos = positionOf(s.Pos)
		}
		return result, err
	}

	switch {
	case !result.Completed():
		if result.Unwind.Pos == nil {
			result.Unwind.Pos = positionOf(s.Pos)
		}
		return result, nil
	case result.Signal != "":
		return result, &CommandKilledError{
			Pos:         positionOf(s.Pos),
			CommandLine: commandLine(name, args),
			Signal:      result.Signal,
		}
	case result.Status != StatusOK:
		return result, &CommandExitError{
			Pos:         positionOf(s.Pos),
			CommandLine: commandLine(name, args),
			Status:      result.Status,
		}
	default:
		return result, nil
	}
}

// evaluateCommand runs the test of a conditional, a command exiting with a
// non-zero status evaluates to StatusError instead of failing.
func (c *Context) evaluateCommand(test *ast.Command) (Result, error) {
	result, err := c.execCommand(test)
	var exitErr *CommandExitError
	if errors.As(err, &exitErr) {
		return Completed(StatusError), nil
	}
	return result, err
}

func (c *Context) execIf(s *ast.If) (Result, error) {
	result, err := c.evaluateCommand(s.Test)
	if err != nil || !result.Completed() {
		return result, err
	}

	switch {
	case result.Status == StatusOK:
		return c.ExecStatement(s.Then)
	case s.Else != nil:
		return c.ExecStatement(s.Else)
	default:
		return Completed(StatusOK), nil
	}
}

func (c *Context) execWhile(s *ast.While) (Result, error) {
	for {
		result, err := c.evaluateCommand(s.Test)
		if err != nil || !result.Completed() {
			return result, err
		}
		if result.Status != StatusOK {
			return Completed(StatusOK), nil
		}

		action, unwind, err := c.execLoopBody(s.Body)
		switch {
		case err != nil:
			return Completed(StatusError), err
		case unwind != nil:
			return Result{Unwind: unwind}, nil
		case action == loopBreak:
			return Completed(StatusOK), nil
		}
	}
}

func (c *Context) execFor(s *ast.For) (Result, error) {
	for _, subject := range s.Subjects {
		values, err := c.Expand(subject)
		if err != nil {
			return Completed(StatusError), err
		}

		for _, value := range values {
			c.Variables.Setenv(s.Variable, value)

			action, unwind, err := c.execLoopBody(s.Body)
			switch {
			case err != nil:
				return Completed(StatusError), err
			case unwind != nil:
				return Result{Unwind: unwind}, nil
			case action == loopBreak:
				return Completed(StatusOK), nil
			}
		}
	}
	return Completed(StatusOK), nil
}

type loopAction int

const (
	loopNext loopAction = iota
	loopBreak
)

// execLoopBody runs one iteration of a loop. A break or continue with a
// count of one is absorbed and reported as the action to take; other
// signals are returned for the enclosing constructs, break and continue with
// one level fewer.
func (c *Context) execLoopBody(body ast.Statement) (loopAction, *Unwind, error) {
	result, err := c.ExecStatement(body)
	if err != nil {
		return loopBreak, nil, err
	}
	if result.Completed() {
		return loopNext, nil, nil
	}

	unwind := result.Unwind
	switch unwind.Kind {
	case SignalBreak, SignalContinue:
		if unwind.N > 1 {
			return loopBreak, unwind.propagate(), nil
		}
		if unwind.Kind == SignalBreak {
			return loopBreak, nil, nil
		}
		return loopNext, nil, nil
	default:
		return loopBreak, unwind, nil
	}
}
