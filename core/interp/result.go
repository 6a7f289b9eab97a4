package interp

import "github.com/josephlewis42/juokse/core/ast"

// Exit statuses used by the interpreter and builtins.
const (
	StatusOK          = 0
	StatusError       = 1
	StatusInvalidArgs = 121
)

// SignalKind is the kind of a control signal.
type SignalKind int

const (
	SignalBreak SignalKind = iota
	SignalContinue
	SignalReturn
)

func (k SignalKind) String() string {
	switch k {
	case SignalBreak:
		return "break"
	case SignalContinue:
		return "continue"
	case SignalReturn:
		return "return"
	default:
		return "unknown"
	}
}

// Unwind is a control signal travelling up the statement tree until a loop
// or function call absorbs it. N is the number of enclosing constructs left
// to unwind.
type Unwind struct {
	Kind SignalKind
	N    int
	Pos  *ast.Position
}

// Result is the outcome of running a statement or command. Either the
// statement completed with Status, or Unwind is set and the enclosing
// constructs must absorb or propagate it.
type Result struct {
	Status int
	// Pid and Signal are only set for processes spawned from the file system.
	Pid    int
	Signal string
	Unwind *Unwind
}

// Completed creates the Result of a statement that ran to completion.
func Completed(status int) Result {
	return Result{Status: status}
}

// Unwinding creates the Result of a statement raising a control signal.
func Unwinding(kind SignalKind, n int) Result {
	return Result{Unwind: &Unwind{Kind: kind, N: n}}
}

// Completed is true if the statement ran to completion.
func (r Result) Completed() bool {
	return r.Unwind == nil
}

// propagate returns the signal to hand to the next enclosing construct: the
// same kind with one level fewer.
func (u *Unwind) propagate() *Unwind {
	return &Unwind{Kind: u.Kind, N: u.N - 1, Pos: u.Pos}
}
