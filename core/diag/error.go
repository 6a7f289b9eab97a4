// Package diag contains the positioned error type reported to script
// authors.
package diag

import (
	"fmt"

	"github.com/josephlewis42/juokse/core/ast"
)

// Error is an error with an optional location in a script.
type Error struct {
	Pos     *ast.Position
	Message string
}

// Errorf creates a new Error at pos, which may be nil.
func Errorf(pos *ast.Position, format string, a ...interface{}) *Error {
	var copied *ast.Position
	if pos != nil {
		p := *pos
		copied = &p
	}

	return &Error{Pos: copied, Message: fmt.Sprintf(format, a...)}
}

// Error renders the error as "filename:line: message" when the position is
// known and as the bare message otherwise.
func (e *Error) Error() string {
	if e.Pos == nil {
		return e.Message
	}
	return fmt.Sprintf("%s:%d: %s", e.Pos.Filename, e.Pos.Line, e.Message)
}
