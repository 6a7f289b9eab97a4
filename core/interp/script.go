package interp

import (
	"github.com/josephlewis42/juokse/core/ast"
	"github.com/josephlewis42/juokse/core/lexer"
	"github.com/josephlewis42/juokse/core/parser"
)

// Compile lexes and parses a script starting at line 1.
func Compile(filename, source string) ([]ast.Statement, error) {
	return CompileAt(filename, 1, source)
}

// CompileAt lexes and parses a script whose first line has the given number.
func CompileAt(filename string, line int, source string) ([]ast.Statement, error) {
	tokens, err := lexer.Lex(filename, line, source)
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}

// Exec runs statements in order until one fails or raises a control signal,
// which is returned to the caller.
func (c *Context) Exec(statements []ast.Statement) (Result, error) {
	result := Completed(StatusOK)
	for _, stmt := range statements {
		var err error
		result, err = c.ExecStatement(stmt)
		if err != nil || !result.Completed() {
			return result, err
		}
	}
	return result, nil
}

// Run executes a whole script. A control signal that no loop or function
// absorbed is an error.
func (c *Context) Run(statements []ast.Statement) error {
	result, err := c.Exec(statements)
	if err != nil {
		return err
	}
	if !result.Completed() {
		return unabsorbedError(result.Unwind)
	}
	return nil
}
