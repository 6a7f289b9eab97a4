// Package ast defines the tokens and syntax tree of juokse scripts.
package ast

import "fmt"

// Position is a location in a script's source code.
type Position struct {
	Filename string
	Line     int
	Column   int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}
