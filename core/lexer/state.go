package lexer

import (
	"github.com/josephlewis42/juokse/core/ast"
	"github.com/josephlewis42/juokse/core/diag"
)

// state is a cursor over the source text that keeps track of the current
// line and column.
type state struct {
	pos    ast.Position
	source []rune
	offset int
}

func newState(filename string, line int, source string) *state {
	return &state{
		pos:    ast.Position{Filename: filename, Line: line, Column: 1},
		source: []rune(source),
	}
}

func (s *state) position() ast.Position {
	return s.pos
}

func (s *state) eof() bool {
	return s.offset >= len(s.source)
}

// peek reports whether the next rune satisfies any of the predicates.
func (s *state) peek(preds ...func(rune) bool) bool {
	if s.eof() {
		return false
	}
	c := s.source[s.offset]
	for _, pred := range preds {
		if pred(c) {
			return true
		}
	}
	return false
}

func (s *state) peekRune(expected ...rune) bool {
	if s.eof() {
		return false
	}
	c := s.source[s.offset]
	for _, e := range expected {
		if c == e {
			return true
		}
	}
	return false
}

// peekRead consumes the next rune if it is the expected one.
func (s *state) peekRead(expected rune) bool {
	if !s.peekRune(expected) {
		return false
	}
	s.advance()
	return true
}

// peekReadNewLine consumes a line terminator ("\n", "\r" or "\r\n") if one is
// next.
func (s *state) peekReadNewLine() bool {
	if !s.peek(isNewLine) {
		return false
	}
	s.advance()
	return true
}

// advance consumes one rune. Line terminators are normalized to "\n".
func (s *state) advance() (rune, error) {
	if s.eof() {
		return 0, diag.Errorf(&s.pos, "Unexpected end of input.")
	}
	c := s.source[s.offset]
	s.offset++

	if isNewLine(c) {
		if c == '\r' && s.peekRune('\n') {
			s.offset++
		}
		s.pos.Line++
		s.pos.Column = 1
		return '\n', nil
	}

	s.pos.Column++
	return c, nil
}

// skipLine consumes everything up to, but not including, the next line
// terminator.
func (s *state) skipLine() {
	for !s.eof() && !s.peek(isNewLine) {
		s.advance()
	}
}
