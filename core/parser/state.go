package parser

import (
	"github.com/josephlewis42/juokse/core/ast"
	"github.com/josephlewis42/juokse/core/diag"
)

// state is a cursor over the token sequence.
type state struct {
	tokens []ast.Token
	offset int
}

func (s *state) eof() bool {
	return s.offset >= len(s.tokens)
}

// position is the position of the current token, or of the last token once
// the input is exhausted.
func (s *state) position() *ast.Position {
	switch {
	case !s.eof():
		return &s.tokens[s.offset].Pos
	case len(s.tokens) > 0:
		return &s.tokens[len(s.tokens)-1].Pos
	default:
		return nil
	}
}

func (s *state) peek(tokenType ast.TokenType) bool {
	return !s.eof() && s.tokens[s.offset].Type == tokenType
}

// peekAt looks n tokens past the current one.
func (s *state) peekAt(n int) (ast.Token, bool) {
	if s.offset+n >= len(s.tokens) {
		return ast.Token{}, false
	}
	return s.tokens[s.offset+n], true
}

func (s *state) peekWord() bool {
	return !s.eof() && s.tokens[s.offset].Type.IsWord()
}

func (s *state) peekRead(tokenType ast.TokenType) bool {
	if !s.peek(tokenType) {
		return false
	}
	s.offset++
	return true
}

func (s *state) advance() (ast.Token, error) {
	if s.eof() {
		return ast.Token{}, diag.Errorf(s.position(), "Unexpected end of input.")
	}
	token := s.tokens[s.offset]
	s.offset++
	return token, nil
}

// read consumes a token of the expected type or fails naming both the
// unexpected and the expected type.
func (s *state) read(expected ast.TokenType) (ast.Token, error) {
	if s.eof() {
		return ast.Token{}, diag.Errorf(s.position(), "Unexpected end of input; Missing %s.", expected)
	}
	token := s.tokens[s.offset]
	if token.Type != expected {
		return ast.Token{}, diag.Errorf(&token.Pos, "Unexpected %s; Missing %s.", token.Type, expected)
	}
	s.offset++
	return token, nil
}

func (s *state) readWord() (ast.Word, error) {
	if s.eof() {
		return ast.Word{}, diag.Errorf(s.position(), "Unexpected end of input; Missing word.")
	}
	token := s.tokens[s.offset]
	word, ok := token.Word()
	if !ok {
		return ast.Word{}, diag.Errorf(&token.Pos, "Unexpected %s; Missing word.", token.Type)
	}
	s.offset++
	return word, nil
}
