// Package lexer turns juokse source code into tokens.
package lexer

import (
	"strings"

	"github.com/josephlewis42/juokse/core/ast"
	"github.com/josephlewis42/juokse/core/diag"
)

// Width of a tab when measuring indentation.
const tabWidth = 8

type lexer struct {
	state   *state
	tokens  []ast.Token
	indents []int
}

// Lex converts source into tokens. line is the line number of the first line
// of source, which lets interactive input keep counting lines across calls.
func Lex(filename string, line int, source string) ([]ast.Token, error) {
	l := &lexer{state: newState(filename, line, source)}

	for !l.state.eof() {
		if err := l.lexLogicalLine(); err != nil {
			return nil, err
		}
	}

	if len(l.indents) > 0 {
		pos := l.state.position()
		if n := len(l.tokens); n == 0 || l.tokens[n-1].Type != ast.TokenNewLine {
			l.emit(pos, ast.TokenNewLine)
		}
		for range l.indents {
			l.emit(pos, ast.TokenDedent)
		}
		l.indents = nil
	}

	return l.tokens, nil
}

func (l *lexer) emit(pos ast.Position, tokenType ast.TokenType) {
	l.tokens = append(l.tokens, ast.Token{Pos: pos, Type: tokenType})
}

func (l *lexer) emitText(pos ast.Position, tokenType ast.TokenType, text string) {
	l.tokens = append(l.tokens, ast.Token{Pos: pos, Type: tokenType, Text: text})
}

func (l *lexer) lexLogicalLine() error {
	s := l.state
	pos := s.position()

	indent := 0
	for s.peek(isIndent) {
		if c, _ := s.advance(); c == '\t' {
			indent += tabWidth
		} else {
			indent++
		}
	}

	// Blank and comment-only lines don't take part in indentation.
	if s.peekRune('#') {
		s.skipLine()
		s.peekReadNewLine()
		return nil
	}
	if s.eof() || s.peekReadNewLine() {
		return nil
	}

	if err := l.updateIndentation(pos, indent); err != nil {
		return err
	}

	for {
		if s.eof() {
			l.emit(s.position(), ast.TokenNewLine)
			return nil
		}

		switch {
		case s.peek(isNewLine):
			l.emit(s.position(), ast.TokenNewLine)
			s.peekReadNewLine()
			return nil

		case s.peek(isSpace):
			s.advance()

		case s.peekRune('#'):
			s.skipLine()

		case s.peekRune(':'):
			l.emit(s.position(), ast.TokenColon)
			s.advance()

		case s.peekRune(';'):
			l.emit(s.position(), ast.TokenSemicolon)
			s.advance()

		case s.peek(isQuote):
			if err := l.lexString(); err != nil {
				return err
			}

		default:
			if err := l.lexWord(); err != nil {
				return err
			}
		}
	}
}

func (l *lexer) updateIndentation(pos ast.Position, indent int) error {
	top := 0
	if n := len(l.indents); n > 0 {
		top = l.indents[n-1]
	}

	switch {
	case indent > top:
		l.indents = append(l.indents, indent)
		l.emit(pos, ast.TokenIndent)

	case indent < top:
		for len(l.indents) > 0 && l.indents[len(l.indents)-1] > indent {
			l.indents = l.indents[:len(l.indents)-1]
			l.emit(pos, ast.TokenDedent)
		}

		top = 0
		if n := len(l.indents); n > 0 {
			top = l.indents[n-1]
		}
		if top != indent {
			errPos := l.state.position()
			return diag.Errorf(&errPos, "Indentation mismatch.")
		}
	}

	return nil
}

func (l *lexer) lexString() error {
	s := l.state
	pos := s.position()
	separator, _ := s.advance()
	var text strings.Builder

	for {
		if s.eof() {
			return diag.Errorf(&pos, "Unexpected end of input inside string literal: Missing `%c'.", separator)
		}

		if s.peekRead('\\') {
			switch {
			case s.peekRead(separator):
				text.WriteRune(separator)
			case separator == '\'':
				text.WriteRune('\\')
			default:
				c, err := l.lexEscapeSequence()
				if err != nil {
					return err
				}
				text.WriteRune(c)
			}
			continue
		}

		if s.peekRead(separator) {
			break
		}

		c, _ := s.advance()
		text.WriteRune(c)
	}

	tokenType := ast.TokenSingleQuote
	switch separator {
	case '"':
		tokenType = ast.TokenDoubleQuote
	case '`':
		tokenType = ast.TokenBacktick
	}
	l.emitText(pos, tokenType, text.String())

	return nil
}

func (l *lexer) lexWord() error {
	s := l.state
	pos := s.position()
	var text strings.Builder
	escaped := false

	for {
		if s.peekRead('\\') {
			c, err := l.lexEscapeSequence()
			if err != nil {
				return err
			}
			text.WriteRune(c)
			escaped = true
		} else if s.peek(isWordPart) {
			c, _ := s.advance()
			text.WriteRune(c)
		} else {
			break
		}
	}

	if text.Len() == 0 {
		return diag.Errorf(&pos, "Unexpected input; Missing word.")
	}

	if !escaped {
		if keyword, ok := ast.Keywords[text.String()]; ok {
			l.emit(pos, keyword)
			return nil
		}
	}

	l.emitText(pos, ast.TokenWord, text.String())
	return nil
}

// lexEscapeSequence decodes the escape sequence following a backslash.
func (l *lexer) lexEscapeSequence() (rune, error) {
	s := l.state
	if s.eof() {
		pos := s.position()
		return 0, diag.Errorf(&pos, "Unterminated escape sequence.")
	}

	c, _ := s.advance()
	switch c {
	case 'b':
		return '\b', nil
	case 't':
		return '\t', nil
	case 'n':
		return '\n', nil
	case 'f':
		return '\f', nil
	case 'r':
		return '\r', nil
	case '"', '\'', '\\', '/':
		return c, nil
	case 'u':
		var result rune
		for i := 0; i < 4; i++ {
			pos := s.position()
			switch {
			case s.eof():
				return 0, diag.Errorf(&pos, "Unterminated escape sequence.")
			case !s.peek(isHexDigit):
				return 0, diag.Errorf(&pos, "Illegal Unicode hex escape sequence.")
			}
			digit, _ := s.advance()
			result = result*16 + hexValue(digit)
		}
		return result, nil
	default:
		pos := s.position()
		return 0, diag.Errorf(&pos, "Unrecognized escape sequence.")
	}
}
