// Package parser builds statement trees out of tokens.
package parser

import (
	"github.com/josephlewis42/juokse/core/ast"
	"github.com/josephlewis42/juokse/core/diag"
)

// Parse consumes tokens and returns the top-level statements.
func Parse(tokens []ast.Token) ([]ast.Statement, error) {
	s := &state{tokens: tokens}
	var output []ast.Statement

	for !s.eof() {
		if s.peekRead(ast.TokenNewLine) {
			continue
		}
		var err error
		if output, err = parseStatement(s, output); err != nil {
			return nil, err
		}
	}

	return output, nil
}

func parseStatement(s *state, output []ast.Statement) ([]ast.Statement, error) {
	if s.eof() {
		return output, diag.Errorf(s.position(), "Unexpected end of input; Missing statement.")
	}

	var (
		statement ast.Statement
		err       error
	)
	switch s.tokens[s.offset].Type {
	case ast.TokenKeywordDef:
		statement, err = parseFunctionDefinition(s)
	case ast.TokenKeywordFor:
		statement, err = parseFor(s)
	case ast.TokenKeywordIf:
		statement, err = parseIf(s)
	case ast.TokenKeywordWhile:
		statement, err = parseWhile(s)
	case ast.TokenNewLine:
		s.offset++
		return output, nil
	default:
		return parseStatementList(s, output)
	}
	if err != nil {
		return output, err
	}

	return append(output, statement), nil
}

// parseBlock parses the body following a ':', either an indented block or
// the rest of the line.
func parseBlock(s *state) (*ast.Block, error) {
	block := &ast.Block{}
	if pos := s.position(); pos != nil {
		block.Pos = *pos
	}

	var err error
	if s.peekRead(ast.TokenNewLine) {
		if _, err := s.read(ast.TokenIndent); err != nil {
			return nil, err
		}
		for {
			if block.Body, err = parseStatement(s, block.Body); err != nil {
				return nil, err
			}
			if s.eof() || s.peekRead(ast.TokenDedent) {
				break
			}
		}
	} else if block.Body, err = parseStatementList(s, block.Body); err != nil {
		return nil, err
	}

	return block, nil
}

func parseStatementList(s *state, output []ast.Statement) ([]ast.Statement, error) {
	statement, err := parseSimpleStatement(s)
	if err != nil {
		return output, err
	}
	output = append(output, statement)

	for s.peekRead(ast.TokenSemicolon) {
		if s.eof() || s.peek(ast.TokenNewLine) {
			break
		}
		if statement, err = parseSimpleStatement(s); err != nil {
			return output, err
		}
		output = append(output, statement)
	}

	return output, nil
}

func parseSimpleStatement(s *state) (ast.Statement, error) {
	if s.eof() {
		return nil, diag.Errorf(s.position(), "Unexpected end of input; Missing statement.")
	}

	if s.peek(ast.TokenKeywordPass) {
		token, _ := s.advance()
		return &ast.Pass{Pos: token.Pos}, nil
	}

	if next, ok := s.peekAt(1); s.peekWord() && ok && next.Type == ast.TokenWord && next.Text == "=" {
		return parseAssignment(s)
	}

	return parseCommand(s)
}

func parseAssignment(s *state) (*ast.Assignment, error) {
	variable, err := s.readWord()
	if err != nil {
		return nil, err
	}

	// Skip "=".
	if _, err := s.read(ast.TokenWord); err != nil {
		return nil, err
	}

	value, err := s.readWord()
	if err != nil {
		return nil, err
	}

	return &ast.Assignment{Pos: variable.Pos, Variable: variable.Text, Value: value}, nil
}

func parseCommand(s *state) (*ast.Command, error) {
	command, err := s.readWord()
	if err != nil {
		return nil, err
	}

	var args []ast.Word
	for s.peekWord() {
		arg, _ := s.readWord()
		args = append(args, arg)
	}

	return &ast.Command{Pos: command.Pos, Command: command, Args: args}, nil
}

func parseFunctionDefinition(s *state) (*ast.FunctionDefinition, error) {
	keyword, err := s.read(ast.TokenKeywordDef)
	if err != nil {
		return nil, err
	}
	name, err := s.read(ast.TokenWord)
	if err != nil {
		return nil, err
	}
	if _, err := s.read(ast.TokenColon); err != nil {
		return nil, err
	}
	body, err := parseBlock(s)
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDefinition{Pos: keyword.Pos, Name: name.Text, Body: body}, nil
}

func parseFor(s *state) (*ast.For, error) {
	keyword, err := s.read(ast.TokenKeywordFor)
	if err != nil {
		return nil, err
	}
	variable, err := s.read(ast.TokenWord)
	if err != nil {
		return nil, err
	}

	if in, ok := s.peekAt(0); !ok || in.Type != ast.TokenWord || in.Text != "in" {
		return nil, diag.Errorf(&keyword.Pos, "Missing `in' after `for'.")
	}
	s.offset++

	var subjects []ast.Word
	for {
		subject, err := s.readWord()
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)

		if s.peekRead(ast.TokenColon) {
			break
		}
	}

	body, err := parseBlock(s)
	if err != nil {
		return nil, err
	}

	return &ast.For{Pos: keyword.Pos, Variable: variable.Text, Subjects: subjects, Body: body}, nil
}

func parseIf(s *state) (*ast.If, error) {
	keyword, err := s.read(ast.TokenKeywordIf)
	if err != nil {
		return nil, err
	}
	test, err := parseCommand(s)
	if err != nil {
		return nil, err
	}
	if _, err := s.read(ast.TokenColon); err != nil {
		return nil, err
	}
	then, err := parseBlock(s)
	if err != nil {
		return nil, err
	}

	statement := &ast.If{Pos: keyword.Pos, Test: test, Then: then}

	// A same-line body leaves its NewLine in front of the "else".
	if next, ok := s.peekAt(1); s.peek(ast.TokenNewLine) && ok && next.Type == ast.TokenKeywordElse {
		s.offset++
	}

	if s.peekRead(ast.TokenKeywordElse) {
		if s.peek(ast.TokenKeywordIf) {
			statement.Else, err = parseIf(s)
		} else {
			if _, err := s.read(ast.TokenColon); err != nil {
				return nil, err
			}
			statement.Else, err = parseBlock(s)
		}
		if err != nil {
			return nil, err
		}
	}

	return statement, nil
}

func parseWhile(s *state) (*ast.While, error) {
	keyword, err := s.read(ast.TokenKeywordWhile)
	if err != nil {
		return nil, err
	}
	test, err := parseCommand(s)
	if err != nil {
		return nil, err
	}
	if _, err := s.read(ast.TokenColon); err != nil {
		return nil, err
	}
	body, err := parseBlock(s)
	if err != nil {
		return nil, err
	}

	return &ast.While{Pos: keyword.Pos, Test: test, Body: body}, nil
}
