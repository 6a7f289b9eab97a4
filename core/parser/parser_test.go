package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/josephlewis42/juokse/core/ast"
	"github.com/josephlewis42/juokse/core/diag"
	"github.com/josephlewis42/juokse/core/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ignorePositions = cmpopts.IgnoreTypes(ast.Position{})

func parseSource(t *testing.T, source string) ([]ast.Statement, error) {
	t.Helper()

	tokens, err := lexer.Lex("test", 1, source)
	require.NoError(t, err)

	return Parse(tokens)
}

func word(text string) ast.Word {
	return ast.Word{Kind: ast.WordBare, Text: text}
}

func command(name string, args ...ast.Word) *ast.Command {
	return &ast.Command{Command: word(name), Args: args}
}

func TestParse_command(t *testing.T) {
	statements, err := parseSource(t, "echo foo\n")
	require.NoError(t, err)

	pos := ast.Position{Filename: "test", Line: 1, Column: 1}
	expected := []ast.Statement{
		&ast.Command{
			Pos:     pos,
			Command: ast.Word{Pos: pos, Kind: ast.WordBare, Text: "echo"},
			Args: []ast.Word{
				{Pos: ast.Position{Filename: "test", Line: 1, Column: 6}, Kind: ast.WordBare, Text: "foo"},
			},
		},
	}

	if diff := cmp.Diff(expected, statements); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	cases := map[string]struct {
		source   string
		expected []ast.Statement
	}{
		"empty": {
			source: "\n\n# nothing\n",
		},
		"pass": {
			source:   "pass\n",
			expected: []ast.Statement{&ast.Pass{}},
		},
		"assignment": {
			source: "foo = 'bar baz'\n",
			expected: []ast.Statement{
				&ast.Assignment{Variable: "foo", Value: ast.Word{Kind: ast.WordSingleQuote, Text: "bar baz"}},
			},
		},
		"equals-without-spaces-is-a-command": {
			source:   "foo=bar\n",
			expected: []ast.Statement{command("foo=bar")},
		},
		"quoted-equals-is-an-argument": {
			source: "foo '='\n",
			expected: []ast.Statement{
				command("foo", ast.Word{Kind: ast.WordSingleQuote, Text: "="}),
			},
		},
		"command-word-kinds": {
			source: "echo a \"b\" 'c' `d`\n",
			expected: []ast.Statement{
				command("echo",
					word("a"),
					ast.Word{Kind: ast.WordDoubleQuote, Text: "b"},
					ast.Word{Kind: ast.WordSingleQuote, Text: "c"},
					ast.Word{Kind: ast.WordBacktick, Text: "d"},
				),
			},
		},
		"statement-list": {
			source:   "a; b ;c;\n",
			expected: []ast.Statement{command("a"), command("b"), command("c")},
		},
		"multiple-lines": {
			source:   "a\n\nb\n",
			expected: []ast.Statement{command("a"), command("b")},
		},
		"function-definition": {
			source: "def greet:\n  echo hello\n  pass\n",
			expected: []ast.Statement{
				&ast.FunctionDefinition{
					Name: "greet",
					Body: &ast.Block{Body: []ast.Statement{command("echo", word("hello")), &ast.Pass{}}},
				},
			},
		},
		"for": {
			source: "for x in a b c:\n  echo $x\n",
			expected: []ast.Statement{
				&ast.For{
					Variable: "x",
					Subjects: []ast.Word{word("a"), word("b"), word("c")},
					Body:     &ast.Block{Body: []ast.Statement{command("echo", word("$x"))}},
				},
			},
		},
		"for-same-line": {
			source: "for x in a: echo $x; echo done\n",
			expected: []ast.Statement{
				&ast.For{
					Variable: "x",
					Subjects: []ast.Word{word("a")},
					Body: &ast.Block{Body: []ast.Statement{
						command("echo", word("$x")),
						command("echo", word("done")),
					}},
				},
			},
		},
		"if": {
			source: "if test -f foo:\n  echo yes\n",
			expected: []ast.Statement{
				&ast.If{
					Test: command("test", word("-f"), word("foo")),
					Then: &ast.Block{Body: []ast.Statement{command("echo", word("yes"))}},
				},
			},
		},
		"if-else": {
			source: "if true:\n  a\nelse:\n  b\n",
			expected: []ast.Statement{
				&ast.If{
					Test: command("true"),
					Then: &ast.Block{Body: []ast.Statement{command("a")}},
					Else: &ast.Block{Body: []ast.Statement{command("b")}},
				},
			},
		},
		"if-else-same-line": {
			source: "if true: a\nelse: b\n",
			expected: []ast.Statement{
				&ast.If{
					Test: command("true"),
					Then: &ast.Block{Body: []ast.Statement{command("a")}},
					Else: &ast.Block{Body: []ast.Statement{command("b")}},
				},
			},
		},
		"else-if": {
			source: "if a:\n  x\nelse if b:\n  y\nelse:\n  z\n",
			expected: []ast.Statement{
				&ast.If{
					Test: command("a"),
					Then: &ast.Block{Body: []ast.Statement{command("x")}},
					Else: &ast.If{
						Test: command("b"),
						Then: &ast.Block{Body: []ast.Statement{command("y")}},
						Else: &ast.Block{Body: []ast.Statement{command("z")}},
					},
				},
			},
		},
		"while": {
			source: "while true:\n  break\n",
			expected: []ast.Statement{
				&ast.While{
					Test: command("true"),
					Body: &ast.Block{Body: []ast.Statement{command("break")}},
				},
			},
		},
		"nested": {
			source: "while true:\n  for x in a:\n    if b: c\n  d\ne\n",
			expected: []ast.Statement{
				&ast.While{
					Test: command("true"),
					Body: &ast.Block{Body: []ast.Statement{
						&ast.For{
							Variable: "x",
							Subjects: []ast.Word{word("a")},
							Body: &ast.Block{Body: []ast.Statement{
								&ast.If{
									Test: command("b"),
									Then: &ast.Block{Body: []ast.Statement{command("c")}},
								},
							}},
						},
						command("d"),
					}},
				},
				command("e"),
			},
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			statements, err := parseSource(t, tc.source)
			require.NoError(t, err)

			if diff := cmp.Diff(tc.expected, statements, ignorePositions, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_positions(t *testing.T) {
	statements, err := parseSource(t, "\nfor x in a:\n  y = z\n")
	require.NoError(t, err)
	require.Len(t, statements, 1)

	forStatement := statements[0].(*ast.For)
	assert.Equal(t, ast.Position{Filename: "test", Line: 2, Column: 1}, forStatement.Position())

	body := forStatement.Body.(*ast.Block)
	require.Len(t, body.Body, 1)
	assert.Equal(t, ast.Position{Filename: "test", Line: 3, Column: 3}, body.Body[0].Position())
}

func TestParse_errors(t *testing.T) {
	cases := map[string]struct {
		source  string
		message string
	}{
		"missing-in":         {"for x of a:\n  b\n", "test:1: Missing `in' after `for'."},
		"missing-colon":      {"while true\n", "test:1: Unexpected NewLine; Missing :."},
		"bad-subject":        {"for x in a ; :\n", "test:1: Unexpected ;; Missing word."},
		"missing-name":       {"def :\n  a\n", "test:1: Unexpected :; Missing Word."},
		"unexpected-indent":  {"a\n  b\n", "test:2: Unexpected Indent; Missing word."},
		"stray-else":         {"else:\n", "test:1: Unexpected KeywordElse; Missing word."},
		"missing-value":      {"a =\n", "test:1: Unexpected NewLine; Missing word."},
		"missing-block-body": {"if a:\n", "test:1: Unexpected end of input; Missing Indent."},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			_, err := parseSource(t, tc.source)

			var diagErr *diag.Error
			require.ErrorAs(t, err, &diagErr)
			assert.Equal(t, tc.message, diagErr.Error())
		})
	}
}
