package interp

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/josephlewis42/juokse/core/ast"
	"github.com/spf13/afero"
)

// Expand converts a word into its runtime values.
func (c *Context) Expand(word ast.Word) ([]string, error) {
	switch word.Kind {
	case ast.WordSingleQuote:
		return []string{word.Text}, nil

	case ast.WordDoubleQuote:
		return []string{c.ExpandVariables(word.Text)}, nil

	case ast.WordBacktick:
		out, err := c.substituteCommand(word)
		if err != nil {
			return nil, err
		}
		return []string{out}, nil

	default:
		return c.expandBare(word)
	}
}

// ExpandJoined expands a word and joins the values with a space.
func (c *Context) ExpandJoined(word ast.Word) (string, error) {
	values, err := c.Expand(word)
	if err != nil {
		return "", err
	}
	return strings.Join(values, " "), nil
}

func (c *Context) expandBare(word ast.Word) ([]string, error) {
	fields := strings.Fields(c.ExpandVariables(word.Text))
	if len(fields) == 0 {
		return []string{""}, nil
	}

	var out []string
	for _, field := range fields {
		if !hasGlobMagic(field) {
			out = append(out, field)
			continue
		}

		matches, err := c.glob(field)
		if errors.Is(err, filepath.ErrBadPattern) {
			out = append(out, field)
			continue
		}
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			return nil, &GlobError{Pos: positionOf(word.Pos), Pattern: field}
		}
		out = append(out, matches...)
	}
	return out, nil
}

// hasGlobMagic reports whether field is a wildcard pattern. A '[' is only
// special when a ']' closes it.
func hasGlobMagic(field string) bool {
	if strings.ContainsAny(field, "*?") {
		return true
	}
	open := strings.IndexByte(field, '[')
	return open >= 0 && strings.IndexByte(field[open+1:], ']') > 0
}

// glob matches a pattern against the file system. Relative patterns are
// matched from the working directory and produce relative paths. Names
// starting with a dot are only matched by pattern segments starting with a
// dot.
func (c *Context) glob(pattern string) ([]string, error) {
	cwd := c.Cwd()
	absolute := filepath.IsAbs(pattern)
	if !absolute {
		pattern = filepath.Join(cwd, pattern)
	}
	pattern = filepath.Clean(pattern)

	matches, err := afero.Glob(c.Fs, pattern)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, match := range matches {
		if hiddenMatch(pattern, match) {
			continue
		}
		if !absolute {
			if rel, err := filepath.Rel(cwd, match); err == nil {
				match = rel
			}
		}
		out = append(out, match)
	}
	return out, nil
}

func hiddenMatch(pattern, match string) bool {
	patternParts := strings.Split(pattern, string(filepath.Separator))
	for i, part := range strings.Split(match, string(filepath.Separator)) {
		if i < len(patternParts) && strings.HasPrefix(part, ".") && !strings.HasPrefix(patternParts[i], ".") {
			return true
		}
	}
	return false
}

// substituteCommand runs the text of a backtick word as a script sharing
// this context and returns what it wrote to stdout, less one trailing line
// terminator.
func (c *Context) substituteCommand(word ast.Word) (string, error) {
	statements, err := CompileAt(word.Pos.Filename, word.Pos.Line, word.Text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := c.RedirectStdout(&buf, func() error {
		return c.Run(statements)
	}); err != nil {
		return "", err
	}

	out := buf.String()
	switch {
	case strings.HasSuffix(out, "\r\n"):
		out = strings.TrimSuffix(out, "\r\n")
	case strings.HasSuffix(out, "\n"):
		out = strings.TrimSuffix(out, "\n")
	}
	return out, nil
}

// ExpandVariables replaces $NAME and ${NAME} with the value of the variable,
// or if there is no such variable the environment entry. Unknown names
// expand to the empty string. A $ that isn't followed by a name is kept.
func (c *Context) ExpandVariables(text string) string {
	var out strings.Builder
	for i := 0; i < len(text); {
		if text[i] != '$' {
			out.WriteByte(text[i])
			i++
			continue
		}

		name, width := variableName(text[i+1:])
		if width == 0 {
			out.WriteByte('$')
			i++
			continue
		}

		out.WriteString(c.lookupVariable(name))
		i += 1 + width
	}
	return out.String()
}

// variableName reads the name following a $, returning it and the number of
// bytes it occupies in text. A zero width means there is no name.
func variableName(text string) (string, int) {
	if strings.HasPrefix(text, "{") {
		end := strings.IndexByte(text, '}')
		if end <= 1 {
			return "", 0
		}
		return text[1:end], end + 1
	}

	end := strings.IndexFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == '/'
	})
	if end < 0 {
		end = len(text)
	}
	return text[:end], end
}

func (c *Context) lookupVariable(name string) string {
	if value, ok := c.Variables.LookupEnv(name); ok {
		return value
	}
	return c.Env.Getenv(name)
}

func positionOf(pos ast.Position) *ast.Position {
	return &pos
}
