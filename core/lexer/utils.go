package lexer

import "unicode"

func isNewLine(c rune) bool {
	return c == '\n' || c == '\r'
}

// isSpace matches whitespace inside a line.
func isSpace(c rune) bool {
	return unicode.IsSpace(c) && !isNewLine(c)
}

func isIndent(c rune) bool {
	return c == ' ' || c == '\t'
}

func isSeparator(c rune) bool {
	return c == ':' || c == ';'
}

func isQuote(c rune) bool {
	return c == '\'' || c == '"' || c == '`'
}

// isWordPart matches the runes that can appear in an unquoted word.
func isWordPart(c rune) bool {
	return !isSeparator(c) && !unicode.IsSpace(c)
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c rune) rune {
	switch {
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}
