package ast

// TokenType identifies the kind of a lexical token.
type TokenType int

const (
	TokenBacktick TokenType = iota
	TokenDoubleQuote
	TokenSingleQuote
	TokenWord

	TokenIndent
	TokenDedent
	TokenNewLine
	TokenColon
	TokenSemicolon

	TokenKeywordDef
	TokenKeywordElse
	TokenKeywordFor
	TokenKeywordIf
	TokenKeywordPass
	TokenKeywordWhile
)

var tokenTypeNames = map[TokenType]string{
	TokenBacktick:     "Backtick",
	TokenDoubleQuote:  "DoubleQuote",
	TokenSingleQuote:  "SingleQuote",
	TokenWord:         "Word",
	TokenIndent:       "Indent",
	TokenDedent:       "Dedent",
	TokenNewLine:      "NewLine",
	TokenColon:        ":",
	TokenSemicolon:    ";",
	TokenKeywordDef:   "KeywordDef",
	TokenKeywordElse:  "KeywordElse",
	TokenKeywordFor:   "KeywordFor",
	TokenKeywordIf:    "KeywordIf",
	TokenKeywordPass:  "KeywordPass",
	TokenKeywordWhile: "KeywordWhile",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// IsWord is true for the token types that can become a Word node.
func (t TokenType) IsWord() bool {
	switch t {
	case TokenBacktick, TokenDoubleQuote, TokenSingleQuote, TokenWord:
		return true
	default:
		return false
	}
}

// Keywords maps reserved words to their token types.
var Keywords = map[string]TokenType{
	"def":   TokenKeywordDef,
	"else":  TokenKeywordElse,
	"for":   TokenKeywordFor,
	"if":    TokenKeywordIf,
	"pass":  TokenKeywordPass,
	"while": TokenKeywordWhile,
}

// Token is a single lexical unit. Text is only set for word-like tokens.
type Token struct {
	Pos  Position
	Type TokenType
	Text string
}

// Word converts a word-like token into a Word node. ok is false for
// structural and keyword tokens.
func (t Token) Word() (w Word, ok bool) {
	var kind WordKind
	switch t.Type {
	case TokenBacktick:
		kind = WordBacktick
	case TokenDoubleQuote:
		kind = WordDoubleQuote
	case TokenSingleQuote:
		kind = WordSingleQuote
	case TokenWord:
		kind = WordBare
	default:
		return Word{}, false
	}

	return Word{Pos: t.Pos, Kind: kind, Text: t.Text}, true
}
