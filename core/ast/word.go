package ast

// WordKind says how a word was quoted in the source, which decides how it
// gets expanded at runtime.
type WordKind int

const (
	// WordBare is an unquoted word: variables, splitting and globbing apply.
	WordBare WordKind = iota
	// WordDoubleQuote only has its variables substituted.
	WordDoubleQuote
	// WordSingleQuote is used verbatim.
	WordSingleQuote
	// WordBacktick is executed as a script and replaced by its output.
	WordBacktick
)

func (k WordKind) String() string {
	switch k {
	case WordBare:
		return "Word"
	case WordDoubleQuote:
		return "DoubleQuote"
	case WordSingleQuote:
		return "SingleQuote"
	case WordBacktick:
		return "Backtick"
	default:
		return "Unknown"
	}
}

// Word is one quoted or unquoted source fragment prior to expansion.
type Word struct {
	Pos  Position
	Kind WordKind
	Text string
}
