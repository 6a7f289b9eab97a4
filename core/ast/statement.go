package ast

// Statement is implemented by every node of the statement tree. The set of
// implementations is closed; consumers switch on the concrete type.
type Statement interface {
	Position() Position
	statementNode()
}

// Assignment stores the expanded Value into a variable.
type Assignment struct {
	Pos      Position
	Variable string
	Value    Word
}

// Block is an ordered sequence of statements.
type Block struct {
	Pos  Position
	Body []Statement
}

// Command runs a builtin, function or executable.
type Command struct {
	Pos     Position
	Command Word
	Args    []Word
}

// For binds Variable to each expanded value of Subjects in turn.
type For struct {
	Pos      Position
	Variable string
	Subjects []Word
	Body     Statement
}

// FunctionDefinition binds Body to Name in the function table.
type FunctionDefinition struct {
	Pos  Position
	Name string
	Body Statement
}

// If runs Then when Test succeeds and Else (which may be nil) otherwise.
type If struct {
	Pos  Position
	Test *Command
	Then Statement
	Else Statement
}

// Pass does nothing.
type Pass struct {
	Pos Position
}

// While runs Body for as long as Test succeeds.
type While struct {
	Pos  Position
	Test *Command
	Body Statement
}

func (s *Assignment) Position() Position         { return s.Pos }
func (s *Block) Position() Position              { return s.Pos }
func (s *Command) Position() Position            { return s.Pos }
func (s *For) Position() Position                { return s.Pos }
func (s *FunctionDefinition) Position() Position { return s.Pos }
func (s *If) Position() Position                 { return s.Pos }
func (s *Pass) Position() Position               { return s.Pos }
func (s *While) Position() Position              { return s.Pos }

func (*Assignment) statementNode()         {}
func (*Block) statementNode()              {}
func (*Command) statementNode()            {}
func (*For) statementNode()                {}
func (*FunctionDefinition) statementNode() {}
func (*If) statementNode()                 {}
func (*Pass) statementNode()               {}
func (*While) statementNode()              {}

var (
	_ Statement = (*Assignment)(nil)
	_ Statement = (*Block)(nil)
	_ Statement = (*Command)(nil)
	_ Statement = (*For)(nil)
	_ Statement = (*FunctionDefinition)(nil)
	_ Statement = (*If)(nil)
	_ Statement = (*Pass)(nil)
	_ Statement = (*While)(nil)
)
