package sqltoken

type Kind int

//go:generate stringer -type Kind kind.go
const (
	// A word found in dialect.Keywords (like SELECT)
	Keyword Kind = iota
	// Any other word
	Identifier
	// Delimited identifier i.e: "name", `name` or [name]
	QuotedIdentifier
	// Single quoted string i.e: 'string', N'string' or $$string$$
	StringLiteral
	// Numeric literal i.e: 42, -1.5e10 or 0xFF
	NumericLiteral
	// Bind parameter i.e: ?, $1, :name or @name
	Parameter
	// Operator i.e: =, <=, || or ::
	Operator
	// Punctuation i.e: ( ) , ; .
	Punctuation
	// -- line or /* block */ comment
	Comment
	// A run of spaces, tabs and newlines
	Whitespace
	// A character that could not be tokenized
	Unknown
)
