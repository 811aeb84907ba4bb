package dialect

// MySQLDialect follows the server's default sql_mode, where "..." is a string
// and only backticks delimit identifiers.
type MySQLDialect struct {
	GenericSQLDialect
}

func (*MySQLDialect) IsIdentifierPart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '$' || r == '_'
}

func (*MySQLDialect) IsDelimitedIdentifierStart(r rune) bool {
	return r == '`'
}

func (*MySQLDialect) BackslashEscapes() bool {
	return true
}

func (*MySQLDialect) HashComments() bool {
	return true
}

func (*MySQLDialect) DoubleQuotedStrings() bool {
	return true
}

var _ Dialect = &MySQLDialect{}
