package dialect

// MSSQLDialect is Transact-SQL. '#' starts temporary table names and
// identifiers may be delimited with brackets.
type MSSQLDialect struct {
	GenericSQLDialect
}

func (*MSSQLDialect) IsIdentifierStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '#'
}

func (*MSSQLDialect) IsIdentifierPart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '#' || r == '$' || r == '@'
}

func (*MSSQLDialect) IsDelimitedIdentifierStart(r rune) bool {
	return r == '"' || r == '['
}

var _ Dialect = &MSSQLDialect{}
