package dialect

type PostgresqlDialect struct {
	GenericSQLDialect
}

func (*PostgresqlDialect) IsIdentifierPart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '$' || r == '_'
}

func (*PostgresqlDialect) IsDelimitedIdentifierStart(r rune) bool {
	return r == '"'
}

func (*PostgresqlDialect) DollarQuotedStrings() bool {
	return true
}

var _ Dialect = &PostgresqlDialect{}
