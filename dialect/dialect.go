package dialect

import (
	"sort"
	"strings"

	errors "golang.org/x/xerrors"
)

// Dialect decides the lexical rules that differ between SQL databases.
type Dialect interface {
	IsIdentifierStart(r rune) bool
	IsIdentifierPart(r rune) bool
	IsDelimitedIdentifierStart(r rune) bool
	// BackslashEscapes reports whether '\' escapes the next character in a
	// single quoted string.
	BackslashEscapes() bool
	// HashComments reports whether '#' starts a line comment.
	HashComments() bool
	// DoubleQuotedStrings reports whether "..." is a string literal rather
	// than a delimited identifier.
	DoubleQuotedStrings() bool
	// DollarQuotedStrings reports whether $tag$...$tag$ is a string literal.
	DollarQuotedStrings() bool
}

type GenericSQLDialect struct {
}

func (*GenericSQLDialect) IsIdentifierStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func (*GenericSQLDialect) IsIdentifierPart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

func (*GenericSQLDialect) IsDelimitedIdentifierStart(r rune) bool {
	return r == '"' || r == '`'
}

func (*GenericSQLDialect) BackslashEscapes() bool {
	return false
}

func (*GenericSQLDialect) HashComments() bool {
	return false
}

func (*GenericSQLDialect) DoubleQuotedStrings() bool {
	return false
}

func (*GenericSQLDialect) DollarQuotedStrings() bool {
	return false
}

var _ Dialect = &GenericSQLDialect{}

var ErrUnknownDialect = errors.New("unknown dialect")

var dialects = map[string]func() Dialect{
	"generic":    func() Dialect { return &GenericSQLDialect{} },
	"mysql":      func() Dialect { return &MySQLDialect{} },
	"postgres":   func() Dialect { return &PostgresqlDialect{} },
	"postgresql": func() Dialect { return &PostgresqlDialect{} },
	"mssql":      func() Dialect { return &MSSQLDialect{} },
	"sqlserver":  func() Dialect { return &MSSQLDialect{} },
}

// ByName looks a dialect up case-insensitively. The empty name is the
// generic dialect.
func ByName(name string) (Dialect, error) {
	if name == "" {
		return &GenericSQLDialect{}, nil
	}
	f, ok := dialects[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("dialect %q (known: %s): %w", name, strings.Join(Names(), ", "), ErrUnknownDialect)
	}
	return f(), nil
}

func Names() []string {
	names := make([]string, 0, len(dialects))
	for n := range dialects {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
