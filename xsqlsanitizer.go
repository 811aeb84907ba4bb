package xsqlsanitizer

import (
	"io"
	"strings"

	errors "golang.org/x/xerrors"

	"github.com/akito0107/xsqlsanitizer/dialect"
	"github.com/akito0107/xsqlsanitizer/sqltoken"
)

// Placeholder replaces every string and numeric literal.
const Placeholder = "?"

var ErrNilStatement = errors.New("nil statement")

// Sanitizer is immutable once built and may be shared between goroutines.
type Sanitizer struct {
	dialect dialect.Dialect
}

type Option func(*Sanitizer)

func Dialect(dialect dialect.Dialect) Option {
	return func(s *Sanitizer) {
		s.dialect = dialect
	}
}

func New(options ...Option) *Sanitizer {
	s := &Sanitizer{dialect: &dialect.GenericSQLDialect{}}
	for _, o := range options {
		o(s)
	}
	return s
}

var defaultSanitizer = New()

// Sanitize uses the generic dialect.
func Sanitize(statement string) StatementInfo {
	return defaultSanitizer.Sanitize(statement)
}

// Sanitize replaces literals in statement with Placeholder and extracts its
// operation and table in a single pass. It accepts any input.
func (s *Sanitizer) Sanitize(statement string) StatementInfo {
	tokenizer := sqltoken.NewTokenizer(statement, sqltoken.Dialect(s.dialect))

	var builder strings.Builder
	var e extractor
	// statement[:last] has already been written to builder
	last := 0
	replaced := false

	for {
		tok, ok := tokenizer.Next()
		if !ok {
			break
		}

		if tok.Kind == sqltoken.StringLiteral || tok.Kind == sqltoken.NumericLiteral {
			if !replaced {
				builder.Grow(len(statement))
				replaced = true
			}
			builder.WriteString(statement[last:tok.Start])
			builder.WriteString(Placeholder)
			last = tok.End
		}

		e.observe(tok, statement)
	}

	sanitized := statement
	if replaced {
		builder.WriteString(statement[last:])
		sanitized = builder.String()
	}

	return StatementInfo{
		FullStatement: sanitized,
		Operation:     e.operation,
		Table:         e.table,
	}
}

// SanitizeReader reads a whole statement from r. A nil reader is the only
// input that is rejected.
func (s *Sanitizer) SanitizeReader(r io.Reader) (StatementInfo, error) {
	if r == nil {
		return StatementInfo{}, ErrNilStatement
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return StatementInfo{}, errors.Errorf("read statement: %w", err)
	}
	return s.Sanitize(string(b)), nil
}

// Tokens returns the scanner output the sanitizer works on.
func (s *Sanitizer) Tokens(statement string) []sqltoken.Token {
	return sqltoken.NewTokenizer(statement, sqltoken.Dialect(s.dialect)).Tokenize()
}
