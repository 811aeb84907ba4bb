// Package engine puts the statement sanitizers being compared behind one
// interface, so the harness can run any of them over the same input.
package engine

import (
	"sort"
	"strings"

	errors "golang.org/x/xerrors"

	"github.com/akito0107/xsqlsanitizer"
	"github.com/akito0107/xsqlsanitizer/dialect"
)

type Engine interface {
	Name() string
	// Sanitize must be safe for concurrent use.
	Sanitize(statement string) xsqlsanitizer.StatementInfo
}

var ErrUnknownEngine = errors.New("unknown engine")

type options struct {
	dialect   dialect.Dialect
	cacheSize int
}

type Option func(*options)

func WithDialect(dialect dialect.Dialect) Option {
	return func(o *options) {
		o.dialect = dialect
	}
}

// WithCacheSize wraps the engine in a Cached of the given capacity. Zero
// disables caching.
func WithCacheSize(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

var constructors = map[string]func(dialect.Dialect) Engine{
	NativeName:    func(d dialect.Dialect) Engine { return NewNative(d) },
	SQLLexerName:  func(d dialect.Dialect) Engine { return NewSQLLexer(d) },
	SQLParserName: func(dialect.Dialect) Engine { return NewSQLParser() },
}

func Names() []string {
	names := make([]string, 0, len(constructors))
	for n := range constructors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func New(name string, opts ...Option) (Engine, error) {
	o := options{dialect: &dialect.GenericSQLDialect{}}
	for _, opt := range opts {
		opt(&o)
	}

	ctor, ok := constructors[name]
	if !ok {
		return nil, errors.Errorf("engine %q (known: %s): %w", name, strings.Join(Names(), ", "), ErrUnknownEngine)
	}

	e := ctor(o.dialect)
	if o.cacheSize <= 0 {
		return e, nil
	}

	cached, err := NewCached(e, o.cacheSize)
	if err != nil {
		return nil, err
	}
	return cached, nil
}
