package engine

import (
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/elastic/go-freelru"
	errors "golang.org/x/xerrors"

	"github.com/akito0107/xsqlsanitizer"
)

// MaxCachedStatementLen is the longest statement Cached stores. Longer ones
// are sanitized on every call.
const MaxCachedStatementLen = 4096

// Cached remembers the results of another engine. Applications tend to send
// the same statements over and over, so most calls become a lookup.
type Cached struct {
	engine Engine
	lru    *freelru.SyncedLRU[string, xsqlsanitizer.StatementInfo]
}

func NewCached(e Engine, size int) (*Cached, error) {
	if size <= 0 {
		return nil, errors.Errorf("cache size must be positive, got %d", size)
	}
	if uint64(size) > math.MaxUint32 {
		return nil, errors.Errorf("cache size must be at most %d, got %d", uint64(math.MaxUint32), size)
	}
	lru, err := freelru.NewSynced[string, xsqlsanitizer.StatementInfo](uint32(size), hashStatement)
	if err != nil {
		return nil, errors.Errorf("create statement cache: %w", err)
	}
	return &Cached{engine: e, lru: lru}, nil
}

func hashStatement(s string) uint32 {
	return uint32(xxhash.Sum64String(s))
}

func (c *Cached) Name() string {
	return c.engine.Name() + "+cache"
}

func (c *Cached) Sanitize(statement string) xsqlsanitizer.StatementInfo {
	if len(statement) > MaxCachedStatementLen {
		return c.engine.Sanitize(statement)
	}
	if info, ok := c.lru.Get(statement); ok {
		return info
	}
	info := c.engine.Sanitize(statement)
	c.lru.Add(statement, info)
	return info
}

func (c *Cached) Len() int {
	return c.lru.Len()
}
