package engine

import (
	"github.com/akito0107/xsqlsanitizer"
	"github.com/akito0107/xsqlsanitizer/dialect"
)

const NativeName = "native"

// Native is the single pass scanner of this module.
type Native struct {
	sanitizer *xsqlsanitizer.Sanitizer
}

func NewNative(d dialect.Dialect) *Native {
	return &Native{sanitizer: xsqlsanitizer.New(xsqlsanitizer.Dialect(d))}
}

func (*Native) Name() string {
	return NativeName
}

func (n *Native) Sanitize(statement string) xsqlsanitizer.StatementInfo {
	return n.sanitizer.Sanitize(statement)
}
