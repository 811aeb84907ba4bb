package e2e_test

import (
	"testing"

	"github.com/akito0107/xsqlsanitizer/engine"
)

func BenchmarkSanitize(b *testing.B) {
	engines := []struct {
		name string
		opts []engine.Option
	}{
		{name: engine.NativeName},
		{name: engine.NativeName, opts: []engine.Option{engine.WithCacheSize(1024)}},
		{name: engine.SQLLexerName},
		{name: engine.SQLParserName},
	}

	for _, e := range engines {
		eng, err := engine.New(e.name, e.opts...)
		if err != nil {
			b.Fatalf("%+v", err)
		}
		b.Run(eng.Name(), func(b *testing.B) {
			for _, c := range dirs {
				b.Run(c.name, func(b *testing.B) {
					for name, stmt := range statements(b, c.dir) {
						b.Run(name, func(b *testing.B) {
							b.SetBytes(int64(len(stmt)))
							b.ReportAllocs()
							b.ResetTimer()

							for i := 0; i < b.N; i++ {
								eng.Sanitize(stmt)
							}
						})
					}
				})
			}
		})
	}
}
