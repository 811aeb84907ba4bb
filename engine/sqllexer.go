package engine

import (
	"github.com/DataDog/go-sqllexer"

	"github.com/akito0107/xsqlsanitizer"
	"github.com/akito0107/xsqlsanitizer/dialect"
)

const SQLLexerName = "sqllexer"

// SQLLexer obfuscates with DataDog's go-sqllexer and reads the operation and
// table from the metadata its normalizer collects. It lexes every statement
// twice.
type SQLLexer struct {
	dbms       sqllexer.DBMSType
	obfuscator *sqllexer.Obfuscator
	normalizer *sqllexer.Normalizer
}

func NewSQLLexer(d dialect.Dialect) *SQLLexer {
	return &SQLLexer{
		dbms:       dbmsFor(d),
		obfuscator: sqllexer.NewObfuscator(),
		normalizer: sqllexer.NewNormalizer(
			sqllexer.WithCollectCommands(true),
			sqllexer.WithCollectTables(true),
		),
	}
}

func dbmsFor(d dialect.Dialect) sqllexer.DBMSType {
	switch d.(type) {
	case *dialect.MySQLDialect:
		return sqllexer.DBMSMySQL
	case *dialect.PostgresqlDialect:
		return sqllexer.DBMSPostgres
	case *dialect.MSSQLDialect:
		return sqllexer.DBMSSQLServer
	}
	return ""
}

func (*SQLLexer) Name() string {
	return SQLLexerName
}

func (s *SQLLexer) Sanitize(statement string) xsqlsanitizer.StatementInfo {
	info := xsqlsanitizer.StatementInfo{
		FullStatement: s.obfuscator.Obfuscate(statement, sqllexer.WithDBMS(s.dbms)),
	}

	_, metadata, err := s.normalizer.Normalize(statement, sqllexer.WithDBMS(s.dbms))
	if err != nil || metadata == nil {
		return info
	}
	if len(metadata.Commands) > 0 {
		info.Operation = metadata.Commands[0]
	}
	if len(metadata.Tables) > 0 {
		info.Table = metadata.Tables[0]
	}
	return info
}
