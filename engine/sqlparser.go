package engine

import (
	"strings"

	"github.com/xwb1989/sqlparser"

	"github.com/akito0107/xsqlsanitizer"
)

const SQLParserName = "sqlparser"

var tokenIsOperation = map[int]bool{
	sqlparser.SELECT:   true,
	sqlparser.INSERT:   true,
	sqlparser.UPDATE:   true,
	sqlparser.DELETE:   true,
	sqlparser.SET:      true,
	sqlparser.CREATE:   true,
	sqlparser.ALTER:    true,
	sqlparser.DROP:     true,
	sqlparser.ANALYZE:  true,
	sqlparser.RENAME:   true,
	sqlparser.SHOW:     true,
	sqlparser.USE:      true,
	sqlparser.DESCRIBE: true,
	sqlparser.EXPLAIN:  true,
	sqlparser.TRUNCATE: true,
	sqlparser.BEGIN:    true,
	sqlparser.COMMIT:   true,
	sqlparser.ROLLBACK: true,
	sqlparser.REPLACE:  true,
}

// SQLParser uses the MySQL grammar of xwb1989/sqlparser: a full parse for
// redaction and its tokenizer for the operation and table. It has no dialect
// setting. A statement the grammar rejects is redacted as a whole.
type SQLParser struct{}

func NewSQLParser() *SQLParser {
	return &SQLParser{}
}

func (*SQLParser) Name() string {
	return SQLParserName
}

func (p *SQLParser) Sanitize(statement string) xsqlsanitizer.StatementInfo {
	operation, table := operationAndTable(statement)

	redacted, err := sqlparser.RedactSQLQuery(statement)
	if err != nil {
		redacted = xsqlsanitizer.Placeholder
	}

	return xsqlsanitizer.StatementInfo{
		FullStatement: redacted,
		Operation:     operation,
		Table:         table,
	}
}

func operationAndTable(statement string) (operation, table string) {
	var lastType int
	tokens := sqlparser.NewStringTokenizer(statement)
	for tokenType, data := tokens.Scan(); tokenType != 0; tokenType, data = tokens.Scan() {
		if tokenType == sqlparser.LEX_ERROR {
			return operation, table
		}
		if operation == "" && tokenIsOperation[tokenType] {
			operation = strings.ToUpper(string(data))
		}

		if tokenType == sqlparser.ID {
			switch lastType {
			case sqlparser.TABLE, sqlparser.FROM, sqlparser.INTO, sqlparser.UPDATE:
				return operation, string(data)
			}
		}
		if tokenType != sqlparser.COMMENT {
			lastType = tokenType
		}
	}
	return operation, table
}
