package dialect

// maxKeywordLen bounds the words IsKeyword has to fold. Every entry in
// Keywords is at most this long.
const maxKeywordLen = 16

// Keywords is deliberately limited to reserved words. A word that commonly
// names a table (USER, DATA, STATUS, ...) must stay out of it, otherwise the
// table following FROM would be classified as a keyword.
var Keywords = map[string]struct{}{
	"ADD":         {},
	"ALL":         {},
	"ALTER":       {},
	"ANALYZE":     {},
	"AND":         {},
	"ANY":         {},
	"AS":          {},
	"ASC":         {},
	"BEGIN":       {},
	"BETWEEN":     {},
	"BY":          {},
	"CALL":        {},
	"CASE":        {},
	"CAST":        {},
	"CHECK":       {},
	"COLUMN":      {},
	"COMMIT":      {},
	"CONSTRAINT":  {},
	"COPY":        {},
	"CREATE":      {},
	"CROSS":       {},
	"DEALLOCATE":  {},
	"DECLARE":     {},
	"DEFAULT":     {},
	"DELETE":      {},
	"DESC":        {},
	"DESCRIBE":    {},
	"DISTINCT":    {},
	"DROP":        {},
	"DUPLICATE":   {},
	"ELSE":        {},
	"END":         {},
	"EXCEPT":      {},
	"EXEC":        {},
	"EXECUTE":     {},
	"EXISTS":      {},
	"EXPLAIN":     {},
	"FALSE":       {},
	"FETCH":       {},
	"FOR":         {},
	"FOREIGN":     {},
	"FROM":        {},
	"FULL":        {},
	"GRANT":       {},
	"GROUP":       {},
	"HAVING":      {},
	"IF":          {},
	"IGNORE":      {},
	"IN":          {},
	"INDEX":       {},
	"INNER":       {},
	"INSERT":      {},
	"INTERSECT":   {},
	"INTO":        {},
	"IS":          {},
	"JOIN":        {},
	"LATERAL":     {},
	"LEFT":        {},
	"LIKE":        {},
	"LIMIT":       {},
	"LOCK":        {},
	"MERGE":       {},
	"NATURAL":     {},
	"NOT":         {},
	"NULL":        {},
	"OFFSET":      {},
	"ON":          {},
	"OR":          {},
	"ORDER":       {},
	"OUTER":       {},
	"OVER":        {},
	"PARTITION":   {},
	"PREPARE":     {},
	"PRIMARY":     {},
	"PROCEDURE":   {},
	"RECURSIVE":   {},
	"REFERENCES":  {},
	"RELEASE":     {},
	"REPLACE":     {},
	"RETURNING":   {},
	"REVOKE":      {},
	"RIGHT":       {},
	"ROLLBACK":    {},
	"SAVEPOINT":   {},
	"SELECT":      {},
	"SET":         {},
	"SHOW":        {},
	"START":       {},
	"TABLE":       {},
	"TEMPORARY":   {},
	"THEN":        {},
	"TO":          {},
	"TRANSACTION": {},
	"TRUE":        {},
	"TRUNCATE":    {},
	"UNION":       {},
	"UNIQUE":      {},
	"UNLOCK":      {},
	"UPDATE":      {},
	"UPSERT":      {},
	"USE":         {},
	"USING":       {},
	"VACUUM":      {},
	"VALUES":      {},
	"VIEW":        {},
	"WHEN":        {},
	"WHERE":       {},
	"WITH":        {},
}

// IsKeyword matches word against Keywords ignoring ASCII case, without
// allocating.
func IsKeyword(word string) bool {
	if len(word) > maxKeywordLen {
		return false
	}
	var buf [maxKeywordLen]byte
	for i := 0; i < len(word); i++ {
		c := word[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		buf[i] = c
	}
	_, ok := Keywords[string(buf[:len(word)])]
	return ok
}
