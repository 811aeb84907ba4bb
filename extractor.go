package xsqlsanitizer

import (
	"strings"

	"github.com/akito0107/xsqlsanitizer/sqltoken"
)

// extractor follows the token stream of one statement and remembers its
// operation and the first table named at parenthesis depth zero.
type extractor struct {
	operation string
	table     string

	operationCaptured bool
	// a table-introducing keyword was seen and the next word is the table
	pendingTable bool
	// the pending keyword was TABLE, so IF [NOT] EXISTS may come first
	afterTableKeyword bool
	// a table was just captured and may continue as schema.table
	qualifying bool
	// a '.' followed the captured name
	expectPart bool

	depth int
}

func (e *extractor) observe(tok sqltoken.Token, src string) {
	if tok.Kind == sqltoken.Whitespace || tok.Kind == sqltoken.Comment {
		return
	}

	text := tok.Text(src)
	var word string
	if tok.Kind == sqltoken.Keyword {
		word = strings.ToUpper(text)
	}

	if !e.operationCaptured {
		e.operationCaptured = true
		e.operation = word
	}

	switch {
	case word != "" && e.depth == 0 && e.table == "" && e.introducesTable(word):
		e.pendingTable = true
		e.afterTableKeyword = word == "TABLE"
	case e.pendingTable:
		e.resolveTable(tok, word, text)
	case e.qualifying:
		e.qualify(tok, text)
	}

	if tok.Kind == sqltoken.Punctuation {
		switch text {
		case "(":
			e.depth++
		case ")":
			if e.depth > 0 {
				e.depth--
			}
		}
	}
}

func (e *extractor) introducesTable(word string) bool {
	switch word {
	case "FROM", "INTO", "UPDATE", "TABLE":
		return true
	case "JOIN":
		return e.operation == "SELECT"
	}
	return false
}

func (e *extractor) resolveTable(tok sqltoken.Token, word, text string) {
	if e.afterTableKeyword && (word == "IF" || word == "NOT" || word == "EXISTS") {
		return
	}

	e.pendingTable = false
	e.afterTableKeyword = false
	if isName(tok.Kind) {
		e.table = unquoteIdentifier(text)
		e.qualifying = true
	}
}

func (e *extractor) qualify(tok sqltoken.Token, text string) {
	if e.expectPart {
		e.expectPart = false
		if isName(tok.Kind) {
			e.table += "." + unquoteIdentifier(text)
			return
		}
		e.qualifying = false
		return
	}

	if tok.Kind == sqltoken.Punctuation && text == "." {
		e.expectPart = true
		return
	}
	e.qualifying = false
}

func isName(kind sqltoken.Kind) bool {
	return kind == sqltoken.Identifier || kind == sqltoken.QuotedIdentifier
}

// unquoteIdentifier strips the delimiters of a quoted identifier and undoes
// doubled closing quotes. An unterminated identifier runs to the end of text.
func unquoteIdentifier(text string) string {
	if text == "" {
		return text
	}

	var closing byte
	switch text[0] {
	case '"':
		closing = '"'
	case '`':
		closing = '`'
	case '[':
		closing = ']'
	default:
		return text
	}

	var builder strings.Builder
	builder.Grow(len(text))
	for i := 1; i < len(text); i++ {
		c := text[i]
		if c == closing {
			if i+1 < len(text) && text[i+1] == closing {
				builder.WriteByte(c)
				i++
				continue
			}
			break
		}
		builder.WriteByte(c)
	}
	return builder.String()
}
