package sqltoken

import (
	"strings"
	"unicode/utf8"

	"github.com/akito0107/xsqlsanitizer/dialect"
)

// Token is a half-open byte range [Start, End) of the source. The tokens of
// one source are contiguous, so concatenating their texts reproduces it.
type Token struct {
	Kind  Kind
	Start int
	End   int
}

func (t Token) Text(src string) string {
	return src[t.Start:t.End]
}

func (t Token) Len() int {
	return t.End - t.Start
}

// Class is one way of reading the source at a position.
type Class int

const (
	ClassWhitespace Class = iota
	ClassComment
	ClassQuoted
	ClassNumeric
	ClassWord
	ClassParameter
	ClassMultiOperator
	ClassSingle
	ClassUnknown
)

var classNames = [...]string{
	ClassWhitespace:    "Whitespace",
	ClassComment:       "Comment",
	ClassQuoted:        "Quoted",
	ClassNumeric:       "Numeric",
	ClassWord:          "Word",
	ClassParameter:     "Parameter",
	ClassMultiOperator: "MultiOperator",
	ClassSingle:        "Single",
	ClassUnknown:       "Unknown",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "Class(?)"
	}
	return classNames[c]
}

// Priority is the order in which classes are tried at every position. The
// first class that matches wins and consumes its longest match. Whitespace
// never overlaps another class; ClassUnknown always matches.
var Priority = [...]Class{
	ClassWhitespace,
	ClassComment,
	ClassQuoted,
	ClassNumeric,
	ClassWord,
	ClassParameter,
	ClassMultiOperator,
	ClassSingle,
	ClassUnknown,
}

// scanners return the kind and end offset of the token starting at t.pos.
// An end equal to t.pos means no match.
var scanners = [...]func(t *Tokenizer) (Kind, int){
	ClassWhitespace:    (*Tokenizer).scanWhitespace,
	ClassComment:       (*Tokenizer).scanComment,
	ClassQuoted:        (*Tokenizer).scanQuoted,
	ClassNumeric:       (*Tokenizer).scanNumeric,
	ClassWord:          (*Tokenizer).scanWord,
	ClassParameter:     (*Tokenizer).scanParameter,
	ClassMultiOperator: (*Tokenizer).scanMultiOperator,
	ClassSingle:        (*Tokenizer).scanSingle,
	ClassUnknown:       (*Tokenizer).scanUnknown,
}

var multiOperators = [...]string{"<=", ">=", "<>", "!=", "::", "||"}

const (
	operatorChars    = "=<>+-*/%!|&^~"
	punctuationChars = "(),;.[]{}:"
)

type Tokenizer struct {
	Dialect dialect.Dialect
	src     string
	pos     int
	// kind of the last token that was neither whitespace nor comment
	prev    Kind
	hasPrev bool
}

type TokenizerOption func(*Tokenizer)

func Dialect(dialect dialect.Dialect) TokenizerOption {
	return func(tokenizer *Tokenizer) {
		tokenizer.Dialect = dialect
	}
}

func NewTokenizer(src string, options ...TokenizerOption) *Tokenizer {
	tokenizer := &Tokenizer{
		Dialect: &dialect.GenericSQLDialect{},
		src:     src,
	}
	for _, o := range options {
		o(tokenizer)
	}
	return tokenizer
}

// Tokenize scans the whole source. It never fails: input that cannot be
// classified becomes Unknown tokens.
func (t *Tokenizer) Tokenize() []Token {
	tokens := make([]Token, 0, len(t.src)/4+1)
	for {
		tok, ok := t.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// Next returns the next token, or false at the end of the source.
func (t *Tokenizer) Next() (Token, bool) {
	if t.pos >= len(t.src) {
		return Token{}, false
	}

	for _, c := range Priority {
		kind, end := scanners[c](t)
		if end <= t.pos {
			continue
		}
		tok := Token{Kind: kind, Start: t.pos, End: end}
		t.pos = end
		if kind != Whitespace && kind != Comment {
			t.prev = kind
			t.hasPrev = true
		}
		return tok, true
	}

	panic("sqltoken: no class matched")
}

func (t *Tokenizer) scanWhitespace() (Kind, int) {
	i := t.pos
	for i < len(t.src) && isSpace(t.src[i]) {
		i++
	}
	return Whitespace, i
}

func (t *Tokenizer) scanComment() (Kind, int) {
	s, i := t.src, t.pos

	if strings.HasPrefix(s[i:], "--") || (s[i] == '#' && t.Dialect.HashComments()) {
		end := strings.IndexByte(s[i:], '\n')
		if end < 0 {
			return Comment, len(s)
		}
		return Comment, i + end
	}

	if strings.HasPrefix(s[i:], "/*") {
		end := strings.Index(s[i+2:], "*/")
		if end < 0 {
			return Comment, len(s)
		}
		return Comment, i + 2 + end + 2
	}

	return Comment, i
}

func (t *Tokenizer) scanQuoted() (Kind, int) {
	s, i := t.src, t.pos
	c := s[i]

	switch {
	case c == '\'':
		return StringLiteral, quotedEnd(s, i+1, '\'', t.Dialect.BackslashEscapes())

	case isStringPrefix(c) && i+1 < len(s) && s[i+1] == '\'':
		backslash := t.Dialect.BackslashEscapes() || c == 'e' || c == 'E'
		return StringLiteral, quotedEnd(s, i+2, '\'', backslash)

	case c == '"' && t.Dialect.DoubleQuotedStrings():
		return StringLiteral, quotedEnd(s, i+1, '"', t.Dialect.BackslashEscapes())

	case c == '$' && t.Dialect.DollarQuotedStrings():
		if end, ok := dollarQuotedEnd(s, i); ok {
			return StringLiteral, end
		}

	case c < utf8.RuneSelf && t.Dialect.IsDelimitedIdentifierStart(rune(c)):
		return QuotedIdentifier, quotedEnd(s, i+1, matchingEndQuote(c), false)
	}

	return StringLiteral, i
}

func (t *Tokenizer) scanNumeric() (Kind, int) {
	s, i := t.src, t.pos

	if (s[i] == '+' || s[i] == '-') && t.signAllowed() {
		i++
	}

	if i+2 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') && isHexDigit(s[i+2]) {
		i += 3
		for i < len(s) && isHexDigit(s[i]) {
			i++
		}
		return NumericLiteral, i
	}

	intDigits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		intDigits++
	}

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
			fracDigits++
		}
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}

	if intDigits == 0 && fracDigits == 0 {
		return NumericLiteral, t.pos
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}

	return NumericLiteral, i
}

// signAllowed reports whether a leading + or - belongs to a number rather than
// being a binary operator.
func (t *Tokenizer) signAllowed() bool {
	return !t.hasPrev || t.prev == Operator || t.prev == Punctuation
}

func (t *Tokenizer) scanWord() (Kind, int) {
	s, i := t.src, t.pos
	if s[i] >= utf8.RuneSelf || !t.Dialect.IsIdentifierStart(rune(s[i])) {
		return Identifier, i
	}

	j := i + 1
	for j < len(s) && s[j] < utf8.RuneSelf && t.Dialect.IsIdentifierPart(rune(s[j])) {
		j++
	}

	if dialect.IsKeyword(s[i:j]) {
		return Keyword, j
	}
	return Identifier, j
}

func (t *Tokenizer) scanParameter() (Kind, int) {
	s, i := t.src, t.pos

	switch s[i] {
	case '?':
		return Parameter, i + 1
	case '$', ':', '@':
		j := i + 1
		for j < len(s) && isParameterPart(s[j]) {
			j++
		}
		if j > i+1 {
			return Parameter, j
		}
	}

	return Parameter, i
}

func (t *Tokenizer) scanMultiOperator() (Kind, int) {
	rest := t.src[t.pos:]
	for _, op := range multiOperators {
		if strings.HasPrefix(rest, op) {
			return Operator, t.pos + len(op)
		}
	}
	return Operator, t.pos
}

func (t *Tokenizer) scanSingle() (Kind, int) {
	c := t.src[t.pos]
	switch {
	case strings.IndexByte(operatorChars, c) >= 0:
		return Operator, t.pos + 1
	case strings.IndexByte(punctuationChars, c) >= 0:
		return Punctuation, t.pos + 1
	}
	return Punctuation, t.pos
}

// scanUnknown consumes one rune, keeping multi-byte UTF-8 sequences whole.
func (t *Tokenizer) scanUnknown() (Kind, int) {
	_, size := utf8.DecodeRuneInString(t.src[t.pos:])
	return Unknown, t.pos + size
}

// quotedEnd returns the offset just past the closing quote of a literal whose
// body starts at i. A doubled quote is an escaped quote. Unterminated literals
// run to the end of s.
func quotedEnd(s string, i int, quote byte, backslash bool) int {
	for i < len(s) {
		switch s[i] {
		case '\\':
			if backslash {
				i += 2
				continue
			}
		case quote:
			if i+1 < len(s) && s[i+1] == quote {
				i += 2
				continue
			}
			return i + 1
		}
		i++
	}
	return len(s)
}

// dollarQuotedEnd matches $tag$ ... $tag$ starting at i, where tag may be
// empty. ok is false when s[i:] does not open a dollar quote.
func dollarQuotedEnd(s string, i int) (end int, ok bool) {
	j := i + 1
	for j < len(s) && isTagChar(s[j], j == i+1) {
		j++
	}
	if j >= len(s) || s[j] != '$' {
		return 0, false
	}

	delim := s[i : j+1]
	closing := strings.Index(s[j+1:], delim)
	if closing < 0 {
		return len(s), true
	}
	return j + 1 + closing + len(delim), true
}

func matchingEndQuote(quoteStyle byte) byte {
	switch quoteStyle {
	case '"':
		return '"'
	case '[':
		return ']'
	case '`':
		return '`'
	}
	return quoteStyle
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isStringPrefix(c byte) bool {
	switch c {
	case 'N', 'n', 'E', 'e', 'X', 'x', 'B', 'b':
		return true
	}
	return false
}

func isParameterPart(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}

func isTagChar(c byte, first bool) bool {
	if first {
		return isLetter(c) || c == '_'
	}
	return isLetter(c) || isDigit(c) || c == '_'
}
