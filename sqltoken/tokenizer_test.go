package sqltoken

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/akito0107/xsqlsanitizer/dialect"
)

type span struct {
	Kind Kind
	Text string
}

func spans(src string, tokens []Token) []span {
	out := make([]span, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, span{Kind: tok.Kind, Text: tok.Text(src)})
	}
	return out
}

func TestTokenizer_Tokenize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  []span
	}{
		{
			name: "whitespace run",
			in:   " \t\r\n ",
			out:  []span{{Whitespace, " \t\r\n "}},
		},
		{
			name: "simple select",
			in:   "SELECT * FROM t",
			out: []span{
				{Keyword, "SELECT"},
				{Whitespace, " "},
				{Operator, "*"},
				{Whitespace, " "},
				{Keyword, "FROM"},
				{Whitespace, " "},
				{Identifier, "t"},
			},
		},
		{
			name: "lower case keyword",
			in:   "select",
			out:  []span{{Keyword, "select"}},
		},
		{
			name: "single quote string",
			in:   "'it''s'",
			out:  []span{{StringLiteral, "'it''s'"}},
		},
		{
			name: "unterminated string",
			in:   "x = 'abc",
			out: []span{
				{Identifier, "x"},
				{Whitespace, " "},
				{Operator, "="},
				{Whitespace, " "},
				{StringLiteral, "'abc"},
			},
		},
		{
			name: "N string",
			in:   "N'string' n",
			out: []span{
				{StringLiteral, "N'string'"},
				{Whitespace, " "},
				{Identifier, "n"},
			},
		},
		{
			name: "E string with backslash",
			in:   `E'a\'b'`,
			out:  []span{{StringLiteral, `E'a\'b'`}},
		},
		{
			name: "quoted identifier with doubled quote",
			in:   `"My ""T"""`,
			out:  []span{{QuotedIdentifier, `"My ""T"""`}},
		},
		{
			name: "unterminated quoted identifier",
			in:   `"abc`,
			out:  []span{{QuotedIdentifier, `"abc`}},
		},
		{
			name: "backtick identifier",
			in:   "`order`",
			out:  []span{{QuotedIdentifier, "`order`"}},
		},
		{
			name: "brackets are punctuation in generic",
			in:   "[a]",
			out: []span{
				{Punctuation, "["},
				{Identifier, "a"},
				{Punctuation, "]"},
			},
		},
		{
			name: "binary minus",
			in:   "1-3",
			out: []span{
				{NumericLiteral, "1"},
				{Operator, "-"},
				{NumericLiteral, "3"},
			},
		},
		{
			name: "identifier minus",
			in:   "a -1",
			out: []span{
				{Identifier, "a"},
				{Whitespace, " "},
				{Operator, "-"},
				{NumericLiteral, "1"},
			},
		},
		{
			name: "signed number after operator",
			in:   "a = -1.5e+10",
			out: []span{
				{Identifier, "a"},
				{Whitespace, " "},
				{Operator, "="},
				{Whitespace, " "},
				{NumericLiteral, "-1.5e+10"},
			},
		},
		{
			name: "signed number after punctuation",
			in:   "(-2)",
			out: []span{
				{Punctuation, "("},
				{NumericLiteral, "-2"},
				{Punctuation, ")"},
			},
		},
		{
			name: "signed number at start",
			in:   "+7",
			out:  []span{{NumericLiteral, "+7"}},
		},
		{
			name: "exponent without digits",
			in:   "1e",
			out: []span{
				{NumericLiteral, "1"},
				{Identifier, "e"},
			},
		},
		{
			name: "numbers",
			in:   "0x1F .5 3. 1.2.3",
			out: []span{
				{NumericLiteral, "0x1F"},
				{Whitespace, " "},
				{NumericLiteral, ".5"},
				{Whitespace, " "},
				{NumericLiteral, "3."},
				{Whitespace, " "},
				{NumericLiteral, "1.2"},
				{NumericLiteral, ".3"},
			},
		},
		{
			name: "line comment",
			in:   "-- c\nx",
			out: []span{
				{Comment, "-- c"},
				{Whitespace, "\n"},
				{Identifier, "x"},
			},
		},
		{
			name: "block comment",
			in:   "/* a\n b */x",
			out: []span{
				{Comment, "/* a\n b */"},
				{Identifier, "x"},
			},
		},
		{
			name: "unterminated block comment",
			in:   "x /* open",
			out: []span{
				{Identifier, "x"},
				{Whitespace, " "},
				{Comment, "/* open"},
			},
		},
		{
			name: "comment wins over minus",
			in:   "x--1",
			out: []span{
				{Identifier, "x"},
				{Comment, "--1"},
			},
		},
		{
			name: "operators",
			in:   "<<=<>!=::||>=",
			out: []span{
				{Operator, "<"},
				{Operator, "<="},
				{Operator, "<>"},
				{Operator, "!="},
				{Operator, "::"},
				{Operator, "||"},
				{Operator, ">="},
			},
		},
		{
			name: "cast",
			in:   "a::int",
			out: []span{
				{Identifier, "a"},
				{Operator, "::"},
				{Identifier, "int"},
			},
		},
		{
			name: "parameters",
			in:   "? $1 :name @p",
			out: []span{
				{Parameter, "?"},
				{Whitespace, " "},
				{Parameter, "$1"},
				{Whitespace, " "},
				{Parameter, ":name"},
				{Whitespace, " "},
				{Parameter, "@p"},
			},
		},
		{
			name: "punctuation",
			in:   "(),;.{}:",
			out: []span{
				{Punctuation, "("},
				{Punctuation, ")"},
				{Punctuation, ","},
				{Punctuation, ";"},
				{Punctuation, "."},
				{Punctuation, "{"},
				{Punctuation, "}"},
				{Punctuation, ":"},
			},
		},
		{
			name: "unknown",
			in:   `é\#`,
			out: []span{
				{Unknown, "é"},
				{Unknown, `\`},
				{Unknown, "#"},
			},
		},
		{
			name: "qualified name",
			in:   "s.t",
			out: []span{
				{Identifier, "s"},
				{Punctuation, "."},
				{Identifier, "t"},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tokens := NewTokenizer(c.in).Tokenize()
			if diff := cmp.Diff(c.out, spans(c.in, tokens)); diff != "" {
				t.Errorf("diff: %s", diff)
			}
		})
	}
}

func TestTokenizer_Dialects(t *testing.T) {
	cases := []struct {
		name    string
		dialect dialect.Dialect
		in      string
		out     []span
	}{
		{
			name:    "mysql backslash escape and hash comment",
			dialect: &dialect.MySQLDialect{},
			in:      `'a\'b' # c`,
			out: []span{
				{StringLiteral, `'a\'b'`},
				{Whitespace, " "},
				{Comment, "# c"},
			},
		},
		{
			name:    "mysql double quoted string",
			dialect: &dialect.MySQLDialect{},
			in:      `"a""b\"c" ` + "`t`",
			out: []span{
				{StringLiteral, `"a""b\"c"`},
				{Whitespace, " "},
				{QuotedIdentifier, "`t`"},
			},
		},
		{
			name:    "mysql unterminated double quoted string",
			dialect: &dialect.MySQLDialect{},
			in:      `x = "open`,
			out: []span{
				{Identifier, "x"},
				{Whitespace, " "},
				{Operator, "="},
				{Whitespace, " "},
				{StringLiteral, `"open`},
			},
		},
		{
			name:    "generic has no backslash escape",
			dialect: &dialect.GenericSQLDialect{},
			in:      `'a\' b`,
			out: []span{
				{StringLiteral, `'a\'`},
				{Whitespace, " "},
				{Identifier, "b"},
			},
		},
		{
			name:    "postgres dollar quote",
			dialect: &dialect.PostgresqlDialect{},
			in:      "$tag$ it's $tag$ x",
			out: []span{
				{StringLiteral, "$tag$ it's $tag$"},
				{Whitespace, " "},
				{Identifier, "x"},
			},
		},
		{
			name:    "postgres empty tag unterminated",
			dialect: &dialect.PostgresqlDialect{},
			in:      "$$open",
			out:     []span{{StringLiteral, "$$open"}},
		},
		{
			name:    "postgres positional parameter",
			dialect: &dialect.PostgresqlDialect{},
			in:      "$1",
			out:     []span{{Parameter, "$1"}},
		},
		{
			name:    "postgres backtick is unknown",
			dialect: &dialect.PostgresqlDialect{},
			in:      "`",
			out:     []span{{Unknown, "`"}},
		},
		{
			name:    "mssql brackets",
			dialect: &dialect.MSSQLDialect{},
			in:      "[dbo].[T]]x]",
			out: []span{
				{QuotedIdentifier, "[dbo]"},
				{Punctuation, "."},
				{QuotedIdentifier, "[T]]x]"},
			},
		},
		{
			name:    "mssql temporary table",
			dialect: &dialect.MSSQLDialect{},
			in:      "#tmp",
			out:     []span{{Identifier, "#tmp"}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tokens := NewTokenizer(c.in, Dialect(c.dialect)).Tokenize()
			if diff := cmp.Diff(c.out, spans(c.in, tokens)); diff != "" {
				t.Errorf("diff: %s", diff)
			}
		})
	}
}

func TestPriority(t *testing.T) {
	expected := []Class{
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
	if diff := cmp.Diff(expected, Priority[:]); diff != "" {
		t.Errorf("diff: %s", diff)
	}
	if len(scanners) != len(Priority) {
		t.Errorf("every class must have a scanner")
	}
}

func TestKind_String(t *testing.T) {
	if s := QuotedIdentifier.String(); s != "QuotedIdentifier" {
		t.Errorf("must be QuotedIdentifier but %s", s)
	}
	if s := Kind(42).String(); s != "Kind(42)" {
		t.Errorf("must be Kind(42) but %s", s)
	}
}

func checkLossless(t *testing.T, src string, tokens []Token) {
	t.Helper()
	pos := 0
	for i, tok := range tokens {
		if tok.Start != pos {
			t.Fatalf("token %d starts at %d, expected %d", i, tok.Start, pos)
		}
		if tok.Len() <= 0 {
			t.Fatalf("token %d is empty", i)
		}
		pos = tok.End
	}
	if pos != len(src) {
		t.Fatalf("tokens end at %d but source has %d bytes", pos, len(src))
	}
}

func FuzzTokenize(f *testing.F) {
	seeds := []string{
		"SELECT * FROM t WHERE id = 42 AND name = 'bob'",
		"INSERT INTO \"t\" (a) VALUES (-1.5e3, N'x', $1, :p, ?)",
		"/* unterminated",
		"'unterminated",
		"$$ $tag$ x",
		"[a]]b] `c`` \"d\"\"",
		"\xff\xfe é ü",
		"--",
		"-",
		"0x",
		"1e+",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	dialects := []dialect.Dialect{
		&dialect.GenericSQLDialect{},
		&dialect.MySQLDialect{},
		&dialect.PostgresqlDialect{},
		&dialect.MSSQLDialect{},
	}

	f.Fuzz(func(t *testing.T, src string) {
		for _, d := range dialects {
			checkLossless(t, src, NewTokenizer(src, Dialect(d)).Tokenize())
		}
	})
}
