// Command sqlinfo prints the tokens and the sanitized form of one statement.
package main

import (
	"flag"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/k0kubun/pp"
	errors "golang.org/x/xerrors"

	"github.com/akito0107/xsqlsanitizer"
	"github.com/akito0107/xsqlsanitizer/dialect"
)

type token struct {
	Kind string
	Text string
}

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		level.Error(logger).Log("msg", "sqlinfo failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("sqlinfo", flag.ContinueOnError)
	f := flags.String("f", "stdin", "input sql file (default stdin)")
	d := flags.String("dialect", "generic", "sql dialect")
	t := flags.Bool("tokens", false, "print tokens")
	if err := flags.Parse(args); err != nil {
		return err
	}

	src := stdin
	if *f != "stdin" {
		file, err := os.Open(*f)
		if err != nil {
			return errors.Errorf("open input: %w", err)
		}
		defer file.Close()
		src = file
	}

	dia, err := dialect.ByName(*d)
	if err != nil {
		return err
	}
	sanitizer := xsqlsanitizer.New(xsqlsanitizer.Dialect(dia))

	var raw strings.Builder
	if *t && src != nil {
		src = io.TeeReader(src, &raw)
	}
	info, err := sanitizer.SanitizeReader(src)
	if err != nil {
		return err
	}

	if *t {
		statement := raw.String()
		tokens := sanitizer.Tokens(statement)
		out := make([]token, 0, len(tokens))
		for _, tok := range tokens {
			out = append(out, token{Kind: tok.Kind.String(), Text: tok.Text(statement)})
		}
		pp.Fprintln(stdout, out)
	}

	pp.Fprintln(stdout, info)
	return nil
}
