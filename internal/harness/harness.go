// Package harness feeds statements from a file or a directory through an
// engine a fixed number of times and writes every result to an output file.
package harness

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	errors "golang.org/x/xerrors"

	"github.com/akito0107/xsqlsanitizer"
	"github.com/akito0107/xsqlsanitizer/engine"
)

const (
	DefaultIterations = 100
	DefaultOutput     = "out"
	maxLineSize       = 16 * 1024 * 1024
)

// Format is the layout of one output line.
type Format string

const (
	// FormatInfo writes the statement info and the sanitized statement
	// separated by a space.
	FormatInfo Format = "info"
	// FormatInfoConcat writes them with no separator.
	FormatInfoConcat Format = "info-concat"
	// FormatSanitized writes the sanitized statement only.
	FormatSanitized Format = "sanitized"
)

var ErrUnknownFormat = errors.New("unknown output format")

func Formats() []string {
	return []string{string(FormatInfo), string(FormatInfoConcat), string(FormatSanitized)}
}

func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatInfo, FormatInfoConcat, FormatSanitized:
		return f, nil
	case "":
		return FormatInfo, nil
	}
	return "", errors.Errorf("format %q (known: %s): %w", name, strings.Join(Formats(), ", "), ErrUnknownFormat)
}

type Config struct {
	// Path is a directory holding one statement per regular file, or a
	// file holding one statement per line.
	Path       string
	Iterations int
	Output     string
	// Format defaults to FormatInfo.
	Format Format
}

type Summary struct {
	Passes     int
	Statements int
	Total      time.Duration
}

func (s Summary) MeanPass() time.Duration {
	if s.Passes == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Passes)
}

// Run rewrites cfg.Output on every pass, so it ends up holding the results of
// the last one. Cancelling ctx stops Run between passes.
func Run(ctx context.Context, logger log.Logger, e engine.Engine, cfg Config) (Summary, error) {
	var summary Summary
	if cfg.Iterations < 1 {
		return summary, errors.Errorf("iterations must be at least 1, got %d", cfg.Iterations)
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	format, err := ParseFormat(string(cfg.Format))
	if err != nil {
		return summary, err
	}
	cfg.Format = format

	fi, err := os.Stat(cfg.Path)
	if err != nil {
		return summary, errors.Errorf("stat input: %w", err)
	}
	statements := forEachLine
	if fi.IsDir() {
		statements = forEachFile
	}

	for i := 0; i < cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		start := time.Now()
		n, err := runPass(e, cfg, statements)
		if err != nil {
			return summary, errors.Errorf("pass %d: %w", i+1, err)
		}
		elapsed := time.Since(start)

		summary.Passes++
		summary.Statements += n
		summary.Total += elapsed
		level.Debug(logger).Log("msg", "pass finished", "pass", i+1, "statements", n, "duration", elapsed)
	}

	level.Info(logger).Log(
		"msg", "benchmark finished",
		"engine", e.Name(),
		"input", cfg.Path,
		"passes", summary.Passes,
		"statements", summary.Statements,
		"total", summary.Total,
		"mean_pass", summary.MeanPass(),
	)
	return summary, nil
}

func runPass(e engine.Engine, cfg Config, statements func(string, func(string) error) error) (n int, err error) {
	f, err := os.Create(cfg.Output)
	if err != nil {
		return 0, errors.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Errorf("close output: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	err = statements(cfg.Path, func(statement string) error {
		n++
		return writeResult(w, cfg.Format, e.Sanitize(statement))
	})
	if err != nil {
		return n, err
	}
	if err := w.Flush(); err != nil {
		return n, errors.Errorf("flush output: %w", err)
	}
	return n, nil
}

func writeResult(w *bufio.Writer, format Format, info xsqlsanitizer.StatementInfo) error {
	switch format {
	case FormatInfo:
		w.WriteString(info.String())
		w.WriteByte(' ')
	case FormatInfoConcat:
		w.WriteString(info.String())
	}
	w.WriteString(info.FullStatement)
	if err := w.WriteByte('\n'); err != nil {
		return errors.Errorf("write output: %w", err)
	}
	return nil
}

func forEachLine(path string, fn func(string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Errorf("open input: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		if err := fn(strings.TrimSuffix(scanner.Text(), "\r")); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Errorf("read input: %w", err)
	}
	return nil
}

// forEachFile visits the regular files of dir in name order.
func forEachFile(dir string, fn func(string) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Errorf("read input dir: %w", err)
	}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return errors.Errorf("read %s: %w", entry.Name(), err)
		}
		if err := fn(string(b)); err != nil {
			return err
		}
	}
	return nil
}
