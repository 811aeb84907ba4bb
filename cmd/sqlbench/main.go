// Command sqlbench runs one sanitizer engine over a file or directory of SQL
// statements to compare engine throughput.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/akito0107/xsqlsanitizer/dialect"
	"github.com/akito0107/xsqlsanitizer/engine"
	"github.com/akito0107/xsqlsanitizer/internal/harness"
)

var (
	iterations  int
	output      string
	engineName  string
	dialectName string
	cacheSize   int
	format      string
	logLevel    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "sqlbench <file|directory>",
		Short:        "Sanitize SQL statements repeatedly with the selected engine",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().IntVar(&iterations, "iterations", harness.DefaultIterations, "Number of passes over the input")
	rootCmd.Flags().StringVar(&output, "out", harness.DefaultOutput, "File rewritten with the results of every pass")
	rootCmd.Flags().StringVar(&engineName, "engine", engine.NativeName, "Engine to run: "+strings.Join(engine.Names(), ", "))
	rootCmd.Flags().StringVar(&dialectName, "dialect", "generic", "SQL dialect: "+strings.Join(dialect.Names(), ", "))
	rootCmd.Flags().IntVar(&cacheSize, "cache-size", 0, "Cache this many results in front of the engine (0 disables the cache)")
	rootCmd.Flags().StringVar(&format, "format", string(harness.FormatInfo), "Output line layout: "+strings.Join(harness.Formats(), ", "))
	rootCmd.Flags().StringVar(&logLevel, "log.level", "info", "Log level: debug, info, warn, error")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = level.NewFilter(logger, level.Allow(level.ParseDefault(logLevel, level.InfoValue())))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	outFormat, err := harness.ParseFormat(format)
	if err != nil {
		return err
	}
	d, err := dialect.ByName(dialectName)
	if err != nil {
		return err
	}
	e, err := engine.New(engineName, engine.WithDialect(d), engine.WithCacheSize(cacheSize))
	if err != nil {
		return err
	}

	level.Debug(logger).Log("msg", "starting", "engine", e.Name(), "dialect", dialectName, "iterations", iterations)
	_, err = harness.Run(cmd.Context(), logger, e, harness.Config{
		Path:       args[0],
		Iterations: iterations,
		Output:     output,
		Format:     outFormat,
	})
	if err != nil {
		level.Error(logger).Log("msg", "benchmark failed", "err", err)
	}
	return err
}
