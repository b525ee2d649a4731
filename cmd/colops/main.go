package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alekLukanen/errs"
	"github.com/spf13/cobra"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "colops",
		Short:         "Group, scatter and compact columnar data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", "warn", "log level, 'debug', 'info', 'warn' or 'error'")
	root.PersistentFlags().String("format", "pretty", "format results, 'json' or 'pretty'")
	addCommands(root)
	return root
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(
		slog.NewJSONHandler(
			os.Stderr, &slog.HandlerOptions{Level: lvl},
		),
	)
}

func logFailure(logger *slog.Logger, msg string, err error) error {
	logger.Debug(msg, slog.String("error", errs.ErrorWithStack(err)))
	return err
}
