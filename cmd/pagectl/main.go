package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"lector-pages/internal/config"
	apperrors "lector-pages/pkg/errors"
	"lector-pages/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	var logLevel string

	root := &cobra.Command{
		Use:           "pagectl",
		Short:         "Paginate documents and catalog books without running the server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level written to stderr: debug|info|warn|error")

	newContainer := func() *config.Container {
		_ = godotenv.Load()
		return config.NewContainerWithLogger(config.NewConfig(), logger.NewLoggerWithWriter(logLevel, os.Stderr))
	}

	root.AddCommand(
		paginateCmd(newContainer),
		importCmd(newContainer),
		searchCmd(newContainer),
		formatsCmd(newContainer),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for rejected input and 1 for every other failure.
func exitCode(err error) int {
	if apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		return 2
	}
	return 1
}

func printJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
