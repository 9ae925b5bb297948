package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/briangreenhill/ftracker/internal/workout"
)

func main() {
	fs := flag.NewFlagSet("ftracker", flag.ExitOnError)
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn or error")
	logFormat := fs.String("log-format", "text", "log format: text or json")
	_ = fs.Parse(os.Args[1:])

	logger, err := newLogger(os.Stderr, *logLevel, *logFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	workoutService := workout.NewService(logger)

	if err := run(ctx, os.Stdout, os.Stderr, fs.Args(), logger, workoutService); err != nil {
		logger.Error("Error running ftracker", slog.Any("error", err))
		cancel()
		os.Exit(workout.ExitCode(err))
	}
}

func run(ctx context.Context, w, errW io.Writer, args []string, logger *slog.Logger, workoutService *workout.Service) error {
	cli := workout.NewCLI(w, errW, logger, workoutService, args)

	if err := cli.Run(ctx); err != nil {
		return err
	}

	return nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}
