package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"dev.acmcsuf.com/jelka"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

var verbose = false

func init() {
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "verbose logging")
	pflag.CommandLine.ParseErrorsWhitelist.UnknownFlags = true
}

func main() {
	log.SetFlags(0)
	pflag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logHandler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05 PM", // extended time.Kitchen
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})

	logger := slog.New(logHandler)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, logger); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	emitter := jelka.NewEmitter(jelka.EmitterOpts{
		Header:   jelka.DefaultHeader(),
		Pattern:  jelka.Gradient,
		Progress: os.Stderr,
		Logger:   logger.With("component", "emitter"),
	})

	if err := emitter.Emit(ctx, os.Stdout); err != nil {
		return fmt.Errorf("failed to emit frames: %w", err)
	}

	return nil
}
