// Command refinegen renders the refinement kinds listed in a kinds.yaml
// manifest into Go source files. It is normally run through go:generate
// from pkg/refined and is configured through REFINEGEN_* variables:
//
//	REFINEGEN_MANIFEST    manifest path (default kinds.yaml)
//	REFINEGEN_OUTPUT      output directory (default .)
//	REFINEGEN_WORKERS     concurrent renders, 1..64 (default 4)
//	REFINEGEN_LOG_LEVEL   debug, info, warn or error (default info)
//	REFINEGEN_LOG_FORMAT  text or json (default text)
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/refined/internal/gen"
	"github.com/dmitrymomot/refined/pkg/config"
	"github.com/dmitrymomot/refined/pkg/logger"
	"github.com/dmitrymomot/refined/pkg/validator"
)

const maxWorkers = 64

// Config is read from REFINEGEN_* environment variables.
type Config struct {
	Manifest  string `env:"MANIFEST" envDefault:"kinds.yaml"`
	Output    string `env:"OUTPUT" envDefault:"."`
	Workers   int    `env:"WORKERS" envDefault:"4"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "refinegen:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stderr io.Writer, opts ...config.Option) error {
	var cfg Config
	opts = append([]config.Option{config.WithPrefix("REFINEGEN_")}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return err
	}
	if err := validator.Apply(
		validator.Positive("workers", cfg.Workers),
		validator.MaxNum("workers", cfg.Workers, maxWorkers),
	); err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return err
	}
	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(stderr),
		logger.WithAttr(logger.Component("refinegen")),
	)

	_, err = gen.Generate(ctx, gen.Options{
		Manifest: cfg.Manifest,
		Output:   cfg.Output,
		Workers:  cfg.Workers,
	}, log)
	if err != nil {
		log.ErrorContext(ctx, "generation failed", logger.Error(err))
		return err
	}
	return nil
}
