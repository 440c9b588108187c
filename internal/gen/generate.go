package gen

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrymomot/refined/pkg/async"
	"github.com/dmitrymomot/refined/pkg/logger"
)

// Options controls a generator run.
type Options struct {
	Manifest string
	Output   string
	Workers  int
}

// Generate renders every kind described by opts.Manifest into opts.Output
// and returns the written file paths in manifest order.
func Generate(ctx context.Context, opts Options, log *slog.Logger) ([]string, error) {
	start := time.Now()

	m, err := LoadManifest(opts.Manifest)
	if err != nil {
		return nil, err
	}
	specs, err := Build(m, filepath.Base(opts.Manifest))
	if err != nil {
		return nil, err
	}
	r, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.Output, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths, err := async.Map(ctx, opts.Workers, specs, func(ctx context.Context, s Spec) (string, error) {
		ctx = logger.WithKind(ctx, s.Name)
		src, err := r.Render(s)
		if err != nil {
			return "", err
		}
		path := filepath.Join(opts.Output, FileName(s))
		if err := os.WriteFile(path, src, 0o644); err != nil {
			return "", fmt.Errorf("write %s: %w", path, err)
		}
		log.DebugContext(ctx, "kind rendered", logger.File(path))
		return path, nil
	})
	if err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "kinds generated",
		logger.Count(len(paths)),
		logger.File(opts.Output),
		logger.Duration(time.Since(start)),
	)
	return paths, nil
}
