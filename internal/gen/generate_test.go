package gen_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/refined/internal/gen"
	"github.com/dmitrymomot/refined/pkg/async"
	"github.com/dmitrymomot/refined/pkg/logger"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "refined")
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))

	paths, err := gen.Generate(context.Background(), gen.Options{
		Manifest: manifestPath,
		Output:   out,
		Workers:  4,
	}, log)
	require.NoError(t, err)
	require.Len(t, paths, 20)
	assert.Equal(t, filepath.Join(out, "negint_gen.go"), paths[0])
	assert.Equal(t, filepath.Join(out, "nonzerodouble_gen.go"), paths[19])

	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	logs := buf.String()
	assert.Contains(t, logs, "kind=NegInt")
	assert.Contains(t, logs, "msg=\"kinds generated\"")
	assert.Contains(t, logs, "count=20")
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	log := logger.New(logger.WithOutput(io.Discard))

	t.Run("invalid worker count", func(t *testing.T) {
		t.Parallel()
		_, err := gen.Generate(context.Background(), gen.Options{
			Manifest: manifestPath,
			Output:   t.TempDir(),
		}, log)
		assert.ErrorIs(t, err, async.ErrInvalidLimit)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := gen.Generate(ctx, gen.Options{
			Manifest: manifestPath,
			Output:   t.TempDir(),
			Workers:  2,
		}, log)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("invalid manifest", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "kinds.yaml")
		require.NoError(t, os.WriteFile(path, []byte("package: p\nrules: [Neg]\n"), 0o644))
		_, err := gen.Generate(context.Background(), gen.Options{
			Manifest: path,
			Output:   t.TempDir(),
			Workers:  1,
		}, log)
		assert.ErrorIs(t, err, gen.ErrInvalidManifest)
	})
}
