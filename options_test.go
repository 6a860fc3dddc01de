package sortbench

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOptions(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		o := applyOptions(nil)

		assert.Equal(t, DefaultSize, o.size)
		assert.Equal(t, DefaultRank, o.rank)
		assert.Equal(t, DefaultPreview, o.preview)
		assert.False(t, o.hasSeed)
		assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
		assert.NotNil(t, o.logger)
		assert.NoError(t, o.validate())
	})

	t.Run("Overrides", func(t *testing.T) {
		mc := &BasicMetricsCollector{}
		o := applyOptions([]Option{
			WithSize(10),
			WithRank(3),
			WithPreview(5),
			WithSeed(0),
			WithArenaSlabSize(64),
			WithMemoryLimit(1 << 20),
			WithMetricsCollector(mc),
			WithLogLevel(slog.LevelDebug),
			nil,
		})

		assert.Equal(t, 10, o.size)
		assert.Equal(t, 3, o.rank)
		assert.Equal(t, 5, o.preview)
		assert.True(t, o.hasSeed)
		assert.Equal(t, uint64(0), o.seed)
		assert.Equal(t, 64, o.slabSize)
		assert.Equal(t, int64(1<<20), o.memoryLimit)
		assert.Same(t, mc, o.metricsCollector)
	})

	t.Run("NilCollaborators", func(t *testing.T) {
		o := applyOptions([]Option{WithMetricsCollector(nil), WithLogger(nil)})

		assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
		assert.NotNil(t, o.logger)
	})
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		err  error
	}{
		{"ZeroSize", WithSize(0), ErrInvalidSize},
		{"NegativeSize", WithSize(-1), ErrInvalidSize},
		{"ZeroRank", WithRank(0), ErrInvalidRank},
		{"NegativePreview", WithPreview(-1), ErrInvalidPreview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.opt)
			require.ErrorIs(t, err, tt.err)
			assert.Nil(t, b)
		})
	}
}
