package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxaug/internal/config"
)

func TestBuildChain(t *testing.T) {
	t.Parallel()

	t.Run("preview skips mean subtraction", func(t *testing.T) {
		t.Parallel()
		chain, err := BuildChain(config.Default().Augment, true)
		require.NoError(t, err)
		assert.NotContains(t, chain.StageNames(), "subtract_means")
		assert.Contains(t, chain.StageNames(), "random_sample_crop")
	})

	t.Run("training chain ends with mean subtraction", func(t *testing.T) {
		t.Parallel()
		chain, err := BuildChain(config.Default().Augment, false)
		require.NoError(t, err)
		names := chain.StageNames()
		require.NotEmpty(t, names)
		assert.Equal(t, "subtract_means", names[len(names)-1])
	})

	t.Run("invalid jitter bounds fail fast", func(t *testing.T) {
		t.Parallel()
		cfg := config.Default().Augment
		cfg.ContrastLower = 2
		cfg.ContrastUpper = 1
		_, err := BuildChain(cfg, true)
		assert.Error(t, err)
	})
}
