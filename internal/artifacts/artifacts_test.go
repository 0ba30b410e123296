package artifacts

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueID(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 7, 15, 42, 9, 870_000_000, time.UTC)
	assert.Equal(t, "2024-0307-1542-0987", IssueID(ts))

	ts = time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2024-1231-2359-5900", IssueID(ts))
}

func TestPrepare(t *testing.T) {
	t.Parallel()

	cfg := map[string]interface{}{"image_size": 300, "mode": "preprocess"}

	t.Run("preprocess mode creates the variable subdirs", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "run")
		require.NoError(t, Prepare("preprocess", cfg, dir))

		for _, sub := range []string{"pressure", "temperature", "salinity", "ssh", "sst", "bio"} {
			info, err := os.Stat(filepath.Join(dir, sub))
			require.NoError(t, err, sub)
			assert.True(t, info.IsDir())
		}
	})

	t.Run("other modes only write the config", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "run")
		require.NoError(t, Prepare("preview", cfg, dir))

		_, err := os.Stat(filepath.Join(dir, "pressure"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("config.json round-trips", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "run")
		require.NoError(t, Prepare("preview", cfg, dir))

		data, err := os.ReadFile(filepath.Join(dir, "config.json"))
		require.NoError(t, err)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "preprocess", got["mode"])
		assert.Equal(t, float64(300), got["image_size"])
	})
}

func TestCheckpoint(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directories and round-trips", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "weights", "best", "model.ckpt")
		state := Checkpoint{
			"conv1.weight": {0.5, -1.25, 3},
			"conv1.bias":   {0},
		}

		require.NoError(t, SaveCheckpoint(state, path))

		got, err := LoadCheckpoint(path)
		require.NoError(t, err)
		assert.Equal(t, state, got)
	})

	t.Run("load fails on a missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadCheckpoint(filepath.Join(t.TempDir(), "missing.ckpt"))
		assert.Error(t, err)
	})
}
