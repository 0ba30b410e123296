package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 300, cfg.Augment.ImageSize)
	assert.Equal(t, [3]float32{104, 117, 123}, cfg.Augment.Mean)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("file values override defaults", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.json")
		body := `{"mode": "preprocess", "augment": {"image_size": 512}}`
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, ModePreprocess, cfg.Mode)
		assert.Equal(t, 512, cfg.Augment.ImageSize)
		// Untouched knobs keep their defaults.
		assert.Equal(t, float32(18), cfg.Augment.HueDelta)
	})

	t.Run("missing file errors", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.json")
		body := `{"augment": {"image_size": 300, "hue_delta": 400, "contrast_lower": 0.5, "contrast_upper": 1.5, "saturation_lower": 0.5, "saturation_upper": 1.5}}`
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown mode", func(c *Config) { c.Mode = "train" }},
		{"zero image size", func(c *Config) { c.Augment.ImageSize = 0 }},
		{"negative brightness", func(c *Config) { c.Augment.BrightnessDelta = -1 }},
		{"inverted contrast bounds", func(c *Config) { c.Augment.ContrastLower = 2; c.Augment.ContrastUpper = 1 }},
		{"negative saturation lower", func(c *Config) { c.Augment.SaturationLower = -0.1 }},
		{"hue delta too large", func(c *Config) { c.Augment.HueDelta = 361 }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
