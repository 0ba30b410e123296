// Package config holds the run configuration: exec mode, paths, and the
// augmentation parameters the pipeline stages are constructed from.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Exec modes accepted on the command line and in config files.
const (
	ModePreprocess = "preprocess"
	ModePreview    = "preview"
)

type Config struct {
	Mode     string `json:"mode"`
	InputDir string `json:"input_dir"`
	SaveDir  string `json:"save_dir"`
	Seed     int64  `json:"seed"`
	LogLevel string `json:"log_level"`

	Augment AugmentConfig `json:"augment"`
}

// AugmentConfig carries the per-stage construction parameters. The
// bounds mirror the ones the stage constructors enforce.
type AugmentConfig struct {
	ImageSize       int        `json:"image_size"`
	Mean            [3]float32 `json:"mean"`
	BrightnessDelta float32    `json:"brightness_delta"`
	ContrastLower   float32    `json:"contrast_lower"`
	ContrastUpper   float32    `json:"contrast_upper"`
	SaturationLower float32    `json:"saturation_lower"`
	SaturationUpper float32    `json:"saturation_upper"`
	HueDelta        float32    `json:"hue_delta"`
}

// Default returns the stock SSD training configuration: 300px input and
// the VOC BGR channel means.
func Default() *Config {
	return &Config{
		Mode:     ModePreview,
		InputDir: getEnv("BOXAUG_INPUT_DIR", "./data"),
		SaveDir:  getEnv("BOXAUG_SAVE_DIR", "./runs"),
		LogLevel: getEnv("BOXAUG_LOG_LEVEL", "info"),
		Augment: AugmentConfig{
			ImageSize:       300,
			Mean:            [3]float32{104, 117, 123},
			BrightnessDelta: 32,
			ContrastLower:   0.5,
			ContrastUpper:   1.5,
			SaturationLower: 0.5,
			SaturationUpper: 1.5,
			HueDelta:        18,
		},
	}
}

// Load reads a JSON config file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate applies the same bounds the stage constructors assert, so a
// bad config fails before any image is touched.
func (c *Config) Validate() error {
	if c.Mode != ModePreprocess && c.Mode != ModePreview {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	a := c.Augment
	if a.ImageSize <= 0 {
		return fmt.Errorf("image_size must be positive, got %d", a.ImageSize)
	}
	if a.BrightnessDelta < 0 || a.BrightnessDelta > 255 {
		return fmt.Errorf("brightness_delta must be in [0,255], got %v", a.BrightnessDelta)
	}
	if a.ContrastUpper < a.ContrastLower || a.ContrastLower < 0 {
		return fmt.Errorf("contrast bounds invalid: [%v, %v]", a.ContrastLower, a.ContrastUpper)
	}
	if a.SaturationUpper < a.SaturationLower || a.SaturationLower < 0 {
		return fmt.Errorf("saturation bounds invalid: [%v, %v]", a.SaturationLower, a.SaturationUpper)
	}
	if a.HueDelta < 0 || a.HueDelta > 360 {
		return fmt.Errorf("hue_delta must be in [0,360], got %v", a.HueDelta)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
