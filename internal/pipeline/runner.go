// Package pipeline loads images, feeds them through an augmentation
// chain, and writes the results back to disk for inspection.
package pipeline

import (
	"fmt"
	"path/filepath"
	"time"

	"boxaug/internal/augment"
	"boxaug/internal/config"
	"boxaug/internal/logger"
)

// BuildChain assembles the augmentation chain from config values. With
// preview set the final mean subtraction is skipped so outputs stay
// viewable.
func BuildChain(cfg config.AugmentConfig, preview bool) (*augment.Compose, error) {
	distort, err := augment.NewPhotometricDistortWithParams(augment.PhotometricParams{
		BrightnessDelta: cfg.BrightnessDelta,
		ContrastLower:   cfg.ContrastLower,
		ContrastUpper:   cfg.ContrastUpper,
		SaturationLower: cfg.SaturationLower,
		SaturationUpper: cfg.SaturationUpper,
		HueDelta:        cfg.HueDelta,
	})
	if err != nil {
		return nil, err
	}
	resize, err := augment.NewResize(cfg.ImageSize)
	if err != nil {
		return nil, err
	}

	chain := augment.NewCompose(
		augment.NewToAbsoluteCoords(),
		distort,
		augment.NewExpand(cfg.Mean),
		augment.NewRandomSampleCrop(),
		augment.NewRandomMirror(),
		augment.NewToPercentCoords(),
		resize,
	)
	if !preview {
		chain.Add(augment.NewSubtractMeans(cfg.Mean))
	}
	return chain, nil
}

// Runner ties loader, processor, and saver together for a preview run.
type Runner struct {
	loader    *Loader
	processor *Processor
	saver     *Saver
	logger    logger.Logger
}

func NewRunner(cfg *config.Config, log logger.Logger) (*Runner, error) {
	chain, err := BuildChain(cfg.Augment, true)
	if err != nil {
		return nil, fmt.Errorf("failed to build augmentation chain: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Runner{
		loader:    NewLoader(log),
		processor: NewProcessor(chain, seed, log),
		saver:     NewSaver(log),
		logger:    log,
	}, nil
}

// Run augments every image file in inputDir and writes the results into
// outDir under the same base names. Returns the number of images
// written. Preview runs carry no annotations, so a single near
// full-frame box stands in to keep the geometric stages visible.
func (r *Runner) Run(inputDir, outDir string) (int, error) {
	paths, err := ListImages(inputDir)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, path := range paths {
		img, err := r.loader.LoadImage(path)
		if err != nil {
			r.logger.Warning("Runner", "skipping unreadable image", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
			continue
		}

		sample := augment.Sample{
			Image:  img,
			Boxes:  []augment.Box{{X1: 0.05, Y1: 0.05, X2: 0.95, Y2: 0.95}},
			Labels: []int{0},
		}

		out, err := r.processor.Process(sample)
		if err != nil {
			return count, fmt.Errorf("failed to augment %s: %w", path, err)
		}

		dst := filepath.Join(outDir, filepath.Base(path))
		if err := r.saver.SaveImage(out.Image, out.Boxes, dst); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
