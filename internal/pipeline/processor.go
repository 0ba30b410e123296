package pipeline

import (
	"math/rand"
	"time"

	"boxaug/internal/augment"
	"boxaug/internal/logger"
)

// Processor runs a configured augmentation chain over samples with a
// single owned random source. One Processor per goroutine; the samples
// and the rng are not safe to share.
type Processor struct {
	chain  *augment.Compose
	rng    *rand.Rand
	logger logger.Logger
}

func NewProcessor(chain *augment.Compose, seed int64, log logger.Logger) *Processor {
	return &Processor{
		chain:  chain,
		rng:    rand.New(rand.NewSource(seed)),
		logger: log,
	}
}

// Process feeds one sample through the chain.
func (p *Processor) Process(s augment.Sample) (augment.Sample, error) {
	start := time.Now()

	out, err := p.chain.Apply(p.rng, s)
	if err != nil {
		p.logger.Error("Processor", err, map[string]interface{}{
			"stages": p.chain.StageNames(),
		})
		return augment.Sample{}, err
	}

	p.logger.Debug("Processor", "sample augmented", map[string]interface{}{
		"elapsed_ms": time.Since(start).Milliseconds(),
		"boxes_in":   len(s.Boxes),
		"boxes_out":  len(out.Boxes),
		"width":      out.Image.Width,
		"height":     out.Image.Height,
	})
	return out, nil
}
