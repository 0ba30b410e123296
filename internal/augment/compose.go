package augment

import (
	"fmt"
	"math/rand"
)

// Transform is a single pipeline stage mapping one sample to another.
// Stages hold only immutable configuration set at construction; all
// randomness comes from the rng handed to Apply, so a seeded rng makes a
// run reproducible.
type Transform interface {
	Apply(rng *rand.Rand, s Sample) (Sample, error)
	Name() string
}

// Compose applies transforms strictly in order. A stage may replace the
// image and narrow boxes/labels to a subset of rows; nothing is skipped
// except by a stage's own internal coin flip.
type Compose struct {
	transforms []Transform
}

func NewCompose(transforms ...Transform) *Compose {
	return &Compose{transforms: transforms}
}

func (c *Compose) Name() string {
	return "compose"
}

func (c *Compose) Apply(rng *rand.Rand, s Sample) (Sample, error) {
	current := s
	for _, t := range c.transforms {
		next, err := t.Apply(rng, current)
		if err != nil {
			return Sample{}, fmt.Errorf("stage %s failed: %w", t.Name(), err)
		}
		current = next
	}
	return current, nil
}

// Add appends a stage to the end of the chain.
func (c *Compose) Add(t Transform) {
	c.transforms = append(c.transforms, t)
}

// StageNames lists the configured stages in execution order.
func (c *Compose) StageNames() []string {
	names := make([]string, len(c.transforms))
	for i, t := range c.transforms {
		names[i] = t.Name()
	}
	return names
}

// Lambda wraps an arbitrary sample function as a stage, for one-off
// caller-supplied steps.
type Lambda struct {
	name string
	fn   func(Sample) (Sample, error)
}

func NewLambda(name string, fn func(Sample) (Sample, error)) (*Lambda, error) {
	if fn == nil {
		return nil, fmt.Errorf("lambda function must not be nil")
	}
	return &Lambda{name: name, fn: fn}, nil
}

func (l *Lambda) Name() string {
	return l.name
}

func (l *Lambda) Apply(_ *rand.Rand, s Sample) (Sample, error) {
	return l.fn(s)
}

// coin is the shared fair-coin gate used by the randomized stages.
func coin(rng *rand.Rand) bool {
	return rng.Intn(2) == 1
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}
