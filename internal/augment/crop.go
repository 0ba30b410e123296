package augment

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

const (
	// cropTrialsPerMode bounds the rectangle draws for one sampled mode.
	cropTrialsPerMode = 50
	// cropModeDraws bounds the outer mode re-draws so a pathological
	// sample cannot spin forever; on exhaustion the input is returned
	// unchanged.
	cropModeDraws = 25
)

// cropMode is one entry of the sampling menu: keep the original frame,
// or constrain the patch by a Jaccard-overlap window against the
// ground-truth boxes.
type cropMode struct {
	keepOriginal bool
	minIoU       float64
	maxIoU       float64
}

// RandomSampleCrop replaces the image with a random patch and narrows
// boxes/labels to those whose centers fall inside it, re-based to patch
// coordinates. Boxes must be in absolute pixels.
type RandomSampleCrop struct {
	modes []cropMode
}

func NewRandomSampleCrop() *RandomSampleCrop {
	inf := math.Inf(1)
	return &RandomSampleCrop{
		modes: []cropMode{
			{keepOriginal: true},
			{minIoU: 0.1, maxIoU: inf},
			{minIoU: 0.3, maxIoU: inf},
			{minIoU: 0.7, maxIoU: inf},
			{minIoU: 0.9, maxIoU: inf},
			{minIoU: math.Inf(-1), maxIoU: inf},
		},
	}
}

func (t *RandomSampleCrop) Name() string {
	return "random_sample_crop"
}

func (t *RandomSampleCrop) Apply(rng *rand.Rand, s Sample) (Sample, error) {
	width := float32(s.Image.Width)
	height := float32(s.Image.Height)

	for draw := 0; draw < cropModeDraws; draw++ {
		mode := t.modes[rng.Intn(len(t.modes))]
		if mode.keepOriginal {
			return s, nil
		}

		for trial := 0; trial < cropTrialsPerMode; trial++ {
			w := uniform(rng, 0.3*width, width)
			h := uniform(rng, 0.3*height, height)

			if h/w < 0.5 || h/w > 2 {
				continue
			}

			left := uniform(rng, 0, width-w)
			top := uniform(rng, 0, height-h)
			rect := Box{
				X1: float32(int(left)),
				Y1: float32(int(top)),
				X2: float32(int(left + w)),
				Y2: float32(int(top + h)),
			}

			overlaps := Jaccard(s.Boxes, rect)
			if rejectOverlap(overlaps, mode.minIoU, mode.maxIoU) {
				continue
			}

			cropped, ok := cropToRect(s, rect)
			if !ok {
				continue
			}
			return cropped, nil
		}
	}

	// Sampling budget exhausted: hand the sample back untouched.
	return s, nil
}

// rejectOverlap rejects a trial rectangle only when the lowest overlap
// undershoots minIoU and the highest simultaneously overshoots maxIoU.
// Both conditions must hold; a single violated bound still accepts.
func rejectOverlap(overlaps []float64, minIoU, maxIoU float64) bool {
	if len(overlaps) == 0 {
		return false
	}
	return floats.Min(overlaps) < minIoU && maxIoU < floats.Max(overlaps)
}

// cropToRect keeps the boxes whose centers lie strictly inside rect,
// clips them to rect, and translates them into rect coordinates. Returns
// false when no box survives.
func cropToRect(s Sample, rect Box) (Sample, bool) {
	var boxes []Box
	var labels []int
	for i, b := range s.Boxes {
		cx := b.CenterX()
		cy := b.CenterY()
		if rect.X1 < cx && rect.Y1 < cy && rect.X2 > cx && rect.Y2 > cy {
			boxes = append(boxes, Box{
				X1: maxf(b.X1, rect.X1) - rect.X1,
				Y1: maxf(b.Y1, rect.Y1) - rect.Y1,
				X2: minf(b.X2, rect.X2) - rect.X1,
				Y2: minf(b.Y2, rect.Y2) - rect.Y1,
			})
			labels = append(labels, s.Labels[i])
		}
	}
	if len(boxes) == 0 {
		return Sample{}, false
	}

	return Sample{
		Image:  s.Image.Crop(int(rect.X1), int(rect.Y1), int(rect.X2), int(rect.Y2)),
		Boxes:  boxes,
		Labels: labels,
	}, true
}
