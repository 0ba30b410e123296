package augment

import "math/rand"

// RandomMirror horizontally flips the image and reflects box
// x-coordinates about the image width, on a fair coin. Applying the flip
// twice restores the original exactly.
type RandomMirror struct{}

func NewRandomMirror() *RandomMirror {
	return &RandomMirror{}
}

func (t *RandomMirror) Name() string {
	return "random_mirror"
}

func (t *RandomMirror) Apply(rng *rand.Rand, s Sample) (Sample, error) {
	if coin(rng) {
		mirrorSample(&s)
	}
	return s, nil
}

func mirrorSample(s *Sample) {
	img := s.Image
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width/2; x++ {
			xm := img.Width - 1 - x
			for c := 0; c < img.Channels; c++ {
				i := img.index(y, x, c)
				j := img.index(y, xm, c)
				img.Pix[i], img.Pix[j] = img.Pix[j], img.Pix[i]
			}
		}
	}

	width := float32(img.Width)
	boxes := CloneBoxes(s.Boxes)
	for i, b := range boxes {
		boxes[i].X1 = width - b.X2
		boxes[i].X2 = width - b.X1
	}
	s.Boxes = boxes
}
