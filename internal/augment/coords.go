package augment

import (
	"fmt"
	"image"
	"math/rand"

	"gocv.io/x/gocv"
)

// SubtractMeans shifts every pixel by a fixed per-channel mean, the
// normalization the downstream detector expects.
type SubtractMeans struct {
	mean [3]float32
}

func NewSubtractMeans(mean [3]float32) *SubtractMeans {
	return &SubtractMeans{mean: mean}
}

func (t *SubtractMeans) Name() string {
	return "subtract_means"
}

func (t *SubtractMeans) Apply(_ *rand.Rand, s Sample) (Sample, error) {
	img := s.Image
	for i := 0; i < len(img.Pix); i += img.Channels {
		for c := 0; c < img.Channels && c < 3; c++ {
			img.Pix[i+c] -= t.mean[c]
		}
	}
	return s, nil
}

// ToAbsoluteCoords rescales normalized box coordinates to pixels.
type ToAbsoluteCoords struct{}

func NewToAbsoluteCoords() *ToAbsoluteCoords {
	return &ToAbsoluteCoords{}
}

func (t *ToAbsoluteCoords) Name() string {
	return "to_absolute_coords"
}

func (t *ToAbsoluteCoords) Apply(_ *rand.Rand, s Sample) (Sample, error) {
	w := float32(s.Image.Width)
	h := float32(s.Image.Height)
	for i := range s.Boxes {
		s.Boxes[i].X1 *= w
		s.Boxes[i].X2 *= w
		s.Boxes[i].Y1 *= h
		s.Boxes[i].Y2 *= h
	}
	return s, nil
}

// ToPercentCoords rescales pixel box coordinates to [0,1].
type ToPercentCoords struct{}

func NewToPercentCoords() *ToPercentCoords {
	return &ToPercentCoords{}
}

func (t *ToPercentCoords) Name() string {
	return "to_percent_coords"
}

func (t *ToPercentCoords) Apply(_ *rand.Rand, s Sample) (Sample, error) {
	w := float32(s.Image.Width)
	h := float32(s.Image.Height)
	for i := range s.Boxes {
		s.Boxes[i].X1 /= w
		s.Boxes[i].X2 /= w
		s.Boxes[i].Y1 /= h
		s.Boxes[i].Y2 /= h
	}
	return s, nil
}

// Resize resamples the image to a fixed square size. Boxes are expected
// to be in percent coordinates at this point and pass through untouched.
type Resize struct {
	size int
}

func NewResize(size int) (*Resize, error) {
	if size <= 0 {
		return nil, fmt.Errorf("resize size must be positive, got %d", size)
	}
	return &Resize{size: size}, nil
}

func (t *Resize) Name() string {
	return "resize"
}

func (t *Resize) Apply(_ *rand.Rand, s Sample) (Sample, error) {
	src, err := s.Image.ToMat()
	if err != nil {
		return Sample{}, err
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.Resize(src, &dst, image.Pt(t.size, t.size), 0, 0, gocv.InterpolationLinear)

	resized, err := FromMat(dst)
	if err != nil {
		return Sample{}, err
	}

	s.Image = resized
	return s, nil
}
