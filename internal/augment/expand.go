package augment

import "math/rand"

// Expand pastes the image onto a mean-colored canvas up to 4x larger at
// a random offset, shifting the boxes accordingly. Zooms the content out
// so the detector sees small objects. No-op on a fair coin.
type Expand struct {
	mean [3]float32
}

func NewExpand(mean [3]float32) *Expand {
	return &Expand{mean: mean}
}

func (t *Expand) Name() string {
	return "expand"
}

func (t *Expand) Apply(rng *rand.Rand, s Sample) (Sample, error) {
	if coin(rng) {
		return s, nil
	}

	width := float32(s.Image.Width)
	height := float32(s.Image.Height)
	ratio := uniform(rng, 1, 4)
	left := uniform(rng, 0, width*ratio-width)
	top := uniform(rng, 0, height*ratio-height)

	img, boxes := placeOnCanvas(s.Image, s.Boxes, t.mean, ratio, int(left), int(top))
	s.Image = img
	s.Boxes = boxes
	return s, nil
}

// placeOnCanvas copies img onto a (height*ratio, width*ratio) canvas
// filled with mean, with the top-left corner at (left, top), and
// translates the boxes by the same offset.
func placeOnCanvas(img *Image, boxes []Box, mean [3]float32, ratio float32, left, top int) (*Image, []Box) {
	canvas := NewImageFilled(int(float32(img.Height)*ratio), int(float32(img.Width)*ratio), img.Channels, mean)

	rowLen := img.Width * img.Channels
	for y := 0; y < img.Height; y++ {
		src := img.index(y, 0, 0)
		dst := canvas.index(top+y, left, 0)
		copy(canvas.Pix[dst:dst+rowLen], img.Pix[src:src+rowLen])
	}

	shifted := CloneBoxes(boxes)
	for i := range shifted {
		shifted[i].X1 += float32(left)
		shifted[i].Y1 += float32(top)
		shifted[i].X2 += float32(left)
		shifted[i].Y2 += float32(top)
	}
	return canvas, shifted
}
