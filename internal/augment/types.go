package augment

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Image is a float32 sample buffer in (height, width, channel) layout.
// Channel order is BGR on entry to the pipeline and HSV between the two
// color conversions of the photometric block. Several stages mutate the
// buffer in place.
type Image struct {
	Pix      []float32
	Height   int
	Width    int
	Channels int
}

// NewImage allocates a zero-filled image.
func NewImage(height, width, channels int) *Image {
	return &Image{
		Pix:      make([]float32, height*width*channels),
		Height:   height,
		Width:    width,
		Channels: channels,
	}
}

// NewImageFilled allocates an image with every pixel set to fill.
// fill is indexed per channel; channels beyond len(fill) stay zero.
func NewImageFilled(height, width, channels int, fill [3]float32) *Image {
	img := NewImage(height, width, channels)
	for i := 0; i < len(img.Pix); i += channels {
		for c := 0; c < channels && c < 3; c++ {
			img.Pix[i+c] = fill[c]
		}
	}
	return img
}

func (img *Image) index(y, x, c int) int {
	return (y*img.Width+x)*img.Channels + c
}

// At returns the sample at (y, x, c). No bounds checking beyond the
// underlying slice.
func (img *Image) At(y, x, c int) float32 {
	return img.Pix[img.index(y, x, c)]
}

// Set writes the sample at (y, x, c).
func (img *Image) Set(y, x, c int, v float32) {
	img.Pix[img.index(y, x, c)] = v
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	out := &Image{
		Pix:      make([]float32, len(img.Pix)),
		Height:   img.Height,
		Width:    img.Width,
		Channels: img.Channels,
	}
	copy(out.Pix, img.Pix)
	return out
}

// Crop copies the rectangle [x1,x2) x [y1,y2) into a new image.
func (img *Image) Crop(x1, y1, x2, y2 int) *Image {
	out := NewImage(y2-y1, x2-x1, img.Channels)
	rowLen := (x2 - x1) * img.Channels
	for y := y1; y < y2; y++ {
		src := img.index(y, x1, 0)
		dst := out.index(y-y1, 0, 0)
		copy(out.Pix[dst:dst+rowLen], img.Pix[src:src+rowLen])
	}
	return out
}

// FromMat converts an OpenCV Mat into a float32 image. 8-bit input is
// widened to float32 first, so decoded BGR images come out as 0..255
// float samples.
func FromMat(mat gocv.Mat) (*Image, error) {
	if mat.Empty() {
		return nil, fmt.Errorf("cannot convert empty Mat")
	}

	src := mat
	if mat.Type() != gocv.MatTypeCV32FC3 {
		converted := gocv.NewMat()
		defer converted.Close()
		mat.ConvertTo(&converted, gocv.MatTypeCV32FC3)
		src = converted
	}

	data, err := src.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("failed to access Mat data: %w", err)
	}

	img := NewImage(src.Rows(), src.Cols(), src.Channels())
	copy(img.Pix, data)
	return img, nil
}

// ToMat converts the image into a freshly allocated CV_32FC3 Mat. The
// caller owns the returned Mat and must Close it.
func (img *Image) ToMat() (gocv.Mat, error) {
	if img.Channels != 3 {
		return gocv.Mat{}, fmt.Errorf("ToMat requires 3 channels, got %d", img.Channels)
	}

	mat := gocv.NewMatWithSize(img.Height, img.Width, gocv.MatTypeCV32FC3)
	data, err := mat.DataPtrFloat32()
	if err != nil {
		mat.Close()
		return gocv.Mat{}, fmt.Errorf("failed to access Mat data: %w", err)
	}
	copy(data, img.Pix)
	return mat, nil
}

// Box is an axis-aligned rectangle (x1, y1, x2, y2) with x1 <= x2 and
// y1 <= y2. Coordinates are absolute pixels or [0,1]-normalized depending
// on pipeline position. The ordering invariant is the caller's to keep.
type Box struct {
	X1, Y1, X2, Y2 float32
}

// Area returns the rectangle area (x2-x1)*(y2-y1).
func (b Box) Area() float32 {
	return (b.X2 - b.X1) * (b.Y2 - b.Y1)
}

// CenterX returns the x coordinate of the box center.
func (b Box) CenterX() float32 {
	return (b.X1 + b.X2) / 2
}

// CenterY returns the y coordinate of the box center.
func (b Box) CenterY() float32 {
	return (b.Y1 + b.Y2) / 2
}

// Sample is the (image, boxes, labels) triple that flows through the
// pipeline. Boxes and labels are co-indexed: stages that drop boxes drop
// the matching labels and never reorder the survivors.
type Sample struct {
	Image  *Image
	Boxes  []Box
	Labels []int
}

// CloneBoxes returns a copy of the box slice so a stage can rewrite
// coordinates without aliasing the caller's slice.
func CloneBoxes(boxes []Box) []Box {
	out := make([]Box, len(boxes))
	copy(out, boxes)
	return out
}
