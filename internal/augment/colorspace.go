package augment

import (
	"errors"
	"fmt"
	"math/rand"

	"gocv.io/x/gocv"
)

// ColorSpace identifies the channel interpretation of an image buffer.
type ColorSpace int

const (
	ColorSpaceBGR ColorSpace = iota
	ColorSpaceHSV
)

func (cs ColorSpace) String() string {
	switch cs {
	case ColorSpaceBGR:
		return "BGR"
	case ColorSpaceHSV:
		return "HSV"
	default:
		return fmt.Sprintf("ColorSpace(%d)", int(cs))
	}
}

// ErrUnsupportedConversion is returned for any color-space pair other
// than BGR->HSV and HSV->BGR.
var ErrUnsupportedConversion = errors.New("unsupported color conversion")

// ConvertColor converts the image between BGR and HSV. On float input
// OpenCV keeps hue in [0,360] and saturation in [0,1], which is the scale
// the hue and saturation stages operate on.
type ConvertColor struct {
	current   ColorSpace
	target    ColorSpace
	converter gocv.ColorConversionCode
}

func NewConvertColor(current, target ColorSpace) (*ConvertColor, error) {
	var code gocv.ColorConversionCode
	switch {
	case current == ColorSpaceBGR && target == ColorSpaceHSV:
		code = gocv.ColorBGRToHSV
	case current == ColorSpaceHSV && target == ColorSpaceBGR:
		code = gocv.ColorHSVToBGR
	default:
		return nil, fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, current, target)
	}

	return &ConvertColor{current: current, target: target, converter: code}, nil
}

func (t *ConvertColor) Name() string {
	return fmt.Sprintf("convert_%s_to_%s", t.current, t.target)
}

func (t *ConvertColor) Apply(_ *rand.Rand, s Sample) (Sample, error) {
	src, err := s.Image.ToMat()
	if err != nil {
		return Sample{}, err
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.CvtColor(src, &dst, t.converter)

	converted, err := FromMat(dst)
	if err != nil {
		return Sample{}, err
	}

	s.Image = converted
	return s, nil
}
