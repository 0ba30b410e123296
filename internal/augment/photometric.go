package augment

import (
	"fmt"
	"math/rand"
)

const (
	channelHue        = 0
	channelSaturation = 1
)

// RandomBrightness adds a uniform delta in [-delta, delta] to every
// sample, gated by a fair coin.
type RandomBrightness struct {
	delta float32
}

func NewRandomBrightness(delta float32) (*RandomBrightness, error) {
	if delta < 0 || delta > 255 {
		return nil, fmt.Errorf("brightness delta must be in [0,255], got %v", delta)
	}
	return &RandomBrightness{delta: delta}, nil
}

func (t *RandomBrightness) Name() string {
	return "random_brightness"
}

func (t *RandomBrightness) Apply(rng *rand.Rand, s Sample) (Sample, error) {
	if coin(rng) {
		delta := uniform(rng, -t.delta, t.delta)
		for i := range s.Image.Pix {
			s.Image.Pix[i] += delta
		}
	}
	return s, nil
}

// RandomContrast scales every sample by a uniform factor in
// [lower, upper], gated by a fair coin.
type RandomContrast struct {
	lower float32
	upper float32
}

func NewRandomContrast(lower, upper float32) (*RandomContrast, error) {
	if upper < lower {
		return nil, fmt.Errorf("contrast upper must be >= lower, got [%v, %v]", lower, upper)
	}
	if lower < 0 {
		return nil, fmt.Errorf("contrast lower must be non-negative, got %v", lower)
	}
	return &RandomContrast{lower: lower, upper: upper}, nil
}

func (t *RandomContrast) Name() string {
	return "random_contrast"
}

func (t *RandomContrast) Apply(rng *rand.Rand, s Sample) (Sample, error) {
	if coin(rng) {
		alpha := uniform(rng, t.lower, t.upper)
		for i := range s.Image.Pix {
			s.Image.Pix[i] *= alpha
		}
	}
	return s, nil
}

// RandomSaturation scales the HSV saturation channel by a uniform factor
// in [lower, upper], gated by a fair coin. The image must already be HSV.
type RandomSaturation struct {
	lower float32
	upper float32
}

func NewRandomSaturation(lower, upper float32) (*RandomSaturation, error) {
	if upper < lower {
		return nil, fmt.Errorf("saturation upper must be >= lower, got [%v, %v]", lower, upper)
	}
	if lower < 0 {
		return nil, fmt.Errorf("saturation lower must be non-negative, got %v", lower)
	}
	return &RandomSaturation{lower: lower, upper: upper}, nil
}

func (t *RandomSaturation) Name() string {
	return "random_saturation"
}

func (t *RandomSaturation) Apply(rng *rand.Rand, s Sample) (Sample, error) {
	if coin(rng) {
		alpha := uniform(rng, t.lower, t.upper)
		img := s.Image
		for i := channelSaturation; i < len(img.Pix); i += img.Channels {
			img.Pix[i] *= alpha
		}
	}
	return s, nil
}

// RandomHue adds a uniform delta in [-delta, delta] to the HSV hue
// channel, wrapping the result into [0, 360). The image must already
// be HSV.
type RandomHue struct {
	delta float32
}

func NewRandomHue(delta float32) (*RandomHue, error) {
	if delta < 0 || delta > 360 {
		return nil, fmt.Errorf("hue delta must be in [0,360], got %v", delta)
	}
	return &RandomHue{delta: delta}, nil
}

func (t *RandomHue) Name() string {
	return "random_hue"
}

func (t *RandomHue) Apply(rng *rand.Rand, s Sample) (Sample, error) {
	if coin(rng) {
		delta := uniform(rng, -t.delta, t.delta)
		img := s.Image
		for i := channelHue; i < len(img.Pix); i += img.Channels {
			h := img.Pix[i] + delta
			if h > 360 {
				h -= 360
			}
			if h < 0 {
				h += 360
			}
			img.Pix[i] = h
		}
	}
	return s, nil
}

// SwapChannels reorders the channel axis by a fixed permutation of
// (0, 1, 2). The identity permutation leaves the image untouched.
type SwapChannels struct {
	perm [3]int
}

func NewSwapChannels(perm [3]int) (*SwapChannels, error) {
	var seen [3]bool
	for _, p := range perm {
		if p < 0 || p > 2 || seen[p] {
			return nil, fmt.Errorf("swap order %v is not a permutation of (0,1,2)", perm)
		}
		seen[p] = true
	}
	return &SwapChannels{perm: perm}, nil
}

func (t *SwapChannels) Name() string {
	return "swap_channels"
}

func (t *SwapChannels) Apply(_ *rand.Rand, s Sample) (Sample, error) {
	permuteChannels(s.Image, t.perm)
	return s, nil
}

func permuteChannels(img *Image, perm [3]int) {
	var tmp [3]float32
	for i := 0; i < len(img.Pix); i += img.Channels {
		tmp[0] = img.Pix[i+perm[0]]
		tmp[1] = img.Pix[i+perm[1]]
		tmp[2] = img.Pix[i+perm[2]]
		img.Pix[i] = tmp[0]
		img.Pix[i+1] = tmp[1]
		img.Pix[i+2] = tmp[2]
	}
}

// lightingPerms covers every permutation of three channels, identity
// included, so the draw below is uniform over all six.
var lightingPerms = [6][3]int{
	{0, 1, 2}, {0, 2, 1},
	{1, 0, 2}, {1, 2, 0},
	{2, 0, 1}, {2, 1, 0},
}

// RandomLightingNoise applies a uniformly chosen channel permutation,
// gated by a fair coin.
type RandomLightingNoise struct{}

func NewRandomLightingNoise() *RandomLightingNoise {
	return &RandomLightingNoise{}
}

func (t *RandomLightingNoise) Name() string {
	return "random_lighting_noise"
}

func (t *RandomLightingNoise) Apply(rng *rand.Rand, s Sample) (Sample, error) {
	if coin(rng) {
		perm := lightingPerms[rng.Intn(len(lightingPerms))]
		permuteChannels(s.Image, perm)
	}
	return s, nil
}

// PhotometricDistort is the full color-jitter block: brightness first,
// then with 50% probability either the contrast-leading or the
// contrast-trailing variant of {contrast, to-HSV, saturation, hue,
// to-BGR}, then lighting noise. It clones the image up front so callers
// keep their original buffer.
type PhotometricDistort struct {
	brightness    *RandomBrightness
	contrastFirst *Compose
	contrastLast  *Compose
	lightingNoise *RandomLightingNoise
}

// PhotometricParams are the jitter bounds for the distortion block.
type PhotometricParams struct {
	BrightnessDelta float32
	ContrastLower   float32
	ContrastUpper   float32
	SaturationLower float32
	SaturationUpper float32
	HueDelta        float32
}

// DefaultPhotometricParams are the stock SSD jitter bounds.
func DefaultPhotometricParams() PhotometricParams {
	return PhotometricParams{
		BrightnessDelta: 32,
		ContrastLower:   0.5,
		ContrastUpper:   1.5,
		SaturationLower: 0.5,
		SaturationUpper: 1.5,
		HueDelta:        18,
	}
}

func NewPhotometricDistort() (*PhotometricDistort, error) {
	return NewPhotometricDistortWithParams(DefaultPhotometricParams())
}

func NewPhotometricDistortWithParams(p PhotometricParams) (*PhotometricDistort, error) {
	brightness, err := NewRandomBrightness(p.BrightnessDelta)
	if err != nil {
		return nil, err
	}
	contrast, err := NewRandomContrast(p.ContrastLower, p.ContrastUpper)
	if err != nil {
		return nil, err
	}
	toHSV, err := NewConvertColor(ColorSpaceBGR, ColorSpaceHSV)
	if err != nil {
		return nil, err
	}
	saturation, err := NewRandomSaturation(p.SaturationLower, p.SaturationUpper)
	if err != nil {
		return nil, err
	}
	hue, err := NewRandomHue(p.HueDelta)
	if err != nil {
		return nil, err
	}
	toBGR, err := NewConvertColor(ColorSpaceHSV, ColorSpaceBGR)
	if err != nil {
		return nil, err
	}

	return &PhotometricDistort{
		brightness:    brightness,
		contrastFirst: NewCompose(contrast, toHSV, saturation, hue, toBGR),
		contrastLast:  NewCompose(toHSV, saturation, hue, toBGR, contrast),
		lightingNoise: NewRandomLightingNoise(),
	}, nil
}

func (t *PhotometricDistort) Name() string {
	return "photometric_distort"
}

func (t *PhotometricDistort) Apply(rng *rand.Rand, s Sample) (Sample, error) {
	s.Image = s.Image.Clone()

	s, err := t.brightness.Apply(rng, s)
	if err != nil {
		return Sample{}, err
	}

	distort := t.contrastLast
	if coin(rng) {
		distort = t.contrastFirst
	}
	s, err = distort.Apply(rng, s)
	if err != nil {
		return Sample{}, err
	}

	return t.lightingNoise.Apply(rng, s)
}
