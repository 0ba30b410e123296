package augment

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateRoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	s := Sample{
		Image: testImage(240, 320),
		Boxes: []Box{
			{X1: 0.1, Y1: 0.2, X2: 0.5, Y2: 0.8},
			{X1: 0.0, Y1: 0.0, X2: 1.0, Y2: 1.0},
			{X1: 0.33, Y1: 0.41, X2: 0.66, Y2: 0.59},
		},
		Labels: []int{1, 2, 3},
	}
	original := CloneBoxes(s.Boxes)

	s, err := NewToAbsoluteCoords().Apply(rng, s)
	require.NoError(t, err)
	s, err = NewToPercentCoords().Apply(rng, s)
	require.NoError(t, err)

	for i, b := range s.Boxes {
		assert.InDelta(t, float64(original[i].X1), float64(b.X1), 1e-5)
		assert.InDelta(t, float64(original[i].Y1), float64(b.Y1), 1e-5)
		assert.InDelta(t, float64(original[i].X2), float64(b.X2), 1e-5)
		assert.InDelta(t, float64(original[i].Y2), float64(b.Y2), 1e-5)
	}
}

func TestToAbsoluteCoords(t *testing.T) {
	t.Parallel()

	// A normalized box on a 100x100 frame lands on exact pixel values
	// and the triple keeps its shape through the stage.
	rng := rand.New(rand.NewSource(1))
	s := Sample{
		Image:  testImage(100, 100),
		Boxes:  []Box{{X1: 0.1, Y1: 0.1, X2: 0.5, Y2: 0.5}},
		Labels: []int{1},
	}

	out, err := NewToAbsoluteCoords().Apply(rng, s)
	require.NoError(t, err)
	require.Len(t, out.Boxes, 1)
	require.Len(t, out.Labels, 1)
	assert.Equal(t, Box{X1: 10, Y1: 10, X2: 50, Y2: 50}, out.Boxes[0])
	assert.Equal(t, 100, out.Image.Height)
	assert.Equal(t, 100, out.Image.Width)
	assert.Equal(t, 3, out.Image.Channels)
}

func TestSubtractMeans(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	img := NewImageFilled(4, 4, 3, [3]float32{100, 150, 200})
	s := Sample{Image: img}

	out, err := NewSubtractMeans([3]float32{104, 117, 123}).Apply(rng, s)
	require.NoError(t, err)
	assert.InDelta(t, -4, float64(out.Image.At(0, 0, 0)), 1e-5)
	assert.InDelta(t, 33, float64(out.Image.At(2, 3, 1)), 1e-5)
	assert.InDelta(t, 77, float64(out.Image.At(3, 3, 2)), 1e-5)
}

func TestNewResizeValidation(t *testing.T) {
	t.Parallel()

	_, err := NewResize(0)
	assert.Error(t, err)

	_, err = NewResize(-300)
	assert.Error(t, err)

	r, err := NewResize(300)
	require.NoError(t, err)
	assert.Equal(t, "resize", r.Name())
}
