package augment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImage(t *testing.T) {
	t.Parallel()

	t.Run("clone is independent", func(t *testing.T) {
		t.Parallel()
		img := testImage(4, 5)
		clone := img.Clone()
		clone.Set(0, 0, 0, -42)
		assert.NotEqual(t, img.At(0, 0, 0), clone.At(0, 0, 0))
	})

	t.Run("crop copies the requested window", func(t *testing.T) {
		t.Parallel()
		img := testImage(10, 10)
		crop := img.Crop(2, 3, 7, 9)
		require.Equal(t, 5, crop.Width)
		require.Equal(t, 6, crop.Height)
		assert.Equal(t, img.At(3, 2, 0), crop.At(0, 0, 0))
		assert.Equal(t, img.At(8, 6, 2), crop.At(5, 4, 2))
	})

	t.Run("filled image repeats the fill per pixel", func(t *testing.T) {
		t.Parallel()
		img := NewImageFilled(2, 2, 3, [3]float32{1, 2, 3})
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				assert.Equal(t, float32(1), img.At(y, x, 0))
				assert.Equal(t, float32(2), img.At(y, x, 1))
				assert.Equal(t, float32(3), img.At(y, x, 2))
			}
		}
	})
}

func TestBoxAccessors(t *testing.T) {
	t.Parallel()

	b := Box{X1: 10, Y1: 20, X2: 30, Y2: 60}
	assert.Equal(t, float32(800), b.Area())
	assert.Equal(t, float32(20), b.CenterX())
	assert.Equal(t, float32(40), b.CenterY())
}
