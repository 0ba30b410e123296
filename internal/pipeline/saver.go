package pipeline

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"boxaug/internal/augment"
	"boxaug/internal/logger"
)

// Saver writes augmented samples back to disk with the surviving boxes
// drawn on top, for visual inspection of a pipeline configuration.
type Saver struct {
	logger logger.Logger
}

func NewSaver(log logger.Logger) *Saver {
	return &Saver{logger: log}
}

// SaveImage encodes the image to path. Boxes are taken in percent
// coordinates and drawn in green.
func (s *Saver) SaveImage(img *augment.Image, boxes []augment.Box, path string) error {
	mat, err := img.ToMat()
	if err != nil {
		return err
	}
	defer mat.Close()

	out := gocv.NewMat()
	defer out.Close()
	mat.ConvertTo(&out, gocv.MatTypeCV8UC3)

	w := float32(img.Width)
	h := float32(img.Height)
	green := color.RGBA{G: 255, A: 255}
	for _, b := range boxes {
		rect := image.Rect(int(b.X1*w), int(b.Y1*h), int(b.X2*w), int(b.Y2*h))
		gocv.Rectangle(&out, rect, green, 2)
	}

	if ok := gocv.IMWrite(path, out); !ok {
		return fmt.Errorf("failed to write image %s", path)
	}

	s.logger.Debug("Saver", "image saved", map[string]interface{}{
		"path":  path,
		"boxes": len(boxes),
	})
	return nil
}
