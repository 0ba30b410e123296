package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gocv.io/x/gocv"

	"boxaug/internal/augment"
	"boxaug/internal/logger"
)

// Loader reads image files from disk into float32 BGR samples.
type Loader struct {
	logger logger.Logger
}

func NewLoader(log logger.Logger) *Loader {
	return &Loader{logger: log}
}

// LoadImage decodes the file at path into a float32 BGR image.
func (l *Loader) LoadImage(path string) (*augment.Image, error) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	defer mat.Close()

	if mat.Empty() {
		return nil, fmt.Errorf("failed to read image %s", path)
	}

	img, err := augment.FromMat(mat)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", path, err)
	}

	l.logger.Debug("Loader", "image loaded", map[string]interface{}{
		"path":   path,
		"width":  img.Width,
		"height": img.Height,
	})
	return img, nil
}

// ListImages returns the image files directly inside dir, in directory
// order.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if isImageFile(path) {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

func isImageFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".bmp", ".tif", ".tiff":
		return true
	}
	return false
}
