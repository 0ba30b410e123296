package augment

// Intersect returns the intersection area between each box and the rect.
func Intersect(boxes []Box, rect Box) []float64 {
	inter := make([]float64, len(boxes))
	for i, b := range boxes {
		w := minf(b.X2, rect.X2) - maxf(b.X1, rect.X1)
		h := minf(b.Y2, rect.Y2) - maxf(b.Y1, rect.Y1)
		if w < 0 {
			w = 0
		}
		if h < 0 {
			h = 0
		}
		inter[i] = float64(w) * float64(h)
	}
	return inter
}

// Jaccard returns the intersection-over-union between each box and the
// rect: inter / (area(box) + area(rect) - inter). Non-degenerate inputs
// give values in [0,1], with Jaccard(b, b) == 1.
func Jaccard(boxes []Box, rect Box) []float64 {
	overlaps := Intersect(boxes, rect)
	rectArea := float64(rect.Area())
	for i, b := range boxes {
		union := float64(b.Area()) + rectArea - overlaps[i]
		overlaps[i] /= union
	}
	return overlaps
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
