// Package augment implements the train-time augmentation pipeline for a
// single-shot box detector: photometric jitter, canvas expansion,
// overlap-constrained patch sampling, mirroring, and the coordinate and
// normalization plumbing around them. Every stage maps an
// (image, boxes, labels) sample to another and keeps no state between
// calls beyond its construction parameters.
package augment

// NewTrainingPipeline builds the standard train-time composition:
// absolute coords, photometric distortion, expand, sample crop, mirror,
// percent coords, square resize, mean subtraction. size is the detector
// input resolution, mean the per-channel BGR normalization constant.
func NewTrainingPipeline(size int, mean [3]float32) (*Compose, error) {
	distort, err := NewPhotometricDistort()
	if err != nil {
		return nil, err
	}
	resize, err := NewResize(size)
	if err != nil {
		return nil, err
	}

	return NewCompose(
		NewToAbsoluteCoords(),
		distort,
		NewExpand(mean),
		NewRandomSampleCrop(),
		NewRandomMirror(),
		NewToPercentCoords(),
		resize,
		NewSubtractMeans(mean),
	), nil
}

// NewPreviewPipeline is the training composition without the final mean
// subtraction, so saved outputs stay viewable.
func NewPreviewPipeline(size int, mean [3]float32) (*Compose, error) {
	distort, err := NewPhotometricDistort()
	if err != nil {
		return nil, err
	}
	resize, err := NewResize(size)
	if err != nil {
		return nil, err
	}

	return NewCompose(
		NewToAbsoluteCoords(),
		distort,
		NewExpand(mean),
		NewRandomSampleCrop(),
		NewRandomMirror(),
		NewToPercentCoords(),
		resize,
	), nil
}
