package famdash

import "errors"

var (
	// ErrNilImage indicates an image was required but not provided.
	ErrNilImage = errors.New("famdash: image is required")
	// ErrEmptyPalette indicates a ditherer was built without palette colors.
	ErrEmptyPalette = errors.New("famdash: palette must not be empty")
	// ErrUnknownDitherType indicates an unrecognized dither type string.
	ErrUnknownDitherType = errors.New("famdash: unknown dither type")
	// ErrUnknownDitherKernel indicates an unrecognized dither kernel string.
	ErrUnknownDitherKernel = errors.New("famdash: unknown dither kernel")
)
