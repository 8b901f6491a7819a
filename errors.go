package pick

import "errors"

var (
	// ErrCapacityExceeded is returned by Map.Register once every code of
	// the session has been handed out.
	ErrCapacityExceeded = errors.New("pick: color code capacity exceeded")

	// ErrUnsupportedFormat is returned for pixel formats that cannot carry
	// exact pick colors, such as sRGB targets.
	ErrUnsupportedFormat = errors.New("pick: unsupported pixel format")

	// ErrInvalidSize is returned when buffer dimensions or strides do not
	// describe the supplied pixel data.
	ErrInvalidSize = errors.New("pick: invalid buffer size")
)
