package rosconv

import "errors"

var (
	// ErrUnsupportedEncoding is returned when a message carries a pixel or
	// element encoding tag that no conversion rule exists for.
	ErrUnsupportedEncoding = errors.New("rosconv: unsupported encoding")

	// ErrInvalidDimensions is returned when a message's declared buffer size
	// is inconsistent with its declared height, width, or stride.
	ErrInvalidDimensions = errors.New("rosconv: buffer size inconsistent with declared dimensions")

	// ErrDegenerateInput is returned by opt-in validation helpers for input
	// that is structurally valid but numerically degenerate, such as a
	// zero-norm quaternion. Conversions themselves pass such values through.
	ErrDegenerateInput = errors.New("rosconv: numerically degenerate input")
)
