// Package marker converts between tap locations on a displayed room image
// and resolution-independent fractional positions. Rendered dimensions
// vary across devices and rotations; storing fractions keeps furniture
// annotations valid at any later display size without migration.
package marker

import (
	"errors"

	"homescan/internal/model"
)

// ErrInvalidBounds is returned when the rendered dimensions are not
// positive. The mapper must not be used before the image's displayed size
// is known.
var ErrInvalidBounds = errors.New("rendered dimensions must be positive")

// ToFractional converts a tap at (tapX, tapY) on an image rendered at
// width x height into a fractional position. Taps inside the image bounds
// yield coordinates in [0,1].
func ToFractional(tapX, tapY, width, height float64) (model.Position, error) {
	if width <= 0 || height <= 0 {
		return model.Position{}, ErrInvalidBounds
	}
	return model.Position{X: tapX / width, Y: tapY / height}, nil
}

// ToPixels converts a stored fractional position back into pixel
// coordinates for an image rendered at width x height. Inverse of
// ToFractional at the same rendered size.
func ToPixels(pos model.Position, width, height float64) (x, y float64, err error) {
	if width <= 0 || height <= 0 {
		return 0, 0, ErrInvalidBounds
	}
	return pos.X * width, pos.Y * height, nil
}
