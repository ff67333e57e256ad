package mapdata

import (
	"errors"
	"fmt"

	"github.com/ironsheep/mapbuilder/internal/palette"
)

// ErrNegativeCount indicates a negative rock or gem count.
var ErrNegativeCount = errors.New("mapdata: counts must not be negative")

// PixelError reports a classification failure at a grid cell. X and Y are
// top-down grid coordinates. Err is palette.ErrUnrecognizedColor,
// palette.ErrUnclassifiedRegion or the classifier's own error.
type PixelError struct {
	Err   error
	X     int
	Y     int
	Color palette.Color

	// Nearest names the closest palette entry, when the classifier can tell.
	Nearest string
}

func (e *PixelError) Error() string {
	msg := fmt.Sprintf("pixel (%d, %d) color %s: %v", e.X, e.Y, e.Color, e.Err)
	if e.Nearest != "" {
		msg += fmt.Sprintf(" (nearest palette color: %s)", e.Nearest)
	}
	return msg
}

func (e *PixelError) Unwrap() error {
	return e.Err
}
