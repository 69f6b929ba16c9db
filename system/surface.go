package system

import "image/color"

// Surface is the host's drawing target. Coordinates are world units with
// the origin at the top-left corner and y growing downward.
type Surface interface {
	Clear()
	FillRect(x, y, width, height float64, clr color.Color)
	FillCircle(cx, cy, radius float64, clr color.Color)
}
