// SPDX-License-Identifier: MIT

package viewport

import (
	"fmt"

	"github.com/katalvlaran/lvmath/vec"
)

// Viewport is a window-space pixel rectangle with its origin at the
// bottom-left corner, as passed to glViewport.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// Full returns the viewport covering a whole w×h window.
func Full(w, h int) Viewport {
	return Viewport{Width: w, Height: h}
}

// Quadrants splits a w×h window into four w/2 × h/2 viewports in the order
// bottom-left, bottom-right, top-left, top-right. Odd sizes lose the last
// pixel row/column to integer division.
func Quadrants(w, h int) [4]Viewport {
	hw, hh := w/2, h/2
	return [4]Viewport{
		{X: 0, Y: 0, Width: hw, Height: hh},
		{X: hw, Y: 0, Width: hw, Height: hh},
		{X: 0, Y: hh, Width: hw, Height: hh},
		{X: hw, Y: hh, Width: hw, Height: hh},
	}
}

// Empty reports whether v covers no pixel.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Aspect returns Width/Height.
//
// Errors:
//   - ErrEmptyViewport when either side is non-positive.
func (v Viewport) Aspect() (float64, error) {
	if v.Empty() {
		return 0, viewportErrorf(opAspect, ErrEmptyViewport)
	}
	return float64(v.Width) / float64(v.Height), nil
}

// ToWindow maps normalized device coordinates ([-1,1]³) to window
// coordinates: x, y in pixels and depth in [0, 1] (glDepthRange(0, 1)).
func (v Viewport) ToWindow(ndc vec.Vec3d) vec.Vec3d {
	return vec.Vec3d{
		X: float64(v.X) + (ndc.X+1)*float64(v.Width)/2,
		Y: float64(v.Y) + (ndc.Y+1)*float64(v.Height)/2,
		Z: (ndc.Z + 1) / 2,
	}
}

// Contains reports whether the window point (x, y) falls inside v. The
// rectangle is half-open, [X, X+Width) × [Y, Y+Height), so adjacent
// viewports never share a point.
func (v Viewport) Contains(x, y float64) bool {
	return x >= float64(v.X) && x < float64(v.X+v.Width) &&
		y >= float64(v.Y) && y < float64(v.Y+v.Height)
}

func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", v.Width, v.Height, v.X, v.Y)
}
