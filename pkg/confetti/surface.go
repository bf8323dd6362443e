package confetti

import "image/color"

// Surface is the 2D drawing target the effect renders onto.
// Transform operations follow canvas semantics: Translate and Rotate apply
// in the current local coordinate space, Save/Restore push and pop the
// transform together with the fill color.
type Surface interface {
	// Size returns the drawable width and height in pixels.
	Size() (width, height float64)
	Clear()
	SetFillColor(c color.Color)
	Save()
	Restore()
	Translate(x, y float64)
	// Rotate rotates the local space by theta radians.
	Rotate(theta float64)
	FillRect(x, y, width, height float64)
	Show()
	Hide()
}

// Presenter is implemented by surfaces that need an explicit flush after
// each tick (terminal screens).
type Presenter interface {
	Present()
}
