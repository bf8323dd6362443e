// Package render provides the drawing surfaces the confetti effect renders onto:
// an offscreen ebiten image for the desktop build and a tcell screen for terminals.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// TransformStack tracks the current 2D transform with canvas-style semantics:
// Translate and Rotate act in local space (they are applied before the
// existing transform), Save/Restore push and pop state.
type TransformStack struct {
	current ebiten.GeoM
	fill    color.Color
	saved   []savedState
}

type savedState struct {
	geom ebiten.GeoM
	fill color.Color
}

// Save pushes the current transform and fill color.
func (t *TransformStack) Save() {
	t.saved = append(t.saved, savedState{geom: t.current, fill: t.fill})
}

// Restore pops the last saved state. Restore without a matching Save is a no-op.
func (t *TransformStack) Restore() {
	if len(t.saved) == 0 {
		return
	}
	last := t.saved[len(t.saved)-1]
	t.saved = t.saved[:len(t.saved)-1]
	t.current = last.geom
	t.fill = last.fill
}

// Translate moves the local origin by (x, y).
func (t *TransformStack) Translate(x, y float64) {
	var local ebiten.GeoM
	local.Translate(x, y)
	t.local(local)
}

// Rotate rotates the local space by theta radians.
func (t *TransformStack) Rotate(theta float64) {
	var local ebiten.GeoM
	local.Rotate(theta)
	t.local(local)
}

// Reset drops all saved state and returns to the identity transform.
func (t *TransformStack) Reset() {
	t.current.Reset()
	t.saved = t.saved[:0]
}

// SetFill sets the current fill color.
func (t *TransformStack) SetFill(c color.Color) {
	t.fill = c
}

// Fill returns the current fill color (opaque black if never set).
func (t *TransformStack) Fill() color.Color {
	if t.fill == nil {
		return color.Black
	}
	return t.fill
}

// Current returns the current transform.
func (t *TransformStack) Current() ebiten.GeoM {
	return t.current
}

// Apply maps a local point to surface coordinates.
func (t *TransformStack) Apply(x, y float64) (float64, float64) {
	return t.current.Apply(x, y)
}

// Depth returns the number of saved states.
func (t *TransformStack) Depth() int {
	return len(t.saved)
}

func (t *TransformStack) local(local ebiten.GeoM) {
	local.Concat(t.current)
	t.current = local
}
