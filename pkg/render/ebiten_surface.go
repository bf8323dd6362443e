package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenSurface draws onto an offscreen canvas that is composited onto the
// screen in Draw. Drawing happens during Update, so the effect can tick from
// the game loop without touching the screen image directly.
type EbitenSurface struct {
	canvas    *ebiten.Image
	pixel     *ebiten.Image
	transform TransformStack
	visible   bool
}

// NewEbitenSurface creates a hidden surface of the given pixel size.
func NewEbitenSurface(width, height int) *EbitenSurface {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	return &EbitenSurface{
		canvas: ebiten.NewImage(width, height),
		pixel:  pixel,
	}
}

// Resize recreates the canvas when the size changes. The canvas content is discarded.
func (s *EbitenSurface) Resize(width, height int) {
	b := s.canvas.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return
	}
	s.canvas.Deallocate()
	s.canvas = ebiten.NewImage(width, height)
}

func (s *EbitenSurface) Size() (float64, float64) {
	b := s.canvas.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *EbitenSurface) Clear() {
	s.canvas.Clear()
	s.transform.Reset()
}

func (s *EbitenSurface) SetFillColor(c color.Color) {
	s.transform.SetFill(c)
}

func (s *EbitenSurface) Save()    { s.transform.Save() }
func (s *EbitenSurface) Restore() { s.transform.Restore() }

func (s *EbitenSurface) Translate(x, y float64) {
	s.transform.Translate(x, y)
}

func (s *EbitenSurface) Rotate(theta float64) {
	s.transform.Rotate(theta)
}

// FillRect stretches a white pixel over the rectangle, transforms it with
// the current transform and tints it with the fill color.
func (s *EbitenSurface) FillRect(x, y, width, height float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width, height)
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(s.transform.Current())
	op.ColorScale.ScaleWithColor(s.transform.Fill())
	op.Filter = ebiten.FilterLinear
	s.canvas.DrawImage(s.pixel, op)
}

func (s *EbitenSurface) Show() { s.visible = true }

func (s *EbitenSurface) Hide() {
	s.visible = false
	s.canvas.Clear()
}

// Visible reports whether Draw composites the canvas.
func (s *EbitenSurface) Visible() bool {
	return s.visible
}

// Draw composites the canvas onto screen when visible.
func (s *EbitenSurface) Draw(screen *ebiten.Image) {
	if !s.visible {
		return
	}
	screen.DrawImage(s.canvas, nil)
}
