package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Terminal cells are roughly twice as tall as they are wide.
const (
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
)

// confettiRunes are the particle glyphs, indexed by rotation.
var confettiRunes = [4]rune{'▬', '╲', '▮', '╱'}

// TerminalSurface renders onto a tcell screen. The surface exposes a virtual
// pixel space (cells × cell size) so the same physics runs in a terminal;
// each rectangle is drawn as a single glyph at the cell under its center.
type TerminalSurface struct {
	screen     tcell.Screen
	transform  TransformStack
	cellWidth  float64
	cellHeight float64
	rotation   float64 // accumulated rotation of the current local space
	rotations  []float64
	visible    bool
}

// NewTerminalSurface wraps an initialized tcell screen.
func NewTerminalSurface(screen tcell.Screen) *TerminalSurface {
	return &TerminalSurface{
		screen:     screen,
		cellWidth:  DefaultCellWidth,
		cellHeight: DefaultCellHeight,
	}
}

func (s *TerminalSurface) Size() (float64, float64) {
	cols, rows := s.screen.Size()
	return float64(cols) * s.cellWidth, float64(rows) * s.cellHeight
}

func (s *TerminalSurface) Clear() {
	s.screen.Clear()
	s.transform.Reset()
	s.rotation = 0
	s.rotations = s.rotations[:0]
}

func (s *TerminalSurface) SetFillColor(c color.Color) {
	s.transform.SetFill(c)
}

func (s *TerminalSurface) Save() {
	s.transform.Save()
	s.rotations = append(s.rotations, s.rotation)
}

func (s *TerminalSurface) Restore() {
	s.transform.Restore()
	if n := len(s.rotations); n > 0 {
		s.rotation = s.rotations[n-1]
		s.rotations = s.rotations[:n-1]
	}
}

func (s *TerminalSurface) Translate(x, y float64) {
	s.transform.Translate(x, y)
}

func (s *TerminalSurface) Rotate(theta float64) {
	s.transform.Rotate(theta)
	s.rotation += theta
}

func (s *TerminalSurface) FillRect(x, y, width, height float64) {
	if !s.visible {
		return
	}
	px, py := s.transform.Apply(x+width/2, y+height/2)
	if px < 0 || py < 0 {
		return
	}
	col := int(px / s.cellWidth)
	row := int(py / s.cellHeight)
	cols, rows := s.screen.Size()
	if col >= cols || row >= rows {
		return
	}

	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(s.transform.Fill()))
	s.screen.SetContent(col, row, glyphFor(s.rotation), nil, style)
}

func (s *TerminalSurface) Show() { s.visible = true }

func (s *TerminalSurface) Hide() {
	s.visible = false
	s.screen.Clear()
	s.screen.Show()
}

// Present flushes the frame to the terminal.
func (s *TerminalSurface) Present() {
	s.screen.Show()
}

// glyphFor picks one of four glyphs by rotation quadrant (45° steps, mod 180°).
func glyphFor(theta float64) rune {
	deg := math.Mod(theta*180/math.Pi, 180)
	if deg < 0 {
		deg += 180
	}
	idx := int(math.Floor((deg+22.5)/45)) % len(confettiRunes)
	return confettiRunes[idx]
}
