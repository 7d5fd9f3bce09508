// Package terminal hosts the game in a tcell screen.
package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"roadrush/internal/game"
)

// CellSurface maps surface units onto the terminal grid. Every cell is a
// pixel: FillRect paints backgrounds, Text writes runes over whatever
// background is already there.
type CellSurface struct {
	screen     tcell.Screen
	w, h       float64
	cols, rows int
	bg         []game.RGB // background per cell, for text overdraw
}

func NewCellSurface(screen tcell.Screen, w, h float64) *CellSurface {
	if !(w > 0) {
		w = game.DefaultSurfaceWidth
	}
	if !(h > 0) {
		h = game.DefaultSurfaceHeight
	}
	cs := &CellSurface{screen: screen, w: w, h: h}
	cs.Resize()
	return cs
}

// Resize picks up the current terminal size.
func (cs *CellSurface) Resize() {
	cs.cols, cs.rows = cs.screen.Size()
	if n := cs.cols * cs.rows; n > 0 {
		cs.bg = make([]game.RGB, n)
	} else {
		cs.bg = nil
	}
}

func (cs *CellSurface) Grid() (cols, rows int) { return cs.cols, cs.rows }

func (cs *CellSurface) Size() (float64, float64) { return cs.w, cs.h }

func (cs *CellSurface) scaleX() float64 { return float64(cs.cols) / cs.w }
func (cs *CellSurface) scaleY() float64 { return float64(cs.rows) / cs.h }

// ToSurface converts a cell position to surface units at the cell centre.
func (cs *CellSurface) ToSurface(col, row int) (float64, float64) {
	if cs.cols == 0 || cs.rows == 0 {
		return 0, 0
	}
	return (float64(col) + 0.5) / cs.scaleX(), (float64(row) + 0.5) / cs.scaleY()
}

func color(c game.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (cs *CellSurface) paint(col, row int, c game.RGB) {
	if col < 0 || row < 0 || col >= cs.cols || row >= cs.rows {
		return
	}
	cs.bg[row*cs.cols+col] = c
	cs.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(color(c)))
}

func (cs *CellSurface) Clear(c game.RGB) {
	for i := range cs.bg {
		cs.bg[i] = c
	}
	cs.screen.Fill(' ', tcell.StyleDefault.Background(color(c)))
}

// span converts [a, a+l) in surface units to a half-open cell range,
// always covering at least one cell for positive lengths.
func span(a, l, scale float64) (int, int) {
	lo := int(math.Floor(a * scale))
	hi := int(math.Round((a + l) * scale))
	if hi <= lo && l > 0 {
		hi = lo + 1
	}
	return lo, hi
}

func (cs *CellSurface) FillRect(x, y, w, h float64, c game.RGB) {
	c0, c1 := span(x, w, cs.scaleX())
	r0, r1 := span(y, h, cs.scaleY())
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, cs.cols), min(r1, cs.rows)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			cs.paint(col, row, c)
		}
	}
}

// Line steps through the cells between the endpoints. Strokes are never
// thinner than one cell.
func (cs *CellSurface) Line(x0, y0, x1, y1, width float64, c game.RGB) {
	sx, sy := cs.scaleX(), cs.scaleY()
	fx0, fy0 := x0*sx, y0*sy
	fx1, fy1 := x1*sx, y1*sy
	steps := int(math.Ceil(math.Max(math.Abs(fx1-fx0), math.Abs(fy1-fy0))))
	half := max(int(width*sx)/2, 0)
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		col := int(math.Floor(fx0 + (fx1-fx0)*t))
		row := int(math.Floor(fy0 + (fy1-fy0)*t))
		if i == steps && steps > 0 && float64(row) == fy1 {
			// End point is exclusive on exact cell boundaries.
			continue
		}
		for dc := -half; dc <= half; dc++ {
			cs.paint(col+dc, row, c)
		}
	}
}

// Text writes s starting at the cell containing (x, y).
func (cs *CellSurface) Text(s string, x, y float64, c game.RGB) {
	col := int(math.Floor(x * cs.scaleX()))
	row := int(math.Floor(y * cs.scaleY()))
	if row < 0 || row >= cs.rows {
		return
	}
	fg := color(c)
	for _, r := range s {
		if col >= 0 && col < cs.cols {
			bg := cs.bg[row*cs.cols+col]
			cs.screen.SetContent(col, row, r, nil, tcell.StyleDefault.Foreground(fg).Background(color(bg)))
		}
		col++
	}
}

// TextWidth is one cell per rune, in surface units.
func (cs *CellSurface) TextWidth(s string) float64 {
	if cs.cols == 0 {
		return 0
	}
	return float64(len([]rune(s))) / cs.scaleX()
}
