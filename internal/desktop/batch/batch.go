package batch

import (
	"math"

	"roadrush/internal/game"
)

const (
	// QuadStride is floats per coloured vertex: pos(2) + color(4).
	QuadStride = 6
	// TextStride is floats per glyph vertex: pos(2) + uv(2) + color(4).
	TextStride = 8
)

// DefaultTextScale sizes basicfont's 7px advance to about 10 surface units.
const DefaultTextScale = 1.5

// Batch is a game.Surface that records a frame in framebuffer pixels.
// All text is drawn on top of all rects when the frame is flushed.
type Batch struct {
	Quads  []float32
	Glyphs []float32
	Bg     game.RGB

	w, h      float64 // surface units
	sx, sy    float64 // framebuffer pixels per unit
	atlas     *Atlas
	textScale float64
}

func New(atlas *Atlas, w, h float64) *Batch {
	if !(w > 0) {
		w = game.DefaultSurfaceWidth
	}
	if !(h > 0) {
		h = game.DefaultSurfaceHeight
	}
	return &Batch{w: w, h: h, sx: 1, sy: 1, atlas: atlas, textScale: DefaultTextScale}
}

// SetFramebuffer updates the pixel scale for the current framebuffer size.
func (b *Batch) SetFramebuffer(fbW, fbH int) {
	if fbW <= 0 || fbH <= 0 {
		return
	}
	b.sx = float64(fbW) / b.w
	b.sy = float64(fbH) / b.h
}

// ToSurface converts framebuffer pixels to surface units.
func (b *Batch) ToSurface(px, py float64) (float64, float64) {
	return px / b.sx, py / b.sy
}

func (b *Batch) Size() (float64, float64) { return b.w, b.h }

func (b *Batch) Clear(c game.RGB) {
	b.Bg = c
	b.Quads = b.Quads[:0]
	b.Glyphs = b.Glyphs[:0]
}

func (b *Batch) vertex(x, y float64, r, g, bl float32) {
	b.Quads = append(b.Quads, float32(x*b.sx), float32(y*b.sy), r, g, bl, 1)
}

// quad appends two triangles for the corners p0..p3 in winding order.
func (b *Batch) quad(x0, y0, x1, y1, x2, y2, x3, y3 float64, c game.RGB) {
	r, g, bl := c.Floats()
	b.vertex(x0, y0, r, g, bl)
	b.vertex(x1, y1, r, g, bl)
	b.vertex(x2, y2, r, g, bl)
	b.vertex(x0, y0, r, g, bl)
	b.vertex(x2, y2, r, g, bl)
	b.vertex(x3, y3, r, g, bl)
}

func (b *Batch) FillRect(x, y, w, h float64, c game.RGB) {
	if w <= 0 || h <= 0 {
		return
	}
	b.quad(x, y, x+w, y, x+w, y+h, x, y+h, c)
}

// Line draws a stroke as a quad centred on the segment.
func (b *Batch) Line(x0, y0, x1, y1, width float64, c game.RGB) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 || width <= 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	b.quad(x0+nx, y0+ny, x1+nx, y1+ny, x1-nx, y1-ny, x0-nx, y0-ny, c)
}

// Text lays out s with its baseline at y.
func (b *Batch) Text(s string, x, y float64, c game.RGB) {
	if b.atlas == nil {
		return
	}
	r, g, bl := c.Floats()
	cw := float64(b.atlas.CellW) * b.textScale
	ch := float64(b.atlas.CellH) * b.textScale
	top := y - float64(b.atlas.Ascent)*b.textScale
	for _, ru := range s {
		u0, v0, u1, v1, ok := b.atlas.UV(ru)
		if ok {
			px0, py0 := float32(x*b.sx), float32(top*b.sy)
			px1, py1 := float32((x+cw)*b.sx), float32((top+ch)*b.sy)
			b.Glyphs = append(b.Glyphs,
				px0, py0, u0, v0, r, g, bl, 1,
				px1, py0, u1, v0, r, g, bl, 1,
				px0, py1, u0, v1, r, g, bl, 1,
				px1, py0, u1, v0, r, g, bl, 1,
				px1, py1, u1, v1, r, g, bl, 1,
				px0, py1, u0, v1, r, g, bl, 1,
			)
		}
		x += cw
	}
}

// TextWidth implements game.TextMeasurer.
func (b *Batch) TextWidth(s string) float64 {
	if b.atlas == nil {
		return 0
	}
	return float64(len([]rune(s))) * float64(b.atlas.CellW) * b.textScale
}

// QuadVertices and TextVertices are the vertex counts to draw.
func (b *Batch) QuadVertices() int { return len(b.Quads) / QuadStride }
func (b *Batch) TextVertices() int { return len(b.Glyphs) / TextStride }
