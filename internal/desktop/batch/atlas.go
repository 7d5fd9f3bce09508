// Package batch collects one frame of draw calls as GL-ready vertex data.
// It has no GL dependency so the layout maths can be tested headless.
package batch

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII is all the HUD and menus need.
const (
	firstGlyph = 32
	lastGlyph  = 126
	atlasCols  = 16
)

// Atlas is a white-on-transparent glyph sheet rendered from basicfont 7x13.
type Atlas struct {
	Image  *image.NRGBA
	CellW  int
	CellH  int
	Ascent int
	Cols   int
	Rows   int
}

func NewAtlas() *Atlas {
	face := basicfont.Face7x13
	cellW, cellH := face.Advance, face.Height
	count := lastGlyph - firstGlyph + 1
	rows := (count + atlasCols - 1) / atlasCols

	img := image.NewNRGBA(image.Rect(0, 0, cellW*atlasCols, cellH*rows))
	d := &font.Drawer{Dst: img, Src: image.White, Face: face}
	for ch := firstGlyph; ch <= lastGlyph; ch++ {
		i := ch - firstGlyph
		x := (i % atlasCols) * cellW
		y := (i / atlasCols) * cellH
		d.Dot = fixed.P(x, y+face.Ascent)
		d.DrawString(string(rune(ch)))
	}

	return &Atlas{
		Image:  img,
		CellW:  cellW,
		CellH:  cellH,
		Ascent: face.Ascent,
		Cols:   atlasCols,
		Rows:   rows,
	}
}

// UV returns the texture rectangle of r. ok is false for runes outside the sheet.
func (a *Atlas) UV(r rune) (u0, v0, u1, v1 float32, ok bool) {
	if r < firstGlyph || r > lastGlyph {
		return 0, 0, 0, 0, false
	}
	i := int(r) - firstGlyph
	col, row := i%a.Cols, i/a.Cols
	w := float32(a.Image.Bounds().Dx())
	h := float32(a.Image.Bounds().Dy())
	u0 = float32(col*a.CellW) / w
	v0 = float32(row*a.CellH) / h
	u1 = float32((col+1)*a.CellW) / w
	v1 = float32((row+1)*a.CellH) / h
	return u0, v0, u1, v1, true
}
