package game

import "fmt"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Dim scales every channel by k/255.
func (c RGB) Dim(k uint8) RGB {
	scale := func(v uint8) uint8 { return uint8(uint16(v) * uint16(k) / 255) }
	return RGB{R: scale(c.R), G: scale(c.G), B: scale(c.B)}
}

// Hex formats the colour as #RRGGBB.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Floats returns the colour as normalised float32 channels.
func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Background RGB
	Road       RGB
	Dash       RGB
	Obstacle   RGB
	Opponent   RGB
	Text       RGB
	Title      RGB
	Hint       RGB
	Alert      RGB
	Panel      RGB
}{
	Background: RGB{R: 0, G: 0, B: 0},
	Road:       RGB{R: 0x33, G: 0x33, B: 0x33},
	Dash:       RGB{R: 255, G: 255, B: 255},
	Obstacle:   RGB{R: 255, G: 0, B: 0},
	Opponent:   RGB{R: 0x80, G: 0x80, B: 0x80},
	Text:       RGB{R: 255, G: 255, B: 255},
	Title:      RGB{R: 100, G: 255, B: 100},
	Hint:       RGB{R: 255, G: 255, B: 100},
	Alert:      RGB{R: 255, G: 80, B: 80},
	Panel:      RGB{R: 20, G: 20, B: 28},
}
