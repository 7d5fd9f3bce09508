package game

import "fmt"

// TextMeasurer is implemented by surfaces that know their glyph metrics.
type TextMeasurer interface {
	TextWidth(s string) float64
}

// approxGlyphWidth matches a 20px proportional font closely enough for centring.
const approxGlyphWidth = 10.0

// TextWidth returns the width of s on surf in surface units.
func TextWidth(surf Surface, s string) float64 {
	if m, ok := surf.(TextMeasurer); ok {
		return m.TextWidth(s)
	}
	return float64(len([]rune(s))) * approxGlyphWidth
}

func centerText(surf Surface, s string, y float64, c RGB) {
	w, _ := surfaceSize(surf)
	surf.Text(s, w/2-TextWidth(surf, s)/2, y, c)
}

// RenderSelect draws the car selection menu.
func RenderSelect(surf Surface) {
	w, h := surfaceSize(surf)
	surf.Clear(Palette.Background)
	surf.FillRect(RoadMargin, 0, w-2*RoadMargin, h, Palette.Road)

	centerText(surf, "ROAD RUSH", h/2-160, Palette.Title)
	centerText(surf, "Choose your car", h/2-120, Palette.Text)

	rowH := 60.0
	top := h/2 - 80
	for i, c := range Cars {
		y := top + float64(i)*rowH
		surf.FillRect(RoadMargin+10, y, 30, 45, c.Color)
		label := fmt.Sprintf("%d  %s", i+1, c.Name)
		surf.Text(label, RoadMargin+55, y+20, Palette.Text)
		stats := fmt.Sprintf("top %.0f  accel %.1f", c.MaxSpeed, c.Acceleration)
		surf.Text(stats, RoadMargin+55, y+40, Palette.Hint)
	}

	centerText(surf, "Arrows steer, up to throttle", h-70, Palette.Hint)
	centerText(surf, "Press 1-3 to start", h-40, Palette.Text)
}

// gameOverDim darkens the road behind the game-over panel.
const gameOverDim = 128

// RenderGameOver draws the final score panel over a dimmed road.
func RenderGameOver(surf Surface, score int) {
	w, h := surfaceSize(surf)
	surf.Clear(Palette.Background)
	surf.FillRect(RoadMargin, 0, w-2*RoadMargin, h, Palette.Road.Dim(gameOverDim))
	surf.FillRect(w/2-150, h/2-90, 300, 170, Palette.Panel)

	centerText(surf, "GAME OVER", h/2-40, Palette.Alert)
	centerText(surf, fmt.Sprintf("Score: %d", score), h/2, Palette.Text)
	centerText(surf, "Press R to restart", h/2+50, Palette.Hint)
}
