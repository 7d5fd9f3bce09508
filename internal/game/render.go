package game

import (
	"fmt"
	"math"
)

// Render paints the running simulation: road, cars, hazards and HUD.
// It only reads s.
func Render(surf Surface, s *GameState) {
	w, h := surfaceSize(surf)
	surf.Clear(Palette.Background)

	// Road band and the scrolling centre line.
	surf.FillRect(RoadMargin, 0, w-2*RoadMargin, h, Palette.Road)
	cx := w / 2
	for y := -s.Run.RoadOffset; y < h; y += DashPeriod {
		surf.Line(cx, y, cx, y+DashLength, DashWidth, Palette.Dash)
	}

	p := &s.Player
	surf.FillRect(p.X, p.Y, p.Width, p.Height, s.Profile.Color)

	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		surf.FillRect(o.X, o.Y, o.Width, o.Height, Palette.Obstacle)
	}
	for i := range s.Opponents {
		o := &s.Opponents[i]
		surf.FillRect(o.X, o.Y, o.Width, o.Height, Palette.Opponent)
	}

	surf.Text(fmt.Sprintf("Score: %d", s.Run.Score), HUDTextX, HUDScoreY, Palette.Text)
	surf.Text(fmt.Sprintf("Speed: %d", int(math.Floor(p.Speed))), HUDTextX, HUDSpeedY, Palette.Text)
}
