package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadrush/internal/game"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return screen
}

func cellAt(screen tcell.Screen, col, row int) (rune, tcell.Color, tcell.Color) {
	r, _, style, _ := screen.GetContent(col, row)
	fg, bg, _ := style.Decompose()
	return r, fg, bg
}

func rgb(c game.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func TestCellSurface_ScalesRects(t *testing.T) {
	screen := newScreen(t, 80, 24)
	cs := NewCellSurface(screen, 400, 600)

	w, h := cs.Size()
	assert.Equal(t, 400.0, w)
	assert.Equal(t, 600.0, h)

	cs.Clear(game.Palette.Background)
	cs.FillRect(100, 0, 200, 600, game.Palette.Road)

	// x 100..300 of 400 maps to columns 20..59.
	_, _, bg := cellAt(screen, 19, 5)
	assert.Equal(t, rgb(game.Palette.Background), bg)
	_, _, bg = cellAt(screen, 20, 5)
	assert.Equal(t, rgb(game.Palette.Road), bg)
	_, _, bg = cellAt(screen, 59, 23)
	assert.Equal(t, rgb(game.Palette.Road), bg)
	_, _, bg = cellAt(screen, 60, 5)
	assert.Equal(t, rgb(game.Palette.Background), bg)
}

func TestCellSurface_SmallRectCoversACell(t *testing.T) {
	screen := newScreen(t, 40, 10)
	cs := NewCellSurface(screen, 400, 600)
	cs.Clear(game.Palette.Background)

	cs.FillRect(200, 300, 2, 2, game.Palette.Obstacle)
	_, _, bg := cellAt(screen, 20, 5)
	assert.Equal(t, rgb(game.Palette.Obstacle), bg)
}

func TestCellSurface_ClipsOffscreen(t *testing.T) {
	screen := newScreen(t, 40, 10)
	cs := NewCellSurface(screen, 400, 600)
	assert.NotPanics(t, func() {
		cs.FillRect(-100, -100, 50, 50, game.Palette.Obstacle)
		cs.FillRect(390, 590, 100, 100, game.Palette.Obstacle)
		cs.Line(200, -500, 200, 900, 5, game.Palette.Dash)
		cs.Text("far away", 1000, 1000, game.Palette.Text)
		cs.Text("left", -20, 30, game.Palette.Text)
	})
}

func TestCellSurface_TextKeepsBackground(t *testing.T) {
	screen := newScreen(t, 80, 24)
	cs := NewCellSurface(screen, 400, 600)
	cs.Clear(game.Palette.Background)
	cs.FillRect(0, 0, 400, 100, game.Palette.Panel)

	cs.Text("Score: 40", 10, 30, game.Palette.Text)

	r, fg, bg := cellAt(screen, 2, 1)
	assert.Equal(t, 'S', r)
	assert.Equal(t, rgb(game.Palette.Text), fg)
	assert.Equal(t, rgb(game.Palette.Panel), bg)
	r, _, _ = cellAt(screen, 9, 1)
	assert.Equal(t, '4', r)
}

func TestCellSurface_VerticalDash(t *testing.T) {
	screen := newScreen(t, 80, 24)
	cs := NewCellSurface(screen, 400, 600)
	cs.Clear(game.Palette.Road)

	cs.Line(200, 0, 200, 50, game.DashWidth, game.Palette.Dash)

	_, _, bg := cellAt(screen, 40, 0)
	assert.Equal(t, rgb(game.Palette.Dash), bg)
	_, _, bg = cellAt(screen, 40, 1)
	assert.Equal(t, rgb(game.Palette.Dash), bg)
	_, _, bg = cellAt(screen, 40, 2)
	assert.Equal(t, rgb(game.Palette.Road), bg)
	_, _, bg = cellAt(screen, 39, 0)
	assert.Equal(t, rgb(game.Palette.Road), bg)
}

func TestCellSurface_TextWidthAndMapping(t *testing.T) {
	screen := newScreen(t, 80, 24)
	cs := NewCellSurface(screen, 400, 600)

	assert.Equal(t, 25.0, cs.TextWidth("abcde"))
	assert.Equal(t, 25.0, game.TextWidth(cs, "abcde"))

	x, y := cs.ToSurface(40, 12)
	assert.InDelta(t, 202.5, x, 1e-9)
	assert.InDelta(t, 312.5, y, 1e-9)
}

func TestCellSurface_RendersGame(t *testing.T) {
	screen := newScreen(t, 80, 24)
	cs := NewCellSurface(screen, 400, 600)
	s := game.NewGameState(400, 600)
	s.Start(game.Cars[0])

	game.Render(cs, s)

	// Player at x 175..225, y 500..580 lands on columns 35..44, rows 20..22.
	_, _, bg := cellAt(screen, 36, 21)
	assert.Equal(t, rgb(game.Cars[0].Color), bg)
	r, _, _ := cellAt(screen, 2, 1)
	assert.Equal(t, 'S', r)
}
