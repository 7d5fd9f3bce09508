package desktop

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var windowHints = [][2]int{
	{int(glfw.ContextVersionMajor), 4},
	{int(glfw.ContextVersionMinor), 1},
	{int(glfw.OpenGLProfile), glfw.OpenGLCoreProfile},
	{int(glfw.OpenGLForwardCompatible), glfw.True},
	{int(glfw.Resizable), glfw.False},
	{int(glfw.Visible), glfw.False},
}

// openWindow creates a fixed-size GL 4.1 core window centred on the
// primary monitor. glfw must already be initialised.
func openWindow(title string, width, height int) (*glfw.Window, error) {
	for _, h := range windowHints {
		glfw.WindowHint(glfw.Hint(h[0]), h[1])
	}
	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window %dx%d: %w", width, height, err)
	}
	if mon := glfw.GetPrimaryMonitor(); mon != nil {
		if mode := mon.GetVideoMode(); mode != nil {
			win.SetPos((mode.Width-width)/2, (mode.Height-height)/2)
		}
	}
	win.Show()
	win.MakeContextCurrent()
	glfw.SwapInterval(1)
	return win, nil
}
