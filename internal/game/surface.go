package game

// Surface is the 2D raster target the renderer draws on, in surface units
// with the origin at the top-left. Text y is the baseline.
type Surface interface {
	Size() (w, h float64)
	Clear(c RGB)
	FillRect(x, y, w, h float64, c RGB)
	Line(x0, y0, x1, y1, width float64, c RGB)
	Text(s string, x, y float64, c RGB)
}

type DrawOp int

const (
	OpClear DrawOp = iota
	OpFillRect
	OpLine
	OpText
)

// DrawCmd is one recorded draw call.
type DrawCmd struct {
	Op         DrawOp
	X, Y, W, H float64 // FillRect: rect; Line: X,Y -> W,H endpoints; Text: X,Y
	Width      float64 // Line stroke width
	Text       string
	Color      RGB
}

// CommandList is a Surface that records draw calls instead of rasterising.
type CommandList struct {
	Width, Height float64
	Cmds          []DrawCmd
}

func NewCommandList(w, h float64) *CommandList {
	return &CommandList{Width: w, Height: h}
}

func (cl *CommandList) Size() (float64, float64) { return cl.Width, cl.Height }

func (cl *CommandList) Clear(c RGB) {
	cl.Cmds = append(cl.Cmds[:0], DrawCmd{Op: OpClear, Color: c})
}

func (cl *CommandList) FillRect(x, y, w, h float64, c RGB) {
	cl.Cmds = append(cl.Cmds, DrawCmd{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (cl *CommandList) Line(x0, y0, x1, y1, width float64, c RGB) {
	cl.Cmds = append(cl.Cmds, DrawCmd{Op: OpLine, X: x0, Y: y0, W: x1, H: y1, Width: width, Color: c})
}

func (cl *CommandList) Text(s string, x, y float64, c RGB) {
	cl.Cmds = append(cl.Cmds, DrawCmd{Op: OpText, X: x, Y: y, Text: s, Color: c})
}

// Filter returns the recorded commands of one kind.
func (cl *CommandList) Filter(op DrawOp) []DrawCmd {
	var out []DrawCmd
	for _, c := range cl.Cmds {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// surfaceSize queries s, falling back to the defaults when the host cannot
// report a usable size.
func surfaceSize(s Surface) (float64, float64) {
	w, h := s.Size()
	if !(w > 0) || !(h > 0) {
		return DefaultSurfaceWidth, DefaultSurfaceHeight
	}
	return w, h
}
