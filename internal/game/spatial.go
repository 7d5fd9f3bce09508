package game

// Rect is an axis-aligned rectangle in surface units, origin at the top-left.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports strict overlap on both axes; touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && r.X+r.Width > o.X && r.Y < o.Y+o.Height && r.Y+r.Height > o.Y
}
