package geom

// Rect is an axis-aligned rectangle. (X, Y) is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// R is shorthand for Rect{X: x, Y: y, W: w, H: h}.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt returns a w x h rect centered on c.
func RectAt(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Pos returns the top-left corner.
func (r Rect) Pos() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Overlaps reports whether r and o share interior area.
// Rects that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// ContainsPoint reports whether p lies inside r (right/bottom edges excluded).
func (r Rect) ContainsPoint(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Inflate grows r by dw, dh keeping the center fixed.
func (r Rect) Inflate(dw, dh float64) Rect {
	return Rect{X: r.X - dw/2, Y: r.Y - dh/2, W: r.W + dw, H: r.H + dh}
}

// SetLeft moves r so that its left edge is at x.
func (r *Rect) SetLeft(x float64) { r.X = x }

// SetRight moves r so that its right edge is at x.
func (r *Rect) SetRight(x float64) { r.X = x - r.W }

// SetTop moves r so that its top edge is at y.
func (r *Rect) SetTop(y float64) { r.Y = y }

// SetBottom moves r so that its bottom edge is at y.
func (r *Rect) SetBottom(y float64) { r.Y = y - r.H }

// SetCenter moves r so that its center is at c.
func (r *Rect) SetCenter(c Vec2) {
	r.X = c.X - r.W/2
	r.Y = c.Y - r.H/2
}
