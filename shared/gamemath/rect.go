package gamemath

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// Add returns v+o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect is an axis-aligned bounding box anchored at its top-left corner.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// NewRect builds a Rect from its top-left corner and size.
func NewRect(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

func (r Rect) Right() float64  { return r.Left + r.Width }
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Center returns the midpoint of the rect.
func (r Rect) Center() Vector {
	return Vector{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// SetRight moves the rect so its right edge sits at x.
func (r *Rect) SetRight(x float64) { r.Left = x - r.Width }

// SetBottom moves the rect so its bottom edge sits at y.
func (r *Rect) SetBottom(y float64) { r.Top = y - r.Height }

// SetCenter moves the rect so its midpoint sits at c.
func (r *Rect) SetCenter(c Vector) {
	r.Left = c.X - r.Width/2
	r.Top = c.Y - r.Height/2
}

// Translate moves the rect by v.
func (r *Rect) Translate(v Vector) {
	r.Left += v.X
	r.Top += v.Y
}

// Intersects reports whether r and o share interior area. Rects that only
// touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Left < o.Right() &&
		o.Left < r.Right() &&
		r.Top < o.Bottom() &&
		o.Top < r.Bottom()
}

// SpansTouch reports whether the horizontal spans of r and o overlap or meet.
func (r Rect) SpansTouch(o Rect) bool {
	return o.Left <= r.Right() && r.Left <= o.Right()
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.Left >= r.Left && o.Right() <= r.Right() &&
		o.Top >= r.Top && o.Bottom() <= r.Bottom()
}
