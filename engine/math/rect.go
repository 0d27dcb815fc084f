package math

/**
 * @brief An axis-aligned rectangle: top-left corner plus width and height.
 */
type Rect struct {
	X, Y, W, H float64
}

func NewRect(x, y, w, h float64) *Rect {
	return &Rect{X: x, Y: y, W: w, H: h}
}

func (r *Rect) Center() *Vec2 {
	return NewVec2(r.X+r.W*0.5, r.Y+r.H*0.5)
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r *Rect) Contains(p *Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
