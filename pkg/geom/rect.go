// pkg/geom/rect.go
package geom

// Rect — осевой прямоугольник в координатах игрового поля (Y растёт вниз).
type Rect struct {
	X, Y, W, H float64
}

// Collides reports whether two boxes overlap. Touching edges do not count.
func (r Rect) Collides(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// CenterX возвращает горизонтальный центр.
func (r Rect) CenterX() float64 {
	return r.X + r.W*0.5
}

// Bottom возвращает нижнюю границу.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Right возвращает правую границу.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
