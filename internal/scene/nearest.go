package scene

import (
	"sns/internal/shape"
)

// InCanvas reports whether p lies strictly inside the logical canvas.
func InCanvas(p shape.Point) bool {
	return p.X > 0 && p.X < CanvasSize && p.Y > 0 && p.Y < CanvasSize
}

// Nearest returns the control point closest to p by squared Euclidean distance.
// Ties go to the point that comes first in s.Points; this follows build order
// and carries no other meaning. Points outside the canvas match nothing.
func (s *Scene) Nearest(p shape.Point) (ControlPoint, bool) {
	i, ok := s.NearestIndex(p)
	if !ok {
		return nil, false
	}
	return s.Points[i], true
}

// NearestIndex is Nearest returning the position in s.Points.
func (s *Scene) NearestIndex(p shape.Point) (int, bool) {
	if s == nil || len(s.Points) == 0 || !InCanvas(p) {
		return -1, false
	}
	best := -1
	var bestDist int64
	for i, cp := range s.Points {
		d := dist2(p, cp.Pos())
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, true
}

func dist2(a, b shape.Point) int64 {
	dx := int64(a.X) - int64(b.X)
	dy := int64(a.Y) - int64(b.Y)
	return dx*dx + dy*dy
}
