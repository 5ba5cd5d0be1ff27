package render

import (
	"golang.org/x/exp/constraints"
)

func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)

	return n
}

// Rect is a surface rectangle in host input coordinates
// (origin top-left, y down).
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
