package gfx

import (
	"fmt"
	"image"

	"github.com/kjkrol/gokg/geom"
)

// Rect is an axis-aligned screen rectangle. W and H may be zero or
// negative, which means the rectangle covers nothing; such rectangles are
// skipped everywhere in the pipeline rather than treated as errors.
type Rect struct {
	X, Y, W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromImage converts a stdlib image.Rectangle.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}

// RectFromAABB converts a gokg box, treating BottomRight as exclusive.
func RectFromAABB(b geom.AABB[int]) Rect {
	return Rect{
		X: b.TopLeft.X,
		Y: b.TopLeft.Y,
		W: b.BottomRight.X - b.TopLeft.X,
		H: b.BottomRight.Y - b.TopLeft.Y,
	}
}

// HasArea reports whether the rectangle covers at least one pixel.
func (r Rect) HasArea() bool {
	return r.W > 0 && r.H > 0
}

func (r Rect) Right() int {
	return r.X + r.W
}

func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clip returns the intersection of r and o. When they do not overlap with
// positive area the result keeps r's position with W and H clamped to 0.
func (r Rect) Clip(o Rect) Rect {
	x0 := r.X
	if o.X > x0 {
		x0 = o.X
	}
	y0 := r.Y
	if o.Y > y0 {
		y0 = o.Y
	}
	x1 := r.Right()
	if o.Right() < x1 {
		x1 = o.Right()
	}
	y1 := r.Bottom()
	if o.Bottom() < y1 {
		y1 = o.Bottom()
	}
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Translate returns r moved by the given vector.
func (r Rect) Translate(v geom.Vec[int]) Rect {
	return Rect{X: r.X + v.X, Y: r.Y + v.Y, W: r.W, H: r.H}
}

// Image converts to a stdlib image.Rectangle. Degenerate rectangles
// convert to an empty image.Rectangle at the same position.
func (r Rect) Image() image.Rectangle {
	if !r.HasArea() {
		return image.Rectangle{Min: image.Pt(r.X, r.Y), Max: image.Pt(r.X, r.Y)}
	}
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

// AABB converts to a gokg box with an exclusive BottomRight.
func (r Rect) AABB() geom.AABB[int] {
	return geom.NewAABB(geom.NewVec(r.X, r.Y), geom.NewVec(r.Right(), r.Bottom()))
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%d, %d, %d, %d)", r.X, r.Y, r.W, r.H)
}
