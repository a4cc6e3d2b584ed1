package gfx

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/kjkrol/gokd/internal/platform"
)

// Image blits a source image at the graphic's bounds. When the bounds
// size differs from the source size the source is scaled with
// nearest-neighbour interpolation.
type Image struct {
	Base
	src    image.Image
	opaque bool
}

// NewImage creates an image graphic drawing src with its top-left corner
// at (x, y), at the source's natural size.
func NewImage(src image.Image, x, y int) *Image {
	b := src.Bounds()
	return newImage(src, NewRect(x, y, b.Dx(), b.Dy()))
}

// NewImageScaled creates an image graphic stretching src over bounds.
func NewImageScaled(src image.Image, bounds Rect) *Image {
	return newImage(src, bounds)
}

func newImage(src image.Image, bounds Rect) *Image {
	opaque := false
	if o, ok := src.(interface{ Opaque() bool }); ok {
		opaque = o.Opaque()
	}
	return &Image{
		Base:   NewBase(bounds),
		src:    src,
		opaque: opaque,
	}
}

func (g *Image) Source() image.Image {
	return g.src
}

// SetSource swaps the source image, keeping the bounds, and flags the
// graphic for repaint.
func (g *Image) SetSource(src image.Image) {
	g.src = src
	g.opaque = false
	if o, ok := src.(interface{ Opaque() bool }); ok {
		g.opaque = o.Opaque()
	}
	g.MarkDirty()
}

// OpaqueIn reports whether every pixel the graphic draws is fully opaque.
// The answer comes from the source image as a whole, so it holds for any
// sub-rectangle of the bounds. A hidden graphic covers nothing.
func (g *Image) OpaqueIn(Rect) bool {
	return g.opaque && g.Visible()
}

func (g *Image) Draw(dst platform.Surface, rects []Rect) {
	if !g.Visible() {
		g.markDrawn()
		return
	}
	bounds := g.Bounds()
	sb := g.src.Bounds()
	scaled := bounds.W != sb.Dx() || bounds.H != sb.Dy()
	for _, r := range rects {
		if !scaled {
			sp := image.Pt(sb.Min.X+r.X-bounds.X, sb.Min.Y+r.Y-bounds.Y)
			platform.Blit(dst, r.Image(), g.src, sp)
			continue
		}
		xdraw.NearestNeighbor.Scale(dst.RGBA(), r.Image(), g.src, g.sourceRegion(r), xdraw.Over, nil)
	}
	g.markDrawn()
}

// sourceRegion maps a sub-rectangle of the on-screen bounds back onto the
// corresponding region of the source image.
func (g *Image) sourceRegion(r Rect) image.Rectangle {
	bounds := g.Bounds()
	sb := g.src.Bounds()
	x0 := sb.Min.X + (r.X-bounds.X)*sb.Dx()/bounds.W
	y0 := sb.Min.Y + (r.Y-bounds.Y)*sb.Dy()/bounds.H
	x1 := sb.Min.X + ((r.Right()-bounds.X)*sb.Dx()+bounds.W-1)/bounds.W
	y1 := sb.Min.Y + ((r.Bottom()-bounds.Y)*sb.Dy()+bounds.H-1)/bounds.H
	return image.Rect(x0, y0, x1, y1)
}
