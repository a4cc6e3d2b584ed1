package gfx

import (
	"image"
	"image/color"

	"github.com/kjkrol/gokd/internal/platform"
)

// Colour is a solid rectangle of a single colour.
type Colour struct {
	Base
	colour color.Color
	opaque bool
}

// NewColour creates a colour graphic covering bounds.
func NewColour(c color.Color, bounds Rect) *Colour {
	_, _, _, a := c.RGBA()
	return &Colour{
		Base:   NewBase(bounds),
		colour: c,
		opaque: a == 0xffff,
	}
}

func (c *Colour) Colour() color.Color {
	return c.colour
}

// SetColour changes the colour and flags the graphic for repaint.
func (c *Colour) SetColour(col color.Color) {
	_, _, _, a := col.RGBA()
	c.colour = col
	c.opaque = a == 0xffff
	c.MarkDirty()
}

// OpaqueIn reports full coverage whenever the colour has full alpha; the
// fill is uniform, so the queried rectangle does not matter. A hidden
// graphic covers nothing.
func (c *Colour) OpaqueIn(Rect) bool {
	return c.opaque && c.Visible()
}

func (c *Colour) Draw(dst platform.Surface, rects []Rect) {
	if c.Visible() {
		if c.opaque {
			for _, r := range rects {
				platform.Fill(dst, r.Image(), c.colour)
			}
		} else {
			src := image.NewUniform(c.colour)
			for _, r := range rects {
				platform.Blit(dst, r.Image(), src, image.Point{})
			}
		}
	}
	c.markDrawn()
}
