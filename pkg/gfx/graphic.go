package gfx

import (
	"github.com/kjkrol/gokg/geom"

	"github.com/kjkrol/gokd/internal/platform"
)

// Graphic is a drawable object managed by the compositor. The compositor
// borrows graphics for the duration of one frame; it never takes
// ownership. Implementations report the screen area they cover, the
// regions they want repainted and whether they are fully opaque over a
// given rectangle, and render themselves on demand.
//
// WasVisible and LastBounds describe the previous frame and are owned by
// the compositor: WasVisible is rewritten on every frame, LastBounds is
// expected to be refreshed by the graphic when it draws.
type Graphic interface {
	Visible() bool
	WasVisible() bool
	SetWasVisible(bool)
	Bounds() Rect
	LastBounds() Rect
	Dirty() []Rect
	SetDirty([]Rect)
	OpaqueIn(Rect) bool
	Draw(dst platform.Surface, rects []Rect)
}

// Base carries the bookkeeping half of the Graphic contract: bounds,
// visibility, the dirty list and an identity. Concrete graphics embed it
// and add OpaqueIn and Draw.
type Base struct {
	id         uint64
	bounds     Rect
	lastBounds Rect
	visible    bool
	wasVisible bool
	dirty      []Rect
}

// NewBase creates graphic state covering bounds, visible, with the full
// bounds marked dirty so the first frame paints it.
func NewBase(bounds Rect) Base {
	return Base{
		id:         NextGraphicID(),
		bounds:     bounds,
		lastBounds: bounds,
		visible:    true,
		dirty:      []Rect{bounds},
	}
}

func (b *Base) ID() uint64 {
	return b.id
}

func (b *Base) Visible() bool {
	return b.visible
}

func (b *Base) WasVisible() bool {
	return b.wasVisible
}

func (b *Base) SetWasVisible(v bool) {
	b.wasVisible = v
}

func (b *Base) Bounds() Rect {
	return b.bounds
}

func (b *Base) LastBounds() Rect {
	return b.lastBounds
}

func (b *Base) Dirty() []Rect {
	return b.dirty
}

func (b *Base) SetDirty(rects []Rect) {
	b.dirty = rects
}

// MarkDirty flags rects for repaint; with no arguments the whole current
// bounds are flagged.
func (b *Base) MarkDirty(rects ...Rect) {
	if len(rects) == 0 {
		b.dirty = append(b.dirty, b.bounds)
		return
	}
	b.dirty = append(b.dirty, rects...)
}

// SetBounds moves or resizes the graphic, flagging both the old and the
// new area for repaint.
func (b *Base) SetBounds(bounds Rect) {
	if bounds == b.bounds {
		return
	}
	b.dirty = append(b.dirty, b.bounds, bounds)
	b.bounds = bounds
}

// MoveBy shifts the graphic by the given vector.
func (b *Base) MoveBy(v geom.Vec[int]) {
	b.SetBounds(b.bounds.Translate(v))
}

// Show makes the graphic visible and flags it for repaint.
func (b *Base) Show() {
	if b.visible {
		return
	}
	b.visible = true
	b.MarkDirty()
}

// Hide removes the graphic from view; the area it covered is flagged so
// the content behind it gets repainted.
func (b *Base) Hide() {
	if !b.visible {
		return
	}
	b.visible = false
	b.MarkDirty()
}

// markDrawn records that the current bounds have reached the screen.
// Concrete Draw implementations call this after blitting.
func (b *Base) markDrawn() {
	b.lastBounds = b.bounds
}
