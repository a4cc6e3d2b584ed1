package gfx

import (
	"fmt"

	"github.com/kjkrol/gokd/internal/platform"
)

// Redraw runs one compositing frame: it collects the dirty rectangles
// reported by every graphic, culls regions hidden behind opaque graphics
// in layers closer to the viewer, repaints the remaining regions
// back-to-front and returns the rectangles that changed on dst.
//
// layers must be sorted ascending; lower layer = closer to the viewer,
// drawn last. graphics must have an entry for every id in layers, or
// Redraw fails before touching any graphic. dirty seeds the frame's
// dirty list with caller-forced regions; Redraw takes ownership of the
// slice.
//
// When nothing is dirty, Redraw returns drew == false and no graphic is
// drawn. drew == true with an empty drawn list means a frame ran but no
// pixels changed; the two cases are distinct.
func Redraw(layers []int, dst platform.Surface, graphics map[int][]Graphic, dirty []Rect) (drawn []Rect, drew bool, err error) {
	// Resolve every layer before mutating anything, so a bad mapping
	// aborts the frame with no partial state.
	ordered := make([][]Graphic, len(layers))
	for i, layer := range layers {
		gs, ok := graphics[layer]
		if !ok {
			return nil, false, fmt.Errorf("gfx: no graphics for layer %d", layer)
		}
		ordered[i] = gs
	}

	dirty = collectDirty(ordered, dirty)
	if len(dirty) == 0 {
		return nil, false, nil
	}

	dirtyByLayer := cullOccluded(ordered, dirty)
	compose(ordered, dst, dirtyByLayer)

	for _, rs := range dirtyByLayer {
		drawn = append(drawn, rs...)
	}
	return drawn, true, nil
}

// collectDirty appends each graphic's dirty rectangles to the frame's
// dirty list, clipped against where the graphic was last frame and where
// it is now. Both clips may contribute: a graphic that moved while
// visible needs its old and new position repainted. Every graphic's
// WasVisible is refreshed, whether or not it reported anything.
func collectDirty(ordered [][]Graphic, dirty []Rect) []Rect {
	for _, gs := range ordered {
		for _, g := range gs {
			for _, r := range g.Dirty() {
				if g.WasVisible() {
					if c := r.Clip(g.LastBounds()); c.HasArea() {
						dirty = append(dirty, c)
					}
				}
				if g.Visible() {
					if c := r.Clip(g.Bounds()); c.HasArea() {
						dirty = append(dirty, c)
					}
				}
			}
			g.SetWasVisible(g.Visible())
		}
	}
	return dirty
}

// cullOccluded computes, for each layer from the viewer outwards, the
// disjoint dirty regions the layer still has to repaint once regions
// opaquely covered by layers above it are subtracted.
//
// A dirty rectangle counts as opaque within a layer by clipping it
// through the layer's graphics one by one, requiring each graphic to be
// fully opaque over the shrinking intersection. Two graphics that only
// jointly cover a rectangle therefore do not occlude it; callers relying
// on occlusion should use single covering graphics.
func cullOccluded(ordered [][]Graphic, dirty []Rect) [][]Rect {
	dirtyByLayer := make([][]Rect, len(ordered))
	var opaqueAbove []Rect
	for i, gs := range ordered {
		var layerOpaque []Rect
		for _, r := range dirty {
			good := true
			for _, g := range gs {
				r = r.Clip(g.Bounds())
				if !r.HasArea() || !g.OpaqueIn(r) {
					good = false
					break
				}
			}
			if good {
				layerOpaque = append(layerOpaque, r)
			}
		}
		dirtyByLayer[i] = MkDisjoint(dirty, opaqueAbove)
		opaqueAbove = append(opaqueAbove, layerOpaque...)
	}
	return dirtyByLayer
}

// compose repaints back-to-front: each graphic draws the intersections of
// its bounds with its layer's dirty regions, then has its dirty list
// cleared, consumed or not.
func compose(ordered [][]Graphic, dst platform.Surface, dirtyByLayer [][]Rect) {
	for i := len(ordered) - 1; i >= 0; i-- {
		rs := dirtyByLayer[i]
		for _, g := range ordered[i] {
			var drawIn []Rect
			for _, r := range rs {
				if c := g.Bounds().Clip(r); c.HasArea() {
					drawIn = append(drawIn, c)
				}
			}
			if len(drawIn) > 0 {
				g.Draw(dst, drawIn)
			}
			g.SetDirty(nil)
		}
	}
}
