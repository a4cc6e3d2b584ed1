package gfx

import (
	"testing"

	"github.com/kjkrol/gokd/internal/platform"
)

// fakeGraphic records the rect lists it is asked to draw.
type fakeGraphic struct {
	Base
	opaque    bool
	drawCalls [][]Rect
}

func newFakeGraphic(bounds Rect, opaque bool) *fakeGraphic {
	g := &fakeGraphic{Base: NewBase(bounds), opaque: opaque}
	g.SetDirty(nil)
	return g
}

func (g *fakeGraphic) OpaqueIn(Rect) bool {
	return g.opaque
}

func (g *fakeGraphic) Draw(dst platform.Surface, rects []Rect) {
	g.drawCalls = append(g.drawCalls, append([]Rect(nil), rects...))
	g.markDrawn()
}

func testSurface() platform.Surface {
	return platform.NewRGBASurface(200, 200)
}

func TestRedrawFastPathNoDirty(t *testing.T) {
	g := newFakeGraphic(NewRect(0, 0, 50, 50), true)
	drawn, drew, err := Redraw([]int{0}, testSurface(), map[int][]Graphic{0: {g}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if drew {
		t.Error("nothing dirty: drew should be false")
	}
	if len(drawn) != 0 {
		t.Errorf("nothing dirty: drawn = %v", drawn)
	}
	if len(g.drawCalls) != 0 {
		t.Errorf("Draw must not be invoked on the fast path, got %d calls", len(g.drawCalls))
	}
	// Visibility bookkeeping still runs before the fast path exits.
	if !g.WasVisible() {
		t.Error("WasVisible must be refreshed even when no frame runs")
	}
}

func TestRedrawMissingLayerMapping(t *testing.T) {
	g := newFakeGraphic(NewRect(0, 0, 50, 50), true)
	g.MarkDirty()
	_, _, err := Redraw([]int{0, 1}, testSurface(), map[int][]Graphic{0: {g}}, nil)
	if err == nil {
		t.Fatal("missing layer mapping must fail")
	}
	if g.WasVisible() {
		t.Error("failed frame must not have mutated graphic state")
	}
	if len(g.Dirty()) == 0 {
		t.Error("failed frame must not have consumed the dirty list")
	}
}

// A newly appeared graphic contributes exactly one rect, clipped against
// its current bounds, and comes out of the frame with WasVisible set.
func TestRedrawAppearedGraphic(t *testing.T) {
	g := newFakeGraphic(NewRect(0, 0, 10, 10), false)
	g.SetDirty([]Rect{NewRect(0, 0, 10, 10)})
	if g.WasVisible() {
		t.Fatal("precondition: graphic was not visible last frame")
	}

	drawn, drew, err := Redraw([]int{0}, testSurface(), map[int][]Graphic{0: {g}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !drew {
		t.Fatal("expected a frame to run")
	}
	want := []Rect{NewRect(0, 0, 10, 10)}
	if len(drawn) != 1 || drawn[0] != want[0] {
		t.Errorf("drawn = %v, want %v", drawn, want)
	}
	if len(g.drawCalls) != 1 {
		t.Fatalf("draw calls = %d, want 1", len(g.drawCalls))
	}
	if !g.WasVisible() {
		t.Error("WasVisible must equal the visibility observed this frame")
	}
	if len(g.Dirty()) != 0 {
		t.Error("dirty list must be cleared after the frame")
	}
}

// A graphic that moved while visible contributes its dirty rect clipped
// against both the old and the new bounds.
func TestRedrawMovedGraphicBothClips(t *testing.T) {
	g := newFakeGraphic(NewRect(0, 0, 10, 10), false)
	g.SetWasVisible(true)
	g.SetBounds(NewRect(20, 0, 10, 10))
	g.SetDirty([]Rect{NewRect(0, 0, 30, 10)})

	drawn, drew, err := Redraw([]int{0}, testSurface(), map[int][]Graphic{0: {g}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !drew {
		t.Fatal("expected a frame to run")
	}
	checkDisjoint(t, drawn)
	if area := totalRectArea(drawn); area != 200 {
		t.Errorf("drawn area = %d, want 200 (old plus new position)", area)
	}
	// Only the new position intersects the graphic's current bounds.
	if len(g.drawCalls) != 1 || len(g.drawCalls[0]) != 1 || g.drawCalls[0][0] != NewRect(20, 0, 10, 10) {
		t.Errorf("draw calls = %v", g.drawCalls)
	}
}

// The topmost layer holds an opaque graphic covering the
// dirty area, so the layer below it has nothing left to repaint.
func TestRedrawOcclusion(t *testing.T) {
	top := newFakeGraphic(NewRect(0, 0, 100, 100), true)
	bottom := newFakeGraphic(NewRect(0, 0, 50, 50), false)
	bottom.SetDirty([]Rect{NewRect(10, 10, 5, 5)})

	drawn, drew, err := Redraw(
		[]int{0, 1},
		testSurface(),
		map[int][]Graphic{0: {top}, 1: {bottom}},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	if !drew {
		t.Fatal("expected a frame to run")
	}
	if len(drawn) != 1 || drawn[0] != NewRect(10, 10, 5, 5) {
		t.Errorf("drawn = %v, want the dirty rect once", drawn)
	}
	if len(top.drawCalls) != 1 {
		t.Errorf("top layer must repaint the dirty rect, calls = %v", top.drawCalls)
	}
	if len(bottom.drawCalls) != 0 {
		t.Errorf("occluded layer must not draw, calls = %v", bottom.drawCalls)
	}
}

// With the layer order reversed the occlusion relationship flips: the
// non-opaque layer sits on top and both layers repaint.
func TestRedrawOcclusionOrderReversed(t *testing.T) {
	opaque := newFakeGraphic(NewRect(0, 0, 100, 100), true)
	clear := newFakeGraphic(NewRect(0, 0, 50, 50), false)
	clear.SetDirty([]Rect{NewRect(10, 10, 5, 5)})

	_, drew, err := Redraw(
		[]int{0, 1},
		testSurface(),
		map[int][]Graphic{0: {clear}, 1: {opaque}},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	if !drew {
		t.Fatal("expected a frame to run")
	}
	if len(clear.drawCalls) != 1 {
		t.Errorf("top (clear) layer should draw, calls = %v", clear.drawCalls)
	}
	if len(opaque.drawCalls) != 1 {
		t.Errorf("bottom (opaque) layer should draw, calls = %v", opaque.drawCalls)
	}
}

// Two opaque graphics that only jointly cover a dirty rect do not occlude
// it: the opacity chain clips through each graphic in turn and gives up
// when the running intersection leaves a graphic's bounds. Pinned so a
// rewrite of the chain does not silently change it.
func TestRedrawJointCoverageDoesNotOcclude(t *testing.T) {
	left := newFakeGraphic(NewRect(0, 0, 5, 10), true)
	right := newFakeGraphic(NewRect(5, 0, 5, 10), true)
	bottom := newFakeGraphic(NewRect(0, 0, 10, 10), false)
	bottom.SetDirty([]Rect{NewRect(0, 0, 10, 10)})

	_, _, err := Redraw(
		[]int{0, 1},
		testSurface(),
		map[int][]Graphic{0: {left, right}, 1: {bottom}},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	if len(bottom.drawCalls) != 1 {
		t.Fatalf("joint coverage must not occlude the layer below, calls = %v", bottom.drawCalls)
	}
	if area := totalRectArea(bottom.drawCalls[0]); area != 100 {
		t.Errorf("bottom should repaint its full dirty area, got %d", area)
	}
}

// A layer with no graphics leaves every dirty rect untouched by the
// opacity chain, which counts the whole rect as opaque cover. Pinned;
// Manager never produces an empty layer, so only direct Redraw callers
// can hit this.
func TestRedrawEmptyLayerCountsOpaque(t *testing.T) {
	bottom := newFakeGraphic(NewRect(0, 0, 10, 10), false)
	bottom.SetDirty([]Rect{NewRect(0, 0, 10, 10)})

	_, drew, err := Redraw(
		[]int{0, 1},
		testSurface(),
		map[int][]Graphic{0: {}, 1: {bottom}},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	if !drew {
		t.Fatal("expected a frame to run")
	}
	if len(bottom.drawCalls) != 0 {
		t.Errorf("layer under an empty layer is treated as occluded, calls = %v", bottom.drawCalls)
	}
}

// A graphic that disappeared this frame repaints the area it used to
// cover, clipped against its previous bounds.
func TestRedrawDisappearedGraphic(t *testing.T) {
	g := newFakeGraphic(NewRect(30, 30, 20, 20), false)
	g.SetWasVisible(true)
	g.Hide()

	under := newFakeGraphic(NewRect(0, 0, 100, 100), false)

	drawn, drew, err := Redraw(
		[]int{0, 1},
		testSurface(),
		map[int][]Graphic{0: {g}, 1: {under}},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	if !drew {
		t.Fatal("expected a frame to run")
	}
	if area := totalRectArea(drawn); area != 2*400 {
		t.Errorf("drawn area = %d, want 800 (vacated area on both layers)", area)
	}
	if len(under.drawCalls) != 1 {
		t.Errorf("layer below must repaint the vacated area, calls = %v", under.drawCalls)
	}
	if g.WasVisible() {
		t.Error("WasVisible must now be false")
	}
}

func TestRedrawForcedDirtySeed(t *testing.T) {
	g := newFakeGraphic(NewRect(0, 0, 40, 40), false)
	drawn, drew, err := Redraw(
		[]int{0},
		testSurface(),
		map[int][]Graphic{0: {g}},
		[]Rect{NewRect(10, 10, 10, 10)},
	)
	if err != nil {
		t.Fatal(err)
	}
	if !drew {
		t.Fatal("forced dirty rect must trigger a frame")
	}
	if len(drawn) != 1 || drawn[0] != NewRect(10, 10, 10, 10) {
		t.Errorf("drawn = %v", drawn)
	}
	if len(g.drawCalls) != 1 || g.drawCalls[0][0] != NewRect(10, 10, 10, 10) {
		t.Errorf("draw calls = %v", g.drawCalls)
	}
}
