package gfx

import (
	"sort"
	"sync"

	"github.com/kjkrol/gokd/internal/platform"
)

// Manager owns the layered graphics set and drives Redraw against a
// surface. Layers are plain ints; lower layers are closer to the viewer
// and drawn last. A layer exists while it holds at least one graphic.
//
// Manager serialises frames with its own mutex, but the graphics it
// holds are not synchronised: mutate them only from the goroutine that
// calls Draw.
type Manager struct {
	mu       sync.Mutex
	surface  platform.Surface
	graphics map[int][]Graphic
	layers   []int
	forced   []Rect
	observer Observer
}

// NewManager creates a manager drawing to surface. surface may be nil;
// Draw is a no-op until one is set.
func NewManager(surface platform.Surface) *Manager {
	return &Manager{
		surface:  surface,
		graphics: make(map[int][]Graphic),
	}
}

func (m *Manager) Surface() platform.Surface {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.surface
}

// SetSurface swaps the draw target and forces a full repaint onto it.
func (m *Manager) SetSurface(surface platform.Surface) {
	m.mu.Lock()
	m.surface = surface
	if surface != nil {
		m.forced = append(m.forced, RectFromImage(surface.Bounds()))
	}
	m.mu.Unlock()
}

// Add inserts graphics into the given layer, keeping insertion order
// within the layer. Graphics already present are not duplicated. The
// graphic's previous-frame state is reset so the first frame after adding
// does not repaint wherever the graphic happened to be before.
func (m *Manager) Add(layer int, gs ...Graphic) {
	m.mu.Lock()
	cur, existed := m.graphics[layer]
	for _, g := range gs {
		if g == nil || containsGraphic(cur, g) {
			continue
		}
		g.SetWasVisible(false)
		cur = append(cur, g)
		if m.observer != nil {
			m.observer.OnGraphicAdded(layer, g, graphicID(g))
		}
	}
	m.graphics[layer] = cur
	if !existed && len(cur) > 0 {
		m.layers = append(m.layers, layer)
		sort.Ints(m.layers)
	}
	m.mu.Unlock()
}

// Remove takes graphics out of the given layer. Unknown graphics are
// ignored; the layer disappears when its last graphic goes. The area a
// removed graphic occupied on screen is forced dirty so whatever is
// behind it gets repainted.
func (m *Manager) Remove(layer int, gs ...Graphic) {
	m.mu.Lock()
	cur := m.graphics[layer]
	for _, g := range gs {
		for i, existing := range cur {
			if existing == g {
				cur = append(cur[:i], cur[i+1:]...)
				if g.WasVisible() {
					m.forced = append(m.forced, g.LastBounds())
				}
				if m.observer != nil {
					m.observer.OnGraphicRemoved(layer, g, graphicID(g))
				}
				break
			}
		}
	}
	if len(cur) == 0 {
		delete(m.graphics, layer)
		for i, l := range m.layers {
			if l == layer {
				m.layers = append(m.layers[:i], m.layers[i+1:]...)
				break
			}
		}
	} else {
		m.graphics[layer] = cur
	}
	m.mu.Unlock()
}

// Layers returns the populated layer ids, sorted ascending (front first).
func (m *Manager) Layers() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]int, len(m.layers))
	copy(out, m.layers)
	return out
}

// Graphics returns the graphics of one layer in draw order.
func (m *Manager) Graphics(layer int) []Graphic {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Graphic, len(m.graphics[layer]))
	copy(out, m.graphics[layer])
	return out
}

// Dirty forces a repaint of the given regions on the next Draw. With no
// arguments the whole surface is repainted.
func (m *Manager) Dirty(rects ...Rect) {
	m.mu.Lock()
	if len(rects) == 0 {
		if m.surface != nil {
			m.forced = append(m.forced, RectFromImage(m.surface.Bounds()))
		}
	} else {
		m.forced = append(m.forced, rects...)
	}
	m.mu.Unlock()
}

// SetObserver installs the manager's observer; pass nil to remove it.
func (m *Manager) SetObserver(o Observer) {
	m.mu.Lock()
	m.observer = o
	m.mu.Unlock()
}

// Draw runs one frame. It returns the rectangles that changed on the
// surface and whether any drawing happened. Without a surface or any
// populated layer nothing runs and forced dirty regions are kept for a
// later frame.
func (m *Manager) Draw() ([]Rect, bool, error) {
	m.mu.Lock()
	surface := m.surface
	if surface == nil || len(m.layers) == 0 {
		m.mu.Unlock()
		return nil, false, nil
	}
	layers := make([]int, len(m.layers))
	copy(layers, m.layers)
	graphics := make(map[int][]Graphic, len(m.graphics))
	for layer, gs := range m.graphics {
		graphics[layer] = gs
	}
	dirty := m.forced
	m.forced = nil
	observer := m.observer
	m.mu.Unlock()

	drawn, drew, err := Redraw(layers, surface, graphics, dirty)
	if err != nil {
		return nil, false, err
	}
	if drew {
		Logger().Debug("frame drawn", "layers", len(layers), "rects", len(drawn))
		if observer != nil {
			observer.OnFrameDrawn(drawn)
		}
	}
	return drawn, drew, nil
}

func containsGraphic(gs []Graphic, g Graphic) bool {
	for _, existing := range gs {
		if existing == g {
			return true
		}
	}
	return false
}

func graphicID(g Graphic) uint64 {
	if ident, ok := g.(interface{ ID() uint64 }); ok {
		return ident.ID()
	}
	return 0
}
