package gfx

// Observer receives notifications about manager state changes and
// completed frames. All callbacks run synchronously on the frame driver's
// goroutine.
type Observer interface {
	OnGraphicAdded(layer int, g Graphic, id uint64)
	OnGraphicRemoved(layer int, g Graphic, id uint64)
	OnFrameDrawn(drawn []Rect)
}
