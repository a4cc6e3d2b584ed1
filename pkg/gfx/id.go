package gfx

import "sync/atomic"

var graphicIDSeq uint64

// NextGraphicID returns a globally unique graphic ID.
func NextGraphicID() uint64 {
	return atomic.AddUint64(&graphicIDSeq, 1)
}
