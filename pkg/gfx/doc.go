// Package gfx composites layered graphics onto a surface, repainting only
// the regions that changed since the previous frame.
//
// Each frame, graphics report the rectangles they invalidated; the
// compositor subtracts regions hidden behind opaque graphics in layers
// closer to the viewer, decomposes what remains into disjoint rectangles
// with MkDisjoint, and redraws layers back to front inside those
// rectangles only. The rectangles that actually changed are returned so
// a frame driver can flip or upload just those regions.
//
// The pipeline is single threaded: one frame invocation owns all graphic
// state from start to finish, and Manager serialises invocations.
package gfx
