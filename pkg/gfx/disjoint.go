package gfx

import "sort"

// Cell markers for the sweep grid. Every cell starts as cellRemoved;
// rectangles from add OR in cellAdded, rectangles from remove toggle
// cellRemoved off. A cell that ends up as cellAdded|cellRemoved is covered
// by add and not by remove.
const (
	cellRemoved = 1
	cellAdded   = 2
)

// MkDisjoint decomposes union(add) - union(remove) into rectangles that
// are pairwise disjoint and have positive area. Adjacent output cells are
// not merged back into larger rectangles; callers must not assume maximal
// rectangles. Degenerate input rectangles contribute nothing.
//
// The sweep collects the distinct x and y edge coordinates of the inputs,
// forms the grid of cells bounded by consecutive edges, marks each cell
// with the coverage bits above and emits the marked cells row by row.
func MkDisjoint(add, remove []Rect) []Rect {
	xs, ys := collectEdges(add, remove)
	if len(xs) < 2 || len(ys) < 2 {
		return nil
	}

	cols := len(xs) - 1
	rows := len(ys) - 1
	grid := make([]uint8, cols*rows)
	for i := range grid {
		grid[i] = cellRemoved
	}

	markSpan(grid, xs, ys, add, func(c *uint8) { *c |= cellAdded })
	// remove is applied strictly after add; overlapping remove rects
	// toggle the bit rather than clearing it.
	markSpan(grid, xs, ys, remove, func(c *uint8) { *c ^= cellRemoved })

	var out []Rect
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if grid[row*cols+col] == cellAdded|cellRemoved {
				out = append(out, Rect{
					X: xs[col],
					Y: ys[row],
					W: xs[col+1] - xs[col],
					H: ys[row+1] - ys[row],
				})
			}
		}
	}
	return out
}

// collectEdges gathers the sorted, deduplicated x and y coordinates of
// the left/right and top/bottom edges of every positive-area rectangle.
func collectEdges(add, remove []Rect) (xs, ys []int) {
	seenX := make(map[int]struct{})
	seenY := make(map[int]struct{})
	scan := func(rects []Rect) {
		for _, r := range rects {
			if !r.HasArea() {
				continue
			}
			seenX[r.X] = struct{}{}
			seenX[r.Right()] = struct{}{}
			seenY[r.Y] = struct{}{}
			seenY[r.Bottom()] = struct{}{}
		}
	}
	scan(add)
	scan(remove)

	xs = make([]int, 0, len(seenX))
	for x := range seenX {
		xs = append(xs, x)
	}
	ys = make([]int, 0, len(seenY))
	for y := range seenY {
		ys = append(ys, y)
	}
	sort.Ints(xs)
	sort.Ints(ys)
	return xs, ys
}

// markSpan applies mark to every grid cell spanned by each positive-area
// rectangle. Rectangle corners always coincide with edge coordinates,
// since the rectangles generated the edge sets.
func markSpan(grid []uint8, xs, ys []int, rects []Rect, mark func(*uint8)) {
	cols := len(xs) - 1
	for _, r := range rects {
		if !r.HasArea() {
			continue
		}
		col0 := sort.SearchInts(xs, r.X)
		col1 := sort.SearchInts(xs, r.Right())
		row0 := sort.SearchInts(ys, r.Y)
		row1 := sort.SearchInts(ys, r.Bottom())
		for row := row0; row < row1; row++ {
			for col := col0; col < col1; col++ {
				mark(&grid[row*cols+col])
			}
		}
	}
}
