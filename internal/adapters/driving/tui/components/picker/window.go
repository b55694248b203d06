package picker

// window implements the virtualization geometry for the picker list:
// a bounded pool of recycled row slots mapped over an arbitrarily
// large result set, with a scroll offset measured in the same units
// as rowHeight. All values are unit-agnostic; the picker uses one
// terminal line per row, while the maths holds for any row height.
type window struct {
	rowHeight int
	overscan  int
	viewport  int
	scroll    int
	total     int
}

// rowSlot is one recycled pool entry. Slots are reused across scroll
// positions: assign rewrites index/hidden in place instead of
// reallocating the pool.
type rowSlot struct {
	// index is the position within the filtered result set.
	index int

	// hidden marks slots with no item at the current scroll position.
	hidden bool
}

// poolSize is the fixed number of recycled row slots needed to cover
// the viewport plus overscan on both sides.
func (w *window) poolSize() int {
	return ceilDiv(w.viewport, w.rowHeight) + 2*w.overscan + 2
}

// visibleStart is the first item index the pool covers.
func (w *window) visibleStart() int {
	start := w.scroll/w.rowHeight - w.overscan
	if start < 0 {
		return 0
	}
	return start
}

// visibleCount is how many items the pool covers from visibleStart.
func (w *window) visibleCount() int {
	return ceilDiv(w.viewport, w.rowHeight) + 2*w.overscan
}

// extent is the total scrollable height, so scrollbar proportions stay
// correct without materialising every row.
func (w *window) extent() int {
	return w.total * w.rowHeight
}

func (w *window) maxScroll() int {
	m := w.extent() - w.viewport
	if m < 0 {
		return 0
	}
	return m
}

// clampScroll keeps the offset within the scrollable range after the
// result set or viewport shrinks.
func (w *window) clampScroll() {
	if w.scroll > w.maxScroll() {
		w.scroll = w.maxScroll()
	}
	if w.scroll < 0 {
		w.scroll = 0
	}
}

// reveal scrolls the minimum distance needed to make row index fully
// visible: up if it sits above the viewport, down if below, untouched
// if already in view.
func (w *window) reveal(index int) {
	top := index * w.rowHeight
	bottom := top + w.rowHeight

	if top < w.scroll {
		w.scroll = top
	} else if bottom > w.scroll+w.viewport {
		w.scroll = bottom - w.viewport
	}
	w.clampScroll()
}

// assign maps each pool slot to an item index at the current scroll
// position, hiding slots beyond the covered range. The pool slice is
// updated in place.
func (w *window) assign(pool []rowSlot) {
	start := w.visibleStart()
	end := start + w.visibleCount()
	if end > w.total {
		end = w.total
	}

	for i := range pool {
		index := start + i
		if index < end {
			pool[i].index = index
			pool[i].hidden = false
		} else {
			pool[i].index = -1
			pool[i].hidden = true
		}
	}
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
