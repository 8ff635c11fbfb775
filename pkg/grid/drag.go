package grid

// DragKind identifies what a drag session is selecting.
type DragKind int

const (
	DragNone DragKind = iota
	DragCells
	DragColumns
	DragRows
)

// DragState is the per-gesture bookkeeping for a drag session. It lives
// outside anything that triggers a repaint: pointer moves mutate it at
// event frequency, and only the resulting selection changes are drawn.
type DragState struct {
	Kind     DragKind
	StartRow int
	StartCol int
}

// Drag runs drag-to-select sessions over a Selection. A session starts
// on a primary-button press, tracks every move wherever the pointer
// goes, and ends on release. Each move fully recomputes the selection
// from the start index and the current pointer position, so coalesced
// or out-of-order moves are harmless.
type Drag struct {
	sel   *Selection
	state DragState
	gen   int // session generation, so stale guards cannot end a newer session
}

// NewDrag creates a drag controller over sel.
func NewDrag(sel *Selection) *Drag {
	return &Drag{sel: sel}
}

// Active reports whether a drag session is in progress.
func (d *Drag) Active() bool {
	return d.state.Kind != DragNone
}

// Kind returns the active session's kind, or DragNone.
func (d *Drag) Kind() DragKind {
	return d.state.Kind
}

// StartCells begins a cell-rectangle drag anchored at pos.
// Starting a new session while one is active releases the old one.
func (d *Drag) StartCells(pos Pos) *DragGuard {
	d.Release()
	d.sel.Click(pos)
	if d.sel.Anchor() == nil {
		return &DragGuard{released: true}
	}
	d.state = DragState{Kind: DragCells, StartRow: pos.Row, StartCol: pos.Col}
	d.gen++
	return &DragGuard{drag: d, gen: d.gen}
}

// StartColumns begins a column-range drag from a header press.
func (d *Drag) StartColumns(colIndex int) *DragGuard {
	d.Release()
	d.sel.SelectColumnRange(colIndex, colIndex)
	if d.sel.Cells().Len() == 0 {
		return &DragGuard{released: true}
	}
	d.state = DragState{Kind: DragColumns, StartCol: colIndex}
	d.gen++
	return &DragGuard{drag: d, gen: d.gen}
}

// StartRows begins a row-range drag from a gutter press.
func (d *Drag) StartRows(rowIndex int) *DragGuard {
	d.Release()
	d.sel.SelectRowRange(rowIndex, rowIndex)
	if d.sel.Cells().Len() == 0 {
		return &DragGuard{released: true}
	}
	d.state = DragState{Kind: DragRows, StartRow: rowIndex}
	d.gen++
	return &DragGuard{drag: d, gen: d.gen}
}

// MoveCell feeds the data cell currently under the pointer into an
// active cell drag.
func (d *Drag) MoveCell(pos Pos) {
	if d.state.Kind != DragCells {
		return
	}
	d.sel.ShiftClick(pos)
}

// MoveColumn feeds the column index currently under the pointer into an
// active column drag.
func (d *Drag) MoveColumn(colIndex int) {
	if d.state.Kind != DragColumns {
		return
	}
	d.sel.SelectColumnRange(d.state.StartCol, colIndex)
}

// MoveRow feeds the row index currently under the pointer into an
// active row drag.
func (d *Drag) MoveRow(rowIndex int) {
	if d.state.Kind != DragRows {
		return
	}
	d.sel.SelectRowRange(d.state.StartRow, rowIndex)
}

// Release ends the active session, if any. Idempotent: the release path
// must be safe to hit from both the normal pointer-up and any abnormal
// teardown.
func (d *Drag) Release() {
	d.state = DragState{}
}

// DragGuard scopes a drag session the way document-level listeners
// scope a browser drag: whoever started the session holds the guard and
// releases it exactly when the gesture ends, wherever the pointer is by
// then. Release is idempotent.
type DragGuard struct {
	drag     *Drag
	gen      int
	released bool
}

// Release ends the guarded session. Subsequent calls are no-ops, and a
// guard whose session was replaced by a newer one releases nothing.
func (g *DragGuard) Release() {
	if g == nil || g.released {
		return
	}
	g.released = true
	if g.drag != nil && g.drag.gen == g.gen {
		g.drag.Release()
	}
}

// Active reports whether this guard still holds a live session.
func (g *DragGuard) Active() bool {
	return g != nil && !g.released && g.drag != nil &&
		g.drag.gen == g.gen && g.drag.Active()
}
