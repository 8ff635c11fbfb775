package grid

// Selection owns the selected-cell set and the anchor/focus pair.
// Anchor is the fixed corner of a range gesture; focus is the moving
// corner. Either both are set or both are nil.
type Selection struct {
	src    Source
	set    CellSet
	anchor *Pos
	focus  *Pos
}

// NewSelection creates an empty selection over the given source.
func NewSelection(src Source) *Selection {
	return &Selection{
		src: src,
		set: make(CellSet),
	}
}

// Cells returns the current selected-cell set.
// Stale members referencing rows or columns no longer in the source are
// pruned first, so callers never observe dangling coords.
func (s *Selection) Cells() CellSet {
	s.prune()
	return s.set
}

// Anchor returns the anchor position, or nil if nothing is selected.
func (s *Selection) Anchor() *Pos {
	return s.anchor
}

// Focus returns the focus position, or nil if nothing is selected.
func (s *Selection) Focus() *Pos {
	return s.focus
}

// IsSelected reports whether a cell is in the selection.
func (s *Selection) IsSelected(c Coord) bool {
	return s.set.Has(c)
}

// Click selects exactly one cell: anchor = focus = pos.
// A click on an empty grid is a no-op.
func (s *Selection) Click(pos Pos) {
	pos, ok := s.clampPos(pos)
	if !ok {
		return
	}
	s.anchor = &Pos{Row: pos.Row, Col: pos.Col}
	s.focus = &Pos{Row: pos.Row, Col: pos.Col}
	s.set = Rectangle(s.src, pos, pos)
}

// ShiftClick keeps the anchor fixed, moves the focus to pos, and
// recomputes the selection as the spanned rectangle. Without a prior
// anchor it behaves like Click.
func (s *Selection) ShiftClick(pos Pos) {
	if s.anchor == nil {
		s.Click(pos)
		return
	}
	pos, ok := s.clampPos(pos)
	if !ok {
		return
	}
	s.focus = &Pos{Row: pos.Row, Col: pos.Col}
	s.set = Rectangle(s.src, *s.anchor, *s.focus)
}

// ArrowKey moves the focus one step. With extend false the anchor moves
// too and the selection collapses to the single new cell; with extend
// true only the focus moves and the rectangle is recomputed. Movement
// past a grid edge clamps to the edge.
func (s *Selection) ArrowKey(dir Direction, extend bool) {
	if s.src.RowCount() == 0 || len(s.src.Columns()) == 0 {
		return
	}
	if s.focus == nil {
		s.Click(Pos{Row: 0, Col: 1})
		return
	}

	next := *s.focus
	switch dir {
	case DirUp:
		next.Row--
	case DirDown:
		next.Row++
	case DirLeft:
		next.Col--
	case DirRight:
		next.Col++
	}
	next, _ = s.clampPos(next)

	if extend {
		s.ShiftClick(next)
	} else {
		s.Click(next)
	}
}

// SelectEntireRow selects all data cells of one row and parks the
// anchor/focus at the row's first data cell for arrow-key continuation.
func (s *Selection) SelectEntireRow(rowIndex int) {
	set := EntireRow(s.src, rowIndex)
	if set.Len() == 0 {
		return
	}
	s.set = set
	s.setCorner(Pos{Row: clampInt(rowIndex, 0, s.src.RowCount()-1), Col: 1})
}

// SelectEntireColumn selects all cells of one column and parks the
// anchor/focus at the column's top cell.
func (s *Selection) SelectEntireColumn(colIndex int) {
	cols := s.src.Columns()
	if colIndex < 1 || colIndex > len(cols) {
		return
	}
	set := EntireColumn(s.src, cols[colIndex-1].ID)
	if set.Len() == 0 {
		return
	}
	s.set = set
	s.setCorner(Pos{Row: 0, Col: colIndex})
}

// SelectAll selects every data cell and parks the anchor/focus at the
// top-left cell.
func (s *Selection) SelectAll() {
	set := AllCells(s.src)
	if set.Len() == 0 {
		return
	}
	s.set = set
	s.setCorner(Pos{Row: 0, Col: 1})
}

// SelectColumnRange selects the inclusive column interval between the
// anchor column and colIndex. Used by header drags.
func (s *Selection) SelectColumnRange(startCol, colIndex int) {
	set := ColumnRange(s.src, startCol, colIndex)
	if set.Len() == 0 {
		return
	}
	s.set = set
	lo, _ := normalize(startCol, colIndex, 1, len(s.src.Columns()))
	s.setCorner(Pos{Row: 0, Col: lo})
}

// SelectRowRange selects the inclusive row interval between the anchor
// row and rowIndex. Used by gutter drags.
func (s *Selection) SelectRowRange(startRow, rowIndex int) {
	set := RowRange(s.src, startRow, rowIndex)
	if set.Len() == 0 {
		return
	}
	s.set = set
	lo, _ := normalize(startRow, rowIndex, 0, s.src.RowCount()-1)
	s.setCorner(Pos{Row: lo, Col: 1})
}

// Clear empties the selection and drops the anchor/focus pair.
func (s *Selection) Clear() {
	s.set = make(CellSet)
	s.anchor = nil
	s.focus = nil
}

// Reset replaces the data source wholesale and clears the selection.
func (s *Selection) Reset(src Source) {
	s.src = src
	s.Clear()
}

func (s *Selection) setCorner(pos Pos) {
	s.anchor = &Pos{Row: pos.Row, Col: pos.Col}
	s.focus = &Pos{Row: pos.Row, Col: pos.Col}
}

// clampPos clamps a position into the data-cell region. Returns false
// when the grid has no data cells at all.
func (s *Selection) clampPos(pos Pos) (Pos, bool) {
	rows := s.src.RowCount()
	cols := len(s.src.Columns())
	if rows == 0 || cols == 0 {
		return pos, false
	}
	return Pos{
		Row: clampInt(pos.Row, 0, rows-1),
		Col: clampInt(pos.Col, 1, cols),
	}, true
}

// prune drops set members whose row or column left the source.
func (s *Selection) prune() {
	if len(s.set) == 0 {
		return
	}

	rowIDs := make(map[string]struct{}, s.src.RowCount())
	for r := 0; r < s.src.RowCount(); r++ {
		rowIDs[s.src.RowID(r)] = struct{}{}
	}
	colIDs := make(map[string]struct{})
	for _, col := range s.src.Columns() {
		colIDs[col.ID] = struct{}{}
	}

	for c := range s.set {
		if _, ok := rowIDs[c.RowID]; !ok {
			delete(s.set, c)
			continue
		}
		if _, ok := colIDs[c.ColumnID]; !ok {
			delete(s.set, c)
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
