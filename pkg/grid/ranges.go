package grid

// Range algorithms: pure functions mapping positions to the explicit
// set of included cell coords. All are total: empty sources yield empty
// sets, out-of-range indices are clamped into the valid interval, and
// start/end order never matters.

// ColumnRange returns every cell in the inclusive column-index interval
// [min(start,end), max(start,end)] across all rows. Indices are data
// column positions (1-based, gutter excluded).
func ColumnRange(src Source, start, end int) CellSet {
	set := make(CellSet)
	cols := src.Columns()
	if len(cols) == 0 || src.RowCount() == 0 {
		return set
	}

	lo, hi := normalize(start, end, 1, len(cols))
	for r := 0; r < src.RowCount(); r++ {
		rowID := src.RowID(r)
		for c := lo; c <= hi; c++ {
			set.Add(Coord{RowID: rowID, ColumnID: cols[c-1].ID})
		}
	}
	return set
}

// RowRange returns every cell in the inclusive row-index interval
// [min(start,end), max(start,end)] across all data columns. The row
// number gutter is not part of an entire-row selection.
func RowRange(src Source, start, end int) CellSet {
	set := make(CellSet)
	cols := src.Columns()
	if len(cols) == 0 || src.RowCount() == 0 {
		return set
	}

	lo, hi := normalize(start, end, 0, src.RowCount()-1)
	for r := lo; r <= hi; r++ {
		rowID := src.RowID(r)
		for _, col := range cols {
			set.Add(Coord{RowID: rowID, ColumnID: col.ID})
		}
	}
	return set
}

// EntireRow returns all data cells of one row.
func EntireRow(src Source, rowIndex int) CellSet {
	return RowRange(src, rowIndex, rowIndex)
}

// EntireColumn returns all cells of the column with the given ID.
func EntireColumn(src Source, columnID string) CellSet {
	set := make(CellSet)
	if columnIndex(src, columnID) < 0 {
		return set
	}
	for r := 0; r < src.RowCount(); r++ {
		set.Add(Coord{RowID: src.RowID(r), ColumnID: columnID})
	}
	return set
}

// AllCells returns every data cell in the grid.
func AllCells(src Source) CellSet {
	return RowRange(src, 0, src.RowCount()-1)
}

// Rectangle returns the cells spanned by two positions: the cross
// product of their row interval and column interval.
func Rectangle(src Source, a, b Pos) CellSet {
	set := make(CellSet)
	cols := src.Columns()
	if len(cols) == 0 || src.RowCount() == 0 {
		return set
	}

	rowLo, rowHi := normalize(a.Row, b.Row, 0, src.RowCount()-1)
	colLo, colHi := normalize(a.Col, b.Col, 1, len(cols))
	for r := rowLo; r <= rowHi; r++ {
		rowID := src.RowID(r)
		for c := colLo; c <= colHi; c++ {
			set.Add(Coord{RowID: rowID, ColumnID: cols[c-1].ID})
		}
	}
	return set
}

// normalize orders a pair and clamps it into [min, max].
func normalize(a, b, min, max int) (lo, hi int) {
	if a > b {
		a, b = b, a
	}
	if a < min {
		a = min
	}
	if b > max {
		b = max
	}
	return a, b
}
