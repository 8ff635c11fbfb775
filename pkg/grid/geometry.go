package grid

// ScreenRect is a positioned screen-cell rectangle.
type ScreenRect struct {
	X, Y, Width, Height int
}

// Contains reports whether the point is inside the rectangle.
func (r ScreenRect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// CellBox pairs a cell's identity, its grid position, and the screen
// rectangle it currently occupies.
type CellBox struct {
	Coord Coord
	Pos   Pos
	Rect  ScreenRect
}

// Geometry computes where cells sit on screen for the current scroll
// state, and hit-tests pointer positions back to cells. Pure reads over
// the laid-out bounds: an unmounted widget (empty bounds) produces
// empty results, never an error.
type Geometry struct {
	// Bounds is the widget's full on-screen area.
	Bounds ScreenRect
	// GutterWidth is the width of the row-number gutter.
	GutterWidth int
	// HeaderHeight is the height of the header row.
	HeaderHeight int
	// RowOffset is the index of the first visible data row.
	RowOffset int
	// ColOffset is the index (1-based) of the first visible data column.
	ColOffset int
	// ColumnWidth returns the effective width of a column.
	ColumnWidth func(col Column) int
}

// LocateCells returns a box for every data cell currently on screen.
// Scrolled-out cells are simply absent; callers tolerate partial
// results.
func (g Geometry) LocateCells(src Source) []CellBox {
	if g.Bounds.Width <= 0 || g.Bounds.Height <= 0 {
		return nil
	}

	var boxes []CellBox
	cols := src.Columns()
	dataTop := g.Bounds.Y + g.HeaderHeight
	dataBottom := g.Bounds.Y + g.Bounds.Height
	right := g.Bounds.X + g.Bounds.Width

	for r := g.RowOffset; r < src.RowCount(); r++ {
		y := dataTop + (r - g.RowOffset)
		if y >= dataBottom {
			break
		}
		rowID := src.RowID(r)

		x := g.Bounds.X + g.GutterWidth
		for c := g.ColOffset; c >= 1 && c <= len(cols); c++ {
			w := g.ColumnWidth(cols[c-1])
			if x >= right {
				break
			}
			visible := min(w, right-x)
			boxes = append(boxes, CellBox{
				Coord: Coord{RowID: rowID, ColumnID: cols[c-1].ID},
				Pos:   Pos{Row: r, Col: c},
				Rect:  ScreenRect{X: x, Y: y, Width: visible, Height: 1},
			})
			x += w
		}
	}
	return boxes
}

// CellAt hit-tests a screen position to the data cell under it.
// A miss (header, gutter, past the last row or column) returns false.
func (g Geometry) CellAt(src Source, x, y int) (CellBox, bool) {
	row, ok := g.RowAt(src, y)
	if !ok {
		return CellBox{}, false
	}
	col, left, width, ok := g.columnSpanAt(src, x)
	if !ok {
		return CellBox{}, false
	}
	return CellBox{
		Coord: Coord{RowID: src.RowID(row), ColumnID: src.Columns()[col-1].ID},
		Pos:   Pos{Row: row, Col: col},
		Rect:  ScreenRect{X: left, Y: y, Width: width, Height: 1},
	}, true
}

// RowAt returns the data row index at screen Y, or false for the header
// area and positions past the last row.
func (g Geometry) RowAt(src Source, y int) (int, bool) {
	if g.Bounds.Width <= 0 || g.Bounds.Height <= 0 {
		return 0, false
	}
	dataTop := g.Bounds.Y + g.HeaderHeight
	if y < dataTop || y >= g.Bounds.Y+g.Bounds.Height {
		return 0, false
	}
	row := g.RowOffset + (y - dataTop)
	if row < 0 || row >= src.RowCount() {
		return 0, false
	}
	return row, true
}

// ColumnAt returns the data column index (1-based) at screen X, or
// false for the gutter and positions past the last column.
func (g Geometry) ColumnAt(src Source, x int) (int, bool) {
	col, _, _, ok := g.columnSpanAt(src, x)
	return col, ok
}

// InHeader reports whether screen Y falls in the header row.
func (g Geometry) InHeader(y int) bool {
	return g.Bounds.Height > 0 && y >= g.Bounds.Y && y < g.Bounds.Y+g.HeaderHeight
}

// InGutter reports whether screen X falls in the row-number gutter.
func (g Geometry) InGutter(x int) bool {
	return g.Bounds.Width > 0 && x >= g.Bounds.X && x < g.Bounds.X+g.GutterWidth
}

// ResizeHandleAt returns the column index (1-based) whose resize handle
// sits at the given header position. The handle is the rightmost screen
// cell of each header segment; a press there starts a resize, never a
// selection drag.
func (g Geometry) ResizeHandleAt(src Source, x, y int) (int, bool) {
	if !g.InHeader(y) {
		return 0, false
	}
	col, left, width, ok := g.columnSpanAt(src, x)
	if !ok {
		return 0, false
	}
	if x == left+width-1 {
		return col, true
	}
	return 0, false
}

// columnSpanAt maps screen X to the visible data column covering it,
// returning the column index, its left edge, and its visible width.
func (g Geometry) columnSpanAt(src Source, x int) (col, left, width int, ok bool) {
	if g.Bounds.Width <= 0 || g.Bounds.Height <= 0 {
		return 0, 0, 0, false
	}
	right := g.Bounds.X + g.Bounds.Width
	if x < g.Bounds.X+g.GutterWidth || x >= right {
		return 0, 0, 0, false
	}

	cols := src.Columns()
	cx := g.Bounds.X + g.GutterWidth
	for c := g.ColOffset; c >= 1 && c <= len(cols); c++ {
		w := g.ColumnWidth(cols[c-1])
		visible := min(w, right-cx)
		if visible <= 0 {
			break
		}
		if x < cx+visible {
			return c, cx, visible, true
		}
		cx += w
	}
	return 0, 0, 0, false
}
