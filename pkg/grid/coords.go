// Package grid implements the grid interaction engine: the selection
// model, drag-to-select protocol, TSV clipboard serialization, inline
// cell editing, column resizing, and the Grid widget that wires them to
// terminal input.
package grid

// Coord is the durable identity of a cell: the stable row ID from the
// data source plus the column's field key. Positions change when the
// source is re-ordered; coords do not.
type Coord struct {
	RowID    string
	ColumnID string
}

// Pos is the positional location of a cell in the currently visible
// grid. Row is the 0-based row index. Col is the 0-based column index
// where column 0 is the row-number gutter and data columns start at 1.
type Pos struct {
	Row int
	Col int
}

// GutterCol is the reserved column index of the row-number gutter.
const GutterCol = 0

// CellSet is a set of cell coords. Membership is what matters;
// serialization re-derives row order from the data source.
type CellSet map[Coord]struct{}

// NewCellSet creates a set containing the given coords.
func NewCellSet(coords ...Coord) CellSet {
	s := make(CellSet, len(coords))
	for _, c := range coords {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts a coord.
func (s CellSet) Add(c Coord) {
	s[c] = struct{}{}
}

// Has reports membership.
func (s CellSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of cells.
func (s CellSet) Len() int {
	return len(s)
}

// Clone returns a copy of the set.
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Direction is an arrow-key navigation direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)
