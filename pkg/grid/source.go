package grid

// Column describes one visible column of the data source.
type Column struct {
	// ID is the column's field key, stable across re-ordering.
	ID string
	// Title is the header label.
	Title string
	// Width is the column's preferred width in cells. Zero means use
	// the grid's configured default width.
	Width int
}

// Source supplies the ordered, already-materialized table the engine
// operates on: visible rows by index with stable IDs, visible columns,
// and raw field values. Sorting, filtering, and pagination happen
// upstream of this interface.
type Source interface {
	// Columns returns the visible columns in display order.
	Columns() []Column

	// RowCount returns the number of visible rows.
	RowCount() int

	// RowID returns the stable ID of the row at index, or "" if the
	// index is out of range.
	RowID(index int) string

	// Value returns the raw (unformatted) value of a cell. The second
	// return is false when the row or column does not exist.
	Value(rowID, columnID string) (string, bool)
}

// columnIndex returns the 0-based index into Columns() of the column
// with the given ID, or -1.
func columnIndex(src Source, columnID string) int {
	for i, col := range src.Columns() {
		if col.ID == columnID {
			return i
		}
	}
	return -1
}
