// Package datasource provides row/column providers for the grid: an
// in-memory table, a SQLite-backed table with write-back persistence,
// and an xlsx workbook loader.
package datasource

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/odvcencio/gridkit/pkg/grid"
)

// Table is an in-memory grid.Source. Rows get stable UUID identifiers
// so re-ordering upstream never changes cell identity.
type Table struct {
	cols   []grid.Column
	order  []string
	values map[string]map[string]string
}

// NewTable creates an empty table with the given columns.
func NewTable(cols []grid.Column) *Table {
	return &Table{
		cols:   cols,
		values: make(map[string]map[string]string),
	}
}

// AppendRow adds a row and returns its generated ID. Values for columns
// the row does not mention read back as "".
func (t *Table) AppendRow(values map[string]string) string {
	id := uuid.NewString()
	row := make(map[string]string, len(values))
	for k, v := range values {
		row[k] = v
	}
	t.order = append(t.order, id)
	t.values[id] = row
	return id
}

// Columns implements grid.Source.
func (t *Table) Columns() []grid.Column { return t.cols }

// RowCount implements grid.Source.
func (t *Table) RowCount() int { return len(t.order) }

// RowID implements grid.Source.
func (t *Table) RowID(index int) string {
	if index < 0 || index >= len(t.order) {
		return ""
	}
	return t.order[index]
}

// Value implements grid.Source.
func (t *Table) Value(rowID, columnID string) (string, bool) {
	row, ok := t.values[rowID]
	if !ok {
		return "", false
	}
	for _, col := range t.cols {
		if col.ID == columnID {
			return row[columnID], true
		}
	}
	return "", false
}

// SetValue writes a cell. It satisfies the shape of grid.PersistFunc so
// the table can serve as its own persistence target.
func (t *Table) SetValue(rowID, columnID, value string) error {
	row, ok := t.values[rowID]
	if !ok {
		return fmt.Errorf("no row %q", rowID)
	}
	found := false
	for _, col := range t.cols {
		if col.ID == columnID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no column %q", columnID)
	}
	row[columnID] = value
	return nil
}

// RemoveRow drops a row, simulating upstream filtering.
func (t *Table) RemoveRow(rowID string) {
	for i, id := range t.order {
		if id == rowID {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	delete(t.values, rowID)
}

// Sample returns a small built-in dataset for the demo binary.
func Sample() *Table {
	t := NewTable([]grid.Column{
		{ID: "name", Title: "Name", Width: 16},
		{ID: "role", Title: "Role", Width: 20},
		{ID: "city", Title: "City", Width: 14},
		{ID: "start", Title: "Started", Width: 10},
	})
	rows := [][4]string{
		{"Ada Lovelace", "Analyst", "London", "1842-01-10"},
		{"Grace Hopper", "Rear Admiral", "Arlington", "1944-06-01"},
		{"Edsger Dijkstra", "Professor", "Austin", "1962-09-01"},
		{"Barbara Liskov", "Professor", "Cambridge", "1972-02-15"},
		{"Donald Knuth", "Professor Emeritus", "Stanford", "1968-01-01"},
		{"Margaret Hamilton", "Director", "Boston", "1965-08-01"},
	}
	for _, r := range rows {
		t.AppendRow(map[string]string{
			"name": r[0], "role": r[1], "city": r[2], "start": r[3],
		})
	}
	return t
}

var _ grid.Source = (*Table)(nil)
