package grid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource is a minimal in-memory Source for engine tests.
type fakeSource struct {
	cols   []Column
	ids    []string
	values map[string]map[string]string
}

func newFakeSource(colIDs []string, rows ...[]string) *fakeSource {
	src := &fakeSource{values: make(map[string]map[string]string)}
	for _, id := range colIDs {
		src.cols = append(src.cols, Column{ID: id, Title: id})
	}
	for i, row := range rows {
		id := fmt.Sprintf("row-%d", i+1)
		src.ids = append(src.ids, id)
		src.values[id] = make(map[string]string)
		for c, v := range row {
			if c < len(colIDs) {
				src.values[id][colIDs[c]] = v
			}
		}
	}
	return src
}

func (s *fakeSource) Columns() []Column { return s.cols }
func (s *fakeSource) RowCount() int     { return len(s.ids) }

func (s *fakeSource) RowID(index int) string {
	if index < 0 || index >= len(s.ids) {
		return ""
	}
	return s.ids[index]
}

func (s *fakeSource) Value(rowID, columnID string) (string, bool) {
	row, ok := s.values[rowID]
	if !ok {
		return "", false
	}
	v, ok := row[columnID]
	return v, ok
}

// removeRow drops a row to simulate upstream filtering.
func (s *fakeSource) removeRow(rowID string) {
	for i, id := range s.ids {
		if id == rowID {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	delete(s.values, rowID)
}

func threeByThree() *fakeSource {
	return newFakeSource(
		[]string{"name", "age", "city"},
		[]string{"Ada", "36", "London"},
		[]string{"Bo", "41", "Oslo"},
		[]string{"Cy", "28", "Kyiv"},
	)
}

func TestRectangleCellCountProperty(t *testing.T) {
	src := threeByThree()

	cases := []struct {
		a, b Pos
	}{
		{Pos{0, 1}, Pos{2, 3}},
		{Pos{2, 3}, Pos{0, 1}},
		{Pos{1, 2}, Pos{1, 2}},
		{Pos{0, 3}, Pos{2, 1}},
	}
	for _, tc := range cases {
		set := Rectangle(src, tc.a, tc.b)
		dr := tc.a.Row - tc.b.Row
		if dr < 0 {
			dr = -dr
		}
		dc := tc.a.Col - tc.b.Col
		if dc < 0 {
			dc = -dc
		}
		assert.Equal(t, (dr+1)*(dc+1), set.Len(), "rect %v-%v", tc.a, tc.b)
	}
}

func TestRangeOrderIndependence(t *testing.T) {
	src := threeByThree()

	assert.Equal(t, ColumnRange(src, 1, 3), ColumnRange(src, 3, 1))
	assert.Equal(t, RowRange(src, 0, 2), RowRange(src, 2, 0))
	assert.Equal(t, Rectangle(src, Pos{0, 1}, Pos{2, 2}), Rectangle(src, Pos{2, 2}, Pos{0, 1}))
}

func TestColumnRange(t *testing.T) {
	src := threeByThree()

	set := ColumnRange(src, 1, 2)
	require.Equal(t, 6, set.Len())
	assert.True(t, set.Has(Coord{RowID: "row-1", ColumnID: "name"}))
	assert.True(t, set.Has(Coord{RowID: "row-3", ColumnID: "age"}))
	assert.False(t, set.Has(Coord{RowID: "row-1", ColumnID: "city"}))
}

func TestRowRangeExcludesGutter(t *testing.T) {
	src := threeByThree()

	set := RowRange(src, 0, 1)
	// 2 rows x 3 data columns, no gutter member.
	assert.Equal(t, 6, set.Len())
}

func TestEntireRowAndColumn(t *testing.T) {
	src := threeByThree()

	row := EntireRow(src, 1)
	assert.Equal(t, 3, row.Len())
	assert.True(t, row.Has(Coord{RowID: "row-2", ColumnID: "city"}))

	col := EntireColumn(src, "age")
	assert.Equal(t, 3, col.Len())
	assert.True(t, col.Has(Coord{RowID: "row-3", ColumnID: "age"}))

	assert.Equal(t, 0, EntireColumn(src, "missing").Len())
}

func TestAllCells(t *testing.T) {
	src := threeByThree()
	assert.Equal(t, 9, AllCells(src).Len())
}

func TestRangesTotalOverEmptyInputs(t *testing.T) {
	empty := newFakeSource(nil)
	noRows := newFakeSource([]string{"a", "b"})

	assert.Equal(t, 0, ColumnRange(empty, 1, 5).Len())
	assert.Equal(t, 0, RowRange(noRows, 0, 9).Len())
	assert.Equal(t, 0, AllCells(empty).Len())
	assert.Equal(t, 0, Rectangle(noRows, Pos{0, 1}, Pos{5, 2}).Len())
}

func TestRangesClampOutOfBounds(t *testing.T) {
	src := threeByThree()

	assert.Equal(t, 9, ColumnRange(src, -5, 99).Len())
	assert.Equal(t, 9, RowRange(src, -1, 42).Len())
}
