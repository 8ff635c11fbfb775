package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGeometry(bounds ScreenRect) Geometry {
	return Geometry{
		Bounds:       bounds,
		GutterWidth:  5,
		HeaderHeight: 1,
		RowOffset:    0,
		ColOffset:    1,
		ColumnWidth:  func(Column) int { return 10 },
	}
}

func TestLocateCellsCoversVisibleGrid(t *testing.T) {
	src := threeByThree()
	geo := testGeometry(ScreenRect{X: 0, Y: 0, Width: 40, Height: 10})

	boxes := geo.LocateCells(src)
	require.Len(t, boxes, 9)

	first := boxes[0]
	assert.Equal(t, Coord{RowID: "row-1", ColumnID: "name"}, first.Coord)
	assert.Equal(t, Pos{Row: 0, Col: 1}, first.Pos)
	assert.Equal(t, ScreenRect{X: 5, Y: 1, Width: 10, Height: 1}, first.Rect)
}

func TestLocateCellsEmptyBounds(t *testing.T) {
	src := threeByThree()
	geo := testGeometry(ScreenRect{})

	assert.Empty(t, geo.LocateCells(src), "unmounted container yields empty, not error")
}

func TestLocateCellsPartialWhenScrolledOrClipped(t *testing.T) {
	src := threeByThree()

	// Viewport fits only the header plus two rows and two columns.
	geo := testGeometry(ScreenRect{X: 0, Y: 0, Width: 25, Height: 3})
	boxes := geo.LocateCells(src)
	assert.Len(t, boxes, 4)

	// Scrolled down one row.
	geo.RowOffset = 1
	boxes = geo.LocateCells(src)
	require.NotEmpty(t, boxes)
	assert.Equal(t, "row-2", boxes[0].Coord.RowID)
}

func TestCellAtHitTest(t *testing.T) {
	src := threeByThree()
	geo := testGeometry(ScreenRect{X: 0, Y: 0, Width: 40, Height: 10})

	box, ok := geo.CellAt(src, 16, 2)
	require.True(t, ok)
	assert.Equal(t, Pos{Row: 1, Col: 2}, box.Pos)
	assert.Equal(t, Coord{RowID: "row-2", ColumnID: "age"}, box.Coord)
}

func TestCellAtMisses(t *testing.T) {
	src := threeByThree()
	geo := testGeometry(ScreenRect{X: 0, Y: 0, Width: 40, Height: 10})

	cases := []struct {
		name string
		x, y int
	}{
		{"header", 10, 0},
		{"gutter", 2, 2},
		{"past last column", 36, 2},
		{"past last row", 10, 8},
		{"outside bounds", 100, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := geo.CellAt(src, tc.x, tc.y)
			assert.False(t, ok)
		})
	}
}

func TestRowAndColumnAt(t *testing.T) {
	src := threeByThree()
	geo := testGeometry(ScreenRect{X: 0, Y: 0, Width: 40, Height: 10})

	row, ok := geo.RowAt(src, 3)
	require.True(t, ok)
	assert.Equal(t, 2, row)

	col, ok := geo.ColumnAt(src, 25)
	require.True(t, ok)
	assert.Equal(t, 3, col)

	_, ok = geo.RowAt(src, 0)
	assert.False(t, ok, "header row is not a data row")
}

func TestResizeHandleAt(t *testing.T) {
	src := threeByThree()
	geo := testGeometry(ScreenRect{X: 0, Y: 0, Width: 40, Height: 10})

	// Column 1 spans x 5..14; its handle is the last cell, x=14.
	col, ok := geo.ResizeHandleAt(src, 14, 0)
	require.True(t, ok)
	assert.Equal(t, 1, col)

	_, ok = geo.ResizeHandleAt(src, 13, 0)
	assert.False(t, ok, "interior header cell is not a handle")

	_, ok = geo.ResizeHandleAt(src, 14, 2)
	assert.False(t, ok, "handles exist only in the header row")
}

func TestGeometryWithScrolledColumns(t *testing.T) {
	src := threeByThree()
	geo := testGeometry(ScreenRect{X: 0, Y: 0, Width: 40, Height: 10})
	geo.ColOffset = 2

	box, ok := geo.CellAt(src, 6, 1)
	require.True(t, ok)
	assert.Equal(t, 2, box.Pos.Col)
	assert.Equal(t, "age", box.Coord.ColumnID)
}
