package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/gridkit/pkg/clipboard"
	"github.com/odvcencio/gridkit/pkg/ui/runtime"
	"github.com/odvcencio/gridkit/pkg/ui/terminal"
	"github.com/odvcencio/gridkit/pkg/ui/theme"
)

// newTestGrid lays out a grid over threeByThree with predictable
// geometry: gutter x 0..4, columns at x 5..14, 15..24, 25..34, header
// at y 0, data rows at y 1..3.
func newTestGrid(opts Options) (*Grid, *fakeSource) {
	src := threeByThree()
	opts.Source = src
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.NewMemory()
	}
	opts.MinColumnWidth = 4
	opts.DefaultColumnWidth = 10
	opts.GutterWidth = 5

	g := New(opts)
	g.Layout(runtime.Rect{X: 0, Y: 0, Width: 40, Height: 10})
	g.Focus()
	return g, src
}

func press(x, y int) runtime.MouseMsg {
	return runtime.MouseMsg{X: x, Y: y, Button: runtime.MouseLeft, Action: runtime.MousePress}
}

func move(x, y int) runtime.MouseMsg {
	return runtime.MouseMsg{X: x, Y: y, Button: runtime.MouseLeft, Action: runtime.MouseMove}
}

func release(x, y int) runtime.MouseMsg {
	return runtime.MouseMsg{X: x, Y: y, Button: runtime.MouseLeft, Action: runtime.MouseRelease}
}

func key(k terminal.Key) runtime.KeyMsg {
	return runtime.KeyMsg{Key: k}
}

func hasCommand[T runtime.Command](result runtime.HandleResult) bool {
	for _, cmd := range result.Commands {
		if _, ok := cmd.(T); ok {
			return true
		}
	}
	return false
}

func TestMouseDragSelectsRectangle(t *testing.T) {
	g, _ := newTestGrid(Options{})

	result := g.HandleMessage(press(6, 1)) // cell (0,1)
	assert.True(t, hasCommand[runtime.CaptureMouse](result))
	assert.Equal(t, 1, g.Selection().Cells().Len())

	g.HandleMessage(move(18, 3)) // cell (2,2)
	assert.Equal(t, 6, g.Selection().Cells().Len())

	// Release outside the grid still ends the session.
	result = g.HandleMessage(release(99, 99))
	assert.True(t, hasCommand[runtime.ReleaseMouse](result))
	assert.False(t, g.drag.Active())
	assert.Equal(t, 6, g.Selection().Cells().Len())
}

func TestDragMissKeepsTracking(t *testing.T) {
	g, _ := newTestGrid(Options{})

	g.HandleMessage(press(6, 1))
	g.HandleMessage(move(38, 1)) // past last column: geometry miss
	assert.Equal(t, 1, g.Selection().Cells().Len(), "miss leaves selection unchanged")

	g.HandleMessage(move(16, 2)) // valid again
	assert.Equal(t, 4, g.Selection().Cells().Len())
	g.HandleMessage(release(16, 2))
}

func TestHeaderDragSelectsColumns(t *testing.T) {
	g, _ := newTestGrid(Options{})

	g.HandleMessage(press(6, 0)) // header of column 1
	assert.Equal(t, 3, g.Selection().Cells().Len())

	g.HandleMessage(move(16, 0)) // header of column 2
	assert.Equal(t, 6, g.Selection().Cells().Len())

	g.HandleMessage(release(16, 0))
	assert.False(t, g.drag.Active())
}

func TestGutterDragSelectsRows(t *testing.T) {
	g, _ := newTestGrid(Options{})

	g.HandleMessage(press(2, 1)) // gutter of row 0
	assert.Equal(t, 3, g.Selection().Cells().Len())

	g.HandleMessage(move(2, 3)) // gutter of row 2
	assert.Equal(t, 9, g.Selection().Cells().Len())

	g.HandleMessage(release(2, 3))
}

func TestCornerCellSelectsAll(t *testing.T) {
	g, _ := newTestGrid(Options{})

	g.HandleMessage(press(2, 0))
	assert.Equal(t, 9, g.Selection().Cells().Len())
}

func TestShiftClickExtends(t *testing.T) {
	g, _ := newTestGrid(Options{})

	g.HandleMessage(press(6, 1))
	g.HandleMessage(release(6, 1))

	shift := press(26, 3)
	shift.Shift = true
	g.HandleMessage(shift)
	assert.Equal(t, 9, g.Selection().Cells().Len())
}

func TestDoubleClickBeginsEditAndEnterCommits(t *testing.T) {
	var got []string
	g, _ := newTestGrid(Options{
		Persist: func(rowID, columnID, value string) error {
			got = append(got, rowID, columnID, value)
			return nil
		},
	})

	g.HandleMessage(press(16, 1)) // cell (0,2) = age of row-1
	g.HandleMessage(release(16, 1))
	g.HandleMessage(press(16, 1))

	require.True(t, g.Editor().Active())
	assert.Equal(t, "36", g.Editor().Value())

	g.HandleMessage(runtime.KeyMsg{Key: terminal.KeyBackspace})
	g.HandleMessage(runtime.KeyMsg{Key: terminal.KeyBackspace})
	g.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRune, Rune: '3'})
	g.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRune, Rune: '7'})
	assert.Equal(t, "37", g.Editor().Value())

	result := g.HandleMessage(key(terminal.KeyEnter))
	assert.True(t, hasCommand[runtime.CellEdited](result))
	assert.False(t, g.Editor().Active())
	assert.Equal(t, []string{"row-1", "age", "37"}, got)
}

func TestEscapeCancelsEdit(t *testing.T) {
	calls := 0
	g, _ := newTestGrid(Options{
		Persist: func(string, string, string) error { calls++; return nil },
	})

	g.HandleMessage(press(16, 1))
	g.HandleMessage(release(16, 1))
	g.HandleMessage(press(16, 1))
	require.True(t, g.Editor().Active())

	g.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRune, Rune: '9'})
	g.HandleMessage(key(terminal.KeyEscape))

	assert.False(t, g.Editor().Active())
	assert.Zero(t, calls, "cancel never persists")
}

func TestClickElsewhereCommitsEdit(t *testing.T) {
	var got string
	g, _ := newTestGrid(Options{
		Persist: func(_, _, value string) error { got = value; return nil },
	})

	g.HandleMessage(press(16, 1))
	g.HandleMessage(release(16, 1))
	g.HandleMessage(press(16, 1)) // edit age=36
	g.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRune, Rune: '0'})

	g.HandleMessage(press(6, 3)) // blur path
	g.HandleMessage(release(6, 3))

	assert.False(t, g.Editor().Active())
	assert.Equal(t, "360", got)
}

func TestResizeHandleDragIsNotASelectionDrag(t *testing.T) {
	var resizedID string
	var resizedWidth int
	g, src := newTestGrid(Options{
		SetWidth: func(columnID string, width int) {
			resizedID = columnID
			resizedWidth = width
		},
	})

	before := g.Selection().Cells().Len()
	result := g.HandleMessage(press(14, 0)) // handle of column 1
	assert.True(t, hasCommand[runtime.CaptureMouse](result))
	assert.True(t, g.Resizer().Active())
	assert.Equal(t, before, g.Selection().Cells().Len(), "handle press starts no selection")

	g.HandleMessage(move(18, 0))
	result = g.HandleMessage(release(18, 0))
	assert.True(t, hasCommand[runtime.ColumnResized](result))

	assert.Equal(t, "name", resizedID)
	assert.Equal(t, 14, resizedWidth) // 10 + (18-14)
	assert.Equal(t, 14, g.Resizer().Width(src.Columns()[0]))
}

func TestKeyboardNavigationAndSelectAll(t *testing.T) {
	g, _ := newTestGrid(Options{})

	g.HandleMessage(key(terminal.KeyDown))
	require.NotNil(t, g.Selection().Focus())
	assert.Equal(t, Pos{Row: 0, Col: 1}, *g.Selection().Focus())

	g.HandleMessage(key(terminal.KeyDown))
	g.HandleMessage(key(terminal.KeyRight))
	assert.Equal(t, Pos{Row: 1, Col: 2}, *g.Selection().Focus())

	shiftDown := key(terminal.KeyDown)
	shiftDown.Shift = true
	g.HandleMessage(shiftDown)
	assert.Equal(t, 2, g.Selection().Cells().Len())

	g.HandleMessage(key(terminal.KeyCtrlA))
	assert.Equal(t, 9, g.Selection().Cells().Len())

	g.HandleMessage(key(terminal.KeyEscape))
	assert.Equal(t, 0, g.Selection().Cells().Len())
}

func TestHomeEndKeys(t *testing.T) {
	g, _ := newTestGrid(Options{})

	g.HandleMessage(key(terminal.KeyDown)) // focus (0,1)
	g.HandleMessage(key(terminal.KeyEnd))
	assert.Equal(t, Pos{Row: 0, Col: 3}, *g.Selection().Focus())

	g.HandleMessage(key(terminal.KeyHome))
	assert.Equal(t, Pos{Row: 0, Col: 1}, *g.Selection().Focus())
}

func TestPageKeysMoveByViewportAndClamp(t *testing.T) {
	g, _ := newTestGrid(Options{})

	g.HandleMessage(key(terminal.KeyDown)) // focus (0,1)
	g.HandleMessage(key(terminal.KeyPageDown))
	assert.Equal(t, Pos{Row: 2, Col: 1}, *g.Selection().Focus())

	g.HandleMessage(key(terminal.KeyPageUp))
	assert.Equal(t, Pos{Row: 0, Col: 1}, *g.Selection().Focus())
}

func TestCtrlCCopiesSelection(t *testing.T) {
	clip := clipboard.NewMemory()
	g, _ := newTestGrid(Options{Clipboard: clip})

	g.HandleMessage(press(2, 1)) // entire row 0
	g.HandleMessage(release(2, 1))
	g.HandleMessage(key(terminal.KeyCtrlC))

	assert.Eventually(t, func() bool {
		got, _ := clip.Read()
		return got == "Ada\t36\tLondon"
	}, time.Second, 5*time.Millisecond)
}

func TestAutoCopyAfterDrag(t *testing.T) {
	clip := clipboard.NewMemory()
	g, _ := newTestGrid(Options{
		Clipboard:     clip,
		AutoCopy:      true,
		AutoCopyDelay: 10 * time.Millisecond,
	})

	g.HandleMessage(press(6, 1))
	g.HandleMessage(move(26, 2))
	g.HandleMessage(release(26, 2))

	assert.Eventually(t, func() bool { return clip.Writes() == 1 }, time.Second, 5*time.Millisecond)
	got, err := clip.Read()
	require.NoError(t, err)
	assert.Equal(t, "Ada\t36\tLondon\nBo\t41\tOslo", got)
}

func TestRenderShowsHeaderGutterAndValues(t *testing.T) {
	g, _ := newTestGrid(Options{})
	g.HandleMessage(press(6, 1))
	g.HandleMessage(release(6, 1))

	buf := runtime.NewBuffer(40, 10)
	g.Render(runtime.RenderContext{
		Buffer: buf,
		Theme:  theme.DefaultTheme(),
		Bounds: runtime.Rect{X: 0, Y: 0, Width: 40, Height: 10},
	})

	// Header titles.
	assert.Equal(t, 'n', buf.Get(5, 0).Rune)
	// Row numbers, right-aligned in the gutter.
	assert.Equal(t, '1', buf.Get(3, 1).Rune)
	// Cell values.
	assert.Equal(t, 'A', buf.Get(5, 1).Rune)
	assert.Equal(t, 'O', buf.Get(25, 2).Rune)
	// Column separator glyph at the header boundary.
	assert.Equal(t, '│', buf.Get(14, 0).Rune)
}

func TestSelectionChangedCommandReportsExtent(t *testing.T) {
	g, _ := newTestGrid(Options{})

	g.HandleMessage(press(6, 1))
	result := g.HandleMessage(move(18, 2))
	_ = result
	result = g.HandleMessage(release(18, 2))

	var found bool
	for _, cmd := range result.Commands {
		if sc, ok := cmd.(runtime.SelectionChanged); ok {
			found = true
			assert.Equal(t, 4, sc.Cells)
			assert.Equal(t, 2, sc.Rows)
			assert.Equal(t, 2, sc.Cols)
		}
	}
	assert.True(t, found)
}

func TestWheelScrolls(t *testing.T) {
	g, _ := newTestGrid(Options{})

	g.HandleMessage(runtime.MouseMsg{X: 10, Y: 2, Button: runtime.MouseWheelDown, Action: runtime.MousePress})
	// Three data rows fit the viewport, so the offset stays clamped at 0.
	assert.Equal(t, 0, g.rowOffset)
}
