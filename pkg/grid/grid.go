package grid

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/gridkit/pkg/clipboard"
	"github.com/odvcencio/gridkit/pkg/logging"
	"github.com/odvcencio/gridkit/pkg/ui/runtime"
	"github.com/odvcencio/gridkit/pkg/ui/terminal"
)

const (
	doubleClickWindow = 400 * time.Millisecond
	copiedFlashFor    = 800 * time.Millisecond
	wheelStep         = 3
)

// Options configures a Grid. The persistence and width-setter callbacks
// are plain function fields: the dependency-inversion seam between the
// engine and whatever stores the data.
type Options struct {
	Source    Source
	Clipboard clipboard.Clipboard
	Logger    *logging.Logger

	// Persist receives committed cell edits. May be nil.
	Persist PersistFunc
	// SetWidth receives final column widths after a resize. May be nil.
	SetWidth WidthSetter
	// Invalidate schedules a repaint from a background goroutine.
	// Wired to the app's Invalidate; may be nil.
	Invalidate func()

	MinColumnWidth     int
	DefaultColumnWidth int
	GutterWidth        int

	// AutoCopy copies the selection to the clipboard after it has been
	// stable for AutoCopyDelay.
	AutoCopy      bool
	AutoCopyDelay time.Duration
}

// Grid is the interactive data-grid widget: header row, row-number
// gutter, scrollable data cells, and the full interaction surface
// (click/drag selection, header and gutter range drags, column resize,
// inline editing, clipboard copy).
type Grid struct {
	opts    Options
	src     Source
	logger  *logging.Logger
	sel     *Selection
	drag    *Drag
	editor  *Editor
	resizer *Resizer
	copier  *Copier

	bounds  runtime.Rect
	focused bool

	// Scroll state.
	rowOffset int
	colOffset int // 1-based first visible data column

	// Per-gesture state, mutated at pointer frequency. Kept out of
	// anything the renderer diffs on; the selection set is what drives
	// repaints.
	guard *DragGuard

	lastClickAt   time.Time
	lastClickCell Pos

	flashUntil time.Time
}

// New creates a Grid from options.
func New(opts Options) *Grid {
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.MinColumnWidth < 1 {
		opts.MinColumnWidth = 4
	}
	if opts.DefaultColumnWidth < opts.MinColumnWidth {
		opts.DefaultColumnWidth = opts.MinColumnWidth + 8
	}
	if opts.GutterWidth < 1 {
		opts.GutterWidth = 5
	}
	if opts.AutoCopyDelay <= 0 {
		opts.AutoCopyDelay = 300 * time.Millisecond
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.Unavailable{}
	}

	g := &Grid{
		opts:      opts,
		src:       opts.Source,
		logger:    opts.Logger,
		colOffset: 1,
	}
	g.sel = NewSelection(g.src)
	g.drag = NewDrag(g.sel)
	g.editor = NewEditor(opts.Persist, opts.Logger)
	g.resizer = NewResizer(opts.MinColumnWidth, opts.DefaultColumnWidth, opts.SetWidth, opts.Logger)
	g.copier = NewCopier(opts.Clipboard, opts.AutoCopyDelay, opts.Logger)
	g.copier.OnCopied = func(CellSet) {
		g.flashUntil = time.Now().Add(copiedFlashFor)
		if opts.Invalidate != nil {
			opts.Invalidate()
		}
	}
	return g
}

// Selection exposes the selection model for hosts and tests.
func (g *Grid) Selection() *Selection { return g.sel }

// Editor exposes the edit state machine.
func (g *Grid) Editor() *Editor { return g.editor }

// Resizer exposes the column resize controller.
func (g *Grid) Resizer() *Resizer { return g.resizer }

// Copier exposes the clipboard copier.
func (g *Grid) Copier() *Copier { return g.copier }

// SetSource replaces the data source wholesale, clearing the selection
// and any in-flight edit.
func (g *Grid) SetSource(src Source) {
	g.src = src
	g.sel.Reset(src)
	g.editor.Cancel()
	g.rowOffset = 0
	g.colOffset = 1
}

// Measure wants as much space as offered.
func (g *Grid) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.MaxSize()
}

// Layout stores the widget bounds.
func (g *Grid) Layout(bounds runtime.Rect) {
	g.bounds = bounds
	g.ensureVisible()
}

// Bounds returns the laid-out bounds for mouse hit testing.
func (g *Grid) Bounds() runtime.Rect { return g.bounds }

// CanFocus always returns true.
func (g *Grid) CanFocus() bool { return true }

// Focus marks the grid focused.
func (g *Grid) Focus() { g.focused = true }

// Blur commits any in-flight edit, then drops focus.
func (g *Grid) Blur() {
	g.editor.Confirm()
	g.focused = false
}

// IsFocused reports keyboard focus.
func (g *Grid) IsFocused() bool { return g.focused }

// geometry builds the probe for the current bounds and scroll state.
func (g *Grid) geometry() Geometry {
	return Geometry{
		Bounds: ScreenRect{
			X: g.bounds.X, Y: g.bounds.Y,
			Width: g.bounds.Width, Height: g.bounds.Height,
		},
		GutterWidth:  g.opts.GutterWidth,
		HeaderHeight: 1,
		RowOffset:    g.rowOffset,
		ColOffset:    g.colOffset,
		ColumnWidth:  g.resizer.Width,
	}
}

// HandleMessage routes terminal input to the interaction engine.
func (g *Grid) HandleMessage(msg runtime.Message) runtime.HandleResult {
	switch m := msg.(type) {
	case runtime.MouseMsg:
		return g.handleMouse(m)
	case runtime.KeyMsg:
		return g.handleKey(m)
	}
	return runtime.Unhandled()
}

func (g *Grid) handleMouse(m runtime.MouseMsg) runtime.HandleResult {
	switch m.Action {
	case runtime.MousePress:
		switch m.Button {
		case runtime.MouseLeft:
			return g.handlePress(m)
		case runtime.MouseWheelUp:
			g.scrollRows(-wheelStep)
			return runtime.Handled()
		case runtime.MouseWheelDown:
			g.scrollRows(wheelStep)
			return runtime.Handled()
		}
		// Only the primary button drives gestures; a second button
		// pressed mid-session is ignored rather than restarting it.
		return runtime.Handled()
	case runtime.MouseMove:
		return g.handleMove(m)
	case runtime.MouseRelease:
		return g.handleRelease()
	}
	return runtime.Unhandled()
}

func (g *Grid) handlePress(m runtime.MouseMsg) runtime.HandleResult {
	geo := g.geometry()

	// The resize handle consumes the press; the header cell under it
	// never sees a selection drag.
	if col, ok := geo.ResizeHandleAt(g.src, m.X, m.Y); ok {
		g.editor.Confirm()
		g.resizer.BeginResize(g.src.Columns()[col-1], m.X)
		return runtime.WithCommand(runtime.CaptureMouse{Widget: g})
	}

	if geo.InHeader(m.Y) {
		g.editor.Confirm()
		if geo.InGutter(m.X) {
			// Corner cell above the gutter selects the whole grid.
			g.sel.SelectAll()
			g.afterSelectionChange()
			return g.selectionResult()
		}
		col, ok := geo.ColumnAt(g.src, m.X)
		if !ok {
			return runtime.Handled()
		}
		g.guard = g.drag.StartColumns(col)
		g.afterSelectionChange()
		return g.selectionResult(runtime.CaptureMouse{Widget: g})
	}

	if geo.InGutter(m.X) {
		g.editor.Confirm()
		row, ok := geo.RowAt(g.src, m.Y)
		if !ok {
			return runtime.Handled()
		}
		g.guard = g.drag.StartRows(row)
		g.afterSelectionChange()
		return g.selectionResult(runtime.CaptureMouse{Widget: g})
	}

	box, ok := geo.CellAt(g.src, m.X, m.Y)
	if !ok {
		return runtime.Handled()
	}

	if m.Shift {
		g.editor.Confirm()
		g.sel.ShiftClick(box.Pos)
		g.afterSelectionChange()
		return g.selectionResult()
	}

	now := time.Now()
	if box.Pos == g.lastClickCell && now.Sub(g.lastClickAt) <= doubleClickWindow {
		g.lastClickAt = time.Time{}
		g.beginEdit(box.Coord)
		return runtime.Handled()
	}
	g.lastClickAt = now
	g.lastClickCell = box.Pos

	// Clicking another cell while editing is the blur path: commit.
	g.editor.Confirm()
	g.guard = g.drag.StartCells(box.Pos)
	g.afterSelectionChange()
	return g.selectionResult(runtime.CaptureMouse{Widget: g})
}

func (g *Grid) handleMove(m runtime.MouseMsg) runtime.HandleResult {
	if g.resizer.Active() {
		g.resizer.PointerMove(m.X)
		return runtime.Handled()
	}
	if !g.drag.Active() {
		return runtime.Unhandled()
	}

	geo := g.geometry()
	switch g.drag.Kind() {
	case DragCells:
		// A miss keeps the drag alive without touching the selection
		// until the pointer finds a cell again.
		if box, ok := geo.CellAt(g.src, m.X, m.Y); ok {
			g.drag.MoveCell(box.Pos)
			g.afterSelectionChange()
		}
	case DragColumns:
		if col, ok := geo.ColumnAt(g.src, m.X); ok {
			g.drag.MoveColumn(col)
			g.afterSelectionChange()
		}
	case DragRows:
		if row, ok := geo.RowAt(g.src, m.Y); ok {
			g.drag.MoveRow(row)
			g.afterSelectionChange()
		}
	}
	return runtime.Handled()
}

func (g *Grid) handleRelease() runtime.HandleResult {
	if g.resizer.Active() {
		colID := g.resizer.ActiveColumn()
		g.resizer.EndResize()
		width := 0
		for _, col := range g.src.Columns() {
			if col.ID == colID {
				width = g.resizer.Width(col)
			}
		}
		return runtime.WithCommands(
			runtime.ReleaseMouse{},
			runtime.ColumnResized{ColumnID: colID, Width: width},
		)
	}

	if g.guard.Active() {
		g.guard.Release()
		g.guard = nil
		g.logger.Debug(logging.CategorySelection, "drag_end", "", map[string]any{
			"cells": g.sel.Cells().Len(),
		})
		return g.selectionResult(runtime.ReleaseMouse{})
	}
	return runtime.WithCommand(runtime.ReleaseMouse{})
}

func (g *Grid) handleKey(m runtime.KeyMsg) runtime.HandleResult {
	if g.editor.Active() {
		return g.handleEditKey(m)
	}

	switch m.Key {
	case terminal.KeyUp:
		g.sel.ArrowKey(DirUp, m.Shift)
	case terminal.KeyDown:
		g.sel.ArrowKey(DirDown, m.Shift)
	case terminal.KeyLeft:
		g.sel.ArrowKey(DirLeft, m.Shift)
	case terminal.KeyRight:
		g.sel.ArrowKey(DirRight, m.Shift)
	case terminal.KeyHome:
		g.moveFocusToColumn(1, m.Shift)
	case terminal.KeyEnd:
		g.moveFocusToColumn(len(g.src.Columns()), m.Shift)
	case terminal.KeyPageUp:
		g.pageMove(-g.visibleRows(), m.Shift)
	case terminal.KeyPageDown:
		g.pageMove(g.visibleRows(), m.Shift)
	case terminal.KeyCtrlA:
		g.sel.SelectAll()
	case terminal.KeyCtrlC:
		g.copier.CopyAsync(g.sel.Cells(), g.src)
		return runtime.Handled()
	case terminal.KeyEnter, terminal.KeyF2:
		g.beginEditAtFocus()
		return runtime.Handled()
	case terminal.KeyEscape:
		g.sel.Clear()
		g.afterSelectionChange()
		return g.selectionResult()
	default:
		return runtime.Unhandled()
	}

	g.ensureVisible()
	g.afterSelectionChange()
	return g.selectionResult()
}

func (g *Grid) handleEditKey(m runtime.KeyMsg) runtime.HandleResult {
	switch m.Key {
	case terminal.KeyEnter:
		cell := *g.editor.Cell()
		value := g.editor.Value()
		g.editor.Confirm()
		return runtime.WithCommand(runtime.CellEdited{
			RowID: cell.RowID, ColumnID: cell.ColumnID, Value: value,
		})
	case terminal.KeyEscape:
		g.editor.Cancel()
		return runtime.Handled()
	case terminal.KeyBackspace:
		v := []rune(g.editor.Value())
		if len(v) > 0 {
			g.editor.SetValue(string(v[:len(v)-1]))
		}
		return runtime.Handled()
	case terminal.KeyRune:
		g.editor.SetValue(g.editor.Value() + string(m.Rune))
		return runtime.Handled()
	}
	// Anything else is swallowed so navigation cannot run mid-edit.
	return runtime.Handled()
}

func (g *Grid) beginEditAtFocus() {
	focus := g.sel.Focus()
	if focus == nil {
		return
	}
	cols := g.src.Columns()
	if focus.Col < 1 || focus.Col > len(cols) {
		return
	}
	g.beginEdit(Coord{
		RowID:    g.src.RowID(focus.Row),
		ColumnID: cols[focus.Col-1].ID,
	})
}

func (g *Grid) beginEdit(cell Coord) {
	initial, _ := g.src.Value(cell.RowID, cell.ColumnID)
	g.editor.Begin(cell.RowID, cell.ColumnID, initial)
}

func (g *Grid) moveFocusToColumn(col int, extend bool) {
	focus := g.sel.Focus()
	if focus == nil {
		g.sel.Click(Pos{Row: 0, Col: col})
		return
	}
	target := Pos{Row: focus.Row, Col: col}
	if extend {
		g.sel.ShiftClick(target)
	} else {
		g.sel.Click(target)
	}
}

func (g *Grid) pageMove(delta int, extend bool) {
	focus := g.sel.Focus()
	if focus == nil {
		g.sel.Click(Pos{Row: 0, Col: 1})
		return
	}
	target := Pos{Row: focus.Row + delta, Col: focus.Col}
	if extend {
		g.sel.ShiftClick(target)
	} else {
		g.sel.Click(target)
	}
}

func (g *Grid) scrollRows(delta int) {
	maxOffset := max(0, g.src.RowCount()-g.visibleRows())
	g.rowOffset = clampInt(g.rowOffset+delta, 0, maxOffset)
}

func (g *Grid) visibleRows() int {
	return max(1, g.bounds.Height-1)
}

// ensureVisible scrolls so the focus cell stays on screen.
func (g *Grid) ensureVisible() {
	focus := g.sel.Focus()
	if focus == nil || g.bounds.Empty() {
		return
	}

	rows := g.visibleRows()
	if focus.Row < g.rowOffset {
		g.rowOffset = focus.Row
	} else if focus.Row >= g.rowOffset+rows {
		g.rowOffset = focus.Row - rows + 1
	}

	if focus.Col < g.colOffset {
		g.colOffset = max(1, focus.Col)
		return
	}
	// Walk forward until the focus column's right edge fits.
	cols := g.src.Columns()
	avail := g.bounds.Width - g.opts.GutterWidth
	for g.colOffset < focus.Col {
		used := 0
		fits := false
		for c := g.colOffset; c <= focus.Col && c <= len(cols); c++ {
			used += g.resizer.Width(cols[c-1])
			if c == focus.Col && used <= avail {
				fits = true
			}
		}
		if fits {
			break
		}
		g.colOffset++
	}
}

// afterSelectionChange runs the debounced auto-copy.
func (g *Grid) afterSelectionChange() {
	if g.opts.AutoCopy {
		g.copier.AutoCopy(g.sel.Cells(), g.src)
	}
}

// selectionResult reports the selection extent upward along with any
// additional commands.
func (g *Grid) selectionResult(extra ...runtime.Command) runtime.HandleResult {
	rows, cols := g.selectionExtent()
	cmds := append(extra, runtime.SelectionChanged{
		Cells: g.sel.Cells().Len(),
		Rows:  rows,
		Cols:  cols,
	})
	return runtime.WithCommands(cmds...)
}

func (g *Grid) selectionExtent() (rows, cols int) {
	anchor, focus := g.sel.Anchor(), g.sel.Focus()
	if anchor == nil || focus == nil {
		return 0, 0
	}
	dr := anchor.Row - focus.Row
	if dr < 0 {
		dr = -dr
	}
	dc := anchor.Col - focus.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + 1, dc + 1
}

// Render draws the header, gutter, and visible data cells.
func (g *Grid) Render(ctx runtime.RenderContext) {
	if g.bounds.Empty() {
		return
	}
	th := ctx.Theme
	buf := ctx.Buffer
	buf.Fill(g.bounds, ' ', th.Surface)

	geo := g.geometry()
	cols := g.src.Columns()
	flash := time.Now().Before(g.flashUntil)
	copied := g.copier.CopiedCells()
	selected := g.sel.Cells()
	focus := g.sel.Focus()

	// Selected row/column indices light up the matching gutter and
	// header cells.
	selRows := make(map[int]bool)
	selCols := make(map[int]bool)
	if focus != nil {
		anchor := g.sel.Anchor()
		rowLo, rowHi := normalize(anchor.Row, focus.Row, 0, g.src.RowCount()-1)
		colLo, colHi := normalize(anchor.Col, focus.Col, 1, len(cols))
		for r := rowLo; r <= rowHi; r++ {
			selRows[r] = true
		}
		for c := colLo; c <= colHi; c++ {
			selCols[c] = true
		}
	}

	// Header row.
	y := g.bounds.Y
	corner := padTruncate("", g.opts.GutterWidth)
	buf.SetString(g.bounds.X, y, corner, th.Header)
	x := g.bounds.X + g.opts.GutterWidth
	right := g.bounds.X + g.bounds.Width
	for c := g.colOffset; c >= 1 && c <= len(cols) && x < right; c++ {
		col := cols[c-1]
		w := g.resizer.Width(col)
		visible := min(w, right-x)
		style := th.Header
		if selCols[c] {
			style = th.HeaderActive
		}
		if visible > 1 {
			buf.SetString(x, y, padTruncate(col.Title, visible-1), style)
		}
		handle := th.Header
		if g.resizer.Active() && g.resizer.ActiveColumn() == col.ID {
			handle = th.ResizeHint
		}
		buf.Set(x+visible-1, y, '│', handle)
		x += w
	}

	// Data rows.
	dataTop := g.bounds.Y + 1
	for row := g.rowOffset; row < g.src.RowCount(); row++ {
		ry := dataTop + (row - g.rowOffset)
		if ry >= g.bounds.Y+g.bounds.Height {
			break
		}
		gutterStyle := th.Gutter
		if selRows[row] {
			gutterStyle = th.GutterActive
		}
		label := strconv.Itoa(row + 1)
		buf.SetString(g.bounds.X, ry, padLeft(label, g.opts.GutterWidth-1)+" ", gutterStyle)
	}

	editing := g.editor.Cell()
	for _, box := range geo.LocateCells(g.src) {
		style := th.TextPrimary.Background(th.Surface.BG())
		text, _ := g.src.Value(box.Coord.RowID, box.Coord.ColumnID)

		switch {
		case editing != nil && *editing == box.Coord:
			style = th.EditCell
			text = g.editor.Value() + "▏"
		case focus != nil && box.Pos == *focus:
			style = th.FocusCell
		case flash && copied.Has(box.Coord):
			style = th.CopiedFlash
		case selected.Has(box.Coord):
			style = th.Selection
		}

		buf.SetString(box.Rect.X, box.Rect.Y, padTruncate(text, box.Rect.Width), style)
	}
}

// StatusText summarizes the selection for a status bar.
func (g *Grid) StatusText() string {
	n := g.sel.Cells().Len()
	if n == 0 {
		return "no selection"
	}
	rows, cols := g.selectionExtent()
	return fmt.Sprintf("%d cells (%d×%d)", n, rows, cols)
}

// padTruncate fits text into exactly width cells, truncating with an
// ellipsis or padding with spaces.
func padTruncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) > width {
		return runewidth.Truncate(text, width, "…")
	}
	return runewidth.FillRight(text, width)
}

// padLeft right-aligns text in width cells.
func padLeft(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) > width {
		return runewidth.Truncate(text, width, "")
	}
	return runewidth.FillLeft(text, width)
}
