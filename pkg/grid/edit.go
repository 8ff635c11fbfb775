package grid

import (
	"fmt"

	"github.com/odvcencio/gridkit/pkg/logging"
)

// PersistFunc is the injected persistence callback invoked when an edit
// is confirmed. May be nil, in which case confirm only clears state.
type PersistFunc func(rowID, columnID, value string) error

// Editor is the inline cell edit state machine. At most one cell is in
// edit at a time; a confirm always returns to idle even when the
// persistence callback fails or panics.
type Editor struct {
	cell    *Coord
	value   string
	persist PersistFunc
	logger  *logging.Logger
}

// NewEditor creates an idle editor. logger may be nil.
func NewEditor(persist PersistFunc, logger *logging.Logger) *Editor {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Editor{persist: persist, logger: logger}
}

// Active reports whether a cell is being edited.
func (e *Editor) Active() bool {
	return e.cell != nil
}

// Cell returns the coord being edited, or nil when idle.
func (e *Editor) Cell() *Coord {
	return e.cell
}

// Value returns the edit buffer. Only meaningful while Active.
func (e *Editor) Value() string {
	return e.value
}

// Begin starts editing a cell with the given initial value. If another
// cell is mid-edit its buffered value is committed first, through the
// same path as blur.
func (e *Editor) Begin(rowID, columnID, initial string) {
	if e.cell != nil {
		e.Confirm()
	}
	e.cell = &Coord{RowID: rowID, ColumnID: columnID}
	e.value = initial
	e.logger.Debug(logging.CategoryEdit, "begin", "", map[string]any{
		"row": rowID, "column": columnID,
	})
}

// SetValue replaces the edit buffer. No-op when idle.
func (e *Editor) SetValue(text string) {
	if e.cell == nil {
		return
	}
	e.value = text
}

// Confirm commits the edit: the persistence callback (if any) gets the
// buffered value, then the editor returns to idle. A failing or
// panicking callback is logged and cannot leave the cell stuck in edit
// mode.
func (e *Editor) Confirm() {
	if e.cell == nil {
		return
	}
	cell, value := *e.cell, e.value
	e.cell = nil
	e.value = ""

	if e.persist == nil {
		return
	}
	if err := e.safePersist(cell, value); err != nil {
		e.logger.Error(logging.CategoryEdit, "persist_failed", err.Error(), map[string]any{
			"row": cell.RowID, "column": cell.ColumnID,
		})
	}
}

// Cancel discards the edit buffer without persisting.
func (e *Editor) Cancel() {
	if e.cell == nil {
		return
	}
	e.cell = nil
	e.value = ""
}

func (e *Editor) safePersist(cell Coord, value string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("persistence callback panicked: %v", r)
		}
	}()
	return e.persist(cell.RowID, cell.ColumnID, value)
}
