package runtime

// Command represents an action/intent emitted by widgets.
// Commands bubble up from widgets to the screen and app for handling.
type Command interface {
	isCommand()
}

// Quit signals the application should exit.
type Quit struct{}

func (Quit) isCommand() {}

// Refresh requests a full screen redraw.
type Refresh struct{}

func (Refresh) isCommand() {}

// FocusNext requests focus move to the next focusable widget.
type FocusNext struct{}

func (FocusNext) isCommand() {}

// FocusPrev requests focus move to the previous focusable widget.
type FocusPrev struct{}

func (FocusPrev) isCommand() {}

// CaptureMouse requests that all subsequent mouse events be routed to the
// given widget regardless of position, until ReleaseMouse.
// Drag gestures use this so that moves and the final release are delivered
// even when the pointer leaves the widget's bounds.
type CaptureMouse struct {
	Widget Widget
}

func (CaptureMouse) isCommand() {}

// ReleaseMouse ends a mouse capture started with CaptureMouse.
type ReleaseMouse struct{}

func (ReleaseMouse) isCommand() {}

// UpdateStatus requests the status bar be updated.
type UpdateStatus struct {
	Text string
}

func (UpdateStatus) isCommand() {}

// SelectionChanged reports the current selection extent for display.
type SelectionChanged struct {
	Cells int
	Rows  int
	Cols  int
}

func (SelectionChanged) isCommand() {}

// CellsCopied reports a successful clipboard copy.
type CellsCopied struct {
	Cells int
}

func (CellsCopied) isCommand() {}

// CellEdited reports a committed inline edit.
type CellEdited struct {
	RowID    string
	ColumnID string
	Value    string
}

func (CellEdited) isCommand() {}

// ColumnResized reports a finished column resize.
type ColumnResized struct {
	ColumnID string
	Width    int
}

func (ColumnResized) isCommand() {}
