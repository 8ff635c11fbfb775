package grid

import "github.com/odvcencio/gridkit/pkg/logging"

// WidthSetter is the injected callback invoked with the final width
// when a resize gesture ends. May be nil.
type WidthSetter func(columnID string, width int)

// Resizer owns the column-width map and runs pointer-driven resize
// gestures. Widths have a hard minimum floor and no maximum. Resize
// gestures are mutually exclusive with selection drags; the widget
// routes a press to exactly one of the two.
type Resizer struct {
	widths       map[string]int // created lazily on first resize per column
	minWidth     int
	defaultWidth int
	setWidth     WidthSetter
	logger       *logging.Logger

	active     bool
	columnID   string
	startX     int
	startWidth int
}

// NewResizer creates a resizer with the given width bounds.
// logger may be nil.
func NewResizer(minWidth, defaultWidth int, setWidth WidthSetter, logger *logging.Logger) *Resizer {
	if minWidth < 1 {
		minWidth = 1
	}
	if defaultWidth < minWidth {
		defaultWidth = minWidth
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Resizer{
		widths:       make(map[string]int),
		minWidth:     minWidth,
		defaultWidth: defaultWidth,
		setWidth:     setWidth,
		logger:       logger,
	}
}

// Width returns the effective width of a column: the stored width if
// one exists, the column's own preferred width otherwise, the default
// as a last resort.
func (r *Resizer) Width(col Column) int {
	if w, ok := r.widths[col.ID]; ok {
		return w
	}
	if col.Width > 0 {
		return max(col.Width, r.minWidth)
	}
	return r.defaultWidth
}

// MinWidth returns the width floor.
func (r *Resizer) MinWidth() int {
	return r.minWidth
}

// Active reports whether a resize gesture is in progress.
func (r *Resizer) Active() bool {
	return r.active
}

// ActiveColumn returns the column being resized, or "".
func (r *Resizer) ActiveColumn() string {
	if !r.active {
		return ""
	}
	return r.columnID
}

// BeginResize starts a gesture on a column at the given pointer X.
func (r *Resizer) BeginResize(col Column, pointerX int) {
	r.active = true
	r.columnID = col.ID
	r.startX = pointerX
	r.startWidth = r.Width(col)
}

// PointerMove updates the live width from the pointer position:
// starting width plus the X delta, clamped to the floor.
func (r *Resizer) PointerMove(pointerX int) {
	if !r.active {
		return
	}
	width := r.startWidth + (pointerX - r.startX)
	if width < r.minWidth {
		width = r.minWidth
	}
	r.widths[r.columnID] = width
}

// EndResize finishes the gesture, persists the final width through the
// injected setter, and releases the gesture state. Idempotent.
func (r *Resizer) EndResize() {
	if !r.active {
		return
	}
	columnID := r.columnID
	width, ok := r.widths[columnID]
	if !ok {
		width = r.startWidth
		r.widths[columnID] = width
	}
	r.active = false
	r.columnID = ""

	if r.setWidth != nil {
		r.setWidth(columnID, width)
	}
	r.logger.Info(logging.CategoryResize, "resize_end", "", map[string]any{
		"column": columnID, "width": width,
	})
}

// SetWidth stores a width directly, clamped to the floor. Used when
// restoring persisted widths at startup.
func (r *Resizer) SetWidth(columnID string, width int) {
	if width < r.minWidth {
		width = r.minWidth
	}
	r.widths[columnID] = width
}
