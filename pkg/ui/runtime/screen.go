package runtime

import "github.com/odvcencio/gridkit/pkg/ui/theme"

// Screen manages the widget tree, focus, mouse routing, and rendering.
//
// Mouse events are routed through a hit grid built from the laid-out
// widget tree. While a widget holds the mouse capture (CaptureMouse),
// every mouse event goes to that widget regardless of position - the
// guarantee drag gestures rely on to see the terminating release even
// when the pointer has left the widget.
type Screen struct {
	width, height int
	root          Widget
	buffer        *Buffer
	theme         *theme.Theme
	focus         *FocusScope
	hits          *HitGrid
	captured      Widget
}

// NewScreen creates a new screen with the given dimensions.
func NewScreen(w, h int, th *theme.Theme) *Screen {
	if th == nil {
		th = theme.DefaultTheme()
	}
	return &Screen{
		width:  w,
		height: h,
		buffer: NewBuffer(w, h),
		theme:  th,
		focus:  NewFocusScope(),
		hits:   NewHitGrid(w, h),
	}
}

// Size returns the screen dimensions.
func (s *Screen) Size() (w, h int) {
	return s.width, s.height
}

// Resize changes the screen dimensions and re-lays-out the tree.
func (s *Screen) Resize(w, h int) {
	s.width = w
	s.height = h
	s.buffer.Resize(w, h)
	s.hits.Resize(w, h)
	if s.root != nil {
		s.root.Layout(Rect{0, 0, w, h})
	}
	s.rebuildHits()
}

// Buffer returns the screen's render buffer.
func (s *Screen) Buffer() *Buffer {
	return s.buffer
}

// Theme returns the current theme.
func (s *Screen) Theme() *theme.Theme {
	return s.theme
}

// SetTheme changes the theme.
func (s *Screen) SetTheme(th *theme.Theme) {
	s.theme = th
}

// SetRoot sets the root widget and lays it out.
// Focusable widgets in the tree are registered with the focus scope.
func (s *Screen) SetRoot(root Widget) {
	s.root = root
	if root != nil {
		root.Layout(Rect{0, 0, s.width, s.height})
		s.registerFocusables(root)
	}
	s.rebuildHits()
}

// Root returns the root widget.
func (s *Screen) Root() Widget {
	return s.root
}

// FocusScope returns the screen's focus scope.
func (s *Screen) FocusScope() *FocusScope {
	return s.focus
}

// Captured returns the widget currently holding the mouse capture, or nil.
func (s *Screen) Captured() Widget {
	return s.captured
}

// Render draws the widget tree to the buffer.
func (s *Screen) Render() {
	s.buffer.Clear()
	if s.root == nil {
		return
	}
	s.root.Render(RenderContext{
		Buffer: s.buffer,
		Theme:  s.theme,
		Bounds: Rect{0, 0, s.width, s.height},
	})
}

// HandleMessage dispatches a message to the appropriate widget.
// Keys go to the focused widget first, then the root. Mouse events go to
// the capturing widget if any, otherwise to the widget under the pointer.
func (s *Screen) HandleMessage(msg Message) HandleResult {
	switch m := msg.(type) {
	case MouseMsg:
		return s.routeMouse(m)
	case KeyMsg:
		if w := s.focus.Current(); w != nil {
			if result := w.HandleMessage(msg); s.processCommands(result) {
				return result
			}
		}
	}

	if s.root == nil {
		return Unhandled()
	}
	result := s.root.HandleMessage(msg)
	s.processCommands(result)
	return result
}

func (s *Screen) routeMouse(m MouseMsg) HandleResult {
	target := s.captured
	if target == nil {
		target = s.hits.WidgetAt(m.X, m.Y)
	}
	if target == nil {
		return Unhandled()
	}
	result := target.HandleMessage(m)
	s.processCommands(result)
	return result
}

// processCommands handles screen-level commands in place and returns
// whether the originating message was handled. Remaining commands stay
// in the result for the app to process.
func (s *Screen) processCommands(result HandleResult) bool {
	for _, cmd := range result.Commands {
		switch c := cmd.(type) {
		case CaptureMouse:
			s.captured = c.Widget
		case ReleaseMouse:
			s.captured = nil
		case FocusNext:
			s.focus.FocusNext()
		case FocusPrev:
			s.focus.FocusPrev()
		}
	}
	return result.Handled
}

// rebuildHits repopulates the hit grid from the laid-out widget tree.
func (s *Screen) rebuildHits() {
	s.hits.Clear()
	s.addHits(s.root)
}

func (s *Screen) addHits(w Widget) {
	if w == nil {
		return
	}
	if container, ok := w.(Container); ok {
		for _, child := range container.ChildWidgets() {
			s.addHits(child)
		}
		return
	}
	if reporter, ok := w.(BoundsReporter); ok {
		s.hits.Add(w, reporter.Bounds())
	}
}

func (s *Screen) registerFocusables(w Widget) {
	if focusable, ok := w.(Focusable); ok {
		s.focus.Register(focusable)
	}
	if container, ok := w.(Container); ok {
		for _, child := range container.ChildWidgets() {
			s.registerFocusables(child)
		}
	}
}

// RenderContext provides context to widgets during rendering.
type RenderContext struct {
	Buffer *Buffer
	Theme  *theme.Theme
	Bounds Rect // Widget's allocated bounds
}

// Sub creates a new context for a child widget with adjusted bounds.
func (ctx RenderContext) Sub(bounds Rect) RenderContext {
	return RenderContext{
		Buffer: ctx.Buffer,
		Theme:  ctx.Theme,
		Bounds: bounds,
	}
}
