// Package widgets contains small supporting widgets for grid hosts.
package widgets

import (
	"github.com/odvcencio/gridkit/pkg/ui/runtime"
)

// StatusBar is a one-line bar showing selection state on the left and a
// transient notice (copy feedback) on the right.
type StatusBar struct {
	bounds runtime.Rect
	left   string
	right  string
}

// NewStatusBar creates an empty status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{left: "ready"}
}

// SetLeft updates the left-hand text.
func (s *StatusBar) SetLeft(text string) { s.left = text }

// SetRight updates the right-hand notice.
func (s *StatusBar) SetRight(text string) { s.right = text }

// Measure wants a single row.
func (s *StatusBar) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{Width: constraints.MaxWidth, Height: 1})
}

// Layout stores the bounds.
func (s *StatusBar) Layout(bounds runtime.Rect) { s.bounds = bounds }

// Bounds reports the laid-out bounds.
func (s *StatusBar) Bounds() runtime.Rect { return s.bounds }

// Render draws the bar.
func (s *StatusBar) Render(ctx runtime.RenderContext) {
	if s.bounds.Empty() {
		return
	}
	th := ctx.Theme
	ctx.Buffer.Fill(s.bounds, ' ', th.Status)
	ctx.Buffer.SetString(s.bounds.X+1, s.bounds.Y, s.left, th.Status)
	if s.right != "" {
		x := s.bounds.X + s.bounds.Width - len(s.right) - 1
		if x > s.bounds.X {
			ctx.Buffer.SetString(x, s.bounds.Y, s.right, th.StatusAccent)
		}
	}
}

// HandleMessage ignores all input.
func (s *StatusBar) HandleMessage(runtime.Message) runtime.HandleResult {
	return runtime.Unhandled()
}
