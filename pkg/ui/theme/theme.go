// Package theme provides the visual design system for the grid UI.
// Dark, low-contrast surfaces with a warm accent for selection state.
package theme

import (
	"github.com/odvcencio/gridkit/pkg/ui/backend"
)

// Theme defines the complete visual language for the grid widget.
type Theme struct {
	// Core palette
	Background backend.Style // Primary canvas
	Surface    backend.Style // Elevated surfaces (status bar)

	// Text hierarchy
	TextPrimary   backend.Style // Cell content
	TextSecondary backend.Style // Supporting text
	TextMuted     backend.Style // Hints, empty cells

	// Grid chrome
	Header       backend.Style // Column header row
	HeaderActive backend.Style // Header of a column with selected cells
	Gutter       backend.Style // Row-number gutter column
	GutterActive backend.Style // Gutter of a row with selected cells
	GridLine     backend.Style // Column separators

	// Cell states
	Selection   backend.Style // Cells inside the current selection
	FocusCell   backend.Style // The focus corner of the selection
	CopiedFlash backend.Style // Transient highlight after a clipboard copy
	EditCell    backend.Style // The cell being edited inline
	ResizeHint  backend.Style // Header border while a resize drag is active

	// Semantic colors
	Success backend.Style
	Warning backend.Style
	Error   backend.Style

	// Status bar
	Status       backend.Style
	StatusAccent backend.Style
}

// DefaultTheme returns the standard dark theme.
func DefaultTheme() *Theme {
	return &Theme{
		Background: backend.DefaultStyle().Background(backend.ColorRGB(14, 14, 18)),
		Surface:    backend.DefaultStyle().Background(backend.ColorRGB(24, 24, 30)),

		TextPrimary:   backend.DefaultStyle().Foreground(backend.ColorRGB(235, 233, 228)),
		TextSecondary: backend.DefaultStyle().Foreground(backend.ColorRGB(158, 156, 148)),
		TextMuted:     backend.DefaultStyle().Foreground(backend.ColorRGB(102, 100, 94)),

		Header:       backend.DefaultStyle().Foreground(backend.ColorRGB(235, 233, 228)).Background(backend.ColorRGB(34, 34, 42)).Bold(true),
		HeaderActive: backend.DefaultStyle().Foreground(backend.ColorRGB(255, 200, 100)).Background(backend.ColorRGB(34, 34, 42)).Bold(true),
		Gutter:       backend.DefaultStyle().Foreground(backend.ColorRGB(120, 118, 110)).Background(backend.ColorRGB(24, 24, 30)),
		GutterActive: backend.DefaultStyle().Foreground(backend.ColorRGB(255, 200, 100)).Background(backend.ColorRGB(24, 24, 30)).Bold(true),
		GridLine:     backend.DefaultStyle().Foreground(backend.ColorRGB(52, 52, 62)),

		Selection:   backend.DefaultStyle().Foreground(backend.ColorRGB(240, 238, 232)).Background(backend.ColorRGB(58, 56, 44)),
		FocusCell:   backend.DefaultStyle().Foreground(backend.ColorRGB(14, 14, 18)).Background(backend.ColorRGB(255, 183, 77)),
		CopiedFlash: backend.DefaultStyle().Foreground(backend.ColorRGB(14, 14, 18)).Background(backend.ColorRGB(134, 239, 172)),
		EditCell:    backend.DefaultStyle().Foreground(backend.ColorRGB(240, 238, 232)).Background(backend.ColorRGB(40, 52, 70)).Underline(true),
		ResizeHint:  backend.DefaultStyle().Foreground(backend.ColorRGB(79, 195, 247)).Bold(true),

		Success: backend.DefaultStyle().Foreground(backend.ColorRGB(134, 239, 172)),
		Warning: backend.DefaultStyle().Foreground(backend.ColorRGB(255, 138, 101)),
		Error:   backend.DefaultStyle().Foreground(backend.ColorRGB(255, 110, 90)),

		Status:       backend.DefaultStyle().Foreground(backend.ColorRGB(158, 156, 148)).Background(backend.ColorRGB(24, 24, 30)),
		StatusAccent: backend.DefaultStyle().Foreground(backend.ColorRGB(255, 183, 77)).Background(backend.ColorRGB(24, 24, 30)).Bold(true),
	}
}

// LightTheme returns a light variant for pale terminals.
func LightTheme() *Theme {
	t := DefaultTheme()
	t.Background = backend.DefaultStyle().Background(backend.ColorRGB(250, 249, 245))
	t.Surface = backend.DefaultStyle().Background(backend.ColorRGB(236, 234, 228))
	t.TextPrimary = backend.DefaultStyle().Foreground(backend.ColorRGB(30, 30, 34))
	t.TextSecondary = backend.DefaultStyle().Foreground(backend.ColorRGB(95, 95, 102))
	t.TextMuted = backend.DefaultStyle().Foreground(backend.ColorRGB(150, 150, 156))
	t.Header = backend.DefaultStyle().Foreground(backend.ColorRGB(30, 30, 34)).Background(backend.ColorRGB(224, 222, 214)).Bold(true)
	t.HeaderActive = backend.DefaultStyle().Foreground(backend.ColorRGB(140, 90, 10)).Background(backend.ColorRGB(224, 222, 214)).Bold(true)
	t.Gutter = backend.DefaultStyle().Foreground(backend.ColorRGB(140, 140, 146)).Background(backend.ColorRGB(236, 234, 228))
	t.GutterActive = backend.DefaultStyle().Foreground(backend.ColorRGB(140, 90, 10)).Background(backend.ColorRGB(236, 234, 228)).Bold(true)
	t.GridLine = backend.DefaultStyle().Foreground(backend.ColorRGB(208, 206, 200))
	t.Selection = backend.DefaultStyle().Foreground(backend.ColorRGB(30, 30, 34)).Background(backend.ColorRGB(255, 236, 190))
	t.FocusCell = backend.DefaultStyle().Foreground(backend.ColorRGB(250, 249, 245)).Background(backend.ColorRGB(200, 130, 20))
	t.CopiedFlash = backend.DefaultStyle().Foreground(backend.ColorRGB(250, 249, 245)).Background(backend.ColorRGB(60, 160, 100))
	t.EditCell = backend.DefaultStyle().Foreground(backend.ColorRGB(30, 30, 34)).Background(backend.ColorRGB(214, 228, 248)).Underline(true)
	t.Status = backend.DefaultStyle().Foreground(backend.ColorRGB(95, 95, 102)).Background(backend.ColorRGB(236, 234, 228))
	t.StatusAccent = backend.DefaultStyle().Foreground(backend.ColorRGB(140, 90, 10)).Background(backend.ColorRGB(236, 234, 228)).Bold(true)
	return t
}

// ByName returns a named theme, falling back to the default.
func ByName(name string) *Theme {
	switch name {
	case "light":
		return LightTheme()
	default:
		return DefaultTheme()
	}
}
