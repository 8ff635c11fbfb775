package runtime

type hitRegion struct {
	bounds Rect
	widget Widget
}

// HitGrid resolves screen positions to the widget that owns them. Widget
// trees here are shallow (a grid plus a few chrome bars), so it keeps the
// laid-out regions as a list and scans it newest-first instead of
// rasterizing ownership per cell.
type HitGrid struct {
	width   int
	height  int
	regions []hitRegion
}

// NewHitGrid creates a hit grid clipped to the given screen size.
func NewHitGrid(width, height int) *HitGrid {
	return &HitGrid{width: width, height: height}
}

// Resize updates the clip size. Regions are rebuilt after every layout
// pass, so stale entries are dropped rather than translated.
func (g *HitGrid) Resize(width, height int) {
	if width == g.width && height == g.height {
		return
	}
	g.width = width
	g.height = height
	g.regions = g.regions[:0]
}

// Clear drops all recorded regions.
func (g *HitGrid) Clear() {
	g.regions = g.regions[:0]
}

// Add records a widget occupying the specified bounds.
// Later additions win on overlap, matching render order.
func (g *HitGrid) Add(widget Widget, bounds Rect) {
	if widget == nil || g.width <= 0 || g.height <= 0 {
		return
	}
	bounds = bounds.Intersection(Rect{X: 0, Y: 0, Width: g.width, Height: g.height})
	if bounds.Empty() {
		return
	}
	g.regions = append(g.regions, hitRegion{bounds: bounds, widget: widget})
}

// WidgetAt returns the widget at the given screen position, or nil when
// the position is off screen or unclaimed.
func (g *HitGrid) WidgetAt(x, y int) Widget {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return nil
	}
	for i := len(g.regions) - 1; i >= 0; i-- {
		if g.regions[i].bounds.Contains(x, y) {
			return g.regions[i].widget
		}
	}
	return nil
}
