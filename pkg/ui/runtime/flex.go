package runtime

// FlexDirection specifies the main axis of a flex container.
type FlexDirection int

const (
	Column FlexDirection = iota // Vertical (VBox)
	Row                         // Horizontal (HBox)
)

// FlexChild wraps a widget with flex layout properties.
type FlexChild struct {
	Widget Widget
	Grow   float64 // 0 = fixed at measured/basis size, 1+ = share of remaining space
	Basis  int     // Base size on the main axis (-1 = use measured size)
}

// Fixed creates a child that keeps its measured size.
func Fixed(w Widget) FlexChild {
	return FlexChild{Widget: w, Basis: -1}
}

// Expanded creates a child that grows to fill available space.
func Expanded(w Widget) FlexChild {
	return FlexChild{Widget: w, Grow: 1, Basis: -1}
}

// Sized creates a child with a fixed main-axis size.
func Sized(w Widget, basis int) FlexChild {
	return FlexChild{Widget: w, Basis: basis}
}

// Flex is a container that lays out children along an axis.
type Flex struct {
	Direction FlexDirection
	Children  []FlexChild
	Gap       int

	bounds      Rect
	childBounds []Rect
}

// VBox creates a vertical flex container.
func VBox(children ...FlexChild) *Flex {
	return &Flex{Direction: Column, Children: children}
}

// HBox creates a horizontal flex container.
func HBox(children ...FlexChild) *Flex {
	return &Flex{Direction: Row, Children: children}
}

// Measure returns the container's desired size.
func (f *Flex) Measure(constraints Constraints) Size {
	totalMain, maxCross := 0, 0
	for _, child := range f.Children {
		size := f.childSize(child, constraints)
		if f.Direction == Column {
			totalMain += size.Height
			maxCross = max(maxCross, size.Width)
		} else {
			totalMain += size.Width
			maxCross = max(maxCross, size.Height)
		}
	}
	if len(f.Children) > 1 {
		totalMain += f.Gap * (len(f.Children) - 1)
	}
	if f.Direction == Column {
		return constraints.Constrain(Size{Width: maxCross, Height: totalMain})
	}
	return constraints.Constrain(Size{Width: totalMain, Height: maxCross})
}

// Layout positions all children within the given bounds.
// Fixed children get their measured/basis size; the remaining main-axis
// space is split between growing children by their Grow factors.
func (f *Flex) Layout(bounds Rect) {
	f.bounds = bounds
	f.childBounds = make([]Rect, len(f.Children))
	if len(f.Children) == 0 {
		return
	}

	mainAvail := bounds.Height
	if f.Direction == Row {
		mainAvail = bounds.Width
	}
	mainAvail -= f.Gap * (len(f.Children) - 1)

	sizes := make([]int, len(f.Children))
	fixedTotal := 0
	growTotal := 0.0
	for i, child := range f.Children {
		if child.Grow > 0 {
			growTotal += child.Grow
			continue
		}
		size := f.childSize(child, Loose(bounds.Width, bounds.Height))
		if f.Direction == Column {
			sizes[i] = size.Height
		} else {
			sizes[i] = size.Width
		}
		fixedTotal += sizes[i]
	}

	remaining := max(0, mainAvail-fixedTotal)
	distributed := 0
	lastGrow := -1
	for i, child := range f.Children {
		if child.Grow <= 0 {
			continue
		}
		sizes[i] = int(float64(remaining) * child.Grow / growTotal)
		distributed += sizes[i]
		lastGrow = i
	}
	// Rounding leftovers go to the last growing child.
	if lastGrow >= 0 {
		sizes[lastGrow] += remaining - distributed
	}

	offset := 0
	for i, child := range f.Children {
		var cb Rect
		if f.Direction == Column {
			cb = Rect{X: bounds.X, Y: bounds.Y + offset, Width: bounds.Width, Height: sizes[i]}
		} else {
			cb = Rect{X: bounds.X + offset, Y: bounds.Y, Width: sizes[i], Height: bounds.Height}
		}
		f.childBounds[i] = cb
		child.Widget.Layout(cb)
		offset += sizes[i] + f.Gap
	}
}

// Render draws all children.
func (f *Flex) Render(ctx RenderContext) {
	for i, child := range f.Children {
		if i < len(f.childBounds) && f.childBounds[i].Empty() {
			continue
		}
		child.Widget.Render(ctx.Sub(f.childBounds[i]))
	}
}

// HandleMessage offers the message to children in order until one handles it.
func (f *Flex) HandleMessage(msg Message) HandleResult {
	for _, child := range f.Children {
		if result := child.Widget.HandleMessage(msg); result.Handled {
			return result
		}
	}
	return Unhandled()
}

// Bounds returns the container's laid-out bounds.
func (f *Flex) Bounds() Rect {
	return f.bounds
}

// ChildWidgets returns the contained widgets for hit-grid registration.
func (f *Flex) ChildWidgets() []Widget {
	ws := make([]Widget, len(f.Children))
	for i, c := range f.Children {
		ws[i] = c.Widget
	}
	return ws
}

func (f *Flex) childSize(child FlexChild, constraints Constraints) Size {
	if child.Basis >= 0 {
		if f.Direction == Column {
			return Size{Width: constraints.MaxWidth, Height: child.Basis}
		}
		return Size{Width: child.Basis, Height: constraints.MaxHeight}
	}
	return child.Widget.Measure(Constraints{MaxWidth: constraints.MaxWidth, MaxHeight: constraints.MaxHeight})
}
