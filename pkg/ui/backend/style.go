package backend

// Color is a terminal color. Values 0-255 address the terminal
// palette; a value with the RGB bit set carries a packed 24-bit color.
type Color int32

const (
	ColorDefault Color = -1
	ColorBlack   Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorBlue    Color = 4
	ColorMagenta Color = 5
	ColorCyan    Color = 6
	ColorWhite   Color = 7

	ColorBrightBlack   Color = 8
	ColorBrightRed     Color = 9
	ColorBrightGreen   Color = 10
	ColorBrightYellow  Color = 11
	ColorBrightBlue    Color = 12
	ColorBrightMagenta Color = 13
	ColorBrightCyan    Color = 14
	ColorBrightWhite   Color = 15
)

const rgbBit = 0x01000000

// ColorRGB packs RGB components into a true color.
func ColorRGB(r, g, b uint8) Color {
	return Color(int32(r)<<16 | int32(g)<<8 | int32(b) | rgbBit)
}

// IsRGB reports whether this is a packed true color rather than a
// palette index.
func (c Color) IsRGB() bool {
	return c&rgbBit != 0
}

// RGB unpacks a true color; palette colors yield 0, 0, 0.
func (c Color) RGB() (r, g, b uint8) {
	if !c.IsRGB() {
		return 0, 0, 0
	}
	return uint8((c >> 16) & 0xFF), uint8((c >> 8) & 0xFF), uint8(c & 0xFF)
}

// AttrMask is a bit set of text attributes.
type AttrMask uint32

const (
	AttrBold AttrMask = 1 << iota
	AttrBlink
	AttrReverse
	AttrUnderline
	AttrDim
	AttrItalic
	AttrStrikeThrough
)

// Style is the visual style of one screen cell: foreground, background,
// and attribute bits. Styles are immutable values; the setters return
// modified copies, so theme slots can be built up fluently and shared.
type Style struct {
	fg    Color
	bg    Color
	attrs AttrMask
}

// DefaultStyle returns the terminal's default colors with no attributes.
func DefaultStyle() Style {
	return Style{fg: ColorDefault, bg: ColorDefault}
}

// Foreground returns a copy with the foreground color set.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	return s
}

// Background returns a copy with the background color set.
func (s Style) Background(c Color) Style {
	s.bg = c
	return s
}

// withAttr returns a copy with one attribute bit set or cleared.
func (s Style) withAttr(mask AttrMask, on bool) Style {
	if on {
		s.attrs |= mask
	} else {
		s.attrs &^= mask
	}
	return s
}

func (s Style) Bold(on bool) Style          { return s.withAttr(AttrBold, on) }
func (s Style) Italic(on bool) Style        { return s.withAttr(AttrItalic, on) }
func (s Style) Dim(on bool) Style           { return s.withAttr(AttrDim, on) }
func (s Style) Underline(on bool) Style     { return s.withAttr(AttrUnderline, on) }
func (s Style) Reverse(on bool) Style       { return s.withAttr(AttrReverse, on) }
func (s Style) Blink(on bool) Style         { return s.withAttr(AttrBlink, on) }
func (s Style) StrikeThrough(on bool) Style { return s.withAttr(AttrStrikeThrough, on) }

// Attributes returns the attribute bits.
func (s Style) Attributes() AttrMask {
	return s.attrs
}

// FG returns the foreground color.
func (s Style) FG() Color {
	return s.fg
}

// BG returns the background color.
func (s Style) BG() Color {
	return s.bg
}

// Decompose splits the style into its parts for backend conversion.
func (s Style) Decompose() (fg, bg Color, attrs AttrMask) {
	return s.fg, s.bg, s.attrs
}
