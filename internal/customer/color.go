package customer

// Color is the status-color label attached to a customer summary.
type Color string

const (
	ColorRed    Color = "赤"
	ColorYellow Color = "黄"
	ColorBlue   Color = "青"
	ColorGreen  Color = "緑"
	ColorNone   Color = ""
)

// ParseColor maps unknown labels to ColorNone.
func ParseColor(label string) Color {
	switch c := Color(label); c {
	case ColorRed, ColorYellow, ColorBlue, ColorGreen:
		return c
	default:
		return ColorNone
	}
}

// Known reports whether c is one of the recognized labels.
func (c Color) Known() bool {
	return c != ColorNone && ParseColor(string(c)) == c
}
