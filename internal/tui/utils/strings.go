package utils

import "github.com/mattn/go-runewidth"

// TruncateString cuts s to at most width terminal cells, counting wide
// (CJK) runes as two cells.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// TruncateWithTail is TruncateString with a trailing ellipsis when s is cut.
func TruncateWithTail(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight fills s with spaces up to width cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
