package view

import (
	"custview/internal/customer"
	"custview/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Row classes for the known color labels.
const (
	ClassRed       = "red-background"
	ClassYellow    = "yellow-background"
	ClassLightBlue = "lightblue-background"
	ClassGreen     = "green-background"
)

// ColorClass maps a customer's color label to its row class. Unknown labels
// map to the empty class.
func ColorClass(label string) string {
	switch customer.ParseColor(label) {
	case customer.ColorRed:
		return ClassRed
	case customer.ColorYellow:
		return ClassYellow
	case customer.ColorBlue:
		return ClassLightBlue
	case customer.ColorGreen:
		return ClassGreen
	default:
		return ""
	}
}

// RowStyle returns the list row style for a color label. Rows with an
// unknown label keep the terminal's default background.
func RowStyle(label string) lipgloss.Style {
	return classStyle(ColorClass(label))
}

func classStyle(class string) lipgloss.Style {
	base := design.ListItemStyle
	switch class {
	case ClassRed:
		return base.Background(design.ColorRowRed).Foreground(design.ColorRowText)
	case ClassYellow:
		return base.Background(design.ColorRowYellow).Foreground(design.ColorRowText)
	case ClassLightBlue:
		return base.Background(design.ColorRowLightBlue).Foreground(design.ColorRowText)
	case ClassGreen:
		return base.Background(design.ColorRowGreen).Foreground(design.ColorRowText)
	default:
		return base
	}
}
