package view

import (
	"strings"

	"custview/internal/customer"
	"custview/internal/tui/design"
	"custview/internal/tui/model"
	"custview/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

const (
	cursorMarker   = "›"
	selectedMarker = "●"
)

// Row is one rendered entry of the customer list. It carries the customer
// ID so that a row can always be traced back to its record.
type Row struct {
	ID       string
	Text     string
	Class    string
	Selected bool
	Cursor   bool
}

// BuildRows rebuilds every row from customers. No state from a previous
// build survives.
func BuildRows(customers []customer.Summary, sel model.Selection, cursor int) []Row {
	rows := make([]Row, len(customers))
	for i, c := range customers {
		rows[i] = Row{
			ID:       c.ID,
			Text:     c.Name,
			Class:    ColorClass(string(c.Color)),
			Selected: sel.Is(c.ID),
			Cursor:   i == cursor,
		}
	}
	return rows
}

// RowIDs returns the customer ID behind each row, in display order.
func RowIDs(rows []Row) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

// RenderCustomerList draws the visible window of the list into width cells
// and at most height lines, keeping the cursor row in view.
func RenderCustomerList(m *model.Model, width, height int) string {
	if m.IsLoadingList && len(m.Customers) == 0 {
		return design.DimStyle.Render(m.Spinner.View() + " loading customers...")
	}
	if len(m.Customers) == 0 {
		if m.Query != "" {
			return design.DimStyle.Render("no customers match " + m.Query)
		}
		return design.DimStyle.Render("no customers")
	}
	if height < 1 {
		height = 1
	}

	rows := BuildRows(m.Customers, m.Selection, m.Cursor)
	start := 0
	if m.Cursor >= height {
		start = m.Cursor - height + 1
	}
	end := start + height
	if end > len(rows) {
		end = len(rows)
	}

	lines := make([]string, 0, end-start)
	for _, r := range rows[start:end] {
		lines = append(lines, renderRow(r, width))
	}
	return strings.Join(lines, "\n")
}

func renderRow(r Row, width int) string {
	prefix := "  "
	if r.Cursor {
		prefix = cursorMarker + " "
	}
	suffix := ""
	if r.Selected {
		suffix = " " + selectedMarker
	}
	style := classStyle(r.Class)
	textWidth := width - style.GetHorizontalFrameSize() - lipgloss.Width(prefix) - lipgloss.Width(suffix)
	text := utils.PadRight(utils.TruncateWithTail(r.Text, textWidth), textWidth)
	if r.Selected {
		style = style.Bold(true)
	}
	return style.Render(prefix + text + suffix)
}
