package view

import (
	"strings"

	"custview/internal/customer"
	"custview/internal/tui/design"
	"custview/internal/tui/model"
)

// DetailLines renders one "key: value" line per field, in record order.
func DetailLines(d customer.Detail) []string {
	lines := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		lines[i] = f.Key + ": " + f.Value
	}
	return lines
}

// DetailText is the full detail panel text. An empty record yields "".
func DetailText(d customer.Detail) string {
	return strings.Join(DetailLines(d), "\n")
}

// RenderDetail draws the detail panel body. The viewport holds the text of
// the last loaded record; it is shown only while that record belongs to the
// selected customer.
func RenderDetail(m *model.Model, width, height int) string {
	if _, ok := m.Selection.ID(); !ok {
		return design.DimStyle.Render("press enter on a customer to see the details")
	}
	if m.IsLoadingDetail {
		return design.DimStyle.Render(m.Spinner.View() + " loading details...")
	}
	d, ok := m.SelectedDetail()
	if !ok {
		return design.DimStyle.Render("no details loaded")
	}
	if d.Len() == 0 {
		return ""
	}
	m.DetailViewport.Width = width
	m.DetailViewport.Height = height
	return m.DetailViewport.View()
}
