package model

import (
	"context"

	"custview/internal/customer"
)

// Selection tracks the single highlighted customer by ID. It never holds a
// rendered row, so a list rebuild cannot leave it pointing at stale output;
// the row is re-resolved whenever it is needed.
type Selection struct {
	id string
}

// Select makes id the selected customer, replacing any previous selection.
func (s *Selection) Select(id string) {
	s.id = id
}

// Clear drops the selection.
func (s *Selection) Clear() {
	s.id = ""
}

// ID returns the selected customer ID, if any.
func (s Selection) ID() (string, bool) {
	return s.id, s.id != ""
}

// Is reports whether id is the selected customer.
func (s Selection) Is(id string) bool {
	return s.id != "" && s.id == id
}

// Resolve finds the selected customer's row in rows.
func (s Selection) Resolve(rows []customer.Summary) (int, bool) {
	if s.id == "" {
		return -1, false
	}
	for i, r := range rows {
		if r.ID == s.id {
			return i, true
		}
	}
	return -1, false
}

// BeginDetailLoad starts a new detail request for id. Any request still in
// flight is cancelled and its response will be ignored.
func (m *Model) BeginDetailLoad(id string) (context.Context, uint64) {
	if m.cancelDetailLoad != nil {
		m.cancelDetailLoad()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelDetailLoad = cancel
	m.detailGen++
	m.IsLoadingDetail = true
	return ctx, m.detailGen
}

// FinishDetailLoad reports whether a response tagged gen is still current and
// releases the request's context if so.
func (m *Model) FinishDetailLoad(gen uint64) bool {
	if gen != m.detailGen {
		return false
	}
	if m.cancelDetailLoad != nil {
		m.cancelDetailLoad()
		m.cancelDetailLoad = nil
	}
	m.IsLoadingDetail = false
	return true
}

// DetailGeneration returns the tag of the most recent detail request.
func (m *Model) DetailGeneration() uint64 {
	return m.detailGen
}

// BeginListLoad tags a new list request; older responses are discarded.
func (m *Model) BeginListLoad() uint64 {
	m.listGen++
	m.IsLoadingList = true
	return m.listGen
}

// FinishListLoad reports whether a list response tagged gen is still current.
func (m *Model) FinishListLoad(gen uint64) bool {
	if gen != m.listGen {
		return false
	}
	m.IsLoadingList = false
	return true
}

// SelectedDetail returns the loaded detail record when it belongs to the
// selected customer.
func (m *Model) SelectedDetail() (*customer.Detail, bool) {
	id, ok := m.Selection.ID()
	if !ok || m.Detail == nil || m.DetailFor != id {
		return nil, false
	}
	return m.Detail, true
}

// ClampCursor keeps the list cursor inside the current rows.
func (m *Model) ClampCursor() {
	if m.Cursor >= len(m.Customers) {
		m.Cursor = len(m.Customers) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}
