package model

import (
	"testing"
	"time"

	"custview/internal/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rows(ids ...string) []customer.Summary {
	out := make([]customer.Summary, len(ids))
	for i, id := range ids {
		out[i] = customer.Summary{ID: id, Name: "customer " + id}
	}
	return out
}

func TestSelection_SelectReplacesPrevious(t *testing.T) {
	var s Selection
	_, ok := s.ID()
	assert.False(t, ok)

	s.Select("1")
	s.Select("2")

	id, ok := s.ID()
	assert.True(t, ok)
	assert.Equal(t, "2", id)
	assert.True(t, s.Is("2"))
	assert.False(t, s.Is("1"))
	assert.False(t, s.Is(""))
}

func TestSelection_ResolveAfterRebuild(t *testing.T) {
	var s Selection
	s.Select("3")

	idx, ok := s.Resolve(rows("1", "2", "3"))
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	// Rebuilt list without the customer: nothing resolves, nothing dangles.
	_, ok = s.Resolve(rows("1", "2"))
	assert.False(t, ok)

	s.Clear()
	_, ok = s.Resolve(rows("3"))
	assert.False(t, ok)
}

func TestModel_DetailGenerations(t *testing.T) {
	m := InitializeModel(TUIConfig{})

	ctxA, genA := m.BeginDetailLoad("A")
	ctxB, genB := m.BeginDetailLoad("B")

	assert.NotEqual(t, genA, genB)
	assert.Error(t, ctxA.Err(), "superseded request must be cancelled")
	assert.NoError(t, ctxB.Err())

	assert.False(t, m.FinishDetailLoad(genA))
	assert.True(t, m.IsLoadingDetail)
	assert.True(t, m.FinishDetailLoad(genB))
	assert.False(t, m.IsLoadingDetail)
	assert.Error(t, ctxB.Err(), "finished request releases its context")
}

func TestModel_ListGenerations(t *testing.T) {
	m := InitializeModel(TUIConfig{})
	first := m.BeginListLoad()
	second := m.BeginListLoad()

	assert.False(t, m.FinishListLoad(first))
	assert.True(t, m.FinishListLoad(second))
	assert.False(t, m.IsLoadingList)
}

func TestModel_SelectedDetail(t *testing.T) {
	m := InitializeModel(TUIConfig{})
	_, ok := m.SelectedDetail()
	assert.False(t, ok)

	m.Selection.Select("1")
	m.Detail = &customer.Detail{Fields: []customer.Field{{Key: "k", Value: "v"}}}
	m.DetailFor = "2"
	_, ok = m.SelectedDetail()
	assert.False(t, ok, "detail of another customer does not count")

	m.DetailFor = "1"
	d, ok := m.SelectedDetail()
	require.True(t, ok)
	assert.Equal(t, 1, d.Len())
}

func TestModel_ClampCursor(t *testing.T) {
	m := InitializeModel(TUIConfig{})
	m.Customers = rows("1", "2")
	m.Cursor = 5
	m.ClampCursor()
	assert.Equal(t, 1, m.Cursor)

	m.Customers = nil
	m.ClampCursor()
	assert.Equal(t, 0, m.Cursor)
}

func TestModel_SetStatusBar(t *testing.T) {
	m := InitializeModel(TUIConfig{StatusBarTTL: 0})
	cmd := m.SetStatusBar("saved", StatusBarSuccess)
	assert.Nil(t, cmd)
	assert.Equal(t, "saved", m.StatusBarMessage)
	assert.Equal(t, 1, m.StatusBarSeq)

	m.StatusBarTTL = time.Millisecond
	assert.NotNil(t, m.SetStatusBar("again", StatusBarInfo))
	assert.Equal(t, 2, m.StatusBarSeq)
}

func TestAddRawLineToActivityLog_Caps(t *testing.T) {
	m := InitializeModel(TUIConfig{})
	for i := 0; i < MaxActivityLogLines+10; i++ {
		AddRawLineToActivityLog(m, "line")
	}
	assert.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.True(t, m.ActivityLogDirty)
}

func TestDefaultKeyMap_StatusKeys(t *testing.T) {
	km := DefaultKeyMap()
	for i, s := range customer.AllStatuses {
		assert.Equal(t, []string{string(rune('1' + i))}, km.Status[i].Keys())
		assert.Equal(t, s.Label(), km.Status[i].Help().Desc)
	}
	assert.Len(t, km.FullHelp(), 4)
}
