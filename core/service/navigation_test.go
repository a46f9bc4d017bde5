package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigationHistory_Empty(t *testing.T) {
	h := NewNavigationHistory()

	_, ok := h.Current()
	assert.False(t, ok)
	assert.Equal(t, -1, h.Index())
	assert.False(t, h.CanGoBack())
	assert.False(t, h.CanGoForward())

	_, ok = h.Back()
	assert.False(t, ok)
	_, ok = h.Forward()
	assert.False(t, ok)
	assert.Equal(t, -1, h.Index())
	assert.Equal(t, 0, h.ReloadKey())
}

func TestNavigationHistory_VisitPrunesForwardBranch(t *testing.T) {
	h := NewNavigationHistory()

	h.Visit("a")
	h.Visit("b")
	url, ok := h.Back()
	require.True(t, ok)
	assert.Equal(t, "a", url)

	current, _ := h.Current()
	assert.Equal(t, "a", current)

	h.Visit("c")
	_, ok = h.Forward()
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "c"}, h.Entries())
	assert.Equal(t, 1, h.Index())
}

func TestNavigationHistory_BoundariesAreNoOps(t *testing.T) {
	h := NewNavigationHistory()
	h.Visit("a")
	h.Visit("b")
	h.Back()

	key := h.ReloadKey()
	_, ok := h.Back()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Index())
	assert.Equal(t, key, h.ReloadKey())

	url, ok := h.Forward()
	require.True(t, ok)
	assert.Equal(t, "b", url)

	key = h.ReloadKey()
	_, ok = h.Forward()
	assert.False(t, ok)
	assert.Equal(t, 1, h.Index())
	assert.Equal(t, key, h.ReloadKey())
	assert.Equal(t, []string{"a", "b"}, h.Entries())
}

func TestNavigationHistory_ReloadKey(t *testing.T) {
	h := NewNavigationHistory()

	h.Visit("a")
	assert.Equal(t, 1, h.ReloadKey())
	h.Visit("a")
	assert.Equal(t, 2, h.ReloadKey())
	assert.Equal(t, []string{"a", "a"}, h.Entries())

	h.Refresh()
	assert.Equal(t, 3, h.ReloadKey())
	assert.Equal(t, 1, h.Index())

	h.Back()
	assert.Equal(t, 4, h.ReloadKey())
	h.Forward()
	assert.Equal(t, 5, h.ReloadKey())
}

func TestNavigationHistory_EntriesIsACopy(t *testing.T) {
	h := NewNavigationHistory()
	h.Visit("a")

	entries := h.Entries()
	entries[0] = "changed"

	current, _ := h.Current()
	assert.Equal(t, "a", current)
}

func TestNavigationHistory_VisitAfterManyBacks(t *testing.T) {
	h := NewNavigationHistory()
	for _, u := range []string{"a", "b", "c", "d"} {
		h.Visit(u)
	}
	h.Back()
	h.Back()
	h.Back()

	h.Visit("e")
	assert.Equal(t, []string{"a", "e"}, h.Entries())
	assert.True(t, h.CanGoBack())
	assert.False(t, h.CanGoForward())
}
