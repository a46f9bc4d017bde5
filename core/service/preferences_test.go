package service

import (
	"errors"
	"path/filepath"
	"testing"

	"nfcunha/porthole/core/models"
	"nfcunha/porthole/core/repository"
	"nfcunha/porthole/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-memory KeyValueStore. When broken is set every call fails.
type memoryStore struct {
	data   map[string]string
	broken bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string]string)}
}

func (m *memoryStore) Get(key string) (string, error) {
	if m.broken {
		return "", errors.New("storage disabled")
	}
	value, ok := m.data[key]
	if !ok {
		return "", repository.ErrPreferenceNotFound
	}
	return value, nil
}

func (m *memoryStore) Set(key, value string) error {
	if m.broken {
		return errors.New("storage disabled")
	}
	m.data[key] = value
	return nil
}

func TestPreferenceService_Defaults(t *testing.T) {
	prefs := NewPreferenceService(newMemoryStore())

	assert.Equal(t, "localhost", prefs.Hostname())
	assert.Equal(t, models.SortNameAsc, prefs.SortOption())
}

func TestPreferenceService_RoundTrip(t *testing.T) {
	prefs := NewPreferenceService(newMemoryStore())

	prefs.SetHostname("example.com")
	prefs.SetSortOption(models.SortCreatedDesc)

	assert.Equal(t, models.Preferences{Hostname: "example.com", SortOption: models.SortCreatedDesc}, prefs.Preferences())
}

func TestPreferenceService_HostnameIsNotValidated(t *testing.T) {
	prefs := NewPreferenceService(newMemoryStore())

	prefs.SetHostname("not a host:/")
	assert.Equal(t, "not a host:/", prefs.Hostname())
}

func TestPreferenceService_UnknownSortFallsBack(t *testing.T) {
	store := newMemoryStore()
	store.data[sortOptionKey] = "size-desc"

	assert.Equal(t, models.SortNameAsc, NewPreferenceService(store).SortOption())
}

func TestPreferenceService_UnavailableStorage(t *testing.T) {
	store := newMemoryStore()
	store.broken = true
	prefs := NewPreferenceService(store)

	assert.NotPanics(t, func() {
		prefs.SetHostname("example.com")
		prefs.SetSortOption(models.SortNameDesc)
	})
	assert.Equal(t, "localhost", prefs.Hostname())
	assert.Equal(t, models.SortNameAsc, prefs.SortOption())
}

func TestPreferenceService_NilStore(t *testing.T) {
	prefs := NewPreferenceService(nil)

	prefs.SetHostname("example.com")
	assert.Equal(t, "localhost", prefs.Hostname())
	assert.Equal(t, models.SortNameAsc, prefs.SortOption())
}

func TestPreferenceService_PersistsAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "porthole.db")

	db, err := database.Open(path)
	require.NoError(t, err)
	NewPreferenceService(repository.NewPreferenceRepository(db)).SetHostname("example.com")
	require.NoError(t, db.Close())

	db, err = database.Open(path)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, "example.com", NewPreferenceService(repository.NewPreferenceRepository(db)).Hostname())
}
