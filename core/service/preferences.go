package service

import (
	"errors"
	"log"

	"nfcunha/porthole/core/models"
	"nfcunha/porthole/core/repository"
)

const (
	hostnameKey   = "hostname"
	sortOptionKey = "sortOption"
)

// KeyValueStore is the durable storage behind PreferenceService.
// *repository.PreferenceRepository satisfies it.
type KeyValueStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// PreferenceService reads and writes the user's hostname and sort order.
// Storage failures never reach the caller: getters fall back to defaults and
// setters drop the write.
type PreferenceService struct {
	store KeyValueStore
}

// NewPreferenceService creates a preference service. A nil store behaves as
// permanently unavailable storage.
func NewPreferenceService(store KeyValueStore) *PreferenceService {
	return &PreferenceService{store: store}
}

// Hostname returns the stored hostname, or "localhost".
func (s *PreferenceService) Hostname() string {
	value, ok := s.get(hostnameKey)
	if !ok || value == "" {
		return models.DefaultHostname
	}
	return value
}

// SetHostname stores value as is.
func (s *PreferenceService) SetHostname(value string) {
	s.set(hostnameKey, value)
}

// SortOption returns the stored sort option, or name-asc when nothing valid is stored.
func (s *PreferenceService) SortOption() models.SortOption {
	value, ok := s.get(sortOptionKey)
	if !ok {
		return models.DefaultSortOption
	}
	opt, _ := models.ParseSortOption(value)
	return opt
}

// SetSortOption stores value.
func (s *PreferenceService) SetSortOption(value models.SortOption) {
	s.set(sortOptionKey, string(value))
}

// Preferences returns both preferences at once.
func (s *PreferenceService) Preferences() models.Preferences {
	return models.Preferences{
		Hostname:   s.Hostname(),
		SortOption: s.SortOption(),
	}
}

func (s *PreferenceService) get(key string) (string, bool) {
	if s.store == nil {
		return "", false
	}
	value, err := s.store.Get(key)
	if err != nil {
		if !errors.Is(err, repository.ErrPreferenceNotFound) {
			log.Printf("Failed to read preference %s, using default: %v", key, err)
		}
		return "", false
	}
	return value, true
}

func (s *PreferenceService) set(key, value string) {
	if s.store == nil {
		return
	}
	if err := s.store.Set(key, value); err != nil {
		log.Printf("Failed to persist preference %s: %v", key, err)
	}
}
