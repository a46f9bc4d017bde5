package models

// SortOption selects the order of the visible container list.
type SortOption string

const (
	SortNameAsc     SortOption = "name-asc"
	SortNameDesc    SortOption = "name-desc"
	SortCreatedAsc  SortOption = "created-asc"
	SortCreatedDesc SortOption = "created-desc"
)

// DefaultHostname is used to build port links until the user picks another host.
const DefaultHostname = "localhost"

// DefaultSortOption is the order used when none, or an unknown one, is stored.
const DefaultSortOption = SortNameAsc

// ParseSortOption returns the option named by s and whether s is a known option.
func ParseSortOption(s string) (SortOption, bool) {
	switch opt := SortOption(s); opt {
	case SortNameAsc, SortNameDesc, SortCreatedAsc, SortCreatedDesc:
		return opt, true
	}
	return DefaultSortOption, false
}

// Preferences is the persisted per-installation user preference set.
type Preferences struct {
	Hostname   string     `json:"hostname"`
	SortOption SortOption `json:"sort_option"`
}
