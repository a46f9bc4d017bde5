package service

import (
	"fmt"
	"sort"
	"strings"

	"nfcunha/porthole/core/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ApplyView returns the containers whose names match search, ordered by
// sortOption. The input slice is not modified and ties keep their input order.
//
// The created-* options are inverted relative to their names: created-asc
// puts the newest container first, created-desc the oldest.
func ApplyView(all []models.ContainerRecord, search string, sortOption models.SortOption) []models.ContainerRecord {
	visible := FilterContainers(all, search)

	switch sortOption {
	case models.SortCreatedAsc:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].Created > visible[j].Created
		})
	case models.SortCreatedDesc:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].Created < visible[j].Created
		})
	case models.SortNameDesc:
		col := newNameCollator()
		sort.SliceStable(visible, func(i, j int) bool {
			return col.CompareString(visible[j].FirstName(), visible[i].FirstName()) < 0
		})
	default:
		col := newNameCollator()
		sort.SliceStable(visible, func(i, j int) bool {
			return col.CompareString(visible[i].FirstName(), visible[j].FirstName()) < 0
		})
	}

	return visible
}

// FilterContainers keeps the containers with at least one name containing
// search, ignoring case. A blank search keeps everything. The result is a new slice.
func FilterContainers(all []models.ContainerRecord, search string) []models.ContainerRecord {
	visible := make([]models.ContainerRecord, 0, len(all))
	if strings.TrimSpace(search) == "" {
		return append(visible, all...)
	}

	needle := strings.ToLower(search)
	for _, c := range all {
		for _, name := range c.Names {
			if strings.Contains(strings.ToLower(name), needle) {
				visible = append(visible, c)
				break
			}
		}
	}
	return visible
}

// newNameCollator returns a collator for container names. Collators keep
// internal buffers, so each sort gets its own.
func newNameCollator() *collate.Collator {
	return collate.New(language.Und)
}

type portKey struct {
	public  uint16
	private uint16
}

// DedupePorts collapses bindings with the same (public, private) pair, keeping
// the first occurrence in place. Runtimes report one binding per attached
// network, which shows up here as duplicates.
func DedupePorts(ports []models.PortBinding) []models.PortBinding {
	seen := make(map[portKey]struct{}, len(ports))
	result := make([]models.PortBinding, 0, len(ports))
	for _, p := range ports {
		key := portKey{public: p.PublicPort, private: p.PrivatePort}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, p)
	}
	return result
}

// PortURL returns the address of a published port on hostname.
// hostname is used verbatim.
func PortURL(hostname string, publicPort uint16) string {
	return fmt.Sprintf("http://%s:%d", hostname, publicPort)
}
