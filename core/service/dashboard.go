package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"nfcunha/porthole/core/models"
)

// ContainerDirectory fetches the current container list.
type ContainerDirectory interface {
	FetchContainers(ctx context.Context) ([]models.ContainerRecord, error)
}

// EventRecorder stores dashboard events. *repository.EventLogRepository satisfies it.
type EventRecorder interface {
	Create(log *models.EventLog) error
}

// ContainerRow is a container as shown in the dashboard list.
type ContainerRow struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Image   string    `json:"image"`
	State   string    `json:"state"`
	Created time.Time `json:"created"`
	Ports   []PortRow `json:"ports"`
}

// PortRow is a de-duplicated port of a container. URL is set only for published ports.
type PortRow struct {
	PrivatePort uint16 `json:"private_port"`
	PublicPort  uint16 `json:"public_port,omitempty"`
	Type        string `json:"type"`
	URL         string `json:"url,omitempty"`
	Label       string `json:"label"`
}

// DashboardState is a snapshot of the list side of the dashboard.
type DashboardState struct {
	Loading    bool              `json:"loading"`
	Error      string            `json:"error,omitempty"`
	Search     string            `json:"search"`
	SortOption models.SortOption `json:"sort_option"`
	Hostname   string            `json:"hostname"`
	Total      int               `json:"total"`
	Containers []ContainerRow    `json:"containers"`
}

// ViewerState is a snapshot of the embedded viewer.
type ViewerState struct {
	Active       bool     `json:"active"`
	URL          string   `json:"url,omitempty"`
	History      []string `json:"history"`
	Index        int      `json:"index"`
	ReloadKey    int      `json:"reload_key"`
	CanGoBack    bool     `json:"can_go_back"`
	CanGoForward bool     `json:"can_go_forward"`
}

// Dashboard owns all dashboard state: the fetched list, the search text, the
// preferences in use and the viewer history. Every mutation happens under one
// lock, so HTTP handlers can share a single instance.
type Dashboard struct {
	directory ContainerDirectory
	prefs     *PreferenceService
	events    EventRecorder

	mu          sync.Mutex
	containers  []models.ContainerRecord
	loading     bool
	fetchErr    error
	loadSeq     uint64
	appliedSeq  uint64
	search      string
	sortOption  models.SortOption
	hostname    string
	nav         *NavigationHistory
	subscribers map[chan ViewerState]struct{}
}

// NewDashboard creates a dashboard in the loading state. Preferences are read
// once here. events may be nil.
func NewDashboard(directory ContainerDirectory, prefs *PreferenceService, events EventRecorder) *Dashboard {
	stored := prefs.Preferences()
	return &Dashboard{
		directory:   directory,
		prefs:       prefs,
		events:      events,
		loading:     true,
		sortOption:  stored.SortOption,
		hostname:    stored.Hostname,
		nav:         NewNavigationHistory(),
		subscribers: make(map[chan ViewerState]struct{}),
	}
}

// Load fetches the container list. On failure the previous list stays and
// the error is kept as the dashboard notice until a later Load succeeds.
// Loading is only reported until the first fetch resolves. When loads
// overlap, a result is dropped if a later-started load has already been
// applied.
func (d *Dashboard) Load(ctx context.Context) error {
	d.mu.Lock()
	d.loadSeq++
	seq := d.loadSeq
	d.mu.Unlock()

	records, err := d.directory.FetchContainers(ctx)
	if err != nil {
		var fetchErr *FetchError
		if !errors.As(err, &fetchErr) {
			err = &FetchError{Message: "failed to fetch containers", Err: err}
		}
	}

	d.mu.Lock()
	stale := seq < d.appliedSeq
	if !stale {
		d.appliedSeq = seq
		d.loading = false
		if err != nil {
			d.fetchErr = err
		} else {
			d.containers = records
			d.fetchErr = nil
		}
	}
	d.mu.Unlock()

	if err != nil {
		cause := err
		if inner := errors.Unwrap(err); inner != nil {
			cause = inner
		}
		d.record("error", err.Error(), fetchMetadata{Cause: cause.Error(), Stale: stale})
		return err
	}
	count := len(records)
	d.record("info", fmt.Sprintf("Fetched %d containers", count), fetchMetadata{Count: &count, Stale: stale})
	return nil
}

// SetSearch changes the name filter.
func (d *Dashboard) SetSearch(search string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.search = search
}

// SetSortOption changes the list order and persists it.
func (d *Dashboard) SetSortOption(opt models.SortOption) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sortOption = opt
	d.prefs.SetSortOption(opt)
}

// SetHostname changes the host used in port links and persists it.
// An empty hostname means the default host.
func (d *Dashboard) SetHostname(hostname string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.prefs.SetHostname(hostname)
	if hostname == "" {
		hostname = models.DefaultHostname
	}
	d.hostname = hostname
}

// Preferences returns the preferences currently in effect.
func (d *Dashboard) Preferences() models.Preferences {
	d.mu.Lock()
	defer d.mu.Unlock()
	return models.Preferences{Hostname: d.hostname, SortOption: d.sortOption}
}

// State returns the visible rows for the current search, sort and hostname.
func (d *Dashboard) State() DashboardState {
	d.mu.Lock()
	defer d.mu.Unlock()

	state := DashboardState{
		Loading:    d.loading,
		Search:     d.search,
		SortOption: d.sortOption,
		Hostname:   d.hostname,
		Total:      len(d.containers),
		Containers: d.rows(),
	}
	if d.fetchErr != nil {
		state.Error = d.fetchErr.Error()
	}
	return state
}

func (d *Dashboard) rows() []ContainerRow {
	visible := ApplyView(d.containers, d.search, d.sortOption)
	rows := make([]ContainerRow, 0, len(visible))
	for _, c := range visible {
		row := ContainerRow{
			ID:      c.ID,
			Name:    c.DisplayName(),
			Image:   c.Image,
			State:   c.State,
			Created: c.Created.Time(),
			Ports:   make([]PortRow, 0, len(c.Ports)),
		}
		for _, p := range DedupePorts(c.Ports) {
			port := PortRow{
				PrivatePort: p.PrivatePort,
				PublicPort:  p.PublicPort,
				Type:        p.Type,
				Label:       fmt.Sprintf("Private Port: %d", p.PrivatePort),
			}
			if p.Published() {
				port.URL = PortURL(d.hostname, p.PublicPort)
				port.Label = port.URL
			}
			row.Ports = append(row.Ports, port)
		}
		rows = append(rows, row)
	}
	return rows
}

// Visit opens url in the viewer.
func (d *Dashboard) Visit(url string) ViewerState {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nav.Visit(url)
	return d.publish()
}

// Back moves the viewer one entry back. ok is false when there is nothing to go back to.
func (d *Dashboard) Back() (state ViewerState, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok = d.nav.Back(); !ok {
		return d.viewer(), false
	}
	return d.publish(), true
}

// Forward moves the viewer one entry forward. ok is false at the newest entry.
func (d *Dashboard) Forward() (state ViewerState, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok = d.nav.Forward(); !ok {
		return d.viewer(), false
	}
	return d.publish(), true
}

// Refresh reloads the viewer's current URL.
func (d *Dashboard) Refresh() ViewerState {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nav.Refresh()
	return d.publish()
}

// Viewer returns the current viewer state.
func (d *Dashboard) Viewer() ViewerState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.viewer()
}

// Subscribe returns a channel that receives the viewer state after every
// change. Slow subscribers only see the latest state. The returned function
// unsubscribes and closes the channel.
func (d *Dashboard) Subscribe() (<-chan ViewerState, func()) {
	ch := make(chan ViewerState, 1)

	d.mu.Lock()
	d.subscribers[ch] = struct{}{}
	d.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			d.mu.Lock()
			delete(d.subscribers, ch)
			d.mu.Unlock()
			close(ch)
		})
	}
}

func (d *Dashboard) viewer() ViewerState {
	url, active := d.nav.Current()
	return ViewerState{
		Active:       active,
		URL:          url,
		History:      d.nav.Entries(),
		Index:        d.nav.Index(),
		ReloadKey:    d.nav.ReloadKey(),
		CanGoBack:    d.nav.CanGoBack(),
		CanGoForward: d.nav.CanGoForward(),
	}
}

// publish must be called with d.mu held.
func (d *Dashboard) publish() ViewerState {
	state := d.viewer()
	for ch := range d.subscribers {
		select {
		case ch <- state:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- state:
			default:
			}
		}
	}
	return state
}

// fetchMetadata is stored as JSON in the event log metadata column.
type fetchMetadata struct {
	Count *int   `json:"count,omitempty"`
	Cause string `json:"cause,omitempty"`
	Stale bool   `json:"stale,omitempty"`
}

func (d *Dashboard) record(level, message string, meta fetchMetadata) {
	if d.events == nil {
		return
	}
	event := &models.EventLog{
		EventType: "directory",
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if data, err := json.Marshal(meta); err != nil {
		log.Printf("Failed to encode event metadata: %v", err)
	} else {
		event.Metadata = string(data)
	}
	if err := d.events.Create(event); err != nil {
		log.Printf("Failed to store event log: %v", err)
	}
}
