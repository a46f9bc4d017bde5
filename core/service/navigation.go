package service

// NavigationHistory is the back/forward stack of the embedded viewer.
// It is not safe for concurrent use; Dashboard serializes access to it.
type NavigationHistory struct {
	entries   []string
	index     int // -1 until the first Visit
	reloadKey int
}

// NewNavigationHistory returns an empty history.
func NewNavigationHistory() *NavigationHistory {
	return &NavigationHistory{index: -1}
}

// Visit makes url the current entry. Entries after the current one are dropped.
func (h *NavigationHistory) Visit(url string) {
	h.entries = append(h.entries[:h.index+1], url)
	h.index = len(h.entries) - 1
	h.reloadKey++
}

// Back moves one entry back and returns it. At the oldest entry, or before
// any visit, nothing changes and ok is false.
func (h *NavigationHistory) Back() (url string, ok bool) {
	if h.index <= 0 {
		return "", false
	}
	h.index--
	h.reloadKey++
	return h.entries[h.index], true
}

// Forward moves one entry forward and returns it. At the newest entry nothing
// changes and ok is false.
func (h *NavigationHistory) Forward() (url string, ok bool) {
	if h.index >= len(h.entries)-1 {
		return "", false
	}
	h.index++
	h.reloadKey++
	return h.entries[h.index], true
}

// Refresh asks the viewer to reload the current entry.
func (h *NavigationHistory) Refresh() {
	h.reloadKey++
}

// Current returns the active URL, if any.
func (h *NavigationHistory) Current() (string, bool) {
	if h.index < 0 {
		return "", false
	}
	return h.entries[h.index], true
}

func (h *NavigationHistory) CanGoBack() bool {
	return h.index > 0
}

func (h *NavigationHistory) CanGoForward() bool {
	return h.index < len(h.entries)-1
}

// Entries returns a copy of the visited URLs, oldest first.
func (h *NavigationHistory) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Index returns the position of the current entry, or -1.
func (h *NavigationHistory) Index() int {
	return h.index
}

// ReloadKey changes on every Visit, successful Back or Forward, and Refresh.
// The viewer reloads whenever it changes, even if the URL did not.
func (h *NavigationHistory) ReloadKey() int {
	return h.reloadKey
}
