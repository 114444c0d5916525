// Package dedupe tracks already-ingested keys so each fact appears at most
// once per load. The league invariant it guards: one compensation figure per
// person per fiscal year.
package dedupe

import (
	"strconv"
	"strings"
	"sync"
)

// Keyed records composite keys seen during a single load.
type Keyed interface {
	// SeenAndRecord atomically checks if key was seen and records it if not.
	// Returns true if key was already seen, false if it was newly recorded.
	SeenAndRecord(key string) bool

	// Size returns the number of recorded keys.
	Size() int
}

// keyedSet implements Keyed with a plain map. Loads are bounded (a few
// hundred rows), so no eviction is needed; the set dies with the load.
type keyedSet struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewKeyedSet creates an empty Keyed set.
func NewKeyedSet() Keyed {
	return &keyedSet{seen: make(map[string]struct{})}
}

func (k *keyedSet) SeenAndRecord(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	if _, exists := k.seen[key]; exists {
		return true
	}
	k.seen[key] = struct{}{}
	return false
}

func (k *keyedSet) Size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.seen)
}

// PersonYearKey builds the dedupe key for per-person per-year facts.
func PersonYearKey(table, personID string, year int) string {
	return strings.Join([]string{table, personID, strconv.Itoa(year)}, "|")
}
