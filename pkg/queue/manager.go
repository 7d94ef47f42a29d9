package queue

import (
	"sync"
)

// itemTracker is the in-process per-item admission gate: at most one running
// workflow instance per board item on this pod. It is a fast path only — the
// partial unique index on queue_entries (external_item_id WHERE
// status='running') is the cross-pod guard.
type itemTracker struct {
	mu      sync.Mutex
	running map[string]string // external_item_id → queue entry id
}

func newItemTracker() *itemTracker {
	return &itemTracker{running: make(map[string]string)}
}

// tryAcquire marks the item running for entryID. Returns false when another
// entry already holds the item's slot.
func (t *itemTracker) tryAcquire(itemID, entryID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if held, ok := t.running[itemID]; ok && held != entryID {
		return false
	}
	t.running[itemID] = entryID
	return true
}

// release frees the item's slot. A run entering waiting_validation releases
// too: parked instances do not count against the per-item cap.
func (t *itemTracker) release(itemID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.running, itemID)
}

// holder returns the entry currently holding the item's slot, if any.
func (t *itemTracker) holder(itemID string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id, ok := t.running[itemID]
	return id, ok
}

// activeCount returns the number of items with a running instance on this pod.
func (t *itemTracker) activeCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.running)
}
