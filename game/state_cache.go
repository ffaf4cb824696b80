// File: game/state_cache.go
package game

import "sync/atomic"

// StateCache holds the latest snapshot JSON for readers outside the session actor.
type StateCache struct {
	json atomic.Value
}

func NewStateCache() *StateCache {
	cache := &StateCache{}
	cache.json.Store([]byte("{}"))
	return cache
}

func (c *StateCache) Store(snap Snapshot) {
	c.json.Store(snap.ToJson())
}

// Load returns the cached JSON, "{}" until the first Store.
func (c *StateCache) Load() []byte {
	data, _ := c.json.Load().([]byte)
	if data == nil {
		return []byte("{}")
	}
	return data
}
