package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// memoryStore keeps every collection in a process-local map. Documents are
// stored as JSON so reads hand out deep copies, never aliases into the map.
// It has no eviction and no size bound, and is wiped on process restart.
type memoryStore struct {
	mu     sync.Mutex
	stores map[string]*memoryCollection
}

// NewMemoryStore returns the non-persistent backend. It exists to make the
// repository layer testable without external services.
func NewMemoryStore() Store {
	return &memoryStore{stores: make(map[string]*memoryCollection)}
}

func (s *memoryStore) Collection(name string) Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, ok := s.stores[name]
	if !ok {
		col = &memoryCollection{docs: make(map[string]json.RawMessage)}
		s.stores[name] = col
	}
	return col
}

func (s *memoryStore) Ping(context.Context) error { return nil }

func (s *memoryStore) Close(context.Context) error { return nil }

// memoryCollection guards its map with a mutex: unlike the original
// single-threaded runtime, Go handlers genuinely run concurrently.
type memoryCollection struct {
	mu    sync.RWMutex
	docs  map[string]json.RawMessage
	order []string
}

func (c *memoryCollection) InsertOne(_ context.Context, id string, doc interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.docs[id]; !exists {
		c.order = append(c.order, id)
	}
	c.docs[id] = raw
	return nil
}

func (c *memoryCollection) FindByID(_ context.Context, id string, out interface{}) error {
	c.mu.RLock()
	raw, ok := c.docs[id]
	c.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(raw, out)
}

func (c *memoryCollection) Find(_ context.Context, filter map[string]interface{}, limit, offset int64, out interface{}) error {
	c.mu.RLock()
	selected := make([]json.RawMessage, 0, len(c.order))
	for _, id := range c.order {
		raw, ok := c.docs[id]
		if !ok {
			continue
		}
		if matches(raw, filter) {
			selected = append(selected, raw)
		}
	}
	c.mu.RUnlock()

	if offset > int64(len(selected)) {
		offset = int64(len(selected))
	}
	selected = selected[offset:]
	if limit > 0 && limit < int64(len(selected)) {
		selected = selected[:limit]
	}

	combined, err := json.Marshal(selected)
	if err != nil {
		return err
	}
	return json.Unmarshal(combined, out)
}

func (c *memoryCollection) ReplaceByID(_ context.Context, id string, doc interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.docs[id]; !ok {
		return ErrNotFound
	}
	c.docs[id] = raw
	return nil
}

func (c *memoryCollection) DeleteByID(_ context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.docs[id]; !ok {
		return false, nil
	}
	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func matches(raw json.RawMessage, filter map[string]interface{}) bool {
	if len(filter) == 0 {
		return true
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return false
	}
	for k, want := range filter {
		if doc[k] != want {
			return false
		}
	}
	return true
}
