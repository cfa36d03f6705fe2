package docstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemStore is the in-memory Store implementation. It backs tests and serves
// as a fallback when no database is configured; semantics (dot-path updates,
// type-sensitive equality, full-snapshot subscriptions) mirror the gorm store.
type MemStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]Document
	bus         *ChangeBus
}

func NewMemStore(bus *ChangeBus) *MemStore {
	return &MemStore{
		collections: make(map[string]map[string]Document),
		bus:         bus,
	}
}

func (s *MemStore) Collection(name string) Collection {
	return &memCollection{store: s, name: name}
}

func (s *MemStore) docs(name string) map[string]Document {
	if s.collections[name] == nil {
		s.collections[name] = make(map[string]Document)
	}
	return s.collections[name]
}

type memCollection struct {
	store *MemStore
	name  string
}

func (c *memCollection) Add(ctx context.Context, data map[string]interface{}) (string, error) {
	id := uuid.NewString()
	now := time.Now()

	c.store.mu.Lock()
	c.store.docs(c.name)[id] = Document{
		ID:        id,
		Data:      DeepCopyData(data),
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.store.mu.Unlock()

	return id, c.store.bus.Publish(c.name)
}

func (c *memCollection) Set(ctx context.Context, id string, data map[string]interface{}, merge bool) error {
	now := time.Now()

	c.store.mu.Lock()
	docs := c.store.docs(c.name)
	existing, ok := docs[id]
	if !ok {
		docs[id] = Document{
			ID:        id,
			Data:      DeepCopyData(data),
			CreatedAt: now,
			UpdatedAt: now,
		}
	} else {
		if merge {
			merged := DeepCopyData(existing.Data)
			for k, v := range data {
				merged[k] = deepCopyValue(v)
			}
			existing.Data = merged
		} else {
			existing.Data = DeepCopyData(data)
		}
		existing.UpdatedAt = now
		docs[id] = existing
	}
	c.store.mu.Unlock()

	return c.store.bus.Publish(c.name)
}

func (c *memCollection) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	c.store.mu.Lock()
	docs := c.store.docs(c.name)
	existing, ok := docs[id]
	if !ok {
		c.store.mu.Unlock()
		return fmt.Errorf("document %s not found in %s", id, c.name)
	}
	data := DeepCopyData(existing.Data)
	for path, value := range fields {
		SetAtPath(data, path, deepCopyValue(value))
	}
	existing.Data = data
	existing.UpdatedAt = time.Now()
	docs[id] = existing
	c.store.mu.Unlock()

	return c.store.bus.Publish(c.name)
}

func (c *memCollection) Delete(ctx context.Context, id string) error {
	c.store.mu.Lock()
	delete(c.store.docs(c.name), id)
	c.store.mu.Unlock()

	return c.store.bus.Publish(c.name)
}

func (c *memCollection) Get(ctx context.Context, id string) (*Document, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	doc, ok := c.store.docs(c.name)[id]
	if !ok {
		return nil, nil
	}
	copied := doc
	copied.Data = DeepCopyData(doc.Data)
	return &copied, nil
}

func (c *memCollection) Query() Query {
	return &memQuery{col: c}
}

type memQuery struct {
	col        *memCollection
	conditions []condition
	orderField string
	orderDesc  bool
	limit      int
}

func (q *memQuery) Where(field string, value interface{}) Query {
	next := *q
	next.conditions = append(append([]condition{}, q.conditions...), condition{field: field, value: value})
	return &next
}

func (q *memQuery) OrderBy(field string, desc bool) Query {
	next := *q
	next.orderField = field
	next.orderDesc = desc
	return &next
}

func (q *memQuery) Limit(n int) Query {
	next := *q
	next.limit = n
	return &next
}

func (q *memQuery) Documents(ctx context.Context) ([]Document, error) {
	q.col.store.mu.RLock()
	all := q.col.store.docs(q.col.name)
	results := make([]Document, 0, len(all))
	for _, doc := range all {
		if matches(doc, q.conditions) {
			copied := doc
			copied.Data = DeepCopyData(doc.Data)
			results = append(results, copied)
		}
	}
	q.col.store.mu.RUnlock()

	sortDocuments(results, q.orderField, q.orderDesc)
	if q.limit > 0 && len(results) > q.limit {
		results = results[:q.limit]
	}
	return results, nil
}

func (q *memQuery) Subscribe(ctx context.Context, onSnapshot func([]Document), onError func(error)) Unsubscribe {
	return runSubscription(ctx, q.col.store.bus, q.col.name, q.Documents, onSnapshot, onError)
}
