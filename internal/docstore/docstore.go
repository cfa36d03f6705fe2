package docstore

import (
	"context"
	"time"
)

// Document is a raw stored document. Data carries whatever shape the writing
// code path produced; readers must normalize and never assume field presence.
type Document struct {
	ID        string
	Data      map[string]interface{}
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Unsubscribe tears down a live subscription. Callers must invoke it on
// teardown or filter change; after it returns no callback fires again.
type Unsubscribe func()

// Store exposes named collections of schemaless documents.
type Store interface {
	Collection(name string) Collection
}

// Collection is the CRUD surface of one document collection.
type Collection interface {
	// Add stores a new document and returns its assigned id.
	Add(ctx context.Context, data map[string]interface{}) (string, error)

	// Set writes a document under a known id. With merge=true existing
	// top-level fields not present in data are preserved.
	Set(ctx context.Context, id string, data map[string]interface{}, merge bool) error

	// Update applies a partial update. Keys are dot-paths ("metadata.tags");
	// only the addressed leaves change, sibling fields are untouched.
	Update(ctx context.Context, id string, fields map[string]interface{}) error

	Delete(ctx context.Context, id string) error

	Get(ctx context.Context, id string) (*Document, error)

	Query() Query
}

// Query builds an equality-filtered, ordered, limited read. Where fields are
// dot-paths into the document data; "createdAt"/"updatedAt" address the
// store-assigned timestamps.
type Query interface {
	Where(field string, value interface{}) Query
	OrderBy(field string, desc bool) Query
	Limit(n int) Query

	// Documents runs the query once.
	Documents(ctx context.Context) ([]Document, error)

	// Subscribe pushes the full current result set immediately and again on
	// every mutation of the collection. Errors go to onError; the result
	// callback keeps receiving snapshots until Unsubscribe is called.
	Subscribe(ctx context.Context, onSnapshot func([]Document), onError func(error)) Unsubscribe
}
