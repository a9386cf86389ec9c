// Package storage abstracts the document store behind a small interface so
// the repositories work identically against MongoDB and the in-process map
// backend. The backend is chosen once at startup and injected.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Collection methods when no document has the
// requested id. Repositories translate it into nil/false results.
var ErrNotFound = errors.New("document not found")

// Collection is one logical document collection. Documents are keyed by an
// application-assigned id field, not a backend-generated one.
type Collection interface {
	// InsertOne stores doc under id.
	InsertOne(ctx context.Context, id string, doc interface{}) error
	// FindByID decodes the document with the given id into out, or returns
	// ErrNotFound.
	FindByID(ctx context.Context, id string, out interface{}) error
	// Find decodes matching documents into out (a pointer to a slice).
	// A nil filter matches everything. offset skips that many documents and
	// a limit of 0 means no limit. Result order is backend-default:
	// insertion order for the memory backend, unspecified for Mongo.
	Find(ctx context.Context, filter map[string]interface{}, limit, offset int64, out interface{}) error
	// ReplaceByID overwrites the document with the given id, or returns
	// ErrNotFound.
	ReplaceByID(ctx context.Context, id string, doc interface{}) error
	// DeleteByID removes the document and reports whether it existed.
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// Store hands out collections and owns the backend connection.
type Store interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
