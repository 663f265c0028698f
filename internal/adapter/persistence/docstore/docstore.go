// Package docstore is the collection-oriented persistence capability used by
// the repositories. Documents are flat records keyed by an opaque "id"
// attribute; filters are conjunctions of simple predicates and updates are
// applied atomically with the filter acting as the write condition.
package docstore

import (
	"context"
	"errors"
)

// KeyField is the attribute holding the store key of every document.
const KeyField = "id"

var (
	ErrDuplicateKey = errors.New("docstore: duplicate key")
	ErrNoMatch      = errors.New("docstore: no document matched the filter")
	ErrMissingKey   = errors.New("docstore: document has no id")
)

// Store hands out collections by name.
type Store interface {
	Collection(name string) Collection
}

// Collection is the set of operations a repository may run against one
// collection.
//
// Find and FindOne decode into out (a pointer to a slice of items or to a
// single item). UpdateOne applies u only when every condition of f still
// holds at write time and returns ErrNoMatch otherwise; when out is not nil
// it receives the updated document.
type Collection interface {
	Name() string
	Find(ctx context.Context, f Filter, out any) error
	FindOne(ctx context.Context, f Filter, out any) (bool, error)
	InsertOne(ctx context.Context, doc any) error
	UpdateOne(ctx context.Context, f Filter, u *Update, out any) error
	DeleteOne(ctx context.Context, f Filter) (bool, error)
	CountDocuments(ctx context.Context, f Filter) (int, error)
}
