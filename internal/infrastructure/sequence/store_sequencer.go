// Package sequence provides the atomic per-key counters behind business-id
// minting.
package sequence

import (
	"context"
	"errors"
	"fmt"

	"rental_backend/internal/adapter/persistence/docstore"
	"rental_backend/internal/usecase/interfaces"
)

// CountersCollection holds one document per counter key.
const CountersCollection = "counters"

type counterItem struct {
	ID    string `dynamodbav:"id"`
	Value int64  `dynamodbav:"value"`
}

// StoreSequencer keeps counters as documents and relies on the store's
// conditional update for atomic increments. Backed by DynamoDB it issues an
// ADD per Next; backed by the memory store it serves tests and local runs.
type StoreSequencer struct {
	coll docstore.Collection
}

var _ interfaces.ISequencer = (*StoreSequencer)(nil)

func NewStoreSequencer(store docstore.Store) *StoreSequencer {
	return &StoreSequencer{coll: store.Collection(CountersCollection)}
}

func (s *StoreSequencer) Next(ctx context.Context, key string) (int64, error) {
	for attempt := 0; attempt < 2; attempt++ {
		var it counterItem
		err := s.coll.UpdateOne(ctx, docstore.ByID(key), docstore.NewUpdate().Inc("value", 1), &it)
		if err == nil {
			return it.Value, nil
		}
		if !errors.Is(err, docstore.ErrNoMatch) {
			return 0, err
		}
		if err := s.create(ctx, key, 0); err != nil {
			return 0, err
		}
	}
	return 0, fmt.Errorf("sequence %s: counter could not be created", key)
}

func (s *StoreSequencer) Floor(ctx context.Context, key string, n int64) error {
	for {
		var it counterItem
		found, err := s.coll.FindOne(ctx, docstore.ByID(key), &it)
		if err != nil {
			return err
		}
		if !found {
			if err := s.create(ctx, key, n); err != nil {
				return err
			}
			continue
		}
		if it.Value >= n {
			return nil
		}
		f := docstore.ByID(key).And(docstore.Eq("value", it.Value))
		err = s.coll.UpdateOne(ctx, f, docstore.NewUpdate().Set("value", n), nil)
		if err == nil {
			return nil
		}
		if !errors.Is(err, docstore.ErrNoMatch) {
			return err
		}
	}
}

func (s *StoreSequencer) create(ctx context.Context, key string, value int64) error {
	err := s.coll.InsertOne(ctx, counterItem{ID: key, Value: value})
	if errors.Is(err, docstore.ErrDuplicateKey) {
		return nil
	}
	return err
}
