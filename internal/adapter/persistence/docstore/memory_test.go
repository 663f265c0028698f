package docstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stockDoc struct {
	ID        string   `dynamodbav:"id"`
	Code      string   `dynamodbav:"code"`
	Status    string   `dynamodbav:"status"`
	Available int      `dynamodbav:"available"`
	Tags      []string `dynamodbav:"tags"`
}

func TestMemoryCollection_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().Collection("stock")

	require.NoError(t, coll.InsertOne(ctx, stockDoc{ID: "a", Code: "SC-1", Status: "active", Available: 5, Tags: []string{}}))
	require.NoError(t, coll.InsertOne(ctx, stockDoc{ID: "b", Code: "SC-2", Status: "retired", Available: 0, Tags: []string{}}))
	require.ErrorIs(t, coll.InsertOne(ctx, stockDoc{ID: "a"}), ErrDuplicateKey)
	require.ErrorIs(t, coll.InsertOne(ctx, stockDoc{}), ErrMissingKey)

	var all []stockDoc
	require.NoError(t, coll.Find(ctx, nil, &all))
	assert.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID, "insertion order is preserved")

	var active []stockDoc
	require.NoError(t, coll.Find(ctx, Where(In("status", "active", "pending")), &active))
	require.Len(t, active, 1)
	assert.Equal(t, "SC-1", active[0].Code)

	var one stockDoc
	found, err := coll.FindOne(ctx, Where(Eq("code", "SC-2")), &one)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "b", one.ID)

	found, err = coll.FindOne(ctx, ByID("missing"), &one)
	require.NoError(t, err)
	assert.False(t, found)

	n, err := coll.CountDocuments(ctx, Where(Gte("available", 1)))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMemoryCollection_ConditionalUpdate(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().Collection("stock")
	require.NoError(t, coll.InsertOne(ctx, stockDoc{ID: "a", Status: "active", Available: 5, Tags: []string{}}))

	var out stockDoc
	err := coll.UpdateOne(ctx, ByID("a").And(Gte("available", 3)), NewUpdate().Inc("available", -3).Push("tags", "picked"), &out)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Available)
	assert.Equal(t, []string{"picked"}, out.Tags)

	err = coll.UpdateOne(ctx, ByID("a").And(Gte("available", 3)), NewUpdate().Inc("available", -3), nil)
	require.ErrorIs(t, err, ErrNoMatch)

	var after stockDoc
	_, err = coll.FindOne(ctx, ByID("a"), &after)
	require.NoError(t, err)
	assert.Equal(t, 2, after.Available, "failed condition leaves the document untouched")

	err = coll.UpdateOne(ctx, Where(Eq("status", "active")), NewUpdate().Set("status", "retired"), &out)
	require.NoError(t, err)
	assert.Equal(t, "retired", out.Status)
}

func TestMemoryCollection_ConcurrentDecrementNeverOverdraws(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().Collection("stock")
	require.NoError(t, coll.InsertOne(ctx, stockDoc{ID: "a", Available: 10, Tags: []string{}}))

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := coll.UpdateOne(ctx, ByID("a").And(Gte("available", 1)), NewUpdate().Inc("available", -1), nil)
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	var out stockDoc
	_, err := coll.FindOne(ctx, ByID("a"), &out)
	require.NoError(t, err)
	assert.Equal(t, 10, wins)
	assert.Equal(t, 0, out.Available)
}

func TestMemoryCollection_DeleteOne(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().Collection("stock")
	require.NoError(t, coll.InsertOne(ctx, stockDoc{ID: "a", Tags: []string{}}))

	deleted, err := coll.DeleteOne(ctx, ByID("a"))
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = coll.DeleteOne(ctx, ByID("a"))
	require.NoError(t, err)
	assert.False(t, deleted)
}
