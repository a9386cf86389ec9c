package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	ID    string `json:"id"`
	Owner string `json:"owner,omitempty"`
	Value int    `json:"value"`
}

func TestMemoryInsertAndFindByID(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryStore().Collection("docs")

	require.NoError(t, col.InsertOne(ctx, "a", testDoc{ID: "a", Value: 1}))

	var got testDoc
	require.NoError(t, col.FindByID(ctx, "a", &got))
	assert.Equal(t, testDoc{ID: "a", Value: 1}, got)
}

func TestMemoryFindByIDNotFound(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryStore().Collection("docs")

	var got testDoc
	assert.ErrorIs(t, col.FindByID(ctx, "missing", &got), ErrNotFound)
}

func TestMemoryFindReturnsCopies(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryStore().Collection("docs")
	require.NoError(t, col.InsertOne(ctx, "a", testDoc{ID: "a", Value: 1}))

	var first testDoc
	require.NoError(t, col.FindByID(ctx, "a", &first))
	first.Value = 99

	var second testDoc
	require.NoError(t, col.FindByID(ctx, "a", &second))
	assert.Equal(t, 1, second.Value)
}

func TestMemoryFindInsertionOrderAndPagination(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryStore().Collection("docs")
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("doc-%d", i)
		require.NoError(t, col.InsertOne(ctx, id, testDoc{ID: id, Value: i}))
	}

	var page []testDoc
	require.NoError(t, col.Find(ctx, nil, 3, 4, &page))
	require.Len(t, page, 3)
	assert.Equal(t, "doc-4", page[0].ID)
	assert.Equal(t, "doc-6", page[2].ID)

	var all []testDoc
	require.NoError(t, col.Find(ctx, nil, 0, 0, &all))
	assert.Len(t, all, 10)

	var past []testDoc
	require.NoError(t, col.Find(ctx, nil, 5, 100, &past))
	assert.Empty(t, past)
}

func TestMemoryFindFilter(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryStore().Collection("docs")
	require.NoError(t, col.InsertOne(ctx, "a", testDoc{ID: "a", Owner: "alice"}))
	require.NoError(t, col.InsertOne(ctx, "b", testDoc{ID: "b", Owner: "bob"}))
	require.NoError(t, col.InsertOne(ctx, "c", testDoc{ID: "c", Owner: "alice"}))

	var mine []testDoc
	require.NoError(t, col.Find(ctx, map[string]interface{}{"owner": "alice"}, 0, 0, &mine))
	require.Len(t, mine, 2)
	assert.Equal(t, "a", mine[0].ID)
	assert.Equal(t, "c", mine[1].ID)
}

func TestMemoryReplaceByID(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryStore().Collection("docs")
	require.NoError(t, col.InsertOne(ctx, "a", testDoc{ID: "a", Value: 1}))

	require.NoError(t, col.ReplaceByID(ctx, "a", testDoc{ID: "a", Value: 2}))
	var got testDoc
	require.NoError(t, col.FindByID(ctx, "a", &got))
	assert.Equal(t, 2, got.Value)

	assert.ErrorIs(t, col.ReplaceByID(ctx, "missing", testDoc{ID: "missing"}), ErrNotFound)
}

func TestMemoryDeleteByID(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryStore().Collection("docs")
	require.NoError(t, col.InsertOne(ctx, "a", testDoc{ID: "a"}))

	deleted, err := col.DeleteByID(ctx, "a")
	require.NoError(t, err)
	assert.True(t, deleted)

	var got testDoc
	assert.ErrorIs(t, col.FindByID(ctx, "a", &got), ErrNotFound)

	deleted, err = col.DeleteByID(ctx, "a")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryCollectionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Collection("one").InsertOne(ctx, "a", testDoc{ID: "a"}))

	var got testDoc
	assert.ErrorIs(t, store.Collection("two").FindByID(ctx, "a", &got), ErrNotFound)

	// Same name must resolve to the same underlying collection.
	require.NoError(t, store.Collection("one").FindByID(ctx, "a", &got))
}
