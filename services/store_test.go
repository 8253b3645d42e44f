package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recordapi/models"
)

func TestMemoryStore_AppendAndList(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	rows, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	record := models.Record{Name: "Alice", City: "Paris", Age: "30", Email: "a@b.com", Phone: "12345678"}
	require.NoError(t, store.AppendRow(ctx, record))

	rows, err = store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0]["Name"])
	assert.Equal(t, "Paris", rows[0]["City"])
}

func TestMemoryStore_InsertionOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, store.AppendRow(ctx, models.Record{Name: name}))
	}

	rows, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "first", rows[0]["Name"])
	assert.Equal(t, "third", rows[2]["Name"])
}

func TestMemoryStore_ListReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.AppendRow(ctx, models.Record{Name: "Alice"}))

	rows, err := store.ListAll(ctx)
	require.NoError(t, err)
	rows[0]["Name"] = "mutated"

	again, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alice", again[0]["Name"])
}

func TestMemoryStore_ConcurrentAppends(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			_ = store.AppendRow(ctx, models.Record{Name: "w", City: "c", Age: "1", Email: "e@x.io", Phone: "12345678"})
		}()
	}
	wg.Wait()

	rows, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, writers)
	// No partial record is ever visible.
	for _, row := range rows {
		assert.Equal(t, "w", row["Name"])
		assert.Equal(t, "12345678", row["Phone"])
	}
}

func TestMemoryStore_Kind(t *testing.T) {
	assert.Equal(t, "memory", NewMemoryStore().Kind())
}

func TestMemoryStore_RowsNormalize(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.AppendRow(ctx, models.Record{Name: "Alice"}))

	rows, err := store.ListAll(ctx)
	require.NoError(t, err)

	// Fallback rows use canonical headers, so normalization is a no-op.
	record := NormalizeRecord(rows[0])
	assert.Equal(t, "Alice", record.Name)
	assert.Empty(t, record.City)
}
