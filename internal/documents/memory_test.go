package documents

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SeededWithSamples(t *testing.T) {
	store := NewMemoryStore()

	docs, err := store.List()
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "sim-1", docs[0].ID)
	assert.Equal(t, "sim-2", docs[1].ID)
}

func TestMemoryStore_AddAndDelete(t *testing.T) {
	store := NewMemoryStore()

	doc := NewDocument("Uploaded 1 file(s)", time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC))
	require.NoError(t, store.Add(doc))

	docs, err := store.List()
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "2025-06-15T10:30:00", docs[2].CreatedAt)

	require.NoError(t, store.Delete(doc.ID))
	docs, err = store.List()
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestMemoryStore_DeleteUnknownIsNoop(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Delete("sim-missing"))
	docs, err := store.List()
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestMemoryStore_Clear(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Clear())
	docs, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestNewID_Format(t *testing.T) {
	id := NewID()
	assert.True(t, strings.HasPrefix(id, "sim-"), "got %q", id)
	assert.Len(t, id, len("sim-")+8)
	assert.NotEqual(t, id, NewID())
}
