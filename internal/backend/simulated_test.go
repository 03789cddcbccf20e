package backend

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/matthieukhl/schemapilot/internal/clock"
	"github.com/matthieukhl/schemapilot/internal/documents"
	"github.com/matthieukhl/schemapilot/internal/simdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newSimulated(t *testing.T) *SimulatedBackend {
	t.Helper()
	clk := clock.NewMockClock(testNow)
	ds := simdata.BuildDataset(simdata.DefaultSeed, testNow)
	return NewSimulated(simdata.NewEngine(ds, clk), documents.NewMemoryStore(), clk)
}

func TestSimulated_QuerySchema(t *testing.T) {
	b := newSimulated(t)
	ctx := context.Background()

	t.Run("table keyword returns snippet", func(t *testing.T) {
		result, err := b.QuerySchema(ctx, "describe the sales table")
		require.NoError(t, err)
		require.Equal(t, 1, result.Count)
		require.Len(t, result.Results, 1)
		assert.Equal(t, simdata.SchemaSnippet("sales"), result.Results[0].Content)
		assert.GreaterOrEqual(t, result.Results[0].Score, 0.92)
		assert.Less(t, result.Results[0].Score, 1.01)
	})

	t.Run("generic question returns full schema", func(t *testing.T) {
		result, err := b.QuerySchema(ctx, "show me everything")
		require.NoError(t, err)
		assert.Equal(t, simdata.SchemaText(), result.Results[0].Content)
		assert.Equal(t, 0.95, result.Results[0].Score)
	})

	t.Run("what tables lists table names", func(t *testing.T) {
		result, err := b.QuerySchema(ctx, "what tables are there?")
		require.NoError(t, err)
		content := result.Results[0].Content
		for _, table := range simdata.TableNames {
			assert.Contains(t, content, "- "+table)
		}
	})
}

func TestSimulated_Translate(t *testing.T) {
	b := newSimulated(t)

	result, err := b.Translate(context.Background(), "total revenue this month")
	require.NoError(t, err)
	assert.Equal(t, "OK", result.Status)
	assert.True(t, result.CanExecute)
	assert.True(t, strings.HasPrefix(result.SQL, "SELECT SUM(amount)"), "got %q", result.SQL)
}

func TestSimulated_ExecuteSQL(t *testing.T) {
	b := newSimulated(t)

	result, err := b.ExecuteSQL(context.Background(), "select * from sales", 3)
	require.NoError(t, err)
	assert.Len(t, result.Rows, 13)
	assert.Equal(t, "13 row(s)", result.Summary)
}

func TestSimulated_UploadSchema(t *testing.T) {
	b := newSimulated(t)
	ctx := context.Background()

	result, err := b.UploadSchema(ctx, []string{"schema.sql", "notes.txt"})
	require.NoError(t, err)
	assert.Equal(t, "Successfully uploaded 2 file(s) to vector database", result.Message)
	assert.Equal(t, "processed", result.Status)
	assert.True(t, strings.HasPrefix(result.DocumentID, "sim-"))

	docs, err := b.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "Uploaded 2 file(s)", docs[2].Name)
	assert.Equal(t, result.DocumentID, docs[2].ID)
}

func TestSimulated_DocumentLifecycle(t *testing.T) {
	b := newSimulated(t)
	ctx := context.Background()

	require.NoError(t, b.DeleteDocument(ctx, "sim-1"))
	docs, err := b.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	require.NoError(t, b.ClearStore(ctx))
	docs, err = b.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
