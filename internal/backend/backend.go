// Package backend defines the operations behind the API surface and the
// three variants that implement them: fully simulated, webhook-proxied,
// and a hybrid that persists documents locally while proxying queries.
package backend

import (
	"context"

	"github.com/matthieukhl/schemapilot/internal/documents"
	"github.com/matthieukhl/schemapilot/internal/simdata"
)

// SearchResult is a single schema retrieval hit.
type SearchResult struct {
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// QueryResult is the payload of a schema/query question.
type QueryResult struct {
	Results []SearchResult `json:"results"`
	Count   int            `json:"count"`
}

// NL2SQLResult is the payload of a natural-language-to-SQL request.
type NL2SQLResult struct {
	SQL        string `json:"sql"`
	Status     string `json:"status"`
	CanExecute bool   `json:"can_execute"`
}

// ExecResult is the payload of a SQL/intent execution.
type ExecResult struct {
	Rows    []simdata.Row `json:"rows"`
	Summary string        `json:"summary"`
}

// UploadResult is the payload of a schema upload.
type UploadResult struct {
	Message    string `json:"message"`
	Status     string `json:"status"`
	DocumentID string `json:"document_id"`
}

// Backend is the set of operations the HTTP layer dispatches to.
type Backend interface {
	Mode() string
	UploadSchema(ctx context.Context, fileNames []string) (UploadResult, error)
	QuerySchema(ctx context.Context, query string) (QueryResult, error)
	Translate(ctx context.Context, query string) (NL2SQLResult, error)
	ExecuteSQL(ctx context.Context, sql string, seed int64) (ExecResult, error)
	Analytics(ctx context.Context, period, metric string, seed int64) (simdata.AnalyticsResult, error)
	ListDocuments(ctx context.Context) ([]documents.Document, error)
	DeleteDocument(ctx context.Context, id string) error
	ClearStore(ctx context.Context) error
}
