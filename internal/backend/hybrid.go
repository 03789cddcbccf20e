package backend

import (
	"context"
	"fmt"

	"github.com/matthieukhl/schemapilot/internal/clock"
	"github.com/matthieukhl/schemapilot/internal/config"
	"github.com/matthieukhl/schemapilot/internal/documents"
)

// HybridBackend persists uploaded documents in the local relational store
// while still proxying query, NL2SQL, execute and analytics operations to
// the external webhook.
type HybridBackend struct {
	*WebhookBackend
	docs  documents.Store
	clock clock.Clock
}

// NewHybrid creates the hybrid backend over a webhook client and a local
// document store.
func NewHybrid(cfg *config.WebhookConfig, docs documents.Store, clk clock.Clock) (*HybridBackend, error) {
	wh, err := NewWebhook(cfg)
	if err != nil {
		return nil, err
	}
	return &HybridBackend{WebhookBackend: wh, docs: docs, clock: clk}, nil
}

func (b *HybridBackend) Mode() string {
	return "hybrid"
}

func (b *HybridBackend) UploadSchema(ctx context.Context, fileNames []string) (UploadResult, error) {
	n := len(fileNames)
	doc := documents.NewDocument(fmt.Sprintf("Uploaded %d file(s)", n), b.clock.Now())
	if err := b.docs.Add(doc); err != nil {
		return UploadResult{}, err
	}
	return UploadResult{
		Message:    fmt.Sprintf("Successfully uploaded %d file(s) to vector database", n),
		Status:     "processed",
		DocumentID: doc.ID,
	}, nil
}

func (b *HybridBackend) ListDocuments(ctx context.Context) ([]documents.Document, error) {
	return b.docs.List()
}

func (b *HybridBackend) DeleteDocument(ctx context.Context, id string) error {
	return b.docs.Delete(id)
}

func (b *HybridBackend) ClearStore(ctx context.Context) error {
	return b.docs.Clear()
}

// Compile-time interface check
var _ Backend = (*HybridBackend)(nil)
