package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/matthieukhl/schemapilot/internal/config"
	"github.com/matthieukhl/schemapilot/internal/documents"
	"github.com/matthieukhl/schemapilot/internal/simdata"
)

// WebhookBackend forwards every operation to an external workflow webhook
// (an n8n-style automation endpoint) and passes its JSON responses through.
type WebhookBackend struct {
	baseURL string
	client  *http.Client
}

// webhookEnvelope is the response wrapper the workflow endpoints reply with.
type webhookEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// NewWebhook creates a backend that proxies to the configured webhook URL.
func NewWebhook(cfg *config.WebhookConfig) (*WebhookBackend, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("webhook URL is required for webhook mode")
	}
	return &WebhookBackend{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (b *WebhookBackend) Mode() string {
	return "webhook"
}

func (b *WebhookBackend) UploadSchema(ctx context.Context, fileNames []string) (UploadResult, error) {
	var out UploadResult
	err := b.call(ctx, http.MethodPost, "/upload-schema", map[string]any{"files": fileNames}, &out)
	return out, err
}

func (b *WebhookBackend) QuerySchema(ctx context.Context, query string) (QueryResult, error) {
	var out QueryResult
	err := b.call(ctx, http.MethodPost, "/query-schema", map[string]any{"query": query}, &out)
	return out, err
}

func (b *WebhookBackend) Translate(ctx context.Context, query string) (NL2SQLResult, error) {
	var out NL2SQLResult
	err := b.call(ctx, http.MethodPost, "/nl2sql", map[string]any{"query": query}, &out)
	return out, err
}

func (b *WebhookBackend) ExecuteSQL(ctx context.Context, sql string, seed int64) (ExecResult, error) {
	var out ExecResult
	err := b.call(ctx, http.MethodPost, "/execute-sql", map[string]any{"sql": sql, "seed": seed}, &out)
	return out, err
}

func (b *WebhookBackend) Analytics(ctx context.Context, period, metric string, seed int64) (simdata.AnalyticsResult, error) {
	var out simdata.AnalyticsResult
	path := fmt.Sprintf("/analytics?period=%s&metric=%s&seed=%d",
		url.QueryEscape(period), url.QueryEscape(metric), seed)
	err := b.call(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (b *WebhookBackend) ListDocuments(ctx context.Context) ([]documents.Document, error) {
	var out []documents.Document
	err := b.call(ctx, http.MethodGet, "/documents", nil, &out)
	return out, err
}

func (b *WebhookBackend) DeleteDocument(ctx context.Context, id string) error {
	return b.call(ctx, http.MethodDelete, "/documents/"+url.PathEscape(id), nil, nil)
}

func (b *WebhookBackend) ClearStore(ctx context.Context) error {
	return b.call(ctx, http.MethodPost, "/clear-vector-store", nil, nil)
}

// call sends one request to the webhook and decodes the enveloped response
// into out when provided.
func (b *WebhookBackend) call(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal webhook request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read webhook response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(raw))
	}

	var envelope webhookEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("failed to decode webhook response: %w", err)
	}
	if !envelope.Success {
		return fmt.Errorf("webhook error: %s", envelope.Error)
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode webhook data: %w", err)
		}
	}
	return nil
}

// Compile-time interface check
var _ Backend = (*WebhookBackend)(nil)
