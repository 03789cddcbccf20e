package documents

import (
	"fmt"

	"github.com/matthieukhl/schemapilot/internal/database"
)

// SQLStore persists documents in the app_documents table.
type SQLStore struct {
	db *database.DB
}

// NewSQLStore creates a SQL-backed document store and ensures its table exists.
func NewSQLStore(db *database.DB) (*SQLStore, error) {
	if err := db.SetupDocumentsSchema(); err != nil {
		return nil, fmt.Errorf("failed to setup documents schema: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) List() ([]Document, error) {
	var docs []Document
	if err := s.db.Select(&docs, "SELECT id, name, created_at FROM app_documents ORDER BY created_at"); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

func (s *SQLStore) Add(doc Document) error {
	_, err := s.db.NamedExec(
		"INSERT INTO app_documents (id, name, created_at) VALUES (:id, :name, :created_at)", doc)
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}
	return nil
}

func (s *SQLStore) Delete(id string) error {
	if _, err := s.db.Exec("DELETE FROM app_documents WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

func (s *SQLStore) Clear() error {
	if _, err := s.db.Exec("DELETE FROM app_documents"); err != nil {
		return fmt.Errorf("failed to clear documents: %w", err)
	}
	return nil
}

// Compile-time interface check
var _ Store = (*SQLStore)(nil)
