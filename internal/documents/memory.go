package documents

import "sync"

// MemoryStore keeps documents in process memory. It is seeded with two
// sample documents so the UI has something to show before any upload.
type MemoryStore struct {
	mu   sync.Mutex
	docs []Document
}

// NewMemoryStore creates a memory store pre-seeded with sample documents.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: []Document{
			{ID: "sim-1", Name: "Sample ERP schema", CreatedAt: "2025-01-15T10:00:00"},
			{ID: "sim-2", Name: "Demo schema", CreatedAt: "2025-02-01T09:00:00"},
		},
	}
}

func (s *MemoryStore) List() ([]Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Document, len(s.docs))
	copy(out, s.docs)
	return out, nil
}

func (s *MemoryStore) Add(doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(s.docs, doc)
	return nil
}

// Delete removes a document by id. Deleting an unknown id is a no-op.
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.docs[:0]
	for _, d := range s.docs {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	s.docs = kept
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = nil
	return nil
}

// Compile-time interface check
var _ Store = (*MemoryStore)(nil)
