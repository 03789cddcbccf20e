// Package documents tracks the schema documents uploaded through the API.
// The simulated backend keeps them in memory; the hybrid backend persists
// them in MySQL.
package documents

import (
	"time"

	"github.com/google/uuid"
)

// TimestampLayout matches the created_at format exposed by the API.
const TimestampLayout = "2006-01-02T15:04:05"

type Document struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	CreatedAt string `json:"created_at" db:"created_at"`
}

// Store is the document inventory consumed by the backends.
type Store interface {
	List() ([]Document, error)
	Add(doc Document) error
	Delete(id string) error
	Clear() error
}

// NewID returns a fresh simulated document id.
func NewID() string {
	return "sim-" + uuid.NewString()[:8]
}

// NewDocument builds a document record stamped with the given time.
func NewDocument(name string, now time.Time) Document {
	return Document{
		ID:        NewID(),
		Name:      name,
		CreatedAt: now.Format(TimestampLayout),
	}
}
