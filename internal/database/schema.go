package database

const DocumentsSchemaSQL = `
-- Uploaded schema documents, persisted by the hybrid backend
CREATE TABLE IF NOT EXISTS app_documents (
    id VARCHAR(64) PRIMARY KEY,
    name VARCHAR(500) NOT NULL,
    created_at VARCHAR(32) NOT NULL,
    INDEX idx_created_at (created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
`

// SetupDocumentsSchema creates the documents table if it does not exist.
func (db *DB) SetupDocumentsSchema() error {
	_, err := db.Exec(DocumentsSchemaSQL)
	return err
}
