package storage

import (
	"encoding/json"
	"time"
)

// ExtractionRecord is one persisted pipeline run.
// Note: Keep this minimal for DB persistence; the full result lives in the
// Result payload as stored JSON.
type ExtractionRecord struct {
	ID         string          `json:"id"`
	Filename   string          `json:"filename,omitempty"`
	Source     string          `json:"source"` // "api", "upload", or "cli"
	TextLength int             `json:"text_length"`
	Result     json.RawMessage `json:"result"`
	CreatedAt  time.Time       `json:"created_at"`
}
