package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusDone       = "done"
	StatusFailed     = "failed"
)

// Variation is one stylized output of a request with its hosted URLs.
type Variation struct {
	Variation  int    `json:"variation"`
	PreviewURL string `json:"preview_url"`
	HighresURL string `json:"highres_url"`
}

type Generation struct {
	ID         uuid.UUID   `json:"id" db:"id"`
	Status     string      `json:"status" db:"status"`
	Prompts    []string    `json:"prompts" db:"prompts"`
	SourcePath string      `json:"-" db:"source_path"`
	Images     []Variation `json:"images" db:"images"`
	Error      string      `json:"error,omitempty" db:"error"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at" db:"updated_at"`
}
