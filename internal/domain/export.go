package domain

import (
	"time"

	"github.com/google/uuid"
)

type ExportStatus string

const (
	ExportPending   ExportStatus = "pending"
	ExportSucceeded ExportStatus = "succeeded"
	ExportFailed    ExportStatus = "failed"
)

// Export records one PDF export of a session's preview.
type Export struct {
	ID        uuid.UUID    `json:"id"`
	SessionID string       `json:"session_id,omitempty"`
	Template  string       `json:"template"`
	Title     string       `json:"title"`
	FileName  string       `json:"file_name"`
	Status    ExportStatus `json:"status"`
	Attempts  int          `json:"attempts"`
	Error     string       `json:"error,omitempty"`
	PDF       []byte       `json:"-"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
