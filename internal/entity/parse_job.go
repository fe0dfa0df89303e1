package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ParseJob represents a parse job for data transfer between layers.
type ParseJob struct {
	ID            uuid.UUID       `json:"id"`
	FileID        uuid.UUID       `json:"file_id"`
	AppraisalID   *uuid.UUID      `json:"appraisal_id,omitempty"`
	DocType       string          `json:"doc_type"`
	Format        string          `json:"format"`
	StartedAt     time.Time       `json:"started_at"`
	FinishedAt    *time.Time      `json:"finished_at,omitempty"`
	Status        *string         `json:"status,omitempty"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
	Pages         *int            `json:"pages,omitempty"`
	ExtractedText *string         `json:"extracted_text,omitempty"`
	RecordJSON    json.RawMessage `json:"record_json,omitempty"`
	EmptyRecord   bool            `json:"empty_record"`
	ExtractMethod *string         `json:"extract_method,omitempty"`
}
