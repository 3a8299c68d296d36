package docs

import (
	"encoding/json"
	"time"
)

// Upload statuses form the extraction state machine.
const (
	StatusUploaded   = "UPLOADED"
	StatusExtracting = "EXTRACTING"
	StatusExtracted  = "EXTRACTED"
	StatusImported   = "IMPORTED"
	StatusFailed     = "FAILED"
)

// Upload is one document waiting for (or finished with) AI extraction.
type Upload struct {
	ID            int             `json:"id"`
	BatchID       string          `json:"batch_id"`
	UploadedBy    *string         `json:"uploaded_by,omitempty"`
	ObjectKey     string          `json:"object_key"`
	Filename      string          `json:"filename"`
	Status        string          `json:"status"`
	DocType       *string         `json:"doc_type,omitempty"`
	RawText       *string         `json:"raw_text,omitempty"`
	ParsedData    json.RawMessage `json:"parsed_data,omitempty"`
	FailureReason *string         `json:"failure_reason,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
