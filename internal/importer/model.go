package importer

import (
	"github.com/SirCoffee1429/prep-pal-sub000/internal/extract"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/matching"
)

// RowPreview pairs one extracted item name with its catalog resolution.
// Rows that resolved with any confidence come back preselected so the
// reviewer only has to touch the misses.
type RowPreview struct {
	Index       int                  `json:"index"`
	RawName     string               `json:"raw_name"`
	Match       matching.MatchResult `json:"match"`
	Preselected bool                 `json:"preselected"`
}

// DocumentPreview is one document of a batch with its rows resolved.
// DuplicateOfID points at the earlier batch document this one appears to
// duplicate, if any.
type DocumentPreview struct {
	DocumentID    int               `json:"document_id"`
	Filename      string            `json:"filename"`
	Status        string            `json:"status"`
	DocType       string            `json:"doc_type,omitempty"`
	FailureReason string            `json:"failure_reason,omitempty"`
	DuplicateOfID *int              `json:"duplicate_of_id,omitempty"`
	Document      *extract.Document `json:"document,omitempty"`
	Rows          []RowPreview      `json:"rows,omitempty"`
}

// BatchPreview is the review screen payload for one upload batch.
type BatchPreview struct {
	BatchID   string            `json:"batch_id"`
	Documents []DocumentPreview `json:"documents"`
}

// RowCommit is the reviewer's decision for one row: whether to import it
// and, when the automatic match was wrong or absent, which catalog entry
// it really is. Row data itself is re-read server side; only decisions
// cross the wire.
type RowCommit struct {
	Index      int    `json:"index"`
	Include    bool   `json:"include"`
	MenuItemID string `json:"menu_item_id,omitempty"`
}

// DocumentCommit carries the decisions for one document.
type DocumentCommit struct {
	DocumentID int         `json:"document_id"`
	Skip       bool        `json:"skip"`
	Rows       []RowCommit `json:"rows"`
}

// CommitRequest applies a reviewed batch.
type CommitRequest struct {
	Documents []DocumentCommit `json:"documents"`
}

// DocumentOutcome summarizes what happened to one document on commit.
type DocumentOutcome struct {
	DocumentID int      `json:"document_id"`
	Imported   int      `json:"imported"`
	Skipped    int      `json:"skipped"`
	Failed     int      `json:"failed"`
	Errors     []string `json:"errors,omitempty"`
}

// CommitSummary is the rollup for the whole batch. Partial failure is
// normal here: rows that fail are counted and reported, never abort the
// rest of the batch.
type CommitSummary struct {
	BatchID   string            `json:"batch_id"`
	Imported  int               `json:"imported"`
	Skipped   int               `json:"skipped"`
	Failed    int               `json:"failed"`
	Documents []DocumentOutcome `json:"documents"`
}
