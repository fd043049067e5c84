package entities

import "time"

// DraftSource tags how a draft came to exist.
type DraftSource string

const (
	DraftSourceManual     DraftSource = "manual"
	DraftSourceBulkUpload DraftSource = "bulk_upload"
)

// Draft is an unconfirmed, resumable unit of work.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI user_id-index: user_id (the drafts list view)
//
// Attached document binaries live in the blob store keyed by draft id, never
// on this record: draft metadata must stay cheap to enumerate for the drafts
// list view. Deleting a draft deletes the blobs first, then this record, so a
// dangling blob entry can never outlive its metadata.
//
// A draft with NeedsExtraction set was queued from a bulk upload before its
// documents were read; it carries no quote and must not expose one on resume.
type Draft struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	FormData        *ShipmentForm `json:"form_data"`
	Quote           *Quote        `json:"quote,omitempty"`
	DocCount        int           `json:"doc_count"`
	DraftSource     DraftSource   `json:"draft_source"`
	NeedsExtraction bool          `json:"needs_extraction,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}
