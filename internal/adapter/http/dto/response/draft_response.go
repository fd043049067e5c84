package response

import (
	"time"

	"easydrive_booking/internal/domain/entities"
	"easydrive_booking/internal/usecase/interfaces"
)

type DraftResponse struct {
	ID              string                 `json:"id"`
	Form            *entities.ShipmentForm `json:"form"`
	Quote           *QuoteResponse         `json:"quote,omitempty"`
	DocCount        int                    `json:"doc_count"`
	DraftSource     string                 `json:"draft_source"`
	NeedsExtraction bool                   `json:"needs_extraction,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

func FromDraft(d entities.Draft) DraftResponse {
	resp := DraftResponse{
		ID:              d.ID,
		Form:            d.FormData,
		DocCount:        d.DocCount,
		DraftSource:     string(d.DraftSource),
		NeedsExtraction: d.NeedsExtraction,
		CreatedAt:       d.CreatedAt,
	}
	if d.Quote != nil {
		q := FromQuote(*d.Quote)
		resp.Quote = &q
	}
	return resp
}

func FromDrafts(drafts []entities.Draft) []DraftResponse {
	out := make([]DraftResponse, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, FromDraft(d))
	}
	return out
}

type DraftDocumentResponse struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

func FromStoredDocuments(docs []interfaces.StoredDocument) []DraftDocumentResponse {
	out := make([]DraftDocumentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, DraftDocumentResponse{
			Key:         doc.Key,
			Name:        doc.Name,
			ContentType: doc.ContentType,
			Size:        doc.Size,
		})
	}
	return out
}
