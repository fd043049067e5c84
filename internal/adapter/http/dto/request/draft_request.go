package request

import (
	"strings"

	"easydrive_booking/internal/domain/entities"
)

// SaveDraftRequest creates or replaces a draft. ID is optional; leaving it
// empty creates a new draft.
type SaveDraftRequest struct {
	ID              string                 `json:"id"`
	Form            *entities.ShipmentForm `json:"form" binding:"required"`
	Quote           *entities.Quote        `json:"quote"`
	DraftSource     string                 `json:"draft_source"`
	NeedsExtraction bool                   `json:"needs_extraction"`
}

func (r SaveDraftRequest) ToDraft(userID string) entities.Draft {
	return entities.Draft{
		ID:              strings.TrimSpace(r.ID),
		UserID:          userID,
		FormData:        r.Form,
		Quote:           r.Quote,
		DraftSource:     entities.DraftSource(strings.TrimSpace(r.DraftSource)),
		NeedsExtraction: r.NeedsExtraction,
	}
}
