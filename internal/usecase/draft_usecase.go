package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"easydrive_booking/internal/domain/entities"
	"easydrive_booking/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDraftNotFound  = errors.New("draft not found")
	ErrInvalidDraftID = errors.New("invalid draft id")
	ErrDraftNoForm    = errors.New("draft form data required")
)

// DraftDocument is one uploaded file bound for a draft's blob store.
type DraftDocument struct {
	Name        string
	ContentType string
	Data        []byte
}

// IDraftUseCase exposes the resumable draft store. Metadata lives in the
// draft repository, binaries in the document store; every read path here
// touches metadata only.
type IDraftUseCase interface {
	SaveDraft(ctx context.Context, d entities.Draft) (entities.Draft, error)
	ListDrafts(ctx context.Context, userID string) ([]entities.Draft, error)
	ResumeDraft(ctx context.Context, userID string, id string) (entities.Draft, error)
	DeleteDraft(ctx context.Context, userID string, id string) error
	AttachDocuments(ctx context.Context, userID string, id string, docs []DraftDocument) (entities.Draft, error)
	ListDocuments(ctx context.Context, userID string, id string) ([]interfaces.StoredDocument, error)
}

type DraftUseCase struct {
	repo interfaces.IDraftRepository
	docs interfaces.IDocumentStore
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(repo interfaces.IDraftRepository, docs interfaces.IDocumentStore) *DraftUseCase {
	return &DraftUseCase{repo: repo, docs: docs}
}

func (u *DraftUseCase) SaveDraft(ctx context.Context, d entities.Draft) (entities.Draft, error) {
	d.UserID = strings.TrimSpace(d.UserID)
	if d.UserID == "" {
		return entities.Draft{}, ErrInvalidUserID
	}
	if d.FormData == nil {
		return entities.Draft{}, ErrDraftNoForm
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.DraftSource == "" {
		d.DraftSource = entities.DraftSourceManual
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	// Queued bulk uploads have not been read yet; any quote on the payload
	// is stale and must not survive.
	if d.NeedsExtraction {
		d.Quote = nil
	}
	return u.repo.Save(ctx, d)
}

// ListDrafts returns the caller's drafts newest-first.
func (u *DraftUseCase) ListDrafts(ctx context.Context, userID string) ([]entities.Draft, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	drafts, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(drafts, func(i, j int) bool {
		return drafts[i].CreatedAt.After(drafts[j].CreatedAt)
	})
	return drafts, nil
}

// ResumeDraft loads one draft for editing. A draft still waiting on
// extraction resumes without a quote.
func (u *DraftUseCase) ResumeDraft(ctx context.Context, userID string, id string) (entities.Draft, error) {
	d, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return entities.Draft{}, err
	}
	if d.NeedsExtraction {
		d.Quote = nil
	}
	return d, nil
}

// DeleteDraft removes blobs first, then metadata, so a failed blob wipe
// leaves the draft listed rather than leaking orphaned files.
func (u *DraftUseCase) DeleteDraft(ctx context.Context, userID string, id string) error {
	d, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := u.docs.DeleteAll(ctx, d.ID); err != nil {
		return err
	}
	return u.repo.Delete(ctx, d.ID)
}

func (u *DraftUseCase) AttachDocuments(ctx context.Context, userID string, id string, docs []DraftDocument) (entities.Draft, error) {
	d, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return entities.Draft{}, err
	}

	for i, doc := range docs {
		if _, err := u.docs.Put(ctx, d.ID, d.DocCount+i, doc.Name, doc.ContentType, doc.Data); err != nil {
			return entities.Draft{}, err
		}
	}
	d.DocCount += len(docs)
	return u.repo.Save(ctx, d)
}

func (u *DraftUseCase) ListDocuments(ctx context.Context, userID string, id string) ([]interfaces.StoredDocument, error) {
	d, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return u.docs.List(ctx, d.ID)
}

// getOwned resolves a draft and checks ownership. Another user's draft
// reads as not found, never as forbidden.
func (u *DraftUseCase) getOwned(ctx context.Context, userID string, id string) (entities.Draft, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Draft{}, ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Draft{}, ErrInvalidDraftID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Draft{}, err
	}
	if d.ID == "" || d.UserID != userID {
		return entities.Draft{}, ErrDraftNotFound
	}
	return d, nil
}
