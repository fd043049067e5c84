package interfaces

import "context"

// StoredDocument describes one attached file as the blob store reports it.
type StoredDocument struct {
	Key         string
	Name        string
	ContentType string
	Size        int64
}

// IDocumentStore abstracts blob storage for draft document attachments.
// Keys are scoped by draft id so DeleteAll can wipe a draft's files without
// consulting metadata.
type IDocumentStore interface {
	Put(ctx context.Context, draftID string, index int, name string, contentType string, data []byte) (StoredDocument, error)
	List(ctx context.Context, draftID string) ([]StoredDocument, error)
	DeleteAll(ctx context.Context, draftID string) error
}
