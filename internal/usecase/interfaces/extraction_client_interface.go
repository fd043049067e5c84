package interfaces

import "context"

// IExtractionClient abstracts the document-extraction provider. Extract
// posts one document and returns the provider's raw decoded JSON, which the
// extraction normalizer then shapes into a ShipmentForm.
type IExtractionClient interface {
	Extract(ctx context.Context, filename string, contentType string, data []byte) (any, error)
}
