package interfaces

import "context"

// Identity is the resolved caller of an authenticated request.
type Identity struct {
	UserID string
	Email  string
	Staff  bool
}

// IIdentityProvider resolves an opaque bearer token to an identity.
// Token contents are never inspected locally.
type IIdentityProvider interface {
	Resolve(ctx context.Context, token string) (Identity, error)
}
