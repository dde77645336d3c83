package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// SessionRepository persists issued refresh tokens verbatim so they can be
// individually revoked. Expiry is the codec's concern, not storage's: a token
// is valid iff it verifies cryptographically AND is still present here.
type SessionRepository interface {
	// Add records the token as active. Re-adding the same token is a no-op.
	Add(ctx context.Context, token string, userID uuid.UUID) error
	// Verify fails with errs.ErrRefreshNotFound if the token is not recorded.
	Verify(ctx context.Context, token string) error
	// Delete removes the token record.
	Delete(ctx context.Context, token string) error
}
