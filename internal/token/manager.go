// Package token issues and verifies signed session tokens (access and refresh).
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"noteshare/internal/errs"
)

// Manager creates and verifies HS256 JWTs. Access and refresh tokens are
// signed with separate keys so one class can never pass for the other.
// Access tokens self-expire after accessTTL; refresh tokens carry no expiry
// at the codec level and are revoked through the session store instead.
type Manager struct {
	accessKey  []byte
	refreshKey []byte
	accessTTL  time.Duration
}

// NewManager constructs a Manager with the given signing keys and access TTL.
func NewManager(accessKey, refreshKey []byte, accessTTL time.Duration) *Manager {
	return &Manager{accessKey: accessKey, refreshKey: refreshKey, accessTTL: accessTTL}
}

// NewAccessToken creates a signed access token for the given subject.
func (m *Manager) NewAccessToken(userID uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(m.accessTTL)
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.accessKey)
	return signed, exp, err
}

// NewRefreshToken creates a signed refresh token for the given subject.
// A random jti keeps tokens issued within the same second distinct.
func (m *Manager) NewRefreshToken(userID uuid.UUID) (string, error) {
	jti, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	claims := jwt.RegisteredClaims{
		Subject:  userID.String(),
		IssuedAt: jwt.NewNumericDate(time.Now()),
		ID:       jti.String(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(m.refreshKey)
}

// verifyLeeway absorbs clock skew between issuing and verifying hosts.
const verifyLeeway = 30 * time.Second

// VerifyAccessToken validates signature and expiry and returns the subject.
func (m *Manager) VerifyAccessToken(token string) (uuid.UUID, error) {
	return m.verify(token, m.accessKey)
}

// VerifyRefreshToken validates the signature and returns the subject.
// Refresh tokens carry no exp claim, so only the signature gates here;
// revocation is the session store's concern.
func (m *Manager) VerifyRefreshToken(token string) (uuid.UUID, error) {
	return m.verify(token, m.refreshKey)
}

func (m *Manager) verify(token string, key []byte) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	}, jwt.WithLeeway(verifyLeeway))
	if err != nil || !parsed.Valid {
		return uuid.Nil, fmt.Errorf("%w: parse", errs.ErrInvalidToken)
	}

	id, err := uuid.FromString(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject", errs.ErrInvalidToken)
	}
	return id, nil
}
