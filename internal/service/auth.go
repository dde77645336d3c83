// Package service contains application services for authentication, notes,
// collaborations and exports.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	pkgcrypto "noteshare/internal/crypto"
	"noteshare/internal/errs"
	"noteshare/internal/limiter"
	"noteshare/internal/model"
	"noteshare/internal/repository"
	"noteshare/internal/token"
)

// AuthService defines account and session operations.
type AuthService interface {
	// Register creates a new user with secure password hashing.
	Register(ctx context.Context, username, password, fullname string) (userID string, err error)
	// Login applies rate-limiting, authenticates the user and issues a token pair.
	Login(ctx context.Context, username, password, ip string) (model.Tokens, error)
	// Refresh mints a new access token for a valid, unrevoked refresh token.
	Refresh(ctx context.Context, refreshToken string) (access string, exp time.Time, err error)
	// Logout revokes a refresh token.
	Logout(ctx context.Context, refreshToken string) error
	// GetUser loads a user profile by id.
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type AuthServiceImpl struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	codec    *token.Manager
	lim      limiter.Limiter
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, codec *token.Manager, lim limiter.Limiter) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, sessions: sessions, codec: codec, lim: lim}
}

// Register creates a new user record with a per-user salt.
func (s *AuthServiceImpl) Register(ctx context.Context, username, password, fullname string) (string, error) {
	if username == "" || password == "" {
		return "", errors.New("empty username/password")
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	salt, err := pkgcrypto.NewSalt()
	if err != nil {
		return "", err
	}

	u := &model.User{
		ID:       uid,
		Username: username,
		Fullname: fullname,
		PwdHash:  pkgcrypto.HashPassword([]byte(password), salt),
		Salt:     salt,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return "", err
	}
	return uid.String(), nil
}

// Login authenticates with rate limiting by (username, ip). Unknown username
// and wrong password both fail with ErrBadCredentials so the caller cannot
// probe which accounts exist.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password, ip string) (model.Tokens, error) {
	ipHash := limiter.HashIP(ip)

	allowed, _, err := s.lim.Allow(ctx, username, ipHash)
	if err != nil {
		return model.Tokens{}, err
	}
	if !allowed {
		return model.Tokens{}, errs.ErrRateLimited
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil || !pkgcrypto.VerifyPassword([]byte(password), u.Salt, u.PwdHash) {
		if blocked, _, ferr := s.lim.Failure(ctx, username, ipHash); ferr == nil && blocked {
			return model.Tokens{}, errs.ErrRateLimited
		}
		return model.Tokens{}, errs.ErrBadCredentials
	}

	// Success: reset counters (best-effort).
	_ = s.lim.Success(ctx, username, ipHash)

	access, exp, err := s.codec.NewAccessToken(u.ID)
	if err != nil {
		return model.Tokens{}, err
	}
	refresh, err := s.codec.NewRefreshToken(u.ID)
	if err != nil {
		return model.Tokens{}, err
	}
	if err := s.sessions.Add(ctx, refresh, u.ID); err != nil {
		return model.Tokens{}, fmt.Errorf("record refresh token: %w", err)
	}
	return model.Tokens{AccessToken: access, RefreshToken: refresh, ExpiresAt: exp}, nil
}

// Refresh issues a new access token. The refresh token must both verify
// cryptographically and still be present in the session store: logout revokes
// a token long before it would ever expire. The token itself is not rotated.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (string, time.Time, error) {
	uid, err := s.codec.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", time.Time{}, err
	}
	if err := s.sessions.Verify(ctx, refreshToken); err != nil {
		return "", time.Time{}, err
	}
	return s.codec.NewAccessToken(uid)
}

// Logout revokes a refresh token. Revoking an unknown or already revoked
// token fails with ErrRefreshNotFound.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if err := s.sessions.Verify(ctx, refreshToken); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, refreshToken)
}

// GetUser loads a user profile by id.
func (s *AuthServiceImpl) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}
