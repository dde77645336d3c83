package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"

	pkgcrypto "noteshare/internal/crypto"
	"noteshare/internal/errs"
	"noteshare/internal/limiter"
	"noteshare/internal/model"
	"noteshare/internal/repository"
	"noteshare/internal/token"
)

type fakeUsers struct {
	byName map[string]*model.User

	createErr error
	getErr    error
}

var _ repository.UserRepository = (*fakeUsers)(nil)

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.byName == nil {
		f.byName = map[string]*model.User{}
	}
	if _, exists := f.byName[u.Username]; exists {
		return errs.ErrAlreadyExists
	}
	cpy := *u
	f.byName[u.Username] = &cpy
	return nil
}
func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range f.byName {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}
func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byName[username]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *u
	return &c, nil
}

type fakeSessions struct {
	tokens map[string]uuid.UUID

	addErr      error
	verifyCalls int
}

var _ repository.SessionRepository = (*fakeSessions)(nil)

func (f *fakeSessions) Add(_ context.Context, tok string, userID uuid.UUID) error {
	if f.addErr != nil {
		return f.addErr
	}
	if f.tokens == nil {
		f.tokens = map[string]uuid.UUID{}
	}
	f.tokens[tok] = userID
	return nil
}
func (f *fakeSessions) Verify(_ context.Context, tok string) error {
	f.verifyCalls++
	if _, ok := f.tokens[tok]; !ok {
		return errs.ErrRefreshNotFound
	}
	return nil
}
func (f *fakeSessions) Delete(_ context.Context, tok string) error {
	delete(f.tokens, tok)
	return nil
}

type fakeLimiter struct {
	allowOK  bool
	allowErr error

	failBlocked bool
	failErr     error

	successCalls int
	failureCalls int
}

var _ limiter.Limiter = (*fakeLimiter)(nil)

func (l *fakeLimiter) Allow(context.Context, string, []byte) (bool, time.Duration, error) {
	return l.allowOK, 0, l.allowErr
}
func (l *fakeLimiter) Success(context.Context, string, []byte) error {
	l.successCalls++
	return nil
}
func (l *fakeLimiter) Failure(context.Context, string, []byte) (bool, time.Duration, error) {
	l.failureCalls++
	return l.failBlocked, 0, l.failErr
}

func newCodec() *token.Manager {
	return token.NewManager([]byte("access-secret"), []byte("refresh-secret"), time.Minute)
}

func seedUser(t *testing.T, users *fakeUsers, username, password string) *model.User {
	t.Helper()
	salt, err := pkgcrypto.NewSalt()
	if err != nil {
		t.Fatalf("NewSalt: %v", err)
	}
	u := &model.User{
		ID:       uuid.Must(uuid.NewV4()),
		Username: username,
		Fullname: username,
		Salt:     salt,
		PwdHash:  pkgcrypto.HashPassword([]byte(password), salt),
	}
	if users.byName == nil {
		users.byName = map[string]*model.User{}
	}
	users.byName[username] = u
	return u
}

func TestAuth_Register_Basics(t *testing.T) {
	t.Parallel()
	users := &fakeUsers{byName: map[string]*model.User{}}
	s := NewAuthService(users, &fakeSessions{}, newCodec(), &fakeLimiter{})

	if _, err := s.Register(context.Background(), "", "", ""); err == nil {
		t.Fatalf("want validation error on empty username/password")
	}

	id, err := s.Register(context.Background(), "alice", "pwd", "Alice")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if id == "" {
		t.Fatalf("empty user id")
	}

	if _, err := s.Register(context.Background(), "alice", "pwd2", "Alice II"); !errors.Is(err, errs.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists on duplicate username, got %v", err)
	}

	users.createErr = errors.New("boom")
	if _, err := s.Register(context.Background(), "bob", "pwd", "Bob"); err == nil {
		t.Fatalf("want propagated repo error")
	}
}

func TestAuth_Login_RateLimiterAndCreds(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{}
	seedUser(t, users, "alice", "correct")
	lim := &fakeLimiter{allowOK: true}
	sessions := &fakeSessions{}
	s := NewAuthService(users, sessions, newCodec(), lim)

	lim.allowErr = errors.New("lim-err")
	if _, err := s.Login(context.Background(), "alice", "correct", "1.2.3.4"); err == nil {
		t.Fatalf("want limiter error propagate")
	}
	lim.allowErr = nil

	lim.allowOK = false
	if _, err := s.Login(context.Background(), "alice", "correct", "1.2.3.4"); !errors.Is(err, errs.ErrRateLimited) {
		t.Fatalf("want ErrRateLimited, got %v", err)
	}
	lim.allowOK = true

	// Missing user and wrong password fail identically.
	if _, err := s.Login(context.Background(), "nobody", "x", ""); !errors.Is(err, errs.ErrBadCredentials) {
		t.Fatalf("want ErrBadCredentials on missing user, got %v", err)
	}
	if _, err := s.Login(context.Background(), "alice", "wrong", ""); !errors.Is(err, errs.ErrBadCredentials) {
		t.Fatalf("want ErrBadCredentials on wrong password, got %v", err)
	}
	if lim.failureCalls != 2 {
		t.Fatalf("failureCalls = %d, want 2", lim.failureCalls)
	}

	lim.failBlocked = true
	if _, err := s.Login(context.Background(), "alice", "wrong", ""); !errors.Is(err, errs.ErrRateLimited) {
		t.Fatalf("want ErrRateLimited on blocked after failure, got %v", err)
	}
	lim.failBlocked = false

	tok, err := s.Login(context.Background(), "alice", "correct", "127.0.0.1:123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tok.AccessToken == "" || tok.RefreshToken == "" || tok.AccessToken == tok.RefreshToken {
		t.Fatalf("bad token pair: %+v", tok)
	}
	if _, ok := sessions.tokens[tok.RefreshToken]; !ok {
		t.Fatalf("refresh token not recorded in session store")
	}
	if lim.successCalls == 0 {
		t.Fatalf("expected Success() to be called")
	}
}

func TestAuth_Login_SessionStoreErrorPropagates(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{}
	seedUser(t, users, "alice", "pw")
	sessions := &fakeSessions{addErr: errors.New("db down")}
	s := NewAuthService(users, sessions, newCodec(), &fakeLimiter{allowOK: true})

	if _, err := s.Login(context.Background(), "alice", "pw", ""); err == nil {
		t.Fatalf("want session store error propagate")
	}
}

func TestAuth_Refresh_DualCheck(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{}
	u := seedUser(t, users, "alice", "pw")
	sessions := &fakeSessions{}
	codec := newCodec()
	s := NewAuthService(users, sessions, codec, &fakeLimiter{allowOK: true})

	// Garbage never reaches the store.
	if _, _, err := s.Refresh(context.Background(), "garbage"); !errors.Is(err, errs.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
	if sessions.verifyCalls != 0 {
		t.Fatalf("store consulted for an unverifiable token")
	}

	// Cryptographically valid but never issued through login.
	stray, err := codec.NewRefreshToken(u.ID)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if _, _, err := s.Refresh(context.Background(), stray); !errors.Is(err, errs.ErrRefreshNotFound) {
		t.Fatalf("want ErrRefreshNotFound, got %v", err)
	}

	tok, err := s.Login(context.Background(), "alice", "pw", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	access, exp, err := s.Refresh(context.Background(), tok.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if access == "" || !exp.After(time.Now()) {
		t.Fatalf("bad refreshed access token")
	}
	got, err := codec.VerifyAccessToken(access)
	if err != nil || got != u.ID {
		t.Fatalf("refreshed token subject = %v (%v), want %v", got, err, u.ID)
	}

	// Not rotated: the same refresh token keeps working.
	if _, _, err := s.Refresh(context.Background(), tok.RefreshToken); err != nil {
		t.Fatalf("second Refresh: %v", err)
	}
}

func TestAuth_Logout_RevokesExactlyOnce(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{}
	seedUser(t, users, "alice", "pw")
	s := NewAuthService(users, &fakeSessions{}, newCodec(), &fakeLimiter{allowOK: true})

	tok, err := s.Login(context.Background(), "alice", "pw", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := s.Logout(context.Background(), tok.RefreshToken); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if err := s.Logout(context.Background(), tok.RefreshToken); !errors.Is(err, errs.ErrRefreshNotFound) {
		t.Fatalf("second Logout = %v, want ErrRefreshNotFound", err)
	}
	if _, _, err := s.Refresh(context.Background(), tok.RefreshToken); !errors.Is(err, errs.ErrRefreshNotFound) {
		t.Fatalf("Refresh after logout = %v, want ErrRefreshNotFound", err)
	}
}

func TestAuth_LoginRefresh_Scenario(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{}
	u := seedUser(t, users, "johndoe", "secret123")
	codec := newCodec()
	s := NewAuthService(users, &fakeSessions{}, codec, &fakeLimiter{allowOK: true})

	tok, err := s.Login(context.Background(), "johndoe", "secret123", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// iat has second precision; cross the boundary so the tokens differ.
	time.Sleep(1100 * time.Millisecond)

	access, _, err := s.Refresh(context.Background(), tok.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if access == tok.AccessToken {
		t.Fatalf("refreshed access token identical to the first")
	}
	got, err := codec.VerifyAccessToken(access)
	if err != nil {
		t.Fatalf("VerifyAccessToken: %v", err)
	}
	if got != u.ID {
		t.Fatalf("subject = %s, want %s", got, u.ID)
	}
}
