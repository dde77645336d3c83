// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Tokens collects the access/refresh pair issued at login.
type Tokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time // access token expiry (for diagnostics)
}

// User represents an account. The password is stored only as a salted hash.
type User struct {
	ID        uuid.UUID // PK
	Username  string    // unique
	Fullname  string
	PwdHash   []byte // Argon2id(password, Salt)
	Salt      []byte // per-user auth salt
	CreatedAt time.Time
}

// Note is a single shared note. Owner is set at creation and never changes.
type Note struct {
	ID        uuid.UUID
	Owner     uuid.UUID // FK -> users.id
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Capability is the unit of authorization granularity over a note.
type Capability string

const (
	CapRead   Capability = "read"
	CapModify Capability = "modify"
	CapDelete Capability = "delete"
)

// ExportRequest is published to the export queue when a user asks for a dump
// of their notes. The core never inspects the resulting payload.
type ExportRequest struct {
	UserID      uuid.UUID `json:"userId"`
	TargetEmail string    `json:"targetEmail"`
}
