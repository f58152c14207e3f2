// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// Roles a user row may carry. Stored as free-form strings; these are the
// values the application writes.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Statuses a user row may carry.
const (
	StatusNotVerified = "not verified"
	StatusActive      = "active"
)

// User represents a registered user in the system.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Status       string
	CreatedAt    time.Time
}

// Identity is the per-request authenticated identity, rebuilt on every
// request from a verified token plus a fresh user-row read. It is never
// persisted or cached across requests.
type Identity struct {
	UserID int64  `json:"userId"`
	Name   string `json:"username"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// Profile holds the extended user profile completed after registration.
type Profile struct {
	UserID      int64     `json:"user_id"`
	ImageURL    string    `json:"image_url,omitempty"`
	Gender      string    `json:"gender"`
	DateOfBirth string    `json:"date_of_birth"`
	Weight      float64   `json:"current_weight"`
	Height      float64   `json:"current_height"`
	Goal        string    `json:"goal"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserRepository defines the port for user persistence operations.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, name, email, passwordHash, role string) (*User, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	UpdateRole(ctx context.Context, id int64, role string) error
}

// ProfileRepository defines the port for profile persistence operations.
type ProfileRepository interface {
	Upsert(ctx context.Context, p *Profile) (*Profile, error)
	GetByUserID(ctx context.Context, userID int64) (*Profile, error)
}
