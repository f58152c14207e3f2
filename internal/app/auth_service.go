package app

import (
	"context"
	"strings"

	"momentum/internal/auth"
	"momentum/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login, and per-request session
// resolution.
type AuthService struct {
	users domain.UserRepository
	codec *auth.Codec
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, codec *auth.Codec) *AuthService {
	return &AuthService{users: users, codec: codec}
}

// Register creates a new user with a hashed password. The only role a caller
// may register as is "user".
func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (*domain.User, error) {
	var fields []FieldError
	if strings.TrimSpace(name) == "" {
		fields = append(fields, FieldError{Field: "name", Message: "Name is required"})
	}
	if !strings.Contains(email, "@") {
		fields = append(fields, FieldError{Field: "email", Message: "Valid email is required"})
	}
	if len(password) < 6 {
		fields = append(fields, FieldError{Field: "password", Message: "Password must be at least 6 characters"})
	}
	if role != domain.RoleUser {
		fields = append(fields, FieldError{Field: "role", Message: "Role is required"})
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, name, email, string(hash), role)
}

// Login authenticates a user and issues a signed token. A missing user and a
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.codec.Issue(user.ID, user.Role)
}

// ResolveSession verifies a raw bearer token and re-fetches the user row,
// producing the per-request identity. The token only identifies which row to
// read: role and status always come from storage, so a demotion or deletion
// takes effect immediately without token revocation. Exactly one storage
// read happens per syntactically valid token.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*domain.Identity, error) {
	claims, err := s.codec.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return &domain.Identity{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Status: user.Status,
	}, nil
}

// Policy is a pluggable authorization predicate over the resolved identity.
type Policy func(*domain.Identity) bool

// RoleIs returns a Policy allowing only identities with the given role.
func RoleIs(role string) Policy {
	return func(id *domain.Identity) bool {
		return id != nil && id.Role == role
	}
}
