package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"momentum/internal/auth"
	"momentum/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	getByEmailFn   func(ctx context.Context, email string) (*domain.User, error)
	getByIDFn      func(ctx context.Context, id int64) (*domain.User, error)
	createFn       func(ctx context.Context, name, email, passwordHash, role string) (*domain.User, error)
	updateStatusFn func(ctx context.Context, id int64, status string) error
	updateRoleFn   func(ctx context.Context, id int64, role string) error
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, name, email, passwordHash, role string) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, name, email, passwordHash, role)
	}
	return &domain.User{ID: 1, Name: name, Email: email, PasswordHash: passwordHash, Role: role, Status: domain.StatusNotVerified}, nil
}

func (m *mockUserRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (m *mockUserRepo) UpdateRole(ctx context.Context, id int64, role string) error {
	if m.updateRoleFn != nil {
		return m.updateRoleFn(ctx, id, role)
	}
	return nil
}

func newTestCodec(t *testing.T) *auth.Codec {
	t.Helper()
	c, err := auth.NewCodec("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return c
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)

	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 7, Email: "a@b.com", PasswordHash: string(hash), Role: domain.RoleUser}, nil
		},
	}

	svc := NewAuthService(users, newTestCodec(t))
	token, err := svc.Login(ctx, "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)

	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 7, Email: "a@b.com", PasswordHash: string(hash)}, nil
		},
	}

	svc := NewAuthService(users, newTestCodec(t))
	_, err := svc.Login(context.Background(), "a@b.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, nil
		},
	}

	svc := NewAuthService(users, newTestCodec(t))
	_, err := svc.Login(context.Background(), "nobody@b.com", "whatever")
	// Same error as a wrong password: callers cannot enumerate users.
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_RoleLockedToUser(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, newTestCodec(t))

	_, err := svc.Register(context.Background(), "Eve", "eve@b.com", "secret1", "admin")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAuthService_Register_EmailCollision(t *testing.T) {
	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email}, nil
		},
	}

	svc := NewAuthService(users, newTestCodec(t))
	_, err := svc.Register(context.Background(), "Bob", "bob@b.com", "secret1", "user")
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	var storedHash string
	users := &mockUserRepo{
		createFn: func(ctx context.Context, name, email, passwordHash, role string) (*domain.User, error) {
			storedHash = passwordHash
			return &domain.User{ID: 1, Name: name, Email: email, PasswordHash: passwordHash, Role: role}, nil
		},
	}

	svc := NewAuthService(users, newTestCodec(t))
	if _, err := svc.Register(context.Background(), "Ann", "ann@b.com", "secret1", "user"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if storedHash == "secret1" || storedHash == "" {
		t.Fatalf("password stored without hashing: %q", storedHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestResolveSession_UserDeletedAfterIssue(t *testing.T) {
	codec := newTestCodec(t)
	tok, err := codec.Issue(99, domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	users := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.User, error) {
			return nil, nil // row is gone
		},
	}

	svc := NewAuthService(users, codec)
	_, err = svc.ResolveSession(context.Background(), tok)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestResolveSession_RoleComesFromStorage(t *testing.T) {
	codec := newTestCodec(t)

	// Token issued while the user was a plain user...
	tok, err := codec.Issue(5, domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// ...but storage now says admin.
	users := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: 5, Name: "Pat", Email: "pat@b.com", Role: domain.RoleAdmin, Status: domain.StatusActive}, nil
		},
	}

	svc := NewAuthService(users, codec)
	identity, err := svc.ResolveSession(context.Background(), tok)
	if err != nil {
		t.Fatalf("ResolveSession: %v", err)
	}
	if identity.Role != domain.RoleAdmin {
		t.Fatalf("identity.Role = %q, want %q (storage must win over token claim)", identity.Role, domain.RoleAdmin)
	}
	if !RoleIs(domain.RoleAdmin)(identity) {
		t.Fatal("admin policy should allow the promoted identity")
	}
}

func TestResolveSession_InvalidToken(t *testing.T) {
	reads := 0
	users := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.User, error) {
			reads++
			return &domain.User{ID: id}, nil
		},
	}

	svc := NewAuthService(users, newTestCodec(t))
	if _, err := svc.ResolveSession(context.Background(), "garbage"); err == nil {
		t.Fatal("expected error for invalid token")
	}
	if reads != 0 {
		t.Fatalf("storage read on invalid token: %d reads", reads)
	}
}

func TestRoleIs(t *testing.T) {
	admin := RoleIs(domain.RoleAdmin)
	if admin(&domain.Identity{Role: domain.RoleUser}) {
		t.Error("user identity should be denied")
	}
	if !admin(&domain.Identity{Role: domain.RoleAdmin}) {
		t.Error("admin identity should be allowed")
	}
	if admin(nil) {
		t.Error("nil identity should be denied")
	}
}
