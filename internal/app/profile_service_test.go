package app

import (
	"context"
	"errors"
	"testing"

	"momentum/internal/domain"

	"github.com/rs/zerolog"
)

type mockProfileRepo struct {
	upsertFn      func(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	getByUserIDFn func(ctx context.Context, userID int64) (*domain.Profile, error)
}

func (m *mockProfileRepo) Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, p)
	}
	return p, nil
}

func (m *mockProfileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	if m.getByUserIDFn != nil {
		return m.getByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func validProfile() *domain.Profile {
	return &domain.Profile{
		UserID:      1,
		Gender:      "Female",
		DateOfBirth: "1995-04-12",
		Weight:      62.5,
		Height:      168,
		Goal:        "Improve Shape",
	}
}

func TestUpdateProfile_ApprovesUser(t *testing.T) {
	var approved []string
	users := &mockUserRepo{
		updateStatusFn: func(ctx context.Context, id int64, status string) error {
			approved = append(approved, status)
			return nil
		},
	}

	svc := NewProfileService(&mockProfileRepo{}, users, zerolog.Nop())
	if _, err := svc.UpdateProfile(context.Background(), validProfile()); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if len(approved) != 1 || approved[0] != domain.StatusActive {
		t.Fatalf("expected one status transition to %q, got %v", domain.StatusActive, approved)
	}
}

func TestUpdateProfile_ApprovalFailureIsSwallowed(t *testing.T) {
	users := &mockUserRepo{
		updateStatusFn: func(ctx context.Context, id int64, status string) error {
			return errors.New("storage down")
		},
	}

	svc := NewProfileService(&mockProfileRepo{}, users, zerolog.Nop())
	saved, err := svc.UpdateProfile(context.Background(), validProfile())
	if err != nil {
		t.Fatalf("profile update must succeed despite approval failure, got %v", err)
	}
	if saved == nil {
		t.Fatal("expected saved profile")
	}
}

func TestUpdateProfile_Validation(t *testing.T) {
	svc := NewProfileService(&mockProfileRepo{}, &mockUserRepo{}, zerolog.Nop())

	p := validProfile()
	p.Gender = "Unknown"
	p.DateOfBirth = "12-04-1995"
	p.Goal = "Get Swole"

	_, err := svc.UpdateProfile(context.Background(), p)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 3 {
		t.Errorf("got %d field errors, want 3: %+v", len(verr.Fields), verr.Fields)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	svc := NewProfileService(&mockProfileRepo{}, &mockUserRepo{}, zerolog.Nop())

	_, err := svc.GetProfile(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
