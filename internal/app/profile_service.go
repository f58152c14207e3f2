package app

import (
	"context"
	"strings"
	"time"

	"momentum/internal/domain"

	"github.com/rs/zerolog"
)

var profileGoals = []string{"Lose Fat", "Improve Shape", "Lean & Tone"}

// ProfileService handles the extended user profile and the approval
// transition that follows its completion.
type ProfileService struct {
	profiles domain.ProfileRepository
	users    domain.UserRepository
	log      zerolog.Logger
}

// NewProfileService creates a profile service.
func NewProfileService(profiles domain.ProfileRepository, users domain.UserRepository, log zerolog.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, users: users, log: log}
}

// UpdateProfile upserts the caller's profile, then flips their status to
// active. The status transition is fire-and-forget: its failure is logged
// and swallowed so the profile update still reports success.
func (s *ProfileService) UpdateProfile(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	var fields []FieldError
	if p.Gender != "Male" && p.Gender != "Female" && p.Gender != "Other" {
		fields = append(fields, FieldError{Field: "gender", Message: "Gender must be Male, Female or Other"})
	}
	if _, err := time.Parse("2006-01-02", p.DateOfBirth); err != nil {
		fields = append(fields, FieldError{Field: "date_of_birth", Message: "Date must be in YYYY-MM-DD format"})
	}
	if p.Weight <= 0 {
		fields = append(fields, FieldError{Field: "weight", Message: "Weight must be a positive number"})
	}
	if p.Height <= 0 {
		fields = append(fields, FieldError{Field: "height", Message: "Height must be a positive number"})
	}
	if !validGoal(p.Goal) {
		fields = append(fields, FieldError{Field: "goal", Message: "Goal must be one of: " + strings.Join(profileGoals, ", ")})
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	saved, err := s.profiles.Upsert(ctx, p)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateStatus(ctx, p.UserID, domain.StatusActive); err != nil {
		s.log.Warn().Err(err).Int64("user_id", p.UserID).Msg("approve user after profile completion")
	}

	return saved, nil
}

// GetProfile returns the caller's profile.
func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func validGoal(goal string) bool {
	for _, g := range profileGoals {
		if g == goal {
			return true
		}
	}
	return false
}
