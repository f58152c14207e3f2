package app

import (
	"context"

	"momentum/internal/domain"
)

// ProgressService encapsulates body-metric progress tracking.
type ProgressService struct {
	progress domain.ProgressRepository
}

// NewProgressService creates a ProgressService backed by the given repository.
func NewProgressService(progress domain.ProgressRepository) *ProgressService {
	return &ProgressService{progress: progress}
}

func validateProgress(p *domain.ProgressEntry) error {
	var fields []FieldError
	if p.Weight <= 0 {
		fields = append(fields, FieldError{Field: "weight", Message: "Weight must be a positive number"})
	}
	if p.Height <= 0 {
		fields = append(fields, FieldError{Field: "height", Message: "Height must be a positive number"})
	}
	if p.BodyFatPercentage != nil && (*p.BodyFatPercentage < 0 || *p.BodyFatPercentage > 100) {
		fields = append(fields, FieldError{Field: "body_fat_percentage", Message: "Body fat percentage must be between 0 and 100"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// AddProgress validates and stores a new progress entry.
func (s *ProgressService) AddProgress(ctx context.Context, p *domain.ProgressEntry) (*domain.ProgressEntry, error) {
	if err := validateProgress(p); err != nil {
		return nil, err
	}
	return s.progress.Create(ctx, p)
}

// ListProgress returns the user's progress entries, newest first.
func (s *ProgressService) ListProgress(ctx context.Context, userID int64) ([]domain.ProgressEntry, error) {
	return s.progress.ListByUser(ctx, userID)
}

// UpdateProgress validates and replaces one of the user's entries.
func (s *ProgressService) UpdateProgress(ctx context.Context, p *domain.ProgressEntry) (*domain.ProgressEntry, error) {
	if err := validateProgress(p); err != nil {
		return nil, err
	}
	updated, err := s.progress.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// DeleteProgress removes one of the user's entries.
func (s *ProgressService) DeleteProgress(ctx context.Context, userID, progressID int64) error {
	deleted, err := s.progress.Delete(ctx, userID, progressID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
