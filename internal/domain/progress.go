package domain

import (
	"context"
	"time"
)

// ProgressEntry is one body-metric measurement for a user.
type ProgressEntry struct {
	ID                int64     `json:"progress_id"`
	UserID            int64     `json:"user_id"`
	Weight            float64   `json:"weight"`
	Height            float64   `json:"height"`
	BodyFatPercentage *float64  `json:"body_fat_percentage,omitempty"`
	MuscleMass        *float64  `json:"muscle_mass,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// ProgressRepository defines the port for progress-tracking persistence.
type ProgressRepository interface {
	Create(ctx context.Context, p *ProgressEntry) (*ProgressEntry, error)
	ListByUser(ctx context.Context, userID int64) ([]ProgressEntry, error)
	Update(ctx context.Context, p *ProgressEntry) (*ProgressEntry, error)
	Delete(ctx context.Context, userID, progressID int64) (bool, error)
}
