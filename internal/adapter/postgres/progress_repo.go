package postgres

import (
	"context"
	"database/sql"
	"errors"

	"momentum/internal/domain"
)

// ProgressRepo implements domain.ProgressRepository on Postgres.
type ProgressRepo struct {
	db *DB
}

func NewProgressRepo(db *DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

const progressCols = "progress_id, user_id, weight, height, body_fat_percentage, muscle_mass, COALESCE(notes, ''), created_at"

func scanProgress(row interface{ Scan(...any) error }) (*domain.ProgressEntry, error) {
	var p domain.ProgressEntry
	err := row.Scan(&p.ID, &p.UserID, &p.Weight, &p.Height, &p.BodyFatPercentage, &p.MuscleMass, &p.Notes, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProgressRepo) Create(ctx context.Context, p *domain.ProgressEntry) (*domain.ProgressEntry, error) {
	return scanProgress(r.db.sql.QueryRowContext(ctx,
		`INSERT INTO progress_tracking (user_id, weight, height, body_fat_percentage, muscle_mass, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+progressCols,
		p.UserID, p.Weight, p.Height, p.BodyFatPercentage, p.MuscleMass, nullIfEmpty(p.Notes),
	))
}

func (r *ProgressRepo) ListByUser(ctx context.Context, userID int64) ([]domain.ProgressEntry, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT "+progressCols+" FROM progress_tracking WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ProgressEntry
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *ProgressRepo) Update(ctx context.Context, p *domain.ProgressEntry) (*domain.ProgressEntry, error) {
	updated, err := scanProgress(r.db.sql.QueryRowContext(ctx,
		`UPDATE progress_tracking
		 SET weight = $1, height = $2, body_fat_percentage = $3, muscle_mass = $4, notes = $5
		 WHERE progress_id = $6 AND user_id = $7
		 RETURNING `+progressCols,
		p.Weight, p.Height, p.BodyFatPercentage, p.MuscleMass, nullIfEmpty(p.Notes), p.ID, p.UserID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return updated, err
}

func (r *ProgressRepo) Delete(ctx context.Context, userID, progressID int64) (bool, error) {
	res, err := r.db.sql.ExecContext(ctx,
		"DELETE FROM progress_tracking WHERE progress_id = $1 AND user_id = $2", progressID, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
