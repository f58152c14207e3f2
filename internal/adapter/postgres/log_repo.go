package postgres

import (
	"context"
	"database/sql"
	"errors"

	"momentum/internal/app"
	"momentum/internal/domain"
)

// LogRepo implements the workout-logging writes on DB. The multi-row writes
// run inside a single database transaction: either every row in a call is
// committed or none are. Isolation is left to the engine's default level.
type LogRepo struct {
	db *DB
}

// NewLogRepo wraps a DB as a WorkoutLogRepository.
func NewLogRepo(db *DB) *LogRepo {
	return &LogRepo{db: db}
}

const logCols = "log_id, user_id, workout_id, duration, calories_burned, COALESCE(notes, ''), created_at"

func scanLog(row interface{ Scan(...any) error }) (*domain.WorkoutLog, error) {
	var l domain.WorkoutLog
	err := row.Scan(&l.ID, &l.UserID, &l.WorkoutID, &l.Duration, &l.CaloriesBurned, &l.Notes, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// CreateLog inserts one workout-completion row and its exercise batch in a
// single transaction. Children are inserted sequentially in input order so a
// storage failure is attributable to a specific entry index; any failure
// rolls back the parent and every child already written.
func (r *LogRepo) CreateLog(ctx context.Context, l *domain.WorkoutLog, entries []domain.ExerciseEntry) (*domain.WorkoutLog, []domain.ExerciseLog, error) {
	tx, err := r.db.sql.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = tx.Rollback() }()

	parent, err := scanLog(tx.QueryRowContext(ctx,
		`INSERT INTO workout_logs (user_id, workout_id, duration, calories_burned, notes)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+logCols,
		l.UserID, l.WorkoutID, l.Duration, l.CaloriesBurned, nullIfEmpty(l.Notes),
	))
	if err != nil {
		return nil, nil, translateErr(err)
	}

	children, err := insertExerciseLogs(ctx, tx, parent.ID, entries)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}
	return parent, children, nil
}

// AppendExercises inserts an exercise batch for an existing parent log, all
// or nothing.
func (r *LogRepo) AppendExercises(ctx context.Context, logID int64, entries []domain.ExerciseEntry) ([]domain.ExerciseLog, error) {
	tx, err := r.db.sql.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	children, err := insertExerciseLogs(ctx, tx, logID, entries)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return children, nil
}

func insertExerciseLogs(ctx context.Context, tx *sql.Tx, logID int64, entries []domain.ExerciseEntry) ([]domain.ExerciseLog, error) {
	children := make([]domain.ExerciseLog, 0, len(entries))
	for i, e := range entries {
		var child domain.ExerciseLog
		err := tx.QueryRowContext(ctx,
			`INSERT INTO exercise_logs (log_id, exercise_id, sets_completed, reps_performed, weight_used, notes)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING exercise_log_id, log_id, exercise_id, sets_completed, reps_performed, weight_used, COALESCE(notes, '')`,
			logID, e.ExerciseID, e.SetsCompleted, e.RepsPerformed, e.WeightUsed, nullIfEmpty(e.Notes),
		).Scan(&child.ID, &child.LogID, &child.ExerciseID, &child.SetsCompleted, &child.RepsPerformed, &child.WeightUsed, &child.Notes)
		if err != nil {
			return nil, &app.EntryError{Index: i, Err: translateErr(err)}
		}
		children = append(children, child)
	}
	return children, nil
}

// GetLog returns one of the user's logs and its children in insert order.
func (r *LogRepo) GetLog(ctx context.Context, userID, logID int64) (*domain.WorkoutLog, []domain.ExerciseLog, error) {
	parent, err := scanLog(r.db.sql.QueryRowContext(ctx,
		"SELECT "+logCols+" FROM workout_logs WHERE log_id = $1 AND user_id = $2", logID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	rows, err := r.db.sql.QueryContext(ctx,
		`SELECT exercise_log_id, log_id, exercise_id, sets_completed, reps_performed, weight_used, COALESCE(notes, '')
		 FROM exercise_logs WHERE log_id = $1 ORDER BY exercise_log_id`, logID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var children []domain.ExerciseLog
	for rows.Next() {
		var c domain.ExerciseLog
		if err := rows.Scan(&c.ID, &c.LogID, &c.ExerciseID, &c.SetsCompleted, &c.RepsPerformed, &c.WeightUsed, &c.Notes); err != nil {
			return nil, nil, err
		}
		children = append(children, c)
	}
	return parent, children, rows.Err()
}

// ListLogs returns the user's logs, newest first.
func (r *LogRepo) ListLogs(ctx context.Context, userID int64) ([]domain.WorkoutLog, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT "+logCols+" FROM workout_logs WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.WorkoutLog
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}
