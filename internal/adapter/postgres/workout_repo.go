package postgres

import (
	"context"
	"database/sql"
	"errors"

	"momentum/internal/domain"
)

// WorkoutRepo implements workout and exercise catalog operations on DB.
type WorkoutRepo struct {
	db *DB
}

// NewWorkoutRepo wraps a DB as a WorkoutRepository and ExerciseRepository.
func NewWorkoutRepo(db *DB) *WorkoutRepo {
	return &WorkoutRepo{db: db}
}

const workoutCols = "workout_id, name, COALESCE(category, ''), duration, COALESCE(difficulty, ''), calories_burned, created_at"

func scanWorkout(row interface{ Scan(...any) error }) (*domain.Workout, error) {
	var w domain.Workout
	err := row.Scan(&w.ID, &w.Name, &w.Category, &w.Duration, &w.Difficulty, &w.CaloriesBurned, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Create inserts a new catalog workout.
func (r *WorkoutRepo) Create(ctx context.Context, w *domain.Workout) (*domain.Workout, error) {
	row := r.db.sql.QueryRowContext(ctx,
		`INSERT INTO workouts (name, category, duration, difficulty, calories_burned)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+workoutCols,
		w.Name, nullIfEmpty(w.Category), w.Duration, nullIfEmpty(w.Difficulty), w.CaloriesBurned,
	)
	return scanWorkout(row)
}

// GetByID retrieves a workout by id.
func (r *WorkoutRepo) GetByID(ctx context.Context, id int64) (*domain.Workout, error) {
	w, err := scanWorkout(r.db.sql.QueryRowContext(ctx,
		"SELECT "+workoutCols+" FROM workouts WHERE workout_id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return w, err
}

// List returns the whole catalog, newest first.
func (r *WorkoutRepo) List(ctx context.Context) ([]domain.Workout, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT "+workoutCols+" FROM workouts ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *w)
	}
	return out, rows.Err()
}

// Update replaces a workout's fields, returning nil when the row is absent.
func (r *WorkoutRepo) Update(ctx context.Context, w *domain.Workout) (*domain.Workout, error) {
	updated, err := scanWorkout(r.db.sql.QueryRowContext(ctx,
		`UPDATE workouts
		 SET name = $1, category = $2, duration = $3, difficulty = $4, calories_burned = $5
		 WHERE workout_id = $6
		 RETURNING `+workoutCols,
		w.Name, nullIfEmpty(w.Category), w.Duration, nullIfEmpty(w.Difficulty), w.CaloriesBurned, w.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return updated, err
}

// Delete removes a workout; logs and exercises follow via cascade.
func (r *WorkoutRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.sql.ExecContext(ctx, "DELETE FROM workouts WHERE workout_id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// ExerciseRepo implements exercise catalog operations on DB.
type ExerciseRepo struct {
	db *DB
}

// NewExerciseRepo wraps a DB as an ExerciseRepository.
func NewExerciseRepo(db *DB) *ExerciseRepo {
	return &ExerciseRepo{db: db}
}

const exerciseCols = "exercise_id, workout_id, name, COALESCE(muscle_group, ''), sets, reps, created_at"

func scanExercise(row interface{ Scan(...any) error }) (*domain.Exercise, error) {
	var e domain.Exercise
	err := row.Scan(&e.ID, &e.WorkoutID, &e.Name, &e.MuscleGroup, &e.Sets, &e.Reps, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a catalog exercise under a workout.
func (r *ExerciseRepo) Create(ctx context.Context, e *domain.Exercise) (*domain.Exercise, error) {
	row := r.db.sql.QueryRowContext(ctx,
		`INSERT INTO exercises (workout_id, name, muscle_group, sets, reps)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+exerciseCols,
		e.WorkoutID, e.Name, nullIfEmpty(e.MuscleGroup), e.Sets, e.Reps,
	)
	return scanExercise(row)
}

// GetByID retrieves an exercise by id.
func (r *ExerciseRepo) GetByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	e, err := scanExercise(r.db.sql.QueryRowContext(ctx,
		"SELECT "+exerciseCols+" FROM exercises WHERE exercise_id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

// ListByWorkout returns a workout's exercises in creation order.
func (r *ExerciseRepo) ListByWorkout(ctx context.Context, workoutID int64) ([]domain.Exercise, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT "+exerciseCols+" FROM exercises WHERE workout_id = $1 ORDER BY created_at", workoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Exercise
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// Update replaces an exercise's fields, returning nil when absent.
func (r *ExerciseRepo) Update(ctx context.Context, e *domain.Exercise) (*domain.Exercise, error) {
	updated, err := scanExercise(r.db.sql.QueryRowContext(ctx,
		`UPDATE exercises
		 SET name = $1, muscle_group = $2, sets = $3, reps = $4
		 WHERE exercise_id = $5
		 RETURNING `+exerciseCols,
		e.Name, nullIfEmpty(e.MuscleGroup), e.Sets, e.Reps, e.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return updated, err
}

// Delete removes an exercise.
func (r *ExerciseRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.sql.ExecContext(ctx, "DELETE FROM exercises WHERE exercise_id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
