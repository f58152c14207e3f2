package app

import (
	"context"
	"errors"
	"strings"

	"momentum/internal/domain"
)

// WorkoutService encapsulates the workout catalog and workout logging.
type WorkoutService struct {
	workouts domain.WorkoutRepository
	logs     domain.WorkoutLogRepository
}

// NewWorkoutService creates a WorkoutService backed by the given repositories.
func NewWorkoutService(workouts domain.WorkoutRepository, logs domain.WorkoutLogRepository) *WorkoutService {
	return &WorkoutService{workouts: workouts, logs: logs}
}

func validateWorkout(w *domain.Workout) error {
	var fields []FieldError
	if strings.TrimSpace(w.Name) == "" {
		fields = append(fields, FieldError{Field: "name", Message: "Name is required"})
	}
	if w.Duration <= 0 {
		fields = append(fields, FieldError{Field: "duration", Message: "Duration must be a positive number"})
	}
	if w.CaloriesBurned <= 0 {
		fields = append(fields, FieldError{Field: "calories_burned", Message: "Calories burned must be a positive number"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// CreateWorkout validates and stores a new catalog workout.
func (s *WorkoutService) CreateWorkout(ctx context.Context, w *domain.Workout) (*domain.Workout, error) {
	if err := validateWorkout(w); err != nil {
		return nil, err
	}
	return s.workouts.Create(ctx, w)
}

// GetWorkout returns one catalog workout.
func (s *WorkoutService) GetWorkout(ctx context.Context, id int64) (*domain.Workout, error) {
	w, err := s.workouts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrNotFound
	}
	return w, nil
}

// ListWorkouts returns the whole catalog, newest first.
func (s *WorkoutService) ListWorkouts(ctx context.Context) ([]domain.Workout, error) {
	return s.workouts.List(ctx)
}

// UpdateWorkout validates and replaces a catalog workout.
func (s *WorkoutService) UpdateWorkout(ctx context.Context, w *domain.Workout) (*domain.Workout, error) {
	if err := validateWorkout(w); err != nil {
		return nil, err
	}
	updated, err := s.workouts.Update(ctx, w)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// DeleteWorkout removes a catalog workout. Logged completions referencing it
// go with it via the storage cascade.
func (s *WorkoutService) DeleteWorkout(ctx context.Context, id int64) error {
	deleted, err := s.workouts.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func validateEntries(entries []domain.ExerciseEntry) error {
	for i, e := range entries {
		switch {
		case e.ExerciseID <= 0:
			return &EntryError{Index: i, Err: errors.New("exercise_id must be a positive integer")}
		case e.SetsCompleted <= 0:
			return &EntryError{Index: i, Err: errors.New("sets_completed must be a positive integer")}
		case e.RepsPerformed <= 0:
			return &EntryError{Index: i, Err: errors.New("reps_performed must be a positive integer")}
		}
	}
	return nil
}

// LogWorkout records one workout completion and its ordered exercise batch
// as a single atomic unit. Entries are validated up front so a bad entry
// never touches storage; a storage failure mid-batch rolls back the parent
// and every child. An empty batch is fine: a workout can be logged with no
// exercises. The call is not idempotent; repeating it makes a second log.
func (s *WorkoutService) LogWorkout(ctx context.Context, userID, workoutID int64, duration int, caloriesBurned float64, notes string, entries []domain.ExerciseEntry) (*domain.WorkoutLog, []domain.ExerciseLog, error) {
	var fields []FieldError
	if workoutID <= 0 {
		fields = append(fields, FieldError{Field: "workout_id", Message: "Workout ID is required"})
	}
	if duration <= 0 {
		fields = append(fields, FieldError{Field: "duration", Message: "Duration must be greater than 0"})
	}
	if caloriesBurned < 0 {
		fields = append(fields, FieldError{Field: "calories_burned", Message: "Calories burned must be greater than or equal to 0"})
	}
	if len(fields) > 0 {
		return nil, nil, &ValidationError{Fields: fields}
	}
	if err := validateEntries(entries); err != nil {
		return nil, nil, err
	}

	return s.logs.CreateLog(ctx, &domain.WorkoutLog{
		UserID:         userID,
		WorkoutID:      workoutID,
		Duration:       duration,
		CaloriesBurned: caloriesBurned,
		Notes:          notes,
	}, entries)
}

// AppendExerciseLogs attaches an exercise batch to an existing workout log
// owned by the caller. The batch is all-or-nothing.
func (s *WorkoutService) AppendExerciseLogs(ctx context.Context, userID, logID int64, entries []domain.ExerciseEntry) ([]domain.ExerciseLog, error) {
	if err := validateEntries(entries); err != nil {
		return nil, err
	}

	parent, _, err := s.logs.GetLog(ctx, userID, logID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrNotFound
	}

	return s.logs.AppendExercises(ctx, logID, entries)
}

// GetLog returns one workout log and its children, in insert order.
func (s *WorkoutService) GetLog(ctx context.Context, userID, logID int64) (*domain.WorkoutLog, []domain.ExerciseLog, error) {
	parent, children, err := s.logs.GetLog(ctx, userID, logID)
	if err != nil {
		return nil, nil, err
	}
	if parent == nil {
		return nil, nil, ErrNotFound
	}
	return parent, children, nil
}

// ListLogs returns the caller's workout logs, newest first.
func (s *WorkoutService) ListLogs(ctx context.Context, userID int64) ([]domain.WorkoutLog, error) {
	return s.logs.ListLogs(ctx, userID)
}
