package app

import (
	"context"
	"strings"

	"momentum/internal/domain"
)

// ExerciseService encapsulates the per-workout exercise catalog.
type ExerciseService struct {
	exercises domain.ExerciseRepository
	workouts  domain.WorkoutRepository
}

// NewExerciseService creates an ExerciseService backed by the given repositories.
func NewExerciseService(exercises domain.ExerciseRepository, workouts domain.WorkoutRepository) *ExerciseService {
	return &ExerciseService{exercises: exercises, workouts: workouts}
}

func validateExercise(e *domain.Exercise) error {
	var fields []FieldError
	if strings.TrimSpace(e.Name) == "" {
		fields = append(fields, FieldError{Field: "name", Message: "Name is required"})
	}
	if e.Sets <= 0 {
		fields = append(fields, FieldError{Field: "sets", Message: "Sets must be a positive number"})
	}
	if e.Reps <= 0 {
		fields = append(fields, FieldError{Field: "reps", Message: "Reps must be a positive number"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// CreateExercise validates and stores a new exercise under a workout.
func (s *ExerciseService) CreateExercise(ctx context.Context, e *domain.Exercise) (*domain.Exercise, error) {
	if err := validateExercise(e); err != nil {
		return nil, err
	}
	w, err := s.workouts.GetByID(ctx, e.WorkoutID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrNotFound
	}
	return s.exercises.Create(ctx, e)
}

// GetExercise returns one exercise.
func (s *ExerciseService) GetExercise(ctx context.Context, id int64) (*domain.Exercise, error) {
	e, err := s.exercises.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrNotFound
	}
	return e, nil
}

// ListByWorkout returns a workout's exercises in creation order.
func (s *ExerciseService) ListByWorkout(ctx context.Context, workoutID int64) ([]domain.Exercise, error) {
	return s.exercises.ListByWorkout(ctx, workoutID)
}

// UpdateExercise validates and replaces an exercise.
func (s *ExerciseService) UpdateExercise(ctx context.Context, e *domain.Exercise) (*domain.Exercise, error) {
	if err := validateExercise(e); err != nil {
		return nil, err
	}
	updated, err := s.exercises.Update(ctx, e)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// DeleteExercise removes an exercise.
func (s *ExerciseService) DeleteExercise(ctx context.Context, id int64) error {
	deleted, err := s.exercises.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
