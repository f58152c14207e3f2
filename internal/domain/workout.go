package domain

import (
	"context"
	"time"
)

// Workout is one entry in the shared workout catalog.
type Workout struct {
	ID             int64     `json:"workout_id"`
	Name           string    `json:"name"`
	Category       string    `json:"category,omitempty"`
	Duration       int       `json:"duration"`
	Difficulty     string    `json:"difficulty,omitempty"`
	CaloriesBurned float64   `json:"calories_burned"`
	CreatedAt      time.Time `json:"created_at"`
}

// Exercise is a catalog exercise belonging to a workout.
type Exercise struct {
	ID          int64     `json:"exercise_id"`
	WorkoutID   int64     `json:"workout_id"`
	Name        string    `json:"name"`
	MuscleGroup string    `json:"muscle_group,omitempty"`
	Sets        int       `json:"sets"`
	Reps        int       `json:"reps"`
	CreatedAt   time.Time `json:"created_at"`
}

// WorkoutLog is one logged occurrence of performing a workout. Rows are
// insert-only; they disappear only via storage-level cascade.
type WorkoutLog struct {
	ID             int64     `json:"log_id"`
	UserID         int64     `json:"user_id"`
	WorkoutID      int64     `json:"workout_id"`
	Duration       int       `json:"duration"`
	CaloriesBurned float64   `json:"calories_burned"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ExerciseLog is one logged exercise performance within a WorkoutLog. It
// never exists without its parent: the batch insert is all-or-nothing.
type ExerciseLog struct {
	ID            int64    `json:"exercise_log_id"`
	LogID         int64    `json:"log_id"`
	ExerciseID    int64    `json:"exercise_id"`
	SetsCompleted int      `json:"sets_completed"`
	RepsPerformed int      `json:"reps_performed"`
	WeightUsed    *float64 `json:"weight_used,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

// ExerciseEntry is the caller-supplied input for one exercise in a log batch.
type ExerciseEntry struct {
	ExerciseID    int64    `json:"exercise_id"`
	SetsCompleted int      `json:"sets_completed"`
	RepsPerformed int      `json:"reps_performed"`
	WeightUsed    *float64 `json:"weight_used,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

// WorkoutRepository defines the port for workout catalog persistence.
type WorkoutRepository interface {
	Create(ctx context.Context, w *Workout) (*Workout, error)
	GetByID(ctx context.Context, id int64) (*Workout, error)
	List(ctx context.Context) ([]Workout, error)
	Update(ctx context.Context, w *Workout) (*Workout, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ExerciseRepository defines the port for exercise catalog persistence.
type ExerciseRepository interface {
	Create(ctx context.Context, e *Exercise) (*Exercise, error)
	GetByID(ctx context.Context, id int64) (*Exercise, error)
	ListByWorkout(ctx context.Context, workoutID int64) ([]Exercise, error)
	Update(ctx context.Context, e *Exercise) (*Exercise, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// WorkoutLogRepository defines the port for the workout-logging writes.
// CreateLog and AppendExercises are transactional: either every row in the
// call is committed or none are.
type WorkoutLogRepository interface {
	CreateLog(ctx context.Context, l *WorkoutLog, entries []ExerciseEntry) (*WorkoutLog, []ExerciseLog, error)
	AppendExercises(ctx context.Context, logID int64, entries []ExerciseEntry) ([]ExerciseLog, error)
	GetLog(ctx context.Context, userID, logID int64) (*WorkoutLog, []ExerciseLog, error)
	ListLogs(ctx context.Context, userID int64) ([]WorkoutLog, error)
}
