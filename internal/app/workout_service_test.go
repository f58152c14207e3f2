package app

import (
	"context"
	"errors"
	"testing"

	"momentum/internal/domain"
)

type mockLogRepo struct {
	createLogFn       func(ctx context.Context, l *domain.WorkoutLog, entries []domain.ExerciseEntry) (*domain.WorkoutLog, []domain.ExerciseLog, error)
	appendExercisesFn func(ctx context.Context, logID int64, entries []domain.ExerciseEntry) ([]domain.ExerciseLog, error)
	getLogFn          func(ctx context.Context, userID, logID int64) (*domain.WorkoutLog, []domain.ExerciseLog, error)
	listLogsFn        func(ctx context.Context, userID int64) ([]domain.WorkoutLog, error)
}

func (m *mockLogRepo) CreateLog(ctx context.Context, l *domain.WorkoutLog, entries []domain.ExerciseEntry) (*domain.WorkoutLog, []domain.ExerciseLog, error) {
	if m.createLogFn != nil {
		return m.createLogFn(ctx, l, entries)
	}
	out := *l
	out.ID = 1
	children := make([]domain.ExerciseLog, 0, len(entries))
	for i, e := range entries {
		children = append(children, domain.ExerciseLog{
			ID: int64(i + 1), LogID: out.ID, ExerciseID: e.ExerciseID,
			SetsCompleted: e.SetsCompleted, RepsPerformed: e.RepsPerformed,
			WeightUsed: e.WeightUsed, Notes: e.Notes,
		})
	}
	return &out, children, nil
}

func (m *mockLogRepo) AppendExercises(ctx context.Context, logID int64, entries []domain.ExerciseEntry) ([]domain.ExerciseLog, error) {
	if m.appendExercisesFn != nil {
		return m.appendExercisesFn(ctx, logID, entries)
	}
	return nil, nil
}

func (m *mockLogRepo) GetLog(ctx context.Context, userID, logID int64) (*domain.WorkoutLog, []domain.ExerciseLog, error) {
	if m.getLogFn != nil {
		return m.getLogFn(ctx, userID, logID)
	}
	return nil, nil, nil
}

func (m *mockLogRepo) ListLogs(ctx context.Context, userID int64) ([]domain.WorkoutLog, error) {
	if m.listLogsFn != nil {
		return m.listLogsFn(ctx, userID)
	}
	return nil, nil
}

type mockWorkoutRepo struct {
	createFn  func(ctx context.Context, w *domain.Workout) (*domain.Workout, error)
	getByIDFn func(ctx context.Context, id int64) (*domain.Workout, error)
	listFn    func(ctx context.Context) ([]domain.Workout, error)
	updateFn  func(ctx context.Context, w *domain.Workout) (*domain.Workout, error)
	deleteFn  func(ctx context.Context, id int64) (bool, error)
}

func (m *mockWorkoutRepo) Create(ctx context.Context, w *domain.Workout) (*domain.Workout, error) {
	if m.createFn != nil {
		return m.createFn(ctx, w)
	}
	out := *w
	out.ID = 1
	return &out, nil
}

func (m *mockWorkoutRepo) GetByID(ctx context.Context, id int64) (*domain.Workout, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockWorkoutRepo) List(ctx context.Context) ([]domain.Workout, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockWorkoutRepo) Update(ctx context.Context, w *domain.Workout) (*domain.Workout, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, w)
	}
	return nil, nil
}

func (m *mockWorkoutRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return false, nil
}

func TestLogWorkout_InvalidEntryShortCircuitsBeforeStorage(t *testing.T) {
	storageCalls := 0
	logs := &mockLogRepo{
		createLogFn: func(ctx context.Context, l *domain.WorkoutLog, entries []domain.ExerciseEntry) (*domain.WorkoutLog, []domain.ExerciseLog, error) {
			storageCalls++
			return nil, nil, nil
		},
	}
	svc := NewWorkoutService(&mockWorkoutRepo{}, logs)

	entries := []domain.ExerciseEntry{
		{ExerciseID: 1, SetsCompleted: 3, RepsPerformed: 10},
		{ExerciseID: 2, SetsCompleted: 3, RepsPerformed: 12},
		{ExerciseID: 3, SetsCompleted: -1, RepsPerformed: 10},
	}

	_, _, err := svc.LogWorkout(context.Background(), 1, 1, 30, 250, "", entries)
	var entryErr *EntryError
	if !errors.As(err, &entryErr) {
		t.Fatalf("expected EntryError, got %v", err)
	}
	if entryErr.Index != 2 {
		t.Errorf("EntryError.Index = %d, want 2", entryErr.Index)
	}
	if storageCalls != 0 {
		t.Errorf("storage touched despite validation failure: %d calls", storageCalls)
	}
}

func TestLogWorkout_EmptyBatchAccepted(t *testing.T) {
	svc := NewWorkoutService(&mockWorkoutRepo{}, &mockLogRepo{})

	parent, children, err := svc.LogWorkout(context.Background(), 1, 2, 30, 250, "easy day", nil)
	if err != nil {
		t.Fatalf("LogWorkout: %v", err)
	}
	if parent == nil || parent.ID == 0 {
		t.Fatal("expected a parent record")
	}
	if len(children) != 0 {
		t.Fatalf("expected empty child list, got %d", len(children))
	}
}

func TestLogWorkout_PreservesEntryOrder(t *testing.T) {
	svc := NewWorkoutService(&mockWorkoutRepo{}, &mockLogRepo{})

	entries := []domain.ExerciseEntry{
		{ExerciseID: 30, SetsCompleted: 3, RepsPerformed: 10},
		{ExerciseID: 10, SetsCompleted: 4, RepsPerformed: 8},
		{ExerciseID: 20, SetsCompleted: 5, RepsPerformed: 5},
	}

	_, children, err := svc.LogWorkout(context.Background(), 1, 2, 45, 300, "", entries)
	if err != nil {
		t.Fatalf("LogWorkout: %v", err)
	}
	if len(children) != len(entries) {
		t.Fatalf("got %d children, want %d", len(children), len(entries))
	}
	for i, c := range children {
		if c.ExerciseID != entries[i].ExerciseID {
			t.Errorf("child %d exercise = %d, want %d", i, c.ExerciseID, entries[i].ExerciseID)
		}
	}
}

func TestLogWorkout_ParentValidation(t *testing.T) {
	svc := NewWorkoutService(&mockWorkoutRepo{}, &mockLogRepo{})

	_, _, err := svc.LogWorkout(context.Background(), 1, 0, 0, -1, "", nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 3 {
		t.Errorf("got %d field errors, want 3", len(verr.Fields))
	}
}

func TestAppendExerciseLogs_MissingParent(t *testing.T) {
	logs := &mockLogRepo{
		getLogFn: func(ctx context.Context, userID, logID int64) (*domain.WorkoutLog, []domain.ExerciseLog, error) {
			return nil, nil, nil
		},
	}
	svc := NewWorkoutService(&mockWorkoutRepo{}, logs)

	_, err := svc.AppendExerciseLogs(context.Background(), 1, 404, []domain.ExerciseEntry{
		{ExerciseID: 1, SetsCompleted: 3, RepsPerformed: 10},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateWorkout_Validation(t *testing.T) {
	svc := NewWorkoutService(&mockWorkoutRepo{}, &mockLogRepo{})

	_, err := svc.CreateWorkout(context.Background(), &domain.Workout{Name: "", Duration: 0, CaloriesBurned: 0})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
