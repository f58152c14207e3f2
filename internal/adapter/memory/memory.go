// Package memory implements in-memory repositories for development and testing.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"momentum/internal/app"
	"momentum/internal/domain"
)

// DB implements an in-memory database storage. A single mutex guards all
// tables, which also makes the multi-row log writes atomic.
type DB struct {
	mu            sync.Mutex
	users         []*domain.User
	profiles      map[int64]*domain.Profile
	workouts      []domain.Workout
	exercises     []domain.Exercise
	logs          []domain.WorkoutLog
	exerciseLogs  []domain.ExerciseLog
	meals         []domain.Meal
	progress      []domain.ProgressEntry
	notifications []domain.Notification

	userIDCounter         int64
	workoutIDCounter      int64
	exerciseIDCounter     int64
	logIDCounter          int64
	exerciseLogIDCounter  int64
	mealIDCounter         int64
	progressIDCounter     int64
	notificationIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		profiles: make(map[int64]*domain.Profile),
	}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.ProfileRepository = (*DB)(nil)
var _ domain.WorkoutRepository = (*WorkoutRepo)(nil)
var _ domain.ExerciseRepository = (*ExerciseRepo)(nil)
var _ domain.WorkoutLogRepository = (*LogRepo)(nil)
var _ domain.MealRepository = (*MealRepo)(nil)
var _ domain.ProgressRepository = (*ProgressRepo)(nil)
var _ domain.NotificationRepository = (*NotificationRepo)(nil)

// --- UserRepository ---

// GetByEmail retrieves a user by email. Returns nil if not found.
func (db *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID. Returns nil if not found.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (db *DB) Create(ctx context.Context, name, email, passwordHash, role string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			return nil, errors.New("user already exists")
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Status:       domain.StatusNotVerified,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	cp := *u
	return &cp, nil
}

// UpdateStatus sets a user's status.
func (db *DB) UpdateStatus(ctx context.Context, id int64, status string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			u.Status = status
			return nil
		}
	}
	return errors.New("user not found")
}

// UpdateRole sets a user's role.
func (db *DB) UpdateRole(ctx context.Context, id int64, role string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return errors.New("user not found")
}

// DeleteUser removes a user row. Tests use it to simulate deletion between
// token issue and verification.
func (db *DB) DeleteUser(ctx context.Context, id int64) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, u := range db.users {
		if u.ID == id {
			db.users = append(db.users[:i], db.users[i+1:]...)
			return
		}
	}
}

// --- ProfileRepository ---

// Upsert creates or replaces a user's profile.
func (db *DB) Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	cp := *p
	cp.UpdatedAt = time.Now().UTC()
	db.profiles[p.UserID] = &cp
	ret := cp
	return &ret, nil
}

// GetByUserID retrieves a user's profile. Returns nil if not found.
func (db *DB) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if p, ok := db.profiles[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

// --- WorkoutRepository ---

// WorkoutRepo implements workout catalog persistence.
type WorkoutRepo struct {
	db *DB
}

func NewWorkoutRepo(db *DB) *WorkoutRepo {
	return &WorkoutRepo{db: db}
}

func (r *WorkoutRepo) Create(ctx context.Context, w *domain.Workout) (*domain.Workout, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.workoutIDCounter++
	cp := *w
	cp.ID = r.db.workoutIDCounter
	cp.CreatedAt = time.Now().UTC()
	r.db.workouts = append(r.db.workouts, cp)
	ret := cp
	return &ret, nil
}

func (r *WorkoutRepo) GetByID(ctx context.Context, id int64) (*domain.Workout, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.workouts {
		if r.db.workouts[i].ID == id {
			cp := r.db.workouts[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *WorkoutRepo) List(ctx context.Context) ([]domain.Workout, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	result := make([]domain.Workout, len(r.db.workouts))
	copy(result, r.db.workouts)
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *WorkoutRepo) Update(ctx context.Context, w *domain.Workout) (*domain.Workout, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.workouts {
		if r.db.workouts[i].ID == w.ID {
			cp := *w
			cp.CreatedAt = r.db.workouts[i].CreatedAt
			r.db.workouts[i] = cp
			ret := cp
			return &ret, nil
		}
	}
	return nil, nil
}

func (r *WorkoutRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.workouts {
		if r.db.workouts[i].ID == id {
			r.db.workouts = append(r.db.workouts[:i], r.db.workouts[i+1:]...)
			// cascade, as the schema does
			r.db.exercises = filterExercises(r.db.exercises, func(e domain.Exercise) bool {
				return e.WorkoutID != id
			})
			return true, nil
		}
	}
	return false, nil
}

func filterExercises(in []domain.Exercise, keep func(domain.Exercise) bool) []domain.Exercise {
	out := in[:0]
	for _, e := range in {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// --- ExerciseRepository ---

// ExerciseRepo implements exercise catalog persistence.
type ExerciseRepo struct {
	db *DB
}

func NewExerciseRepo(db *DB) *ExerciseRepo {
	return &ExerciseRepo{db: db}
}

func (r *ExerciseRepo) Create(ctx context.Context, e *domain.Exercise) (*domain.Exercise, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.exerciseIDCounter++
	cp := *e
	cp.ID = r.db.exerciseIDCounter
	cp.CreatedAt = time.Now().UTC()
	r.db.exercises = append(r.db.exercises, cp)
	ret := cp
	return &ret, nil
}

func (r *ExerciseRepo) GetByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.exercises {
		if r.db.exercises[i].ID == id {
			cp := r.db.exercises[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *ExerciseRepo) ListByWorkout(ctx context.Context, workoutID int64) ([]domain.Exercise, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var result []domain.Exercise
	for _, e := range r.db.exercises {
		if e.WorkoutID == workoutID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *ExerciseRepo) Update(ctx context.Context, e *domain.Exercise) (*domain.Exercise, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.exercises {
		if r.db.exercises[i].ID == e.ID {
			cp := *e
			cp.WorkoutID = r.db.exercises[i].WorkoutID
			cp.CreatedAt = r.db.exercises[i].CreatedAt
			r.db.exercises[i] = cp
			ret := cp
			return &ret, nil
		}
	}
	return nil, nil
}

func (r *ExerciseRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.exercises {
		if r.db.exercises[i].ID == id {
			r.db.exercises = append(r.db.exercises[:i], r.db.exercises[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- WorkoutLogRepository ---

// LogRepo implements the workout-logging writes. Referential checks stand in
// for the schema's foreign keys so callers see the same failure modes, and
// every write lands only after the whole batch has passed.
type LogRepo struct {
	db *DB
}

func NewLogRepo(db *DB) *LogRepo {
	return &LogRepo{db: db}
}

func (r *LogRepo) CreateLog(ctx context.Context, l *domain.WorkoutLog, entries []domain.ExerciseEntry) (*domain.WorkoutLog, []domain.ExerciseLog, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if !r.workoutExists(l.WorkoutID) {
		return nil, nil, app.ErrInvalidReference
	}

	parent := *l
	parent.ID = r.db.logIDCounter + 1
	parent.CreatedAt = time.Now().UTC()

	children, err := r.buildExerciseLogs(parent.ID, entries)
	if err != nil {
		return nil, nil, err
	}

	r.db.logIDCounter = parent.ID
	r.db.logs = append(r.db.logs, parent)
	r.db.exerciseLogs = append(r.db.exerciseLogs, children...)
	ret := parent
	return &ret, children, nil
}

func (r *LogRepo) AppendExercises(ctx context.Context, logID int64, entries []domain.ExerciseEntry) ([]domain.ExerciseLog, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	children, err := r.buildExerciseLogs(logID, entries)
	if err != nil {
		return nil, err
	}
	r.db.exerciseLogs = append(r.db.exerciseLogs, children...)
	return children, nil
}

// buildExerciseLogs stages the whole batch before anything is stored. A bad
// entry rejects the batch with its index, and the id counter only advances on
// success.
func (r *LogRepo) buildExerciseLogs(logID int64, entries []domain.ExerciseEntry) ([]domain.ExerciseLog, error) {
	children := make([]domain.ExerciseLog, 0, len(entries))
	nextID := r.db.exerciseLogIDCounter
	for i, e := range entries {
		if !r.exerciseExists(e.ExerciseID) {
			return nil, &app.EntryError{Index: i, Err: app.ErrInvalidReference}
		}
		nextID++
		children = append(children, domain.ExerciseLog{
			ID:            nextID,
			LogID:         logID,
			ExerciseID:    e.ExerciseID,
			SetsCompleted: e.SetsCompleted,
			RepsPerformed: e.RepsPerformed,
			WeightUsed:    e.WeightUsed,
			Notes:         e.Notes,
		})
	}
	r.db.exerciseLogIDCounter = nextID
	return children, nil
}

func (r *LogRepo) workoutExists(id int64) bool {
	for i := range r.db.workouts {
		if r.db.workouts[i].ID == id {
			return true
		}
	}
	return false
}

func (r *LogRepo) exerciseExists(id int64) bool {
	for i := range r.db.exercises {
		if r.db.exercises[i].ID == id {
			return true
		}
	}
	return false
}

func (r *LogRepo) GetLog(ctx context.Context, userID, logID int64) (*domain.WorkoutLog, []domain.ExerciseLog, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var parent *domain.WorkoutLog
	for i := range r.db.logs {
		if r.db.logs[i].ID == logID && r.db.logs[i].UserID == userID {
			cp := r.db.logs[i]
			parent = &cp
			break
		}
	}
	if parent == nil {
		return nil, nil, nil
	}

	var children []domain.ExerciseLog
	for _, c := range r.db.exerciseLogs {
		if c.LogID == logID {
			children = append(children, c)
		}
	}
	sort.Slice(children, func(i, j int) bool { return children[i].ID < children[j].ID })
	return parent, children, nil
}

func (r *LogRepo) ListLogs(ctx context.Context, userID int64) ([]domain.WorkoutLog, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var result []domain.WorkoutLog
	for _, l := range r.db.logs {
		if l.UserID == userID {
			result = append(result, l)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// CountLogs reports stored parent and child rows. Tests use it to assert
// nothing leaked out of a rejected batch.
func (db *DB) CountLogs() (parents, children int) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.logs), len(db.exerciseLogs)
}

// --- MealRepository ---

// MealRepo implements meal persistence.
type MealRepo struct {
	db *DB
}

func NewMealRepo(db *DB) *MealRepo {
	return &MealRepo{db: db}
}

func (r *MealRepo) Create(ctx context.Context, m *domain.Meal) (*domain.Meal, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.mealIDCounter++
	cp := *m
	cp.ID = r.db.mealIDCounter
	cp.CreatedAt = time.Now().UTC()
	r.db.meals = append(r.db.meals, cp)
	ret := cp
	return &ret, nil
}

func (r *MealRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Meal, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var result []domain.Meal
	for _, m := range r.db.meals {
		if m.UserID == userID {
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *MealRepo) Update(ctx context.Context, m *domain.Meal) (*domain.Meal, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.meals {
		if r.db.meals[i].ID == m.ID && r.db.meals[i].UserID == m.UserID {
			cp := *m
			cp.CreatedAt = r.db.meals[i].CreatedAt
			r.db.meals[i] = cp
			ret := cp
			return &ret, nil
		}
	}
	return nil, nil
}

func (r *MealRepo) Delete(ctx context.Context, userID, mealID int64) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.meals {
		if r.db.meals[i].ID == mealID && r.db.meals[i].UserID == userID {
			r.db.meals = append(r.db.meals[:i], r.db.meals[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- ProgressRepository ---

// ProgressRepo implements progress-tracking persistence.
type ProgressRepo struct {
	db *DB
}

func NewProgressRepo(db *DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

func (r *ProgressRepo) Create(ctx context.Context, p *domain.ProgressEntry) (*domain.ProgressEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.progressIDCounter++
	cp := *p
	cp.ID = r.db.progressIDCounter
	cp.CreatedAt = time.Now().UTC()
	r.db.progress = append(r.db.progress, cp)
	ret := cp
	return &ret, nil
}

func (r *ProgressRepo) ListByUser(ctx context.Context, userID int64) ([]domain.ProgressEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var result []domain.ProgressEntry
	for _, p := range r.db.progress {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *ProgressRepo) Update(ctx context.Context, p *domain.ProgressEntry) (*domain.ProgressEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.progress {
		if r.db.progress[i].ID == p.ID && r.db.progress[i].UserID == p.UserID {
			cp := *p
			cp.CreatedAt = r.db.progress[i].CreatedAt
			r.db.progress[i] = cp
			ret := cp
			return &ret, nil
		}
	}
	return nil, nil
}

func (r *ProgressRepo) Delete(ctx context.Context, userID, progressID int64) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.progress {
		if r.db.progress[i].ID == progressID && r.db.progress[i].UserID == userID {
			r.db.progress = append(r.db.progress[:i], r.db.progress[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- NotificationRepository ---

// NotificationRepo implements notification persistence.
type NotificationRepo struct {
	db *DB
}

func NewNotificationRepo(db *DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

func (r *NotificationRepo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.notificationIDCounter++
	cp := *n
	cp.ID = r.db.notificationIDCounter
	cp.Read = false
	cp.CreatedAt = time.Now().UTC()
	r.db.notifications = append(r.db.notifications, cp)
	ret := cp
	return &ret, nil
}

func (r *NotificationRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var result []domain.Notification
	for _, n := range r.db.notifications {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *NotificationRepo) MarkRead(ctx context.Context, userID, id int64) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.notifications {
		if r.db.notifications[i].ID == id && r.db.notifications[i].UserID == userID {
			r.db.notifications[i].Read = true
			return true, nil
		}
	}
	return false, nil
}

func (r *NotificationRepo) Delete(ctx context.Context, userID, id int64) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.notifications {
		if r.db.notifications[i].ID == id && r.db.notifications[i].UserID == userID {
			r.db.notifications = append(r.db.notifications[:i], r.db.notifications[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
