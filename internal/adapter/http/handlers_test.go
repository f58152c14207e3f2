package adapthttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"momentum/internal/adapter/memory"
	"momentum/internal/app"
	"momentum/internal/auth"
	"momentum/internal/domain"
)

func newTestServer(t *testing.T) (http.Handler, *memory.DB) {
	t.Helper()

	db := memory.New()
	codec, err := auth.NewCodec("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}

	workoutRepo := memory.NewWorkoutRepo(db)
	srv := New(Services{
		Auth:          app.NewAuthService(db, codec),
		Profiles:      app.NewProfileService(db, db, zerolog.Nop()),
		Workouts:      app.NewWorkoutService(workoutRepo, memory.NewLogRepo(db)),
		Exercises:     app.NewExerciseService(memory.NewExerciseRepo(db), workoutRepo),
		Meals:         app.NewMealService(memory.NewMealRepo(db)),
		Progress:      app.NewProgressService(memory.NewProgressRepo(db)),
		Notifications: app.NewNotificationService(memory.NewNotificationRepo(db)),
	}, zerolog.Nop())

	return srv.Handler(), db
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return m
}

// registerAndLogin creates a user through the API and returns a token.
func registerAndLogin(t *testing.T, h http.Handler, email string) string {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Test User", "email": email, "password": "secret1", "role": "user",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": email, "password": "secret1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login = %d: %s", rec.Code, rec.Body.String())
	}
	token, _ := decode(t, rec)["token"].(string)
	if token == "" {
		t.Fatal("login response carried no token")
	}
	return token
}

func promoteToAdmin(t *testing.T, db *memory.DB, email string) {
	t.Helper()
	u, err := db.GetByEmail(context.Background(), email)
	if err != nil || u == nil {
		t.Fatalf("user %s not found: %v", email, err)
	}
	if err := db.UpdateRole(context.Background(), u.ID, domain.RoleAdmin); err != nil {
		t.Fatalf("UpdateRole: %v", err)
	}
}

func seedWorkout(t *testing.T, db *memory.DB) (workoutID int64, exerciseIDs []int64) {
	t.Helper()
	ctx := context.Background()

	w, err := memory.NewWorkoutRepo(db).Create(ctx, &domain.Workout{Name: "Push Day", Duration: 60, CaloriesBurned: 400})
	if err != nil {
		t.Fatalf("seed workout: %v", err)
	}
	exRepo := memory.NewExerciseRepo(db)
	for _, name := range []string{"Bench Press", "Overhead Press"} {
		e, err := exRepo.Create(ctx, &domain.Exercise{WorkoutID: w.ID, Name: name, Sets: 3, Reps: 10})
		if err != nil {
			t.Fatalf("seed exercise: %v", err)
		}
		exerciseIDs = append(exerciseIDs, e.ID)
	}
	return w.ID, exerciseIDs
}

func TestLogin_SuccessBody(t *testing.T) {
	h, _ := newTestServer(t)
	registerAndLogin(t, h, "ana@example.com")

	rec := doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "ana@example.com", "password": "secret1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decode(t, rec)
	if body["message"] != "Login successful" || body["success"] != true {
		t.Errorf("body = %v", body)
	}
}

func TestLogin_BadPassword(t *testing.T) {
	h, _ := newTestServer(t)
	registerAndLogin(t, h, "ana@example.com")

	rec := doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "ana@example.com", "password": "wrong00",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := decode(t, rec)
	if body["message"] != "Invalid credentials" || body["success"] != false {
		t.Errorf("body = %v", body)
	}
}

func TestRegister_EmailCollision(t *testing.T) {
	h, _ := newTestServer(t)
	registerAndLogin(t, h, "ana@example.com")

	rec := doJSON(t, h, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Other", "email": "ana@example.com", "password": "secret2", "role": "user",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body := decode(t, rec); body["message"] != "User already exists" {
		t.Errorf("body = %v", body)
	}
}

func TestRegister_ValidationErrors(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "", "email": "nope", "password": "x", "role": "user",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := decode(t, rec)
	errs, ok := body["errors"].([]any)
	if !ok || len(errs) != 3 {
		t.Errorf("errors = %v, want 3 field errors", body["errors"])
	}
}

func TestVerifySession(t *testing.T) {
	h, db := newTestServer(t)
	token := registerAndLogin(t, h, "ana@example.com")

	rec := doJSON(t, h, http.MethodGet, "/api/auth/verifysession", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := decode(t, rec)
	if body["message"] != "Authenticated successfully" {
		t.Errorf("body = %v", body)
	}
	user, _ := body["user"].(map[string]any)
	if user["email"] != "ana@example.com" || user["role"] != "user" {
		t.Errorf("user = %v", user)
	}

	// No header and garbage token map to distinct statuses.
	if rec := doJSON(t, h, http.MethodGet, "/api/auth/verifysession", "", nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("missing header status = %d, want 401", rec.Code)
	}
	if rec := doJSON(t, h, http.MethodGet, "/api/auth/verifysession", "garbage", nil); rec.Code != http.StatusForbidden {
		t.Errorf("garbage token status = %d, want 403", rec.Code)
	}

	// A deleted user holding a valid token is locked out.
	u, _ := db.GetByEmail(context.Background(), "ana@example.com")
	db.DeleteUser(context.Background(), u.ID)
	rec = doJSON(t, h, http.MethodGet, "/api/auth/verifysession", token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("deleted user status = %d, want 401", rec.Code)
	}
}

func TestCreateWorkout_AdminGate(t *testing.T) {
	h, db := newTestServer(t)
	userToken := registerAndLogin(t, h, "user@example.com")

	payload := map[string]any{"name": "Leg Day", "duration": 45, "calories_burned": 350}

	// No credential at all is unauthenticated, not forbidden.
	if rec := doJSON(t, h, http.MethodPost, "/api/workout/", "", payload); rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d, want 401", rec.Code)
	}

	if rec := doJSON(t, h, http.MethodPost, "/api/workout/", userToken, payload); rec.Code != http.StatusForbidden {
		t.Errorf("plain user status = %d, want 403", rec.Code)
	}

	// Promotion takes effect on the next request with the same token: role
	// comes from the user row, not from claims baked in at login.
	promoteToAdmin(t, db, "user@example.com")
	rec := doJSON(t, h, http.MethodPost, "/api/workout/", userToken, payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("admin status = %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLogWorkout_HappyPath(t *testing.T) {
	h, db := newTestServer(t)
	token := registerAndLogin(t, h, "ana@example.com")
	workoutID, exerciseIDs := seedWorkout(t, db)

	rec := doJSON(t, h, http.MethodPost, "/api/workout/log", token, map[string]any{
		"workout_id": workoutID, "duration": 50, "calories_burned": 380,
		"exercises": []map[string]any{
			{"exercise_id": exerciseIDs[0], "sets_completed": 3, "reps_performed": 10},
			{"exercise_id": exerciseIDs[1], "sets_completed": 3, "reps_performed": 8},
		},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := decode(t, rec)
	exercises, _ := body["exercises"].([]any)
	if len(exercises) != 2 {
		t.Fatalf("exercises = %v, want 2", body["exercises"])
	}
	first, _ := exercises[0].(map[string]any)
	if int64(first["exercise_id"].(float64)) != exerciseIDs[0] {
		t.Errorf("children out of input order: %v", exercises)
	}

	parents, children := db.CountLogs()
	if parents != 1 || children != 2 {
		t.Errorf("stored rows = %d parents, %d children; want 1, 2", parents, children)
	}
}

func TestLogWorkout_InvalidEntryWritesNothing(t *testing.T) {
	h, db := newTestServer(t)
	token := registerAndLogin(t, h, "ana@example.com")
	workoutID, exerciseIDs := seedWorkout(t, db)

	rec := doJSON(t, h, http.MethodPost, "/api/workout/log", token, map[string]any{
		"workout_id": workoutID, "duration": 50, "calories_burned": 380,
		"exercises": []map[string]any{
			{"exercise_id": exerciseIDs[0], "sets_completed": 3, "reps_performed": 10},
			{"exercise_id": exerciseIDs[1], "sets_completed": 0, "reps_performed": 8},
		},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	parents, children := db.CountLogs()
	if parents != 0 || children != 0 {
		t.Errorf("stored rows = %d parents, %d children; want 0, 0", parents, children)
	}
}

func TestLogWorkout_NotIdempotent(t *testing.T) {
	h, db := newTestServer(t)
	token := registerAndLogin(t, h, "ana@example.com")
	workoutID, _ := seedWorkout(t, db)

	payload := map[string]any{"workout_id": workoutID, "duration": 50, "calories_burned": 380}
	for i := 0; i < 2; i++ {
		if rec := doJSON(t, h, http.MethodPost, "/api/workout/log", token, payload); rec.Code != http.StatusCreated {
			t.Fatalf("call %d status = %d: %s", i, rec.Code, rec.Body.String())
		}
	}

	parents, _ := db.CountLogs()
	if parents != 2 {
		t.Errorf("parents = %d, want 2 (duplicate calls make duplicate logs)", parents)
	}
}

func TestAppendExerciseLogs_ForeignLogRejected(t *testing.T) {
	h, db := newTestServer(t)
	anaToken := registerAndLogin(t, h, "ana@example.com")
	bobToken := registerAndLogin(t, h, "bob@example.com")
	workoutID, exerciseIDs := seedWorkout(t, db)

	rec := doJSON(t, h, http.MethodPost, "/api/workout/log", anaToken, map[string]any{
		"workout_id": workoutID, "duration": 50, "calories_burned": 380,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("log status = %d: %s", rec.Code, rec.Body.String())
	}
	logID := int64(decode(t, rec)["log"].(map[string]any)["log_id"].(float64))

	path := fmt.Sprintf("/api/workout/log/%d/exercises", logID)
	entries := map[string]any{"exercises": []map[string]any{
		{"exercise_id": exerciseIDs[0], "sets_completed": 3, "reps_performed": 10},
	}}

	if rec := doJSON(t, h, http.MethodPost, path, bobToken, entries); rec.Code != http.StatusNotFound {
		t.Errorf("foreign log status = %d, want 404", rec.Code)
	}
	if rec := doJSON(t, h, http.MethodPost, path, anaToken, entries); rec.Code != http.StatusCreated {
		t.Errorf("owner status = %d, want 201", rec.Code)
	}
}

func TestProfileUpdate_ApprovesUser(t *testing.T) {
	h, db := newTestServer(t)
	token := registerAndLogin(t, h, "ana@example.com")

	rec := doJSON(t, h, http.MethodPost, "/api/user/profile", token, map[string]any{
		"gender": "Female", "date_of_birth": "1995-04-12",
		"current_weight": 62.5, "current_height": 168.0, "goal": "Improve Shape",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	u, _ := db.GetByEmail(context.Background(), "ana@example.com")
	if u.Status != domain.StatusActive {
		t.Errorf("status after profile completion = %q, want %q", u.Status, domain.StatusActive)
	}
}

func TestMeals_OwnershipScoped(t *testing.T) {
	h, _ := newTestServer(t)
	anaToken := registerAndLogin(t, h, "ana@example.com")
	bobToken := registerAndLogin(t, h, "bob@example.com")

	rec := doJSON(t, h, http.MethodPost, "/api/meals/", anaToken, map[string]any{
		"name": "Oats", "calories": 350, "meal_type": "Breakfast",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create meal status = %d: %s", rec.Code, rec.Body.String())
	}
	mealID := int64(decode(t, rec)["meal"].(map[string]any)["meal_id"].(float64))

	if rec := doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/meals/%d", mealID), bobToken, nil); rec.Code != http.StatusNotFound {
		t.Errorf("cross-user delete status = %d, want 404", rec.Code)
	}
	if rec := doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/meals/%d", mealID), anaToken, nil); rec.Code != http.StatusOK {
		t.Errorf("owner delete status = %d, want 200", rec.Code)
	}
}
