package adapthttp

import (
	"net/http"

	"momentum/internal/domain"
)

func (s *Server) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name           string  `json:"name"`
		Category       string  `json:"category"`
		Duration       int     `json:"duration"`
		Difficulty     string  `json:"difficulty"`
		CaloriesBurned float64 `json:"calories_burned"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := s.workouts.CreateWorkout(r.Context(), &domain.Workout{
		Name:           req.Name,
		Category:       req.Category,
		Duration:       req.Duration,
		Difficulty:     req.Difficulty,
		CaloriesBurned: req.CaloriesBurned,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Workout created successfully",
		"success": true,
		"workout": created,
	})
}

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts, err := s.workouts.ListWorkouts(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "workouts": workouts})
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "workoutID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid workout id")
		return
	}

	workout, err := s.workouts.GetWorkout(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "workout": workout})
}

func (s *Server) handleUpdateWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "workoutID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid workout id")
		return
	}

	var req struct {
		Name           string  `json:"name"`
		Category       string  `json:"category"`
		Duration       int     `json:"duration"`
		Difficulty     string  `json:"difficulty"`
		CaloriesBurned float64 `json:"calories_burned"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := s.workouts.UpdateWorkout(r.Context(), &domain.Workout{
		ID:             id,
		Name:           req.Name,
		Category:       req.Category,
		Duration:       req.Duration,
		Difficulty:     req.Difficulty,
		CaloriesBurned: req.CaloriesBurned,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Workout updated successfully",
		"success": true,
		"workout": updated,
	})
}

func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "workoutID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid workout id")
		return
	}

	if err := s.workouts.DeleteWorkout(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Workout deleted successfully",
		"success": true,
	})
}

func (s *Server) handleLogWorkout(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	var req struct {
		WorkoutID      int64                  `json:"workout_id"`
		Duration       int                    `json:"duration"`
		CaloriesBurned float64                `json:"calories_burned"`
		Notes          string                 `json:"notes"`
		Exercises      []domain.ExerciseEntry `json:"exercises"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	parent, children, err := s.workouts.LogWorkout(r.Context(), identity.UserID,
		req.WorkoutID, req.Duration, req.CaloriesBurned, req.Notes, req.Exercises)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":   "Workout logged successfully",
		"success":   true,
		"log":       parent,
		"exercises": children,
	})
}

func (s *Server) handleAppendExerciseLogs(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	logID, err := urlID(r, "logID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid log id")
		return
	}

	var req struct {
		Exercises []domain.ExerciseEntry `json:"exercises"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	children, err := s.workouts.AppendExerciseLogs(r.Context(), identity.UserID, logID, req.Exercises)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":   "Exercises logged successfully",
		"success":   true,
		"exercises": children,
	})
}

func (s *Server) handleGetLog(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	logID, err := urlID(r, "logID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid log id")
		return
	}

	parent, children, err := s.workouts.GetLog(r.Context(), identity.UserID, logID)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"log":       parent,
		"exercises": children,
	})
}

func (s *Server) handleListLogs(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	logs, err := s.workouts.ListLogs(r.Context(), identity.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "logs": logs})
}
