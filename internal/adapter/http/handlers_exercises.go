package adapthttp

import (
	"net/http"

	"momentum/internal/domain"
)

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WorkoutID   int64  `json:"workout_id"`
		Name        string `json:"name"`
		MuscleGroup string `json:"muscle_group"`
		Sets        int    `json:"sets"`
		Reps        int    `json:"reps"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := s.exercises.CreateExercise(r.Context(), &domain.Exercise{
		WorkoutID:   req.WorkoutID,
		Name:        req.Name,
		MuscleGroup: req.MuscleGroup,
		Sets:        req.Sets,
		Reps:        req.Reps,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Exercise created successfully",
		"success":  true,
		"exercise": created,
	})
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "exerciseID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid exercise id")
		return
	}

	exercise, err := s.exercises.GetExercise(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "exercise": exercise})
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	workoutID, err := urlID(r, "workoutID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid workout id")
		return
	}

	exercises, err := s.exercises.ListByWorkout(r.Context(), workoutID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "exercises": exercises})
}

func (s *Server) handleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "exerciseID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid exercise id")
		return
	}

	var req struct {
		Name        string `json:"name"`
		MuscleGroup string `json:"muscle_group"`
		Sets        int    `json:"sets"`
		Reps        int    `json:"reps"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := s.exercises.UpdateExercise(r.Context(), &domain.Exercise{
		ID:          id,
		Name:        req.Name,
		MuscleGroup: req.MuscleGroup,
		Sets:        req.Sets,
		Reps:        req.Reps,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Exercise updated successfully",
		"success":  true,
		"exercise": updated,
	})
}

func (s *Server) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "exerciseID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid exercise id")
		return
	}

	if err := s.exercises.DeleteExercise(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Exercise deleted successfully",
		"success": true,
	})
}
