package adapthttp

import (
	"net/http"

	"momentum/internal/domain"
)

type mealRequest struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	MealType string  `json:"meal_type"`
}

func (s *Server) handleCreateMeal(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	var req mealRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := s.meals.CreateMeal(r.Context(), &domain.Meal{
		UserID:   identity.UserID,
		Name:     req.Name,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		MealType: req.MealType,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Meal logged successfully",
		"success": true,
		"meal":    created,
	})
}

func (s *Server) handleListMeals(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	meals, err := s.meals.ListMeals(r.Context(), identity.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "meals": meals})
}

func (s *Server) handleUpdateMeal(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	mealID, err := urlID(r, "mealID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid meal id")
		return
	}

	var req mealRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := s.meals.UpdateMeal(r.Context(), &domain.Meal{
		ID:       mealID,
		UserID:   identity.UserID,
		Name:     req.Name,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		MealType: req.MealType,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Meal updated successfully",
		"success": true,
		"meal":    updated,
	})
}

func (s *Server) handleDeleteMeal(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	mealID, err := urlID(r, "mealID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid meal id")
		return
	}

	if err := s.meals.DeleteMeal(r.Context(), identity.UserID, mealID); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Meal deleted successfully",
		"success": true,
	})
}
