package adapthttp

import (
	"net/http"

	"momentum/internal/domain"
)

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	profile, err := s.profiles.GetProfile(r.Context(), identity.UserID)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    identity,
		"profile": profile,
	})
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	var req struct {
		ImageURL    string  `json:"image_url"`
		Gender      string  `json:"gender"`
		DateOfBirth string  `json:"date_of_birth"`
		Weight      float64 `json:"current_weight"`
		Height      float64 `json:"current_height"`
		Goal        string  `json:"goal"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := s.profiles.UpdateProfile(r.Context(), &domain.Profile{
		UserID:      identity.UserID,
		ImageURL:    req.ImageURL,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
		Weight:      req.Weight,
		Height:      req.Height,
		Goal:        req.Goal,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Profile updated successfully",
		"success": true,
		"profile": saved,
	})
}
