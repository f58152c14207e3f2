package adapthttp

import (
	"net/http"

	"momentum/internal/domain"
)

type progressRequest struct {
	Weight            float64  `json:"weight"`
	Height            float64  `json:"height"`
	BodyFatPercentage *float64 `json:"body_fat_percentage"`
	MuscleMass        *float64 `json:"muscle_mass"`
	Notes             string   `json:"notes"`
}

func (s *Server) handleAddProgress(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	var req progressRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := s.progress.AddProgress(r.Context(), &domain.ProgressEntry{
		UserID:            identity.UserID,
		Weight:            req.Weight,
		Height:            req.Height,
		BodyFatPercentage: req.BodyFatPercentage,
		MuscleMass:        req.MuscleMass,
		Notes:             req.Notes,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Progress added successfully",
		"success":  true,
		"progress": created,
	})
}

func (s *Server) handleListProgress(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	entries, err := s.progress.ListProgress(r.Context(), identity.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "progress": entries})
}

func (s *Server) handleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	progressID, err := urlID(r, "progressID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid progress id")
		return
	}

	var req progressRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := s.progress.UpdateProgress(r.Context(), &domain.ProgressEntry{
		ID:                progressID,
		UserID:            identity.UserID,
		Weight:            req.Weight,
		Height:            req.Height,
		BodyFatPercentage: req.BodyFatPercentage,
		MuscleMass:        req.MuscleMass,
		Notes:             req.Notes,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Progress updated successfully",
		"success":  true,
		"progress": updated,
	})
}

func (s *Server) handleDeleteProgress(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	progressID, err := urlID(r, "progressID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid progress id")
		return
	}

	if err := s.progress.DeleteProgress(r.Context(), identity.UserID, progressID); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Progress deleted successfully",
		"success": true,
	})
}
