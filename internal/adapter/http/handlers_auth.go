package adapthttp

import (
	"errors"
	"net/http"
	"strings"

	"momentum/internal/app"
	"momentum/internal/auth"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := s.auth.Register(r.Context(), req.Name, req.Email, req.Password, req.Role); err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"success": true,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   token,
		"success": true,
	})
}

// handleVerifySession is the one route that reports the resolved identity
// back to the caller instead of guarding something else with it. It does its
// own resolution because it is mounted outside requireAuth.
func (s *Server) handleVerifySession(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	if header == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized. Please log in.")
		return
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[1] == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized. Token missing.")
		return
	}

	identity, err := s.auth.ResolveSession(r.Context(), parts[1])
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrTokenExpired), errors.Is(err, auth.ErrTokenMalformed):
		writeError(w, http.StatusForbidden, "Forbidden. Invalid token.")
		return
	case errors.Is(err, app.ErrUserNotFound):
		writeError(w, http.StatusUnauthorized, "Unauthorized. User not found.")
		return
	default:
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Authenticated successfully",
		"success": true,
		"user":    identity,
	})
}
