package adapthttp

import (
	"net/http"

	"momentum/internal/domain"
)

func (s *Server) handleCreateNotification(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	var req struct {
		Message string `json:"message"`
		Action  string `json:"action"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := s.notifications.CreateNotification(r.Context(), &domain.Notification{
		UserID:  identity.UserID,
		Message: req.Message,
		Action:  req.Action,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":      "Notification created successfully",
		"success":      true,
		"notification": created,
	})
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	notifications, err := s.notifications.ListNotifications(r.Context(), identity.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "notifications": notifications})
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	id, err := urlID(r, "notificationID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid notification id")
		return
	}

	if err := s.notifications.MarkRead(r.Context(), identity.UserID, id); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Notification marked as read",
		"success": true,
	})
}

func (s *Server) handleDeleteNotification(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	id, err := urlID(r, "notificationID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid notification id")
		return
	}

	if err := s.notifications.DeleteNotification(r.Context(), identity.UserID, id); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Notification deleted successfully",
		"success": true,
	})
}
