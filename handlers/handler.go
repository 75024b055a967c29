package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ArunKushhhh/TaskPro-Backend/logging"
	"github.com/ArunKushhhh/TaskPro-Backend/middleware"
	"github.com/ArunKushhhh/TaskPro-Backend/services"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// handleServiceError maps service sentinels onto HTTP statuses. Anything
// unmapped is logged and reported as a generic server error; internal detail
// never reaches the client.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		writeMessage(w, http.StatusNotFound, "Task not found")
	case errors.Is(err, services.ErrProjectNotFound):
		writeMessage(w, http.StatusNotFound, "Project not found")
	case errors.Is(err, services.ErrWorkspaceNotFound):
		writeMessage(w, http.StatusNotFound, "Workspace not found")
	case errors.Is(err, services.ErrSubtaskNotFound):
		writeMessage(w, http.StatusNotFound, "Subtask not found")
	case errors.Is(err, services.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrNotProjectMember):
		writeMessage(w, http.StatusForbidden, "You are not a member of this project")
	case errors.Is(err, services.ErrNotWorkspaceMember):
		writeMessage(w, http.StatusForbidden, "You are not a member of this workspace")
	default:
		logging.Logger.Errorf("Event ID: INTERNAL_ERROR, Description: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

// requireUser pulls the authenticated user id out of the request context.
// A miss means the auth middleware did not run; treat it as unauthorized.
func requireUser(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return primitive.NilObjectID, false
	}
	return userID, true
}

func parseObjectID(w http.ResponseWriter, hex, label string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid "+label+" format")
		return primitive.NilObjectID, false
	}
	return id, true
}
