package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ArunKushhhh/TaskPro-Backend/services"

	"github.com/gorilla/mux"
)

type WorkspaceHandler struct {
	workspaceService *services.WorkspaceService
}

func NewWorkspaceHandler(workspaceService *services.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

func (h *WorkspaceHandler) CreateWorkspace(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Color       string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	workspace, err := h.workspaceService.CreateWorkspace(r.Context(), userID, body.Name, body.Description, body.Color)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, workspace)
}

func (h *WorkspaceHandler) GetWorkspaces(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	workspaces, err := h.workspaceService.GetWorkspacesForUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, workspaces)
}

func (h *WorkspaceHandler) GetWorkspaceDetails(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	workspaceID, ok := parseObjectID(w, mux.Vars(r)["workspaceId"], "workspace ID")
	if !ok {
		return
	}

	workspace, err := h.workspaceService.GetWorkspaceDetails(r.Context(), workspaceID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, workspace)
}

func (h *WorkspaceHandler) GetWorkspaceProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	workspaceID, ok := parseObjectID(w, mux.Vars(r)["workspaceId"], "workspace ID")
	if !ok {
		return
	}

	workspace, projects, err := h.workspaceService.GetWorkspaceProjects(r.Context(), workspaceID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"projects":  projects,
		"workspace": workspace,
	})
}

func (h *WorkspaceHandler) GetWorkspaceStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	workspaceID, ok := parseObjectID(w, mux.Vars(r)["workspaceId"], "workspace ID")
	if !ok {
		return
	}

	stats, err := h.workspaceService.GetWorkspaceStats(r.Context(), workspaceID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
