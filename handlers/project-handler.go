package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ArunKushhhh/TaskPro-Backend/models"
	"github.com/ArunKushhhh/TaskPro-Backend/services"

	"github.com/gorilla/mux"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	workspaceID, ok := parseObjectID(w, mux.Vars(r)["workspaceId"], "workspace ID")
	if !ok {
		return
	}

	var body struct {
		Title       string               `json:"title"`
		Description string               `json:"description"`
		Status      models.ProjectStatus `json:"status"`
		StartDate   time.Time            `json:"startDate"`
		DueDate     time.Time            `json:"dueDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	project, err := h.projectService.CreateProject(r.Context(), workspaceID, userID, body.Title, body.Description, body.Status, body.StartDate, body.DueDate)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, project)
}
