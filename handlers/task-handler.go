package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ArunKushhhh/TaskPro-Backend/models"
	"github.com/ArunKushhhh/TaskPro-Backend/services"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskHandler struct {
	taskService     *services.TaskService
	activityService *services.ActivityService
}

func NewTaskHandler(taskService *services.TaskService, activityService *services.ActivityService) *TaskHandler {
	return &TaskHandler{taskService: taskService, activityService: activityService}
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	projectID, ok := parseObjectID(w, mux.Vars(r)["projectId"], "project ID")
	if !ok {
		return
	}

	var body struct {
		Title       string              `json:"title"`
		Description string              `json:"description"`
		Status      models.TaskStatus   `json:"status"`
		Priority    models.TaskPriority `json:"priority"`
		DueDate     time.Time           `json:"dueDate"`
		Assignees   []string            `json:"assignees"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	assignees := make([]primitive.ObjectID, 0, len(body.Assignees))
	for _, hex := range body.Assignees {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid assignee ID format")
			return
		}
		assignees = append(assignees, id)
	}

	task, err := h.taskService.CreateTask(r.Context(), projectID, userID, body.Title, body.Description, body.Status, body.Priority, body.DueDate, assignees)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	taskID, ok := parseObjectID(w, mux.Vars(r)["taskId"], "task ID")
	if !ok {
		return
	}

	task, project, err := h.taskService.GetTaskByID(r.Context(), taskID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"task":    task,
		"project": project,
	})
}

func (h *TaskHandler) UpdateTaskTitle(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	taskID, ok := parseObjectID(w, mux.Vars(r)["taskId"], "task ID")
	if !ok {
		return
	}

	var body struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	task, err := h.taskService.UpdateTitle(r.Context(), taskID, userID, body.Title)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) UpdateTaskDescription(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	taskID, ok := parseObjectID(w, mux.Vars(r)["taskId"], "task ID")
	if !ok {
		return
	}

	var body struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	task, err := h.taskService.UpdateDescription(r.Context(), taskID, userID, body.Description)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	taskID, ok := parseObjectID(w, mux.Vars(r)["taskId"], "task ID")
	if !ok {
		return
	}

	var body struct {
		Status models.TaskStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	task, err := h.taskService.UpdateStatus(r.Context(), taskID, userID, body.Status)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) UpdateTaskPriority(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	taskID, ok := parseObjectID(w, mux.Vars(r)["taskId"], "task ID")
	if !ok {
		return
	}

	var body struct {
		Priority models.TaskPriority `json:"priority"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	task, err := h.taskService.UpdatePriority(r.Context(), taskID, userID, body.Priority)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) UpdateTaskAssignees(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	taskID, ok := parseObjectID(w, mux.Vars(r)["taskId"], "task ID")
	if !ok {
		return
	}

	var body struct {
		Assignees []string `json:"assignees"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	assignees := make([]primitive.ObjectID, 0, len(body.Assignees))
	for _, hex := range body.Assignees {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid assignee ID format")
			return
		}
		assignees = append(assignees, id)
	}

	task, err := h.taskService.UpdateAssignees(r.Context(), taskID, userID, assignees)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) AddSubtask(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	taskID, ok := parseObjectID(w, mux.Vars(r)["taskId"], "task ID")
	if !ok {
		return
	}

	var body struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	task, err := h.taskService.AddSubtask(r.Context(), taskID, userID, body.Title)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) UpdateSubtask(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	taskID, ok := parseObjectID(w, vars["taskId"], "task ID")
	if !ok {
		return
	}
	subtaskID, ok := parseObjectID(w, vars["subTaskId"], "subtask ID")
	if !ok {
		return
	}

	var body struct {
		Completed bool `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	task, err := h.taskService.UpdateSubtask(r.Context(), taskID, subtaskID, userID, body.Completed)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	taskID, ok := parseObjectID(w, mux.Vars(r)["taskId"], "task ID")
	if !ok {
		return
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	comment, err := h.taskService.AddComment(r.Context(), taskID, userID, body.Text)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

func (h *TaskHandler) GetCommentsByTask(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	taskID, ok := parseObjectID(w, mux.Vars(r)["taskId"], "task ID")
	if !ok {
		return
	}

	comments, err := h.taskService.GetCommentsByTask(r.Context(), taskID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

func (h *TaskHandler) GetActivityByResource(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	resourceID, ok := parseObjectID(w, mux.Vars(r)["resourceId"], "resource ID")
	if !ok {
		return
	}

	activity, err := h.activityService.GetByResourceID(r.Context(), resourceID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, activity)
}

func (h *TaskHandler) WatchTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	taskID, ok := parseObjectID(w, mux.Vars(r)["taskId"], "task ID")
	if !ok {
		return
	}

	task, err := h.taskService.ToggleWatch(r.Context(), taskID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) ArchiveTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	taskID, ok := parseObjectID(w, mux.Vars(r)["taskId"], "task ID")
	if !ok {
		return
	}

	task, err := h.taskService.ToggleArchive(r.Context(), taskID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	taskID, ok := parseObjectID(w, mux.Vars(r)["taskId"], "task ID")
	if !ok {
		return
	}

	title, err := h.taskService.DeleteTask(r.Context(), taskID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, fmt.Sprintf("Deleted Task %s", title))
}
