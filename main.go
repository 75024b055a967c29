package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/ArunKushhhh/TaskPro-Backend/handlers"
	"github.com/ArunKushhhh/TaskPro-Backend/logging"
	"github.com/ArunKushhhh/TaskPro-Backend/middleware"
	"github.com/ArunKushhhh/TaskPro-Backend/services"
	"github.com/ArunKushhhh/TaskPro-Backend/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	logging.InitLogger()

	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting TaskPro backend...")
	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_WARNING, Description: No .env file loaded: %v", err)
	}

	mongoURI := os.Getenv("MONGO_URI")
	mongoDBName := os.Getenv("MONGO_DB_NAME")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for MongoDB failed: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		logging.Logger.Fatalf("Event ID: DB_PING_FAILED, Description: MongoDB connection ping error: %v", err)
	}
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB at %s.", mongoURI)

	db := client.Database(mongoDBName)
	usersCollection := db.Collection("users")
	workspacesCollection := db.Collection("workspaces")
	projectsCollection := db.Collection("projects")
	tasksCollection := db.Collection("tasks")
	commentsCollection := db.Collection("comments")
	activityCollection := db.Collection("activity_logs")
	verificationsCollection := db.Collection("verifications")

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		smtpPort = 587
	}
	mailer := utils.NewMailer(utils.EmailConfig{
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     smtpPort,
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		FromEmail:    os.Getenv("FROM_EMAIL"),
		FromName:     "TaskPro",
	})

	emailBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "EmailServiceCB",
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})

	activityService := services.NewActivityService(activityCollection)
	authService := services.NewAuthService(usersCollection, verificationsCollection, mailer, emailBreaker, os.Getenv("FRONTEND_URL"))
	workspaceService := services.NewWorkspaceService(workspacesCollection, projectsCollection, tasksCollection, activityService)
	projectService := services.NewProjectService(projectsCollection, workspacesCollection, activityService)
	taskService := services.NewTaskService(tasksCollection, projectsCollection, workspacesCollection, commentsCollection, activityService)

	authHandler := handlers.NewAuthHandler(authService)
	workspaceHandler := handlers.NewWorkspaceHandler(workspaceService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService, activityService)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/verify-email", authHandler.VerifyEmail).Methods(http.MethodPost)
	api.HandleFunc("/auth/reset-password-request", authHandler.ResetPasswordRequest).Methods(http.MethodPost)
	api.HandleFunc("/auth/reset-password", authHandler.ResetPassword).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.JWTAuthMiddleware)

	protected.HandleFunc("/workspaces", workspaceHandler.CreateWorkspace).Methods(http.MethodPost)
	protected.HandleFunc("/workspaces", workspaceHandler.GetWorkspaces).Methods(http.MethodGet)
	protected.HandleFunc("/workspaces/{workspaceId}", workspaceHandler.GetWorkspaceDetails).Methods(http.MethodGet)
	protected.HandleFunc("/workspaces/{workspaceId}/projects", workspaceHandler.GetWorkspaceProjects).Methods(http.MethodGet)
	protected.HandleFunc("/workspaces/{workspaceId}/stats", workspaceHandler.GetWorkspaceStats).Methods(http.MethodGet)

	protected.HandleFunc("/projects/{workspaceId}/create-project", projectHandler.CreateProject).Methods(http.MethodPost)
	protected.HandleFunc("/projects/{projectId}/tasks", taskHandler.CreateTask).Methods(http.MethodPost)

	protected.HandleFunc("/tasks/{taskId}/title", taskHandler.UpdateTaskTitle).Methods(http.MethodPut)
	protected.HandleFunc("/tasks/{taskId}/description", taskHandler.UpdateTaskDescription).Methods(http.MethodPut)
	protected.HandleFunc("/tasks/{taskId}/status", taskHandler.UpdateTaskStatus).Methods(http.MethodPut)
	protected.HandleFunc("/tasks/{taskId}/priority", taskHandler.UpdateTaskPriority).Methods(http.MethodPut)
	protected.HandleFunc("/tasks/{taskId}/assignees", taskHandler.UpdateTaskAssignees).Methods(http.MethodPut)
	protected.HandleFunc("/tasks/{taskId}/add-subtask", taskHandler.AddSubtask).Methods(http.MethodPost)
	protected.HandleFunc("/tasks/{taskId}/update-subtask/{subTaskId}", taskHandler.UpdateSubtask).Methods(http.MethodPut)
	protected.HandleFunc("/tasks/{taskId}/add-comment", taskHandler.AddComment).Methods(http.MethodPost)
	protected.HandleFunc("/tasks/{taskId}/comments", taskHandler.GetCommentsByTask).Methods(http.MethodGet)
	protected.HandleFunc("/tasks/{resourceId}/activity", taskHandler.GetActivityByResource).Methods(http.MethodGet)
	protected.HandleFunc("/tasks/{taskId}/watch", taskHandler.WatchTask).Methods(http.MethodPost)
	protected.HandleFunc("/tasks/{taskId}/archived", taskHandler.ArchiveTask).Methods(http.MethodPost)
	protected.HandleFunc("/tasks/{taskId}/delete", taskHandler.DeleteTask).Methods(http.MethodDelete)
	protected.HandleFunc("/tasks/{taskId}", taskHandler.GetTaskByID).Methods(http.MethodGet)

	corsRouter := enableCORS(r)

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: SERVER_PORT is not set in the environment variables.")
	}

	serverAddress := fmt.Sprintf(":%s", serverPort)
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", serverAddress)

	if err := http.ListenAndServe(serverAddress, corsRouter); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}
