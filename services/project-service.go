package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ArunKushhhh/TaskPro-Backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProjectService struct {
	projectsCollection   *mongo.Collection
	workspacesCollection *mongo.Collection
	activityService      *ActivityService
}

func NewProjectService(projectsCollection, workspacesCollection *mongo.Collection, activityService *ActivityService) *ProjectService {
	return &ProjectService{
		projectsCollection:   projectsCollection,
		workspacesCollection: workspacesCollection,
		activityService:      activityService,
	}
}

// CreateProject creates a project inside the workspace with the creator as
// its first member. The creator must be a workspace member.
func (s *ProjectService) CreateProject(ctx context.Context, workspaceID, userID primitive.ObjectID, title, description string, status models.ProjectStatus, startDate, dueDate time.Time) (*models.Project, error) {
	var workspace models.Workspace
	err := s.workspacesCollection.FindOne(ctx, bson.M{"_id": workspaceID}).Decode(&workspace)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to retrieve workspace: %v", err)
	}

	if !workspace.IsMember(userID) {
		return nil, ErrNotWorkspaceMember
	}

	if status == "" {
		status = models.ProjectPlanning
	}

	now := time.Now()
	project := &models.Project{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
		Status:      status,
		Workspace:   workspaceID,
		Members: []models.ProjectMember{
			{User: userID, Role: models.RoleManager},
		},
		Tasks:     []primitive.ObjectID{},
		StartDate: startDate,
		DueDate:   dueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.projectsCollection.InsertOne(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %v", err)
	}

	s.activityService.Record(ctx, userID, models.ActionCreatedProject, models.ResourceProject, project.ID, fmt.Sprintf("created project %s", TruncateDetail(title)))

	return project, nil
}

// GetProjectByID returns the project or ErrProjectNotFound.
func (s *ProjectService) GetProjectByID(ctx context.Context, projectID primitive.ObjectID) (*models.Project, error) {
	var project models.Project
	err := s.projectsCollection.FindOne(ctx, bson.M{"_id": projectID}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to retrieve project: %v", err)
	}
	return &project, nil
}
