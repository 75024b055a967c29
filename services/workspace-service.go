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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WorkspaceService struct {
	workspacesCollection *mongo.Collection
	projectsCollection   *mongo.Collection
	tasksCollection      *mongo.Collection
	activityService      *ActivityService
}

func NewWorkspaceService(workspacesCollection, projectsCollection, tasksCollection *mongo.Collection, activityService *ActivityService) *WorkspaceService {
	return &WorkspaceService{
		workspacesCollection: workspacesCollection,
		projectsCollection:   projectsCollection,
		tasksCollection:      tasksCollection,
		activityService:      activityService,
	}
}

// CreateWorkspace creates a workspace with the owner as its only member.
func (s *WorkspaceService) CreateWorkspace(ctx context.Context, ownerID primitive.ObjectID, name, description, color string) (*models.Workspace, error) {
	now := time.Now()
	workspace := &models.Workspace{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: description,
		Color:       color,
		Owner:       ownerID,
		Members: []models.WorkspaceMember{
			{User: ownerID, Role: models.RoleOwner, JoinedAt: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.workspacesCollection.InsertOne(ctx, workspace); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %v", err)
	}

	s.activityService.Record(ctx, ownerID, models.ActionCreatedWorkspace, models.ResourceWorkspace, workspace.ID, fmt.Sprintf("created workspace %s", TruncateDetail(name)))

	return workspace, nil
}

// GetWorkspacesForUser returns every workspace whose member list contains
// the user, newest first.
func (s *WorkspaceService) GetWorkspacesForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Workspace, error) {
	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := s.workspacesCollection.Find(ctx, bson.M{"members.user": userID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve workspaces: %v", err)
	}
	defer cursor.Close(ctx)

	workspaces := []models.Workspace{}
	if err := cursor.All(ctx, &workspaces); err != nil {
		return nil, fmt.Errorf("failed to decode workspaces: %v", err)
	}

	return workspaces, nil
}

// GetWorkspaceDetails returns the workspace only if the user is a member.
// Non-member requests get a not-found, matching the filter-based lookup.
func (s *WorkspaceService) GetWorkspaceDetails(ctx context.Context, workspaceID, userID primitive.ObjectID) (*models.Workspace, error) {
	var workspace models.Workspace
	err := s.workspacesCollection.FindOne(ctx, bson.M{"_id": workspaceID, "members.user": userID}).Decode(&workspace)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to retrieve workspace: %v", err)
	}
	return &workspace, nil
}

// GetWorkspaceProjects returns the workspace and its non-archived projects,
// newest first.
func (s *WorkspaceService) GetWorkspaceProjects(ctx context.Context, workspaceID, userID primitive.ObjectID) (*models.Workspace, []models.Project, error) {
	workspace, err := s.GetWorkspaceDetails(ctx, workspaceID, userID)
	if err != nil {
		return nil, nil, err
	}

	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := s.projectsCollection.Find(ctx, bson.M{"workspace": workspaceID, "isArchived": false}, findOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve projects: %v", err)
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, nil, fmt.Errorf("failed to decode projects: %v", err)
	}

	return workspace, projects, nil
}

// GetWorkspaceStats loads every project in the workspace with its tasks and
// aggregates the dashboard numbers. Lookup order: workspace existence, then
// workspace membership, then aggregation. Partial results are never
// returned.
func (s *WorkspaceService) GetWorkspaceStats(ctx context.Context, workspaceID, userID primitive.ObjectID) (*models.WorkspaceStats, error) {
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

	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := s.projectsCollection.Find(ctx, bson.M{"workspace": workspaceID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve projects: %v", err)
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %v", err)
	}

	populated := make([]ProjectWithTasks, 0, len(projects))
	for _, project := range projects {
		tasks := []models.Task{}
		if len(project.Tasks) > 0 {
			taskCursor, err := s.tasksCollection.Find(ctx, bson.M{"_id": bson.M{"$in": project.Tasks}})
			if err != nil {
				return nil, fmt.Errorf("failed to retrieve tasks for project %s: %v", project.ID.Hex(), err)
			}
			if err := taskCursor.All(ctx, &tasks); err != nil {
				return nil, fmt.Errorf("failed to decode tasks for project %s: %v", project.ID.Hex(), err)
			}
		}
		populated = append(populated, ProjectWithTasks{Project: project, Tasks: tasks})
	}

	return BuildWorkspaceStats(populated, time.Now()), nil
}
