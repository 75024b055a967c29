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

type TaskService struct {
	tasksCollection      *mongo.Collection
	projectsCollection   *mongo.Collection
	workspacesCollection *mongo.Collection
	commentsCollection   *mongo.Collection
	activityService      *ActivityService
}

func NewTaskService(tasksCollection, projectsCollection, workspacesCollection, commentsCollection *mongo.Collection, activityService *ActivityService) *TaskService {
	return &TaskService{
		tasksCollection:      tasksCollection,
		projectsCollection:   projectsCollection,
		workspacesCollection: workspacesCollection,
		commentsCollection:   commentsCollection,
		activityService:      activityService,
	}
}

// loadTaskForMutation runs the fixed lookup chain every task mutation uses:
// task existence, then parent project existence, then project membership.
func (s *TaskService) loadTaskForMutation(ctx context.Context, taskID, userID primitive.ObjectID) (*models.Task, *models.Project, error) {
	var task models.Task
	err := s.tasksCollection.FindOne(ctx, bson.M{"_id": taskID}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, ErrTaskNotFound
		}
		return nil, nil, fmt.Errorf("failed to retrieve task: %v", err)
	}

	var project models.Project
	err = s.projectsCollection.FindOne(ctx, bson.M{"_id": task.Project}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, ErrProjectNotFound
		}
		return nil, nil, fmt.Errorf("failed to retrieve project: %v", err)
	}

	if !project.IsMember(userID) {
		return nil, nil, ErrNotProjectMember
	}

	return &task, &project, nil
}

// CreateTask creates a task inside the project and pushes its id onto the
// project's task list. Authorization here checks the owning workspace's
// member list, not the project's.
func (s *TaskService) CreateTask(ctx context.Context, projectID, userID primitive.ObjectID, title, description string, status models.TaskStatus, priority models.TaskPriority, dueDate time.Time, assignees []primitive.ObjectID) (*models.Task, error) {
	var project models.Project
	err := s.projectsCollection.FindOne(ctx, bson.M{"_id": projectID}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to retrieve project: %v", err)
	}

	var workspace models.Workspace
	err = s.workspacesCollection.FindOne(ctx, bson.M{"_id": project.Workspace}).Decode(&workspace)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to retrieve workspace: %v", err)
	}

	if !workspace.IsMember(userID) {
		return nil, ErrNotProjectMember
	}

	if status == "" {
		status = models.StatusToDo
	}
	if priority == "" {
		priority = models.PriorityMedium
	}
	if assignees == nil {
		assignees = []primitive.ObjectID{}
	}

	now := time.Now()
	task := &models.Task{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		DueDate:     dueDate,
		Assignees:   assignees,
		Watchers:    []primitive.ObjectID{},
		Subtasks:    []models.Subtask{},
		Comments:    []primitive.ObjectID{},
		CreatedBy:   userID,
		Project:     projectID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := s.tasksCollection.InsertOne(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %v", err)
	}

	update := bson.M{"$push": bson.M{"tasks": task.ID}}
	if _, err := s.projectsCollection.UpdateOne(ctx, bson.M{"_id": projectID}, update); err != nil {
		return nil, fmt.Errorf("failed to update project with task ID: %v", err)
	}

	return task, nil
}

// GetTaskByID returns the task and its owning project.
func (s *TaskService) GetTaskByID(ctx context.Context, taskID primitive.ObjectID) (*models.Task, *models.Project, error) {
	var task models.Task
	err := s.tasksCollection.FindOne(ctx, bson.M{"_id": taskID}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, ErrTaskNotFound
		}
		return nil, nil, fmt.Errorf("failed to retrieve task: %v", err)
	}

	var project models.Project
	err = s.projectsCollection.FindOne(ctx, bson.M{"_id": task.Project}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, ErrProjectNotFound
		}
		return nil, nil, fmt.Errorf("failed to retrieve project: %v", err)
	}

	return &task, &project, nil
}

// UpdateTitle replaces the task title. Empty titles are accepted; the
// mutation path has never enforced non-empty input.
func (s *TaskService) UpdateTitle(ctx context.Context, taskID, userID primitive.ObjectID, title string) (*models.Task, error) {
	task, _, err := s.loadTaskForMutation(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	oldTitle := task.Title
	task.Title = title
	task.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{"title": task.Title, "updatedAt": task.UpdatedAt}}
	if _, err := s.tasksCollection.UpdateOne(ctx, bson.M{"_id": taskID}, update); err != nil {
		return nil, fmt.Errorf("failed to update task title: %v", err)
	}

	s.activityService.Record(ctx, userID, models.ActionUpdatedTask, models.ResourceTask, taskID,
		fmt.Sprintf("updated Task Title from %s to %s", TruncateDetail(oldTitle), TruncateDetail(title)))

	return task, nil
}

// UpdateDescription replaces the task description.
func (s *TaskService) UpdateDescription(ctx context.Context, taskID, userID primitive.ObjectID, description string) (*models.Task, error) {
	task, _, err := s.loadTaskForMutation(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	oldDescription := DescribeDescription(task.Description)
	newDescription := DescribeDescription(description)

	task.Description = description
	task.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{"description": task.Description, "updatedAt": task.UpdatedAt}}
	if _, err := s.tasksCollection.UpdateOne(ctx, bson.M{"_id": taskID}, update); err != nil {
		return nil, fmt.Errorf("failed to update task description: %v", err)
	}

	s.activityService.Record(ctx, userID, models.ActionUpdatedTask, models.ResourceTask, taskID,
		fmt.Sprintf("updated task description from %s to %s", oldDescription, newDescription))

	return task, nil
}

// UpdateStatus replaces the task status.
func (s *TaskService) UpdateStatus(ctx context.Context, taskID, userID primitive.ObjectID, status models.TaskStatus) (*models.Task, error) {
	task, _, err := s.loadTaskForMutation(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	oldStatus := task.Status
	task.Status = status
	task.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{"status": task.Status, "updatedAt": task.UpdatedAt}}
	if _, err := s.tasksCollection.UpdateOne(ctx, bson.M{"_id": taskID}, update); err != nil {
		return nil, fmt.Errorf("failed to update task status: %v", err)
	}

	s.activityService.Record(ctx, userID, models.ActionUpdatedTask, models.ResourceTask, taskID,
		fmt.Sprintf("updated Task Status from %s to %s", oldStatus, status))

	return task, nil
}

// UpdatePriority replaces the task priority.
func (s *TaskService) UpdatePriority(ctx context.Context, taskID, userID primitive.ObjectID, priority models.TaskPriority) (*models.Task, error) {
	task, _, err := s.loadTaskForMutation(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	oldPriority := task.Priority
	task.Priority = priority
	task.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{"priority": task.Priority, "updatedAt": task.UpdatedAt}}
	if _, err := s.tasksCollection.UpdateOne(ctx, bson.M{"_id": taskID}, update); err != nil {
		return nil, fmt.Errorf("failed to update task priority: %v", err)
	}

	s.activityService.Record(ctx, userID, models.ActionUpdatedTask, models.ResourceTask, taskID,
		fmt.Sprintf("updated task priority from %s to %s", oldPriority, priority))

	return task, nil
}

// UpdateAssignees replaces the whole assignee set. Activity records the
// count change only, not the set diff.
func (s *TaskService) UpdateAssignees(ctx context.Context, taskID, userID primitive.ObjectID, assignees []primitive.ObjectID) (*models.Task, error) {
	task, _, err := s.loadTaskForMutation(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	oldCount := len(task.Assignees)
	if assignees == nil {
		assignees = []primitive.ObjectID{}
	}
	task.Assignees = assignees
	task.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{"assignees": task.Assignees, "updatedAt": task.UpdatedAt}}
	if _, err := s.tasksCollection.UpdateOne(ctx, bson.M{"_id": taskID}, update); err != nil {
		return nil, fmt.Errorf("failed to update task assignees: %v", err)
	}

	s.activityService.Record(ctx, userID, models.ActionUpdatedTask, models.ResourceTask, taskID,
		fmt.Sprintf("updated task assignees from %d to %d", oldCount, len(assignees)))

	return task, nil
}

// AddSubtask appends a new, uncompleted subtask.
func (s *TaskService) AddSubtask(ctx context.Context, taskID, userID primitive.ObjectID, title string) (*models.Task, error) {
	task, _, err := s.loadTaskForMutation(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	subtask := models.Subtask{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Completed: false,
		CreatedAt: time.Now(),
	}
	task.Subtasks = append(task.Subtasks, subtask)
	task.UpdatedAt = time.Now()

	update := bson.M{
		"$push": bson.M{"subtasks": subtask},
		"$set":  bson.M{"updatedAt": task.UpdatedAt},
	}
	if _, err := s.tasksCollection.UpdateOne(ctx, bson.M{"_id": taskID}, update); err != nil {
		return nil, fmt.Errorf("failed to add subtask: %v", err)
	}

	s.activityService.Record(ctx, userID, models.ActionCreatedSubtask, models.ResourceTask, taskID,
		fmt.Sprintf("created subtask %s", TruncateDetail(title)))

	return task, nil
}

// UpdateSubtask sets a subtask's completed flag. This path looks up the task
// and the subtask only; it does not run the project membership check.
func (s *TaskService) UpdateSubtask(ctx context.Context, taskID, subtaskID, userID primitive.ObjectID, completed bool) (*models.Task, error) {
	var task models.Task
	err := s.tasksCollection.FindOne(ctx, bson.M{"_id": taskID}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to retrieve task: %v", err)
	}

	subtask := task.FindSubtask(subtaskID)
	if subtask == nil {
		return nil, ErrSubtaskNotFound
	}
	subtask.Completed = completed
	task.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{"subtasks": task.Subtasks, "updatedAt": task.UpdatedAt}}
	if _, err := s.tasksCollection.UpdateOne(ctx, bson.M{"_id": taskID}, update); err != nil {
		return nil, fmt.Errorf("failed to update subtask: %v", err)
	}

	s.activityService.Record(ctx, userID, models.ActionUpdatedSubtask, models.ResourceTask, taskID,
		fmt.Sprintf("updated subtask %s", TruncateDetail(subtask.Title)))

	return &task, nil
}

// AddComment creates a comment and pushes its id onto the task.
func (s *TaskService) AddComment(ctx context.Context, taskID, userID primitive.ObjectID, text string) (*models.Comment, error) {
	task, _, err := s.loadTaskForMutation(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:        primitive.NewObjectID(),
		Text:      text,
		Task:      task.ID,
		Author:    userID,
		CreatedAt: time.Now(),
	}

	if _, err := s.commentsCollection.InsertOne(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %v", err)
	}

	update := bson.M{"$push": bson.M{"comments": comment.ID}}
	if _, err := s.tasksCollection.UpdateOne(ctx, bson.M{"_id": taskID}, update); err != nil {
		return nil, fmt.Errorf("failed to update task with comment ID: %v", err)
	}

	s.activityService.Record(ctx, userID, models.ActionAddedComment, models.ResourceTask, taskID,
		fmt.Sprintf("added comment %s", TruncateDetail(text)))

	return comment, nil
}

// GetCommentsByTask returns the comments on a task, newest first.
func (s *TaskService) GetCommentsByTask(ctx context.Context, taskID primitive.ObjectID) ([]models.Comment, error) {
	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := s.commentsCollection.Find(ctx, bson.M{"task": taskID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve comments: %v", err)
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %v", err)
	}

	return comments, nil
}

// ToggleWatch adds the requester to the watcher set if absent, removes them
// if present. Two calls with the same user restore the original set.
func (s *TaskService) ToggleWatch(ctx context.Context, taskID, userID primitive.ObjectID) (*models.Task, error) {
	task, _, err := s.loadTaskForMutation(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	wasWatching := task.ToggleWatcher(userID)
	task.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{"watchers": task.Watchers, "updatedAt": task.UpdatedAt}}
	if _, err := s.tasksCollection.UpdateOne(ctx, bson.M{"_id": taskID}, update); err != nil {
		return nil, fmt.Errorf("failed to update task watchers: %v", err)
	}

	verb := "started watching"
	if wasWatching {
		verb = "stopped watching"
	}
	s.activityService.Record(ctx, userID, models.ActionUpdatedTask, models.ResourceTask, taskID,
		fmt.Sprintf("%s task %s", verb, TruncateDetail(task.Title)))

	return task, nil
}

// ToggleArchive flips the archived flag.
func (s *TaskService) ToggleArchive(ctx context.Context, taskID, userID primitive.ObjectID) (*models.Task, error) {
	task, _, err := s.loadTaskForMutation(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	wasArchived := task.ToggleArchived()
	task.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{"isArchived": task.IsArchived, "updatedAt": task.UpdatedAt}}
	if _, err := s.tasksCollection.UpdateOne(ctx, bson.M{"_id": taskID}, update); err != nil {
		return nil, fmt.Errorf("failed to update task archived flag: %v", err)
	}

	verb := "archived"
	if wasArchived {
		verb = "unarchived"
	}
	s.activityService.Record(ctx, userID, models.ActionUpdatedTask, models.ResourceTask, taskID,
		fmt.Sprintf("%s task %s", verb, TruncateDetail(task.Title)))

	return task, nil
}

// DeleteTask removes the task and pulls its id from the project's task
// list. Comments and activity entries referencing the task are left in
// place; orphaned references are tolerated.
func (s *TaskService) DeleteTask(ctx context.Context, taskID, userID primitive.ObjectID) (string, error) {
	task, project, err := s.loadTaskForMutation(ctx, taskID, userID)
	if err != nil {
		return "", err
	}

	if _, err := s.tasksCollection.DeleteOne(ctx, bson.M{"_id": taskID}); err != nil {
		return "", fmt.Errorf("failed to delete task: %v", err)
	}

	update := bson.M{"$pull": bson.M{"tasks": taskID}}
	if _, err := s.projectsCollection.UpdateOne(ctx, bson.M{"_id": project.ID}, update); err != nil {
		return "", fmt.Errorf("failed to remove task from project: %v", err)
	}

	return task.Title, nil
}
