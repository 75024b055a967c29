package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskStatus string

const (
	StatusToDo       TaskStatus = "To Do"
	StatusInProgress TaskStatus = "In Progress"
	StatusDone       TaskStatus = "Done"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

type Subtask struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Completed bool               `bson:"completed" json:"completed"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Task struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	Status      TaskStatus           `bson:"status" json:"status"`
	Priority    TaskPriority         `bson:"priority" json:"priority"`
	DueDate     time.Time            `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	Assignees   []primitive.ObjectID `bson:"assignees" json:"assignees"`
	Watchers    []primitive.ObjectID `bson:"watchers" json:"watchers"`
	Subtasks    []Subtask            `bson:"subtasks" json:"subtasks"`
	Comments    []primitive.ObjectID `bson:"comments" json:"comments"`
	IsArchived  bool                 `bson:"isArchived" json:"isArchived"`
	CreatedBy   primitive.ObjectID   `bson:"createdBy" json:"createdBy"`
	Project     primitive.ObjectID   `bson:"project" json:"project"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// IsWatching reports whether the user is in the watcher list.
func (t *Task) IsWatching(userID primitive.ObjectID) bool {
	for _, w := range t.Watchers {
		if w == userID {
			return true
		}
	}
	return false
}

// ToggleWatcher adds the user to the watcher list if absent, removes them if
// present. Returns true if the user was watching before the call.
func (t *Task) ToggleWatcher(userID primitive.ObjectID) bool {
	if !t.IsWatching(userID) {
		t.Watchers = append(t.Watchers, userID)
		return false
	}

	watchers := make([]primitive.ObjectID, 0, len(t.Watchers)-1)
	for _, w := range t.Watchers {
		if w != userID {
			watchers = append(watchers, w)
		}
	}
	t.Watchers = watchers
	return true
}

// ToggleArchived flips the archived flag and returns the previous value.
func (t *Task) ToggleArchived() bool {
	wasArchived := t.IsArchived
	t.IsArchived = !wasArchived
	return wasArchived
}

// FindSubtask returns a pointer into the subtask slice, or nil if no subtask
// has the given id.
func (t *Task) FindSubtask(subtaskID primitive.ObjectID) *Subtask {
	for i := range t.Subtasks {
		if t.Subtasks[i].ID == subtaskID {
			return &t.Subtasks[i]
		}
	}
	return nil
}
