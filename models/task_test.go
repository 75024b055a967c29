package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToggleWatcher(t *testing.T) {
	userA := primitive.NewObjectID()
	userB := primitive.NewObjectID()

	task := &Task{Watchers: []primitive.ObjectID{userB}}

	wasWatching := task.ToggleWatcher(userA)
	assert.False(t, wasWatching)
	assert.True(t, task.IsWatching(userA))
	assert.True(t, task.IsWatching(userB))

	wasWatching = task.ToggleWatcher(userA)
	assert.True(t, wasWatching)
	assert.False(t, task.IsWatching(userA))

	// A toggle pair restores the original watcher set.
	assert.Equal(t, []primitive.ObjectID{userB}, task.Watchers)
}

func TestToggleWatcherRemovesOnlyThatUser(t *testing.T) {
	userA := primitive.NewObjectID()
	userB := primitive.NewObjectID()
	userC := primitive.NewObjectID()

	task := &Task{Watchers: []primitive.ObjectID{userA, userB, userC}}

	wasWatching := task.ToggleWatcher(userB)
	assert.True(t, wasWatching)
	assert.Equal(t, []primitive.ObjectID{userA, userC}, task.Watchers)
}

func TestToggleArchived(t *testing.T) {
	task := &Task{}

	wasArchived := task.ToggleArchived()
	assert.False(t, wasArchived)
	assert.True(t, task.IsArchived)

	wasArchived = task.ToggleArchived()
	assert.True(t, wasArchived)
	assert.False(t, task.IsArchived)
}

func TestFindSubtask(t *testing.T) {
	subtaskID := primitive.NewObjectID()
	task := &Task{
		Subtasks: []Subtask{
			{ID: primitive.NewObjectID(), Title: "first"},
			{ID: subtaskID, Title: "second"},
		},
	}

	subtask := task.FindSubtask(subtaskID)
	assert.NotNil(t, subtask)
	assert.Equal(t, "second", subtask.Title)

	// The pointer aliases the slice element, so writes stick.
	subtask.Completed = true
	assert.True(t, task.Subtasks[1].Completed)

	assert.Nil(t, task.FindSubtask(primitive.NewObjectID()))
}
