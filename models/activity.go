package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityAction is the closed vocabulary of tracked mutations. Passing an
// action outside this set is a caller bug, not a runtime condition.
type ActivityAction string

const (
	ActionCreatedTask           ActivityAction = "created_task"
	ActionUpdatedTask           ActivityAction = "updated_task"
	ActionCreatedSubtask        ActivityAction = "created_subtask"
	ActionUpdatedSubtask        ActivityAction = "updated_subtask"
	ActionCompletedTask         ActivityAction = "completed_task"
	ActionCompletedProject      ActivityAction = "completed_project"
	ActionUpdatedProject        ActivityAction = "updated_project"
	ActionCreatedProject        ActivityAction = "created_project"
	ActionCreatedWorkspace      ActivityAction = "created_workspace"
	ActionUpdatedWorkspace      ActivityAction = "updated_workspace"
	ActionAddedComment          ActivityAction = "added_comment"
	ActionAddedMember           ActivityAction = "added_member"
	ActionRemovedMember         ActivityAction = "removed_member"
	ActionJoinedWorkspace       ActivityAction = "joined_workspace"
	ActionTransferredWorkspace  ActivityAction = "transferred_workspace_ownership"
	ActionAddedAttachment       ActivityAction = "added_attachment"
)

type ResourceType string

const (
	ResourceTask      ResourceType = "Task"
	ResourceProject   ResourceType = "Project"
	ResourceWorkspace ResourceType = "Workspace"
	ResourceComment   ResourceType = "Comment"
	ResourceUser      ResourceType = "User"
)

// ActivityDetails is the free-form payload attached to a log entry.
type ActivityDetails struct {
	Description string `bson:"description" json:"description"`
}

// ActivityLog is an append-only audit record. Entries are never mutated or
// deleted by normal flow; references to deleted resources are tolerated.
type ActivityLog struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User         primitive.ObjectID `bson:"user" json:"user"`
	Action       ActivityAction     `bson:"action" json:"action"`
	ResourceType ResourceType       `bson:"resourceType" json:"resourceType"`
	ResourceID   primitive.ObjectID `bson:"resourceId" json:"resourceId"`
	Details      ActivityDetails    `bson:"details,omitempty" json:"details,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
