package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "Planning"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectOnHold     ProjectStatus = "On Hold"
	ProjectCompleted  ProjectStatus = "Completed"
	ProjectCancelled  ProjectStatus = "Cancelled"
)

type ProjectMember struct {
	User primitive.ObjectID `bson:"user" json:"user"`
	Role WorkspaceRole      `bson:"role" json:"role"`
}

type Project struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	Status      ProjectStatus        `bson:"status" json:"status"`
	Workspace   primitive.ObjectID   `bson:"workspace" json:"workspace"`
	Members     []ProjectMember      `bson:"members" json:"members"`
	Tasks       []primitive.ObjectID `bson:"tasks" json:"tasks"`
	StartDate   time.Time            `bson:"startDate,omitempty" json:"startDate,omitempty"`
	DueDate     time.Time            `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	IsArchived  bool                 `bson:"isArchived" json:"isArchived"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// IsMember reports whether the user appears in the project member list.
// Some endpoints authorize against this list, others against the owning
// workspace's list; both checks are kept separate on purpose.
func (p *Project) IsMember(userID primitive.ObjectID) bool {
	for _, member := range p.Members {
		if member.User == userID {
			return true
		}
	}
	return false
}
