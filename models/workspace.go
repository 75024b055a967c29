package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WorkspaceRole string

const (
	RoleOwner       WorkspaceRole = "owner"
	RoleManager     WorkspaceRole = "manager"
	RoleContributor WorkspaceRole = "contributor"
	RoleViewer      WorkspaceRole = "viewer"
)

type WorkspaceMember struct {
	User     primitive.ObjectID `bson:"user" json:"user"`
	Role     WorkspaceRole      `bson:"role" json:"role"`
	JoinedAt time.Time          `bson:"joinedAt" json:"joinedAt"`
}

type Workspace struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Color       string             `bson:"color,omitempty" json:"color,omitempty"`
	Owner       primitive.ObjectID `bson:"owner" json:"owner"`
	Members     []WorkspaceMember  `bson:"members" json:"members"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsMember reports whether the user appears in the workspace member list.
func (w *Workspace) IsMember(userID primitive.ObjectID) bool {
	for _, member := range w.Members {
		if member.User == userID {
			return true
		}
	}
	return false
}
