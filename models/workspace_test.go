package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestWorkspaceIsMember(t *testing.T) {
	owner := primitive.NewObjectID()
	contributor := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	workspace := &Workspace{
		Owner: owner,
		Members: []WorkspaceMember{
			{User: owner, Role: RoleOwner, JoinedAt: time.Now()},
			{User: contributor, Role: RoleContributor, JoinedAt: time.Now()},
		},
	}

	assert.True(t, workspace.IsMember(owner))
	assert.True(t, workspace.IsMember(contributor))
	assert.False(t, workspace.IsMember(stranger))
}

func TestProjectIsMember(t *testing.T) {
	manager := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	project := &Project{
		Members: []ProjectMember{
			{User: manager, Role: RoleManager},
		},
	}

	assert.True(t, project.IsMember(manager))
	assert.False(t, project.IsMember(stranger))
}

func TestProjectIsMemberEmptyList(t *testing.T) {
	project := &Project{}
	assert.False(t, project.IsMember(primitive.NewObjectID()))
}
