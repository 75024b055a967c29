package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserIDFromContextMissing(t *testing.T) {
	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestUserIDFromContextRoundTrip(t *testing.T) {
	userID := primitive.NewObjectID()
	ctx := context.WithValue(context.Background(), userIDKey, userID)

	got, ok := UserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, userID, got)
}
