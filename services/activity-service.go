package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ArunKushhhh/TaskPro-Backend/logging"
	"github.com/ArunKushhhh/TaskPro-Backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ActivityService struct {
	activityCollection *mongo.Collection
}

func NewActivityService(activityCollection *mongo.Collection) *ActivityService {
	return &ActivityService{activityCollection: activityCollection}
}

// Record appends one activity log entry. Activity history is best-effort:
// insert failures are logged and swallowed so they never fail or roll back
// the mutation that triggered them.
func (s *ActivityService) Record(ctx context.Context, userID primitive.ObjectID, action models.ActivityAction, resourceType models.ResourceType, resourceID primitive.ObjectID, description string) {
	entry := models.ActivityLog{
		ID:           primitive.NewObjectID(),
		User:         userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Details:      models.ActivityDetails{Description: description},
		CreatedAt:    time.Now(),
	}

	if _, err := s.activityCollection.InsertOne(ctx, entry); err != nil {
		logging.Logger.Errorf("Event ID: ACTIVITY_RECORD_FAILED, Description: Failed to record activity %s on %s %s: %v", action, resourceType, resourceID.Hex(), err)
	}
}

// GetByResourceID returns the activity entries for a resource, newest first.
func (s *ActivityService) GetByResourceID(ctx context.Context, resourceID primitive.ObjectID) ([]models.ActivityLog, error) {
	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := s.activityCollection.Find(ctx, bson.M{"resourceId": resourceID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve activity: %v", err)
	}
	defer cursor.Close(ctx)

	activity := []models.ActivityLog{}
	if err := cursor.All(ctx, &activity); err != nil {
		return nil, fmt.Errorf("failed to decode activity: %v", err)
	}

	return activity, nil
}

// TruncateDetail shortens a value to 50 characters with an ellipsis marker
// for the activity feed. The stored field itself is never truncated.
func TruncateDetail(s string) string {
	runes := []rune(s)
	if len(runes) > 50 {
		return string(runes[:50]) + "..."
	}
	return s
}

// DescribeDescription renders a task description for the activity feed.
func DescribeDescription(s string) string {
	if s == "" {
		return "No description"
	}
	return TruncateDetail(s)
}
