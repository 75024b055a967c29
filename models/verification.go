package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TokenPurpose string

const (
	PurposeEmailVerification TokenPurpose = "emailVerification"
	PurposeResetPassword     TokenPurpose = "resetPassword"
)

// Verification holds a pending email-verification or password-reset token.
// Business logic keeps at most one live token per user; stale ones are
// deleted before a new one is issued.
type Verification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Token     string             `bson:"token" json:"token"`
	Purpose   TokenPurpose       `bson:"purpose" json:"purpose"`
	ExpiresAt time.Time          `bson:"expiresAt" json:"expiresAt"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
