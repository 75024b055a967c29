package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ArunKushhhh/TaskPro-Backend/logging"
	"github.com/ArunKushhhh/TaskPro-Backend/models"
	"github.com/ArunKushhhh/TaskPro-Backend/utils"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// EmailSender is the narrow contract the auth service needs from the
// mailer.
type EmailSender interface {
	SendEmail(to, subject, htmlBody string) error
}

type AuthService struct {
	usersCollection         *mongo.Collection
	verificationsCollection *mongo.Collection
	mailer                  EmailSender
	emailBreaker            *gobreaker.CircuitBreaker
	frontendURL             string
}

func NewAuthService(usersCollection, verificationsCollection *mongo.Collection, mailer EmailSender, emailBreaker *gobreaker.CircuitBreaker, frontendURL string) *AuthService {
	return &AuthService{
		usersCollection:         usersCollection,
		verificationsCollection: verificationsCollection,
		mailer:                  mailer,
		emailBreaker:            emailBreaker,
		frontendURL:             frontendURL,
	}
}

func (s *AuthService) sendEmail(to, subject, body string) error {
	_, err := s.emailBreaker.Execute(func() (interface{}, error) {
		return nil, s.mailer.SendEmail(to, subject, body)
	})
	return err
}

func (s *AuthService) issueVerification(ctx context.Context, userID primitive.ObjectID, purpose models.TokenPurpose, validFor time.Duration) (string, error) {
	token, err := utils.GenerateToken(userID.Hex(), string(purpose), validFor)
	if err != nil {
		return "", fmt.Errorf("failed to sign verification token: %v", err)
	}

	verification := models.Verification{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Token:     token,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(validFor),
		CreatedAt: time.Now(),
	}
	if _, err := s.verificationsCollection.InsertOne(ctx, verification); err != nil {
		return "", fmt.Errorf("failed to store verification token: %v", err)
	}

	return token, nil
}

func (s *AuthService) sendVerificationEmail(email, name, token string) error {
	verificationLink := fmt.Sprintf("%s/verify-email?token=%s", s.frontendURL, token)
	emailBody := fmt.Sprintf(`
      <h1>Welcome to TaskPro</h1>
      <p>Hi %s,</p>
      <p>Thank you for registering with TaskPro. Please click the link below to verify your email address:</p>
      <a href="%s">Verify Email</a>
      <p>If you did not create an account, please ignore this email.</p>
    `, name, verificationLink)

	return s.sendEmail(email, "Verify Your Email - TaskPro", emailBody)
}

// Register creates an unverified user and mails a verification link.
func (s *AuthService) Register(ctx context.Context, email, name, password string) error {
	count, err := s.usersCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return fmt.Errorf("failed to check existing user: %v", err)
	}
	if count > 0 {
		return ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}

	now := time.Now()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Name:      name,
		Password:  string(hashedPassword),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.usersCollection.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %v", err)
	}

	token, err := s.issueVerification(ctx, user.ID, models.PurposeEmailVerification, 24*time.Hour)
	if err != nil {
		return err
	}

	if err := s.sendVerificationEmail(email, name, token); err != nil {
		logging.Logger.Errorf("Event ID: EMAIL_SEND_FAILED, Description: Failed to send verification email to %s: %v", email, err)
		return ErrEmailSendFailed
	}

	return nil
}

// Login authenticates the user. If the email is unverified and the pending
// token is still live, ErrEmailNotVerified comes back. If the token is
// missing or expired, a fresh one is issued and mailed and resent is true.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, bool, error) {
	var user models.User
	err := s.usersCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", false, ErrInvalidCredentials
		}
		return nil, "", false, fmt.Errorf("failed to retrieve user: %v", err)
	}

	if !user.IsEmailVerified {
		var existing *models.Verification
		var verification models.Verification
		err := s.verificationsCollection.FindOne(ctx, bson.M{"userId": user.ID}).Decode(&verification)
		if err == nil {
			existing = &verification
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", false, fmt.Errorf("failed to retrieve verification: %v", err)
		}

		if existing != nil && existing.ExpiresAt.After(time.Now()) {
			return nil, "", false, ErrEmailNotVerified
		}

		// Stale or absent token: delete the old record if there is one,
		// then issue and mail a fresh link.
		if existing != nil {
			if _, err := s.verificationsCollection.DeleteOne(ctx, bson.M{"_id": existing.ID}); err != nil {
				return nil, "", false, fmt.Errorf("failed to delete stale verification: %v", err)
			}
		}

		token, err := s.issueVerification(ctx, user.ID, models.PurposeEmailVerification, 24*time.Hour)
		if err != nil {
			return nil, "", false, err
		}
		if err := s.sendVerificationEmail(user.Email, user.Name, token); err != nil {
			logging.Logger.Errorf("Event ID: EMAIL_SEND_FAILED, Description: Failed to resend verification email to %s: %v", user.Email, err)
			return nil, "", false, ErrEmailSendFailed
		}

		return nil, "", true, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", false, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID.Hex(), utils.PurposeLogin, 7*24*time.Hour)
	if err != nil {
		return nil, "", false, fmt.Errorf("failed to sign login token: %v", err)
	}

	user.LastLogin = time.Now()
	update := bson.M{"$set": bson.M{"lastLogin": user.LastLogin}}
	if _, err := s.usersCollection.UpdateOne(ctx, bson.M{"_id": user.ID}, update); err != nil {
		return nil, "", false, fmt.Errorf("failed to update last login: %v", err)
	}

	return &user, token, false, nil
}

// VerifyEmail flips the verified flag for a valid, unexpired verification
// token and removes the token record.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := utils.ValidateToken(token)
	if err != nil {
		return ErrInvalidToken
	}
	if claims.Purpose != utils.PurposeEmailVerification {
		return ErrInvalidToken
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return ErrInvalidToken
	}

	var verification models.Verification
	err = s.verificationsCollection.FindOne(ctx, bson.M{"userId": userID, "token": token}).Decode(&verification)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInvalidToken
		}
		return fmt.Errorf("failed to retrieve verification: %v", err)
	}

	if verification.ExpiresAt.Before(time.Now()) {
		return ErrTokenExpired
	}

	var user models.User
	err = s.usersCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to retrieve user: %v", err)
	}

	if user.IsEmailVerified {
		return ErrAlreadyVerified
	}

	update := bson.M{"$set": bson.M{"isEmailVerified": true, "updatedAt": time.Now()}}
	if _, err := s.usersCollection.UpdateOne(ctx, bson.M{"_id": userID}, update); err != nil {
		return fmt.Errorf("failed to mark email verified: %v", err)
	}

	if _, err := s.verificationsCollection.DeleteOne(ctx, bson.M{"_id": verification.ID}); err != nil {
		return fmt.Errorf("failed to delete verification: %v", err)
	}

	return nil
}

// RequestPasswordReset mails a 15-minute reset link to a verified user.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	var user models.User
	err := s.usersCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to retrieve user: %v", err)
	}

	if !user.IsEmailVerified {
		return ErrEmailNotVerified
	}

	var verification models.Verification
	err = s.verificationsCollection.FindOne(ctx, bson.M{"userId": user.ID}).Decode(&verification)
	if err == nil {
		if verification.ExpiresAt.After(time.Now()) {
			return ErrResetPending
		}
		if _, err := s.verificationsCollection.DeleteOne(ctx, bson.M{"_id": verification.ID}); err != nil {
			return fmt.Errorf("failed to delete stale verification: %v", err)
		}
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("failed to retrieve verification: %v", err)
	}

	token, err := s.issueVerification(ctx, user.ID, models.PurposeResetPassword, 15*time.Minute)
	if err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)
	emailBody := fmt.Sprintf(`
      <h1>Password Reset Request</h1>
      <p>Hi %s,</p>
      <p>You requested a password reset. Please click the link below to reset your password:</p>
      <a href="%s">Reset Password</a>
      <p>If you did not request this, please ignore this email.</p>
    `, user.Name, resetLink)

	if err := s.sendEmail(user.Email, "Reset Your Password - TaskPro", emailBody); err != nil {
		logging.Logger.Errorf("Event ID: EMAIL_SEND_FAILED, Description: Failed to send password reset email to %s: %v", user.Email, err)
		return ErrEmailSendFailed
	}

	return nil
}

// ResetPassword validates the reset token and replaces the password hash.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) error {
	claims, err := utils.ValidateToken(token)
	if err != nil {
		return ErrInvalidToken
	}
	if claims.Purpose != utils.PurposeResetPassword {
		return ErrInvalidToken
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return ErrInvalidToken
	}

	var verification models.Verification
	err = s.verificationsCollection.FindOne(ctx, bson.M{"userId": userID, "token": token}).Decode(&verification)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInvalidToken
		}
		return fmt.Errorf("failed to retrieve verification: %v", err)
	}

	if verification.ExpiresAt.Before(time.Now()) {
		return ErrTokenExpired
	}

	var user models.User
	err = s.usersCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to retrieve user: %v", err)
	}

	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}

	update := bson.M{"$set": bson.M{"password": string(hashedPassword), "updatedAt": time.Now()}}
	if _, err := s.usersCollection.UpdateOne(ctx, bson.M{"_id": userID}, update); err != nil {
		return fmt.Errorf("failed to update password: %v", err)
	}

	return nil
}
