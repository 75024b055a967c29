package services

import "errors"

// Sentinel errors returned by the service layer. Handlers translate these
// into HTTP statuses; anything else is reported as a generic server error.
var (
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrSubtaskNotFound   = errors.New("subtask not found")
	ErrUserNotFound      = errors.New("user not found")

	// Membership failures are distinct from not-found: the resource exists
	// but the authenticated user is not on its member list.
	ErrNotProjectMember   = errors.New("user is not a member of this project")
	ErrNotWorkspaceMember = errors.New("user is not a member of this workspace")

	ErrEmailExists        = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrResetPending       = errors.New("a password reset request is already pending")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenExpired       = errors.New("token has expired")
	ErrAlreadyVerified    = errors.New("email is already verified")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmailSendFailed    = errors.New("failed to send email")
)
