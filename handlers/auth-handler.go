package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ArunKushhhh/TaskPro-Backend/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.Email == "" || body.Name == "" || body.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Email, name and password are required")
		return
	}

	err := h.authService.Register(r.Context(), body.Email, body.Name, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailExists):
			writeMessage(w, http.StatusBadRequest, "User with this email already exists")
		case errors.Is(err, services.ErrEmailSendFailed):
			writeMessage(w, http.StatusInternalServerError, "Failed to send verification email. Please try again later.")
		default:
			handleServiceError(w, err)
		}
		return
	}

	writeMessage(w, http.StatusCreated, "Verification email sent successfully to your email. Please check and verify your email to continue")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, token, resent, err := h.authService.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			writeMessage(w, http.StatusBadRequest, "Invalid email or password")
		case errors.Is(err, services.ErrEmailNotVerified):
			writeMessage(w, http.StatusBadRequest, "Email not verified. Please check your email for verification link.")
		case errors.Is(err, services.ErrEmailSendFailed):
			writeMessage(w, http.StatusInternalServerError, "Failed to send verification email. Please try again later.")
		default:
			handleServiceError(w, err)
		}
		return
	}

	if resent {
		writeMessage(w, http.StatusCreated, "Verification email sent successfully to your email. Please check and verify your email to continue")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"user": map[string]interface{}{
			"id":              user.ID,
			"email":           user.Email,
			"name":            user.Name,
			"isEmailVerified": user.IsEmailVerified,
			"profilePicture":  user.ProfilePicture,
		},
	})
}

func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := h.authService.VerifyEmail(r.Context(), body.Token)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidToken):
			writeMessage(w, http.StatusBadRequest, "Invalid or expired token")
		case errors.Is(err, services.ErrTokenExpired):
			writeMessage(w, http.StatusBadRequest, "Token has expired")
		case errors.Is(err, services.ErrUserNotFound):
			writeMessage(w, http.StatusNotFound, "User not found")
		case errors.Is(err, services.ErrAlreadyVerified):
			writeMessage(w, http.StatusBadRequest, "Email is already verified")
		default:
			handleServiceError(w, err)
		}
		return
	}

	writeMessage(w, http.StatusOK, "Email verified successfully. You can now log in.")
}

func (h *AuthHandler) ResetPasswordRequest(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := h.authService.RequestPasswordReset(r.Context(), body.Email)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			writeMessage(w, http.StatusNotFound, "User not found")
		case errors.Is(err, services.ErrEmailNotVerified):
			writeMessage(w, http.StatusBadRequest, "Email not verified. Please verify your email before resetting password.")
		case errors.Is(err, services.ErrResetPending):
			writeMessage(w, http.StatusBadRequest, "A password reset request is already pending. Please check your email.")
		case errors.Is(err, services.ErrEmailSendFailed):
			writeMessage(w, http.StatusInternalServerError, "Failed to send password reset email. Please try again later.")
		default:
			handleServiceError(w, err)
		}
		return
	}

	writeMessage(w, http.StatusOK, "Password reset email sent successfully. Please check your email to reset your password.")
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token           string `json:"token"`
		NewPassword     string `json:"newPassword"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := h.authService.ResetPassword(r.Context(), body.Token, body.NewPassword, body.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidToken), errors.Is(err, services.ErrUserNotFound):
			writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		case errors.Is(err, services.ErrTokenExpired):
			writeMessage(w, http.StatusUnauthorized, "Token Expired")
		case errors.Is(err, services.ErrPasswordMismatch):
			writeMessage(w, http.StatusUnauthorized, "Passwords do not match")
		default:
			handleServiceError(w, err)
		}
		return
	}

	writeMessage(w, http.StatusOK, "Password Reset Successfully")
}
