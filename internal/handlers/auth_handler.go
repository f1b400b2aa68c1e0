package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edudesk/school-admin-api/internal/models"
	"github.com/edudesk/school-admin-api/internal/repository"
	"github.com/edudesk/school-admin-api/internal/services"
	"github.com/edudesk/school-admin-api/internal/utils"
	"github.com/edudesk/school-admin-api/internal/validation"
)

type SignupRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

// Signup creates a staff account. No session is issued; the user logs in next.
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if fields := validation.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "errors": fields})
		return
	}

	// Pre-check gives the friendly message; the unique index on users.email
	// is what actually guarantees it.
	if _, err := h.Users.FindByEmail(c.Request.Context(), req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "User already exists"})
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		h.internalError(c, err, "signup: lookup user")
		return
	}

	hashed, err := utils.HashPassword(req.Password, h.Opts.BcryptCost)
	if err != nil {
		h.internalError(c, err, "signup: hash password")
		return
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hashed,
	}
	if err := h.Users.Create(c.Request.Context(), &user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "User already exists"})
			return
		}
		h.internalError(c, err, "signup: insert user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Signup successfully"})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues a session token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if fields := validation.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "errors": fields})
		return
	}

	user, err := h.Users.FindByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}
	if err != nil {
		h.internalError(c, err, "login: lookup user")
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid password"})
		return
	}

	token, err := utils.GenerateJWT(h.Opts.JWTSecret, user.ID.Hex(), user.Email, h.Opts.JWTExpiry)
	if err != nil {
		h.internalError(c, err, "login: generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Login successful",
		"token":     token,
		"email":     user.Email,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
	})
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword verifies the email exists and issues a single-use reset
// token with a short TTL. The reset step must present that token, so knowing
// an email alone is not enough to take over an account.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if fields := validation.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "errors": fields})
		return
	}

	if _, err := h.Users.FindByEmail(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Email not found"})
			return
		}
		h.internalError(c, err, "forgot password: lookup user")
		return
	}

	token, err := h.Tokens.Issue(c.Request.Context(), req.Email)
	if err != nil {
		h.internalError(c, err, "forgot password: issue token")
		return
	}
	h.Mailer.SendResetCode(req.Email, token)

	resp := gin.H{"success": true, "message": "Reset code sent"}
	if h.Opts.EchoResetToken {
		resp["resetToken"] = token
	}
	c.JSON(http.StatusOK, resp)
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ResetPassword consumes the reset token and overwrites the stored hash.
func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if fields := validation.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "errors": fields})
		return
	}

	email, err := h.Tokens.Consume(c.Request.Context(), req.Token)
	if errors.Is(err, services.ErrTokenNotFound) || (err == nil && email != req.Email) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired reset token"})
		return
	}
	if err != nil {
		h.internalError(c, err, "reset password: consume token")
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword, h.Opts.BcryptCost)
	if err != nil {
		h.internalError(c, err, "reset password: hash password")
		return
	}

	if err := h.Users.UpdatePassword(c.Request.Context(), req.Email, hashed); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Email not found"})
			return
		}
		h.internalError(c, err, "reset password: update password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset successful"})
}

// GetUsers lists every staff account, password hashes excluded.
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		h.internalError(c, err, "list users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

// internalError hides the cause from the client and logs it server-side.
func (h *Handler) internalError(c *gin.Context, err error, op string) {
	h.Log.Error().Err(err).Str("op", op).Msg("Internal server error")
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
}
