package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobnest/jobnest-api/internal/domain"
	"github.com/jobnest/jobnest-api/internal/log"
	"github.com/jobnest/jobnest-api/internal/queue"
	"github.com/jobnest/jobnest-api/internal/repo"
	"github.com/jobnest/jobnest-api/internal/security"
)

const (
	verificationTTL = 24 * time.Hour
	resetTokenTTL   = 30 * time.Minute
)

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Register godoc
// @Summary Register user
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body registerReq true "register"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /api/auth/signup [post]
func (h *Handler) Register(c *gin.Context) {
	var in registerReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}
	email := strings.TrimSpace(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || in.Password == "" || name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields."})
		return
	}

	if _, err := h.Store.FindUserByEmail(c.Request.Context(), email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists."})
		return
	}

	hash, err := security.HashPassword(in.Password, h.Cfg.BcryptCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}
	code, err := security.NewVerificationCode()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}

	exp := time.Now().Add(verificationTTL).UTC()
	u := &domain.User{
		Email:                 email,
		Name:                  name,
		PasswordHash:          hash,
		VerificationToken:     code,
		VerificationExpiresAt: &exp,
	}
	if err := h.Store.CreateUser(c.Request.Context(), u); err != nil {
		// unique email index backstops the existence check above
		if err == repo.ErrDuplicate {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists."})
			return
		}
		log.L().Error("create user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}

	tok, err := security.MakeSession(h.Cfg.JWTSecret, u.ID.Hex(), h.sessionTTL())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}
	h.setSessionCookie(c, tok)

	h.publish(c, queue.KeyUserRegistered, queue.UserRegistered{UserID: u.ID.Hex(), Email: u.Email, Name: u.Name, Code: code})

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully.", "user": u})
}

type verifyEmailReq struct {
	Code string `json:"code"`
}

// VerifyEmail godoc
// @Summary Verify email with the 6-digit code
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body verifyEmailReq true "code"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /api/auth/verify-email [post]
func (h *Handler) VerifyEmail(c *gin.Context) {
	var in verifyEmailReq
	if err := c.ShouldBindJSON(&in); err != nil || in.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired verification code."})
		return
	}

	u, err := h.Store.FindUserByVerificationToken(c.Request.Context(), in.Code)
	if err == repo.ErrNotFound {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired verification code."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}
	// unreachable under normal flow: the token is cleared on verification.
	if u.IsVerified {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already verified"})
		return
	}

	if err := h.Store.MarkVerified(c.Request.Context(), u.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}
	u.IsVerified = true
	u.VerificationToken = ""
	u.VerificationExpiresAt = nil

	h.publish(c, queue.KeyUserVerified, queue.UserVerified{Email: u.Email, Name: u.Name})

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully.", "user": u})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginReq true "login"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var in loginReq
	if err := c.ShouldBindJSON(&in); err != nil || in.Email == "" || in.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required."})
		return
	}

	u, err := h.Store.FindUserByEmail(c.Request.Context(), strings.TrimSpace(in.Email))
	if err == repo.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found please create an account to continue."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}
	if !security.CheckPassword(u.PasswordHash, in.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Email or Password."})
		return
	}

	tok, err := security.MakeSession(h.Cfg.JWTSecret, u.ID.Hex(), h.sessionTTL())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}
	h.setSessionCookie(c, tok)

	now := time.Now().UTC()
	if err := h.Store.UpdateLastLogin(c.Request.Context(), u.ID, now); err != nil {
		log.L().Error("update last login failed", zap.Error(err))
	}
	u.LastLogin = now

	c.JSON(http.StatusOK, gin.H{"message": "Logged in successfully.", "user": u})
}

type forgotPasswordReq struct {
	Email string `json:"email"`
}

// ForgotPassword godoc
// @Summary Request a password reset link
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body forgotPasswordReq true "email"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/auth/forgot-password [post]
func (h *Handler) ForgotPassword(c *gin.Context) {
	var in forgotPasswordReq
	if err := c.ShouldBindJSON(&in); err != nil || in.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required."})
		return
	}

	u, err := h.Store.FindUserByEmail(c.Request.Context(), strings.TrimSpace(in.Email))
	if err == repo.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}

	token, err := security.NewResetToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}
	// overwrites any pending token; only the latest reset request stays valid
	if err := h.Store.SetResetToken(c.Request.Context(), u.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}

	link := strings.TrimRight(h.Cfg.ClientURL, "/") + "/reset-password/" + token
	h.publish(c, queue.KeyResetRequested, queue.ResetRequested{Email: u.Email, ResetLink: link})

	c.JSON(http.StatusOK, gin.H{"message": "Password reset link sent to your email."})
}

type resetPasswordReq struct {
	Password string `json:"password"`
}

// ResetPassword godoc
// @Summary Reset password with a token from the email link
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "reset token"
// @Param payload body resetPasswordReq true "new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/auth/reset-password/{token} [post]
func (h *Handler) ResetPassword(c *gin.Context) {
	token := c.Param("token")
	var in resetPasswordReq
	if err := c.ShouldBindJSON(&in); err != nil || in.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password is required."})
		return
	}

	u, err := h.Store.FindUserByResetToken(c.Request.Context(), token)
	if err == repo.ErrNotFound {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired reset token."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}

	hash, err := security.HashPassword(in.Password, h.Cfg.BcryptCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}
	if err := h.Store.ReplacePassword(c.Request.Context(), u.ID, hash); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}

	h.publish(c, queue.KeyResetDone, queue.ResetDone{Email: u.Email})

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully."})
}

// Logout godoc
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully."})
}

// CheckAuth godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/auth/check-auth [get]
func (h *Handler) CheckAuth(c *gin.Context) {
	u, err := h.currentUser(c)
	if err == repo.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

type updateUserReq struct {
	Role domain.Role `json:"role"`
}

// UpdateUser godoc
// @Summary Set the caller's role
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body updateUserReq true "role: candidate|employer"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/auth/update-user [put]
func (h *Handler) UpdateUser(c *gin.Context) {
	var in updateUserReq
	if err := c.ShouldBindJSON(&in); err != nil || !in.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Role must be candidate or employer."})
		return
	}

	u, err := h.currentUser(c)
	if err == repo.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}

	if err := h.Store.SetRole(c.Request.Context(), u.ID, in.Role); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}
	u.Role = in.Role

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully.", "user": u})
}
