package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meli-labs/seller-dashboard/internal/domain"
	"github.com/meli-labs/seller-dashboard/internal/metrics"
	"github.com/meli-labs/seller-dashboard/internal/usecase"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthResult, error)
	Login(ctx context.Context, email, password string) (*usecase.AuthResult, error)
	CurrentUser(ctx context.Context, userID int64) (*domain.User, error)
}

type AuthHandler struct {
	authUsecase authUsecaser
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase authUsecaser, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_handler"),
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userView is the public representation of a user. The password hash
// never appears here.
type userView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

type authResponse struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

func viewOf(u *domain.User) userView {
	return userView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		IsActive:  u.IsActive,
	}
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.authUsecase.Register(c.Request.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			metrics.RegistrationsTotal.WithLabelValues("validation_error").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Reason})
		case errors.Is(err, domain.ErrEmailTaken):
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			c.JSON(http.StatusConflict, gin.H{"error": errEmailTaken})
		default:
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			h.logger.ErrorContext(c.Request.Context(), "register", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusCreated, authResponse{Token: res.Token, User: viewOf(res.User)})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Reason})
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"error": errInvalidCredentials})
		case errors.Is(err, domain.ErrAccountDisabled):
			metrics.LoginsTotal.WithLabelValues("disabled").Inc()
			c.JSON(http.StatusForbidden, gin.H{"error": errAccountDisabled})
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
			h.logger.ErrorContext(c.Request.Context(), "login", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, authResponse{Token: res.Token, User: viewOf(res.User)})
}

// GET /api/auth/me — runs behind the auth middleware.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetInt64("userID")

	user, err := h.authUsecase.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errUserNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "current user", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": viewOf(user)})
}

// POST /api/auth/logout — tokens are stateless, so there is nothing to
// revoke server-side; the client discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
