package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/yasmin-center/tanseeq-backend/internal/middleware"
	"github.com/yasmin-center/tanseeq-backend/internal/model"
	"github.com/yasmin-center/tanseeq-backend/internal/repository"
	"github.com/yasmin-center/tanseeq-backend/internal/response"
	"github.com/yasmin-center/tanseeq-backend/internal/service"
	"github.com/yasmin-center/tanseeq-backend/internal/validator"
)

// AuthHandler handles coordinator authentication endpoints.
type AuthHandler struct {
	authService     *service.AuthService
	coordinatorRepo *repository.CoordinatorRepository
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, coordinatorRepo *repository.CoordinatorRepository) *AuthHandler {
	return &AuthHandler{authService: authService, coordinatorRepo: coordinatorRepo}
}

// Login godoc
// POST /api/v1/auth/login
// Validates email + password and returns a JWT. A new login replaces any
// existing session for the same coordinator.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.CoordinatorLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	coordinator, err := h.coordinatorRepo.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if err := h.authService.CheckPassword(coordinator.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	token, err := h.authService.GenerateToken(c.Request.Context(), coordinator.ID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token":       token,
		"coordinator": coordinator,
	})
}

// Logout godoc
// POST /api/v1/auth/logout
// Clears the coordinator's active session.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.authService.ClearSession(c.Request.Context(), claims.CoordinatorID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// GetProfile godoc
// GET /api/v1/auth/me
// Returns the currently authenticated coordinator.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	coordinator, err := h.coordinatorRepo.GetByID(c.Request.Context(), claims.CoordinatorID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"coordinator": coordinator})
}
