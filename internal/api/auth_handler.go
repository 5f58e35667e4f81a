package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hudspal/tracker/internal/domain"
	"hudspal/tracker/internal/service"
)

// AuthHandler holds the session service dependencies.
type AuthHandler struct {
	authService    service.AuthService
	trackerService service.TrackerService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, trackerService service.TrackerService) *AuthHandler {
	return &AuthHandler{authService: authService, trackerService: trackerService}
}

// --- Request/Response Structs ---

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse excludes sensitive info like password hash
type UserResponse struct {
	ID        string       `json:"id"`
	Username  string       `json:"username"`
	Email     string       `json:"email"`
	Goals     domain.Goals `json:"goals"`
	CreatedAt time.Time    `json:"createdAt"`
}

type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UpdateGoalsRequest struct {
	Calories     float64 `json:"calories" binding:"required"`
	Protein      float64 `json:"protein" binding:"required"`
	Carbs        float64 `json:"carbs" binding:"required"`
	Fat          float64 `json:"fat" binding:"required"`
	Water        float64 `json:"water" binding:"required"`
	Sleep        float64 `json:"sleep" binding:"required"`
	WeightTarget float64 `json:"weight_target" binding:"required"`
}

// --- Handler Methods ---

// Register creates a local user record for the session and returns a token.
// No credentials are verified beyond being non-empty.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, user, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrCredentialsRequired) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during registration")
		}
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{Token: token, User: MapUserToResponse(user)})
}

// Login accepts any non-empty credentials and fabricates the user record when
// it does not exist yet.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrCredentialsRequired) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		}
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Token: token, User: MapUserToResponse(user)})
}

// Logout clears every session entry collection, like the dashboard does when
// the user signs out.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.trackerService.Reset(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the active user record.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load user")
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// UpdateGoals replaces the active user's daily targets.
func (h *AuthHandler) UpdateGoals(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req UpdateGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	goals := domain.Goals{
		Calories:     req.Calories,
		Protein:      req.Protein,
		Carbs:        req.Carbs,
		Fat:          req.Fat,
		Water:        req.Water,
		Sleep:        req.Sleep,
		WeightTarget: req.WeightTarget,
	}

	user, err := h.authService.UpdateGoals(c.Request.Context(), userID, goals)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update goals")
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// MapUserToResponse converts a domain User to a UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Goals:     user.Goals,
		CreatedAt: user.CreatedAt,
	}
}
