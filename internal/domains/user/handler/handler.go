package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamereviews-backend/internal/domains/user/model"
	"gamereviews-backend/internal/domains/user/service"
	"gamereviews-backend/internal/shared/apierr"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetUser handles GET /api/users/:username. Any string is a well-formed
// username, so the only failure is absence.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("username"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.Respond(c, apierr.InvalidInput())
		return
	}
	if err := req.Validate(); err != nil {
		apierr.Respond(c, apierr.InvalidInput())
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// UpdateUser handles PATCH /api/users/:username. An empty body is a
// no-op update that still returns the stored user.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	// EOF means no body at all, which is tolerated. Covers chunked
	// requests where ContentLength is unknown.
	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		apierr.Respond(c, apierr.InvalidInput())
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("username"), req)
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
