package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/design-review/internal/application"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// GetUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} user.User
// @Router /api/users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.svc.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetCurrentUser godoc
// @Summary The user the request acts as
// @Tags users
// @Produce json
// @Success 200 {object} user.User
// @Failure 404 {object} response.ErrorResponse
// @Router /api/users/me [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	u, err := h.svc.CurrentUser(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// GetUserByID godoc
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} user.User
// @Failure 404 {object} response.ErrorResponse
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	u, err := h.svc.GetUser(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
