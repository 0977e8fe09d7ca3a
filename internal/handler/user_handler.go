package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adminacl/internal/service"
	"adminacl/pkg/response"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/users", h.ListUsersWithRoles)
}

// ListUsersWithRoles returns directory users decorated with role names.
func (h *UserHandler) ListUsersWithRoles(c *gin.Context) {
	users, err := h.userService.ListUsersWithRoles(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, "user directory unavailable"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, users))
}
