package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adminacl/internal/service"
	"adminacl/pkg/response"
)

type RoleHandler struct {
	roleService service.RoleService
}

func NewRoleHandler(roleService service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

func (h *RoleHandler) RegisterRoutes(router *gin.RouterGroup) {
	roles := router.Group("/api/roles")
	{
		roles.GET("", h.ListRoles)
		roles.GET("/:id", h.GetRole)
		roles.POST("", h.CreateRole)
		roles.PUT("/:id", h.UpdateRole)
		roles.DELETE("/:id", h.DeleteRole)
	}

	perms := router.Group("/api/permissions")
	{
		perms.GET("/groups", h.ListPermissionGroups)
	}
}

// ListRoles returns all roles with their permissions.
func (h *RoleHandler) ListRoles(c *gin.Context) {
	roles, err := h.roleService.ListRoles(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, roles))
}

// GetRole returns a single role by ID, or by slug via ?by=slug.
func (h *RoleHandler) GetRole(c *gin.Context) {
	ctx := c.Request.Context()
	key := c.Param("id")

	var err error
	var role any
	if c.Query("by") == "slug" {
		role, err = h.roleService.GetRoleBySlug(ctx, key)
	} else {
		role, err = h.roleService.GetRole(ctx, key)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, role))
}

// CreateRole creates a new custom role.
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var input service.RoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid request payload: "+err.Error()))
		return
	}

	role, err := h.roleService.CreateRole(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, role))
}

// UpdateRole replaces a role's editable fields in one call.
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	var input service.RoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid request payload: "+err.Error()))
		return
	}

	role, err := h.roleService.UpdateRole(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, role))
}

// DeleteRole deletes a non-system role.
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	if err := h.roleService.DeleteRole(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "role deleted"}))
}

// ListPermissionGroups returns the static permission catalog.
func (h *RoleHandler) ListPermissionGroups(c *gin.Context) {
	groups := h.roleService.ListPermissionGroups(c.Request.Context())
	c.JSON(http.StatusOK, response.Success(http.StatusOK, groups))
}
