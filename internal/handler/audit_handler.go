package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adminacl/internal/service"
	"adminacl/pkg/response"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/audit-logs", h.ListEntries)
}

// ListEntries returns the ACL mutation trail, newest first.
func (h *AuditHandler) ListEntries(c *gin.Context) {
	entries, err := h.auditService.ListEntries(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, entries))
}
