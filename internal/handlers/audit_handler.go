package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier/internal/services"
)

// AuditHandler handles audit log requests
type AuditHandler struct {
	auditService services.AuditServicer
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditService services.AuditServicer) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// ListLogs handles listing audit logs
// @Summary     List audit logs
// @Description List the most recent audit logs with optional filters (admin only)
// @Tags        audit
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       user_name query string false "Filter by actor name substring"
// @Param       action query string false "Filter by action (create/update/delete/status)"
// @Param       entity query string false "Filter by entity type"
// @Success     200 {array} models.AuditLog "Audit logs, newest first"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin access required"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /audit [get]
func (h *AuditHandler) ListLogs(c *gin.Context) {
	filter := services.AuditFilter{
		UserName: c.Query("user_name"),
		Action:   c.Query("action"),
		Entity:   c.Query("entity"),
	}

	logs, err := h.auditService.ListLogs(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
