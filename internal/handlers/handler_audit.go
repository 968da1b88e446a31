package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tripfin/travel_ledger_app/internal/core/ports/services"
	"github.com/tripfin/travel_ledger_app/internal/dto"
	"github.com/tripfin/travel_ledger_app/internal/middleware"
)

// auditHandler serves the read side of the audit trail.
type auditHandler struct {
	auditService portssvc.AuditService
}

func newAuditHandler(as portssvc.AuditService) *auditHandler {
	return &auditHandler{auditService: as}
}

// registerAuditRoutes registers the audit trail endpoints.
func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditService) {
	h := newAuditHandler(auditService)

	audit := rg.Group("/audit")
	{
		audit.GET("", h.listRecords)
	}
}

func (h *auditHandler) listRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAuditParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	records, err := h.auditService.List(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list audit records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list audit records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}
