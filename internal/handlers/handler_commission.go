package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripfin/travel_ledger_app/internal/apperrors"
	portssvc "github.com/tripfin/travel_ledger_app/internal/core/ports/services"
	"github.com/tripfin/travel_ledger_app/internal/dto"
	"github.com/tripfin/travel_ledger_app/internal/middleware"
)

// commissionHandler handles HTTP requests for the commission lifecycle.
type commissionHandler struct {
	commissionService portssvc.CommissionService
}

func newCommissionHandler(cs portssvc.CommissionService) *commissionHandler {
	return &commissionHandler{commissionService: cs}
}

// registerCommissionRoutes registers routes related to commissions.
func registerCommissionRoutes(rg *gin.RouterGroup, commissionService portssvc.CommissionService) {
	h := newCommissionHandler(commissionService)

	commissions := rg.Group("/commissions")
	{
		commissions.POST("", h.createCommission)
		commissions.GET("/:id", h.getCommission)
		commissions.GET("", h.listCommissions)
		commissions.POST("/:id/earn", h.markEarned)
		commissions.POST("/:id/pay", h.pay)
	}
}

func (h *commissionHandler) createCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Acting user required"})
		return
	}

	record, err := h.commissionService.CreateCommission(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create commission", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create commission"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommissionResponse(record))
}

func (h *commissionHandler) getCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commissionID := c.Param("id")

	record, err := h.commissionService.GetCommissionByID(c.Request.Context(), commissionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Commission not found"})
		} else {
			logger.Error("Failed to get commission", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve commission"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCommissionResponse(record))
}

func (h *commissionHandler) listCommissions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCommissionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	records, err := h.commissionService.ListCommissions(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list commissions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list commissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"commissions": dto.ToCommissionResponses(records)})
}

func (h *commissionHandler) markEarned(c *gin.Context) {
	h.transition(c, func(ctx *gin.Context, id, actorID string) (any, error) {
		record, err := h.commissionService.MarkEarned(ctx.Request.Context(), id, actorID)
		if err != nil {
			return nil, err
		}
		return dto.ToCommissionResponse(record), nil
	})
}

func (h *commissionHandler) pay(c *gin.Context) {
	h.transition(c, func(ctx *gin.Context, id, actorID string) (any, error) {
		record, err := h.commissionService.Pay(ctx.Request.Context(), id, actorID)
		if err != nil {
			return nil, err
		}
		return dto.ToCommissionResponse(record), nil
	})
}

// transition runs one lifecycle step and maps its errors. Illegal state
// moves surface as conflicts.
func (h *commissionHandler) transition(c *gin.Context, step func(*gin.Context, string, string) (any, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commissionID := c.Param("id")

	actorID, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Acting user required"})
		return
	}

	response, err := step(c, commissionID, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Commission not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to advance commission", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to advance commission"})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}
