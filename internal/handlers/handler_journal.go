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

// journalHandler handles HTTP requests for journal entries and the domain
// posting endpoints.
type journalHandler struct {
	journalService portssvc.JournalService
}

func newJournalHandler(js portssvc.JournalService) *journalHandler {
	return &journalHandler{journalService: js}
}

// registerJournalRoutes registers routes related to the journal engine.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalService) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createEntry)
		journals.GET("/:id", h.getEntry)
		journals.GET("", h.listEntries)
		journals.PATCH("/:id", h.updateEntry)
		journals.POST("/:id/reverse", h.reverseEntry)
	}

	postings := rg.Group("/postings")
	{
		postings.POST("/booking-sale", h.postBookingSale)
		postings.POST("/payment-received", h.postPaymentReceived)
		postings.POST("/manual", h.postManualEntry)
	}
}

func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJournalEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Acting user required"})
		return
	}

	entry, err := h.journalService.CreateJournalEntry(c.Request.Context(), req, actorID)
	if err != nil {
		h.respondPostingError(c, logger, err, "Failed to create journal entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalResponse(entry))
}

func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	entry, err := h.journalService.GetJournalEntry(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
		} else {
			logger.Error("Failed to get journal entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(entry))
}

func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ReportFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	includeReversed := c.Query("includeReversed") == "true"

	entries, err := h.journalService.ListJournalEntries(c.Request.Context(), params.ToDomainFilter(), includeReversed)
	if err != nil {
		logger.Error("Failed to list journal entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list journal entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": dto.ToJournalResponses(entries)})
}

func (h *journalHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	var req dto.UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Acting user required"})
		return
	}

	entry, err := h.journalService.UpdateJournalEntry(c.Request.Context(), entryID, req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update journal entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update journal entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(entry))
}

func (h *journalHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	actorID, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Acting user required"})
		return
	}

	entry, err := h.journalService.ReverseJournalEntry(c.Request.Context(), entryID, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to reverse journal entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reverse journal entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(entry))
}

func (h *journalHandler) postBookingSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BookingSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Acting user required"})
		return
	}

	entries, err := h.journalService.PostBookingSale(c.Request.Context(), req, actorID)
	if err != nil {
		h.respondPostingError(c, logger, err, "Failed to post booking sale")
		return
	}

	responses := make([]dto.JournalResponse, len(entries))
	for i, e := range entries {
		responses[i] = dto.ToJournalResponse(e)
	}
	c.JSON(http.StatusCreated, gin.H{"entries": responses})
}

func (h *journalHandler) postPaymentReceived(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PaymentReceivedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Acting user required"})
		return
	}

	entry, err := h.journalService.PostPaymentReceived(c.Request.Context(), req, actorID)
	if err != nil {
		h.respondPostingError(c, logger, err, "Failed to post payment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalResponse(entry))
}

func (h *journalHandler) postManualEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ManualEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Acting user required"})
		return
	}

	entry, err := h.journalService.PostManualEntry(c.Request.Context(), req, actorID)
	if err != nil {
		h.respondPostingError(c, logger, err, "Failed to post manual entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalResponse(entry))
}

// respondPostingError maps posting failures to HTTP statuses. Unbalanced
// and missing-account errors are client faults with structured detail.
func (h *journalHandler) respondPostingError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	var unbalancedErr *apperrors.UnbalancedEntryError
	var missingErr *apperrors.MissingAccountsError
	switch {
	case errors.As(err, &unbalancedErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":       unbalancedErr.Error(),
			"debitTotal":  unbalancedErr.DebitTotal.String(),
			"creditTotal": unbalancedErr.CreditTotal.String(),
		})
	case errors.As(err, &missingErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":           missingErr.Error(),
			"missingAccounts": missingErr.Missing,
		})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
