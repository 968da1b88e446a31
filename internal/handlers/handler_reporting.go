package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tripfin/travel_ledger_app/internal/core/ports/services"
	"github.com/tripfin/travel_ledger_app/internal/dto"
	"github.com/tripfin/travel_ledger_app/internal/middleware"
	"github.com/tripfin/travel_ledger_app/internal/utils/export"
)

// reportingHandler handles HTTP requests for the derived reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the report endpoints.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/profit-and-loss", h.profitAndLoss)
		reports.GET("/balance-sheet", h.balanceSheet)
		reports.GET("/ledger", h.ledger)
		reports.GET("/agency-statements", h.allAgencyStatements)
		reports.GET("/agency-statements/:agencyID", h.agencyStatement)
		reports.GET("/dashboard", h.dashboard)
	}
}

func (h *reportingHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ReportFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), params.ToDomainFilter())
	if err != nil {
		logger.Error("Failed to compute trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute trial balance"})
		return
	}

	if c.Query("format") == "csv" {
		var buf bytes.Buffer
		if err := export.WriteTrialBalanceCSV(&buf, report); err != nil {
			logger.Error("Failed to render trial balance CSV", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render CSV"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="trial_balance.csv"`)
		c.Data(http.StatusOK, "text/csv", buf.Bytes())
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) profitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ReportFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), params.ToDomainFilter())
	if err != nil {
		logger.Error("Failed to compute profit and loss", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute profit and loss"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ReportFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), params.ToDomainFilter())
	if err != nil {
		logger.Error("Failed to compute balance sheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance sheet"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) ledger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ReportFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var accountID *string
	if id := c.Query("accountID"); id != "" {
		accountID = &id
	}

	report, err := h.reportingService.Ledger(c.Request.Context(), params.ToDomainFilter(), accountID)
	if err != nil {
		logger.Error("Failed to compute ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute ledger"})
		return
	}

	if c.Query("format") == "csv" && accountID != nil {
		var buf bytes.Buffer
		if err := export.WriteLedgerCSV(&buf, report); err != nil {
			logger.Error("Failed to render ledger CSV", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render CSV"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="ledger.csv"`)
		c.Data(http.StatusOK, "text/csv", buf.Bytes())
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) agencyStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	agencyID := c.Param("agencyID")
	var params dto.ReportFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	statement, err := h.reportingService.AgencyStatement(c.Request.Context(), agencyID, params.ToDomainFilter())
	if err != nil {
		logger.Error("Failed to build agency statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build agency statement"})
		return
	}

	if c.Query("format") == "csv" {
		var buf bytes.Buffer
		if err := export.WriteAgencyStatementCSV(&buf, statement); err != nil {
			logger.Error("Failed to render agency statement CSV", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render CSV"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="agency_statement.csv"`)
		c.Data(http.StatusOK, "text/csv", buf.Bytes())
		return
	}

	c.JSON(http.StatusOK, statement)
}

func (h *reportingHandler) allAgencyStatements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ReportFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	statements, err := h.reportingService.AllAgencyStatements(c.Request.Context(), params.ToDomainFilter())
	if err != nil {
		logger.Error("Failed to build agency statements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build agency statements"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"statements": statements})
}

func (h *reportingHandler) dashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ReportFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	kpis, err := h.reportingService.DashboardKPIs(c.Request.Context(), params.ToDomainFilter())
	if err != nil {
		logger.Error("Failed to compute dashboard KPIs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard KPIs"})
		return
	}

	c.JSON(http.StatusOK, kpis)
}
