package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "atelier/internal/errors"
	"atelier/internal/models"
	"atelier/internal/services"
)

// ReportHandler handles financial report requests
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetSummary handles the dashboard summary
// @Summary     Financial summary
// @Description Income, expense and balance totals for the filtered period plus overall
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       kind query string false "Filter by kind (income/expense)"
// @Param       status query string false "Filter by status (pending/paid)"
// @Param       category_id query string false "Filter by category ID"
// @Param       payee_id query string false "Filter by payee ID"
// @Param       from query string false "Start of effective-date range (YYYY-MM-DD)"
// @Param       to query string false "End of effective-date range (YYYY-MM-DD)"
// @Success     200 {object} services.PeriodSummary "Period and overall totals"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	filter, err := parseEntryFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.reportService.Summary(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetMonthly handles the month-by-month series
// @Summary     Monthly series
// @Description Income, expense and balance per month over the trailing window
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       kind query string false "Filter by kind (income/expense)"
// @Param       status query string false "Filter by status (pending/paid)"
// @Param       category_id query string false "Filter by category ID"
// @Param       payee_id query string false "Filter by payee ID"
// @Param       from query string false "Start of effective-date range (YYYY-MM-DD)"
// @Param       to query string false "End of effective-date range (YYYY-MM-DD)"
// @Success     200 {object} services.ChartSeries "Monthly labels and values"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/monthly [get]
func (h *ReportHandler) GetMonthly(c *gin.Context) {
	filter, err := parseEntryFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	series, err := h.reportService.Monthly(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, series)
}

// GetCategories handles the per-category breakdown
// @Summary     Category breakdown
// @Description Totals per category for one kind; entries without a category fall under Outros
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       kind query string true "Entry kind (income/expense)"
// @Param       status query string false "Filter by status (pending/paid)"
// @Param       from query string false "Start of effective-date range (YYYY-MM-DD)"
// @Param       to query string false "End of effective-date range (YYYY-MM-DD)"
// @Success     200 {object} map[string]interface{} "Category buckets"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/categories [get]
func (h *ReportHandler) GetCategories(c *gin.Context) {
	kind := models.EntryKind(c.Query("kind"))
	if kind != models.EntryKindIncome && kind != models.EntryKindExpense {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "kind must be income or expense"))
		return
	}

	filter, err := parseEntryFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	buckets, err := h.reportService.Categories(filter, kind)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": buckets})
}

// GetMonthlyChart handles the rendered monthly chart
// @Summary     Monthly chart PNG
// @Description Rendered income/expense/balance chart for the filtered period
// @Tags        reports
// @Produce     png
// @Security    BearerAuth
// @Param       from query string false "Start of effective-date range (YYYY-MM-DD)"
// @Param       to query string false "End of effective-date range (YYYY-MM-DD)"
// @Success     200 {file} png "Chart image"
// @Success     204 "No data to chart"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/monthly/chart [get]
func (h *ReportHandler) GetMonthlyChart(c *gin.Context) {
	filter, err := parseEntryFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	png, err := h.reportService.MonthlyChartPNG(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if png == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// ExportEntries handles the CSV export
// @Summary     Export entries
// @Description Semicolon-separated CSV of the filtered entries
// @Tags        reports
// @Produce     text/csv
// @Security    BearerAuth
// @Param       kind query string false "Filter by kind (income/expense)"
// @Param       status query string false "Filter by status (pending/paid)"
// @Param       category_id query string false "Filter by category ID"
// @Param       payee_id query string false "Filter by payee ID"
// @Param       from query string false "Start of effective-date range (YYYY-MM-DD)"
// @Param       to query string false "End of effective-date range (YYYY-MM-DD)"
// @Success     200 {file} csv "Exported entries"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/export [get]
func (h *ReportHandler) ExportEntries(c *gin.Context) {
	filter, err := parseEntryFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.reportService.ExportRows(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write([]string{"date", "kind", "category", "payee", "amount", "status"}); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	for _, row := range rows {
		record := []string{
			row.Date,
			row.Kind,
			row.Category,
			row.Payee,
			formatCents(row.Amount),
			row.Status,
		}
		if err := w.Write(record); err != nil {
			respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
			return
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="entries.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// formatCents renders an int64 cent amount as a decimal string.
// Amounts are stored in cents; decimals exist only at this edge.
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
