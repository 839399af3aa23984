package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "atelier/internal/errors"
	"atelier/internal/models"
	"atelier/internal/pagination"
	"atelier/internal/services"
)

// LedgerHandler handles ledger entry requests
type LedgerHandler struct {
	ledgerService services.LedgerServicer
	auditService  services.AuditServicer
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(ledgerService services.LedgerServicer, auditService services.AuditServicer) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService, auditService: auditService}
}

// EntryRequest represents the request payload for creating or updating a ledger entry
type EntryRequest struct {
	Kind        models.EntryKind   `json:"kind" binding:"required,entry_kind"`
	Amount      int64              `json:"amount" binding:"required,gt=0"`
	DueDate     time.Time          `json:"due_date" binding:"required"`
	CategoryID  *string            `json:"category_id" binding:"omitempty,uuid"`
	PayeeID     *string            `json:"payee_id" binding:"omitempty,uuid"`
	PayeeKind   *models.PayeeKind  `json:"payee_kind" binding:"omitempty,payee_kind"`
	Description string             `json:"description" binding:"max=500"`
	Status      models.EntryStatus `json:"status" binding:"omitempty,entry_status"`
}

func (r *EntryRequest) toModel() *models.LedgerEntry {
	return &models.LedgerEntry{
		Kind:        r.Kind,
		Amount:      r.Amount,
		DueDate:     r.DueDate,
		CategoryID:  r.CategoryID,
		PayeeID:     r.PayeeID,
		PayeeKind:   r.PayeeKind,
		Description: r.Description,
		Status:      r.Status,
	}
}

// EntryStatusRequest represents the request payload for marking an entry paid or pending
type EntryStatusRequest struct {
	Status models.EntryStatus `json:"status" binding:"required,entry_status"`
}

// CreateEntry handles the creation of a new ledger entry
// @Summary     Create a ledger entry
// @Description Record a new income or expense entry
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body EntryRequest true "Entry details"
// @Success     201 {object} models.LedgerEntry "Entry created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /entries [post]
func (h *LedgerHandler) CreateEntry(c *gin.Context) {
	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	entry, err := h.ledgerService.CreateEntry(req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	actorID, actorName := auditActor(c)
	h.auditService.Log(actorID, actorName, "create", "entry", entry.ID, map[string]any{
		"kind":   entry.Kind,
		"amount": entry.Amount,
	})

	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// ListEntries handles listing ledger entries with filters
// @Summary     List ledger entries
// @Description List ledger entries with optional kind/status/category/payee/date filters
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       kind query string false "Filter by kind (income/expense)"
// @Param       status query string false "Filter by status (pending/paid)"
// @Param       category_id query string false "Filter by category ID"
// @Param       payee_id query string false "Filter by payee ID"
// @Param       search query string false "Filter by payee name (substring match)"
// @Param       from query string false "Start of effective-date range (YYYY-MM-DD)"
// @Param       to query string false "End of effective-date range (YYYY-MM-DD)"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.LedgerEntry] "Paginated entries"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /entries [get]
func (h *LedgerHandler) ListEntries(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseEntryFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.ledgerService.ListEntries(filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetEntry handles retrieving a single ledger entry
// @Summary     Get entry by ID
// @Description Get a ledger entry by ID
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Entry ID"
// @Success     200 {object} models.LedgerEntry "Entry details"
// @Failure     400 {object} ErrorResponse "Invalid entry ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Router      /entries/{id} [get]
func (h *LedgerHandler) GetEntry(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, err := h.ledgerService.GetEntryByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// UpdateEntry handles updating a ledger entry.
// Status and payment date are not touched here; use the status endpoint.
// @Summary     Update entry
// @Description Update a ledger entry's details (status changes go through PATCH /entries/{id}/status)
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Entry ID"
// @Param       request body EntryRequest true "Updated entry details"
// @Success     200 {object} models.LedgerEntry "Updated entry"
// @Failure     400 {object} ErrorResponse "Invalid input or entry ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Router      /entries/{id} [put]
func (h *LedgerHandler) UpdateEntry(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	entry, err := h.ledgerService.UpdateEntry(id, req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	actorID, actorName := auditActor(c)
	h.auditService.Log(actorID, actorName, "update", "entry", entry.ID, nil)

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// SetEntryStatus handles marking an entry paid or pending
// @Summary     Set entry status
// @Description Mark an entry paid (stamps the payment date) or pending (clears it)
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Entry ID"
// @Param       request body EntryStatusRequest true "New status"
// @Success     200 {object} models.LedgerEntry "Updated entry"
// @Failure     400 {object} ErrorResponse "Invalid input or entry ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Router      /entries/{id}/status [patch]
func (h *LedgerHandler) SetEntryStatus(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req EntryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	entry, err := h.ledgerService.SetEntryStatus(id, req.Status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	actorID, actorName := auditActor(c)
	h.auditService.Log(actorID, actorName, "status", "entry", entry.ID, map[string]any{"status": entry.Status})

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// DeleteEntry handles deleting a ledger entry
// @Summary     Delete entry
// @Description Delete a ledger entry by ID
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Entry ID"
// @Success     200 {object} MessageResponse "Entry deleted"
// @Failure     400 {object} ErrorResponse "Invalid entry ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Router      /entries/{id} [delete]
func (h *LedgerHandler) DeleteEntry(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.ledgerService.DeleteEntry(id); err != nil {
		respondWithError(c, err)
		return
	}

	actorID, actorName := auditActor(c)
	h.auditService.Log(actorID, actorName, "delete", "entry", id, nil)

	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted successfully"})
}
