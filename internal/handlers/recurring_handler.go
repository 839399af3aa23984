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

// RecurringHandler handles recurring obligation requests
type RecurringHandler struct {
	recurringService services.RecurringServicer
	auditService     services.AuditServicer
}

// NewRecurringHandler creates a new RecurringHandler
func NewRecurringHandler(recurringService services.RecurringServicer, auditService services.AuditServicer) *RecurringHandler {
	return &RecurringHandler{recurringService: recurringService, auditService: auditService}
}

// ObligationRequest represents the request payload for creating or updating a recurring obligation
type ObligationRequest struct {
	Description string                  `json:"description" binding:"required,max=500"`
	Amount      int64                   `json:"amount" binding:"required,gt=0"`
	Kind        models.EntryKind        `json:"kind" binding:"required,entry_kind"`
	CategoryID  string                  `json:"category_id" binding:"required,uuid"`
	PayeeID     *string                 `json:"payee_id" binding:"omitempty,uuid"`
	PayeeKind   *models.PayeeKind       `json:"payee_kind" binding:"omitempty,payee_kind"`
	DueDay      int                     `json:"due_day" binding:"required,due_day"`
	StartDate   time.Time               `json:"start_date" binding:"required"`
	EndDate     *time.Time              `json:"end_date"`
	Status      models.ObligationStatus `json:"status" binding:"omitempty,obligation_status"`
}

func (r *ObligationRequest) toModel() *models.RecurringObligation {
	return &models.RecurringObligation{
		Description: r.Description,
		Amount:      r.Amount,
		Kind:        r.Kind,
		CategoryID:  r.CategoryID,
		PayeeID:     r.PayeeID,
		PayeeKind:   r.PayeeKind,
		DueDay:      r.DueDay,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Status:      r.Status,
	}
}

// CreateObligation handles the creation of a new recurring obligation.
// The obligation is expanded into concrete pending entries on the spot and
// the generated entries are returned alongside it.
// @Summary     Create a recurring obligation
// @Description Create a monthly obligation and expand it into pending ledger entries
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ObligationRequest true "Obligation details"
// @Success     201 {object} models.RecurringObligation "Obligation created with generated entries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Expansion aborted"
// @Router      /recurring [post]
func (h *RecurringHandler) CreateObligation(c *gin.Context) {
	var req ObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	obligation, entries, err := h.recurringService.CreateObligation(req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	actorID, actorName := auditActor(c)
	h.auditService.Log(actorID, actorName, "create", "recurring_obligation", obligation.ID, map[string]any{
		"description":     obligation.Description,
		"entries_created": len(entries),
	})

	c.JSON(http.StatusCreated, gin.H{
		"obligation":      obligation,
		"entries":         entries,
		"entries_created": len(entries),
	})
}

// ListObligations handles listing recurring obligations
// @Summary     List recurring obligations
// @Description List recurring obligations
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.RecurringObligation] "Paginated obligations"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring [get]
func (h *RecurringHandler) ListObligations(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.recurringService.ListObligations(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetObligation handles retrieving a single recurring obligation
// @Summary     Get obligation by ID
// @Description Get a recurring obligation by ID
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Obligation ID"
// @Success     200 {object} models.RecurringObligation "Obligation details"
// @Failure     400 {object} ErrorResponse "Invalid obligation ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Obligation not found"
// @Router      /recurring/{id} [get]
func (h *RecurringHandler) GetObligation(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	obligation, err := h.recurringService.GetObligationByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"obligation": obligation})
}

// UpdateObligation handles updating a recurring obligation.
// Updates never regenerate entries; already-expanded entries are untouched.
// @Summary     Update obligation
// @Description Update a recurring obligation without touching previously generated entries
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Obligation ID"
// @Param       request body ObligationRequest true "Updated obligation details"
// @Success     200 {object} models.RecurringObligation "Updated obligation"
// @Failure     400 {object} ErrorResponse "Invalid input or obligation ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Obligation not found"
// @Router      /recurring/{id} [put]
func (h *RecurringHandler) UpdateObligation(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	obligation, err := h.recurringService.UpdateObligation(id, req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	actorID, actorName := auditActor(c)
	h.auditService.Log(actorID, actorName, "update", "recurring_obligation", obligation.ID, nil)

	c.JSON(http.StatusOK, gin.H{"obligation": obligation})
}

// DeleteObligation handles deleting a recurring obligation.
// Entries generated from it are kept.
// @Summary     Delete obligation
// @Description Delete a recurring obligation; generated entries survive
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Obligation ID"
// @Success     200 {object} MessageResponse "Obligation deleted"
// @Failure     400 {object} ErrorResponse "Invalid obligation ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Obligation not found"
// @Router      /recurring/{id} [delete]
func (h *RecurringHandler) DeleteObligation(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.recurringService.DeleteObligation(id); err != nil {
		respondWithError(c, err)
		return
	}

	actorID, actorName := auditActor(c)
	h.auditService.Log(actorID, actorName, "delete", "recurring_obligation", id, nil)

	c.JSON(http.StatusOK, gin.H{"message": "Obligation deleted successfully"})
}
