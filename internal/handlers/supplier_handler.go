package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "atelier/internal/errors"
	"atelier/internal/models"
	"atelier/internal/pagination"
	"atelier/internal/services"
)

// SupplierHandler handles supplier registry requests
type SupplierHandler struct {
	supplierService services.SupplierServicer
	auditService    services.AuditServicer
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(supplierService services.SupplierServicer, auditService services.AuditServicer) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService, auditService: auditService}
}

// SupplierRequest represents the request payload for creating or updating a supplier
type SupplierRequest struct {
	Name       string `json:"name" binding:"required,max=255"`
	Kind       string `json:"kind" binding:"required,max=100"`
	Document   string `json:"document" binding:"max=50"`
	Email      string `json:"email" binding:"omitempty,email,max=255"`
	Phone      string `json:"phone" binding:"max=50"`
	Address    string `json:"address" binding:"max=500"`
	City       string `json:"city" binding:"max=100"`
	State      string `json:"state" binding:"max=100"`
	PostalCode string `json:"postal_code" binding:"max=20"`
	Notes      string `json:"notes" binding:"max=2000"`
}

func (r *SupplierRequest) toModel() *models.Supplier {
	return &models.Supplier{
		Name:       r.Name,
		Kind:       r.Kind,
		Document:   r.Document,
		Email:      r.Email,
		Phone:      r.Phone,
		Address:    r.Address,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Notes:      r.Notes,
	}
}

// CreateSupplier handles the creation of a new supplier
// @Summary     Create a supplier
// @Description Register a new supplier
// @Tags        suppliers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SupplierRequest true "Supplier details"
// @Success     201 {object} models.Supplier "Supplier created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /suppliers [post]
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	supplier, err := h.supplierService.CreateSupplier(req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	actorID, actorName := auditActor(c)
	h.auditService.Log(actorID, actorName, "create", "supplier", supplier.ID, map[string]any{"name": supplier.Name})

	c.JSON(http.StatusCreated, gin.H{"supplier": supplier})
}

// ListSuppliers handles listing suppliers
// @Summary     List suppliers
// @Description List suppliers with optional filters
// @Tags        suppliers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       name query string false "Filter by name substring"
// @Param       kind query string false "Filter by kind"
// @Param       document query string false "Filter by document"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Supplier] "Paginated suppliers"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /suppliers [get]
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := services.SupplierFilter{
		Name:     c.Query("name"),
		Kind:     c.Query("kind"),
		Document: c.Query("document"),
	}

	result, err := h.supplierService.ListSuppliers(filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSupplier handles retrieving a single supplier
// @Summary     Get supplier by ID
// @Description Get a supplier by ID
// @Tags        suppliers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Supplier ID"
// @Success     200 {object} models.Supplier "Supplier details"
// @Failure     400 {object} ErrorResponse "Invalid supplier ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Supplier not found"
// @Router      /suppliers/{id} [get]
func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	supplier, err := h.supplierService.GetSupplierByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"supplier": supplier})
}

// UpdateSupplier handles updating a supplier
// @Summary     Update supplier
// @Description Update an existing supplier
// @Tags        suppliers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Supplier ID"
// @Param       request body SupplierRequest true "Updated supplier details"
// @Success     200 {object} models.Supplier "Updated supplier"
// @Failure     400 {object} ErrorResponse "Invalid input or supplier ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Supplier not found"
// @Router      /suppliers/{id} [put]
func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(id, req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	actorID, actorName := auditActor(c)
	h.auditService.Log(actorID, actorName, "update", "supplier", supplier.ID, nil)

	c.JSON(http.StatusOK, gin.H{"supplier": supplier})
}

// DeleteSupplier handles deleting a supplier
// @Summary     Delete supplier
// @Description Delete a supplier by ID
// @Tags        suppliers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Supplier ID"
// @Success     200 {object} MessageResponse "Supplier deleted"
// @Failure     400 {object} ErrorResponse "Invalid supplier ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Supplier not found"
// @Router      /suppliers/{id} [delete]
func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.supplierService.DeleteSupplier(id); err != nil {
		respondWithError(c, err)
		return
	}

	actorID, actorName := auditActor(c)
	h.auditService.Log(actorID, actorName, "delete", "supplier", id, nil)

	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted successfully"})
}
