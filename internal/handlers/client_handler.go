package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "atelier/internal/errors"
	"atelier/internal/pagination"
	"atelier/internal/services"
)

// ClientHandler handles client registry requests
type ClientHandler struct {
	clientService services.ClientServicer
	auditService  services.AuditServicer
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService services.ClientServicer, auditService services.AuditServicer) *ClientHandler {
	return &ClientHandler{clientService: clientService, auditService: auditService}
}

// ClientRequest represents the request payload for creating or updating a client
type ClientRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"omitempty,email,max=255"`
	Phone   string `json:"phone" binding:"max=50"`
	Company string `json:"company" binding:"max=255"`
	Notes   string `json:"notes" binding:"max=2000"`
	TaxID   string `json:"tax_id" binding:"max=50"`
}

// CreateClient handles the creation of a new client
// @Summary     Create a client
// @Description Register a new client
// @Tags        clients
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ClientRequest true "Client details"
// @Success     201 {object} models.Client "Client created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	client, err := h.clientService.CreateClient(req.Name, req.Email, req.Phone, req.Company, req.Notes, req.TaxID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	actorID, actorName := auditActor(c)
	h.auditService.Log(actorID, actorName, "create", "client", client.ID, map[string]any{"name": client.Name})

	c.JSON(http.StatusCreated, gin.H{"client": client})
}

// ListClients handles listing clients
// @Summary     List clients
// @Description List clients with optional name filter
// @Tags        clients
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       name query string false "Filter by name substring"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Client] "Paginated clients"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.clientService.ListClients(c.Query("name"), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetClient handles retrieving a single client
// @Summary     Get client by ID
// @Description Get a client by ID
// @Tags        clients
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Client ID"
// @Success     200 {object} models.Client "Client details"
// @Failure     400 {object} ErrorResponse "Invalid client ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	client, err := h.clientService.GetClientByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"client": client})
}

// UpdateClient handles updating a client
// @Summary     Update client
// @Description Update an existing client
// @Tags        clients
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Client ID"
// @Param       request body ClientRequest true "Updated client details"
// @Success     200 {object} models.Client "Updated client"
// @Failure     400 {object} ErrorResponse "Invalid input or client ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	client, err := h.clientService.UpdateClient(id, req.Name, req.Email, req.Phone, req.Company, req.Notes, req.TaxID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	actorID, actorName := auditActor(c)
	h.auditService.Log(actorID, actorName, "update", "client", client.ID, nil)

	c.JSON(http.StatusOK, gin.H{"client": client})
}

// DeleteClient handles deleting a client
// @Summary     Delete client
// @Description Delete a client by ID
// @Tags        clients
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Client ID"
// @Success     200 {object} MessageResponse "Client deleted"
// @Failure     400 {object} ErrorResponse "Invalid client ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.clientService.DeleteClient(id); err != nil {
		respondWithError(c, err)
		return
	}

	actorID, actorName := auditActor(c)
	h.auditService.Log(actorID, actorName, "delete", "client", id, nil)

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
