package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "atelier/internal/errors"
	"atelier/internal/services"
)

// ContactHandler handles the public contact form
type ContactHandler struct {
	contactService services.ContactServicer
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService services.ContactServicer) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest represents the public contact form payload
type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Subject string `json:"subject" binding:"max=255"`
	Message string `json:"message" binding:"required,max=5000"`
}

// SendContact handles a contact form submission
// @Summary     Send contact message
// @Description Forward a website contact form submission to the studio inbox
// @Tags        contact
// @Accept      json
// @Produce     json
// @Param       request body ContactRequest true "Contact details"
// @Success     200 {object} MessageResponse "Message sent"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Mail delivery failed"
// @Router      /contact [post]
func (h *ContactHandler) SendContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.contactService.SendContactMail(req.Name, req.Email, req.Subject, req.Message); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully"})
}
