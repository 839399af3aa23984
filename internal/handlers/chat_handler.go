package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "atelier/internal/errors"
	"atelier/internal/services"
)

// ChatHandler handles internal chat requests
type ChatHandler struct {
	chatService services.ChatServicer
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatService services.ChatServicer) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// SendMessageRequest represents the request payload for sending a chat message
type SendMessageRequest struct {
	RecipientID string `json:"recipient_id" binding:"required,uuid"`
	Body        string `json:"body" binding:"required,max=5000"`
}

// ListPartners handles listing chat partners
// @Summary     List chat partners
// @Description List users the caller can message, with unread counts
// @Tags        chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.ChatPartner "Chat partners"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /chat/partners [get]
func (h *ChatHandler) ListPartners(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	partners, err := h.chatService.ListPartners(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

// GetConversation handles retrieving the conversation with another user
// @Summary     Get conversation
// @Description Get the full message history between the caller and another user
// @Tags        chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Partner user ID"
// @Success     200 {array} models.ChatMessage "Messages in chronological order"
// @Failure     400 {object} ErrorResponse "Invalid user ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /chat/conversations/{id} [get]
func (h *ChatHandler) GetConversation(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	withID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	messages, err := h.chatService.Conversation(userID, withID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// SendMessage handles sending a chat message
// @Summary     Send message
// @Description Send a direct message to another user
// @Tags        chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SendMessageRequest true "Message details"
// @Success     201 {object} models.ChatMessage "Message sent"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Recipient not found"
// @Router      /chat/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	message, err := h.chatService.SendMessage(userID, req.RecipientID, req.Body)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"chat_message": message})
}

// MarkMessageRead handles marking a message as read
// @Summary     Mark message read
// @Description Mark a received message as read; only the recipient may do this
// @Tags        chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Message ID"
// @Success     200 {object} MessageResponse "Message marked read"
// @Failure     400 {object} ErrorResponse "Invalid message ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not the recipient"
// @Failure     404 {object} ErrorResponse "Message not found"
// @Router      /chat/messages/{id}/read [patch]
func (h *ChatHandler) MarkMessageRead(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	messageID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.chatService.MarkRead(userID, messageID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}
