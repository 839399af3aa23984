package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "atelier/internal/errors"
	"atelier/internal/models"
	"atelier/internal/services"
)

// --- mock chat service ---

type mockChatService struct {
	listPartnersFn func(userID string) ([]services.ChatPartner, error)
	conversationFn func(userID, withID string) ([]models.ChatMessage, error)
	sendMessageFn  func(senderID, recipientID, body string) (*models.ChatMessage, error)
	markReadFn     func(userID, messageID string) error
}

func (m *mockChatService) ListPartners(userID string) ([]services.ChatPartner, error) {
	if m.listPartnersFn != nil {
		return m.listPartnersFn(userID)
	}
	return nil, nil
}

func (m *mockChatService) Conversation(userID, withID string) ([]models.ChatMessage, error) {
	if m.conversationFn != nil {
		return m.conversationFn(userID, withID)
	}
	return nil, nil
}

func (m *mockChatService) SendMessage(senderID, recipientID, body string) (*models.ChatMessage, error) {
	if m.sendMessageFn != nil {
		return m.sendMessageFn(senderID, recipientID, body)
	}
	return &models.ChatMessage{}, nil
}

func (m *mockChatService) MarkRead(userID, messageID string) error {
	if m.markReadFn != nil {
		return m.markReadFn(userID, messageID)
	}
	return nil
}

var _ services.ChatServicer = (*mockChatService)(nil)

func setupChatRouter(handler *ChatHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUser(testUserID, "user@test.com"))
	auth.GET("/chat/partners", handler.ListPartners)
	auth.GET("/chat/conversations/:id", handler.GetConversation)
	auth.POST("/chat/messages", handler.SendMessage)
	auth.PATCH("/chat/messages/:id/read", handler.MarkMessageRead)
	return r
}

func TestChatHandler_ListPartners(t *testing.T) {
	t.Run("returns partners with unread counts", func(t *testing.T) {
		chatSvc := &mockChatService{
			listPartnersFn: func(userID string) ([]services.ChatPartner, error) {
				if userID != testUserID {
					t.Errorf("expected caller ID, got %s", userID)
				}
				return []services.ChatPartner{
					{UserID: testOtherID, Name: "Ana", UnreadCount: 2},
				}, nil
			},
		}
		handler := NewChatHandler(chatSvc)
		r := setupChatRouter(handler)

		rec := doRequest(r, "GET", "/chat/partners", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		partners := result["partners"].([]interface{})
		if len(partners) != 1 {
			t.Fatalf("expected 1 partner, got %d", len(partners))
		}
		partner := partners[0].(map[string]interface{})
		if partner["unread_count"] != float64(2) {
			t.Errorf("expected unread count 2, got %v", partner["unread_count"])
		}
	})
}

func TestChatHandler_GetConversation(t *testing.T) {
	t.Run("returns 200 with messages", func(t *testing.T) {
		chatSvc := &mockChatService{
			conversationFn: func(_, _ string) ([]models.ChatMessage, error) {
				return []models.ChatMessage{
					{SenderID: testUserID, RecipientID: testOtherID, Body: "oi"},
					{SenderID: testOtherID, RecipientID: testUserID, Body: "hello"},
				}, nil
			},
		}
		handler := NewChatHandler(chatSvc)
		r := setupChatRouter(handler)

		rec := doRequest(r, "GET", "/chat/conversations/"+testOtherID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		messages := result["messages"].([]interface{})
		if len(messages) != 2 {
			t.Errorf("expected 2 messages, got %d", len(messages))
		}
	})

	t.Run("returns 404 when partner does not exist", func(t *testing.T) {
		chatSvc := &mockChatService{
			conversationFn: func(_, _ string) ([]models.ChatMessage, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		handler := NewChatHandler(chatSvc)
		r := setupChatRouter(handler)

		rec := doRequest(r, "GET", "/chat/conversations/"+testOtherID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed partner id", func(t *testing.T) {
		handler := NewChatHandler(&mockChatService{})
		r := setupChatRouter(handler)

		rec := doRequest(r, "GET", "/chat/conversations/nope", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestChatHandler_SendMessage(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		chatSvc := &mockChatService{
			sendMessageFn: func(senderID, recipientID, body string) (*models.ChatMessage, error) {
				msg := &models.ChatMessage{SenderID: senderID, RecipientID: recipientID, Body: body}
				msg.ID = testRecordID
				return msg, nil
			},
		}
		handler := NewChatHandler(chatSvc)
		r := setupChatRouter(handler)

		rec := doRequest(r, "POST", "/chat/messages",
			`{"recipient_id":"`+testOtherID+`","body":"meeting at 3?"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		msg := result["chat_message"].(map[string]interface{})
		if msg["body"] != "meeting at 3?" {
			t.Errorf("unexpected body: %v", msg["body"])
		}
	})

	t.Run("returns 400 on empty body", func(t *testing.T) {
		handler := NewChatHandler(&mockChatService{})
		r := setupChatRouter(handler)

		rec := doRequest(r, "POST", "/chat/messages", `{"recipient_id":"`+testOtherID+`"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestChatHandler_MarkMessageRead(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		handler := NewChatHandler(&mockChatService{})
		r := setupChatRouter(handler)

		rec := doRequest(r, "PATCH", "/chat/messages/"+testRecordID+"/read", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 403 when caller is not the recipient", func(t *testing.T) {
		chatSvc := &mockChatService{
			markReadFn: func(_, _ string) error {
				return apperrors.ErrForbidden
			},
		}
		handler := NewChatHandler(chatSvc)
		r := setupChatRouter(handler)

		rec := doRequest(r, "PATCH", "/chat/messages/"+testRecordID+"/read", "")

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "FORBIDDEN")
	})
}
