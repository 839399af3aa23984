package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "atelier/internal/errors"
	"atelier/internal/services"
)

// --- mock contact service ---

type mockContactService struct {
	sendContactMailFn func(name, email, subject, message string) error
}

func (m *mockContactService) SendContactMail(name, email, subject, message string) error {
	if m.sendContactMailFn != nil {
		return m.sendContactMailFn(name, email, subject, message)
	}
	return nil
}

var _ services.ContactServicer = (*mockContactService)(nil)

func setupContactRouter(handler *ContactHandler) *gin.Engine {
	r := gin.New()
	r.POST("/contact", handler.SendContact)
	return r
}

func TestContactHandler_SendContact(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var sentName, sentSubject string
		contactSvc := &mockContactService{
			sendContactMailFn: func(name, _, subject, _ string) error {
				sentName = name
				sentSubject = subject
				return nil
			},
		}
		handler := NewContactHandler(contactSvc)
		r := setupContactRouter(handler)

		rec := doRequest(r, "POST", "/contact",
			`{"name":"Maria","email":"maria@example.com","subject":"Quote","message":"I need a logo."}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if sentName != "Maria" || sentSubject != "Quote" {
			t.Errorf("unexpected forwarded values: %s / %s", sentName, sentSubject)
		}
	})

	t.Run("returns 400 on missing message", func(t *testing.T) {
		handler := NewContactHandler(&mockContactService{})
		r := setupContactRouter(handler)

		rec := doRequest(r, "POST", "/contact", `{"name":"Maria","email":"maria@example.com"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on invalid email", func(t *testing.T) {
		handler := NewContactHandler(&mockContactService{})
		r := setupContactRouter(handler)

		rec := doRequest(r, "POST", "/contact", `{"name":"Maria","email":"nope","message":"hi"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("propagates delivery failures", func(t *testing.T) {
		contactSvc := &mockContactService{
			sendContactMailFn: func(_, _, _, _ string) error {
				return apperrors.ErrMailDelivery
			},
		}
		handler := NewContactHandler(contactSvc)
		r := setupContactRouter(handler)

		rec := doRequest(r, "POST", "/contact",
			`{"name":"Maria","email":"maria@example.com","message":"hi"}`)

		if rec.Code != apperrors.ErrMailDelivery.StatusCode {
			t.Fatalf("expected %d, got %d", apperrors.ErrMailDelivery.StatusCode, rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "MAIL_DELIVERY_FAILED")
	})
}
