package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"atelier/internal/config"
	apperrors "atelier/internal/errors"
	"atelier/internal/logger"
)

// sendMailFunc is swapped in tests to avoid hitting a real SMTP server.
var sendMailFunc = smtp.SendMail

// contactService relays public contact-form submissions to the agency inbox.
type contactService struct {
	cfg *config.Config
}

// NewContactService creates a new ContactServicer.
func NewContactService(cfg *config.Config) ContactServicer {
	return &contactService{cfg: cfg}
}

// SendContactMail forwards a contact-form submission by email. The visitor's
// address goes into Reply-To so the agency can answer directly.
func (s *contactService) SendContactMail(name, email, subject, message string) error {
	if name == "" || email == "" || message == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "name, email and message are required")
	}
	if !strings.Contains(email, "@") {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid email address")
	}
	if subject == "" {
		subject = "Website contact"
	}

	var body strings.Builder
	fmt.Fprintf(&body, "From: %s\r\n", s.cfg.SMTPUser)
	fmt.Fprintf(&body, "To: %s\r\n", s.cfg.ContactInbox)
	fmt.Fprintf(&body, "Reply-To: %s <%s>\r\n", name, email)
	fmt.Fprintf(&body, "Subject: %s\r\n", subject)
	body.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&body, "Name: %s\nEmail: %s\n\n%s\n", name, email, message)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := sendMailFunc(addr, auth, s.cfg.SMTPUser, []string{s.cfg.ContactInbox}, []byte(body.String())); err != nil {
		logger.Get().Errorw("contact mail delivery failed", "inbox", s.cfg.ContactInbox, "error", err)
		return apperrors.Wrap(apperrors.ErrMailDelivery, err)
	}

	logger.Get().Infow("contact mail forwarded", "inbox", s.cfg.ContactInbox)
	return nil
}
