package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/mail"
	"strings"

	"voyagebj-service/internal/domain/entity"
	"voyagebj-service/internal/domain/repository"
	"voyagebj-service/pkg/logger"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailService sends reservation emails through the Gmail API
type GmailService struct {
	gmailService *gmail.Service
	sender       string
	logger       logger.Logger
}

// NewGmailService creates a new Gmail service. sender is the Gmail user id
// messages are sent as, "me" for the authorized account.
func NewGmailService(ctx context.Context, tokenSource oauth2.TokenSource, sender string, logger logger.Logger) (repository.MailRepository, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return newGmailService(service, sender, logger), nil
}

func newGmailService(service *gmail.Service, sender string, logger logger.Logger) *GmailService {
	if sender == "" {
		sender = "me"
	}
	return &GmailService{
		gmailService: service,
		sender:       sender,
		logger:       logger,
	}
}

// SendMail sends payload as a plain text email and returns the Gmail message id
func (s *GmailService) SendMail(ctx context.Context, payload *entity.Payload) (string, error) {
	if payload.Email == "" {
		return "", fmt.Errorf("payload %s has no recipient email", payload.ReservationID)
	}

	raw, err := buildMessage(payload)
	if err != nil {
		return "", err
	}
	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}

	sent, err := s.gmailService.Users.Messages.Send(s.sender, msg).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}

	s.logger.Info("Email sent",
		"messageId", sent.Id,
		"reservationId", payload.ReservationID)

	return sent.Id, nil
}

// buildMessage renders an RFC 2822 message with a UTF-8 body. The recipient
// must be a single well-formed address.
func buildMessage(payload *entity.Payload) (string, error) {
	if strings.ContainsAny(payload.Email, "\r\n") {
		return "", fmt.Errorf("invalid recipient for %s: line break in address", payload.ReservationID)
	}
	to, err := mail.ParseAddress(payload.Email)
	if err != nil {
		return "", fmt.Errorf("invalid recipient for %s: %w", payload.ReservationID, err)
	}

	var b strings.Builder
	b.WriteString("To: " + (&mail.Address{Address: to.Address}).String() + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", payload.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	b.WriteString("\r\n")
	b.WriteString(payload.Text)
	return b.String(), nil
}
