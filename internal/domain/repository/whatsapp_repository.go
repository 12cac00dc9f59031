package repository

import (
	"context"

	"voyagebj-service/internal/domain/entity"
)

// WhatsappRepository defines the interface for WhatsApp operations
type WhatsappRepository interface {
	SendPayload(ctx context.Context, payload *entity.Payload) (string, error)
}

// MailRepository sends a payload as an email
type MailRepository interface {
	SendMail(ctx context.Context, payload *entity.Payload) (string, error)
}
