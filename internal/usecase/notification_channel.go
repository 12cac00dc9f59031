package usecase

import (
	"context"

	"voyagebj-service/internal/domain/entity"
	"voyagebj-service/internal/domain/repository"
)

// NotificationChannel delivers a payload over one medium
type NotificationChannel interface {
	// Name labels the channel in logs and metrics
	Name() string

	// CanSend determines if the payload carries what this channel needs
	CanSend(payload *entity.Payload) bool

	// Send delivers the payload and returns the provider message id
	Send(ctx context.Context, payload *entity.Payload) (string, error)
}

// ChannelRouter selects the channels able to deliver a payload
type ChannelRouter interface {
	// Register adds a channel
	Register(channel NotificationChannel)

	// ChannelsFor returns the registered channels that can send payload
	ChannelsFor(payload *entity.Payload) []NotificationChannel
}

type whatsappChannel struct {
	repo repository.WhatsappRepository
}

// NewWhatsappChannel sends payloads to the traveler's phone
func NewWhatsappChannel(repo repository.WhatsappRepository) NotificationChannel {
	return &whatsappChannel{repo: repo}
}

func (c *whatsappChannel) Name() string { return "whatsapp" }

func (c *whatsappChannel) CanSend(payload *entity.Payload) bool {
	return payload.Phone != ""
}

func (c *whatsappChannel) Send(ctx context.Context, payload *entity.Payload) (string, error) {
	return c.repo.SendPayload(ctx, payload)
}

type mailChannel struct {
	repo repository.MailRepository
}

// NewMailChannel sends payloads to the traveler's mailbox
func NewMailChannel(repo repository.MailRepository) NotificationChannel {
	return &mailChannel{repo: repo}
}

func (c *mailChannel) Name() string { return "email" }

func (c *mailChannel) CanSend(payload *entity.Payload) bool {
	return payload.Email != ""
}

func (c *mailChannel) Send(ctx context.Context, payload *entity.Payload) (string, error) {
	return c.repo.SendMail(ctx, payload)
}
