package router

import (
	"voyagebj-service/internal/domain/entity"
	"voyagebj-service/internal/usecase"
	"voyagebj-service/pkg/logger"
)

// ChannelRouter routes notification payloads to the channels able to deliver them
type ChannelRouter struct {
	channels []usecase.NotificationChannel
	logger   logger.Logger
}

// NewChannelRouter creates a new channel router
func NewChannelRouter(logger logger.Logger) usecase.ChannelRouter {
	return &ChannelRouter{
		channels: make([]usecase.NotificationChannel, 0),
		logger:   logger,
	}
}

// Register registers a notification channel
func (r *ChannelRouter) Register(channel usecase.NotificationChannel) {
	r.channels = append(r.channels, channel)
	r.logger.Info("Registered notification channel", "channel", channel.Name())
}

// ChannelsFor returns the channels that can send payload, in registration order
func (r *ChannelRouter) ChannelsFor(payload *entity.Payload) []usecase.NotificationChannel {
	var matched []usecase.NotificationChannel
	for _, channel := range r.channels {
		if channel.CanSend(payload) {
			matched = append(matched, channel)
		}
	}
	return matched
}
