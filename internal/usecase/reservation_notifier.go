package usecase

import (
	"context"
	"time"

	"voyagebj-service/internal/domain/entity"
	"voyagebj-service/pkg/logger"
	"voyagebj-service/pkg/metrics"
	"voyagebj-service/templates"
)

// ReservationNotifier tells the traveler about their reservation over every
// channel the router offers. Delivery is best effort: failures are logged and counted.
type ReservationNotifier struct {
	router  ChannelRouter
	logger  logger.Logger
	metrics *metrics.Metrics
	timeout time.Duration
}

// NewReservationNotifier creates a notifier sending through router
func NewReservationNotifier(router ChannelRouter, logger logger.Logger, metrics *metrics.Metrics) *ReservationNotifier {
	return &ReservationNotifier{
		router:  router,
		logger:  logger,
		metrics: metrics,
		timeout: 30 * time.Second,
	}
}

// Booked is a ReservationHook for new reservations
func (n *ReservationNotifier) Booked(ctx context.Context, reservation entity.Reservation) {
	n.notify(ctx, entity.ReservationBooked, reservation)
}

// Completed is a ReservationHook for completed reservations
func (n *ReservationNotifier) Completed(ctx context.Context, reservation entity.Reservation) {
	n.notify(ctx, entity.ReservationFulfilled, reservation)
}

func (n *ReservationNotifier) notify(ctx context.Context, kind entity.PayloadType, reservation entity.Reservation) {
	payload := &entity.Payload{
		Type:          kind,
		ReservationID: reservation.ID,
		Phone:         reservation.ClientPhone,
		Email:         reservation.ClientEmail,
		Subject:       templates.ReservationSubject(kind, reservation),
	}

	channels := n.router.ChannelsFor(payload)
	if len(channels) == 0 {
		n.logger.Debug("No channel for notification", "reservationId", reservation.ID, "type", kind)
		return
	}

	text, err := templates.ReservationText(kind, reservation)
	if err != nil {
		n.logger.Error("Failed to render notification", "reservationId", reservation.ID, "error", err)
		n.count("render", "failed")
		return
	}
	payload.Text = text

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	for _, channel := range channels {
		messageID, err := channel.Send(ctx, payload)
		if err != nil {
			n.logger.Error("Failed to send notification",
				"channel", channel.Name(),
				"reservationId", reservation.ID,
				"error", err)
			n.count(channel.Name(), "failed")
			continue
		}
		n.logger.Info("Notification sent",
			"channel", channel.Name(),
			"reservationId", reservation.ID,
			"messageId", messageID)
		n.count(channel.Name(), "sent")
	}
}

func (n *ReservationNotifier) count(channel, result string) {
	if n.metrics != nil {
		n.metrics.NotificationsSent.WithLabelValues(channel, result).Inc()
	}
}
