package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"voyagebj-service/internal/domain/entity"
	"voyagebj-service/pkg/logger"
	"voyagebj-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type fakeWhatsapp struct {
	payloads []*entity.Payload
	err      error
}

func (f *fakeWhatsapp) SendPayload(ctx context.Context, payload *entity.Payload) (string, error) {
	f.payloads = append(f.payloads, payload)
	return "task", f.err
}

type fakeMail struct {
	payloads []*entity.Payload
	err      error
}

func (f *fakeMail) SendMail(ctx context.Context, payload *entity.Payload) (string, error) {
	f.payloads = append(f.payloads, payload)
	return "msg", f.err
}

type fakeRouter struct {
	channels []NotificationChannel
}

func (r *fakeRouter) Register(channel NotificationChannel) {
	r.channels = append(r.channels, channel)
}

func (r *fakeRouter) ChannelsFor(payload *entity.Payload) []NotificationChannel {
	var matched []NotificationChannel
	for _, c := range r.channels {
		if c.CanSend(payload) {
			matched = append(matched, c)
		}
	}
	return matched
}

func newRouter(wa *fakeWhatsapp, mail *fakeMail) *fakeRouter {
	r := &fakeRouter{}
	if wa != nil {
		r.Register(NewWhatsappChannel(wa))
	}
	if mail != nil {
		r.Register(NewMailChannel(mail))
	}
	return r
}

func bookedReservation() entity.Reservation {
	return entity.Reservation{
		ID:            "res-1",
		ClientName:    "Amina Client",
		ClientPhone:   "+229 97000000",
		ClientEmail:   "amina@mail.com",
		RouteSummary:  "Cotonou vers Parakou",
		DepartureDate: "2024-01-01",
		DepartureTime: "07:00",
		TicketClass:   entity.ClassStandard,
		PricePaid:     5000,
		Status:        entity.ReservationPending,
	}
}

func TestNotifierSendsOnEveryChannel(t *testing.T) {
	wa := &fakeWhatsapp{}
	mail := &fakeMail{}
	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	n := NewReservationNotifier(newRouter(wa, mail), logger.NewNopLogger(), m)

	n.Booked(context.Background(), bookedReservation())

	if len(wa.payloads) != 1 || len(mail.payloads) != 1 {
		t.Fatalf("sent whatsapp=%d email=%d", len(wa.payloads), len(mail.payloads))
	}
	p := wa.payloads[0]
	if p.Type != entity.ReservationBooked || p.ReservationID != "res-1" || p.Phone != "+229 97000000" {
		t.Fatalf("payload=%+v", p)
	}
	if !strings.Contains(p.Text, "5000 FCFA") || !strings.Contains(p.Text, "Cotonou vers Parakou") {
		t.Fatalf("text=%q", p.Text)
	}
	if !strings.Contains(mail.payloads[0].Subject, "Cotonou vers Parakou") {
		t.Fatalf("subject=%q", mail.payloads[0].Subject)
	}
	if v := testutil.ToFloat64(m.NotificationsSent.WithLabelValues("whatsapp", "sent")); v != 1 {
		t.Fatalf("whatsapp sent=%v", v)
	}
}

func TestNotifierCountsFailures(t *testing.T) {
	wa := &fakeWhatsapp{err: errors.New("gateway down")}
	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	n := NewReservationNotifier(newRouter(wa, nil), logger.NewNopLogger(), m)

	n.Completed(context.Background(), bookedReservation())

	if len(wa.payloads) != 1 || wa.payloads[0].Type != entity.ReservationFulfilled {
		t.Fatalf("payloads=%v", wa.payloads)
	}
	if v := testutil.ToFloat64(m.NotificationsSent.WithLabelValues("whatsapp", "failed")); v != 1 {
		t.Fatalf("whatsapp failed=%v", v)
	}
}

func TestNotifierSkipsMissingContacts(t *testing.T) {
	wa := &fakeWhatsapp{}
	mail := &fakeMail{}
	n := NewReservationNotifier(newRouter(wa, mail), logger.NewNopLogger(), nil)

	res := bookedReservation()
	res.ClientPhone = ""
	res.ClientEmail = ""
	n.Booked(context.Background(), res)

	if len(wa.payloads) != 0 || len(mail.payloads) != 0 {
		t.Fatal("notifier sent without a contact")
	}

	// no channel configured at all
	NewReservationNotifier(&fakeRouter{}, logger.NewNopLogger(), nil).Booked(context.Background(), bookedReservation())
}

func TestNotifierAsBookingHook(t *testing.T) {
	env := newTestEnv(t)
	wa := &fakeWhatsapp{}
	n := NewReservationNotifier(newRouter(wa, nil), logger.NewNopLogger(), env.metrics)
	env.booking.OnBooked(n.Booked)
	env.status.OnCompleted(n.Completed)

	res, err := env.booking.Book(context.Background(), cotonouParakou(), amina, "2024-01-01", 0, entity.ClassStandard)
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if _, err := env.status.CompleteReservation(context.Background(), res.ID); err != nil {
		t.Fatalf("CompleteReservation: %v", err)
	}

	if len(wa.payloads) != 2 {
		t.Fatalf("payloads=%d, want 2", len(wa.payloads))
	}
	if wa.payloads[0].Type != entity.ReservationBooked || wa.payloads[1].Type != entity.ReservationFulfilled {
		t.Fatalf("types=(%s, %s)", wa.payloads[0].Type, wa.payloads[1].Type)
	}
}
