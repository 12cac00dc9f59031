package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voyagebj-service/internal/domain/entity"
	"voyagebj-service/internal/domain/repository"
	"voyagebj-service/pkg/logger"
	"voyagebj-service/pkg/metrics"
	"voyagebj-service/pkg/utils"

	"github.com/google/uuid"
)

// TravelerInfo is the traveler identity copied into a reservation
type TravelerInfo struct {
	ID    string `json:"clientId" validate:"required"`
	Name  string `json:"clientName" validate:"required"`
	Email string `json:"clientEmail" validate:"omitempty,email"`
	Phone string `json:"clientPhone" validate:"required"`
}

func (t TravelerInfo) trimmed() TravelerInfo {
	return TravelerInfo{
		ID:    strings.TrimSpace(t.ID),
		Name:  strings.TrimSpace(t.Name),
		Email: strings.TrimSpace(t.Email),
		Phone: strings.TrimSpace(t.Phone),
	}
}

// ReservationHook is called after a reservation changed. Hooks must not fail the caller.
type ReservationHook func(ctx context.Context, reservation entity.Reservation)

// BookingService turns a route and a traveler into a reservation
type BookingService struct {
	reservations repository.ReservationRepository
	logger       logger.Logger
	metrics      *metrics.Metrics
	hooks        []ReservationHook

	now   func() time.Time
	newID func() string
}

// NewBookingService creates a new booking service
func NewBookingService(
	reservations repository.ReservationRepository,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *BookingService {
	return &BookingService{
		reservations: reservations,
		logger:       logger,
		metrics:      metrics,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// OnBooked registers a hook run after every successful booking
func (s *BookingService) OnBooked(hook ReservationHook) {
	s.hooks = append(s.hooks, hook)
}

// Book validates the request against the route schedule, prices the seat and
// stores a PENDING reservation. date is a DATE_LAYOUT calendar date and
// departureIndex selects one of the route's departure hours.
func (s *BookingService) Book(
	ctx context.Context,
	route entity.Station,
	traveler TravelerInfo,
	date string,
	departureIndex int,
	class entity.TicketClass,
) (*entity.Reservation, error) {
	traveler = traveler.trimmed()
	if err := validateBooking(route, traveler, class); err != nil {
		return nil, err
	}

	day, err := s.CheckDate(route, date)
	if err != nil {
		return nil, err
	}

	reservation := entity.Reservation{
		ID:            s.newID(),
		StationID:     route.ID,
		CompanyID:     route.CompanyID,
		ClientID:      traveler.ID,
		ClientName:    traveler.Name,
		ClientEmail:   traveler.Email,
		ClientPhone:   traveler.Phone,
		RouteSummary:  fmt.Sprintf("%s vers %s", route.PointA, route.PointB),
		DepartureTime: departureTime(route, departureIndex),
		DepartureDate: strings.TrimSpace(date),
		PricePaid:     Quote(route, class),
		TicketClass:   class,
		Status:        entity.ReservationPending,
		CreatedAt:     s.now().UTC(),
	}

	if err := s.reservations.Create(ctx, reservation); err != nil {
		if s.metrics != nil {
			s.metrics.ErrorsCount.WithLabelValues("book").Inc()
		}
		return nil, fmt.Errorf("failed to save reservation: %w", err)
	}

	s.logger.Info("Reservation booked",
		"reservationId", reservation.ID,
		"stationId", route.ID,
		"clientId", traveler.ID,
		"day", day,
		"class", class,
		"price", reservation.PricePaid)
	if s.metrics != nil {
		s.metrics.ReservationsBooked.WithLabelValues(string(class)).Inc()
	}

	for _, hook := range s.hooks {
		hook(ctx, reservation)
	}

	return &reservation, nil
}

// CheckDate returns the day code of date, or a ScheduleMismatchError when the
// route does not run that day
func (s *BookingService) CheckDate(route entity.Station, date string) (entity.DayCode, error) {
	t, err := utils.ParseDate(date)
	if err != nil {
		return "", entity.NewValidationError("departureDate", "expected YYYY-MM-DD")
	}

	day := utils.DayCodeOf(t)
	if !route.RunsOn(day) {
		if s.metrics != nil {
			s.metrics.ScheduleMismatches.Inc()
		}
		allowed := make([]entity.DayCode, len(route.WorkDays))
		copy(allowed, route.WorkDays)
		return day, &entity.ScheduleMismatchError{Day: day, Allowed: allowed}
	}
	return day, nil
}

// Quote returns the price of a seat of class on route. A premium seat on a
// route without a premium fare costs the standard price times PREMIUM_MULTIPLIER.
func Quote(route entity.Station, class entity.TicketClass) float64 {
	if class == entity.ClassPremium {
		if route.PricePremium > 0 {
			return route.PricePremium
		}
		return route.Price * utils.PREMIUM_MULTIPLIER
	}
	return route.Price
}

func departureTime(route entity.Station, index int) string {
	if index >= 0 && index < len(route.DepartureHours) {
		if hour := strings.TrimSpace(route.DepartureHours[index]); hour != "" {
			return hour
		}
	}
	return utils.DEFAULT_DEPARTURE
}

func validateBooking(route entity.Station, traveler TravelerInfo, class entity.TicketClass) error {
	switch {
	case !route.IsRoute():
		return entity.NewValidationError("stationId", "reservations are made on routes")
	case route.ID == "":
		return entity.NewValidationError("stationId", "required")
	case route.CompanyID == "":
		return entity.NewValidationError("companyId", "required")
	}
	if err := validateStruct(traveler); err != nil {
		return err
	}
	return validateVar("ticketClass", string(class), "oneof=STANDARD PREMIUM")
}
