package entity

import "time"

// TicketClass is the fare tier of a reservation
type TicketClass string

const (
	ClassStandard TicketClass = "STANDARD"
	ClassPremium  TicketClass = "PREMIUM"
)

// Valid reports whether c is a known ticket class
func (c TicketClass) Valid() bool {
	return c == ClassStandard || c == ClassPremium
}

// ReservationStatus is the lifecycle state of a reservation
type ReservationStatus string

// CONFIRMED and CANCELLED are part of the persisted vocabulary but no
// operation produces them yet.
const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationCompleted ReservationStatus = "COMPLETED"
)

// Reservation is an immutable snapshot of a booked seat. Traveler and route
// fields are copied at booking time and never follow later edits.
type Reservation struct {
	ID            string            `json:"id" bson:"id"`
	StationID     string            `json:"stationId" bson:"stationId"`
	CompanyID     string            `json:"companyId" bson:"companyId"`
	ClientID      string            `json:"clientId" bson:"clientId"`
	ClientName    string            `json:"clientName" bson:"clientName"`
	ClientEmail   string            `json:"clientEmail" bson:"clientEmail"`
	ClientPhone   string            `json:"clientPhone" bson:"clientPhone"`
	RouteSummary  string            `json:"routeSummary" bson:"routeSummary"`
	DepartureTime string            `json:"departureTime" bson:"departureTime"`
	DepartureDate string            `json:"departureDate" bson:"departureDate"`
	PricePaid     float64           `json:"pricePaid" bson:"pricePaid"`
	TicketClass   TicketClass       `json:"ticketClass" bson:"ticketClass"`
	Status        ReservationStatus `json:"status" bson:"status"`
	CreatedAt     time.Time         `json:"createdAt" bson:"createdAt"`
}
