package entity

// PayloadType defines why a notification is sent
type PayloadType string

const (
	ReservationBooked    PayloadType = "reservation_booked"
	ReservationFulfilled PayloadType = "reservation_fulfilled"
)

// Payload is an outbound message about a reservation
type Payload struct {
	Type          PayloadType `json:"type"`
	ReservationID string      `json:"reservationId"`
	Phone         string      `json:"phone"`
	Email         string      `json:"email,omitempty"`
	Subject       string      `json:"subject,omitempty"`
	Text          string      `json:"text"`
}
