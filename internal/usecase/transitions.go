package usecase

import "voyagebj-service/internal/domain/entity"

// Reservation actions
const (
	ActionComplete = "complete"
)

// reservationTransitions lists, per action, the states it may start from
var reservationTransitions = map[string][]entity.ReservationStatus{
	ActionComplete: {entity.ReservationPending, entity.ReservationConfirmed},
}

// ValidTransition reports whether action may be applied to a reservation in fromStatus
func ValidTransition(action string, fromStatus entity.ReservationStatus) bool {
	allowed, ok := reservationTransitions[action]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == fromStatus {
			return true
		}
	}
	return false
}
