package usecase

// Services groups the operations offered to a UI or transport layer
type Services struct {
	Auth     *AuthService
	Booking  *BookingService
	Status   *StatusWorkflow
	Network  *NetworkService
	Catalog  *CatalogService
	Notifier *ReservationNotifier
}
