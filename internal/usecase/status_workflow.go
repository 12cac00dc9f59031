package usecase

import (
	"context"
	"fmt"

	"voyagebj-service/internal/domain/entity"
	"voyagebj-service/internal/domain/repository"
	"voyagebj-service/pkg/logger"
	"voyagebj-service/pkg/metrics"
)

// StatusWorkflow applies company moderation decisions and reservation fulfilment
type StatusWorkflow struct {
	accounts     repository.AccountRepository
	reservations repository.ReservationRepository
	logger       logger.Logger
	metrics      *metrics.Metrics
	hooks        []ReservationHook
}

// NewStatusWorkflow creates a new status workflow
func NewStatusWorkflow(
	accounts repository.AccountRepository,
	reservations repository.ReservationRepository,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *StatusWorkflow {
	return &StatusWorkflow{
		accounts:     accounts,
		reservations: reservations,
		logger:       logger,
		metrics:      metrics,
	}
}

// OnCompleted registers a hook run after a reservation is completed
func (w *StatusWorkflow) OnCompleted(hook ReservationHook) {
	w.hooks = append(w.hooks, hook)
}

// SetCompanyStatus moves a company to status. Any of the three states may
// follow any other, an administrator can always re-examine a decision.
func (w *StatusWorkflow) SetCompanyStatus(ctx context.Context, companyID string, status entity.CompanyStatus) (*entity.Account, error) {
	if !status.Valid() {
		return nil, entity.NewValidationError("status", fmt.Sprintf("unknown company status %q", status))
	}

	account, err := w.accounts.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !account.IsCompany() {
		return nil, entity.NewValidationError("role", fmt.Sprintf("account %s is not a company", companyID))
	}

	previous := account.Status
	account.Status = status
	if err := w.accounts.Upsert(ctx, *account); err != nil {
		return nil, fmt.Errorf("failed to update company %s: %w", companyID, err)
	}

	w.logger.Info("Company status changed",
		"companyId", companyID,
		"from", previous,
		"to", status)
	if w.metrics != nil {
		w.metrics.CompanyStatusChanges.WithLabelValues(string(status)).Inc()
	}

	return account, nil
}

// Approve lets the company sign in and appear in public listings
func (w *StatusWorkflow) Approve(ctx context.Context, companyID string) (*entity.Account, error) {
	return w.SetCompanyStatus(ctx, companyID, entity.CompanyApproved)
}

// Reject refuses the company registration
func (w *StatusWorkflow) Reject(ctx context.Context, companyID string) (*entity.Account, error) {
	return w.SetCompanyStatus(ctx, companyID, entity.CompanyRejected)
}

// Reexamine puts the company back in the moderation queue
func (w *StatusWorkflow) Reexamine(ctx context.Context, companyID string) (*entity.Account, error) {
	return w.SetCompanyStatus(ctx, companyID, entity.CompanyPending)
}

// CompleteReservation marks a reservation as paid and travelled
func (w *StatusWorkflow) CompleteReservation(ctx context.Context, reservationID string) (*entity.Reservation, error) {
	reservation, err := w.reservations.FindByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if !ValidTransition(ActionComplete, reservation.Status) {
		return nil, fmt.Errorf("cannot complete reservation %s in status %s: %w",
			reservationID, reservation.Status, entity.ErrInvalidTransition)
	}

	reservation.Status = entity.ReservationCompleted
	if err := w.reservations.UpdateOne(ctx, *reservation); err != nil {
		return nil, err
	}

	w.logger.Info("Reservation completed",
		"reservationId", reservationID,
		"companyId", reservation.CompanyID)
	if w.metrics != nil {
		w.metrics.ReservationsCompleted.Inc()
	}

	for _, hook := range w.hooks {
		hook(ctx, *reservation)
	}

	return reservation, nil
}
