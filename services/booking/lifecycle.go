package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "dahabiyat/database/repository/booking"
	"dahabiyat/models"
)

// UpdateStatus moves a booking along the state machine (PENDING -> CONFIRMED,
// CONFIRMED -> COMPLETED). Cancellation has its own entry point with an
// authorization guard. Terminal states admit no further transition.
func (s *DefaultReservationService) UpdateStatus(ctx context.Context, bookingID string, next models.BookingStatus) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, newError(ReasonNotFound, "booking not found")
		}
		return nil, err
	}

	if next == models.StatusCancelled {
		return nil, newError(ReasonInvalidStateTransition, "use the cancellation operation to cancel a booking")
	}
	if !b.Status.CanTransitionTo(next) {
		return nil, newError(ReasonInvalidStateTransition,
			fmt.Sprintf("cannot move booking from %s to %s", b.Status, next))
	}

	updated, err := s.Bookings.UpdateStatus(ctx, bookingID, []models.BookingStatus{b.Status}, next)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			return nil, newError(ReasonInvalidStateTransition,
				fmt.Sprintf("booking left status %s before the update applied", b.Status))
		}
		return nil, err
	}

	s.dispatch(models.EventStatusChanged, updated)
	return updated, nil
}

// CancelBooking cancels a PENDING or CONFIRMED booking. Only the booking's
// owner or an admin may cancel.
func (s *DefaultReservationService) CancelBooking(ctx context.Context, callerID, bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, newError(ReasonNotFound, "booking not found")
		}
		return nil, err
	}

	if b.UserID != callerID && !s.callerIsAdmin(ctx, callerID) {
		return nil, newError(ReasonUnauthorized, "only the booking owner or an admin may cancel")
	}
	if b.Status.Terminal() {
		return nil, newError(ReasonInvalidStateTransition,
			fmt.Sprintf("booking is already %s", b.Status))
	}

	updated, err := s.Bookings.UpdateStatus(ctx, bookingID, models.ActiveStatuses, models.StatusCancelled)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			return nil, newError(ReasonInvalidStateTransition, "booking reached a terminal status before cancellation applied")
		}
		return nil, err
	}

	s.dispatch(models.EventBookingCancelled, updated)
	return updated, nil
}

func (s *DefaultReservationService) callerIsAdmin(ctx context.Context, callerID string) bool {
	u, err := s.Users.GetByID(ctx, callerID)
	return err == nil && u.IsAdmin()
}
