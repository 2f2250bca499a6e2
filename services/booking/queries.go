package booking

import (
	"context"
	"errors"

	bookingRepo "dahabiyat/database/repository/booking"
	"dahabiyat/models"
)

// GetBooking fetches one booking. A caller who is neither the owner nor an
// admin gets NOT_FOUND rather than UNAUTHORIZED, so the id space leaks
// nothing about other customers' bookings.
func (s *DefaultReservationService) GetBooking(ctx context.Context, callerID, bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, newError(ReasonNotFound, "booking not found")
		}
		return nil, err
	}
	if b.UserID != callerID && !s.callerIsAdmin(ctx, callerID) {
		return nil, newError(ReasonNotFound, "booking not found")
	}
	return b, nil
}

// ListUserBookings returns the caller's own bookings.
func (s *DefaultReservationService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Bookings.ListByUser(ctx, userID)
}

// ListAllBookings returns every booking; admin only.
func (s *DefaultReservationService) ListAllBookings(ctx context.Context, callerID string) ([]models.Booking, error) {
	if !s.callerIsAdmin(ctx, callerID) {
		return nil, newError(ReasonUnauthorized, "admin role required")
	}
	return s.Bookings.ListAll(ctx)
}
