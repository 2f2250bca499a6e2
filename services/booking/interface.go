package booking

import (
	"context"

	blockedRepo "dahabiyat/database/repository/blocked"
	bookingRepo "dahabiyat/database/repository/booking"
	catalogRepo "dahabiyat/database/repository/catalog"
	userRepo "dahabiyat/database/repository/user"
	"dahabiyat/models"
	"dahabiyat/services/notification"
)

// AvailabilityService answers "can this stay be booked, and for how much".
// All operations are pure reads and safe to call at any concurrency.
type AvailabilityService interface {
	CheckAvailability(ctx context.Context, req AvailabilityRequest) (*AvailabilityResult, error)
	FindAlternatives(ctx context.Context, req AlternativeSearchRequest) ([]AlternativeOption, error)
}

// ReservationService owns booking creation and the booking lifecycle. It is
// the only mutation path touching the date-range exclusivity invariant.
type ReservationService interface {
	CreateBooking(ctx context.Context, userID string, req CreateBookingRequest) (*models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, next models.BookingStatus) (*models.Booking, error)
	CancelBooking(ctx context.Context, callerID, bookingID string) (*models.Booking, error)
	GetBooking(ctx context.Context, callerID, bookingID string) (*models.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	ListAllBookings(ctx context.Context, callerID string) ([]models.Booking, error)
}

// DefaultAvailabilityEngine implements AvailabilityService against the
// catalogue, booking, and availability-block stores.
type DefaultAvailabilityEngine struct {
	Catalog  catalogRepo.CatalogRepository
	Bookings bookingRepo.BookingRepository
	Blocked  blockedRepo.BlockedRepository
}

// DefaultReservationService implements ReservationService.
type DefaultReservationService struct {
	Engine   *DefaultAvailabilityEngine
	Bookings bookingRepo.BookingRepository
	Users    userRepo.UserRepository
	Notifier notification.NotificationService
}
