package bookingRepo

import (
	"context"
	"errors"

	"dahabiyat/models"
)

var (
	// ErrNotFound is returned when no booking matches the given id.
	ErrNotFound = errors.New("booking not found")
	// ErrDuplicateReference is returned when an insert collides with the
	// unique booking reference index.
	ErrDuplicateReference = errors.New("booking reference already exists")
	// ErrStatusConflict is returned when a conditional status update matched
	// no document, meaning the booking left the expected state concurrently.
	ErrStatusConflict = errors.New("booking is not in an expected status")
)

// BookingRepository is the persistence contract for bookings and their
// embedded guest manifests.
type BookingRepository interface {
	// CreateAtomically runs recheck and the insert of b inside one
	// transaction, so no concurrently committing booking can be observed
	// half-written. The context handed to recheck is transaction-scoped and
	// must be used for every read performed inside it. The transaction may
	// retry after a write conflict with a racing creation, so recheck must
	// tolerate running more than once.
	CreateAtomically(ctx context.Context, b *models.Booking, recheck func(txCtx context.Context) error) error

	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)

	// FindOverlapping returns bookings on the item in PENDING or CONFIRMED
	// whose [start, end) range intersects rng. excludeID, when non-empty,
	// drops one booking from the scan (re-checks during modification).
	FindOverlapping(ctx context.Context, kind models.ItemKind, itemID string, rng models.DateRange, excludeID string) ([]models.Booking, error)

	// UpdateStatus moves the booking to the target status only if its
	// current status is one of from, returning the updated document.
	UpdateStatus(ctx context.Context, id string, from []models.BookingStatus, to models.BookingStatus) (*models.Booking, error)
}
