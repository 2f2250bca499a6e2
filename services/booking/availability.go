package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	catalogRepo "dahabiyat/database/repository/catalog"
	"dahabiyat/models"
)

// AvailabilityRequest asks whether one item can host a stay.
type AvailabilityRequest struct {
	Kind      models.ItemKind  `json:"kind"`
	ItemID    string           `json:"itemId"`
	Range     models.DateRange `json:"range"`
	PartySize int              `json:"partySize"`
	// ExcludeBookingID drops one booking from the overlap scan, used when
	// re-checking a booking that is itself being modified.
	ExcludeBookingID string `json:"excludeBookingId,omitempty"`
}

// AvailabilityResult is the structured answer. When Available is false,
// Reason and Message explain why; Conflicts lists the colliding bookings for
// DATES_UNAVAILABLE so the caller can display them.
type AvailabilityResult struct {
	Available  bool             `json:"available"`
	Reason     ReasonCode       `json:"reason,omitempty"`
	Message    string           `json:"message,omitempty"`
	TotalPrice float64          `json:"totalPrice,omitempty"`
	Conflicts  []models.Booking `json:"conflicts,omitempty"`

	// Item is the resolved catalogue entry, populated on success so the
	// reservation path can reuse it inside the same transaction.
	Item models.BookableItem `json:"-"`
}

// Err converts an unavailable result into the engine's typed error.
func (res *AvailabilityResult) Err() *Error {
	if res.Available {
		return nil
	}
	return &Error{Code: res.Reason, Message: res.Message, Conflicts: res.Conflicts}
}

func unavailable(code ReasonCode, message string) *AvailabilityResult {
	return &AvailabilityResult{Available: false, Reason: code, Message: message}
}

// CheckAvailability runs the ordered availability checks; the first failure
// wins. It performs only reads, so repeated calls with no intervening writes
// return identical results.
func (e *DefaultAvailabilityEngine) CheckAvailability(ctx context.Context, req AvailabilityRequest) (*AvailabilityResult, error) {
	today := models.Midnight(time.Now().UTC())
	rng := models.NewDateRange(req.Range.Start, req.Range.End)

	if rng.Start.Before(today) {
		return unavailable(ReasonInvalidDatePast, "start date is in the past"), nil
	}
	if !rng.Start.Before(rng.End) {
		return unavailable(ReasonInvalidDateOrder, "start date must be before end date"), nil
	}

	item, err := e.Catalog.GetBookableItem(ctx, req.Kind, req.ItemID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrItemNotFound) {
			return unavailable(ReasonItemNotFound, fmt.Sprintf("no %s with id %s", req.Kind, req.ItemID)), nil
		}
		return nil, fmt.Errorf("failed to resolve bookable item: %w", err)
	}
	if !item.Active() {
		return unavailable(ReasonItemInactive, fmt.Sprintf("%s is not open for booking", item.ItemName())), nil
	}
	if req.PartySize > item.GuestCapacity() {
		return unavailable(ReasonCapacityExceeded,
			fmt.Sprintf("%s accommodates at most %d guests", item.ItemName(), item.GuestCapacity())), nil
	}
	if pkg, ok := item.(models.Package); ok && rng.Days() != pkg.DurationDays {
		return unavailable(ReasonDurationMismatch,
			fmt.Sprintf("%s runs for exactly %d days", pkg.Name, pkg.DurationDays)), nil
	}

	conflicts, err := e.Bookings.FindOverlapping(ctx, req.Kind, req.ItemID, rng, req.ExcludeBookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for conflicting bookings: %w", err)
	}
	if len(conflicts) > 0 {
		res := unavailable(ReasonDatesUnavailable, "the requested dates are already booked")
		res.Conflicts = conflicts
		return res, nil
	}

	blocks, err := e.Blocked.FindInRange(ctx, req.Kind, req.ItemID, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to scan availability blocks: %w", err)
	}
	if len(blocks) > 0 {
		return unavailable(ReasonDatesBlocked,
			fmt.Sprintf("%s is unavailable on %s", item.ItemName(), blocks[0].Date.Format(models.DateLayout))), nil
	}

	return &AvailabilityResult{
		Available:  true,
		TotalPrice: TotalPrice(item, rng, req.PartySize),
		Item:       item,
	}, nil
}
