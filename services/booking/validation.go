package booking

import (
	"fmt"

	"dahabiyat/models"
)

// CreateBookingRequest mirrors the booking data model plus raw guest entries.
type CreateBookingRequest struct {
	Kind           models.ItemKind      `json:"kind"`
	ItemID         string               `json:"itemId"`
	Range          models.DateRange     `json:"range"`
	PartySize      int                  `json:"partySize"`
	SpecialRequest string               `json:"specialRequest,omitempty"`
	Guests         []models.GuestDetail `json:"guests,omitempty"`
}

// validateCreateBooking performs schema-level validation: required fields and
// enum membership. Date ordering and calendar checks belong to the
// availability checker, which reports them with their own reason codes.
func validateCreateBooking(userID string, req CreateBookingRequest) *Error {
	fields := make(map[string]string)

	if userID == "" {
		fields["userId"] = "user id is required"
	}
	if !req.Kind.Valid() {
		fields["kind"] = fmt.Sprintf("kind must be %s or %s", models.ItemKindVessel, models.ItemKindPackage)
	}
	if req.ItemID == "" {
		fields["itemId"] = "item id is required"
	}
	if req.Range.Start.IsZero() {
		fields["range.start"] = "start date is required"
	}
	if req.Range.End.IsZero() {
		fields["range.end"] = "end date is required"
	}
	if req.PartySize < 1 {
		fields["partySize"] = "party size must be at least 1"
	}
	for i, g := range req.Guests {
		if g.FirstName == "" {
			fields[fmt.Sprintf("guests[%d].firstName", i)] = "first name is required"
		}
		if g.LastName == "" {
			fields[fmt.Sprintf("guests[%d].lastName", i)] = "last name is required"
		}
	}

	if len(fields) > 0 {
		return newValidationError(fields)
	}
	return nil
}
