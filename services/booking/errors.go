package booking

import (
	"errors"
	"fmt"

	"dahabiyat/models"
)

// ReasonCode classifies every failure the reservation engine can produce.
// Callers render these directly; there is no unrecoverable category.
type ReasonCode string

const (
	ReasonInvalidDatePast        ReasonCode = "INVALID_DATE_PAST"
	ReasonInvalidDateOrder       ReasonCode = "INVALID_DATE_ORDER"
	ReasonItemNotFound           ReasonCode = "ITEM_NOT_FOUND"
	ReasonItemInactive           ReasonCode = "ITEM_INACTIVE"
	ReasonCapacityExceeded       ReasonCode = "CAPACITY_EXCEEDED"
	ReasonDurationMismatch       ReasonCode = "DURATION_MISMATCH"
	ReasonDatesUnavailable       ReasonCode = "DATES_UNAVAILABLE"
	ReasonDatesBlocked           ReasonCode = "DATES_BLOCKED"
	ReasonValidationError        ReasonCode = "VALIDATION_ERROR"
	ReasonUnauthorized           ReasonCode = "UNAUTHORIZED"
	ReasonInvalidStateTransition ReasonCode = "INVALID_STATE_TRANSITION"
	ReasonNotFound               ReasonCode = "NOT_FOUND"
)

// Error is the structured failure type of the engine. Fields carries
// per-field messages for VALIDATION_ERROR; Conflicts carries the bookings
// that collided for DATES_UNAVAILABLE.
type Error struct {
	Code      ReasonCode        `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	Conflicts []models.Booking  `json:"conflicts,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code ReasonCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

func newValidationError(fields map[string]string) *Error {
	return &Error{
		Code:    ReasonValidationError,
		Message: "booking request failed validation",
		Fields:  fields,
	}
}

// CodeOf extracts the reason code from err, or "" for plain errors.
func CodeOf(err error) ReasonCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
