package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

// ActiveStatuses are the states that hold a date range against new bookings.
var ActiveStatuses = []BookingStatus{StatusPending, StatusConfirmed}

// Terminal reports whether no further transition is allowed from s.
func (s BookingStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CanTransitionTo encodes the booking state machine:
// PENDING -> CONFIRMED | CANCELLED, CONFIRMED -> COMPLETED | CANCELLED.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// Booking is a persisted reservation for one vessel or package.
type Booking struct {
	ID             string        `bson:"id" json:"id"`
	Reference      string        `bson:"reference" json:"reference"`
	UserID         string        `bson:"user_id" json:"userId"`
	Kind           ItemKind      `bson:"kind" json:"kind"`
	ItemID         string        `bson:"item_id" json:"itemId"`
	ItemName       string        `bson:"item_name" json:"itemName"`
	StartDate      time.Time     `bson:"start_date" json:"startDate"`
	EndDate        time.Time     `bson:"end_date" json:"endDate"`
	PartySize      int           `bson:"party_size" json:"partySize"`
	TotalPrice     float64       `bson:"total_price" json:"totalPrice"`
	SpecialRequest string        `bson:"special_request,omitempty" json:"specialRequest,omitempty"`
	Status         BookingStatus `bson:"status" json:"status"`
	Guests         []GuestDetail `bson:"guests" json:"guests"`
	CreatedAt      time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time     `bson:"updated_at" json:"updatedAt"`
}

// Range returns the booked interval.
func (b *Booking) Range() DateRange {
	return DateRange{Start: b.StartDate, End: b.EndDate}
}

// Active reports whether the booking still holds its dates.
func (b *Booking) Active() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}
