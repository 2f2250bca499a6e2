package models

import "time"

// LifecycleEventKind names the booking events worth notifying about.
type LifecycleEventKind string

const (
	EventBookingCreated   LifecycleEventKind = "BOOKING_CREATED"
	EventStatusChanged    LifecycleEventKind = "STATUS_CHANGED"
	EventBookingCancelled LifecycleEventKind = "BOOKING_CANCELLED"
)

// LifecycleEvent is the transient payload handed to the notification
// dispatcher. It carries a snapshot of the booking at the moment of the
// event; the engine never persists it.
type LifecycleEvent struct {
	Kind       LifecycleEventKind `json:"kind"`
	BookingID  string             `json:"bookingId"`
	Booking    Booking            `json:"booking"`
	OccurredAt time.Time          `json:"occurredAt"`
}

// Notification is an in-app notification record embedded on a user document.
type Notification struct {
	ID        string         `bson:"id" json:"id"`
	Type      string         `bson:"type" json:"type"`
	Title     string         `bson:"title" json:"title"`
	Message   string         `bson:"message" json:"message"`
	Data      map[string]any `bson:"data,omitempty" json:"data,omitempty"`
	Read      bool           `bson:"read" json:"read"`
	CreatedAt time.Time      `bson:"created_at" json:"createdAt"`
}

// EmailTaskPayload is the asynq task body for outbound booking emails.
type EmailTaskPayload struct {
	Event     LifecycleEventKind `json:"event"`
	BookingID string             `json:"bookingId"`
	Reference string             `json:"reference"`
	UserID    string             `json:"userId"`
	Subject   string             `json:"subject"`
	Body      string             `json:"body"`
}
