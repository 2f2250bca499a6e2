package notification

import (
	"context"

	"dahabiyat/models"
)

// TypeBookingEmail is the asynq task type for outbound booking emails.
const TypeBookingEmail = "email:booking_event"

// NotificationService receives booking lifecycle events and fans them out to
// customer emails and in-app notification records. Delivery is best-effort:
// the reservation engine never blocks on, or fails because of, dispatch.
type NotificationService interface {
	DispatchBookingEvent(ctx context.Context, event models.LifecycleEvent) error
}

// EmailSender delivers a rendered email. The concrete transport (SMTP,
// provider API) lives outside this service.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
