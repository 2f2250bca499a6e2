package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	userRepo "dahabiyat/database/repository/user"
	"dahabiyat/models"
	"dahabiyat/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production dispatcher: it enqueues one
// email task per event and writes in-app notification records for the
// booking owner and every admin user.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
	Queue *asynq.Client
}

// DispatchBookingEvent fans the event out. Each failure is logged and the
// remaining deliveries still run; a committed booking is never rolled back
// or failed because of notification trouble.
func (s *DefaultNotificationService) DispatchBookingEvent(ctx context.Context, event models.LifecycleEvent) error {
	logger := utils.GetLogger()
	subject, body := renderBookingEmail(event)

	if s.Queue != nil {
		payload, err := json.Marshal(models.EmailTaskPayload{
			Event:     event.Kind,
			BookingID: event.BookingID,
			Reference: event.Booking.Reference,
			UserID:    event.Booking.UserID,
			Subject:   subject,
			Body:      body,
		})
		if err != nil {
			logger.Error("failed to marshal booking email payload",
				zap.String("bookingID", event.BookingID), zap.Error(err))
		} else if _, err := s.Queue.EnqueueContext(ctx, asynq.NewTask(TypeBookingEmail, payload)); err != nil {
			logger.Error("failed to enqueue booking email",
				zap.String("bookingID", event.BookingID), zap.Error(err))
		}
	}

	ownerNote := models.Notification{
		ID:      uuid.New().String(),
		Type:    string(event.Kind),
		Title:   subject,
		Message: body,
		Data: map[string]any{
			"bookingId": event.BookingID,
			"reference": event.Booking.Reference,
			"status":    event.Booking.Status,
		},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Users.PushNotification(ctx, event.Booking.UserID, ownerNote); err != nil {
		logger.Error("failed to write customer notification",
			zap.String("userID", event.Booking.UserID), zap.Error(err))
	}

	s.notifyAdmins(ctx, event)
	return nil
}

func (s *DefaultNotificationService) notifyAdmins(ctx context.Context, event models.LifecycleEvent) {
	logger := utils.GetLogger()
	admins, err := s.Users.ListAdmins(ctx)
	if err != nil {
		logger.Error("failed to list admins for notification fan-out", zap.Error(err))
		return
	}
	for _, admin := range admins {
		note := models.Notification{
			ID:      uuid.New().String(),
			Type:    string(event.Kind),
			Title:   fmt.Sprintf("Booking %s: %s", event.Booking.Reference, event.Kind),
			Message: adminSummary(event),
			Data: map[string]any{
				"bookingId": event.BookingID,
				"reference": event.Booking.Reference,
				"userId":    event.Booking.UserID,
				"status":    event.Booking.Status,
			},
			CreatedAt: time.Now().UTC(),
		}
		if err := s.Users.PushNotification(ctx, admin.ID, note); err != nil {
			logger.Error("failed to write admin notification",
				zap.String("adminID", admin.ID), zap.Error(err))
		}
	}
}

func renderBookingEmail(event models.LifecycleEvent) (subject, body string) {
	b := event.Booking
	stay := fmt.Sprintf("%s, %s to %s, %d guest(s)",
		b.ItemName,
		b.StartDate.Format(models.DateLayout),
		b.EndDate.Format(models.DateLayout),
		b.PartySize,
	)

	switch event.Kind {
	case models.EventBookingCreated:
		subject = fmt.Sprintf("Booking received - %s", b.Reference)
		body = fmt.Sprintf("We have received your booking %s (%s). Total: %.2f. We will confirm it shortly.",
			b.Reference, stay, b.TotalPrice)
	case models.EventBookingCancelled:
		subject = fmt.Sprintf("Booking cancelled - %s", b.Reference)
		body = fmt.Sprintf("Your booking %s (%s) has been cancelled.", b.Reference, stay)
	default:
		subject = fmt.Sprintf("Booking update - %s", b.Reference)
		body = fmt.Sprintf("Your booking %s (%s) is now %s.", b.Reference, stay, b.Status)
	}
	return subject, body
}

func adminSummary(event models.LifecycleEvent) string {
	b := event.Booking
	return fmt.Sprintf("%s %s for %s: %s to %s, %d guest(s), %.2f, status %s",
		event.Kind, b.Reference, b.ItemName,
		b.StartDate.Format(models.DateLayout), b.EndDate.Format(models.DateLayout),
		b.PartySize, b.TotalPrice, b.Status)
}
