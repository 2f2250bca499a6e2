package userRepo

import (
	"context"
	"errors"

	"dahabiyat/models"
)

// ErrUserNotFound is returned when no user matches the given id.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the account lookup the reservation engine needs: caller
// identity for ownership checks, admin fan-out for notifications, and the
// embedded in-app notification feed.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	ListAdmins(ctx context.Context) ([]models.User, error)
	PushNotification(ctx context.Context, userID string, n models.Notification) error
}
