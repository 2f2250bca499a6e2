package booking

import (
	"context"
	"testing"

	"dahabiyat/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateStatusHappyPath(t *testing.T) {
	env := newTestEnv()
	env.addVessel("nile-queen", 8, 450)
	b := activeBooking(env, models.ItemKindVessel, "nile-queen", futureRange(30, 4), models.StatusPending)

	confirmed, err := env.service.UpdateStatus(context.Background(), b.ID, models.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, confirmed.Status)
	env.notifier.waitForEvent(t, models.EventStatusChanged)

	completed, err := env.service.UpdateStatus(context.Background(), b.ID, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, completed.Status)
}

func TestUpdateStatusRejectsInvalidTransitions(t *testing.T) {
	env := newTestEnv()
	env.addVessel("nile-queen", 8, 450)

	pending := activeBooking(env, models.ItemKindVessel, "nile-queen", futureRange(30, 4), models.StatusPending)
	_, err := env.service.UpdateStatus(context.Background(), pending.ID, models.StatusCompleted)
	assert.Equal(t, ReasonInvalidStateTransition, CodeOf(err))

	completed := activeBooking(env, models.ItemKindVessel, "nile-queen", futureRange(40, 4), models.StatusCompleted)
	_, err = env.service.UpdateStatus(context.Background(), completed.ID, models.StatusConfirmed)
	assert.Equal(t, ReasonInvalidStateTransition, CodeOf(err))

	cancelled := activeBooking(env, models.ItemKindVessel, "nile-queen", futureRange(50, 4), models.StatusCancelled)
	_, err = env.service.UpdateStatus(context.Background(), cancelled.ID, models.StatusConfirmed)
	assert.Equal(t, ReasonInvalidStateTransition, CodeOf(err))
}

func TestUpdateStatusRefusesCancellation(t *testing.T) {
	env := newTestEnv()
	env.addVessel("nile-queen", 8, 450)
	b := activeBooking(env, models.ItemKindVessel, "nile-queen", futureRange(30, 4), models.StatusPending)

	_, err := env.service.UpdateStatus(context.Background(), b.ID, models.StatusCancelled)
	assert.Equal(t, ReasonInvalidStateTransition, CodeOf(err))
}

func TestUpdateStatusUnknownBooking(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.UpdateStatus(context.Background(), "missing", models.StatusConfirmed)
	assert.Equal(t, ReasonNotFound, CodeOf(err))
}

func TestCancelBookingByOwner(t *testing.T) {
	env := newTestEnv()
	env.addVessel("nile-queen", 8, 450)
	env.addUser("other-user", "Jane Doe", models.RoleUser)
	b := activeBooking(env, models.ItemKindVessel, "nile-queen", futureRange(30, 4), models.StatusConfirmed)

	cancelled, err := env.service.CancelBooking(context.Background(), "other-user", b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
	env.notifier.waitForEvent(t, models.EventBookingCancelled)

	// The dates are released for the next customer.
	res, err := env.engine.CheckAvailability(context.Background(), AvailabilityRequest{
		Kind: models.ItemKindVessel, ItemID: "nile-queen", Range: futureRange(30, 4), PartySize: 2,
	})
	require.NoError(t, err)
	assert.True(t, res.Available)
}

func TestCancelBookingByAdmin(t *testing.T) {
	env := newTestEnv()
	env.addVessel("nile-queen", 8, 450)
	env.addUser("boss", "Amira Hassan", models.RoleAdmin)
	b := activeBooking(env, models.ItemKindVessel, "nile-queen", futureRange(30, 4), models.StatusPending)

	cancelled, err := env.service.CancelBooking(context.Background(), "boss", b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
}

func TestCancelBookingByStranger(t *testing.T) {
	env := newTestEnv()
	env.addVessel("nile-queen", 8, 450)
	env.addUser("stranger", "John Smith", models.RoleUser)
	b := activeBooking(env, models.ItemKindVessel, "nile-queen", futureRange(30, 4), models.StatusPending)

	_, err := env.service.CancelBooking(context.Background(), "stranger", b.ID)
	assert.Equal(t, ReasonUnauthorized, CodeOf(err))

	stored, err := env.bookings.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestCancelBookingTerminalStates(t *testing.T) {
	env := newTestEnv()
	env.addVessel("nile-queen", 8, 450)
	env.addUser("other-user", "Jane Doe", models.RoleUser)

	for _, status := range []models.BookingStatus{models.StatusCancelled, models.StatusCompleted} {
		b := activeBooking(env, models.ItemKindVessel, "nile-queen", futureRange(30, 4), status)
		_, err := env.service.CancelBooking(context.Background(), "other-user", b.ID)
		assert.Equal(t, ReasonInvalidStateTransition, CodeOf(err))
		delete(env.bookings.bookings, b.ID)
	}
}
