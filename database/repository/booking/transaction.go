package bookingRepo

import (
	"context"
	"fmt"

	"dahabiyat/database"
	"dahabiyat/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// itemCollection maps a kind to the catalogue collection its documents live in.
func itemCollection(kind models.ItemKind) string {
	if kind == models.ItemKindPackage {
		return "packages"
	}
	return "vessels"
}

// CreateAtomically re-runs the availability checks and inserts the booking
// inside a single Mongo session transaction. The insert alone would not
// serialize two racing creations: transactions are snapshot-isolated and only
// conflict on documents both of them write, and two fresh bookings are
// distinct documents. So after the recheck passes, the transaction also bumps
// a revision counter on the catalogue item itself. Racing creations for the
// same item then collide on that document; the loser aborts with a write
// conflict, WithTransaction retries it, and its fresh recheck sees the
// winner's booking.
func (r *MongoBookingRepo) CreateAtomically(
	ctx context.Context,
	b *models.Booking,
	recheck func(txCtx context.Context) error,
) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if err := recheck(sc); err != nil {
			return nil, err
		}

		anchor := database.Collection(itemCollection(b.Kind))
		res, err := anchor.UpdateOne(sc,
			bson.M{"id": b.ItemID},
			bson.M{"$inc": bson.M{"booking_revision": 1}},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to claim item %s for booking: %w", b.ItemID, err)
		}
		if res.MatchedCount == 0 {
			return nil, fmt.Errorf("bookable item %s/%s disappeared during booking commit", b.Kind, b.ItemID)
		}

		if _, err := r.coll.InsertOne(sc, b); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, ErrDuplicateReference
			}
			return nil, fmt.Errorf("insert booking failed: %w", err)
		}
		return nil, nil
	})
	return err
}
