package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dahabiyat/database"
	"dahabiyat/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates the repository and ensures its indexes.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates the unique id/reference indexes and the compound
// index backing the overlap scan.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "reference", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_reference"),
		},
		{
			Keys: bson.D{
				{Key: "kind", Value: 1},
				{Key: "item_id", Value: 1},
				{Key: "status", Value: 1},
				{Key: "start_date", Value: 1},
				{Key: "end_date", Value: 1},
			},
			Options: options.Index().SetName("item_status_range_idx"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("user_created_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique id.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &b, nil
}

// ListByUser returns all bookings owned by userID, newest first.
func (r *MongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", userID, err)
	}
	defer cur.Close(ctx)

	var out []models.Booking
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return out, nil
}

// ListAll returns every booking, newest first.
func (r *MongoBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.Booking
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return out, nil
}

// FindOverlapping scans active bookings on the item whose half-open range
// intersects rng: existing.start < rng.end AND existing.end > rng.start.
func (r *MongoBookingRepo) FindOverlapping(
	ctx context.Context,
	kind models.ItemKind,
	itemID string,
	rng models.DateRange,
	excludeID string,
) ([]models.Booking, error) {
	filter := bson.M{
		"kind":       kind,
		"item_id":    itemID,
		"status":     bson.M{"$in": models.ActiveStatuses},
		"start_date": bson.M{"$lt": rng.End},
		"end_date":   bson.M{"$gt": rng.Start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}

	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to scan overlapping bookings: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.Booking
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode overlapping bookings: %w", err)
	}
	return out, nil
}

// UpdateStatus performs the guarded transition in one conditional update.
func (r *MongoBookingRepo) UpdateStatus(
	ctx context.Context,
	id string,
	from []models.BookingStatus,
	to models.BookingStatus,
) (*models.Booking, error) {
	filter := bson.M{
		"id":     id,
		"status": bson.M{"$in": from},
	}
	update := bson.M{
		"$set": bson.M{
			"status":     to,
			"updated_at": time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStatusConflict
		}
		return nil, fmt.Errorf("failed to update booking %s status: %w", id, err)
	}
	return &b, nil
}
