package blockedRepo

import (
	"context"
	"fmt"
	"time"

	"dahabiyat/database"
	"dahabiyat/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBlockedRepo implements BlockedRepository using MongoDB.
type MongoBlockedRepo struct {
	coll *mongo.Collection
}

func NewMongoBlockedRepo() BlockedRepository {
	repo := &MongoBlockedRepo{coll: database.Collection("availability_blocks")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create availability block indexes: %v\n", err)
	}
	return repo
}

func (r *MongoBlockedRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "block_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_block_id"),
		},
		{
			Keys: bson.D{
				{Key: "kind", Value: 1},
				{Key: "item_id", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().SetName("item_date_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create availability block indexes: %w", err)
	}
	return nil
}

// FindInRange returns blocks whose date falls within [rng.Start, rng.End).
func (r *MongoBlockedRepo) FindInRange(
	ctx context.Context,
	kind models.ItemKind,
	itemID string,
	rng models.DateRange,
) ([]models.AvailabilityBlock, error) {
	filter := bson.M{
		"kind":    kind,
		"item_id": itemID,
		"date":    bson.M{"$gte": rng.Start, "$lt": rng.End},
	}
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to scan availability blocks: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.AvailabilityBlock
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode availability blocks: %w", err)
	}
	return out, nil
}

func (r *MongoBlockedRepo) Create(ctx context.Context, block *models.AvailabilityBlock) error {
	if _, err := r.coll.InsertOne(ctx, block); err != nil {
		return fmt.Errorf("failed to create availability block: %w", err)
	}
	return nil
}

func (r *MongoBlockedRepo) Delete(ctx context.Context, blockID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"block_id": blockID})
	if err != nil {
		return fmt.Errorf("failed to delete availability block %s: %w", blockID, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("availability block %s not found", blockID)
	}
	return nil
}

func (r *MongoBlockedRepo) ListByItem(ctx context.Context, kind models.ItemKind, itemID string) ([]models.AvailabilityBlock, error) {
	filter := bson.M{"kind": kind, "item_id": itemID}
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list availability blocks: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.AvailabilityBlock
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode availability blocks: %w", err)
	}
	return out, nil
}
