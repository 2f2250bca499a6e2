package userRepo

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

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

func NewMongoUserRepo() UserRepository {
	repo := &MongoUserRepo{coll: database.Collection("users")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create user indexes: %v\n", err)
	}
	return repo
}

func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	return nil
}

func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	return &u, nil
}

func (r *MongoUserRepo) ListAdmins(ctx context.Context) ([]models.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{"role": models.RoleAdmin})
	if err != nil {
		return nil, fmt.Errorf("failed to list admin users: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode admin users: %w", err)
	}
	return out, nil
}

// PushNotification appends an in-app notification record to the user document.
func (r *MongoUserRepo) PushNotification(ctx context.Context, userID string, n models.Notification) error {
	update := bson.M{
		"$push": bson.M{"notifications": n},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to push notification to user %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
