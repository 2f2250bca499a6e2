package catalogRepo

import (
	"context"
	"errors"
	"fmt"

	"dahabiyat/database"
	"dahabiyat/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalogRepo reads vessels and packages from their CMS collections.
type MongoCatalogRepo struct {
	vessels  *mongo.Collection
	packages *mongo.Collection
}

func NewMongoCatalogRepo() CatalogRepository {
	return &MongoCatalogRepo{
		vessels:  database.Collection("vessels"),
		packages: database.Collection("packages"),
	}
}

// GetBookableItem resolves a catalogue entry by kind and id.
func (r *MongoCatalogRepo) GetBookableItem(ctx context.Context, kind models.ItemKind, id string) (models.BookableItem, error) {
	switch kind {
	case models.ItemKindVessel:
		var v models.Vessel
		if err := r.vessels.FindOne(ctx, bson.M{"id": id}).Decode(&v); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrItemNotFound
			}
			return nil, fmt.Errorf("failed to fetch vessel %s: %w", id, err)
		}
		return v, nil
	case models.ItemKindPackage:
		var p models.Package
		if err := r.packages.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrItemNotFound
			}
			return nil, fmt.Errorf("failed to fetch package %s: %w", id, err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown item kind %q", kind)
	}
}
