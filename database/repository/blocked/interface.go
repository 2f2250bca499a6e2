package blockedRepo

import (
	"context"

	"dahabiyat/models"
)

// BlockedRepository stores admin-declared unavailable dates. The reservation
// engine only reads them; the write path belongs to the admin surface.
type BlockedRepository interface {
	// FindInRange returns blocks on the item whose date falls within
	// [rng.Start, rng.End).
	FindInRange(ctx context.Context, kind models.ItemKind, itemID string, rng models.DateRange) ([]models.AvailabilityBlock, error)

	Create(ctx context.Context, block *models.AvailabilityBlock) error
	Delete(ctx context.Context, blockID string) error
	ListByItem(ctx context.Context, kind models.ItemKind, itemID string) ([]models.AvailabilityBlock, error)
}
