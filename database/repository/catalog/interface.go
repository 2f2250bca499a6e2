package catalogRepo

import (
	"context"
	"errors"

	"dahabiyat/models"
)

// ErrItemNotFound is returned when no catalogue entry matches kind and id.
var ErrItemNotFound = errors.New("bookable item not found")

// CatalogRepository is the read-only catalogue lookup the reservation engine
// consumes. The catalogue itself is owned by the content-management layer.
type CatalogRepository interface {
	GetBookableItem(ctx context.Context, kind models.ItemKind, id string) (models.BookableItem, error)
}
