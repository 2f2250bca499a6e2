package models

import "time"

// AvailabilityBlock marks a single date of an item as unbookable regardless
// of existing bookings (maintenance, private charter, dry dock). Declared by
// admins; the reservation engine only reads these.
type AvailabilityBlock struct {
	BlockID   string    `bson:"block_id" json:"blockId"`
	Kind      ItemKind  `bson:"kind" json:"kind"`
	ItemID    string    `bson:"item_id" json:"itemId"`
	Date      time.Time `bson:"date" json:"date"`
	Reason    string    `bson:"reason" json:"reason"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
