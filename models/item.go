package models

// ItemKind discriminates the two bookable catalogue entries.
type ItemKind string

const (
	ItemKindVessel  ItemKind = "VESSEL"
	ItemKindPackage ItemKind = "PACKAGE"
)

// Valid reports whether k is one of the known kinds.
func (k ItemKind) Valid() bool {
	return k == ItemKindVessel || k == ItemKindPackage
}

// ReferencePrefix is the leading character of booking references for this kind.
func (k ItemKind) ReferencePrefix() byte {
	if k == ItemKindPackage {
		return 'P'
	}
	return 'V'
}

// BookableItem is the read-only catalogue view the reservation engine consumes.
// Concrete types are Vessel and Package.
type BookableItem interface {
	ItemID() string
	ItemName() string
	Kind() ItemKind
	Active() bool
	GuestCapacity() int
}

// Vessel is a dahabiya booked exclusively per date range, priced per day.
type Vessel struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Capacity    int     `bson:"capacity" json:"capacity"`
	PricePerDay float64 `bson:"price_per_day" json:"pricePerDay"`
	IsActive    bool    `bson:"is_active" json:"isActive"`
}

func (v Vessel) ItemID() string     { return v.ID }
func (v Vessel) ItemName() string   { return v.Name }
func (v Vessel) Kind() ItemKind     { return ItemKindVessel }
func (v Vessel) Active() bool       { return v.IsActive }
func (v Vessel) GuestCapacity() int { return v.Capacity }

// Package is a fixed-duration itinerary priced per guest.
type Package struct {
	ID           string  `bson:"id" json:"id"`
	Name         string  `bson:"name" json:"name"`
	MaxGuests    int     `bson:"max_guests" json:"maxGuests"`
	FixedPrice   float64 `bson:"fixed_price" json:"fixedPrice"`
	DurationDays int     `bson:"duration_days" json:"durationDays"`
	IsActive     bool    `bson:"is_active" json:"isActive"`
}

func (p Package) ItemID() string     { return p.ID }
func (p Package) ItemName() string   { return p.Name }
func (p Package) Kind() ItemKind     { return ItemKindPackage }
func (p Package) Active() bool       { return p.IsActive }
func (p Package) GuestCapacity() int { return p.MaxGuests }
