package models

import "time"

// Placeholder markers for guest fields the customer did not supply.
const (
	UnknownNationality = "UNSPECIFIED"
)

// GuestDetail is one passenger on a booking's manifest. Guest rows are
// created together with their booking and never mutated afterwards.
type GuestDetail struct {
	FirstName           string    `bson:"first_name" json:"firstName"`
	LastName            string    `bson:"last_name" json:"lastName"`
	DateOfBirth         time.Time `bson:"date_of_birth" json:"dateOfBirth"`
	Nationality         string    `bson:"nationality" json:"nationality"`
	PassportNumber      string    `bson:"passport_number,omitempty" json:"passportNumber,omitempty"`
	DietaryRequirements []string  `bson:"dietary_requirements,omitempty" json:"dietaryRequirements,omitempty"`
}
