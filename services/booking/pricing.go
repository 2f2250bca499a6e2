package booking

import "dahabiyat/models"

// VesselTotalPrice is durationDays x pricePerDay, where partial days round up.
func VesselTotalPrice(pricePerDay float64, rng models.DateRange) float64 {
	return float64(rng.Days()) * pricePerDay
}

// PackageTotalPrice is the fixed itinerary price applied per guest.
func PackageTotalPrice(fixedPrice float64, partySize int) float64 {
	return fixedPrice * float64(partySize)
}

// TotalPrice computes the quote for an item over a range and party size.
func TotalPrice(item models.BookableItem, rng models.DateRange, partySize int) float64 {
	switch it := item.(type) {
	case models.Vessel:
		return VesselTotalPrice(it.PricePerDay, rng)
	case models.Package:
		return PackageTotalPrice(it.FixedPrice, partySize)
	default:
		return 0
	}
}
