package booking

import (
	"context"
	"time"

	"dahabiyat/models"
)

const (
	// DefaultSearchWindowDays bounds the alternative probe to ±30 days.
	DefaultSearchWindowDays = 30
	// DefaultMaxAlternatives caps the suggestions returned.
	DefaultMaxAlternatives = 3
	// probeStepDays is the fixed cadence between candidate start dates. The
	// search is a bounded heuristic: openings between steps are missed on
	// purpose.
	probeStepDays = 7
)

// AlternativeSearchRequest asks for open stays near a preferred start date.
type AlternativeSearchRequest struct {
	Kind             models.ItemKind `json:"kind"`
	ItemID           string          `json:"itemId"`
	PreferredStart   time.Time       `json:"preferredStart"`
	DurationDays     int             `json:"durationDays"`
	PartySize        int             `json:"partySize"`
	SearchWindowDays int             `json:"searchWindowDays,omitempty"`
	MaxResults       int             `json:"maxResults,omitempty"`
}

// AlternativeOption is one bookable suggestion.
type AlternativeOption struct {
	Range      models.DateRange `json:"range"`
	TotalPrice float64          `json:"totalPrice"`
}

// FindAlternatives probes candidate start dates at a 7-day cadence on both
// sides of the preferred start, nearest offsets first (the earlier date wins
// a tie), and stops once MaxResults open candidates are collected.
func (e *DefaultAvailabilityEngine) FindAlternatives(ctx context.Context, req AlternativeSearchRequest) ([]AlternativeOption, error) {
	window := req.SearchWindowDays
	if window <= 0 {
		window = DefaultSearchWindowDays
	}
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxAlternatives
	}

	today := models.Midnight(time.Now().UTC())
	preferred := models.Midnight(req.PreferredStart)

	var out []AlternativeOption
	for off := probeStepDays; off <= window; off += probeStepDays {
		for _, delta := range []int{-off, off} {
			start := preferred.AddDate(0, 0, delta)
			if start.Before(today) {
				continue
			}
			rng := models.NewDateRange(start, start.AddDate(0, 0, req.DurationDays))

			res, err := e.CheckAvailability(ctx, AvailabilityRequest{
				Kind:      req.Kind,
				ItemID:    req.ItemID,
				Range:     rng,
				PartySize: req.PartySize,
			})
			if err != nil {
				return nil, err
			}
			if !res.Available {
				continue
			}
			out = append(out, AlternativeOption{Range: rng, TotalPrice: res.TotalPrice})
			if len(out) >= maxResults {
				return out, nil
			}
		}
	}
	return out, nil
}
