package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	bookingRepo "dahabiyat/database/repository/booking"
	"dahabiyat/models"
	"dahabiyat/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxReferenceAttempts bounds regeneration when an insert hits the unique
// reference index. One retry covers the realistic collision case.
const maxReferenceAttempts = 3

// CreateBooking validates the request, then re-runs the availability checks
// and inserts the booking inside one transaction, closing the window between
// a quote and its commit. Lifecycle notifications go out after the commit so
// a delivery failure can never roll back a booked stay.
func (s *DefaultReservationService) CreateBooking(ctx context.Context, userID string, req CreateBookingRequest) (*models.Booking, error) {
	if ferr := validateCreateBooking(userID, req); ferr != nil {
		return nil, ferr
	}

	now := time.Now().UTC()
	rng := models.NewDateRange(req.Range.Start, req.Range.End)

	guests := req.Guests
	if len(guests) == 0 {
		guests = []models.GuestDetail{s.defaultGuest(ctx, userID)}
	}

	b := &models.Booking{
		ID:             uuid.New().String(),
		UserID:         userID,
		Kind:           req.Kind,
		ItemID:         req.ItemID,
		StartDate:      rng.Start,
		EndDate:        rng.End,
		PartySize:      req.PartySize,
		SpecialRequest: req.SpecialRequest,
		Status:         models.StatusPending,
		Guests:         guests,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	recheck := func(txCtx context.Context) error {
		res, err := s.Engine.CheckAvailability(txCtx, AvailabilityRequest{
			Kind:      req.Kind,
			ItemID:    req.ItemID,
			Range:     rng,
			PartySize: req.PartySize,
		})
		if err != nil {
			return err
		}
		if !res.Available {
			return res.Err()
		}
		b.ItemName = res.Item.ItemName()
		b.TotalPrice = res.TotalPrice
		return nil
	}

	for attempt := 1; ; attempt++ {
		b.Reference = GenerateReference(req.Kind, time.Now())
		err := s.Bookings.CreateAtomically(ctx, b, recheck)
		if err == nil {
			break
		}
		if errors.Is(err, bookingRepo.ErrDuplicateReference) && attempt < maxReferenceAttempts {
			continue
		}
		return nil, err
	}

	s.dispatch(models.EventBookingCreated, b)
	return b, nil
}

// defaultGuest synthesizes a single manifest entry from the booking user's
// profile when no guest list was supplied. The name splits on the first
// whitespace; missing parts fall back to "Guest"/"User". Date of birth and
// nationality stay as "unknown" markers.
func (s *DefaultReservationService) defaultGuest(ctx context.Context, userID string) models.GuestDetail {
	first, last := "Guest", "User"
	if u, err := s.Users.GetByID(ctx, userID); err == nil {
		name := strings.TrimSpace(u.Name)
		if name != "" {
			if idx := strings.IndexAny(name, " \t"); idx >= 0 {
				first = name[:idx]
				last = strings.TrimSpace(name[idx+1:])
				if last == "" {
					last = "User"
				}
			} else {
				first = name
			}
		}
	} else {
		utils.GetLogger().Warn("failed to load user for default guest",
			zap.String("userID", userID), zap.Error(err))
	}
	return models.GuestDetail{
		FirstName:   first,
		LastName:    last,
		Nationality: models.UnknownNationality,
	}
}

// dispatch hands a lifecycle event to the notification dispatcher without
// blocking the caller. Failures are logged, never propagated.
func (s *DefaultReservationService) dispatch(kind models.LifecycleEventKind, b *models.Booking) {
	if s.Notifier == nil {
		return
	}
	event := models.LifecycleEvent{
		Kind:       kind,
		BookingID:  b.ID,
		Booking:    *b,
		OccurredAt: time.Now().UTC(),
	}
	go func() {
		if err := s.Notifier.DispatchBookingEvent(context.Background(), event); err != nil {
			utils.GetLogger().Error("booking event dispatch failed",
				zap.String("bookingID", b.ID), zap.String("event", string(kind)), zap.Error(err))
		}
	}()
}
