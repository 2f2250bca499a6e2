package handlers

import (
	"errors"
	"net/http"
	"time"

	"dahabiyat/middleware"
	"dahabiyat/models"
	"dahabiyat/services/booking"
	"dahabiyat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking creation, queries, and cancellation for
// authenticated customers.
type BookingHandler struct {
	Service booking.ReservationService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.ReservationService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

type guestInput struct {
	FirstName           string   `json:"firstName" binding:"required"`
	LastName            string   `json:"lastName" binding:"required"`
	DateOfBirth         string   `json:"dateOfBirth,omitempty"`
	Nationality         string   `json:"nationality,omitempty"`
	PassportNumber      string   `json:"passportNumber,omitempty"`
	DietaryRequirements []string `json:"dietaryRequirements,omitempty"`
}

type createBookingInput struct {
	Kind           models.ItemKind `json:"kind" binding:"required"`
	ItemID         string          `json:"itemId" binding:"required"`
	StartDate      string          `json:"startDate" binding:"required"`
	EndDate        string          `json:"endDate" binding:"required"`
	PartySize      int             `json:"partySize" binding:"required"`
	SpecialRequest string          `json:"specialRequest,omitempty"`
	Guests         []guestInput    `json:"guests,omitempty"`
}

// CreateBooking commits a reservation: POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input createBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rng, err := parseDateRange(input.StartDate, input.EndDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	guests := make([]models.GuestDetail, 0, len(input.Guests))
	for _, g := range input.Guests {
		guest := models.GuestDetail{
			FirstName:           g.FirstName,
			LastName:            g.LastName,
			Nationality:         g.Nationality,
			PassportNumber:      g.PassportNumber,
			DietaryRequirements: g.DietaryRequirements,
		}
		if guest.Nationality == "" {
			guest.Nationality = models.UnknownNationality
		}
		if g.DateOfBirth != "" {
			dob, err := time.Parse(models.DateLayout, g.DateOfBirth)
			if err != nil {
				utils.JSONError(c, http.StatusBadRequest, "invalid date", "guest dateOfBirth must be YYYY-MM-DD")
				return
			}
			guest.DateOfBirth = dob
		}
		guests = append(guests, guest)
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), middleware.CallerID(c), booking.CreateBookingRequest{
		Kind:           input.Kind,
		ItemID:         input.ItemID,
		Range:          rng,
		PartySize:      input.PartySize,
		SpecialRequest: input.SpecialRequest,
		Guests:         guests,
	})
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": created})
}

// GetBooking fetches one booking: GET /api/bookings/:bookingID.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), middleware.CallerID(c), c.Param("bookingID"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// ListMyBookings lists the caller's bookings: GET /api/bookings.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	bookings, err := h.Service.ListUserBookings(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBooking cancels a booking: POST /api/bookings/:bookingID/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	b, err := h.Service.CancelBooking(c.Request.Context(), middleware.CallerID(c), c.Param("bookingID"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// respondBookingError maps engine reason codes onto HTTP statuses and
// returns the structured failure unchanged, so callers can render it.
func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var e *booking.Error
	if !errors.As(err, &e) {
		h.Logger.Error("booking operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking operation failed", err.Error())
		return
	}
	c.JSON(statusForReason(e.Code), gin.H{"error": e})
}

func statusForReason(code booking.ReasonCode) int {
	switch code {
	case booking.ReasonValidationError,
		booking.ReasonInvalidDatePast,
		booking.ReasonInvalidDateOrder,
		booking.ReasonCapacityExceeded,
		booking.ReasonDurationMismatch:
		return http.StatusBadRequest
	case booking.ReasonNotFound, booking.ReasonItemNotFound:
		return http.StatusNotFound
	case booking.ReasonUnauthorized:
		return http.StatusForbidden
	case booking.ReasonDatesUnavailable,
		booking.ReasonDatesBlocked,
		booking.ReasonInvalidStateTransition,
		booking.ReasonItemInactive:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
