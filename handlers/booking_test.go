package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dahabiyat/models"
	"dahabiyat/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubReservationService returns canned answers so handler tests cover only
// parsing and error mapping.
type stubReservationService struct {
	created *models.Booking
	err     error

	gotUserID string
	gotReq    booking.CreateBookingRequest
}

func (s *stubReservationService) CreateBooking(_ context.Context, userID string, req booking.CreateBookingRequest) (*models.Booking, error) {
	s.gotUserID = userID
	s.gotReq = req
	return s.created, s.err
}

func (s *stubReservationService) UpdateStatus(context.Context, string, models.BookingStatus) (*models.Booking, error) {
	return s.created, s.err
}

func (s *stubReservationService) CancelBooking(context.Context, string, string) (*models.Booking, error) {
	return s.created, s.err
}

func (s *stubReservationService) GetBooking(context.Context, string, string) (*models.Booking, error) {
	return s.created, s.err
}

func (s *stubReservationService) ListUserBookings(context.Context, string) ([]models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []models.Booking{*s.created}, nil
}

func (s *stubReservationService) ListAllBookings(context.Context, string) ([]models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []models.Booking{*s.created}, nil
}

func newBookingRouter(svc booking.ReservationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Stand-in for the auth middleware.
	r.Use(func(c *gin.Context) {
		c.Set("userID", "u1")
		c.Next()
	})
	h := NewBookingHandler(svc, zap.NewNop())
	r.POST("/api/bookings", h.CreateBooking)
	r.GET("/api/bookings/:bookingID", h.GetBooking)
	return r
}

func TestCreateBookingHandlerSuccess(t *testing.T) {
	start := time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC)
	stub := &stubReservationService{created: &models.Booking{
		ID: "b1", Reference: "V12345678ABCD", UserID: "u1",
		StartDate: start, EndDate: start.AddDate(0, 0, 4),
		Status: models.StatusPending, TotalPrice: 1800,
	}}
	router := newBookingRouter(stub)

	body := `{
		"kind": "VESSEL",
		"itemId": "nile-queen",
		"startDate": "2030-05-10",
		"endDate": "2030-05-14",
		"partySize": 4,
		"guests": [{"firstName": "Jane", "lastName": "Doe", "dateOfBirth": "1990-03-02"}]
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "u1", stub.gotUserID)
	assert.Equal(t, models.ItemKindVessel, stub.gotReq.Kind)
	assert.Equal(t, start, stub.gotReq.Range.Start)
	require.Len(t, stub.gotReq.Guests, 1)
	assert.Equal(t, models.UnknownNationality, stub.gotReq.Guests[0].Nationality)
	assert.Equal(t, 1990, stub.gotReq.Guests[0].DateOfBirth.Year())

	var resp struct {
		Booking models.Booking `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "V12345678ABCD", resp.Booking.Reference)
}

func TestCreateBookingHandlerBadDates(t *testing.T) {
	router := newBookingRouter(&stubReservationService{})

	body := `{"kind":"VESSEL","itemId":"x","startDate":"10/05/2030","endDate":"2030-05-14","partySize":2}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		code booking.ReasonCode
		want int
	}{
		{booking.ReasonValidationError, http.StatusBadRequest},
		{booking.ReasonInvalidDatePast, http.StatusBadRequest},
		{booking.ReasonCapacityExceeded, http.StatusBadRequest},
		{booking.ReasonDurationMismatch, http.StatusBadRequest},
		{booking.ReasonNotFound, http.StatusNotFound},
		{booking.ReasonItemNotFound, http.StatusNotFound},
		{booking.ReasonUnauthorized, http.StatusForbidden},
		{booking.ReasonDatesUnavailable, http.StatusConflict},
		{booking.ReasonDatesBlocked, http.StatusConflict},
		{booking.ReasonInvalidStateTransition, http.StatusConflict},
		{booking.ReasonItemInactive, http.StatusConflict},
	}
	for _, tc := range cases {
		stub := &stubReservationService{err: &booking.Error{Code: tc.code, Message: "nope"}}
		router := newBookingRouter(stub)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/bookings/b1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, tc.want, w.Code, "reason %s", tc.code)

		var resp struct {
			Error booking.Error `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, tc.code, resp.Error.Code)
	}
}
