package handlers

import (
	"net/http"
	"time"

	blockedRepo "dahabiyat/database/repository/blocked"
	"dahabiyat/middleware"
	"dahabiyat/models"
	"dahabiyat/services/booking"
	"dahabiyat/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminHandler exposes the admin surface: full booking list, lifecycle
// transitions, and availability block management.
type AdminHandler struct {
	Service booking.ReservationService
	Blocked blockedRepo.BlockedRepository
	Logger  *zap.Logger
}

func NewAdminHandler(svc booking.ReservationService, blocked blockedRepo.BlockedRepository, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Service: svc, Blocked: blocked, Logger: logger}
}

// ListAllBookings returns every booking: GET /api/admin/bookings.
func (h *AdminHandler) ListAllBookings(c *gin.Context) {
	bookings, err := h.Service.ListAllBookings(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		respondAdminError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

type updateStatusInput struct {
	Status models.BookingStatus `json:"status" binding:"required"`
}

// UpdateBookingStatus applies a lifecycle transition: PATCH /api/admin/bookings/:bookingID/status.
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	var input updateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Service.UpdateStatus(c.Request.Context(), c.Param("bookingID"), input.Status)
	if err != nil {
		respondAdminError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

type createBlockInput struct {
	Kind   models.ItemKind `json:"kind" binding:"required"`
	ItemID string          `json:"itemId" binding:"required"`
	Date   string          `json:"date" binding:"required"`
	Reason string          `json:"reason,omitempty"`
}

// CreateAvailabilityBlock marks one date unbookable: POST /api/admin/blocks.
func (h *AdminHandler) CreateAvailabilityBlock(c *gin.Context) {
	var input createBlockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	date, err := time.Parse(models.DateLayout, input.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "date must be YYYY-MM-DD")
		return
	}

	block := &models.AvailabilityBlock{
		BlockID:   uuid.New().String(),
		Kind:      input.Kind,
		ItemID:    input.ItemID,
		Date:      models.Midnight(date),
		Reason:    input.Reason,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Blocked.Create(c.Request.Context(), block); err != nil {
		h.Logger.Error("failed to create availability block", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create availability block", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"block": block})
}

// DeleteAvailabilityBlock removes a block: DELETE /api/admin/blocks/:blockID.
func (h *AdminHandler) DeleteAvailabilityBlock(c *gin.Context) {
	if err := h.Blocked.Delete(c.Request.Context(), c.Param("blockID")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete availability block", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAvailabilityBlocks lists blocks for one item: GET /api/admin/blocks.
func (h *AdminHandler) ListAvailabilityBlocks(c *gin.Context) {
	kind := models.ItemKind(c.Query("kind"))
	itemID := c.Query("itemId")
	if !kind.Valid() || itemID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "kind and itemId query parameters are required")
		return
	}

	blocks, err := h.Blocked.ListByItem(c.Request.Context(), kind, itemID)
	if err != nil {
		h.Logger.Error("failed to list availability blocks", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list availability blocks", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}

func respondAdminError(c *gin.Context, logger *zap.Logger, err error) {
	if code := booking.CodeOf(err); code != "" {
		c.JSON(statusForReason(code), gin.H{"error": err})
		return
	}
	logger.Error("admin operation failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "admin operation failed", err.Error())
}
