package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"dahabiyat/models"
	"dahabiyat/services/booking"
	"dahabiyat/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the read-only availability surface. Quotes are
// cached briefly in redis; the cache is never consulted on the booking path,
// which re-checks inside its own transaction.
type AvailabilityHandler struct {
	Engine booking.AvailabilityService
	Cache  *redis.Client
	Logger *zap.Logger
}

func NewAvailabilityHandler(engine booking.AvailabilityService, cache *redis.Client, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine, Cache: cache, Logger: logger}
}

type checkAvailabilityInput struct {
	Kind      models.ItemKind `json:"kind" binding:"required"`
	ItemID    string          `json:"itemId" binding:"required"`
	StartDate string          `json:"startDate" binding:"required"`
	EndDate   string          `json:"endDate" binding:"required"`
	PartySize int             `json:"partySize" binding:"required"`
}

// CheckAvailability quotes a stay: POST /api/availability/check.
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	var input checkAvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rng, err := parseDateRange(input.StartDate, input.EndDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	cacheKey := fmt.Sprintf("%s%s:%s:%s:%s:%d",
		utils.QuoteCachePrefix, input.Kind, input.ItemID, input.StartDate, input.EndDate, input.PartySize)
	if h.Cache != nil {
		if cached, err := h.Cache.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	result, err := h.Engine.CheckAvailability(c.Request.Context(), booking.AvailabilityRequest{
		Kind:      input.Kind,
		ItemID:    input.ItemID,
		Range:     rng,
		PartySize: input.PartySize,
	})
	if err != nil {
		h.Logger.Error("availability check failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "availability check failed", err.Error())
		return
	}

	if h.Cache != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := h.Cache.Set(c.Request.Context(), cacheKey, data, utils.QuoteCacheTTL).Err(); err != nil {
				h.Logger.Warn("failed to cache availability quote", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, result)
}

type findAlternativesInput struct {
	Kind             models.ItemKind `json:"kind" binding:"required"`
	ItemID           string          `json:"itemId" binding:"required"`
	PreferredStart   string          `json:"preferredStart" binding:"required"`
	DurationDays     int             `json:"durationDays" binding:"required"`
	PartySize        int             `json:"partySize" binding:"required"`
	SearchWindowDays int             `json:"searchWindowDays,omitempty"`
	MaxResults       int             `json:"maxResults,omitempty"`
}

// FindAlternatives suggests nearby open stays: POST /api/availability/alternatives.
func (h *AvailabilityHandler) FindAlternatives(c *gin.Context) {
	var input findAlternativesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	preferred, err := time.Parse(models.DateLayout, input.PreferredStart)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "preferredStart must be YYYY-MM-DD")
		return
	}

	options, err := h.Engine.FindAlternatives(c.Request.Context(), booking.AlternativeSearchRequest{
		Kind:             input.Kind,
		ItemID:           input.ItemID,
		PreferredStart:   preferred,
		DurationDays:     input.DurationDays,
		PartySize:        input.PartySize,
		SearchWindowDays: input.SearchWindowDays,
		MaxResults:       input.MaxResults,
	})
	if err != nil {
		h.Logger.Error("alternative search failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "alternative search failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"alternatives": options})
}

func parseDateRange(start, end string) (models.DateRange, error) {
	s, err := time.Parse(models.DateLayout, start)
	if err != nil {
		return models.DateRange{}, fmt.Errorf("startDate must be YYYY-MM-DD")
	}
	e, err := time.Parse(models.DateLayout, end)
	if err != nil {
		return models.DateRange{}, fmt.Errorf("endDate must be YYYY-MM-DD")
	}
	return models.NewDateRange(s, e), nil
}
