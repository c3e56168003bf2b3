package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vitalog/vitalog-server/internal/api/http/middleware"
	"github.com/vitalog/vitalog-server/internal/logger"
	"github.com/vitalog/vitalog-server/internal/model"
)

// EntryService owns validated upsert and read of daily entries.
type EntryService interface {
	SubmitEntry(ctx context.Context, params model.SubmitEntryParams) (model.DailyEntry, error)
	ListEntries(ctx context.Context, userID uuid.UUID, filter model.EntryFilter) ([]model.DailyEntry, error)
}

// Entry exposes daily entry endpoints.
type Entry struct {
	service EntryService
	logger  *logger.Logger
}

func NewEntry(service EntryService, logger *logger.Logger) *Entry {
	return &Entry{service: service, logger: logger}
}

type submitEntryRequest struct {
	Date      string  `json:"date"`
	Height    float64 `json:"height"`
	Weight    float64 `json:"weight"`
	Breakfast string  `json:"breakfast"`
	Lunch     string  `json:"lunch"`
	Dinner    string  `json:"dinner"`
}

type entryResponse struct {
	Date      string  `json:"date"`
	Height    float64 `json:"height"`
	Weight    float64 `json:"weight"`
	Breakfast string  `json:"breakfast"`
	Lunch     string  `json:"lunch"`
	Dinner    string  `json:"dinner"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func toEntryResponse(entry model.DailyEntry) entryResponse {
	return entryResponse{
		Date:      model.FormatDate(entry.Date),
		Height:    entry.Height,
		Weight:    entry.Weight,
		Breakfast: entry.Breakfast,
		Lunch:     entry.Lunch,
		Dinner:    entry.Dinner,
		CreatedAt: entry.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: entry.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *Entry) SubmitEntry(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	var req submitEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body required"})
		return
	}

	entry, err := h.service.SubmitEntry(c.Request.Context(), model.SubmitEntryParams{
		UserID:    userID,
		Date:      req.Date,
		Height:    req.Height,
		Weight:    req.Weight,
		Breakfast: req.Breakfast,
		Lunch:     req.Lunch,
		Dinner:    req.Dinner,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toEntryResponse(entry))
}

func (h *Entry) ListEntries(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	filter, err := parseEntryFilter(c)
	if err != nil {
		handleError(c, err)
		return
	}

	entries, err := h.service.ListEntries(c.Request.Context(), userID, filter)
	if err != nil {
		handleError(c, err)
		return
	}

	items := make([]entryResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, toEntryResponse(entry))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":        items,
		"total_count": len(items),
	})
}

func parseEntryFilter(c *gin.Context) (model.EntryFilter, error) {
	filter := model.EntryFilter{
		SortBy: model.EntrySortField(c.Query("sort_by")),
		Order:  model.SortOrder(c.Query("order")),
	}

	if from := c.Query("from"); from != "" {
		parsed, err := model.ParseDate(from)
		if err != nil {
			return model.EntryFilter{}, model.NewValidationError("from", "invalid date format, use YYYY-MM-DD")
		}
		filter.From = &parsed
	}
	if to := c.Query("to"); to != "" {
		parsed, err := model.ParseDate(to)
		if err != nil {
			return model.EntryFilter{}, model.NewValidationError("to", "invalid date format, use YYYY-MM-DD")
		}
		filter.To = &parsed
	}

	return filter, nil
}
