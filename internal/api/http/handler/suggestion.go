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

// SuggestionService owns the once-per-day suggestion protocol.
type SuggestionService interface {
	RequestSuggestion(ctx context.Context, userID uuid.UUID, now time.Time) (model.SuggestionResult, error)
}

// Suggestion exposes the daily suggestion endpoint.
type Suggestion struct {
	service SuggestionService
	logger  *logger.Logger
}

func NewSuggestion(service SuggestionService, logger *logger.Logger) *Suggestion {
	return &Suggestion{service: service, logger: logger}
}

func (h *Suggestion) RequestSuggestion(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	result, err := h.service.RequestSuggestion(c.Request.Context(), userID, time.Now())
	if err != nil {
		handleError(c, err)
		return
	}

	message := "daily suggestion generated"
	if result.AlreadyReceived {
		message = "daily suggestion already received"
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestion":       result.Text,
		"already_received": result.AlreadyReceived,
		"message":          message,
	})
}
