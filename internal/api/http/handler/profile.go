package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vitalog/vitalog-server/internal/api/http/middleware"
	"github.com/vitalog/vitalog-server/internal/logger"
	"github.com/vitalog/vitalog-server/internal/model"
)

// ProfileService owns profile completion state.
type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (model.Profile, error)
	CompleteProfile(ctx context.Context, params model.CompleteProfileParams) (model.Profile, error)
}

// Profile exposes profile endpoints.
type Profile struct {
	service ProfileService
	logger  *logger.Logger
}

func NewProfile(service ProfileService, logger *logger.Logger) *Profile {
	return &Profile{service: service, logger: logger}
}

type completeProfileRequest struct {
	BirthDate     string  `json:"birth_date"`
	InitialHeight float64 `json:"initial_height"`
	InitialWeight float64 `json:"initial_weight"`
}

type profileResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	BirthDate     string    `json:"birth_date,omitempty"`
	InitialHeight float64   `json:"initial_height,omitempty"`
	InitialWeight float64   `json:"initial_weight,omitempty"`
	Completed     bool      `json:"completed"`
}

func toProfileResponse(profile model.Profile) profileResponse {
	resp := profileResponse{
		UserID:        profile.UserID,
		InitialHeight: profile.InitialHeight,
		InitialWeight: profile.InitialWeight,
		Completed:     profile.Completed,
	}
	if !profile.BirthDate.IsZero() {
		resp.BirthDate = model.FormatDate(profile.BirthDate)
	}
	return resp
}

func (h *Profile) GetProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}

func (h *Profile) CompleteProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	var req completeProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body required"})
		return
	}

	profile, err := h.service.CompleteProfile(c.Request.Context(), model.CompleteProfileParams{
		UserID:        userID,
		BirthDate:     req.BirthDate,
		InitialHeight: req.InitialHeight,
		InitialWeight: req.InitialWeight,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}
