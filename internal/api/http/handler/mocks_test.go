package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vitalog/vitalog-server/internal/model"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, params model.RegisterParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, login, password string) (model.LoginResult, error) {
	args := m.Called(ctx, login, password)
	return args.Get(0).(model.LoginResult), args.Error(1)
}

func (m *MockAuthService) DeleteAccount(ctx context.Context, userID uuid.UUID, password string) error {
	args := m.Called(ctx, userID, password)
	return args.Error(0)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Profile), args.Error(1)
}

func (m *MockProfileService) CompleteProfile(ctx context.Context, params model.CompleteProfileParams) (model.Profile, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Profile), args.Error(1)
}

type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) SubmitEntry(ctx context.Context, params model.SubmitEntryParams) (model.DailyEntry, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.DailyEntry), args.Error(1)
}

func (m *MockEntryService) ListEntries(ctx context.Context, userID uuid.UUID, filter model.EntryFilter) ([]model.DailyEntry, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]model.DailyEntry), args.Error(1)
}

type MockSuggestionService struct {
	mock.Mock
}

func (m *MockSuggestionService) RequestSuggestion(ctx context.Context, userID uuid.UUID, now time.Time) (model.SuggestionResult, error) {
	args := m.Called(ctx, userID, now)
	return args.Get(0).(model.SuggestionResult), args.Error(1)
}

// authenticatedAs injects the user ID the way Authenticate would.
func authenticatedAs(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func performRequest(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
