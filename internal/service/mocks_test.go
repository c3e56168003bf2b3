package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vitalog/vitalog-server/internal/model"
)

// MockUserStore mocks the UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProfileStore mocks the ProfileStore interface
type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Profile), args.Error(1)
}

func (m *MockProfileStore) Upsert(ctx context.Context, profile model.Profile) (model.Profile, error) {
	args := m.Called(ctx, profile)
	return args.Get(0).(model.Profile), args.Error(1)
}

func (m *MockProfileStore) Delete(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockEntryStore mocks the EntryStore interface
type MockEntryStore struct {
	mock.Mock
}

func (m *MockEntryStore) Upsert(ctx context.Context, entry model.DailyEntry) (model.DailyEntry, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(model.DailyEntry), args.Error(1)
}

func (m *MockEntryStore) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (model.DailyEntry, error) {
	args := m.Called(ctx, userID, date)
	return args.Get(0).(model.DailyEntry), args.Error(1)
}

func (m *MockEntryStore) List(ctx context.Context, userID uuid.UUID, filter model.EntryFilter) ([]model.DailyEntry, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]model.DailyEntry), args.Error(1)
}

func (m *MockEntryStore) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]model.DailyEntry, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]model.DailyEntry), args.Error(1)
}

func (m *MockEntryStore) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockSuggestionStore mocks the SuggestionStore interface
type MockSuggestionStore struct {
	mock.Mock
}

func (m *MockSuggestionStore) Create(ctx context.Context, suggestion model.Suggestion) (model.Suggestion, bool, error) {
	args := m.Called(ctx, suggestion)
	return args.Get(0).(model.Suggestion), args.Bool(1), args.Error(2)
}

func (m *MockSuggestionStore) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (model.Suggestion, error) {
	args := m.Called(ctx, userID, date)
	return args.Get(0).(model.Suggestion), args.Error(1)
}

func (m *MockSuggestionStore) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockProvider mocks the SuggestionProvider interface
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Generate(ctx context.Context, payload model.SuggestionContext) (string, error) {
	args := m.Called(ctx, payload)
	return args.String(0), args.Error(1)
}

// MockTokenManager mocks the TokenManager interface
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID uuid.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) ParseAccessToken(tokenString string) (uuid.UUID, error) {
	args := m.Called(tokenString)
	return args.Get(0).(uuid.UUID), args.Error(1)
}
