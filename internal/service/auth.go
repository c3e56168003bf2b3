package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vitalog/vitalog-server/internal/logger"
	"github.com/vitalog/vitalog-server/internal/model"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const minPasswordLength = 6

// Auth handles registration, login and account deletion. The core services
// never see credentials; they only consume the user ID this layer resolves.
type Auth struct {
	userStore       model.UserStore
	profileStore    model.ProfileStore
	entryStore      model.EntryStore
	suggestionStore model.SuggestionStore
	tokenManager    model.TokenManager
	logger          *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	profileStore model.ProfileStore,
	entryStore model.EntryStore,
	suggestionStore model.SuggestionStore,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:       userStore,
		profileStore:    profileStore,
		entryStore:      entryStore,
		suggestionStore: suggestionStore,
		tokenManager:    tokenManager,
		logger:          logger,
	}
}

func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.User, error) {
	email := strings.ToLower(strings.TrimSpace(params.Email))
	username := strings.TrimSpace(params.Username)

	if email == "" {
		return model.User{}, model.NewValidationError("email", "email is required")
	}
	if !emailPattern.MatchString(email) {
		return model.User{}, model.NewValidationError("email", "invalid email format")
	}
	if username == "" {
		return model.User{}, model.NewValidationError("username", "username is required")
	}
	if strings.Contains(username, "@") {
		return model.User{}, model.NewValidationError("username", "username cannot contain @ symbol")
	}
	if len(params.Password) < minPasswordLength {
		return model.User{}, model.NewValidationError("password",
			fmt.Sprintf("password must be at least %d characters long", minPasswordLength))
	}

	if _, err := a.userStore.GetByEmail(ctx, email); err == nil {
		return model.User{}, model.ErrEmailTaken
	} else if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if _, err := a.userStore.GetByUsername(ctx, username); err == nil {
		return model.User{}, model.ErrUsernameTaken
	} else if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"user_id", user.ID,
		"username", user.Username)

	return user, nil
}

// Login authenticates by username, or by email when the login contains @.
func (a *Auth) Login(ctx context.Context, login, password string) (model.LoginResult, error) {
	if login == "" || password == "" {
		return model.LoginResult{}, model.NewValidationError("login", "username and password required")
	}

	var user model.User
	var err error
	if strings.Contains(login, "@") {
		user, err = a.userStore.GetByEmail(ctx, strings.ToLower(login))
	} else {
		user, err = a.userStore.GetByUsername(ctx, login)
	}
	if errors.Is(err, model.ErrNotFound) {
		return model.LoginResult{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.LoginResult{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return model.LoginResult{}, model.ErrInvalidCredentials
	}

	accessToken, err := a.tokenManager.GenerateAccessToken(user.ID)
	if err != nil {
		return model.LoginResult{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	completed := false
	profile, err := a.profileStore.GetByUserID(ctx, user.ID)
	if err == nil {
		completed = profile.Completed
	} else if !errors.Is(err, model.ErrNotFound) {
		return model.LoginResult{}, fmt.Errorf("failed to get profile: %w", err)
	}

	a.logger.Info("Auth service: user authenticated",
		"user_id", user.ID,
		"username", user.Username)

	return model.LoginResult{
		AccessToken:      accessToken,
		UserID:           user.ID,
		ProfileCompleted: completed,
	}, nil
}

// DeleteAccount removes the user and everything they own after a password
// confirmation.
func (a *Auth) DeleteAccount(ctx context.Context, userID uuid.UUID, password string) error {
	user, err := a.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return model.ErrInvalidCredentials
	}

	entryCount, err := a.entryStore.DeleteByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to delete entries: %w", err)
	}
	suggestionCount, err := a.suggestionStore.DeleteByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to delete suggestions: %w", err)
	}
	if err := a.profileStore.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if err := a.userStore.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	a.logger.Info("Auth service: account deleted",
		"user_id", userID,
		"entries", entryCount,
		"suggestions", suggestionCount)

	return nil
}
