// Package services contains the business logic for user registration,
// authentication and onboarding persistence.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ahorraplan/finance-backend/internal/lib/jwt"
	"github.com/ahorraplan/finance-backend/internal/lib/password"
	"github.com/ahorraplan/finance-backend/internal/lib/sl"
	"github.com/ahorraplan/finance-backend/internal/models"
)

// Service-level errors mapped by the handlers onto HTTP statuses.
var (
	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so login failures do not leak account existence.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmptyName is returned when the display name is blank after trimming.
	ErrEmptyName = errors.New("name is required")
	// ErrEmptyEmail is returned when the email is blank after trimming.
	ErrEmptyEmail = errors.New("email is required")
)

// UserRepository is the contract for user persistence.
type UserRepository interface {
	// CreateUser inserts a new user and returns its creation timestamp.
	CreateUser(ctx context.Context, user models.User) (time.Time, error)
	// GetUserByEmail returns a user by normalized email or storage.ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// OnboardingRepository is the contract for onboarding persistence.
type OnboardingRepository interface {
	// UpsertOnboardingAnswers inserts or replaces the record of one user.
	UpsertOnboardingAnswers(ctx context.Context, answers models.OnboardingAnswers) error
	// GetOnboardingAnswers returns the record of one user, or nil when absent.
	GetOnboardingAnswers(ctx context.Context, userUID string) (*models.OnboardingAnswers, error)
}

// Cache describes the read-through cache for onboarding answers.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// AuthService composes the credential store and the onboarding store.
type AuthService struct {
	users      UserRepository
	onboarding OnboardingRepository
	cache      Cache
	jwtMaker   jwt.Maker
	log        *slog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserRepository, onboarding OnboardingRepository, cache Cache, jwtMaker jwt.Maker, log *slog.Logger) *AuthService {
	return &AuthService{
		users:      users,
		onboarding: onboarding,
		cache:      cache,
		jwtMaker:   jwtMaker,
		log:        log,
	}
}

// NormalizeEmail lowercases and trims an email; the result is the
// uniqueness key of the credential store.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user with a hashed password credential and
// returns its public view. The plaintext password is never stored and the
// credential never leaves this layer.
func (s *AuthService) Register(ctx context.Context, name, email, rawPassword string) (*models.PublicUser, error) {
	normalizedEmail := NormalizeEmail(email)
	normalizedName := strings.TrimSpace(name)
	if normalizedEmail == "" {
		return nil, ErrEmptyEmail
	}
	if normalizedName == "" {
		return nil, ErrEmptyName
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, err
	}
	user := models.User{
		UID:          uuid.New().String(),
		Name:         normalizedName,
		Email:        normalizedEmail,
		PasswordHash: hashed,
	}
	if _, err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info("registered new user", slog.String("uid", user.UID))

	public := user.Public()
	return &public, nil
}

// Login verifies the password of a user and returns its public view plus an
// access token. Unknown email and wrong password yield the same error.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*models.PublicUser, string, error) {
	user, err := s.users.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtMaker.GenerateToken(user.UID, user.Email)
	if err != nil {
		return nil, "", err
	}

	public := user.Public()
	return &public, token, nil
}

// SaveOnboarding upserts the onboarding answers of a user and refreshes the
// cache. Cache failures are logged and ignored; the store is authoritative.
func (s *AuthService) SaveOnboarding(ctx context.Context, answers models.OnboardingAnswers) error {
	cacheKey := onboardingCacheKey(answers.UserUID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate onboarding cache", slog.String("key", cacheKey), sl.Err(err))
	}

	if err := s.onboarding.UpsertOnboardingAnswers(ctx, answers); err != nil {
		return err
	}
	s.log.Info("saved onboarding answers", slog.String("user_uid", answers.UserUID))

	if err := s.cache.Set(cacheKey, &answers, time.Hour); err != nil {
		s.log.Warn("failed to cache onboarding answers", slog.String("key", cacheKey), sl.Err(err))
	}
	return nil
}

// GetOnboarding returns the onboarding answers of a user, or nil when the
// user has not completed onboarding. Reads go through the cache.
func (s *AuthService) GetOnboarding(ctx context.Context, userUID string) (*models.OnboardingAnswers, error) {
	cacheKey := onboardingCacheKey(userUID)

	var cached *models.OnboardingAnswers
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read onboarding cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found && cached != nil {
		return cached, nil
	}

	answers, err := s.onboarding.GetOnboardingAnswers(ctx, userUID)
	if err != nil {
		return nil, err
	}
	if answers != nil {
		if err := s.cache.Set(cacheKey, answers, time.Hour); err != nil {
			s.log.Warn("failed to cache onboarding answers", slog.String("key", cacheKey), sl.Err(err))
		}
	}
	return answers, nil
}

func onboardingCacheKey(userUID string) string {
	return fmt.Sprintf("onboarding:%s", userUID)
}
