package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blog-cms/internal/domain"
	"blog-cms/internal/logger"
	"blog-cms/internal/metrics"
	"blog-cms/internal/repository"
	"blog-cms/internal/validator"
)

// AuthService handles account registration, credential verification, and
// token issuance. Tokens are HS256 JWTs carrying the user ID and role.
type AuthService struct {
	users     repository.UserRepository
	validator *validator.Validator
	jwtSecret []byte
	jwtTTL    time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, v *validator.Validator, jwtSecret string, jwtTTL time.Duration) *AuthService {
	if jwtTTL <= 0 {
		jwtTTL = 24 * time.Hour
	}

	return &AuthService{
		users:     users,
		validator: v,
		jwtSecret: []byte(jwtSecret),
		jwtTTL:    jwtTTL,
	}
}

// Register creates a new account. The password is stored as a bcrypt hash;
// a duplicate email surfaces as a conflict.
func (s *AuthService) Register(ctx context.Context, input *domain.RegisterInput) (*domain.User, error) {
	if err := s.validator.ValidateRegistration(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role))

	return user, nil
}

// Login verifies the credentials and returns a signed token plus the user.
// A missing account and a wrong password are indistinguishable to the
// caller; both return ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.ObserveLogin("failure")
			return "", nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		metrics.ObserveLogin("failure")
		return "", nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.jwtTTL).Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	metrics.ObserveLogin("success")
	logger.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID))

	return signed, user, nil
}

// GetProfile returns the account for the given user ID.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile applies a merge-patch to the account. A new password is
// re-hashed before storage.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, patch *domain.UserPatch) (*domain.User, error) {
	if err := s.validator.ValidateUserPatch(patch); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "profile updated", slog.String("user_id", user.ID))

	return user, nil
}
