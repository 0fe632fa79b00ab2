package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/daybook/daybook/internal/auth"
	"github.com/daybook/daybook/internal/id"
	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/repository"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// UserStore is the persistence surface the user service needs.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUserProfile(ctx context.Context, user *model.User) error
}

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
	TokenTTL() time.Duration
}

// UserService handles registration, login and profile management.
type UserService struct {
	store  UserStore
	tokens TokenIssuer
	logger *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(store UserStore, tokens TokenIssuer, logger *slog.Logger) *UserService {
	return &UserService{
		store:  store,
		tokens: tokens,
		logger: logger,
	}
}

// AuthResult bundles the authenticated user and their access token.
type AuthResult struct {
	User      *model.User
	Token     string
	ExpiresIn time.Duration
}

// RegisterInput defines input for account creation.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// Register creates an account and logs it in. Emails are stored lowercased
// so uniqueness is case-insensitive.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, ErrEmailRequired
	}
	if input.Password == "" {
		return nil, ErrPasswordRequired
	}
	if len(input.Password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:           id.New("usr"),
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issueFor(user)
}

// LoginInput defines input for login.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	ok, err := auth.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil {
		s.logger.Error("stored password hash is unreadable", "user_id", user.ID, "error", err)
		return nil, ErrInvalidCredentials
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return s.issueFor(user)
}

// GetProfile returns the account for an authenticated user id.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return user, nil
}

// UpdateProfileInput defines a partial profile patch.
type UpdateProfileInput struct {
	UserID string
	Name   *string
	Avatar *string
}

// UpdateProfile applies a partial patch to the user's profile.
func (s *UserService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*model.User, error) {
	if input.Name == nil && input.Avatar == nil {
		return nil, ErrNoFieldsToUpdate
	}

	user, err := s.store.GetUserByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load profile for update: %w", err)
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrNameRequired
		}
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateUserProfile(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return user, nil
}

func (s *UserService) issueFor(user *model.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: s.tokens.TokenTTL(),
	}, nil
}
