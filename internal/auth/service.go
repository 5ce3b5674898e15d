// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/rigbudget/internal/config"
	"github.com/tomtom215/rigbudget/internal/database"
	"github.com/tomtom215/rigbudget/internal/logging"
	"github.com/tomtom215/rigbudget/internal/metrics"
	"github.com/tomtom215/rigbudget/internal/models"
)

var (
	// ErrInvalidCredentials is returned for an unknown user or a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAccountLocked is returned while a username is locked out.
	ErrAccountLocked = errors.New("account temporarily locked")
)

// UserStore is the subset of the database used for accounts.
type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Service registers users and issues tokens.
type Service struct {
	store   UserStore
	jwt     *JWTManager
	lockout *Lockout

	// hash is swapped for a cheap cost in tests
	hash func(string) (string, error)
}

// NewService creates an account service.
func NewService(store UserStore, jwtManager *JWTManager) *Service {
	return &Service{
		store:   store,
		jwt:     jwtManager,
		lockout: NewLockout(DefaultLockoutConfig()),
		hash:    HashPassword,
	}
}

// Register creates a user with the user role and returns a login token.
func (s *Service) Register(ctx context.Context, username, email, password string) (resp *models.LoginResponse, err error) {
	defer func() { metrics.RecordAuthAttempt("register", err == nil) }()

	hash, err := s.hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     strings.TrimSpace(username),
		Email:        strings.TrimSpace(email),
		Role:         models.RoleUser,
		PasswordHash: hash,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("register %s: %w", logging.SanitizeLogValue(user.Username), err)
	}

	logging.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("User registered")
	return s.issue(user)
}

// Login verifies credentials and returns a token. identifier is a username
// or, when it contains '@', an email address.
func (s *Service) Login(ctx context.Context, identifier, password string) (resp *models.LoginResponse, err error) {
	defer func() { metrics.RecordAuthAttempt("login", err == nil) }()

	identifier = strings.TrimSpace(identifier)
	if locked, remaining := s.lockout.Locked(identifier); locked {
		return nil, fmt.Errorf("%w: retry in %s", ErrAccountLocked, remaining.Round(time.Second))
	}

	var user *models.User
	if strings.Contains(identifier, "@") {
		user, err = s.store.GetUserByEmail(ctx, identifier)
	} else {
		user, err = s.store.GetUserByUsername(ctx, identifier)
	}
	if err != nil && !errors.Is(err, database.ErrUserNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if user == nil || !CheckPassword(user.PasswordHash, password) {
		if s.lockout.RecordFailure(identifier) {
			logging.Warn().Str("username", logging.SanitizeLogValue(identifier)).Msg("Account locked after repeated failed logins")
		}
		return nil, ErrInvalidCredentials
	}

	s.lockout.RecordSuccess(identifier)
	return s.issue(user)
}

// User loads the account behind claims.
func (s *Service) User(ctx context.Context, claims *Claims) (*models.User, error) {
	return s.store.GetUserByID(ctx, claims.UserID)
}

func (s *Service) issue(user *models.User) (*models.LoginResponse, error) {
	token, expiresAt, err := s.jwt.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// EnsureAdmin creates the configured admin account when it does not exist.
// It is a no-op when no admin username is configured.
func (s *Service) EnsureAdmin(ctx context.Context, cfg *config.SecurityConfig) error {
	if cfg.AdminUsername == "" {
		return nil
	}

	existing, err := s.store.GetUserByUsername(ctx, cfg.AdminUsername)
	if err == nil {
		if !existing.IsAdmin() {
			logging.Warn().Str("username", existing.Username).Msg("Configured admin username belongs to a non-admin account")
		}
		return nil
	}
	if !errors.Is(err, database.ErrUserNotFound) {
		return fmt.Errorf("lookup admin: %w", err)
	}

	hash, err := s.hash(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("admin password: %w", err)
	}

	email := cfg.AdminEmail
	if email == "" {
		email = cfg.AdminUsername + "@localhost"
	}

	admin := &models.User{
		Username:     cfg.AdminUsername,
		Email:        email,
		Role:         models.RoleAdmin,
		PasswordHash: hash,
	}
	if err := s.store.CreateUser(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	logging.Info().Str("username", admin.Username).Msg("Admin account created")
	return nil
}
