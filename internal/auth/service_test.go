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
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/rigbudget/internal/config"
	"github.com/tomtom215/rigbudget/internal/database"
	"github.com/tomtom215/rigbudget/internal/models"
)

// memUserStore implements UserStore for testing.
type memUserStore struct {
	mu    sync.Mutex
	users []*models.User
	next  int
}

func (s *memUserStore) CreateUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Username, u.Username) || strings.EqualFold(existing.Email, u.Email) {
			return database.ErrUserExists
		}
	}
	s.next++
	u.ID = fmt.Sprintf("user-%d", s.next)
	u.CreatedAt = time.Now()
	cp := *u
	s.users = append(s.users, &cp)
	return nil
}

func (s *memUserStore) find(match func(*models.User) bool) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, database.ErrUserNotFound
}

func (s *memUserStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.find(func(u *models.User) bool { return u.ID == id })
}

func (s *memUserStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.find(func(u *models.User) bool { return u.Username == username })
}

func (s *memUserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.find(func(u *models.User) bool { return strings.EqualFold(u.Email, email) })
}

func newTestService(t *testing.T) (*Service, *memUserStore) {
	t.Helper()
	store := &memUserStore{}
	s := NewService(store, newTestJWTManager(t, time.Hour))
	s.hash = func(p string) (string, error) { return hashPasswordWithCost(p, bcrypt.MinCost) }
	return s, store
}

func TestService_RegisterAndLogin(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(t)
	ctx := context.Background()

	resp, err := s.Register(ctx, "rina", "rina@example.com", "rakitpc123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.Token == "" || resp.User.Role != models.RoleUser {
		t.Errorf("Register response = %+v", resp)
	}

	if _, err := s.Register(ctx, "rina", "other@example.com", "rakitpc123"); !errors.Is(err, database.ErrUserExists) {
		t.Errorf("duplicate Register err = %v, want ErrUserExists", err)
	}

	byName, err := s.Login(ctx, "rina", "rakitpc123")
	if err != nil {
		t.Fatalf("Login by username: %v", err)
	}
	claims, err := s.jwt.ValidateToken(byName.Token)
	if err != nil || claims.Username != "rina" {
		t.Errorf("claims = %+v, %v", claims, err)
	}

	if _, err := s.Login(ctx, "rina@example.com", "rakitpc123"); err != nil {
		t.Errorf("Login by email: %v", err)
	}

	user, err := s.User(ctx, claims)
	if err != nil || user.Email != "rina@example.com" {
		t.Errorf("User = %+v, %v", user, err)
	}
}

func TestService_LoginFailures(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(t)
	ctx := context.Background()

	if _, err := s.Register(ctx, "budi", "budi@example.com", "rakitpc123"); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Login(ctx, "nobody", "rakitpc123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user err = %v", err)
	}

	for i := 0; i < DefaultLockoutConfig().MaxAttempts; i++ {
		if _, err := s.Login(ctx, "budi", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d err = %v", i+1, err)
		}
	}

	if _, err := s.Login(ctx, "budi", "rakitpc123"); !errors.Is(err, ErrAccountLocked) {
		t.Errorf("locked login err = %v, want ErrAccountLocked", err)
	}
}

func TestService_RegisterRejectsShortPassword(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(t)
	if _, err := s.Register(context.Background(), "rina", "rina@example.com", "short"); err == nil {
		t.Error("expected error for short password")
	}
}

func TestService_EnsureAdmin(t *testing.T) {
	t.Parallel()

	s, store := newTestService(t)
	ctx := context.Background()
	cfg := &config.SecurityConfig{AdminUsername: "admin", AdminPassword: "super-secret-admin"}

	if err := s.EnsureAdmin(ctx, cfg); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}
	if err := s.EnsureAdmin(ctx, cfg); err != nil {
		t.Fatalf("EnsureAdmin second run: %v", err)
	}
	if len(store.users) != 1 {
		t.Fatalf("users = %d, want 1", len(store.users))
	}
	admin := store.users[0]
	if !admin.IsAdmin() || admin.Email != "admin@localhost" {
		t.Errorf("admin = %+v", admin)
	}

	if _, err := s.Login(ctx, "admin", "super-secret-admin"); err != nil {
		t.Errorf("admin Login: %v", err)
	}

	if err := s.EnsureAdmin(ctx, &config.SecurityConfig{}); err != nil {
		t.Errorf("EnsureAdmin with no admin configured: %v", err)
	}
}
