// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package models

import "time"

// Roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin reports whether u has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Wishlist product types. Only monitors can be wishlisted today.
const (
	ProductTypeMonitor = "monitor"
)

// WishlistItem is a saved product snapshot for one user.
type WishlistItem struct {
	UserID      string    `json:"user_id"`
	ProductID   int64     `json:"product_id"`
	ProductType string    `json:"product_type"`
	Monitor     *Monitor  `json:"product_data"`
	AddedAt     time.Time `json:"added_at"`
}
