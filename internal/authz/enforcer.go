// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

// Package authz provides role-based authorization using Casbin.
//
// Subjects are roles ("anonymous", "user", "admin"). Objects are resource
// groups rather than URL paths so route changes never silently widen access:
//
//	catalog   components and monitors
//	wishlist  the caller's own wishlist
//	account   the caller's own profile
//
// admin inherits every user permission and user inherits every anonymous one.
package authz

import (
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Roles known to the policy. RoleAnonymous applies when no claims are present.
const (
	RoleAnonymous = "anonymous"
	RoleUser      = "user"
	RoleAdmin     = "admin"
)

// Objects.
const (
	ObjectCatalog  = "catalog"
	ObjectWishlist = "wishlist"
	ObjectAccount  = "account"
)

// Actions.
const (
	ActionRead   = "read"
	ActionWrite  = "write"
	ActionDelete = "delete"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && (r.act == p.act || p.act == "*")
`

// DefaultPolicy is the built-in policy in Casbin CSV form.
const DefaultPolicy = `
# anonymous browsing
p, anonymous, catalog, read

# signed-in users
p, user, wishlist, *
p, user, account, read

# administrators
p, admin, catalog, *

g, user, anonymous
g, admin, user
`

// Enforcer wraps a synced Casbin enforcer.
type Enforcer struct {
	enforcer *casbin.SyncedEnforcer
}

// NewEnforcer creates an enforcer with the built-in model and policy.
func NewEnforcer() (*Enforcer, error) {
	return NewEnforcerWithPolicy(DefaultPolicy)
}

// NewEnforcerWithPolicy creates an enforcer with the built-in model and the
// given CSV policy.
func NewEnforcerWithPolicy(policy string) (*Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to load casbin model: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}
	if err := loadPolicy(enforcer, policy); err != nil {
		return nil, err
	}

	return &Enforcer{enforcer: enforcer}, nil
}

// loadPolicy parses CSV policy lines ("p, sub, obj, act" and "g, child, parent").
func loadPolicy(enforcer *casbin.SyncedEnforcer, policy string) error {
	for _, line := range strings.Split(policy, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		switch {
		case parts[0] == "p" && len(parts) == 4:
			if _, err := enforcer.AddPolicy(parts[1], parts[2], parts[3]); err != nil {
				return fmt.Errorf("failed to add policy %v: %w", parts[1:], err)
			}
		case parts[0] == "g" && len(parts) == 3:
			if _, err := enforcer.AddGroupingPolicy(parts[1], parts[2]); err != nil {
				return fmt.Errorf("failed to add grouping policy %v: %w", parts[1:], err)
			}
		default:
			return fmt.Errorf("malformed policy line %q", line)
		}
	}
	return nil
}

// Enforce reports whether role may perform action on object.
func (e *Enforcer) Enforce(role, object, action string) (bool, error) {
	if role == "" {
		role = RoleAnonymous
	}
	allowed, err := e.enforcer.Enforce(role, object, action)
	if err != nil {
		return false, fmt.Errorf("enforcement failed: %w", err)
	}
	return allowed, nil
}

// Policy returns the loaded permission rules.
func (e *Enforcer) Policy() [][]string {
	policy, _ := e.enforcer.GetPolicy()
	return policy
}
