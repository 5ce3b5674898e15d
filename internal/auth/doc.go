// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

/*
Package auth provides account authentication for the RigBudget API.

Users register with a username, email and password. Passwords are hashed with
bcrypt (cost 12). A successful login returns an HS256 JWT carrying the user
ID, username and role; the same token is also set as an HttpOnly cookie so
browser clients need no token handling.

Authentication Modes:
  - jwt: tokens are required on protected routes (Authorization: Bearer or
    the "token" cookie)
  - none: every request runs as a local admin (development only; rejected by
    config validation in production)

Repeated failed logins for one username lock the account for a short period,
doubling on each subsequent lockout.

Authorization (which role may call which route) lives in package authz.
*/
package auth
