// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package logging

import "strings"

var sensitiveKeys = map[string]bool{
	"token":         true,
	"access_token":  true,
	"password":      true,
	"secret":        true,
	"jwt_secret":    true,
	"authorization": true,
	"cookie":        true,
}

// SanitizeToken keeps the first and last four characters of a credential.
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// SanitizeEmail masks the local part of an address: "budi@example.com" -> "bu***@example.com".
func SanitizeEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 0 {
		if email == "" {
			return ""
		}
		return "***"
	}
	if at <= 2 {
		return "***" + email[at:]
	}
	return email[:2] + "***" + email[at:]
}

// SanitizeValue masks value when key names a credential or value looks like an email.
func SanitizeValue(key, value string) string {
	if sensitiveKeys[strings.ToLower(key)] {
		return SanitizeToken(value)
	}
	if strings.Contains(value, "@") && strings.Contains(value, ".") {
		return SanitizeEmail(value)
	}
	return value
}

// SanitizeLogValue strips line breaks and caps length so user input cannot forge log lines.
func SanitizeLogValue(s string) string {
	s = strings.NewReplacer("\n", "\\n", "\r", "\\r", "\t", "\\t").Replace(s)
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
