// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

// Package validation checks API request structs with go-playground/validator v10.
//
// A single validator instance is shared process-wide (it caches struct
// metadata). Field names in errors are taken from json tags so messages match
// what API clients send. Custom tags:
//
//	component_type  one of the eight component types, case-insensitive
//	username        3-32 characters of letters, digits, '_', '-' or '.'
//
// Example:
//
//	type CreateComponentRequest struct {
//	    Name  string  `json:"name" validate:"required,min=2"`
//	    Type  string  `json:"type" validate:"required,component_type"`
//	    Price float64 `json:"price" validate:"gte=1000"`
//	}
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/rigbudget/internal/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once

	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{3,32}$`)
)

// FieldError is one failed rule on one request field.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Message }

// Errors is every rule a request failed, in struct field order.
type Errors []FieldError

func (es Errors) Error() string {
	if len(es) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

// Details is the error.details object of a VALIDATION_ERROR response.
func (es Errors) Details() map[string]interface{} {
	return map[string]interface{}{"fields": []FieldError(es)}
}

// GetValidator returns the shared validator, registering the custom tags on
// first use.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		// Registration only fails for empty tags or nil funcs.
		_ = v.RegisterValidation("component_type", func(fl validator.FieldLevel) bool {
			_, err := models.ParseComponentType(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernamePattern.MatchString(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// ValidateStruct returns nil when s passes every rule.
func ValidateStruct(s interface{}) Errors {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Errors{{Field: "request", Tag: "invalid", Message: err.Error()}}
	}

	out := make(Errors, len(fieldErrs))
	for i, fe := range fieldErrs {
		out[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: message(fe),
		}
	}
	return out
}

func message(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "url", "http_url":
		return field + " must be a valid http or https URL"
	case "component_type":
		return field + " must be one of: CPU, Motherboard, GPU, RAM, Storage, PSU, Case, Cooler"
	case "username":
		return field + " must be 3-32 letters, digits, '_', '-' or '.'"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, param)
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", field, param, unit)
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", field, param, unit)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
