/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrInvalidQuery is returned when query options fail validation before
	// any request is sent
	ErrInvalidQuery = errors.New("invalid query options")

	// ErrUnsupportedOperator is returned when a condition uses an operator
	// outside the fixed query vocabulary
	ErrUnsupportedOperator = errors.New("unsupported condition operator")

	// ErrMissingHashValue is returned when a query is built without a hash key value
	ErrMissingHashValue = errors.New("missing hash key value")

	// ErrNoTableSchema is returned when no key schema is registered for a table
	ErrNoTableSchema = errors.New("no table schema registered")
)

// InvalidQueryError represents a query option that failed validation
type InvalidQueryError struct {
	Option  string
	Message string
}

func (e *InvalidQueryError) Error() string {
	if e.Option != "" {
		return fmt.Sprintf("invalid query option %q: %s", e.Option, e.Message)
	}
	return fmt.Sprintf("invalid query: %s", e.Message)
}

func (e *InvalidQueryError) Is(target error) bool {
	return target == ErrInvalidQuery
}

// UnsupportedOperatorError represents a condition with an operator outside the
// query vocabulary
type UnsupportedOperatorError struct {
	Attribute string
	Operator  string
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported operator %q for attribute %q", e.Operator, e.Attribute)
}

func (e *UnsupportedOperatorError) Is(target error) bool {
	return target == ErrUnsupportedOperator || target == ErrInvalidQuery
}

// NoTableSchemaError represents a lookup for a table or index with no
// registered key schema
type NoTableSchemaError struct {
	Table string
	Index string
}

func (e *NoTableSchemaError) Error() string {
	if e.Index != "" {
		return fmt.Sprintf("no key schema registered for index %q of table %q", e.Index, e.Table)
	}
	return fmt.Sprintf("no key schema registered for table %q", e.Table)
}

func (e *NoTableSchemaError) Is(target error) bool {
	return target == ErrNoTableSchema
}

// Helper functions for creating errors

// NewInvalidQueryError creates a new InvalidQueryError
func NewInvalidQueryError(option, message string) error {
	return &InvalidQueryError{Option: option, Message: message}
}

// NewUnsupportedOperatorError creates a new UnsupportedOperatorError
func NewUnsupportedOperatorError(attribute, operator string) error {
	return &UnsupportedOperatorError{Attribute: attribute, Operator: operator}
}

// NewNoTableSchemaError creates a new NoTableSchemaError
func NewNoTableSchemaError(table, index string) error {
	return &NoTableSchemaError{Table: table, Index: index}
}

// IsInvalidQuery checks if an error is a query validation error.
// Configuration errors of this kind surface before any network call.
func IsInvalidQuery(err error) bool {
	return errors.Is(err, ErrInvalidQuery)
}

// IsUnsupportedOperator checks if an error is an unsupported operator error
func IsUnsupportedOperator(err error) bool {
	return errors.Is(err, ErrUnsupportedOperator)
}

// IsMissingHashValue checks if an error is a missing hash value error
func IsMissingHashValue(err error) bool {
	return errors.Is(err, ErrMissingHashValue)
}

// IsNoTableSchema checks if an error is a missing schema error
func IsNoTableSchema(err error) bool {
	return errors.Is(err, ErrNoTableSchema)
}
