package testmodels

import "github.com/go-openapi/strfmt"

type Order struct {

	// Customer the order belongs to.
	// Required: true
	CustomerID *string `json:"CustomerId"`

	// Sort key, ISO-8601 order timestamp.
	// Required: true
	// Format: date-time
	PlacedAt *strfmt.DateTime `json:"PlacedAt"`

	// Unique identifier for the order.
	// Required: true
	ID *string `json:"Id"`

	// Fulfillment status (pending, shipped, delivered).
	Status string `json:"Status,omitempty"`

	// Order total in minor currency units.
	TotalCents int64 `json:"TotalCents,omitempty"`

	// Timestamp when the order was last updated.
	// Format: date-time
	UpdatedAt *strfmt.DateTime `json:"UpdatedAt,omitempty"`
}
