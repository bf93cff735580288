package entity

import "errors"

// Error taxonomy for the checkout flow. Local validation failures never
// reach the gateway; gateway failures never reach the booking store.
var (
	// ErrExpiryFormat marks a malformed expiry string (expected MM/YY).
	ErrExpiryFormat = errors.New("invalid expiry date format")

	// ErrInvalidCard marks a card number that fails the Luhn check.
	ErrInvalidCard = errors.New("invalid card number")

	// ErrMissingField marks a payment request with required fields absent.
	ErrMissingField = errors.New("missing required payment field")

	// ErrGatewayDeclined marks a payment the gateway explicitly rejected.
	ErrGatewayDeclined = errors.New("payment declined by gateway")

	// ErrGatewayUnreachable marks a network or timeout failure during a
	// charge. The outcome is indeterminate: a retry must use a fresh
	// order reference.
	ErrGatewayUnreachable = errors.New("payment gateway unreachable")

	// ErrPersistence marks a local write failure after a successful charge.
	ErrPersistence = errors.New("failed to persist booking record")

	// ErrSubmitInFlight marks a duplicate submit while a charge is running.
	ErrSubmitInFlight = errors.New("submission already in progress")

	// ErrUnknownProductType marks a product type without a registered flow.
	ErrUnknownProductType = errors.New("unknown product type")

	// ErrBookingNotFound marks a missing slot for a product type.
	ErrBookingNotFound = errors.New("booking record not found")
)
