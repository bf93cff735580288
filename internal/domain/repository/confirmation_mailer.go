package repository

import (
	"context"

	"jetsetter-booking/internal/domain/entity"
)

// ConfirmationMailer sends a booking confirmation to the contact email.
// Delivery is best-effort; a failure never unwinds the booking.
type ConfirmationMailer interface {
	SendConfirmation(ctx context.Context, record *entity.BookingRecord) error
}
