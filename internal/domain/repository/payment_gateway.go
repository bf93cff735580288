package repository

import (
	"context"

	"jetsetter-booking/internal/domain/entity"
)

// PaymentGateway defines the interface to the card-payment processor.
// ProcessPayment performs exactly one charge attempt and never retries;
// the caller owns idempotency via the order reference in the request.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, req *entity.PaymentRequest) (*entity.PaymentOutcome, error)
	CheckPaymentStatus(ctx context.Context, transactionID string) (*entity.PaymentOutcome, error)
	RefundPayment(ctx context.Context, transactionID string, amount float64, reason string) error
}
