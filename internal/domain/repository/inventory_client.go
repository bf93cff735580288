package repository

import (
	"context"

	"jetsetter-booking/internal/domain/entity"
)

// InventoryClient defines the interface to the remote booking/inventory
// service. Only hotel and package flows confirm with it after payment.
type InventoryClient interface {
	CreateBooking(ctx context.Context, req *entity.InventoryBookingRequest) (*entity.InventoryConfirmation, error)
}
