package repository

import (
	"context"

	"jetsetter-booking/internal/domain/entity"
)

// BookingStore defines the interface for the per-product-type slot store.
// Save overwrites any prior record stored under the same product type;
// only the most recent booking per type survives. Find returns
// entity.ErrBookingNotFound when the slot is empty.
type BookingStore interface {
	Save(ctx context.Context, record *entity.BookingRecord) error
	Find(ctx context.Context, product entity.ProductType) (*entity.BookingRecord, error)
}

// BookingArchive defines the append-only history of confirmed bookings,
// keyed by order reference. Unlike the slot store it never overwrites.
type BookingArchive interface {
	Append(ctx context.Context, record *entity.BookingRecord) error
	ListByProduct(ctx context.Context, product entity.ProductType, limit int) ([]*entity.BookingRecord, error)
}
