package repository

import (
	"context"
	"errors"
	"fmt"

	"jetsetter-booking/internal/domain/entity"
	"jetsetter-booking/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepository implements the per-product-type slot store on
// a Mongo collection. Each product type owns a fixed document id (its
// storage key), so saves for different types never contend and a save
// for the same type replaces the previous booking.
type MongoBookingRepository struct {
	collection *mongo.Collection
}

// NewMongoBookingRepository creates a new booking slot repository.
func NewMongoBookingRepository(db *mongo.Database) repository.BookingStore {
	return &MongoBookingRepository{
		collection: db.Collection("completed_bookings"),
	}
}

// Save writes the record into its product type's slot, overwriting any
// prior booking of the same type.
func (r *MongoBookingRepository) Save(ctx context.Context, record *entity.BookingRecord) error {
	key := record.Product.StorageKey()
	if key == "" {
		return fmt.Errorf("%w: %q", entity.ErrUnknownProductType, record.Product)
	}
	record.ID = key

	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": key}, record, opts); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrPersistence, err)
	}
	return nil
}

// Find returns the stored booking for a product type, or
// entity.ErrBookingNotFound when the slot is empty. A decode failure is
// returned as-is so callers can skip just the corrupt slot.
func (r *MongoBookingRepository) Find(ctx context.Context, product entity.ProductType) (*entity.BookingRecord, error) {
	key := product.StorageKey()
	if key == "" {
		return nil, fmt.Errorf("%w: %q", entity.ErrUnknownProductType, product)
	}

	var record entity.BookingRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrBookingNotFound
		}
		return nil, fmt.Errorf("decode booking slot %s: %w", key, err)
	}
	return &record, nil
}
