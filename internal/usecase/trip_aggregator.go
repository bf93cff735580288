package usecase

import (
	"context"
	"errors"
	"sort"

	"jetsetter-booking/internal/domain/entity"
	"jetsetter-booking/internal/domain/repository"
	"jetsetter-booking/pkg/clock"
	"jetsetter-booking/pkg/logger"
)

// TripAggregator rebuilds the unified trip list from the per-product
// booking slots. It only reads; it never writes a record.
type TripAggregator struct {
	store  repository.BookingStore
	clock  clock.Clock
	logger logger.Logger
}

// NewTripAggregator creates a trip aggregator.
func NewTripAggregator(store repository.BookingStore, clk clock.Clock, logger logger.Logger) *TripAggregator {
	return &TripAggregator{
		store:  store,
		clock:  clk,
		logger: logger,
	}
}

// LoadAllBookings reads every product type's slot and merges the stored
// records into one chronological list, newest first. A missing or
// corrupt entry for one type never prevents the others from loading.
func (a *TripAggregator) LoadAllBookings(ctx context.Context) ([]entity.TripListEntry, error) {
	entries := make([]entity.TripListEntry, 0, 4)

	for _, product := range entity.AllProductTypes() {
		record, err := a.store.Find(ctx, product)
		if err != nil {
			if !errors.Is(err, entity.ErrBookingNotFound) {
				a.logger.Warn("Skipping unreadable booking slot", "product", string(product), "error", err)
			}
			continue
		}
		entries = append(entries, entity.NewTripListEntry(record, a.clock.Now()))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].BookingDate.After(entries[j].BookingDate)
	})

	return entries, nil
}

// FilterBookings restricts a trip list by status tab and product type.
// Pure: the input slice is never mutated. "Past" is always empty until
// completion-date logic exists.
func FilterBookings(entries []entity.TripListEntry, statusFilter, typeFilter string) []entity.TripListEntry {
	out := make([]entity.TripListEntry, 0, len(entries))

	for _, e := range entries {
		if typeFilter != "" && typeFilter != entity.TripTypeAll && string(e.Product) != typeFilter {
			continue
		}
		switch statusFilter {
		case "", entity.TripFilterUpcoming:
			if e.Status == entity.BookingStatusCancelled || e.Status == entity.BookingStatusFailed {
				continue
			}
		case entity.TripFilterCancelled:
			if e.Status != entity.BookingStatusCancelled {
				continue
			}
		case entity.TripFilterFailed:
			if e.Status != entity.BookingStatusFailed {
				continue
			}
		case entity.TripFilterPast:
			continue
		}
		out = append(out, e)
	}

	return out
}
