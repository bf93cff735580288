package usecase

import (
	"testing"

	"jetsetter-booking/internal/domain/entity"
)

func TestComputeTotal(t *testing.T) {
	t.Parallel()

	t.Run("cruise adds taxes and port charges per passenger", func(t *testing.T) {
		payload := entity.BookingPayload{
			Cruise: &entity.CruisePayload{Name: "Caribbean Dream", BasePrice: 699},
		}
		got := ComputeTotal(payload, 2)
		if got != 2098.00 {
			t.Fatalf("expected 2098.00, got %.2f", got)
		}
	})

	t.Run("hotel multiplies nightly rate by nights", func(t *testing.T) {
		payload := entity.BookingPayload{
			Hotel: &entity.HotelPayload{NightlyRate: 120.50, Nights: 3},
		}
		got := ComputeTotal(payload, 2)
		if got != 361.50 {
			t.Fatalf("expected 361.50, got %.2f", got)
		}
	})

	t.Run("flight uses the offer total regardless of party size", func(t *testing.T) {
		payload := entity.BookingPayload{
			Flight: &entity.FlightPayload{OfferTotal: 415.20},
		}
		got := ComputeTotal(payload, 3)
		if got != 415.20 {
			t.Fatalf("expected 415.20, got %.2f", got)
		}
	})

	t.Run("package multiplies per-person price by travelers", func(t *testing.T) {
		payload := entity.BookingPayload{
			Package: &entity.PackagePayload{PricePerPerson: 899},
		}
		got := ComputeTotal(payload, 2)
		if got != 1798.00 {
			t.Fatalf("expected 1798.00, got %.2f", got)
		}
	})

	t.Run("zero travelers counts as one", func(t *testing.T) {
		payload := entity.BookingPayload{
			Cruise: &entity.CruisePayload{BasePrice: 699},
		}
		got := ComputeTotal(payload, 0)
		if got != 1049.00 {
			t.Fatalf("expected 1049.00, got %.2f", got)
		}
	})

	t.Run("empty payload is zero", func(t *testing.T) {
		if got := ComputeTotal(entity.BookingPayload{}, 2); got != 0 {
			t.Fatalf("expected 0, got %.2f", got)
		}
	})
}
