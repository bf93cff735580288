package usecase

import "jetsetter-booking/internal/domain/entity"

// Cruise fares carry fixed per-passenger taxes and port charges on top
// of the base price.
const (
	cruiseTaxesAndFees = 150.0
	cruisePortCharges  = 200.0
)

// ComputeTotal returns the amount charged for a payload and party size.
// It is deterministic: the wizard displays it and the orchestrator
// submits it, with no divergence between the two.
func ComputeTotal(payload entity.BookingPayload, travelers int) float64 {
	if travelers < 1 {
		travelers = 1
	}
	switch {
	case payload.Flight != nil:
		return payload.Flight.OfferTotal
	case payload.Hotel != nil:
		return payload.Hotel.NightlyRate * float64(payload.Hotel.Nights)
	case payload.Cruise != nil:
		return (payload.Cruise.BasePrice + cruiseTaxesAndFees + cruisePortCharges) * float64(travelers)
	case payload.Package != nil:
		return payload.Package.PricePerPerson * float64(travelers)
	}
	return 0
}
