package entity

import "time"

// Trip-history filters. Status filters partition by booking status;
// "Past" is reserved for completion-date logic that does not exist yet
// and always selects nothing.
const (
	TripFilterUpcoming  = "Upcoming"
	TripFilterCancelled = "Cancelled"
	TripFilterFailed    = "Failed"
	TripFilterPast      = "Past"

	TripTypeAll = "All"
)

// TripListEntry is a read-only projection over one BookingRecord, used
// to render trip history. It is rebuilt on every read, never persisted.
type TripListEntry struct {
	OrderReference   string      `json:"orderReference"`
	BookingReference string      `json:"bookingReference"`
	Product          ProductType `json:"product"`
	Description      string      `json:"description"`
	Status           string      `json:"status"`
	TotalAmount      float64     `json:"totalAmount"`
	Currency         string      `json:"currency"`
	MaskedCard       string      `json:"maskedCard"`
	BookingDate      time.Time   `json:"bookingDate"`
}

// NewTripListEntry projects a stored booking record into a list entry,
// tagging it with its product type and a normalized booking date.
func NewTripListEntry(rec *BookingRecord, fallbackDate time.Time) TripListEntry {
	date := rec.CreatedAt
	if date.IsZero() {
		date = fallbackDate
	}
	return TripListEntry{
		OrderReference:   rec.OrderReference,
		BookingReference: rec.BookingReference,
		Product:          rec.Product,
		Description:      rec.Payload.Summary(),
		Status:           rec.Status,
		TotalAmount:      rec.TotalAmount,
		Currency:         rec.Currency,
		MaskedCard:       rec.MaskedCard,
		BookingDate:      date,
	}
}
