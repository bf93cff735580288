package entity

import "time"

// Booking status values. Records are written CONFIRMED; CANCELLED and
// FAILED exist for trip-history filtering.
const (
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
	BookingStatusFailed    = "FAILED"
)

// BookingRecord is the durable artifact of a successful order. It is
// created only after a successful PaymentOutcome and never updated
// afterwards. Card data appears only in masked form.
type BookingRecord struct {
	ID               string          `bson:"_id,omitempty" json:"id,omitempty"`
	OrderReference   string          `bson:"orderReference" json:"orderReference"`
	BookingReference string          `bson:"bookingReference" json:"bookingReference"`
	Product          ProductType     `bson:"product" json:"product"`
	Payload          BookingPayload  `bson:"payload" json:"payload"`
	Contact          ContactInfo     `bson:"contact" json:"contact"`
	Travelers        []Traveler      `bson:"travelers,omitempty" json:"travelers,omitempty"`
	MaskedCard       string          `bson:"maskedCard" json:"maskedCard"`
	TotalAmount      float64         `bson:"totalAmount" json:"totalAmount"`
	Currency         string          `bson:"currency" json:"currency"`
	Status           string          `bson:"status" json:"status"`
	Payment          *PaymentOutcome `bson:"payment,omitempty" json:"payment,omitempty"`
	CreatedAt        time.Time       `bson:"createdAt" json:"createdAt"`
}
