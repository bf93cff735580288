package entity

import "time"

// Gateway status vocabulary. APPROVED and SUCCESS both map to a
// successful outcome; everything else is a decline.
const (
	PaymentStatusApproved = "APPROVED"
	PaymentStatusSuccess  = "SUCCESS"
	PaymentStatusDeclined = "DECLINED"
)

// CardInput is raw user-entered card data. It lives only in wizard state
// and must never be written to a durable record; only the masked form
// (last four digits) survives into a BookingRecord.
type CardInput struct {
	Number string `json:"number"`
	Holder string `json:"holder"`
	Expiry string `json:"expiry"` // MM/YY
	CVV    string `json:"cvv"`
}

// PaymentRequest carries everything the gateway needs for one charge.
type PaymentRequest struct {
	Amount         float64
	Currency       string
	OrderReference string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	CardNumber  string
	CardHolder  string
	ExpiryMonth int
	ExpiryYear  int
	CVV         string

	Description string
	BookingType ProductType
}

// PaymentOutcome is the normalized result of exactly one gateway call.
type PaymentOutcome struct {
	Success           bool      `bson:"success" json:"success"`
	Status            string    `bson:"status" json:"status"`
	TransactionID     string    `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	AuthorizationCode string    `bson:"authorizationCode,omitempty" json:"authorizationCode,omitempty"`
	Amount            float64   `bson:"amount" json:"amount"`
	Currency          string    `bson:"currency" json:"currency"`
	Message           string    `bson:"message,omitempty" json:"message,omitempty"`
	ProcessedAt       time.Time `bson:"processedAt" json:"processedAt"`
}
