package entity

import "time"

// InventoryBookingRequest confirms a paid hotel or package booking with
// the remote inventory system. Flight and cruise flows never send one;
// their local record is authoritative.
type InventoryBookingRequest struct {
	Product        ProductType    `json:"product"`
	OrderReference string         `json:"orderReference"`
	Payload        BookingPayload `json:"payload"`
	Contact        ContactInfo    `json:"guestDetails"`
	Travelers      []Traveler     `json:"travelers,omitempty"`
	TotalAmount    float64        `json:"totalPrice"`
	Currency       string         `json:"currency"`
}

// InventoryConfirmation is the remote system's acknowledgement.
type InventoryConfirmation struct {
	BookingReference string    `json:"bookingReference"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}
