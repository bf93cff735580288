package entity

import (
	"time"
)

// ProductType identifies one of the four bookable product lines.
type ProductType string

const (
	ProductFlight  ProductType = "flight"
	ProductHotel   ProductType = "hotel"
	ProductCruise  ProductType = "cruise"
	ProductPackage ProductType = "package"
)

// AllProductTypes lists every product line, in trip-history load order.
func AllProductTypes() []ProductType {
	return []ProductType{ProductFlight, ProductCruise, ProductHotel, ProductPackage}
}

// StorageKey returns the fixed local-store key holding the latest
// completed booking for this product type. The cruise key predates the
// others and kept its original unqualified name.
func (p ProductType) StorageKey() string {
	switch p {
	case ProductFlight:
		return "completedFlightBooking"
	case ProductCruise:
		return "completedBooking"
	case ProductHotel:
		return "completedHotelBooking"
	case ProductPackage:
		return "completedPackageBooking"
	}
	return ""
}

// Valid reports whether p is one of the four known product types.
func (p ProductType) Valid() bool {
	return p.StorageKey() != ""
}

// Order is one checkout attempt. The reference is generated client-side
// before any network call and serves as the idempotency key for the
// attempt; it is never reused, even after an indeterminate outcome.
type Order struct {
	Reference   string      `bson:"reference" json:"reference"`
	Product     ProductType `bson:"product" json:"product"`
	Amount      float64     `bson:"amount" json:"amount"`
	Currency    string      `bson:"currency" json:"currency"`
	Description string      `bson:"description" json:"description"`
	CreatedAt   time.Time   `bson:"createdAt" json:"createdAt"`
}
