package entity

import "time"

// ContactInfo identifies the person making the booking.
type ContactInfo struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone" json:"phone"`
}

// FullName joins first and last name for gateway customer fields.
func (c ContactInfo) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Traveler is one passenger or guest on the booking.
type Traveler struct {
	FirstName   string `bson:"firstName" json:"firstName"`
	LastName    string `bson:"lastName" json:"lastName"`
	Age         int    `bson:"age" json:"age"`
	Nationality string `bson:"nationality" json:"nationality"`
}

// FlightPayload is the selected flight offer carried into the booking.
type FlightPayload struct {
	Airline      string    `bson:"airline" json:"airline"`
	FlightNumber string    `bson:"flightNumber" json:"flightNumber"`
	Origin       string    `bson:"origin" json:"origin"`
	Destination  string    `bson:"destination" json:"destination"`
	DepartureAt  time.Time `bson:"departureAt" json:"departureAt"`
	PNR          string    `bson:"pnr,omitempty" json:"pnr,omitempty"`
	OfferTotal   float64   `bson:"offerTotal" json:"offerTotal"`
}

// HotelPayload is the selected hotel offer plus stay dates.
type HotelPayload struct {
	HotelID      string  `bson:"hotelId" json:"hotelId"`
	HotelName    string  `bson:"hotelName" json:"hotelName"`
	OfferID      string  `bson:"offerId" json:"offerId"`
	NightlyRate  float64 `bson:"nightlyRate" json:"nightlyRate"`
	Nights       int     `bson:"nights" json:"nights"`
	CheckInDate  string  `bson:"checkInDate" json:"checkInDate"`
	CheckOutDate string  `bson:"checkOutDate" json:"checkOutDate"`
}

// CruisePayload is the selected cruise itinerary.
type CruisePayload struct {
	Name          string    `bson:"name" json:"name"`
	Ship          string    `bson:"ship" json:"ship"`
	DeparturePort string    `bson:"departurePort" json:"departurePort"`
	DepartureDate time.Time `bson:"departureDate" json:"departureDate"`
	Nights        int       `bson:"nights" json:"nights"`
	BasePrice     float64   `bson:"basePrice" json:"basePrice"`
}

// PackagePayload is the selected vacation package.
type PackagePayload struct {
	PackageID      string  `bson:"packageId" json:"packageId"`
	Title          string  `bson:"title" json:"title"`
	Location       string  `bson:"location" json:"location"`
	Duration       string  `bson:"duration" json:"duration"`
	PricePerPerson float64 `bson:"pricePerPerson" json:"pricePerPerson"`
}

// BookingPayload is a tagged union over the four product payloads.
// Exactly one variant is set; Product reports which.
type BookingPayload struct {
	Flight  *FlightPayload  `bson:"flight,omitempty" json:"flight,omitempty"`
	Hotel   *HotelPayload   `bson:"hotel,omitempty" json:"hotel,omitempty"`
	Cruise  *CruisePayload  `bson:"cruise,omitempty" json:"cruise,omitempty"`
	Package *PackagePayload `bson:"package,omitempty" json:"package,omitempty"`
}

// Product returns the product type of the populated variant, or "" when
// no variant is set.
func (p BookingPayload) Product() ProductType {
	switch {
	case p.Flight != nil:
		return ProductFlight
	case p.Hotel != nil:
		return ProductHotel
	case p.Cruise != nil:
		return ProductCruise
	case p.Package != nil:
		return ProductPackage
	}
	return ""
}

// Summary returns a short human-readable description of the payload,
// used for gateway descriptions and confirmation emails.
func (p BookingPayload) Summary() string {
	switch {
	case p.Flight != nil:
		return "Flight Booking - " + p.Flight.Airline + " " + p.Flight.FlightNumber
	case p.Hotel != nil:
		return "Hotel Booking - " + p.Hotel.HotelName
	case p.Cruise != nil:
		return "Cruise Booking - " + p.Cruise.Name
	case p.Package != nil:
		return "Package Booking - " + p.Package.Title
	}
	return ""
}
