package templates

import (
	"fmt"
	"strings"

	"jetsetter-booking/internal/domain/entity"
)

// ConfirmationSubject builds the subject line for a booking
// confirmation email.
func ConfirmationSubject(record *entity.BookingRecord) string {
	return fmt.Sprintf("Booking Confirmed - %s (%s)", record.Payload.Summary(), record.OrderReference)
}

// ConfirmationBody renders the plain-text confirmation email for a
// completed booking. Card data appears only in masked form.
func ConfirmationBody(record *entity.BookingRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dear %s,\n\n", record.Contact.FullName())
	fmt.Fprintf(&b, "Your booking is confirmed.\n\n")
	fmt.Fprintf(&b, "Order reference: %s\n", record.OrderReference)
	if record.BookingReference != record.OrderReference {
		fmt.Fprintf(&b, "Booking reference: %s\n", record.BookingReference)
	}
	b.WriteString(productDetails(record))
	fmt.Fprintf(&b, "\nTotal charged: %.2f %s (card %s)\n", record.TotalAmount, record.Currency, record.MaskedCard)
	if record.Payment != nil {
		fmt.Fprintf(&b, "Transaction id: %s\n", record.Payment.TransactionID)
	}
	if len(record.Travelers) > 0 {
		b.WriteString("\nTravelers:\n")
		for _, t := range record.Travelers {
			fmt.Fprintf(&b, "  - %s %s\n", t.FirstName, t.LastName)
		}
	}
	b.WriteString("\nSafe travels,\nThe Jetsetter Team\n")

	return b.String()
}

func productDetails(record *entity.BookingRecord) string {
	var b strings.Builder
	switch {
	case record.Payload.Flight != nil:
		f := record.Payload.Flight
		fmt.Fprintf(&b, "Flight: %s %s, %s to %s\n", f.Airline, f.FlightNumber, f.Origin, f.Destination)
		fmt.Fprintf(&b, "Departure: %s\n", f.DepartureAt.Format("Mon, 02 Jan 2006 15:04 MST"))
	case record.Payload.Hotel != nil:
		h := record.Payload.Hotel
		fmt.Fprintf(&b, "Hotel: %s\n", h.HotelName)
		fmt.Fprintf(&b, "Stay: %s to %s (%d nights)\n", h.CheckInDate, h.CheckOutDate, h.Nights)
	case record.Payload.Cruise != nil:
		c := record.Payload.Cruise
		fmt.Fprintf(&b, "Cruise: %s aboard %s\n", c.Name, c.Ship)
		fmt.Fprintf(&b, "Sailing: %d nights from %s, departing %s\n",
			c.Nights, c.DeparturePort, c.DepartureDate.Format("Mon, 02 Jan 2006"))
	case record.Payload.Package != nil:
		p := record.Payload.Package
		fmt.Fprintf(&b, "Package: %s, %s (%s)\n", p.Title, p.Location, p.Duration)
	}
	return b.String()
}
