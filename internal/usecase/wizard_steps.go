package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"jetsetter-booking/internal/domain/entity"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-]{6,}$`)
)

// ValidateContact guards the contact step: full name, well-formed email
// and phone.
func ValidateContact(s *CheckoutState) error {
	if strings.TrimSpace(s.Contact.FirstName) == "" || strings.TrimSpace(s.Contact.LastName) == "" {
		return &FieldError{Field: "name", Reason: "please enter your full name"}
	}
	if !emailPattern.MatchString(s.Contact.Email) {
		return &FieldError{Field: "email", Reason: "please enter a valid email address"}
	}
	if !phonePattern.MatchString(s.Contact.Phone) {
		return &FieldError{Field: "phone", Reason: "please enter a valid phone number"}
	}
	return nil
}

// ValidateTravelers guards the travelers step: every traveler needs a
// full name, a positive age and a nationality.
func ValidateTravelers(s *CheckoutState) error {
	if len(s.Travelers) == 0 {
		return &FieldError{Field: "travelers", Reason: "at least one traveler is required"}
	}
	for i, t := range s.Travelers {
		if strings.TrimSpace(t.FirstName) == "" || strings.TrimSpace(t.LastName) == "" ||
			t.Age <= 0 || strings.TrimSpace(t.Nationality) == "" {
			return &FieldError{
				Field:  fmt.Sprintf("traveler %d", i+1),
				Reason: "please complete all traveler details",
			}
		}
	}
	return nil
}

// ValidateGuestDetails guards the collapsed single step used by hotel
// and package flows, where contact and guest info are collected together.
func ValidateGuestDetails(s *CheckoutState) error {
	if err := ValidateContact(s); err != nil {
		return err
	}
	return ValidateTravelers(s)
}

// ValidatePayment guards the payment step: all card fields present.
// Luhn and expiry-format checks run in the orchestrator's pre-flight.
func ValidatePayment(s *CheckoutState) error {
	switch {
	case strings.TrimSpace(s.Card.Number) == "":
		return &FieldError{Field: "cardNumber", Reason: "please enter your card number"}
	case strings.TrimSpace(s.Card.Holder) == "":
		return &FieldError{Field: "cardHolder", Reason: "please enter the card holder name"}
	case strings.TrimSpace(s.Card.Expiry) == "":
		return &FieldError{Field: "expiryDate", Reason: "please enter the expiry date"}
	case strings.TrimSpace(s.Card.CVV) == "":
		return &FieldError{Field: "cvv", Reason: "please enter the CVV"}
	}
	return nil
}

// MultiStepFlow is the three-step flow used by flight and cruise
// checkouts: contact, then travelers, then payment.
func MultiStepFlow() []StepDefinition {
	return []StepDefinition{
		{Name: "Contact", Validate: ValidateContact},
		{Name: "Travelers", Validate: ValidateTravelers},
		{Name: "Payment", Validate: ValidatePayment},
	}
}

// CollapsedFlow is the two-step flow used by hotel and package
// checkouts, where guest details are collected on a single step.
func CollapsedFlow() []StepDefinition {
	return []StepDefinition{
		{Name: "GuestDetails", Validate: ValidateGuestDetails},
		{Name: "Payment", Validate: ValidatePayment},
	}
}

// FlowFor returns the step definitions for a product type.
func FlowFor(product entity.ProductType) []StepDefinition {
	switch product {
	case entity.ProductFlight, entity.ProductCruise:
		return MultiStepFlow()
	case entity.ProductHotel, entity.ProductPackage:
		return CollapsedFlow()
	}
	return nil
}
