package usecase

import (
	"context"
	"errors"
	"testing"

	"jetsetter-booking/internal/domain/entity"
)

func newTestWizard(t *testing.T, f *orchestratorFixture, steps []StepDefinition, initial CheckoutState) *CheckoutWizard {
	t.Helper()
	w, err := NewCheckoutWizard(steps, initial, f.sut, nopLogger{})
	if err != nil {
		t.Fatalf("NewCheckoutWizard: %v", err)
	}
	return w
}

// fillCruise drives a wizard through the multi-step flow up to the
// payment step with valid data.
func fillCruise(t *testing.T, w *CheckoutWizard) {
	t.Helper()
	state := cruiseState()
	w.SetContact(state.Contact)
	if err := w.Next(); err != nil {
		t.Fatalf("advance past contact: %v", err)
	}
	w.SetTravelers(state.Travelers)
	if err := w.Next(); err != nil {
		t.Fatalf("advance past travelers: %v", err)
	}
	w.SetCard(state.Card)
}

func TestCheckoutWizard_Steps(t *testing.T) {
	t.Parallel()

	t.Run("unknown product yields no wizard", func(t *testing.T) {
		f := newOrchestratorFixture(approvedOutcome(0))
		_, err := NewCheckoutWizard(FlowFor("timeshare"), CheckoutState{}, f.sut, nopLogger{})
		if !errors.Is(err, entity.ErrUnknownProductType) {
			t.Fatalf("expected ErrUnknownProductType, got %v", err)
		}
	})

	t.Run("failed guard keeps the wizard in place", func(t *testing.T) {
		f := newOrchestratorFixture(approvedOutcome(2098.00))
		w := newTestWizard(t, f, MultiStepFlow(), cruiseState())
		w.SetContact(entity.ContactInfo{FirstName: "Ava"}) // no last name, email, phone

		err := w.Next()
		var fieldErr *FieldError
		if !errors.As(err, &fieldErr) {
			t.Fatalf("expected FieldError, got %v", err)
		}
		if fieldErr.Field != "name" {
			t.Fatalf("expected name field error, got %s", fieldErr.Field)
		}
		if got := w.Phase(); got != "Contact" {
			t.Fatalf("expected wizard to stay on Contact, got %s", got)
		}
	})

	t.Run("valid guard advances", func(t *testing.T) {
		f := newOrchestratorFixture(approvedOutcome(2098.00))
		w := newTestWizard(t, f, MultiStepFlow(), cruiseState())
		w.SetContact(cruiseState().Contact)

		if err := w.Next(); err != nil {
			t.Fatalf("expected advance, got %v", err)
		}
		if got := w.Phase(); got != "Travelers" {
			t.Fatalf("expected Travelers, got %s", got)
		}
	})

	t.Run("back is rejected on the first step", func(t *testing.T) {
		f := newOrchestratorFixture(approvedOutcome(2098.00))
		w := newTestWizard(t, f, MultiStepFlow(), cruiseState())

		if err := w.Back(); err == nil {
			t.Fatalf("expected error going back from the first step")
		}
		if got := w.Phase(); got != "Contact" {
			t.Fatalf("expected Contact, got %s", got)
		}
	})

	t.Run("back returns to the previous step", func(t *testing.T) {
		f := newOrchestratorFixture(approvedOutcome(2098.00))
		w := newTestWizard(t, f, MultiStepFlow(), cruiseState())
		w.SetContact(cruiseState().Contact)
		if err := w.Next(); err != nil {
			t.Fatalf("advance: %v", err)
		}

		if err := w.Back(); err != nil {
			t.Fatalf("expected back to succeed, got %v", err)
		}
		if got := w.Phase(); got != "Contact" {
			t.Fatalf("expected Contact, got %s", got)
		}
	})

	t.Run("submit is rejected before the final step", func(t *testing.T) {
		f := newOrchestratorFixture(approvedOutcome(2098.00))
		w := newTestWizard(t, f, MultiStepFlow(), cruiseState())
		w.SetContact(cruiseState().Contact)

		_, err := w.Submit(context.Background())
		var fieldErr *FieldError
		if !errors.As(err, &fieldErr) {
			t.Fatalf("expected FieldError, got %v", err)
		}
		if f.gateway.callCount() != 0 {
			t.Fatalf("expected zero gateway calls, got %d", f.gateway.callCount())
		}
	})

	t.Run("total tracks the traveler count", func(t *testing.T) {
		f := newOrchestratorFixture(approvedOutcome(2098.00))
		w := newTestWizard(t, f, MultiStepFlow(), cruiseState())

		if got := w.Total(); got != 2098.00 {
			t.Fatalf("expected 2098.00 for two travelers, got %.2f", got)
		}
		w.SetTravelers(cruiseState().Travelers[:1])
		if got := w.Total(); got != 1049.00 {
			t.Fatalf("expected 1049.00 for one traveler, got %.2f", got)
		}
	})

	t.Run("collapsed flow reaches payment in one step", func(t *testing.T) {
		f := newOrchestratorFixture(approvedOutcome(361.50))
		state := cruiseState()
		state.Product = entity.ProductHotel
		state.Payload = entity.BookingPayload{
			Hotel: &entity.HotelPayload{HotelID: "H-9", HotelName: "Grand Palm", OfferID: "OF-1", NightlyRate: 120.50, Nights: 3},
		}
		w := newTestWizard(t, f, FlowFor(entity.ProductHotel), state)

		if got := w.Phase(); got != "GuestDetails" {
			t.Fatalf("expected GuestDetails, got %s", got)
		}
		if err := w.Next(); err != nil {
			t.Fatalf("advance past guest details: %v", err)
		}
		if got := w.Phase(); got != "Payment" {
			t.Fatalf("expected Payment, got %s", got)
		}

		record, err := w.Submit(context.Background())
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		if record.Status != entity.BookingStatusConfirmed {
			t.Fatalf("expected CONFIRMED, got %s", record.Status)
		}
	})
}

func TestCheckoutWizard_Submit(t *testing.T) {
	t.Parallel()

	t.Run("successful submit confirms and clears the card", func(t *testing.T) {
		f := newOrchestratorFixture(approvedOutcome(2098.00))
		w := newTestWizard(t, f, MultiStepFlow(), cruiseState())
		fillCruise(t, w)

		record, err := w.Submit(context.Background())
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		if got := w.Phase(); got != PhaseConfirmed {
			t.Fatalf("expected Confirmed, got %s", got)
		}
		if record.MaskedCard != "****5439" {
			t.Fatalf("expected masked card on record, got %s", record.MaskedCard)
		}
		if w.state.Card != (entity.CardInput{}) {
			t.Fatalf("expected card input cleared after submit")
		}
	})

	t.Run("second submit while in flight touches nothing", func(t *testing.T) {
		f := newOrchestratorFixture(approvedOutcome(2098.00))
		f.gateway.entered = make(chan struct{})
		f.gateway.release = make(chan struct{})
		w := newTestWizard(t, f, MultiStepFlow(), cruiseState())
		fillCruise(t, w)

		type result struct {
			record *entity.BookingRecord
			err    error
		}
		done := make(chan result, 1)
		go func() {
			record, err := w.Submit(context.Background())
			done <- result{record, err}
		}()

		<-f.gateway.entered // first charge is now in flight

		if _, err := w.Submit(context.Background()); !errors.Is(err, entity.ErrSubmitInFlight) {
			t.Fatalf("expected ErrSubmitInFlight, got %v", err)
		}
		if err := w.Next(); !errors.Is(err, entity.ErrSubmitInFlight) {
			t.Fatalf("expected Next rejected mid-submit, got %v", err)
		}
		if err := w.Back(); !errors.Is(err, entity.ErrSubmitInFlight) {
			t.Fatalf("expected Back rejected mid-submit, got %v", err)
		}

		close(f.gateway.release)
		first := <-done
		if first.err != nil {
			t.Fatalf("first submit: %v", first.err)
		}
		if first.record.Status != entity.BookingStatusConfirmed {
			t.Fatalf("expected CONFIRMED, got %s", first.record.Status)
		}
		if f.gateway.callCount() != 1 {
			t.Fatalf("expected exactly one charge, got %d", f.gateway.callCount())
		}
	})

	t.Run("submit after confirmation returns the same record", func(t *testing.T) {
		f := newOrchestratorFixture(approvedOutcome(2098.00))
		w := newTestWizard(t, f, MultiStepFlow(), cruiseState())
		fillCruise(t, w)

		first, err := w.Submit(context.Background())
		if err != nil {
			t.Fatalf("first submit: %v", err)
		}
		second, err := w.Submit(context.Background())
		if err != nil {
			t.Fatalf("second submit: %v", err)
		}
		if first != second {
			t.Fatalf("expected the confirmed record back, not a new attempt")
		}
		if f.gateway.callCount() != 1 {
			t.Fatalf("expected exactly one charge, got %d", f.gateway.callCount())
		}
	})

	t.Run("failed attempt re-opens data entry for retry", func(t *testing.T) {
		f := newOrchestratorFixture(declinedOutcome())
		w := newTestWizard(t, f, MultiStepFlow(), cruiseState())
		fillCruise(t, w)

		_, err := w.Submit(context.Background())
		if !errors.Is(err, entity.ErrGatewayDeclined) {
			t.Fatalf("expected decline, got %v", err)
		}
		if got := w.Phase(); got != PhaseFailed {
			t.Fatalf("expected Failed, got %s", got)
		}
		if w.Failure() == nil {
			t.Fatalf("expected failure recorded")
		}

		// A different card on the retry, and the gateway accepts.
		f.gateway.outcome = approvedOutcome(2098.00)
		w.SetCard(entity.CardInput{Number: "4012000098765439", Holder: "Ava Stone", Expiry: "11/28", CVV: "321"})

		record, err := w.Submit(context.Background())
		if err != nil {
			t.Fatalf("retry submit: %v", err)
		}
		if record.Status != entity.BookingStatusConfirmed {
			t.Fatalf("expected CONFIRMED on retry, got %s", record.Status)
		}
		if f.gateway.callCount() != 2 {
			t.Fatalf("expected two charges across two attempts, got %d", f.gateway.callCount())
		}
		if f.gateway.calls[0].OrderReference == f.gateway.calls[1].OrderReference {
			t.Fatalf("order reference reused across attempts")
		}
	})
}

// The fixed clock makes order references deterministic per attempt; two
// attempts inside the same millisecond must still differ by suffix.
func TestNewOrderReference_UniquePerAttempt(t *testing.T) {
	t.Parallel()

	f := newOrchestratorFixture(approvedOutcome(0))
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		ref := f.sut.NewOrderReference(entity.ProductFlight)
		if seen[ref] {
			t.Fatalf("duplicate order reference %s", ref)
		}
		seen[ref] = true
	}
}
