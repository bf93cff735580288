package usecase

import (
	"context"
	"fmt"
	"sync"

	"jetsetter-booking/internal/domain/entity"
	"jetsetter-booking/pkg/logger"
)

// Wizard phases. Data-entry steps are indexed by position within the
// flow definition; the phases below are the states past data entry.
const (
	PhaseSubmitting = "Submitting"
	PhaseConfirmed  = "Confirmed"
	PhaseFailed     = "Failed"
)

// FieldError is a step-guard failure tied to one input field. The
// wizard surfaces it and stays on the current step.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// CheckoutState is everything collected across the wizard's data-entry
// steps. CardInput lives here and nowhere else; it is discarded after
// submission.
type CheckoutState struct {
	Product   entity.ProductType
	Payload   entity.BookingPayload
	Currency  string
	Contact   entity.ContactInfo
	Travelers []entity.Traveler
	Card      entity.CardInput
}

// StepDefinition is one data-entry step of a product flow: a display
// name and the guard that must pass before the wizard advances.
type StepDefinition struct {
	Name     string
	Validate func(*CheckoutState) error
}

// CheckoutWizard drives the ordered collection of contact, traveler and
// payment data for one checkout attempt. One generic sequencer serves
// all four product flows; the flow definition supplies the steps.
//
// Advancing requires the current step's guard to pass. Going back is
// allowed only between data-entry steps. Submit is single-shot: once a
// charge is in flight, further submits are rejected until the attempt
// reaches Confirmed or Failed.
type CheckoutWizard struct {
	mu sync.Mutex

	steps []StepDefinition
	state CheckoutState

	step       int
	submitting bool
	phase      string // "" while in data entry

	record  *entity.BookingRecord
	failure error

	orchestrator *BookingOrchestrator
	logger       logger.Logger
}

// NewCheckoutWizard creates a wizard for one checkout attempt. The
// initial state carries the selected offer handed over by the search
// screen.
func NewCheckoutWizard(steps []StepDefinition, initial CheckoutState, orchestrator *BookingOrchestrator, logger logger.Logger) (*CheckoutWizard, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: %q", entity.ErrUnknownProductType, initial.Product)
	}
	if initial.Currency == "" {
		initial.Currency = "USD"
	}
	return &CheckoutWizard{
		steps:        steps,
		state:        initial,
		orchestrator: orchestrator,
		logger:       logger,
	}, nil
}

// Phase reports where the wizard is: a data-entry step name, or
// Submitting / Confirmed / Failed.
func (w *CheckoutWizard) Phase() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.phase != "" {
		return w.phase
	}
	return w.steps[w.step].Name
}

// SetContact replaces the contact info. Ignored once submission began.
func (w *CheckoutWizard) SetContact(c entity.ContactInfo) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.entering() {
		w.state.Contact = c
	}
}

// SetTravelers replaces the traveler list. Ignored once submission began.
func (w *CheckoutWizard) SetTravelers(t []entity.Traveler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.entering() {
		w.state.Travelers = t
	}
}

// SetCard replaces the card input. Ignored once submission began.
func (w *CheckoutWizard) SetCard(c entity.CardInput) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.entering() {
		w.state.Card = c
	}
}

// Total recomputes the amount for the current party size. The same
// function produces the amount submitted to the gateway, so the
// displayed and charged totals cannot diverge.
func (w *CheckoutWizard) Total() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return ComputeTotal(w.state.Payload, len(w.state.Travelers))
}

// Next validates the current step and advances to the following one.
// A failed guard keeps the wizard in place and returns the field error.
// The last data-entry step has no Next; submission leaves it.
func (w *CheckoutWizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.entering() {
		return entity.ErrSubmitInFlight
	}
	if err := w.steps[w.step].Validate(&w.state); err != nil {
		return err
	}
	if w.step < len(w.steps)-1 {
		w.step++
	}
	return nil
}

// Back moves to the previous data-entry step. It is rejected on the
// first step and once submission has begun.
func (w *CheckoutWizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.entering() {
		return entity.ErrSubmitInFlight
	}
	if w.step == 0 {
		return &FieldError{Field: "step", Reason: "already on the first step"}
	}
	w.step--
	return nil
}

// Submit validates the final step and runs the booking through the
// orchestrator. A second Submit while the first is in flight returns
// entity.ErrSubmitInFlight without touching the gateway.
func (w *CheckoutWizard) Submit(ctx context.Context) (*entity.BookingRecord, error) {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return nil, entity.ErrSubmitInFlight
	}
	if w.phase == PhaseConfirmed {
		record := w.record
		w.mu.Unlock()
		return record, nil
	}
	if w.step != len(w.steps)-1 {
		w.mu.Unlock()
		return nil, &FieldError{Field: "step", Reason: "complete all steps before submitting"}
	}
	if err := w.steps[w.step].Validate(&w.state); err != nil {
		w.mu.Unlock()
		return nil, err
	}
	w.submitting = true
	w.phase = PhaseSubmitting
	state := w.state
	w.mu.Unlock()

	record, err := w.orchestrator.CompleteBooking(ctx, state)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false
	w.state.Card = entity.CardInput{}
	if err != nil {
		w.phase = PhaseFailed
		w.failure = err
		return nil, err
	}
	w.phase = PhaseConfirmed
	w.record = record
	return record, nil
}

// Failure returns the error of a failed attempt, nil otherwise.
func (w *CheckoutWizard) Failure() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.failure
}

// A failed attempt re-opens data entry: the user fixes the input and
// retries, and the orchestrator issues a fresh order reference for the
// new attempt.
func (w *CheckoutWizard) entering() bool {
	return (w.phase == "" || w.phase == PhaseFailed) && !w.submitting
}
