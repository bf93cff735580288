package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"jetsetter-booking/internal/domain/entity"
	"jetsetter-booking/internal/infrastructure/router"
	"jetsetter-booking/internal/usecase"
	"jetsetter-booking/pkg/logger"
)

// BookingHandler exposes the checkout and trip-history API consumed by
// the mobile screens.
type BookingHandler struct {
	router       *router.ProductRouter
	orchestrator *usecase.BookingOrchestrator
	aggregator   *usecase.TripAggregator
	logger       logger.Logger
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(r *router.ProductRouter, o *usecase.BookingOrchestrator, a *usecase.TripAggregator, logger logger.Logger) *BookingHandler {
	return &BookingHandler{
		router:       r,
		orchestrator: o,
		aggregator:   a,
		logger:       logger,
	}
}

// CheckoutRequest carries a full checkout attempt: the selected offer,
// the data every wizard step collects, and the card input. The card is
// used for the charge and discarded.
type CheckoutRequest struct {
	Product   entity.ProductType    `json:"product"`
	Payload   entity.BookingPayload `json:"payload"`
	Currency  string                `json:"currency"`
	Contact   entity.ContactInfo    `json:"contact"`
	Travelers []entity.Traveler     `json:"travelers"`
	Card      entity.CardInput      `json:"card"`
}

// Checkout runs the full wizard for one attempt: every step guard in
// order, then the single-shot submit.
func (h *BookingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	steps := h.router.Flow(req.Product)
	wizard, err := usecase.NewCheckoutWizard(steps, usecase.CheckoutState{
		Product:  req.Product,
		Payload:  req.Payload,
		Currency: req.Currency,
	}, h.orchestrator, h.logger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	wizard.SetContact(req.Contact)
	wizard.SetTravelers(req.Travelers)
	wizard.SetCard(req.Card)

	// Walk the data-entry steps; any guard failure stops the walk.
	for i := 0; i < len(steps)-1; i++ {
		if err := wizard.Next(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	record, err := wizard.Submit(r.Context())
	if err != nil {
		h.writeCheckoutFailure(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"booking": record,
	})
}

// Trips returns the aggregated trip history, optionally filtered by
// status tab and product type.
func (h *BookingHandler) Trips(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	entries, err := h.aggregator.LoadAllBookings(r.Context())
	if err != nil {
		h.logger.Error("Failed to load bookings", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load trips")
		return
	}

	q := r.URL.Query()
	entries = usecase.FilterBookings(entries, q.Get("status"), q.Get("type"))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"trips":   entries,
	})
}

// The wizard never leaks raw errors to the user; each failure class
// maps to one actionable message.
func (h *BookingHandler) writeCheckoutFailure(w http.ResponseWriter, err error) {
	var fieldErr *usecase.FieldError
	switch {
	case errors.As(err, &fieldErr):
		writeError(w, http.StatusBadRequest, fieldErr.Error())
	case errors.Is(err, entity.ErrExpiryFormat):
		writeError(w, http.StatusBadRequest, "Please enter the expiry date in MM/YY format")
	case errors.Is(err, entity.ErrInvalidCard), errors.Is(err, entity.ErrMissingField):
		writeError(w, http.StatusBadRequest, "Please check your card details and try again")
	case errors.Is(err, entity.ErrGatewayDeclined):
		writeError(w, http.StatusPaymentRequired, "Payment was declined. Please check your card details and try again")
	case errors.Is(err, entity.ErrGatewayUnreachable):
		writeError(w, http.StatusBadGateway, "We could not reach the payment provider. Please try again")
	case errors.Is(err, entity.ErrSubmitInFlight):
		writeError(w, http.StatusConflict, "Your booking is already being processed")
	default:
		h.logger.Error("Checkout failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred during booking. Please try again")
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
