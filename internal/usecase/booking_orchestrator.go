package usecase

import (
	"context"
	"fmt"
	"strings"

	"jetsetter-booking/internal/domain/entity"
	"jetsetter-booking/internal/domain/repository"
	"jetsetter-booking/pkg/clock"
	"jetsetter-booking/pkg/logger"
	"jetsetter-booking/pkg/metrics"
	"jetsetter-booking/pkg/utils"

	"github.com/google/uuid"
)

// BookingOrchestrator sequences one checkout attempt: local validation,
// then the charge, then the booking record. The ordering is strict —
// nothing is persisted before the charge completes, and the gateway is
// never called twice for the same order reference.
type BookingOrchestrator struct {
	gateway   repository.PaymentGateway
	store     repository.BookingStore
	archive   repository.BookingArchive
	inventory repository.InventoryClient
	mailer    repository.ConfirmationMailer
	clock     clock.Clock
	metrics   *metrics.Metrics
	logger    logger.Logger
}

// NewBookingOrchestrator creates a booking orchestrator. The archive and
// mailer are optional; pass nil to skip archiving or confirmation email.
func NewBookingOrchestrator(
	gateway repository.PaymentGateway,
	store repository.BookingStore,
	archive repository.BookingArchive,
	inventory repository.InventoryClient,
	mailer repository.ConfirmationMailer,
	clk clock.Clock,
	m *metrics.Metrics,
	logger logger.Logger,
) *BookingOrchestrator {
	return &BookingOrchestrator{
		gateway:   gateway,
		store:     store,
		archive:   archive,
		inventory: inventory,
		mailer:    mailer,
		clock:     clk,
		metrics:   m,
		logger:    logger,
	}
}

// NewOrderReference generates the client-side idempotency key for one
// attempt: product prefix, millisecond timestamp, random suffix. A new
// attempt always gets a new reference; after an indeterminate outcome
// the old one is retired, never reused.
func (o *BookingOrchestrator) NewOrderReference(product entity.ProductType) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:9])
	return fmt.Sprintf("%s-%d-%s", strings.ToUpper(string(product)), o.clock.Now().UnixMilli(), suffix)
}

// CompleteBooking runs one checkout attempt end to end:
//
//  1. generate the order reference before any network call
//  2. validate card and expiry locally; failure means zero gateway calls
//  3. charge through the gateway, reference embedded
//  4. hotel and package only: confirm with the remote inventory service
//  5. persist the booking record, masked card and outcome included
//
// A gateway decline or transport failure returns an error and writes
// nothing. A local write failure after a successful charge is logged
// and counted but the confirmed record is still returned: the charge
// happened, only trip history may be missing the entry.
func (o *BookingOrchestrator) CompleteBooking(ctx context.Context, state CheckoutState) (*entity.BookingRecord, error) {
	product := state.Payload.Product()
	if !product.Valid() {
		return nil, fmt.Errorf("%w: empty payload", entity.ErrUnknownProductType)
	}

	total := ComputeTotal(state.Payload, len(state.Travelers))
	ref := o.NewOrderReference(product)
	log := o.logger.With("orderReference", ref, "product", string(product))

	expiryMonth, expiryYear, err := utils.ParseExpiry(state.Card.Expiry)
	if err != nil {
		return nil, err
	}
	if !utils.ValidateCardNumber(state.Card.Number) {
		return nil, entity.ErrInvalidCard
	}

	log.Info("Starting booking", "amount", total, "currency", state.Currency)

	req := &entity.PaymentRequest{
		Amount:         total,
		Currency:       state.Currency,
		OrderReference: ref,
		CustomerName:   state.Contact.FullName(),
		CustomerEmail:  state.Contact.Email,
		CustomerPhone:  state.Contact.Phone,
		CardNumber:     state.Card.Number,
		CardHolder:     state.Card.Holder,
		ExpiryMonth:    expiryMonth,
		ExpiryYear:     expiryYear,
		CVV:            state.Card.CVV,
		Description:    state.Payload.Summary(),
		BookingType:    product,
	}

	started := o.clock.Now()
	outcome, err := o.gateway.ProcessPayment(ctx, req)
	if o.metrics != nil {
		o.metrics.PaymentLatency.Observe(o.clock.Now().Sub(started).Seconds())
	}
	if err != nil {
		log.Error("Charge failed", "error", err)
		o.countError("process_payment")
		return nil, fmt.Errorf("charge for order %s: %w", ref, err)
	}
	if !outcome.Success {
		log.Warn("Payment declined", "status", outcome.Status, "message", outcome.Message)
		if o.metrics != nil {
			o.metrics.PaymentsDeclined.Inc()
		}
		return nil, fmt.Errorf("%w: %s", entity.ErrGatewayDeclined, outcome.Message)
	}
	if o.metrics != nil {
		o.metrics.PaymentsProcessed.Inc()
	}
	log.Info("Payment approved", "transactionId", outcome.TransactionID)

	bookingRef, err := o.confirmInventory(ctx, ref, total, state)
	if err != nil {
		log.Error("Inventory confirmation failed after successful charge", "error", err)
		o.countError("create_booking")
		return nil, fmt.Errorf("confirm booking for order %s: %w", ref, err)
	}

	record := &entity.BookingRecord{
		OrderReference:   ref,
		BookingReference: bookingRef,
		Product:          product,
		Payload:          state.Payload,
		Contact:          state.Contact,
		Travelers:        state.Travelers,
		MaskedCard:       utils.MaskCardNumber(state.Card.Number),
		TotalAmount:      total,
		Currency:         state.Currency,
		Status:           entity.BookingStatusConfirmed,
		Payment:          outcome,
		CreatedAt:        o.clock.Now(),
	}

	if err := o.store.Save(ctx, record); err != nil {
		// The charge succeeded; losing the local record must not fail
		// the booking. Trip history may be missing this entry.
		log.Error("Failed to save booking record", "error", err)
		o.countError("save_booking")
	} else {
		if o.metrics != nil {
			o.metrics.BookingsSaved.Inc()
		}
		log.Info("Booking record saved", "bookingReference", bookingRef)
	}

	if o.archive != nil {
		if err := o.archive.Append(ctx, record); err != nil {
			log.Error("Failed to archive booking", "error", err)
			o.countError("archive_booking")
		}
	}

	if o.mailer != nil {
		if err := o.mailer.SendConfirmation(ctx, record); err != nil {
			log.Warn("Failed to send confirmation email", "error", err)
			o.countError("send_confirmation")
		}
	}

	return record, nil
}

// confirmInventory confirms hotel and package bookings with the remote
// inventory service after payment. Flight and cruise bookings are
// authoritative locally; flights reuse the PNR when the offer has one.
func (o *BookingOrchestrator) confirmInventory(ctx context.Context, ref string, total float64, state CheckoutState) (string, error) {
	product := state.Payload.Product()
	switch product {
	case entity.ProductHotel, entity.ProductPackage:
		conf, err := o.inventory.CreateBooking(ctx, &entity.InventoryBookingRequest{
			Product:        product,
			OrderReference: ref,
			Payload:        state.Payload,
			Contact:        state.Contact,
			Travelers:      state.Travelers,
			TotalAmount:    total,
			Currency:       state.Currency,
		})
		if err != nil {
			return "", err
		}
		return conf.BookingReference, nil
	case entity.ProductFlight:
		if state.Payload.Flight.PNR != "" {
			return state.Payload.Flight.PNR, nil
		}
	}
	return ref, nil
}

func (o *BookingOrchestrator) countError(operation string) {
	if o.metrics != nil {
		o.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	}
}
