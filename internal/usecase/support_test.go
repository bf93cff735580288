package usecase

import (
	"context"
	"sync"

	"jetsetter-booking/internal/domain/entity"
	"jetsetter-booking/pkg/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Fatal(msg string, keysAndValues ...interface{}) {}
func (n nopLogger) With(keysAndValues ...interface{}) logger.Logger {
	return n
}

type fakeGateway struct {
	mu      sync.Mutex
	calls   []entity.PaymentRequest
	outcome *entity.PaymentOutcome
	err     error

	// When set, ProcessPayment signals entered and then waits for
	// release, so tests can hold a charge in flight.
	entered chan struct{}
	release chan struct{}
}

func (g *fakeGateway) ProcessPayment(ctx context.Context, req *entity.PaymentRequest) (*entity.PaymentOutcome, error) {
	g.mu.Lock()
	g.calls = append(g.calls, *req)
	g.mu.Unlock()

	if g.entered != nil {
		g.entered <- struct{}{}
		<-g.release
	}
	if g.err != nil {
		return nil, g.err
	}
	out := *g.outcome
	return &out, nil
}

func (g *fakeGateway) CheckPaymentStatus(ctx context.Context, transactionID string) (*entity.PaymentOutcome, error) {
	return g.outcome, g.err
}

func (g *fakeGateway) RefundPayment(ctx context.Context, transactionID string, amount float64, reason string) error {
	return g.err
}

func (g *fakeGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

type fakeStore struct {
	mu      sync.Mutex
	records map[entity.ProductType]*entity.BookingRecord
	saveErr error
	findErr map[entity.ProductType]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		records: make(map[entity.ProductType]*entity.BookingRecord),
		findErr: make(map[entity.ProductType]error),
	}
}

func (s *fakeStore) Save(ctx context.Context, record *entity.BookingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.records[record.Product] = record
	return nil
}

func (s *fakeStore) Find(ctx context.Context, product entity.ProductType) (*entity.BookingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.findErr[product]; err != nil {
		return nil, err
	}
	record, ok := s.records[product]
	if !ok {
		return nil, entity.ErrBookingNotFound
	}
	return record, nil
}

type fakeArchive struct {
	mu   sync.Mutex
	rows []*entity.BookingRecord
	err  error
}

func (a *fakeArchive) Append(ctx context.Context, record *entity.BookingRecord) error {
	if a.err != nil {
		return a.err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rows = append(a.rows, record)
	return nil
}

func (a *fakeArchive) ListByProduct(ctx context.Context, product entity.ProductType, limit int) ([]*entity.BookingRecord, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []*entity.BookingRecord
	for _, r := range a.rows {
		if r.Product == product {
			out = append(out, r)
		}
	}
	return out, a.err
}

type fakeInventory struct {
	mu    sync.Mutex
	calls []entity.InventoryBookingRequest
	conf  *entity.InventoryConfirmation
	err   error
}

func (i *fakeInventory) CreateBooking(ctx context.Context, req *entity.InventoryBookingRequest) (*entity.InventoryConfirmation, error) {
	i.mu.Lock()
	i.calls = append(i.calls, *req)
	i.mu.Unlock()
	if i.err != nil {
		return nil, i.err
	}
	return i.conf, nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []*entity.BookingRecord
	err  error
}

func (m *fakeMailer) SendConfirmation(ctx context.Context, record *entity.BookingRecord) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, record)
	return nil
}
