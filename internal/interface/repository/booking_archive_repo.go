package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jetsetter-booking/internal/domain/entity"
	"jetsetter-booking/internal/domain/repository"

	"gorm.io/gorm"
)

// GormBookingArchive implements the append-only booking history on
// Postgres. Where the slot store keeps only the latest booking per
// product type, the archive keeps every confirmed booking, keyed by
// order reference.
type GormBookingArchive struct {
	db *gorm.DB
}

// NewGormBookingArchive creates a new GORM booking archive.
func NewGormBookingArchive(db *gorm.DB) repository.BookingArchive {
	return &GormBookingArchive{
		db: db,
	}
}

// ArchivedBookings GORM model for database mapping
type ArchivedBookings struct {
	ID                uint    `gorm:"primaryKey"`
	OrderReference    string  `gorm:"column:order_reference;unique"`
	BookingReference  string  `gorm:"column:booking_reference"`
	Product           string  `gorm:"column:product;index"`
	Payload           string  `gorm:"column:payload;type:jsonb"`
	ContactEmail      string  `gorm:"column:contact_email"`
	MaskedCard        string  `gorm:"column:masked_card"`
	TotalAmount       float64 `gorm:"column:total_amount"`
	Currency          string  `gorm:"column:currency"`
	Status            string  `gorm:"column:status"`
	TransactionID     string  `gorm:"column:transaction_id"`
	AuthorizationCode string  `gorm:"column:authorization_code"`
	BookedAt          time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName overrides the default table name
func (ArchivedBookings) TableName() string {
	return "t_booking_archive"
}

// Append inserts one archived row per confirmed booking. Order
// references are unique per attempt, so a second insert for the same
// reference fails instead of overwriting.
func (a *GormBookingArchive) Append(ctx context.Context, record *entity.BookingRecord) error {
	payloadJSON, err := json.Marshal(record.Payload)
	if err != nil {
		return fmt.Errorf("marshal booking payload: %w", err)
	}

	row := ArchivedBookings{
		OrderReference:   record.OrderReference,
		BookingReference: record.BookingReference,
		Product:          string(record.Product),
		Payload:          string(payloadJSON),
		ContactEmail:     record.Contact.Email,
		MaskedCard:       record.MaskedCard,
		TotalAmount:      record.TotalAmount,
		Currency:         record.Currency,
		Status:           record.Status,
		BookedAt:         record.CreatedAt,
	}
	if record.Payment != nil {
		row.TransactionID = record.Payment.TransactionID
		row.AuthorizationCode = record.Payment.AuthorizationCode
	}

	if result := a.db.WithContext(ctx).Create(&row); result.Error != nil {
		return fmt.Errorf("archive booking %s: %w", record.OrderReference, result.Error)
	}
	return nil
}

// ListByProduct returns archived bookings of one product type, newest
// first.
func (a *GormBookingArchive) ListByProduct(ctx context.Context, product entity.ProductType, limit int) ([]*entity.BookingRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	var rows []ArchivedBookings
	result := a.db.WithContext(ctx).
		Where("product = ?", string(product)).
		Order("booked_at DESC").
		Limit(limit).
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.BookingRecord, 0, len(rows))
	for _, row := range rows {
		var payload entity.BookingPayload
		if err := json.Unmarshal([]byte(row.Payload), &payload); err != nil {
			// A corrupt archived payload loses its detail, not the row.
			payload = entity.BookingPayload{}
		}
		record := &entity.BookingRecord{
			OrderReference:   row.OrderReference,
			BookingReference: row.BookingReference,
			Product:          entity.ProductType(row.Product),
			Payload:          payload,
			Contact:          entity.ContactInfo{Email: row.ContactEmail},
			MaskedCard:       row.MaskedCard,
			TotalAmount:      row.TotalAmount,
			Currency:         row.Currency,
			Status:           row.Status,
			CreatedAt:        row.BookedAt,
		}
		if row.TransactionID != "" {
			record.Payment = &entity.PaymentOutcome{
				Success:           true,
				Status:            entity.PaymentStatusApproved,
				TransactionID:     row.TransactionID,
				AuthorizationCode: row.AuthorizationCode,
				Amount:            row.TotalAmount,
				Currency:          row.Currency,
			}
		}
		records = append(records, record)
	}
	return records, nil
}
