package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"jetsetter-booking/internal/domain/entity"
	"jetsetter-booking/internal/domain/repository"
	"jetsetter-booking/pkg/logger"
)

// InventoryRepository is the HTTP client for the remote booking and
// inventory service. Hotel and package bookings are confirmed with it
// after payment; it is never called before the charge completes.
type InventoryRepository struct {
	logger      logger.Logger
	httpClient  *http.Client
	baseURL     string
	bearerToken string
}

// NewInventoryRepository creates a new inventory service client.
func NewInventoryRepository(baseURL, bearerToken string, timeout time.Duration, logger logger.Logger) repository.InventoryClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &InventoryRepository{
		logger:      logger,
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		bearerToken: bearerToken,
	}
}

// CreateBooking confirms a paid booking with the inventory service and
// returns the remote booking reference.
func (r *InventoryRepository) CreateBooking(ctx context.Context, req *entity.InventoryBookingRequest) (*entity.InventoryConfirmation, error) {
	var path string
	switch req.Product {
	case entity.ProductHotel:
		path = "/hotels/booking"
	case entity.ProductPackage:
		path = "/packages/booking"
	default:
		return nil, fmt.Errorf("%w: inventory confirmation not supported for %q", entity.ErrUnknownProductType, req.Product)
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal booking request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("build booking request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+r.bearerToken)
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send booking request: %w", err)
	}
	defer httpResp.Body.Close()

	var response struct {
		Success bool                         `json:"success"`
		Booking entity.InventoryConfirmation `json:"booking"`
		Message string                       `json:"message"`
	}
	if err := json.NewDecoder(httpResp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode booking response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK && httpResp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("inventory service returned status %d: %s", httpResp.StatusCode, response.Message)
	}
	if !response.Success {
		return nil, fmt.Errorf("inventory service rejected booking: %s", response.Message)
	}

	r.logger.Info("Inventory booking confirmed",
		"orderReference", req.OrderReference,
		"bookingReference", response.Booking.BookingReference,
		"status", response.Booking.Status)

	return &response.Booking, nil
}
