package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"jetsetter-booking/internal/domain/entity"
	"jetsetter-booking/internal/domain/repository"
	"jetsetter-booking/pkg/clock"
	"jetsetter-booking/pkg/logger"
	"jetsetter-booking/pkg/utils"
)

// ArcPayRepository is the HTTP client for the ARC Pay card gateway. It
// performs exactly one request per charge and never retries; a retry
// without a fresh order reference risks a double charge, so retrying is
// the caller's decision with a new reference.
//
// Full card numbers and CVVs travel only in the request body; every
// log line and error message carries the masked form.
type ArcPayRepository struct {
	logger     logger.Logger
	clock      clock.Clock
	httpClient *http.Client

	baseURL    string
	merchantID string
	username   string
	password   string
}

// NewArcPayRepository creates a new ARC Pay gateway client.
func NewArcPayRepository(baseURL, merchantID, username, password string, timeout time.Duration, clk clock.Clock, logger logger.Logger) repository.PaymentGateway {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ArcPayRepository{
		logger:     logger,
		clock:      clk,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		merchantID: merchantID,
		username:   username,
		password:   password,
	}
}

type arcPayCard struct {
	Number      string `json:"number"`
	Holder      string `json:"holder"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	CVV         string `json:"cvv"`
}

type arcPayCustomer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type arcPayProcessRequest struct {
	MerchantID      string            `json:"merchantId"`
	TransactionType string            `json:"transactionType"`
	Amount          string            `json:"amount"`
	Currency        string            `json:"currency"`
	OrderReference  string            `json:"orderReference"`
	Customer        arcPayCustomer    `json:"customer"`
	Card            arcPayCard        `json:"card"`
	Description     string            `json:"description,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

type arcPayProcessResponse struct {
	Status            string `json:"status"`
	TransactionID     string `json:"transactionId"`
	AuthorizationCode string `json:"authorizationCode"`
	Amount            string `json:"amount"`
	Currency          string `json:"currency"`
	Message           string `json:"message"`
}

// ProcessPayment submits one SALE transaction and normalizes the
// gateway's response. APPROVED and SUCCESS map to a successful outcome;
// any other status is a decline carrying the gateway's message.
func (r *ArcPayRepository) ProcessPayment(ctx context.Context, req *entity.PaymentRequest) (*entity.PaymentOutcome, error) {
	if err := validatePaymentRequest(req); err != nil {
		return nil, err
	}
	if !utils.ValidateCardNumber(req.CardNumber) {
		return nil, entity.ErrInvalidCard
	}

	body := arcPayProcessRequest{
		MerchantID:      r.merchantID,
		TransactionType: "SALE",
		Amount:          strconv.FormatFloat(req.Amount, 'f', 2, 64),
		Currency:        req.Currency,
		OrderReference:  req.OrderReference,
		Customer: arcPayCustomer{
			Name:  req.CustomerName,
			Email: req.CustomerEmail,
			Phone: req.CustomerPhone,
		},
		Card: arcPayCard{
			Number:      stripSpaces(req.CardNumber),
			Holder:      req.CardHolder,
			ExpiryMonth: fmt.Sprintf("%02d", req.ExpiryMonth),
			ExpiryYear:  strconv.Itoa(req.ExpiryYear),
			CVV:         req.CVV,
		},
		Description: req.Description,
		Metadata: map[string]string{
			"bookingType": string(req.BookingType),
			"timestamp":   r.clock.Now().Format(time.RFC3339),
		},
	}

	r.logger.Info("Submitting payment",
		"orderReference", req.OrderReference,
		"amount", body.Amount,
		"currency", req.Currency,
		"card", utils.MaskCardNumber(req.CardNumber))

	var resp arcPayProcessResponse
	statusCode, err := r.post(ctx, "/payment/process", body, &resp)
	if err != nil {
		return nil, err
	}

	outcome := &entity.PaymentOutcome{
		Status:      resp.Status,
		Message:     resp.Message,
		Currency:    resp.Currency,
		ProcessedAt: r.clock.Now(),
	}
	if resp.Amount != "" {
		outcome.Amount, _ = strconv.ParseFloat(resp.Amount, 64)
	}

	if statusCode < 200 || statusCode >= 300 {
		if outcome.Message == "" {
			outcome.Message = fmt.Sprintf("gateway returned status %d", statusCode)
		}
		r.logger.Warn("Payment rejected by gateway",
			"orderReference", req.OrderReference,
			"httpStatus", statusCode,
			"message", outcome.Message)
		return outcome, nil
	}

	switch resp.Status {
	case entity.PaymentStatusApproved, entity.PaymentStatusSuccess:
		outcome.Success = true
		outcome.TransactionID = resp.TransactionID
		outcome.AuthorizationCode = resp.AuthorizationCode
		if outcome.Message == "" {
			outcome.Message = "Payment successful"
		}
		r.logger.Info("Payment approved",
			"orderReference", req.OrderReference,
			"transactionId", resp.TransactionID)
	default:
		if outcome.Message == "" {
			outcome.Message = "Payment declined"
		}
		r.logger.Warn("Payment declined",
			"orderReference", req.OrderReference,
			"status", resp.Status,
			"message", outcome.Message)
	}

	return outcome, nil
}

// CheckPaymentStatus queries the gateway for a transaction's current
// state, used to reconcile an indeterminate outcome before retrying.
func (r *ArcPayRepository) CheckPaymentStatus(ctx context.Context, transactionID string) (*entity.PaymentOutcome, error) {
	url := fmt.Sprintf("%s/payment/status/%s", r.baseURL, transactionID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build status request: %w", err)
	}
	httpReq.SetBasicAuth(r.username, r.password)
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrGatewayUnreachable, err)
	}
	defer httpResp.Body.Close()

	var resp arcPayProcessResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode status response: %w", err)
	}

	outcome := &entity.PaymentOutcome{
		Status:            resp.Status,
		TransactionID:     resp.TransactionID,
		AuthorizationCode: resp.AuthorizationCode,
		Message:           resp.Message,
		Currency:          resp.Currency,
		ProcessedAt:       r.clock.Now(),
	}
	outcome.Success = resp.Status == entity.PaymentStatusApproved || resp.Status == entity.PaymentStatusSuccess
	if resp.Amount != "" {
		outcome.Amount, _ = strconv.ParseFloat(resp.Amount, 64)
	}
	return outcome, nil
}

// RefundPayment requests a refund for a settled transaction.
func (r *ArcPayRepository) RefundPayment(ctx context.Context, transactionID string, amount float64, reason string) error {
	if reason == "" {
		reason = "Customer request"
	}
	body := map[string]string{
		"merchantId":    r.merchantID,
		"transactionId": transactionID,
		"amount":        strconv.FormatFloat(amount, 'f', 2, 64),
		"reason":        reason,
	}

	var resp arcPayProcessResponse
	statusCode, err := r.post(ctx, "/payment/refund", body, &resp)
	if err != nil {
		return err
	}
	if statusCode < 200 || statusCode >= 300 {
		return fmt.Errorf("refund rejected (status %d): %s", statusCode, resp.Message)
	}

	r.logger.Info("Refund processed", "transactionId", transactionID, "amount", amount)
	return nil
}

func (r *ArcPayRepository) post(ctx context.Context, path string, body, out interface{}) (int, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("marshal gateway request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return 0, fmt.Errorf("build gateway request: %w", err)
	}
	httpReq.SetBasicAuth(r.username, r.password)
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", entity.ErrGatewayUnreachable, err)
	}
	defer httpResp.Body.Close()

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return httpResp.StatusCode, fmt.Errorf("%w: undecodable response: %v", entity.ErrGatewayUnreachable, err)
	}
	return httpResp.StatusCode, nil
}

func validatePaymentRequest(req *entity.PaymentRequest) error {
	switch {
	case req.Amount <= 0:
		return fmt.Errorf("%w: amount", entity.ErrMissingField)
	case req.CardNumber == "":
		return fmt.Errorf("%w: card number", entity.ErrMissingField)
	case req.CardHolder == "":
		return fmt.Errorf("%w: card holder", entity.ErrMissingField)
	case req.ExpiryMonth == 0 || req.ExpiryYear == 0:
		return fmt.Errorf("%w: card expiry", entity.ErrMissingField)
	case req.CVV == "":
		return fmt.Errorf("%w: cvv", entity.ErrMissingField)
	}
	return nil
}

func stripSpaces(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
