package xendit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrConfigInvalid   = errors.New("xendit config invalid")
	ErrRequestFailed   = errors.New("xendit request failed")
	ErrResponseInvalid = errors.New("xendit response invalid")
)

// Invoice status constants as Xendit reports them.
const (
	StatusPaid    = "PAID"
	StatusPending = "PENDING"
	StatusExpired = "EXPIRED"
	StatusSettled = "SETTLED"
)

const defaultBaseURL = "https://api.xendit.co"

// externalIDPrefix ties an invoice back to the local order record.
const externalIDPrefix = "order-"

// Config holds the invoice API settings.
type Config struct {
	APIKey             string `json:"api_key"`
	BaseURL            string `json:"base_url"`
	Currency           string `json:"currency"`
	SuccessRedirectURL string `json:"success_redirect_url"`
	FailureRedirectURL string `json:"failure_redirect_url"`
	TimeoutMS          int    `json:"timeout_ms"`
}

// CreateInput is an invoice to create.
type CreateInput struct {
	OrderRecordID uint
	Amount        decimal.Decimal
	Description   string
	PayerEmail    string
}

// CreateResult is a created invoice.
type CreateResult struct {
	InvoiceID  string
	ExternalID string
	InvoiceURL string
	Status     string
	Raw        map[string]interface{}
}

// CallbackData is the webhook payload for invoice events.
type CallbackData struct {
	ID         string  `json:"id"`
	ExternalID string  `json:"external_id"`
	Status     string  `json:"status"`
	Amount     float64 `json:"amount"`
	PaidAmount float64 `json:"paid_amount"`
	PaidAt     string  `json:"paid_at"`
	Currency   string  `json:"currency"`
}

// ValidateConfig checks the required settings.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", ErrConfigInvalid)
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return fmt.Errorf("%w: api_key is required", ErrConfigInvalid)
	}
	return nil
}

func (c *Config) normalize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	if c.Currency == "" {
		c.Currency = "PHP"
	}
	if c.TimeoutMS <= 0 {
		c.TimeoutMS = 10000
	}
}

// BuildExternalID formats the external id for an order record.
func BuildExternalID(orderRecordID uint) string {
	return fmt.Sprintf("%s%d", externalIDPrefix, orderRecordID)
}

// ParseExternalID strips the order prefix. The bool reports whether the
// id belongs to this integration.
func ParseExternalID(externalID string) (string, bool) {
	trimmed := strings.TrimSpace(externalID)
	if !strings.HasPrefix(trimmed, externalIDPrefix) {
		return "", false
	}
	return strings.TrimPrefix(trimmed, externalIDPrefix), true
}

// RoundAmount rounds to a whole currency unit, half away from zero, as
// the invoice API expects integral amounts (250.7 becomes 251).
func RoundAmount(amount decimal.Decimal) int64 {
	return amount.Round(0).IntPart()
}

// CreateInvoice creates a hosted invoice via POST /v2/invoices. The API
// key rides as the Basic Auth username with an empty password.
func CreateInvoice(ctx context.Context, cfg *Config, input CreateInput) (*CreateResult, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	normalized := *cfg
	normalized.normalize()
	if input.OrderRecordID == 0 {
		return nil, fmt.Errorf("%w: order record id required", ErrConfigInvalid)
	}

	params := map[string]interface{}{
		"external_id": BuildExternalID(input.OrderRecordID),
		"amount":      RoundAmount(input.Amount),
		"currency":    normalized.Currency,
	}
	if input.Description != "" {
		params["description"] = input.Description
	}
	if input.PayerEmail != "" {
		params["payer_email"] = input.PayerEmail
	}
	if normalized.SuccessRedirectURL != "" {
		params["success_redirect_url"] = normalized.SuccessRedirectURL
	}
	if normalized.FailureRedirectURL != "" {
		params["failure_redirect_url"] = normalized.FailureRedirectURL
	}

	endpoint := normalized.BaseURL + "/v2/invoices"
	respBytes, err := postJSON(ctx, endpoint, normalized.APIKey, time.Duration(normalized.TimeoutMS)*time.Millisecond, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	var resp struct {
		ID         string `json:"id"`
		ExternalID string `json:"external_id"`
		Status     string `json:"status"`
		InvoiceURL string `json:"invoice_url"`
	}
	if err := json.Unmarshal(respBytes, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	if resp.InvoiceURL == "" {
		return nil, fmt.Errorf("%w: missing invoice_url", ErrResponseInvalid)
	}

	var raw map[string]interface{}
	_ = json.Unmarshal(respBytes, &raw)

	return &CreateResult{
		InvoiceID:  resp.ID,
		ExternalID: resp.ExternalID,
		InvoiceURL: resp.InvoiceURL,
		Status:     resp.Status,
		Raw:        raw,
	}, nil
}

// ParseCallback decodes a webhook payload.
func ParseCallback(body []byte) (*CallbackData, error) {
	if len(body) == 0 {
		return nil, ErrResponseInvalid
	}
	var data CallbackData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	return &data, nil
}

// IsPaidStatus reports whether the invoice status counts as paid.
func IsPaidStatus(status string) bool {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case StatusPaid, StatusSettled:
		return true
	default:
		return false
	}
}

func postJSON(ctx context.Context, endpoint, apiKey string, timeout time.Duration, params map[string]interface{}) ([]byte, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(apiKey, "")

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("http status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	return respBody, nil
}
