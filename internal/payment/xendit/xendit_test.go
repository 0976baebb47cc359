package xendit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRoundAmount(t *testing.T) {
	cases := map[string]int64{
		"250.70": 251,
		"250.40": 250,
		"250.50": 251,
		"350.00": 350,
	}
	for input, want := range cases {
		amount, err := decimal.NewFromString(input)
		if err != nil {
			t.Fatalf("parse %s failed: %v", input, err)
		}
		if got := RoundAmount(amount); got != want {
			t.Fatalf("RoundAmount(%s) want %d got %d", input, want, got)
		}
	}
}

func TestExternalIDRoundTrip(t *testing.T) {
	externalID := BuildExternalID(42)
	if externalID != "order-42" {
		t.Fatalf("external id want order-42 got %s", externalID)
	}
	recordID, ok := ParseExternalID(externalID)
	if !ok || recordID != "42" {
		t.Fatalf("parse want (42,true) got (%s,%v)", recordID, ok)
	}
	if _, ok := ParseExternalID("subscription-7"); ok {
		t.Fatalf("foreign external id should not parse")
	}
}

func TestIsPaidStatus(t *testing.T) {
	for _, status := range []string{"PAID", "SETTLED", " paid "} {
		if !IsPaidStatus(status) {
			t.Fatalf("%q should count as paid", status)
		}
	}
	for _, status := range []string{"PENDING", "EXPIRED", ""} {
		if IsPaidStatus(status) {
			t.Fatalf("%q should not count as paid", status)
		}
	}
}

func TestParseCallback(t *testing.T) {
	data, err := ParseCallback([]byte(`{"id":"inv1","external_id":"order-5","status":"PAID","amount":350}`))
	if err != nil {
		t.Fatalf("parse callback failed: %v", err)
	}
	if data.ExternalID != "order-5" || data.Status != "PAID" || data.Amount != 350 {
		t.Fatalf("unexpected callback data: %+v", data)
	}

	if _, err := ParseCallback(nil); !errors.Is(err, ErrResponseInvalid) {
		t.Fatalf("empty body want ErrResponseInvalid got %v", err)
	}
	if _, err := ParseCallback([]byte("not-json")); !errors.Is(err, ErrResponseInvalid) {
		t.Fatalf("bad json want ErrResponseInvalid got %v", err)
	}
}

func TestValidateConfig(t *testing.T) {
	if err := ValidateConfig(nil); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("nil config want ErrConfigInvalid got %v", err)
	}
	if err := ValidateConfig(&Config{APIKey: "  "}); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("blank key want ErrConfigInvalid got %v", err)
	}
	if err := ValidateConfig(&Config{APIKey: "xnd_test"}); err != nil {
		t.Fatalf("valid config failed: %v", err)
	}
}

func TestCreateInvoice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/invoices" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "xnd_test" || pass != "" {
			t.Fatalf("basic auth should carry the api key with empty password")
		}
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request failed: %v", err)
		}
		if body["external_id"] != "order-7" {
			t.Fatalf("external_id want order-7 got %v", body["external_id"])
		}
		if body["amount"] != float64(251) {
			t.Fatalf("amount should round to 251, got %v", body["amount"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"inv-7","external_id":"order-7","status":"PENDING","invoice_url":"https://checkout.test/inv-7"}`))
	}))
	defer server.Close()

	cfg := &Config{APIKey: "xnd_test", BaseURL: server.URL}
	result, err := CreateInvoice(context.Background(), cfg, CreateInput{
		OrderRecordID: 7,
		Amount:        decimal.NewFromFloat(250.7),
		Description:   "Bakehouse order 007",
	})
	if err != nil {
		t.Fatalf("create invoice failed: %v", err)
	}
	if result.InvoiceID != "inv-7" || result.InvoiceURL != "https://checkout.test/inv-7" {
		t.Fatalf("unexpected result: %+v", result)
	}

	if _, err := CreateInvoice(context.Background(), cfg, CreateInput{Amount: decimal.NewFromInt(100)}); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("missing order record id want ErrConfigInvalid got %v", err)
	}
}

func TestCreateInvoiceErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error_code":"INVALID_API_KEY"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	cfg := &Config{APIKey: "xnd_bad", BaseURL: server.URL}
	if _, err := CreateInvoice(context.Background(), cfg, CreateInput{OrderRecordID: 1, Amount: decimal.NewFromInt(100)}); !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("want ErrRequestFailed got %v", err)
	}
}
