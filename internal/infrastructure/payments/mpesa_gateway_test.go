package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase/interfaces"
)

func TestMpesaGateway_MockInitiate(t *testing.T) {
	g := NewMockMpesaGateway()

	receipt, err := g.Initiate(context.Background(), interfaces.PromptInitiation{
		PhoneNumber:      "254712345678",
		Amount:           2500,
		AccountReference: "INV-002",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(receipt.CorrelationID, CorrelationPrefix) {
		t.Fatalf("expected %s prefix, got %s", CorrelationPrefix, receipt.CorrelationID)
	}
	if !strings.Contains(receipt.CustomerMessage, "254712345678") || !strings.Contains(receipt.CustomerMessage, "2500") {
		t.Fatalf("expected phone and amount in message, got %q", receipt.CustomerMessage)
	}

	second, err := g.Initiate(context.Background(), interfaces.PromptInitiation{PhoneNumber: "254712345678", Amount: 2500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.CorrelationID == receipt.CorrelationID {
		t.Fatalf("expected unique correlation ids, got %s twice", receipt.CorrelationID)
	}
}

func TestMpesaGateway_MockLatencyHonorsContext(t *testing.T) {
	g := NewMockMpesaGateway()
	g.mockLatency = time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := g.Initiate(ctx, interfaces.PromptInitiation{PhoneNumber: "254712345678", Amount: 100})
	if err != context.DeadlineExceeded {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestMpesaGateway_MockQueryStatus(t *testing.T) {
	g := NewMockMpesaGateway()

	status, err := g.QueryStatus(context.Background(), "ws_CO_anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != entities.PaymentStatusCompleted {
		t.Fatalf("expected completed, got %s", status)
	}
}

func newLiveTestGateway(srv *httptest.Server) *MpesaGateway {
	return &MpesaGateway{
		httpClient:     srv.Client(),
		baseURL:        srv.URL,
		consumerKey:    "key",
		consumerSecret: "secret",
		shortCode:      "174379",
		passkey:        "passkey",
		callbackURL:    "https://example.com/callback",
	}
}

func TestMpesaGateway_LiveInitiate(t *testing.T) {
	var stkBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/oauth/"):
			user, pass, ok := r.BasicAuth()
			if !ok || user != "key" || pass != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode(map[string]string{"access_token": "token-1"})
		case r.URL.Path == "/mpesa/stkpush/v1/processrequest":
			if r.Header.Get("Authorization") != "Bearer token-1" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewDecoder(r.Body).Decode(&stkBody)
			json.NewEncoder(w).Encode(map[string]string{
				"MerchantRequestID": "29115-34620561-1",
				"CheckoutRequestID": "ws_CO_191220191020363925",
				"ResponseCode":      "0",
				"CustomerMessage":   "Success. Request accepted for processing",
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	g := newLiveTestGateway(srv)
	receipt, err := g.Initiate(context.Background(), interfaces.PromptInitiation{
		PhoneNumber:      "254712345678",
		Amount:           2500,
		AccountReference: "INV-002",
		Description:      "Payment for John Kamau",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if receipt.CorrelationID != "ws_CO_191220191020363925" {
		t.Fatalf("unexpected correlation id %s", receipt.CorrelationID)
	}

	if stkBody["TransactionType"] != "CustomerPayBillOnline" {
		t.Fatalf("unexpected transaction type %v", stkBody["TransactionType"])
	}
	if stkBody["AccountReference"] != "INV-002" {
		t.Fatalf("unexpected account reference %v", stkBody["AccountReference"])
	}
	if stkBody["PartyB"] != "174379" {
		t.Fatalf("unexpected party b %v", stkBody["PartyB"])
	}
	if stkBody["Password"] == "" || stkBody["Timestamp"] == "" {
		t.Fatalf("expected password and timestamp in payload")
	}
}

func TestMpesaGateway_LiveInitiateRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/oauth/") {
			json.NewEncoder(w).Encode(map[string]string{"access_token": "token-1"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"ResponseCode":        "1",
			"ResponseDescription": "Invalid Amount",
		})
	}))
	defer srv.Close()

	g := newLiveTestGateway(srv)
	_, err := g.Initiate(context.Background(), interfaces.PromptInitiation{PhoneNumber: "254712345678", Amount: 0})
	if err == nil || !strings.Contains(err.Error(), "rejected") {
		t.Fatalf("expected rejection error, got %v", err)
	}
}

func TestMpesaGateway_LiveQueryStatus(t *testing.T) {
	cases := []struct {
		name string
		resp map[string]string
		want entities.PaymentStatus
	}{
		{"completed", map[string]string{"ResponseCode": "0", "ResultCode": "0"}, entities.PaymentStatusCompleted},
		{"cancelled by user", map[string]string{"ResponseCode": "0", "ResultCode": "1032"}, entities.PaymentStatusFailed},
		{"wrong pin", map[string]string{"ResponseCode": "0", "ResultCode": "2001"}, entities.PaymentStatusFailed},
		{"still processing", map[string]string{"errorCode": "500.001.1001", "errorMessage": "The transaction is being processed"}, entities.PaymentStatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if strings.HasPrefix(r.URL.Path, "/oauth/") {
					json.NewEncoder(w).Encode(map[string]string{"access_token": "token-1"})
					return
				}
				json.NewEncoder(w).Encode(tc.resp)
			}))
			defer srv.Close()

			g := newLiveTestGateway(srv)
			status, err := g.QueryStatus(context.Background(), "ws_CO_191220191020363925")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if status != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, status)
			}
		})
	}
}
