package payments

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	defaultDarajaBaseURL = "https://sandbox.safaricom.co.ke"

	// CorrelationPrefix is the prefix Daraja puts on STK Push checkout
	// request ids; mock mode preserves it so downstream code behaves the
	// same against simulated and real prompts.
	CorrelationPrefix = "ws_CO_"
)

var ErrMpesaNotConfigured = errors.New("mpesa gateway not configured")

// MpesaGateway initiates M-PESA STK Push prompts via the Daraja API.
//
// Mock mode (PROMPT_GATEWAY_MOCK / MPESA_MOCK, or missing credentials)
// simulates the provider: initiation always succeeds with a synthetic
// checkout id and the canned customer message, and status queries resolve to
// completed. Live mode speaks the Daraja OAuth + STK Push endpoints.

type MpesaGateway struct {
	httpClient *http.Client
	baseURL    string

	consumerKey    string
	consumerSecret string
	shortCode      string
	passkey        string
	callbackURL    string

	mockMode    bool
	mockLatency time.Duration
}

var _ interfaces.IPromptGateway = (*MpesaGateway)(nil)

// NewMpesaGatewayFromEnv builds the gateway from MPESA_* environment
// variables, falling back to mock mode when credentials are absent.
func NewMpesaGatewayFromEnv() *MpesaGateway {
	g := &MpesaGateway{
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		baseURL:        getenvDefault("MPESA_BASE_URL", defaultDarajaBaseURL),
		consumerKey:    os.Getenv("MPESA_CONSUMER_KEY"),
		consumerSecret: os.Getenv("MPESA_CONSUMER_SECRET"),
		shortCode:      getenvDefault("MPESA_SHORT_CODE", "174379"),
		passkey:        os.Getenv("MPESA_PASSKEY"),
		callbackURL:    os.Getenv("MPESA_CALLBACK_URL"),
	}

	if isPromptGatewayMockEnabled() {
		log.Printf("[payment][gateway] mpesa mock mode enabled")
		g.mockMode = true
	} else if g.consumerKey == "" || g.consumerSecret == "" || g.passkey == "" {
		log.Printf("[payment][gateway] mpesa credentials missing; falling back to simulated STK push")
		g.mockMode = true
	}
	if ms, err := strconv.Atoi(os.Getenv("MPESA_MOCK_LATENCY_MS")); err == nil && ms > 0 {
		g.mockLatency = time.Duration(ms) * time.Millisecond
	}
	return g
}

// NewMockMpesaGateway returns a gateway pinned to mock mode, for wiring and
// tests that must not touch the environment.
func NewMockMpesaGateway() *MpesaGateway {
	return &MpesaGateway{mockMode: true}
}

func (g *MpesaGateway) Initiate(ctx context.Context, req interfaces.PromptInitiation) (interfaces.PromptReceipt, error) {
	if g.mockMode {
		return g.mockInitiate(ctx, req)
	}
	if g.httpClient == nil {
		return interfaces.PromptReceipt{}, ErrMpesaNotConfigured
	}
	log.Printf("[payment][gateway] stk push start phone=%s amount=%d account_ref=%s", req.PhoneNumber, req.Amount, req.AccountReference)

	token, err := g.accessToken(ctx)
	if err != nil {
		return interfaces.PromptReceipt{}, err
	}

	timestamp := time.Now().UTC().Format("20060102150405")
	body := map[string]any{
		"BusinessShortCode": g.shortCode,
		"Password":          g.password(timestamp),
		"Timestamp":         timestamp,
		"TransactionType":   "CustomerPayBillOnline",
		"Amount":            req.Amount,
		"PartyA":            req.PhoneNumber,
		"PartyB":            g.shortCode,
		"PhoneNumber":       req.PhoneNumber,
		"CallBackURL":       g.callbackURL,
		"AccountReference":  req.AccountReference,
		"TransactionDesc":   req.Description,
	}

	var resp struct {
		MerchantRequestID   string `json:"MerchantRequestID"`
		CheckoutRequestID   string `json:"CheckoutRequestID"`
		ResponseCode        string `json:"ResponseCode"`
		ResponseDescription string `json:"ResponseDescription"`
		CustomerMessage     string `json:"CustomerMessage"`
	}
	if err := g.postJSON(ctx, "/mpesa/stkpush/v1/processrequest", token, body, &resp); err != nil {
		log.Printf("[payment][gateway] stk push failed err=%v", err)
		return interfaces.PromptReceipt{}, err
	}
	if resp.ResponseCode != "0" {
		log.Printf("[payment][gateway] stk push rejected code=%s desc=%s", resp.ResponseCode, resp.ResponseDescription)
		return interfaces.PromptReceipt{}, fmt.Errorf("stk push rejected: %s (%s)", resp.ResponseDescription, resp.ResponseCode)
	}

	log.Printf("[payment][gateway] stk push accepted checkout_request_id=%s", resp.CheckoutRequestID)
	return interfaces.PromptReceipt{CorrelationID: resp.CheckoutRequestID, CustomerMessage: resp.CustomerMessage}, nil
}

func (g *MpesaGateway) QueryStatus(ctx context.Context, correlationID string) (entities.PaymentStatus, error) {
	if g.mockMode {
		// The simulated customer always confirms.
		log.Printf("[payment][gateway] mock status query checkout_request_id=%s result=completed", correlationID)
		return entities.PaymentStatusCompleted, nil
	}
	if g.httpClient == nil {
		return "", ErrMpesaNotConfigured
	}

	token, err := g.accessToken(ctx)
	if err != nil {
		return "", err
	}

	timestamp := time.Now().UTC().Format("20060102150405")
	body := map[string]any{
		"BusinessShortCode": g.shortCode,
		"Password":          g.password(timestamp),
		"Timestamp":         timestamp,
		"CheckoutRequestID": correlationID,
	}

	var resp struct {
		ResponseCode string `json:"ResponseCode"`
		ResultCode   string `json:"ResultCode"`
		ResultDesc   string `json:"ResultDesc"`
		ErrorCode    string `json:"errorCode"`
		ErrorMessage string `json:"errorMessage"`
	}
	if err := g.postJSON(ctx, "/mpesa/stkpushquery/v1/query", token, body, &resp); err != nil {
		return "", err
	}

	// Daraja answers "transaction is being processed" as an error payload
	// until the customer acts on the prompt.
	if resp.ErrorCode != "" {
		log.Printf("[payment][gateway] status query processing checkout_request_id=%s error_code=%s", correlationID, resp.ErrorCode)
		return entities.PaymentStatusPending, nil
	}

	switch resp.ResultCode {
	case "0":
		return entities.PaymentStatusCompleted, nil
	case "1", "1032", "1037", "2001":
		// insufficient funds, cancelled by user, prompt timeout, wrong PIN
		log.Printf("[payment][gateway] status query failed checkout_request_id=%s result_code=%s desc=%s", correlationID, resp.ResultCode, resp.ResultDesc)
		return entities.PaymentStatusFailed, nil
	default:
		return entities.PaymentStatusPending, nil
	}
}

func (g *MpesaGateway) mockInitiate(ctx context.Context, req interfaces.PromptInitiation) (interfaces.PromptReceipt, error) {
	log.Printf("[payment][gateway] mock stk push phone=%s amount=%d account_ref=%s", req.PhoneNumber, req.Amount, req.AccountReference)

	if g.mockLatency > 0 {
		timer := time.NewTimer(g.mockLatency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return interfaces.PromptReceipt{}, ctx.Err()
		case <-timer.C:
		}
	}

	id := fmt.Sprintf("%s%d_%s", CorrelationPrefix, time.Now().UTC().UnixMilli(), strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	message := fmt.Sprintf(
		"An STK Push has been sent to %s. Please check your phone and enter your M-PESA PIN to complete the payment of KSh %d.",
		req.PhoneNumber, req.Amount)
	return interfaces.PromptReceipt{CorrelationID: id, CustomerMessage: message}, nil
}

func (g *MpesaGateway) accessToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/oauth/v1/generate?grant_type=client_credentials", nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(g.consumerKey, g.consumerSecret)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("mpesa oauth failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if payload.AccessToken == "" {
		return "", errors.New("mpesa oauth returned empty access token")
	}
	return payload.AccessToken, nil
}

func (g *MpesaGateway) postJSON(ctx context.Context, path, token string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("mpesa request failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	return json.Unmarshal(respBody, out)
}

// password is the Daraja STK credential: base64(shortcode + passkey + timestamp).
func (g *MpesaGateway) password(timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(g.shortCode + g.passkey + timestamp))
}

func isPromptGatewayMockEnabled() bool {
	for _, key := range []string{"PROMPT_GATEWAY_MOCK", "MPESA_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
