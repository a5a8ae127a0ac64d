package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const paystackBaseURL = "https://api.paystack.co"

// PaystackService talks to the Paystack REST API.
// Amounts are always in kobo (minor units); currency is NGN.
type PaystackService struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

// NewPaystackService creates a new PaystackService instance.
// secretKey is the sk_ key from the Paystack dashboard (Settings -> API Keys).
func NewPaystackService(secretKey string) (*PaystackService, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("PAYSTACK_SECRET_KEY is not set")
	}
	return &PaystackService{
		secretKey: secretKey,
		baseURL:   paystackBaseURL,
		client:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Ensure PaystackService implements PaymentGatewayInterface
var _ PaymentGatewayInterface = (*PaystackService)(nil)

type paystackInitializeRequest struct {
	Email     string `json:"email"`
	Amount    int64  `json:"amount"` // kobo
	Reference string `json:"reference"`
	Currency  string `json:"currency"`
}

type paystackInitializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

type paystackVerifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string `json:"status"` // "success", "failed", "abandoned"
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
	} `json:"data"`
}

// Initialize registers a transaction with Paystack and returns the
// authorization URL the customer completes the payment on
func (s *PaystackService) Initialize(ctx context.Context, reference, email string, amountMinor int64) (*PaymentInitiation, error) {
	log.Printf("💳 Paystack Initialize: reference=%s, email=%s, amount=%d kobo", reference, email, amountMinor)

	body, err := json.Marshal(paystackInitializeRequest{
		Email:     email,
		Amount:    amountMinor,
		Reference: reference,
		Currency:  "NGN",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode initialize request: %w", err)
	}

	var resp paystackInitializeResponse
	if err := s.do(ctx, http.MethodPost, "/transaction/initialize", body, &resp); err != nil {
		return nil, err
	}

	if !resp.Status {
		return nil, fmt.Errorf("paystack rejected initialization: %s", resp.Message)
	}

	log.Printf("✅ Paystack Initialize: reference=%s registered", resp.Data.Reference)
	return &PaymentInitiation{
		Reference:        resp.Data.Reference,
		AuthorizationURL: resp.Data.AuthorizationURL,
		AccessCode:       resp.Data.AccessCode,
	}, nil
}

// Verify asks Paystack whether the referenced transaction settled
func (s *PaystackService) Verify(ctx context.Context, reference string) (*PaymentVerification, error) {
	log.Printf("🔍 Paystack Verify: reference=%s", reference)

	var resp paystackVerifyResponse
	if err := s.do(ctx, http.MethodGet, "/transaction/verify/"+reference, nil, &resp); err != nil {
		return nil, err
	}

	if !resp.Status {
		return nil, fmt.Errorf("paystack rejected verification: %s", resp.Message)
	}

	verification := &PaymentVerification{
		Reference: resp.Data.Reference,
		Success:   resp.Data.Status == "success",
		Amount:    resp.Data.Amount,
	}

	log.Printf("✓ Paystack Verify: reference=%s, status=%s", reference, resp.Data.Status)
	return verification, nil
}

func (s *PaystackService) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build paystack request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("paystack request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read paystack response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("paystack returned status %d: %s", resp.StatusCode, string(payload))
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to parse paystack response: %w", err)
	}
	return nil
}
