package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestPaystack(url string) *PaystackService {
	return &PaystackService{
		secretKey: "sk_test_abc",
		baseURL:   url,
		client:    &http.Client{Timeout: 5 * time.Second},
	}
}

func TestPaystackInitialize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transaction/initialize", r.URL.Path)
		require.Equal(t, "Bearer sk_test_abc", r.Header.Get("Authorization"))

		var req paystackInitializeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "buyer@example.com", req.Email)
		require.Equal(t, int64(2999), req.Amount)
		require.Equal(t, "NGN", req.Currency)

		json.NewEncoder(w).Encode(map[string]any{
			"status":  true,
			"message": "Authorization URL created",
			"data": map[string]any{
				"authorization_url": "https://checkout.paystack.com/abc123",
				"access_code":       "abc123",
				"reference":         req.Reference,
			},
		})
	}))
	defer server.Close()

	ps := newTestPaystack(server.URL)
	initiation, err := ps.Initialize(context.Background(), "ref-1", "buyer@example.com", 2999)
	require.NoError(t, err)
	require.Equal(t, "ref-1", initiation.Reference)
	require.Equal(t, "https://checkout.paystack.com/abc123", initiation.AuthorizationURL)
	require.Equal(t, "abc123", initiation.AccessCode)
}

func TestPaystackInitializeRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": false, "message": "Invalid key"})
	}))
	defer server.Close()

	ps := newTestPaystack(server.URL)
	_, err := ps.Initialize(context.Background(), "ref-1", "buyer@example.com", 100)
	require.ErrorContains(t, err, "Invalid key")
}

func TestPaystackVerify(t *testing.T) {
	tests := []struct {
		name        string
		dataStatus  string
		wantSuccess bool
	}{
		{"settled", "success", true},
		{"failed", "failed", false},
		{"abandoned", "abandoned", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/transaction/verify/ref-1", r.URL.Path)
				json.NewEncoder(w).Encode(map[string]any{
					"status":  true,
					"message": "Verification successful",
					"data": map[string]any{
						"status":    tt.dataStatus,
						"reference": "ref-1",
						"amount":    2999,
					},
				})
			}))
			defer server.Close()

			ps := newTestPaystack(server.URL)
			verification, err := ps.Verify(context.Background(), "ref-1")
			require.NoError(t, err)
			require.Equal(t, tt.wantSuccess, verification.Success)
			require.Equal(t, "ref-1", verification.Reference)
			require.Equal(t, int64(2999), verification.Amount)
		})
	}
}

func TestPaystackServerErrorSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	ps := newTestPaystack(server.URL)
	_, err := ps.Verify(context.Background(), "ref-1")
	require.ErrorContains(t, err, "502")
}

func TestNewPaystackServiceRequiresKey(t *testing.T) {
	_, err := NewPaystackService("")
	require.Error(t, err)
}
