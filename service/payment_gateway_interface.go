package service

import "context"

// PaymentInitiation carries what the customer needs to complete a payment
type PaymentInitiation struct {
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorizationUrl"`
	AccessCode       string `json:"accessCode"`
}

// PaymentVerification is the gateway's answer for a checkout reference
type PaymentVerification struct {
	Reference string `json:"reference"`
	Success   bool   `json:"success"`
	Amount    int64  `json:"amount"` // minor units as settled by the gateway
}

// PaymentGatewayInterface defines the contract for the external payment initiator
type PaymentGatewayInterface interface {
	// Initialize registers a payment attempt: reference, customer email and
	// amount in minor units. Returns the handle the customer completes.
	Initialize(ctx context.Context, reference, email string, amountMinor int64) (*PaymentInitiation, error)
	// Verify reports whether the referenced payment settled successfully.
	Verify(ctx context.Context, reference string) (*PaymentVerification, error)
}
