package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"beatforge/models"
	"beatforge/repository"
	"beatforge/utils"
)

// CheckoutResult reports the outcome of a confirmed checkout attempt
type CheckoutResult struct {
	Success   bool             `json:"success"`
	Reference string           `json:"reference"`
	Total     float64          `json:"total"`
	Items     []models.Product `json:"items"`
	// Warning is set when the payment settled but the bookkeeping mirror
	// failed or the settled amount disagrees with the initiated one; the
	// purchase itself is never reversed over it.
	Warning string `json:"warning,omitempty"`
}

// pendingAttempt is the cart snapshot taken when a reference was initiated,
// so Confirm settles exactly what the gateway was told about
type pendingAttempt struct {
	sessionID   string
	amountMinor int64
	total       float64
	items       []models.Product
}

// CheckoutService coordinates the external payment call and the post-payment
// bookkeeping: transaction mirror, purchase-history merge and cart clear.
type CheckoutService struct {
	cart         *CartService
	history      *HistoryService
	gateway      PaymentGatewayInterface
	transactions repository.TransactionRepositoryInterface

	mu      sync.Mutex
	pending map[string]pendingAttempt // reference -> snapshot at initiate time
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(cart *CartService, history *HistoryService, gateway PaymentGatewayInterface, transactions repository.TransactionRepositoryInterface) *CheckoutService {
	return &CheckoutService{
		cart:         cart,
		history:      history,
		gateway:      gateway,
		transactions: transactions,
		pending:      make(map[string]pendingAttempt),
	}
}

// NewReference builds a checkout reference unique per attempt: a millisecond
// timestamp plus a random suffix so rapid repeated attempts cannot collide.
func NewReference() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// Initiate validates the attempt, registers it with the payment gateway and
// remembers the cart snapshot under the reference. The cart is not touched:
// nothing mutates until the gateway confirms.
func (s *CheckoutService) Initiate(ctx context.Context, sessionID, email string) (*PaymentInitiation, error) {
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email address is required")
	}
	if s.cart.Count(sessionID) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	reference := NewReference()
	entries := s.cart.Items(sessionID)
	items := make([]models.Product, 0, len(entries))
	total := 0.0
	for _, entry := range entries {
		items = append(items, entry.Product)
		total += entry.Product.EffectivePrice()
	}
	amountMinor := utils.ToMinorUnits(total)

	log.Printf("🧾 Checkout Initiate: session=%s, reference=%s, amount=%s", sessionID, reference, utils.FormatNGN(amountMinor))

	initiation, err := s.gateway.Initialize(ctx, reference, email, amountMinor)
	if err != nil {
		return nil, fmt.Errorf("failed to initiate payment: %w", err)
	}

	s.mu.Lock()
	s.pending[reference] = pendingAttempt{
		sessionID:   sessionID,
		amountMinor: amountMinor,
		total:       total,
		items:       items,
	}
	s.mu.Unlock()

	return initiation, nil
}

// Confirm verifies a reference with the gateway. On confirmed success it
// settles the snapshot remembered at Initiate time — items added to the cart
// afterwards were never priced into the payment and stay in the cart. On
// anything other than success no state changes, so the customer can retry.
func (s *CheckoutService) Confirm(ctx context.Context, sessionID, reference, email string) (*CheckoutResult, error) {
	verification, err := s.gateway.Verify(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to verify payment: %w", err)
	}

	if !verification.Success {
		log.Printf("⚠️ Checkout Confirm: reference=%s did not settle, cart left intact", reference)
		return &CheckoutResult{Success: false, Reference: reference}, nil
	}

	s.mu.Lock()
	attempt, known := s.pending[reference]
	if known {
		delete(s.pending, reference)
	}
	s.mu.Unlock()

	if known && attempt.sessionID != sessionID {
		return nil, fmt.Errorf("reference %s was initiated by a different session", reference)
	}

	var items []models.Product
	var total float64
	var warning string

	if known {
		items, total = attempt.items, attempt.total
		if verification.Amount != 0 && verification.Amount != attempt.amountMinor {
			log.Printf("⚠️ Checkout Confirm: reference=%s settled %d kobo, initiated %d kobo", reference, verification.Amount, attempt.amountMinor)
			warning = "settled amount does not match the initiated amount"
		}
	} else {
		// Unknown reference (process restarted between initiate and confirm):
		// fall back to the cart as it stands now
		log.Printf("⚠️ Checkout Confirm: reference=%s has no pending record, settling current cart", reference)
		entries := s.cart.Items(sessionID)
		items = make([]models.Product, 0, len(entries))
		for _, entry := range entries {
			items = append(items, entry.Product)
			total += entry.Product.EffectivePrice()
		}
	}

	result := &CheckoutResult{
		Success:   true,
		Reference: verification.Reference,
		Total:     total,
		Items:     items,
		Warning:   warning,
	}

	// Best-effort mirror: the payment is the source of truth, a failed write
	// only warns, it never rolls the purchase back or fabricates a retry
	if _, err := s.transactions.Record(ctx, &models.RecordTransactionRequest{
		Reference: verification.Reference,
		Email:     email,
		Amount:    total,
		Products:  items,
	}); err != nil {
		log.Printf("⚠️ Checkout Confirm: payment settled but transaction record failed: %v", err)
		result.Warning = "payment succeeded but bookkeeping may be incomplete"
	}

	if _, err := s.history.Merge(sessionID, items); err != nil {
		log.Printf("⚠️ Checkout Confirm: failed to persist purchase history: %v", err)
	}

	// Only the purchased items leave the cart; anything added after the
	// initiate snapshot stays for the next attempt
	for _, item := range items {
		s.cart.Remove(sessionID, item.ID)
	}

	log.Printf("✅ Checkout Confirm: reference=%s settled, %d items, total=%.2f", reference, len(items), total)
	return result, nil
}
