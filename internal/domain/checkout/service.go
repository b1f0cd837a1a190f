// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/sneakhaus/storefront/internal/config"
	"github.com/sneakhaus/storefront/internal/domain/cart"
	"github.com/sneakhaus/storefront/internal/domain/catalog"
	"github.com/sneakhaus/storefront/internal/domain/order"
	"github.com/sneakhaus/storefront/internal/infrastructure/store"
	"github.com/sneakhaus/storefront/internal/pkg/events"
)

// Checkout steps, in flow order.
const (
	StepCartReview   = 1
	StepShippingInfo = 2
	StepPayment      = 3
	StepConfirmation = 4
)

// Service handles checkout business logic: step tracking, the pricing
// summary shown before an order exists, boundary validation of shipping
// and payment input, and the upsell step.
type Service struct {
	store       store.Store
	catalog     *catalog.Service
	config      *config.Config
	cartService *cart.Service
	bus         *events.Bus
}

// NewService creates a new checkout service
func NewService(st store.Store, cat *catalog.Service, cfg *config.Config, cartService *cart.Service, bus *events.Bus) *Service {
	return &Service{
		store:       st,
		catalog:     cat,
		config:      cfg,
		cartService: cartService,
		bus:         bus,
	}
}

// Pricing represents the checkout pricing breakdown in cents.
type Pricing struct {
	Subtotal     int64 `json:"subtotal"`
	ShippingCost int64 `json:"shipping_cost"`
	TaxAmount    int64 `json:"tax_amount"`
	TotalAmount  int64 `json:"total_amount"`
}

// Summary represents the pre-order checkout summary.
type Summary struct {
	Cart    *cart.Response `json:"cart"`
	Pricing Pricing        `json:"pricing"`
	Step    int            `json:"step"`
}

// Validation represents a boundary validation result. Failures are
// user-facing messages, not fatal errors.
type Validation struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors,omitempty"`
}

// GetSummary computes the checkout summary for a session without
// creating an order.
func (s *Service) GetSummary(ctx context.Context, sessionID string) (*Summary, error) {
	cartResponse, err := s.cartService.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	subtotal := cartResponse.Totals.Subtotal
	shipping := int64(0)
	if subtotal > 0 && subtotal < s.config.Checkout.FreeShippingThreshold {
		shipping = s.config.Checkout.StandardShippingFee
	}
	tax := int64(math.Round(float64(subtotal) * s.config.Checkout.TaxRate))

	step, err := s.GetStep(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Cart: cartResponse,
		Pricing: Pricing{
			Subtotal:     subtotal,
			ShippingCost: shipping,
			TaxAmount:    tax,
			TotalAmount:  subtotal + shipping + tax,
		},
		Step: step,
	}, nil
}

// GetStep returns the session's persisted checkout step, defaulting to
// cart review.
func (s *Service) GetStep(ctx context.Context, sessionID string) (int, error) {
	raw, err := s.store.Get(ctx, stepKey(sessionID))
	if errors.Is(err, store.ErrNotFound) {
		return StepCartReview, nil
	} else if err != nil {
		return 0, err
	}

	var step int
	if _, err := fmt.Sscanf(raw, "%d", &step); err != nil || step < StepCartReview || step > StepConfirmation {
		return StepCartReview, nil
	}
	return step, nil
}

// SetStep persists the session's checkout step.
func (s *Service) SetStep(ctx context.Context, sessionID string, step int) error {
	if step < StepCartReview || step > StepConfirmation {
		return fmt.Errorf("invalid checkout step %d", step)
	}
	if err := s.store.Set(ctx, stepKey(sessionID), fmt.Sprintf("%d", step), s.config.Store.SessionTTL); err != nil {
		return err
	}
	s.bus.Publish(events.Event{SessionID: sessionID, Topic: events.TopicCheckout})
	return nil
}

// ValidateShipping checks the shipping form the way the storefront UI
// does, centralized at the engine boundary.
func (s *Service) ValidateShipping(info *order.ShippingInfo) *Validation {
	v := &Validation{IsValid: true}

	required := map[string]string{
		"first name": info.FirstName,
		"last name":  info.LastName,
		"email":      info.Email,
		"address":    info.Address,
		"city":       info.City,
		"state":      info.State,
		"zip code":   info.ZipCode,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			v.IsValid = false
			v.Errors = append(v.Errors, fmt.Sprintf("%s is required", field))
		}
	}

	if email := strings.TrimSpace(info.Email); email != "" {
		at := strings.Index(email, "@")
		if at < 1 || !strings.Contains(email[at:], ".") {
			v.IsValid = false
			v.Errors = append(v.Errors, "email is invalid")
		}
	}

	return v
}

// PaymentRequest represents the payment form input.
type PaymentRequest struct {
	Method     string `json:"method" binding:"required"`
	CardNumber string `json:"card_number,omitempty"`
}

// ValidatePayment checks the payment method tag and, for card payments,
// a 13-19 digit card number length heuristic. No charge is made.
func (s *Service) ValidatePayment(req *PaymentRequest) *Validation {
	v := &Validation{IsValid: true}

	switch req.Method {
	case "credit-card", "paypal", "apple-pay":
	default:
		v.IsValid = false
		v.Errors = append(v.Errors, fmt.Sprintf("unknown payment method %q", req.Method))
		return v
	}

	if req.Method == "credit-card" {
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, req.CardNumber)
		if len(digits) < 13 || len(digits) > 19 {
			v.IsValid = false
			v.Errors = append(v.Errors, "card number must be 13-19 digits")
		}
	}

	return v
}

// UpsellProducts returns accessories not already in the session's cart,
// for the pre-confirmation upsell step.
func (s *Service) UpsellProducts(ctx context.Context, sessionID string) ([]catalog.Product, error) {
	cartResponse, err := s.cartService.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	inCart := make(map[string]bool, len(cartResponse.Items))
	for _, item := range cartResponse.Items {
		inCart[item.ProductID] = true
	}

	upsells := []catalog.Product{}
	for _, accessory := range s.catalog.Accessories() {
		if inCart[accessory.ID] {
			continue
		}
		upsells = append(upsells, accessory)
		if len(upsells) >= s.config.Checkout.UpsellLimit {
			break
		}
	}
	return upsells, nil
}

func stepKey(sessionID string) string {
	return fmt.Sprintf("checkout:step:%s", sessionID)
}
