// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sneakhaus/storefront/internal/config"
	"github.com/sneakhaus/storefront/internal/domain/cart"
	"github.com/sneakhaus/storefront/internal/infrastructure/store"
	"github.com/sneakhaus/storefront/internal/pkg/events"
)

var (
	// ErrEmptyCart is returned when order creation is attempted on an
	// empty cart. No order is persisted.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNotFound is returned when an order id does not resolve.
	ErrNotFound = errors.New("order not found")
)

// Service handles order business logic. Orders are persisted by id with
// a per-email index recording creation order; both are retained
// indefinitely in the mirror.
type Service struct {
	store       store.Store
	config      *config.Config
	cartService *cart.Service
	bus         *events.Bus
	logger      *logrus.Logger
}

// NewService creates a new order service
func NewService(st store.Store, cfg *config.Config, cartService *cart.Service, bus *events.Bus, logger *logrus.Logger) *Service {
	return &Service{
		store:       st,
		config:      cfg,
		cartService: cartService,
		bus:         bus,
		logger:      logger,
	}
}

// CreateRequest represents order creation data.
type CreateRequest struct {
	ShippingInfo  ShippingInfo `json:"shipping_info" binding:"required"`
	PaymentMethod string       `json:"payment_method" binding:"required"`
}

// Create converts the session's cart into a persisted order: the cart
// lines are snapshotted with their current prices and colorway images,
// totals are computed from checkout policy, and the cart is cleared.
func (s *Service) Create(ctx context.Context, sessionID string, req *CreateRequest) (*Order, error) {
	cartResponse, err := s.cartService.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}
	if len(cartResponse.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]Item, len(cartResponse.Items))
	for i, cartItem := range cartResponse.Items {
		item := Item{
			ProductID:  cartItem.ProductID,
			Size:       cartItem.Size,
			ColorName:  cartItem.ColorName,
			Quantity:   cartItem.Quantity,
			Price:      cartItem.Price,
			TotalPrice: cartItem.Price * int64(cartItem.Quantity),
		}
		if cartItem.Product != nil {
			item.Name = cartItem.Product.Name
			item.Image = cartItem.Product.Image
		}
		if len(cartItem.Images) > 0 {
			item.Image = cartItem.Images[0]
		}
		items[i] = item
	}

	subtotal := cartResponse.Totals.Subtotal
	shipping := s.calculateShipping(subtotal)
	tax := s.calculateTax(subtotal)

	now := time.Now().UTC()
	order := &Order{
		ID:                s.generateOrderID(),
		Email:             req.ShippingInfo.Email,
		Status:            StatusPending,
		Items:             items,
		ShippingInfo:      req.ShippingInfo,
		PaymentMethod:     req.PaymentMethod,
		Subtotal:          subtotal,
		ShippingCost:      shipping,
		TaxAmount:         tax,
		TotalAmount:       subtotal + shipping + tax,
		TrackingNumber:    s.generateTrackingNumber(),
		OrderDate:         now,
		EstimatedDelivery: now.AddDate(0, 0, s.config.Checkout.DeliveryDays),
	}

	if err := store.SetJSON(ctx, s.store, orderKey(order.ID), order, 0); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	if err := s.appendToEmailIndex(ctx, order.Email, order.ID); err != nil {
		return nil, fmt.Errorf("failed to index order: %w", err)
	}

	// Clearing the cart is best-effort; the order is already committed.
	if err := s.cartService.Clear(ctx, sessionID); err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).
			Warn("failed to clear cart after order creation")
	}

	s.bus.Publish(events.Event{SessionID: sessionID, Topic: events.TopicOrder})

	s.logger.WithFields(logrus.Fields{
		"order_id": order.ID,
		"email":    order.Email,
		"total":    order.TotalAmount,
	}).Info("order created")

	return order, nil
}

// GetByID retrieves a single order by id.
func (s *Service) GetByID(ctx context.Context, id string) (*Order, error) {
	var order Order
	err := store.GetJSON(ctx, s.store, orderKey(id), &order)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}
	return &order, nil
}

// GetByEmail retrieves all orders placed with the given shipping email,
// in creation order. Unknown emails yield an empty slice.
func (s *Service) GetByEmail(ctx context.Context, email string) ([]Order, error) {
	ids, err := s.emailIndex(ctx, email)
	if err != nil {
		return nil, err
	}

	orders := []Order{}
	for _, id := range ids {
		order, err := s.GetByID(ctx, id)
		if errors.Is(err, ErrNotFound) {
			continue
		} else if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

// UpdateStatus applies a fulfillment status transition. This is the
// hook for the external fulfillment collaborator; orders only move
// pending -> processing -> shipped -> delivered.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (*Order, error) {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.CanTransitionTo(status) {
		return nil, fmt.Errorf("invalid status transition from %s to %s", order.Status, status)
	}

	order.Status = status
	if err := store.SetJSON(ctx, s.store, orderKey(order.ID), order, 0); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	return order, nil
}

// Private helper methods

func (s *Service) calculateShipping(subtotal int64) int64 {
	if subtotal >= s.config.Checkout.FreeShippingThreshold {
		return 0
	}
	return s.config.Checkout.StandardShippingFee
}

func (s *Service) calculateTax(subtotal int64) int64 {
	return int64(math.Round(float64(subtotal) * s.config.Checkout.TaxRate))
}

func (s *Service) generateOrderID() string {
	// Format: ORD-XXXXXXXX, human-shareable, not sortable by creation time
	return fmt.Sprintf("ORD-%s", strings.ToUpper(uuid.NewString()[:8]))
}

func (s *Service) generateTrackingNumber() string {
	return fmt.Sprintf("TRK-%s", strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12]))
}

func (s *Service) emailIndex(ctx context.Context, email string) ([]string, error) {
	var ids []string
	err := store.GetJSON(ctx, s.store, emailIndexKey(email), &ids)
	if errors.Is(err, store.ErrNotFound) {
		return []string{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read order index: %w", err)
	}
	return ids, nil
}

func (s *Service) appendToEmailIndex(ctx context.Context, email, orderID string) error {
	ids, err := s.emailIndex(ctx, email)
	if err != nil {
		return err
	}
	ids = append(ids, orderID)
	return store.SetJSON(ctx, s.store, emailIndexKey(email), ids, 0)
}

func orderKey(id string) string {
	return fmt.Sprintf("order:%s", id)
}

func emailIndexKey(email string) string {
	return fmt.Sprintf("orders:email:%s", strings.ToLower(email))
}
