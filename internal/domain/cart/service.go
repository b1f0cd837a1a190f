// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sneakhaus/storefront/internal/config"
	"github.com/sneakhaus/storefront/internal/domain/catalog"
	"github.com/sneakhaus/storefront/internal/infrastructure/store"
	"github.com/sneakhaus/storefront/internal/pkg/events"
)

// Service handles cart business logic. Cart state is a session-scoped
// JSON document in the persistence mirror; every mutation is written
// through synchronously.
type Service struct {
	store   store.Store
	catalog *catalog.Service
	config  *config.Config
	bus     *events.Bus
}

// NewService creates a new cart service
func NewService(st store.Store, cat *catalog.Service, cfg *config.Config, bus *events.Bus) *Service {
	return &Service{
		store:   st,
		catalog: cat,
		config:  cfg,
		bus:     bus,
	}
}

// ItemResponse represents a cart line joined with its product details
// and the images of the chosen colorway.
type ItemResponse struct {
	ProductID string           `json:"product_id"`
	Size      string           `json:"size"`
	ColorName string           `json:"color_name"`
	Quantity  int              `json:"quantity"`
	Price     int64            `json:"price"`
	Images    []string         `json:"images"`
	Product   *catalog.Product `json:"product,omitempty"`
	AddedAt   time.Time        `json:"added_at"`
}

// Response represents a shopping cart with items and totals.
type Response struct {
	SessionID string         `json:"session_id"`
	Items     []ItemResponse `json:"items"`
	Totals    Totals         `json:"totals"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// AddRequest represents an add-to-cart request.
type AddRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	ColorName string `json:"color_name" binding:"required"`
}

// UpdateQuantityRequest represents a quantity update request.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// Get retrieves the cart for a session, joined against the catalog.
// Lines referencing products that no longer resolve are pruned.
func (s *Service) Get(ctx context.Context, sessionID string) (*Response, error) {
	doc, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	items := make([]ItemResponse, 0, len(doc.Lines))
	for _, line := range doc.Lines {
		prod, ok := s.catalog.ByID(line.ProductID)
		if !ok {
			continue
		}

		item := ItemResponse{
			ProductID: line.ProductID,
			Size:      line.Size,
			ColorName: line.ColorName,
			Quantity:  line.Quantity,
			Price:     prod.Price,
			Product:   prod,
			AddedAt:   line.AddedAt,
		}
		if color, ok := prod.ColorByName(line.ColorName); ok {
			item.Images = color.Images
		}
		items = append(items, item)
	}

	return &Response{
		SessionID: sessionID,
		Items:     items,
		Totals:    calculateTotals(items),
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

// Add adds one unit of the chosen product/size/colorway to the cart.
// An existing line with the same identity is incremented. Unrecognized
// size or color selections are rejected without touching the ledger.
func (s *Service) Add(ctx context.Context, sessionID string, req *AddRequest) (*Response, error) {
	prod, ok := s.catalog.ByID(req.ProductID)
	if !ok {
		return nil, fmt.Errorf("product not found")
	}
	if !prod.HasSize(req.Size) {
		return nil, fmt.Errorf("size %q is not offered for %s", req.Size, prod.Name)
	}
	if _, ok := prod.ColorByName(req.ColorName); !ok {
		return nil, fmt.Errorf("color %q is not offered for %s", req.ColorName, prod.Name)
	}

	doc, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range doc.Lines {
		if doc.Lines[i].Matches(req.ProductID, req.Size, req.ColorName) {
			doc.Lines[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		doc.Lines = append(doc.Lines, Line{
			ProductID: req.ProductID,
			Size:      req.Size,
			ColorName: req.ColorName,
			Quantity:  1,
			AddedAt:   time.Now().UTC(),
		})
	}

	if err := s.save(ctx, sessionID, doc); err != nil {
		return nil, err
	}
	return s.Get(ctx, sessionID)
}

// UpdateQuantity replaces a line's quantity. A quantity of zero or less
// removes the line. Updating an absent line is a no-op.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID, size, colorName string, quantity int) (*Response, error) {
	doc, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	changed := false
	for i := range doc.Lines {
		if doc.Lines[i].Matches(productID, size, colorName) {
			if quantity <= 0 {
				doc.Lines = append(doc.Lines[:i], doc.Lines[i+1:]...)
			} else {
				doc.Lines[i].Quantity = quantity
			}
			changed = true
			break
		}
	}

	if changed {
		if err := s.save(ctx, sessionID, doc); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, sessionID)
}

// Remove removes the exact matching line; absent lines are a no-op.
func (s *Service) Remove(ctx context.Context, sessionID, productID, size, colorName string) (*Response, error) {
	return s.UpdateQuantity(ctx, sessionID, productID, size, colorName, 0)
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Del(ctx, cartKey(sessionID)); err != nil {
		return err
	}
	s.bus.Publish(events.Event{SessionID: sessionID, Topic: events.TopicCart})
	return nil
}

// Count returns the total quantity across all lines, for badge displays.
func (s *Service) Count(ctx context.Context, sessionID string) (int, error) {
	resp, err := s.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return resp.Totals.TotalQuantity, nil
}

// Total returns the cart subtotal in cents at current catalog prices.
func (s *Service) Total(ctx context.Context, sessionID string) (int64, error) {
	resp, err := s.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return resp.Totals.Subtotal, nil
}

// Private helper methods

func (s *Service) load(ctx context.Context, sessionID string) (*document, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required")
	}

	var doc document
	err := store.GetJSON(ctx, s.store, cartKey(sessionID), &doc)
	if errors.Is(err, store.ErrNotFound) || (err == nil && doc.SchemaVersion != schemaVersion) {
		now := time.Now().UTC()
		return &document{
			SchemaVersion: schemaVersion,
			Lines:         []Line{},
			CreatedAt:     now,
			UpdatedAt:     now,
		}, nil
	} else if err != nil {
		return nil, err
	}

	return &doc, nil
}

func (s *Service) save(ctx context.Context, sessionID string, doc *document) error {
	doc.UpdatedAt = time.Now().UTC()
	if err := store.SetJSON(ctx, s.store, cartKey(sessionID), doc, s.config.Store.SessionTTL); err != nil {
		return err
	}
	s.bus.Publish(events.Event{SessionID: sessionID, Topic: events.TopicCart})
	return nil
}

func calculateTotals(items []ItemResponse) Totals {
	var totals Totals
	totals.LineCount = len(items)
	for _, item := range items {
		totals.TotalQuantity += item.Quantity
		totals.Subtotal += item.Price * int64(item.Quantity)
	}
	return totals
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}
