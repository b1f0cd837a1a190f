// internal/domain/wishlist/service.go
package wishlist

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

// ErrCompareFull is returned when the compare set already holds the
// maximum number of products. The set is left unchanged.
var ErrCompareFull = errors.New("compare list is full")

// Service handles wishlist and compare-set business logic. Both are
// ordered sets of product ids persisted per session; the compare set is
// capped (3 by default).
type Service struct {
	store   store.Store
	catalog *catalog.Service
	config  *config.Config
	bus     *events.Bus
}

// NewService creates a new wishlist service
func NewService(st store.Store, cat *catalog.Service, cfg *config.Config, bus *events.Bus) *Service {
	return &Service{
		store:   st,
		catalog: cat,
		config:  cfg,
		bus:     bus,
	}
}

// AddToWishlist adds a product id to the wishlist; adding a member that
// is already present is a no-op.
func (s *Service) AddToWishlist(ctx context.Context, sessionID, productID string) error {
	if _, ok := s.catalog.ByID(productID); !ok {
		return fmt.Errorf("product not found")
	}

	doc, err := s.load(ctx, wishlistKey(sessionID))
	if err != nil {
		return err
	}
	if doc.contains(productID) {
		return nil
	}

	doc.Members = append(doc.Members, productID)
	return s.save(ctx, wishlistKey(sessionID), doc, events.Event{SessionID: sessionID, Topic: events.TopicWishlist})
}

// RemoveFromWishlist removes a product id; absent members are a no-op.
func (s *Service) RemoveFromWishlist(ctx context.Context, sessionID, productID string) error {
	doc, err := s.load(ctx, wishlistKey(sessionID))
	if err != nil {
		return err
	}
	if !doc.remove(productID) {
		return nil
	}
	return s.save(ctx, wishlistKey(sessionID), doc, events.Event{SessionID: sessionID, Topic: events.TopicWishlist})
}

// IsInWishlist reports wishlist membership.
func (s *Service) IsInWishlist(ctx context.Context, sessionID, productID string) (bool, error) {
	doc, err := s.load(ctx, wishlistKey(sessionID))
	if err != nil {
		return false, err
	}
	return doc.contains(productID), nil
}

// GetWishlistProducts joins the wishlist against the catalog, preserving
// insertion order and silently skipping ids that no longer resolve.
func (s *Service) GetWishlistProducts(ctx context.Context, sessionID string) ([]catalog.Product, error) {
	doc, err := s.load(ctx, wishlistKey(sessionID))
	if err != nil {
		return nil, err
	}
	return s.resolve(doc.Members), nil
}

// AddToCompare adds a product id to the compare set. Members already
// present are a no-op; a full set returns ErrCompareFull untouched.
func (s *Service) AddToCompare(ctx context.Context, sessionID, productID string) error {
	if _, ok := s.catalog.ByID(productID); !ok {
		return fmt.Errorf("product not found")
	}

	doc, err := s.load(ctx, compareKey(sessionID))
	if err != nil {
		return err
	}
	if doc.contains(productID) {
		return nil
	}
	if len(doc.Members) >= s.config.Checkout.CompareLimit {
		return ErrCompareFull
	}

	doc.Members = append(doc.Members, productID)
	return s.save(ctx, compareKey(sessionID), doc, events.Event{SessionID: sessionID, Topic: events.TopicCompare})
}

// RemoveFromCompare removes a product id from the compare set.
func (s *Service) RemoveFromCompare(ctx context.Context, sessionID, productID string) error {
	doc, err := s.load(ctx, compareKey(sessionID))
	if err != nil {
		return err
	}
	if !doc.remove(productID) {
		return nil
	}
	return s.save(ctx, compareKey(sessionID), doc, events.Event{SessionID: sessionID, Topic: events.TopicCompare})
}

// ClearCompare empties the compare set.
func (s *Service) ClearCompare(ctx context.Context, sessionID string) error {
	if err := s.store.Del(ctx, compareKey(sessionID)); err != nil {
		return err
	}
	s.bus.Publish(events.Event{SessionID: sessionID, Topic: events.TopicCompare})
	return nil
}

// GetCompareProducts joins the compare set against the catalog in
// insertion order.
func (s *Service) GetCompareProducts(ctx context.Context, sessionID string) ([]catalog.Product, error) {
	doc, err := s.load(ctx, compareKey(sessionID))
	if err != nil {
		return nil, err
	}
	return s.resolve(doc.Members), nil
}

// Private helper methods

func (s *Service) resolve(ids []string) []catalog.Product {
	products := []catalog.Product{}
	for _, id := range ids {
		if prod, ok := s.catalog.ByID(id); ok {
			products = append(products, *prod)
		}
	}
	return products
}

func (s *Service) load(ctx context.Context, key string) (*document, error) {
	var doc document
	err := store.GetJSON(ctx, s.store, key, &doc)
	if errors.Is(err, store.ErrNotFound) || (err == nil && doc.SchemaVersion != schemaVersion) {
		return &document{
			SchemaVersion: schemaVersion,
			Members:       []string{},
			UpdatedAt:     time.Now().UTC(),
		}, nil
	} else if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Service) save(ctx context.Context, key string, doc *document, event events.Event) error {
	doc.UpdatedAt = time.Now().UTC()
	if err := store.SetJSON(ctx, s.store, key, doc, s.config.Store.SessionTTL); err != nil {
		return err
	}
	s.bus.Publish(event)
	return nil
}

func wishlistKey(sessionID string) string {
	return fmt.Sprintf("wishlist:session:%s", sessionID)
}

func compareKey(sessionID string) string {
	return fmt.Sprintf("compare:session:%s", sessionID)
}
