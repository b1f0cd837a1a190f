// internal/engine/engine.go
package engine

import (
	"github.com/sirupsen/logrus"
	"github.com/sneakhaus/storefront/internal/config"
	"github.com/sneakhaus/storefront/internal/domain/cart"
	"github.com/sneakhaus/storefront/internal/domain/catalog"
	"github.com/sneakhaus/storefront/internal/domain/checkout"
	"github.com/sneakhaus/storefront/internal/domain/order"
	"github.com/sneakhaus/storefront/internal/domain/user"
	"github.com/sneakhaus/storefront/internal/domain/wishlist"
	"github.com/sneakhaus/storefront/internal/infrastructure/store"
	"github.com/sneakhaus/storefront/internal/pkg/events"
)

// Engine owns the storefront state services over a shared persistence
// mirror and publishes a change event after every committed mutation.
type Engine struct {
	Catalog  *catalog.Service
	Cart     *cart.Service
	Wishlist *wishlist.Service
	Orders   *order.Service
	Checkout *checkout.Service
	Users    *user.Service

	bus *events.Bus
}

// New wires the state engine over the given mirror and product catalog.
func New(st store.Store, cat *catalog.Service, cfg *config.Config, logger *logrus.Logger) *Engine {
	bus := events.NewBus()

	cartService := cart.NewService(st, cat, cfg, bus)

	return &Engine{
		Catalog:  cat,
		Cart:     cartService,
		Wishlist: wishlist.NewService(st, cat, cfg, bus),
		Orders:   order.NewService(st, cfg, cartService, bus, logger),
		Checkout: checkout.NewService(st, cat, cfg, cartService, bus),
		Users:    user.NewService(st, cfg, bus),
		bus:      bus,
	}
}

// Subscribe registers a callback invoked synchronously after each
// committed mutation, the engine's analog of render-on-change.
func (e *Engine) Subscribe(fn func(events.Event)) {
	e.bus.Subscribe(fn)
}
