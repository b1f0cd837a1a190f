package cart

import (
	"context"
	"testing"
	"time"

	"github.com/sneakhaus/storefront/internal/config"
	"github.com/sneakhaus/storefront/internal/domain/catalog"
	"github.com/sneakhaus/storefront/internal/infrastructure/store"
	"github.com/sneakhaus/storefront/internal/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Store: config.StoreConfig{SessionTTL: time.Hour},
		Checkout: config.CheckoutConfig{
			TaxRate:               0.08,
			FreeShippingThreshold: 20000,
			StandardShippingFee:   1500,
			DeliveryDays:          5,
			CompareLimit:          3,
			UpsellLimit:           3,
		},
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	cat, err := catalog.NewService(catalog.Seed())
	require.NoError(t, err)
	return NewService(store.NewMemory(), cat, testConfig(), events.NewBus())
}

func TestGetEmptyCart(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Get(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, Totals{}, resp.Totals)
}

func TestAddToCart(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Add(ctx, "session-1", &AddRequest{
		ProductID: "1", Size: "10", ColorName: "White/Gray",
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	item := resp.Items[0]
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, int64(29900), item.Price)
	assert.Equal(t, []string{"/images/mens-athletic-white.jpg", "/images/mens-athletic-white-2.jpg"}, item.Images)
	assert.Equal(t, int64(29900), resp.Totals.Subtotal)
}

func TestAddSameIdentityMergesLine(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	req := &AddRequest{ProductID: "1", Size: "10", ColorName: "White/Gray"}

	_, err := svc.Add(ctx, "session-1", req)
	require.NoError(t, err)
	resp, err := svc.Add(ctx, "session-1", req)
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, Totals{LineCount: 1, TotalQuantity: 2, Subtotal: 59800}, resp.Totals)
}

func TestAddDifferentSizeCreatesSeparateLine(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "session-1", &AddRequest{ProductID: "1", Size: "10", ColorName: "White/Gray"})
	require.NoError(t, err)
	resp, err := svc.Add(ctx, "session-1", &AddRequest{ProductID: "1", Size: "11", ColorName: "White/Gray"})
	require.NoError(t, err)

	assert.Len(t, resp.Items, 2)
	assert.Equal(t, Totals{LineCount: 2, TotalQuantity: 2, Subtotal: 59800}, resp.Totals)
}

func TestAddRejectsUnknownProduct(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Add(context.Background(), "session-1", &AddRequest{
		ProductID: "999", Size: "10", ColorName: "White/Gray",
	})
	assert.Error(t, err)
}

func TestAddRejectsUnofferedSelections(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "session-1", &AddRequest{ProductID: "1", Size: "99", ColorName: "White/Gray"})
	assert.Error(t, err)

	_, err = svc.Add(ctx, "session-1", &AddRequest{ProductID: "1", Size: "10", ColorName: "Chartreuse"})
	assert.Error(t, err)

	// Nothing was written
	resp, err := svc.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestUpdateQuantity(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "session-1", &AddRequest{ProductID: "1", Size: "10", ColorName: "White/Gray"})
	require.NoError(t, err)

	resp, err := svc.UpdateQuantity(ctx, "session-1", "1", "10", "White/Gray", 5)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 5, resp.Items[0].Quantity)
	assert.Equal(t, int64(149500), resp.Totals.Subtotal)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "session-1", &AddRequest{ProductID: "1", Size: "10", ColorName: "White/Gray"})
	require.NoError(t, err)

	resp, err := svc.UpdateQuantity(ctx, "session-1", "1", "10", "White/Gray", 0)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestUpdateQuantityAbsentLineIsNoOp(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "session-1", &AddRequest{ProductID: "1", Size: "10", ColorName: "White/Gray"})
	require.NoError(t, err)

	resp, err := svc.UpdateQuantity(ctx, "session-1", "2", "9", "Navy/White", 4)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Quantity)
}

func TestRemoveMatchesFullIdentity(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "session-1", &AddRequest{ProductID: "1", Size: "10", ColorName: "White/Gray"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, "session-1", &AddRequest{ProductID: "1", Size: "10", ColorName: "Black/Gray"})
	require.NoError(t, err)

	resp, err := svc.Remove(ctx, "session-1", "1", "10", "White/Gray")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Black/Gray", resp.Items[0].ColorName)
}

func TestClearCart(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "session-1", &AddRequest{ProductID: "1", Size: "10", ColorName: "White/Gray"})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "session-1"))

	resp, err := svc.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestCartSurvivesReload(t *testing.T) {
	st := store.NewMemory()
	cat, err := catalog.NewService(catalog.Seed())
	require.NoError(t, err)
	cfg := testConfig()
	ctx := context.Background()

	first := NewService(st, cat, cfg, events.NewBus())
	_, err = first.Add(ctx, "session-1", &AddRequest{ProductID: "2", Size: "9", ColorName: "Navy/White"})
	require.NoError(t, err)

	// A fresh service over the same mirror sees the same cart
	second := NewService(st, cat, cfg, events.NewBus())
	resp, err := second.Get(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "2", resp.Items[0].ProductID)
}

func TestSessionsAreIsolated(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "session-a", &AddRequest{ProductID: "1", Size: "10", ColorName: "White/Gray"})
	require.NoError(t, err)

	resp, err := svc.Get(ctx, "session-b")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestCountAndTotal(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "session-1", &AddRequest{ProductID: "1", Size: "10", ColorName: "White/Gray"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, "session-1", &AddRequest{ProductID: "1", Size: "10", ColorName: "White/Gray"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, "session-1", &AddRequest{ProductID: "7", Size: "M", ColorName: "White"})
	require.NoError(t, err)

	count, err := svc.Count(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	total, err := svc.Total(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2*29900+1900), total)
}

func TestMutationsPublishCartEvents(t *testing.T) {
	st := store.NewMemory()
	cat, err := catalog.NewService(catalog.Seed())
	require.NoError(t, err)
	bus := events.NewBus()
	svc := NewService(st, cat, testConfig(), bus)

	var received []events.Event
	bus.Subscribe(func(e events.Event) { received = append(received, e) })

	ctx := context.Background()
	_, err = svc.Add(ctx, "session-1", &AddRequest{ProductID: "1", Size: "10", ColorName: "White/Gray"})
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, "session-1"))

	require.Len(t, received, 2)
	for _, e := range received {
		assert.Equal(t, events.TopicCart, e.Topic)
		assert.Equal(t, "session-1", e.SessionID)
	}
}
