package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sneakhaus/storefront/internal/config"
	"github.com/sneakhaus/storefront/internal/domain/catalog"
	"github.com/sneakhaus/storefront/internal/engine"
	"github.com/sneakhaus/storefront/internal/infrastructure/store"
	"github.com/sneakhaus/storefront/internal/interfaces/http/middleware"
	"github.com/sneakhaus/storefront/internal/interfaces/http/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		App:   config.AppConfig{Name: "storefront-test", Environment: "development"},
		Store: config.StoreConfig{SessionTTL: time.Hour},
		JWT: config.JWTConfig{
			Secret:            "test-secret-that-is-long-enough-123",
			AccessTokenExpiry: time.Hour,
		},
		Security: config.SecurityConfig{BcryptCost: 4},
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

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	cat, err := catalog.NewService(catalog.Seed())
	require.NoError(t, err)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	eng := engine.New(store.NewMemory(), cat, cfg, logger)

	r := gin.New()
	r.Use(middleware.Session(cfg))
	routes.SetupRoutes(r.Group("/api/v1"), eng, cfg)
	return r
}

// client carries the session cookie between requests the way a browser
// would, so cart state persists across calls.
type client struct {
	router  *gin.Engine
	cookies []*http.Cookie
}

func (c *client) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestListProducts(t *testing.T) {
	c := &client{router: newTestRouter(t)}

	w := c.do(t, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(9), data["total"])
}

func TestListProductsByView(t *testing.T) {
	c := &client{router: newTestRouter(t)}

	w := c.do(t, http.MethodGet, "/api/v1/products?view=sale", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(3), data["total"])
}

func TestGetProductNotFound(t *testing.T) {
	c := &client{router: newTestRouter(t)}

	w := c.do(t, http.MethodGet, "/api/v1/products/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchProducts(t *testing.T) {
	c := &client{router: newTestRouter(t)}

	w := c.do(t, http.MethodGet, "/api/v1/products/search?q=basketball", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(1), data["total"])
}

func TestFilterProducts(t *testing.T) {
	c := &client{router: newTestRouter(t)}

	w := c.do(t, http.MethodPost, "/api/v1/products/filter", map[string]any{
		"categories": []string{"Casual"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(2), data["total"])
	assert.Contains(t, data, "available")
}

func TestCartFlow(t *testing.T) {
	c := &client{router: newTestRouter(t)}

	w := c.do(t, http.MethodPost, "/api/v1/cart/items", map[string]any{
		"product_id": "1", "size": "10", "color_name": "White/Gray",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Same session sees the item
	w = c.do(t, http.MethodGet, "/api/v1/cart/count", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(1), data["count"])

	// Clearing empties it
	w = c.do(t, http.MethodDelete, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(t, http.MethodGet, "/api/v1/cart/count", nil)
	data = decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(0), data["count"])
}

func TestAddToCartValidation(t *testing.T) {
	c := &client{router: newTestRouter(t)}

	// Missing fields fail binding
	w := c.do(t, http.MethodPost, "/api/v1/cart/items", map[string]any{
		"product_id": "1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unoffered size fails domain validation
	w = c.do(t, http.MethodPost, "/api/v1/cart/items", map[string]any{
		"product_id": "1", "size": "99", "color_name": "White/Gray",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompareCapReturnsConflict(t *testing.T) {
	c := &client{router: newTestRouter(t)}

	for _, id := range []string{"1", "2", "3"} {
		w := c.do(t, http.MethodPost, "/api/v1/compare/"+id, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := c.do(t, http.MethodPost, "/api/v1/compare/4", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	c := &client{router: newTestRouter(t)}

	w := c.do(t, http.MethodPost, "/api/v1/orders", map[string]any{
		"shipping_info": map[string]any{
			"first_name": "Jordan",
			"last_name":  "Baker",
			"email":      "jordan@example.com",
			"address":    "42 Court St",
			"city":       "Portland",
			"state":      "OR",
			"zip_code":   "97201",
		},
		"payment_method": "credit-card",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutFlow(t *testing.T) {
	c := &client{router: newTestRouter(t)}

	w := c.do(t, http.MethodPost, "/api/v1/cart/items", map[string]any{
		"product_id": "1", "size": "10", "color_name": "White/Gray",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(t, http.MethodGet, "/api/v1/checkout/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	pricing := data["pricing"].(map[string]any)
	assert.Equal(t, float64(29900), pricing["subtotal"])
	assert.Equal(t, float64(0), pricing["shipping_cost"])

	w = c.do(t, http.MethodPost, "/api/v1/orders", map[string]any{
		"shipping_info": map[string]any{
			"first_name": "Jordan",
			"last_name":  "Baker",
			"email":      "jordan@example.com",
			"address":    "42 Court St",
			"city":       "Portland",
			"state":      "OR",
			"zip_code":   "97201",
		},
		"payment_method": "credit-card",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)["data"].(map[string]any)
	orderID := created["id"].(string)

	w = c.do(t, http.MethodGet, "/api/v1/orders/"+orderID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = c.do(t, http.MethodGet, "/api/v1/orders?email=jordan@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	listed := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(1), listed["total"])
}

func TestOrderStatusRequiresAuth(t *testing.T) {
	c := &client{router: newTestRouter(t)}

	w := c.do(t, http.MethodPut, "/api/v1/orders/ORD-ABC12345/status", map[string]any{
		"status": "processing",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthFlow(t *testing.T) {
	c := &client{router: newTestRouter(t)}

	w := c.do(t, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"email":      "jordan@example.com",
		"password":   "hunter2hunter2",
		"first_name": "Jordan",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.NotEmpty(t, data["token"])

	w = c.do(t, http.MethodGet, "/api/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(t, http.MethodPost, "/api/v1/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(t, http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
