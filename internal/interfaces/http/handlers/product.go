// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sneakhaus/storefront/internal/domain/catalog"
)

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	catalog *catalog.Service
}

// NewProductHandler creates a new product handler
func NewProductHandler(cat *catalog.Service) *ProductHandler {
	return &ProductHandler{
		catalog: cat,
	}
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products := h.catalog.All()

	// Optional view selectors, mirroring the storefront pages
	switch c.Query("view") {
	case "new-arrivals":
		products = h.catalog.NewArrivals()
	case "sale":
		products = h.catalog.SaleProducts()
	case "featured":
		products = h.catalog.Featured()
	case "accessories":
		products = h.catalog.Accessories()
	}

	if gender := c.Query("gender"); gender != "" {
		products = catalog.Filter(products, catalog.FilterState{Genders: []string{gender}})
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products": products,
			"total":    len(products),
		},
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, ok := h.catalog.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// SearchProducts handles GET /products/search
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	products := h.catalog.Search(query)

	c.JSON(http.StatusOK, gin.H{
		"message": "Search completed successfully",
		"data": gin.H{
			"query":    query,
			"products": products,
			"total":    len(products),
		},
	})
}

// FilterProducts handles POST /products/filter
func (h *ProductHandler) FilterProducts(c *gin.Context) {
	var state catalog.FilterState
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	all := h.catalog.All()
	products := catalog.Filter(all, state)

	c.JSON(http.StatusOK, gin.H{
		"message": "Products filtered successfully",
		"data": gin.H{
			"products": products,
			"total":    len(products),
			"available": gin.H{
				"categories":  catalog.AvailableCategories(all),
				"sizes":       catalog.AvailableSizes(all),
				"colors":      catalog.AvailableColors(all),
				"price_range": catalog.GetPriceRange(all),
			},
		},
	})
}
