// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sneakhaus/storefront/internal/domain/wishlist"
	"github.com/sneakhaus/storefront/internal/interfaces/http/middleware"
)

// WishlistHandler handles wishlist and compare endpoints
type WishlistHandler struct {
	wishlistService *wishlist.Service
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlistService *wishlist.Service) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
	}
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	products, err := h.wishlistService.GetWishlistProducts(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve wishlist",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist retrieved successfully",
		"data": gin.H{
			"products": products,
			"total":    len(products),
		},
	})
}

// AddToWishlist handles POST /wishlist/:id
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	if err := h.wishlistService.AddToWishlist(c.Request.Context(), sessionID, c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product added to wishlist successfully",
	})
}

// RemoveFromWishlist handles DELETE /wishlist/:id
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	if err := h.wishlistService.RemoveFromWishlist(c.Request.Context(), sessionID, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update wishlist",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product removed from wishlist successfully",
	})
}

// CheckWishlist handles GET /wishlist/:id
func (h *WishlistHandler) CheckWishlist(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	inWishlist, err := h.wishlistService.IsInWishlist(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to check wishlist",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist checked successfully",
		"data": gin.H{
			"in_wishlist": inWishlist,
		},
	})
}

// GetCompare handles GET /compare
func (h *WishlistHandler) GetCompare(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	products, err := h.wishlistService.GetCompareProducts(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve compare list",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Compare list retrieved successfully",
		"data": gin.H{
			"products": products,
			"total":    len(products),
		},
	})
}

// AddToCompare handles POST /compare/:id
func (h *WishlistHandler) AddToCompare(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	err := h.wishlistService.AddToCompare(c.Request.Context(), sessionID, c.Param("id"))
	if errors.Is(err, wishlist.ErrCompareFull) {
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
		return
	} else if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product added to compare list successfully",
	})
}

// RemoveFromCompare handles DELETE /compare/:id
func (h *WishlistHandler) RemoveFromCompare(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	if err := h.wishlistService.RemoveFromCompare(c.Request.Context(), sessionID, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update compare list",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product removed from compare list successfully",
	})
}

// ClearCompare handles DELETE /compare
func (h *WishlistHandler) ClearCompare(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	if err := h.wishlistService.ClearCompare(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear compare list",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Compare list cleared successfully",
	})
}
