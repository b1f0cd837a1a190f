// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sneakhaus/storefront/internal/domain/checkout"
	"github.com/sneakhaus/storefront/internal/domain/order"
	"github.com/sneakhaus/storefront/internal/interfaces/http/middleware"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// GetSummary handles GET /checkout/summary
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	summary, err := h.checkoutService.GetSummary(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute checkout summary",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout summary retrieved successfully",
		"data":    summary,
	})
}

// setStepRequest carries the checkout step to move to.
type setStepRequest struct {
	Step int `json:"step" binding:"required"`
}

// SetStep handles PUT /checkout/step
func (h *CheckoutHandler) SetStep(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req setStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.checkoutService.SetStep(c.Request.Context(), sessionID, req.Step); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout step updated successfully",
		"data": gin.H{
			"step": req.Step,
		},
	})
}

// shippingForm mirrors order.ShippingInfo without binding tags so that
// incomplete forms reach the validator instead of failing at bind time.
type shippingForm struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
}

// ValidateShipping handles POST /checkout/validate/shipping
func (h *CheckoutHandler) ValidateShipping(c *gin.Context) {
	var form shippingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	info := order.ShippingInfo{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
		Address:   form.Address,
		City:      form.City,
		State:     form.State,
		ZipCode:   form.ZipCode,
		Country:   form.Country,
	}

	validation := h.checkoutService.ValidateShipping(&info)
	c.JSON(http.StatusOK, gin.H{
		"message": "Shipping information validated",
		"data":    validation,
	})
}

// ValidatePayment handles POST /checkout/validate/payment
func (h *CheckoutHandler) ValidatePayment(c *gin.Context) {
	var req checkout.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	validation := h.checkoutService.ValidatePayment(&req)
	c.JSON(http.StatusOK, gin.H{
		"message": "Payment information validated",
		"data":    validation,
	})
}

// GetUpsells handles GET /checkout/upsells
func (h *CheckoutHandler) GetUpsells(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	products, err := h.checkoutService.UpsellProducts(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve upsell products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Upsell products retrieved successfully",
		"data": gin.H{
			"products": products,
			"total":    len(products),
		},
	})
}
