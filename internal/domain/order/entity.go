// internal/domain/order/entity.go
package order

import "time"

// Status represents the order status
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
)

// ShippingInfo represents the shipping address captured at checkout.
type ShippingInfo struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	ZipCode   string `json:"zip_code" binding:"required"`
	Country   string `json:"country"`
}

// Item is a cart line frozen at order creation time: the name, chosen
// size and colorway, image and unit price no longer track the catalog.
type Item struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	Size       string `json:"size"`
	ColorName  string `json:"color_name"`
	Image      string `json:"image"`
	Quantity   int    `json:"quantity"`
	Price      int64  `json:"price"`       // unit price in cents, frozen
	TotalPrice int64  `json:"total_price"` // Quantity * Price
}

// Order represents a placed order. Orders are immutable once created
// except for status transitions driven by fulfillment.
type Order struct {
	ID                string       `json:"id"`
	Email             string       `json:"email"`
	Status            Status       `json:"status"`
	Items             []Item       `json:"items"`
	ShippingInfo      ShippingInfo `json:"shipping_info"`
	PaymentMethod     string       `json:"payment_method"`
	Subtotal          int64        `json:"subtotal"`
	ShippingCost      int64        `json:"shipping_cost"`
	TaxAmount         int64        `json:"tax_amount"`
	TotalAmount       int64        `json:"total_amount"`
	TrackingNumber    string       `json:"tracking_number"`
	OrderDate         time.Time    `json:"order_date"`
	EstimatedDelivery time.Time    `json:"estimated_delivery"`
}

// GetFormattedTotal returns the total amount as dollars.
func (o *Order) GetFormattedTotal() float64 {
	return float64(o.TotalAmount) / 100
}

// CanTransitionTo reports whether the fulfillment status change is
// allowed. Orders only move forward.
func (o *Order) CanTransitionTo(next Status) bool {
	transitions := map[Status][]Status{
		StatusPending:    {StatusProcessing},
		StatusProcessing: {StatusShipped},
		StatusShipped:    {StatusDelivered},
	}
	for _, allowed := range transitions[o.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}
