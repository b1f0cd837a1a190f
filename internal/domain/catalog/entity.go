// internal/domain/catalog/entity.go
package catalog

import "fmt"

// Gender represents the product gender segment
type Gender string

const (
	GenderMen    Gender = "men"
	GenderWomen  Gender = "women"
	GenderUnisex Gender = "unisex"
)

// Color represents a product colorway with its swatch value and the
// image set shown when the colorway is selected.
type Color struct {
	Name   string   `json:"name"`
	Value  string   `json:"value"` // hex swatch
	Images []string `json:"images"`
}

// Product represents a catalog product. Products are seeded at process
// start and never mutated afterwards; prices are in cents.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	OriginalPrice int64    `json:"original_price,omitempty"` // pre-sale price, only set when on sale
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Gender        Gender   `json:"gender"`
	Sizes         []string `json:"sizes"`
	Colors        []Color  `json:"colors"`
	Description   string   `json:"description"`
	UseCases      []string `json:"use_cases,omitempty"`
	IsNewArrival  bool     `json:"is_new_arrival"`
	IsOnSale      bool     `json:"is_on_sale"`
	Featured      bool     `json:"featured"`
}

// HasSize reports whether the product is offered in the given size.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// ColorByName resolves one of the product's colorways by name.
func (p *Product) ColorByName(name string) (*Color, bool) {
	for i := range p.Colors {
		if p.Colors[i].Name == name {
			return &p.Colors[i], true
		}
	}
	return nil, false
}

// GetFormattedPrice returns the price as dollars.
func (p *Product) GetFormattedPrice() float64 {
	return float64(p.Price) / 100
}

// GetDiscountPercentage returns the sale discount relative to the
// original price, 0 when the product is not discounted.
func (p *Product) GetDiscountPercentage() int {
	if p.OriginalPrice > 0 && p.Price < p.OriginalPrice {
		return int(((p.OriginalPrice - p.Price) * 100) / p.OriginalPrice)
	}
	return 0
}

// Validate checks the product schema at catalog load time, so the rest
// of the engine never re-checks shape.
func (p *Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("product %s: name is required", p.ID)
	}
	if p.Price <= 0 {
		return fmt.Errorf("product %s: price must be positive", p.ID)
	}
	if p.OriginalPrice != 0 && p.OriginalPrice <= p.Price {
		return fmt.Errorf("product %s: original price must exceed sale price", p.ID)
	}
	switch p.Gender {
	case GenderMen, GenderWomen, GenderUnisex:
	default:
		return fmt.Errorf("product %s: invalid gender %q", p.ID, p.Gender)
	}
	if len(p.Sizes) == 0 {
		return fmt.Errorf("product %s: at least one size is required", p.ID)
	}
	if len(p.Colors) == 0 {
		return fmt.Errorf("product %s: at least one color is required", p.ID)
	}
	for _, c := range p.Colors {
		if c.Name == "" || c.Value == "" {
			return fmt.Errorf("product %s: color name and swatch value are required", p.ID)
		}
		if len(c.Images) == 0 {
			return fmt.Errorf("product %s: color %q has no images", p.ID, c.Name)
		}
	}
	return nil
}
