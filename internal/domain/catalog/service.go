// internal/domain/catalog/service.go
package catalog

import (
	"fmt"
)

// Service holds the immutable product catalog and serves the derived
// read views the storefront pages consume. The catalog is validated
// once at construction; views never mutate it.
type Service struct {
	products []Product
	byID     map[string]int
}

// NewService creates a catalog service from a product list. Every
// product is validated and ids must be unique; a malformed catalog is
// rejected here so nothing downstream has to defend against shape drift.
func NewService(products []Product) (*Service, error) {
	byID := make(map[string]int, len(products))
	for i := range products {
		if err := products[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog: %w", err)
		}
		if _, exists := byID[products[i].ID]; exists {
			return nil, fmt.Errorf("invalid catalog: duplicate product id %s", products[i].ID)
		}
		byID[products[i].ID] = i
	}

	return &Service{
		products: products,
		byID:     byID,
	}, nil
}

// All returns the full catalog in seed order.
func (s *Service) All() []Product {
	return s.products
}

// ByID resolves a product by id.
func (s *Service) ByID(id string) (*Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return &s.products[i], true
}

// ByGender returns products for a gender segment, in catalog order.
func (s *Service) ByGender(gender Gender) []Product {
	return s.selectWhere(func(p *Product) bool { return p.Gender == gender })
}

// NewArrivals returns products flagged as new arrivals.
func (s *Service) NewArrivals() []Product {
	return s.selectWhere(func(p *Product) bool { return p.IsNewArrival })
}

// SaleProducts returns products currently on sale.
func (s *Service) SaleProducts() []Product {
	return s.selectWhere(func(p *Product) bool { return p.IsOnSale })
}

// Featured returns products flagged for the home page.
func (s *Service) Featured() []Product {
	return s.selectWhere(func(p *Product) bool { return p.Featured })
}

// Accessories returns products in the accessory categories.
func (s *Service) Accessories() []Product {
	return s.selectWhere(func(p *Product) bool { return accessoryCategories[p.Category] })
}

func (s *Service) selectWhere(match func(*Product) bool) []Product {
	result := []Product{}
	for i := range s.products {
		if match(&s.products[i]) {
			result = append(result, s.products[i])
		}
	}
	return result
}
