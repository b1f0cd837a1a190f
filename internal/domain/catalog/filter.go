// internal/domain/catalog/filter.go
package catalog

import "strings"

// PriceRange is an inclusive price constraint in cents. The zero value
// means unconstrained.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// IsZero reports whether the range carries no constraint.
func (r PriceRange) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

// Contains reports whether price falls inside the range.
func (r PriceRange) Contains(price int64) bool {
	return price >= r.Min && price <= r.Max
}

// FilterState is the multi-dimensional constraint applied to a product
// list. Empty selector sets leave that dimension unconstrained.
type FilterState struct {
	Categories []string   `json:"categories"`
	Sizes      []string   `json:"sizes"`
	Colors     []string   `json:"colors"`
	Genders    []string   `json:"genders"`
	Price      PriceRange `json:"price"`
}

// Filter returns the products matching every dimension of the filter
// state, preserving the input order. Size and color dimensions match
// when the product offers ANY of the selected values.
func Filter(products []Product, state FilterState) []Product {
	result := []Product{}
	for i := range products {
		if matchesFilter(&products[i], state) {
			result = append(result, products[i])
		}
	}
	return result
}

func matchesFilter(p *Product, state FilterState) bool {
	if len(state.Categories) > 0 && !containsString(state.Categories, p.Category) {
		return false
	}
	if len(state.Genders) > 0 && !containsString(state.Genders, string(p.Gender)) {
		return false
	}
	if !state.Price.IsZero() && !state.Price.Contains(p.Price) {
		return false
	}
	if len(state.Sizes) > 0 {
		matched := false
		for _, size := range p.Sizes {
			if containsString(state.Sizes, size) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	if len(state.Colors) > 0 {
		matched := false
		for _, color := range p.Colors {
			if containsString(state.Colors, color.Name) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// AvailableCategories returns the distinct categories present in the
// given product list, in first-appearance order. Passing a page's
// product slice (rather than the full catalog) keeps dependent filter
// UIs consistent with their context.
func AvailableCategories(products []Product) []string {
	return distinct(products, func(p *Product) []string { return []string{p.Category} })
}

// AvailableSizes returns the distinct sizes present in the list.
func AvailableSizes(products []Product) []string {
	return distinct(products, func(p *Product) []string { return p.Sizes })
}

// AvailableColors returns the distinct color names present in the list.
func AvailableColors(products []Product) []string {
	return distinct(products, func(p *Product) []string {
		names := make([]string, len(p.Colors))
		for i, c := range p.Colors {
			names[i] = c.Name
		}
		return names
	})
}

// GetPriceRange returns the [min, max] price over the list. An empty
// list yields a non-degenerate default range.
func GetPriceRange(products []Product) PriceRange {
	if len(products) == 0 {
		return PriceRange{Min: 0, Max: 50000}
	}
	r := PriceRange{Min: products[0].Price, Max: products[0].Price}
	for i := range products[1:] {
		price := products[i+1].Price
		if price < r.Min {
			r.Min = price
		}
		if price > r.Max {
			r.Max = price
		}
	}
	return r
}

// Search performs a case-insensitive substring match over product name,
// category and description. An empty or whitespace-only query returns
// an empty result set rather than the full catalog.
func (s *Service) Search(query string) []Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []Product{}
	}

	result := []Product{}
	for i := range s.products {
		p := &s.products[i]
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Category), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			result = append(result, *p)
		}
	}
	return result
}

func containsString(values []string, needle string) bool {
	for _, v := range values {
		if v == needle {
			return true
		}
	}
	return false
}

func distinct(products []Product, extract func(*Product) []string) []string {
	seen := make(map[string]bool)
	result := []string{}
	for i := range products {
		for _, value := range extract(&products[i]) {
			if !seen[value] {
				seen[value] = true
				result = append(result, value)
			}
		}
	}
	return result
}
