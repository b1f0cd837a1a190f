// internal/domain/cart/entity.go
package cart

import "time"

// schemaVersion tags persisted cart documents. Documents carrying an
// unknown version are discarded on load instead of being migrated.
const schemaVersion = 1

// Line represents a cart line item. Identity is the
// (ProductID, Size, ColorName) triple; adding the same identity again
// increments Quantity instead of creating a second line.
type Line struct {
	ProductID string    `json:"product_id"`
	Size      string    `json:"size"`
	ColorName string    `json:"color_name"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// Matches reports whether the line has the given identity.
func (l *Line) Matches(productID, size, colorName string) bool {
	return l.ProductID == productID && l.Size == size && l.ColorName == colorName
}

// document is the persisted cart state for one session.
type document struct {
	SchemaVersion int       `json:"schema_version"`
	Lines         []Line    `json:"lines"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Totals represents calculated cart totals in cents. Subtotal uses the
// product's current catalog price, not a frozen snapshot.
type Totals struct {
	LineCount     int   `json:"line_count"`     // number of distinct lines
	TotalQuantity int   `json:"total_quantity"` // sum of all quantities
	Subtotal      int64 `json:"subtotal"`
}
