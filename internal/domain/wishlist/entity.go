// internal/domain/wishlist/entity.go
package wishlist

import "time"

const schemaVersion = 1

// document is the persisted wishlist or compare set for one session.
// Members keeps product ids in insertion order.
type document struct {
	SchemaVersion int       `json:"schema_version"`
	Members       []string  `json:"members"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (d *document) contains(id string) bool {
	for _, member := range d.Members {
		if member == id {
			return true
		}
	}
	return false
}

func (d *document) remove(id string) bool {
	for i, member := range d.Members {
		if member == id {
			d.Members = append(d.Members[:i], d.Members[i+1:]...)
			return true
		}
	}
	return false
}
