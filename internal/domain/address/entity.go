// internal/domain/address/entity.go
package address

import "strings"

// Address represents a delivery address. Addresses are created from user input
// and never mutated in place; deletion is the only change after creation.
type Address struct {
	ID          string `json:"id"`
	Label       string `json:"label"` // Home / Office / Other
	HouseNumber string `json:"house_number"`
	Street      string `json:"street"`
	Landmark    string `json:"landmark"`
	Locality    string `json:"locality"`
	IsDefault   bool   `json:"is_default"`
}

// Text renders the address as a single delivery line for order snapshots and
// order summaries.
func (a Address) Text() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.HouseNumber, a.Street, a.Landmark} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if a.Locality != "" {
		parts = append(parts, a.Locality+", Jaunpur, UP")
	}
	return strings.Join(parts, ", ")
}

// snapshot is the persisted shape of the directory.
type snapshot struct {
	Addresses  []Address `json:"addresses"`
	SelectedID string    `json:"selected_id"`
}
