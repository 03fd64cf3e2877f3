package models

import (
	"strings"
	"time"
)

// Fault names form a fixed, closed set. Faults are never registered at
// runtime; the three rows are seeded at migration time and only their
// enabled flag is ever mutated.
const (
	FaultDisableAddToCart = "disableAddToCart"
	FaultJamPagination    = "jamPagination"
	FaultFakeOutOfStock   = "fakeOutOfStock"
)

// FaultNames lists every valid fault name.
var FaultNames = []string{
	FaultDisableAddToCart,
	FaultJamPagination,
	FaultFakeOutOfStock,
}

// IsValidFaultName reports whether name belongs to the fixed fault set.
func IsValidFaultName(name string) bool {
	for _, n := range FaultNames {
		if n == name {
			return true
		}
	}
	return false
}

// Fault is a persisted named boolean switch.
type Fault struct {
	Name      string    `gorm:"primaryKey;size:64" json:"name"`
	IsEnabled bool      `gorm:"column:is_enabled;not null;default:false" json:"is_enabled"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FaultStatus is the total snapshot of every fault. Every key is always
// present; a missing store row reads as false.
type FaultStatus struct {
	DisableAddToCart bool `json:"disableAddToCart"`
	JamPagination    bool `json:"jamPagination"`
	FakeOutOfStock   bool `json:"fakeOutOfStock"`
}

// Get returns the snapshot value for a fault name.
func (s FaultStatus) Get(name string) bool {
	switch name {
	case FaultDisableAddToCart:
		return s.DisableAddToCart
	case FaultJamPagination:
		return s.JamPagination
	case FaultFakeOutOfStock:
		return s.FakeOutOfStock
	}
	return false
}

// Set assigns the snapshot value for a fault name.
func (s *FaultStatus) Set(name string, enabled bool) {
	switch name {
	case FaultDisableAddToCart:
		s.DisableAddToCart = enabled
	case FaultJamPagination:
		s.JamPagination = enabled
	case FaultFakeOutOfStock:
		s.FakeOutOfStock = enabled
	}
}

// Product is a catalog item.
type Product struct {
	ID          string  `gorm:"primaryKey;size:64" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	ImageURL    string  `gorm:"column:image_url" json:"imageUrl"`
	Stock       int     `gorm:"not null;default:0" json:"stock"`
}

// CartAddRequest is the add-to-cart request payload.
type CartAddRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Normalize trims whitespace from input fields
func (r *CartAddRequest) Normalize() {
	r.ProductID = strings.TrimSpace(r.ProductID)
}
