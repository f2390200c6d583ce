// model/resource.go
package model

import "time"

type Category string

const (
	CategoryBooks        Category = "books"
	CategoryLabEquipment Category = "lab-equipment"
	CategoryStationery   Category = "stationery"
	CategoryElectronics  Category = "electronics"
	CategoryOther        Category = "other"
)

// ValidCategory reports whether c is one of the closed category set.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryBooks, CategoryLabEquipment, CategoryStationery, CategoryElectronics, CategoryOther:
		return true
	}
	return false
}

type Resource struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	OwnerEmail  string    `json:"owner_email"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	PricePerDay float64   `json:"price_per_day"`
	Image       *string   `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
