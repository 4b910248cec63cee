package models

import "time"

// InventoryItem.Stock is the authoritative count of available units. It is
// decremented/incremented by invoice operations and overwritten by inventory
// check balancing.
type InventoryItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time

	HotelID uint   `gorm:"index" json:"hotelId"`
	Code    string `gorm:"size:20;uniqueIndex" json:"code"` // SP#####
	Name    string `gorm:"size:255" json:"name"`
	Unit    string `gorm:"size:50" json:"unit"`

	SellingPrice float64 `gorm:"column:selling_price" json:"sellingPrice"`
	CostPrice    float64 `gorm:"column:cost_price" json:"costPrice"`

	Stock int `json:"stock"` // integer >= 0, enforced in application code

	ItemType    string `gorm:"size:50;column:item_type" json:"itemType,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Image       string `gorm:"size:255" json:"image,omitempty"`
}
