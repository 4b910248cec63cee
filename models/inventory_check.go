package models

import "time"

// Inventory check statuses.
const (
	CheckDraft    = "DRAFT"
	CheckBalanced = "BALANCED"
)

// InventoryCheck compares system stock against a physical count. Balancing
// commits every line's actual stock into the inventory ledger.
type InventoryCheck struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time

	HotelID uint   `gorm:"index" json:"hotelId"`
	Code    string `gorm:"size:20;uniqueIndex" json:"code"` // KK######

	Items []InventoryCheckItem `gorm:"foreignKey:InventoryCheckID;constraint:OnDelete:CASCADE" json:"items"`

	TotalDifference int `gorm:"column:total_difference" json:"totalDifference"`
	TotalIncrease   int `gorm:"column:total_increase" json:"totalIncrease"` // sum of positive diffs
	TotalDecrease   int `gorm:"column:total_decrease" json:"totalDecrease"` // sum of negative diffs

	Status string `gorm:"size:20;index" json:"status"`

	CreatedByID  uint       `gorm:"column:created_by_id" json:"createdById"`
	BalancedByID *uint      `gorm:"column:balanced_by_id" json:"balancedById,omitempty"`
	BalanceDate  *time.Time `gorm:"column:balance_date" json:"balanceDate,omitempty"`
	Note         string     `gorm:"type:text" json:"note,omitempty"`
}

type InventoryCheckItem struct {
	ID               uint `gorm:"primaryKey" json:"id"`
	InventoryCheckID uint `gorm:"index;column:inventory_check_id" json:"inventoryCheckId"`

	ItemID uint   `gorm:"column:item_id" json:"itemId"`
	Code   string `gorm:"size:20" json:"code"`
	Name   string `gorm:"size:255" json:"name"`
	Unit   string `gorm:"size:50" json:"unit"`

	SystemStock int `gorm:"column:system_stock" json:"systemStock"` // ledger value at snapshot time
	ActualStock int `gorm:"column:actual_stock" json:"actualStock"` // counted value
	Difference  int `json:"difference"`                             // actual - system

	CreatedAt time.Time
	UpdatedAt time.Time
}
