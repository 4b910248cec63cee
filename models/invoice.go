package models

import (
	"time"

	"gorm.io/datatypes"
)

// Invoice statuses. OPEN is the only mutable state; PAID and CANCELLED are
// terminal.
const (
	InvoiceOpen      = "OPEN"
	InvoicePaid      = "PAID"
	InvoiceCancelled = "CANCELLED"
)

// Invoice types.
const (
	InvoiceTypeRoom    = "ROOM"
	InvoiceTypeService = "SERVICE"
)

// Invoice line kinds.
const (
	LineTypeInventory = "inventory"
	LineTypeService   = "service"

	ItemTypeRoom      = 1
	ItemTypeInventory = 2
)

type Invoice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time

	HotelID     uint   `gorm:"index" json:"hotelId"`
	Code        string `gorm:"size:20;uniqueIndex" json:"code"` // HD######
	InvoiceType string `gorm:"size:20;column:invoice_type" json:"invoiceType"`

	RoomID    *uint `gorm:"index;column:room_id" json:"roomId,omitempty"`
	BookingID *uint `gorm:"column:booking_id" json:"bookingId,omitempty"`

	CustomerName    string `gorm:"size:255;column:customer_name" json:"customerName,omitempty"`
	CustomerPhone   string `gorm:"size:50;column:customer_phone" json:"customerPhone,omitempty"`
	CustomerAddress string `gorm:"size:255;column:customer_address" json:"customerAddress,omitempty"`

	CheckIn  *time.Time `gorm:"column:check_in" json:"checkIn,omitempty"`
	CheckOut *time.Time `gorm:"column:check_out" json:"checkOut,omitempty"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items"`

	TotalAmount float64 `gorm:"column:total_amount" json:"totalAmount"`
	Discount    float64 `json:"discount"`
	FinalAmount float64 `gorm:"column:final_amount" json:"finalAmount"` // totalAmount - discount

	Status string `gorm:"size:20;index" json:"status"`

	PaymentMethod    string         `gorm:"size:50;column:payment_method" json:"paymentMethod,omitempty"`
	PaymentReference string         `gorm:"size:100;column:payment_reference" json:"paymentReference,omitempty"`
	PaymentNote      string         `gorm:"type:text;column:payment_note" json:"paymentNote,omitempty"`
	PaymentRaw       datatypes.JSON `gorm:"column:payment_raw" json:"paymentRaw,omitempty"`
	PaidDate         *time.Time     `gorm:"column:paid_date" json:"paidDate,omitempty"`

	CreatedByID uint `gorm:"column:created_by_id" json:"createdById"`
	UpdatedByID uint `gorm:"column:updated_by_id" json:"updatedById"`
}

// InvoiceItem is a snapshotted line: name, code and unit price are copied
// from the source item at append time and never re-read.
type InvoiceItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	InvoiceID uint `gorm:"index;column:invoice_id" json:"invoiceId"`

	ItemID *uint  `gorm:"column:item_id" json:"itemId,omitempty"`
	Name   string `gorm:"size:255" json:"name"`
	Code   string `gorm:"size:20" json:"code,omitempty"`

	Type     string  `gorm:"size:20" json:"type"`              // inventory | service
	ItemType int     `gorm:"column:item_type" json:"itemType"` // 1 = room, 2 = inventory
	Quantity int     `json:"quantity"`                         // >= 1
	Price    float64 `gorm:"column:price" json:"price"`        // unit price
	Amount   float64 `json:"amount"`                           // quantity * price
	Note     string  `gorm:"type:text" json:"note,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
