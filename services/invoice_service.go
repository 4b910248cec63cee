package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// InvoiceService owns the invoice state machine (OPEN -> PAID | CANCELLED)
// and the stock side effects of inventory line items.
type InvoiceService struct {
	DB *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{DB: db}
}

// InvoiceLineInput is one requested invoice line. Lines with itemType=1 or
// type "service" are room/service charges; everything else references an
// inventory item by id or code.
type InvoiceLineInput struct {
	ItemID   *uint    `json:"itemId,omitempty"`
	Code     string   `json:"code,omitempty"`
	Name     string   `json:"name,omitempty"`
	Type     string   `json:"type,omitempty"`
	ItemType int      `json:"itemType,omitempty"`
	Quantity int      `json:"quantity"`
	Price    *float64 `json:"price,omitempty"`
	Note     string   `json:"note,omitempty"`
}

func (l InvoiceLineInput) isServiceLine() bool {
	return l.ItemType == models.ItemTypeRoom || l.Type == models.LineTypeService
}

type CreateInvoiceInput struct {
	HotelID         uint       `json:"hotelId"`
	InvoiceType     string     `json:"invoiceType,omitempty"`
	RoomID          *uint      `json:"roomId,omitempty"`
	BookingID       *uint      `json:"bookingId,omitempty"`
	CustomerName    string     `json:"customerName,omitempty"`
	CustomerPhone   string     `json:"customerPhone,omitempty"`
	CustomerAddress string     `json:"customerAddress,omitempty"`
	CheckIn         *time.Time `json:"checkIn,omitempty"`
	CheckOut        *time.Time `json:"checkOut,omitempty"`
	Discount        float64    `json:"discount,omitempty"`
}

type UpdateInvoiceInput struct {
	Items           *[]InvoiceLineInput `json:"items,omitempty"`
	Discount        *float64            `json:"discount,omitempty"`
	CustomerName    *string             `json:"customerName,omitempty"`
	CustomerPhone   *string             `json:"customerPhone,omitempty"`
	CustomerAddress *string             `json:"customerAddress,omitempty"`
}

// Create opens a new invoice: next HD code, status OPEN, no items, zero
// totals.
func (s *InvoiceService) Create(in CreateInvoiceInput, actorID uint) (models.Invoice, error) {
	if in.HotelID == 0 {
		return models.Invoice{}, utils.NewValidation("hotelId is required")
	}
	invoiceType := in.InvoiceType
	if invoiceType == "" {
		invoiceType = models.InvoiceTypeService
	}
	if invoiceType != models.InvoiceTypeRoom && invoiceType != models.InvoiceTypeService {
		return models.Invoice{}, utils.NewValidation("invoiceType must be ROOM or SERVICE")
	}

	var invoice models.Invoice
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		code, err := NextCode(tx, in.HotelID, invoiceCodePrefix, invoiceCodeWidth)
		if err != nil {
			return err
		}
		invoice = models.Invoice{
			HotelID:         in.HotelID,
			Code:            code,
			InvoiceType:     invoiceType,
			RoomID:          in.RoomID,
			BookingID:       in.BookingID,
			CustomerName:    in.CustomerName,
			CustomerPhone:   in.CustomerPhone,
			CustomerAddress: in.CustomerAddress,
			CheckIn:         in.CheckIn,
			CheckOut:        in.CheckOut,
			Discount:        in.Discount,
			Status:          models.InvoiceOpen,
			CreatedByID:     actorID,
			UpdatedByID:     actorID,
		}
		invoice.FinalAmount = invoice.TotalAmount - invoice.Discount
		return tx.Create(&invoice).Error
	})
	return invoice, err
}

func (s *InvoiceService) GetByID(id uint) (models.Invoice, error) {
	var invoice models.Invoice
	err := s.DB.Preload("Items").First(&invoice, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invoice, utils.NewNotFound("invoice")
	}
	return invoice, err
}

func (s *InvoiceService) List(hotelID uint) ([]models.Invoice, error) {
	var invoices []models.Invoice
	q := s.DB.Preload("Items").Order("id DESC")
	if hotelID != 0 {
		q = q.Where("hotel_id = ?", hotelID)
	}
	err := q.Find(&invoices).Error
	return invoices, err
}

// FindOpenRoomInvoice returns the OPEN ROOM-type invoice for a room, if one
// exists.
func (s *InvoiceService) FindOpenRoomInvoice(roomID uint) (models.Invoice, error) {
	return findOpenRoomInvoice(s.DB, roomID)
}

func findOpenRoomInvoice(tx *gorm.DB, roomID uint) (models.Invoice, error) {
	var invoice models.Invoice
	err := tx.Preload("Items").
		Where("room_id = ? AND invoice_type = ? AND status = ?", roomID, models.InvoiceTypeRoom, models.InvoiceOpen).
		Order("id DESC").
		First(&invoice).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invoice, utils.NewNotFound("open room invoice")
	}
	return invoice, err
}

// AddItems appends lines to an OPEN invoice. Inventory lines are validated
// against current stock, snapshotted, and their quantity taken off the
// ledger; totals are recomputed from the full item set.
func (s *InvoiceService) AddItems(id uint, hotelID uint, lines []InvoiceLineInput, actorID uint) (models.Invoice, error) {
	if len(lines) == 0 {
		return models.Invoice{}, utils.NewValidation("at least one item is required")
	}

	var invoice models.Invoice
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&invoice, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFound("invoice")
			}
			return err
		}
		if hotelID != 0 && hotelID != invoice.HotelID {
			return utils.NewConflict(fmt.Sprintf("invoice %s belongs to another hotel", invoice.Code))
		}
		if invoice.Status != models.InvoiceOpen {
			return utils.NewConflict(fmt.Sprintf("invoice %s is %s, only OPEN invoices can be modified", invoice.Code, invoice.Status))
		}

		added, err := appendInvoiceLines(tx, &invoice, lines)
		if err != nil {
			return err
		}
		invoice.Items = append(invoice.Items, added...)
		return saveInvoiceTotals(tx, &invoice, actorID)
	})
	if err != nil {
		return models.Invoice{}, err
	}
	return s.GetByID(id)
}

// Update mutates an OPEN invoice. When items are supplied the inventory
// portion of the invoice is replaced: stock for every existing inventory
// line is restored first, room/service lines are carried over (quantities
// adjusted in place when the new list changes them), and every other
// requested line is processed as a fresh inventory line against the
// post-restore stock. A discount-only update just recomputes finalAmount.
func (s *InvoiceService) Update(id uint, in UpdateInvoiceInput, actorID uint) (models.Invoice, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var invoice models.Invoice
		if err := tx.Preload("Items").First(&invoice, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFound("invoice")
			}
			return err
		}
		if invoice.Status != models.InvoiceOpen {
			return utils.NewConflict(fmt.Sprintf("invoice %s is %s, only OPEN invoices can be modified", invoice.Code, invoice.Status))
		}

		if in.Items != nil {
			if err := replaceInventoryLines(tx, &invoice, *in.Items); err != nil {
				return err
			}
		}

		updates := map[string]interface{}{}
		if in.Discount != nil {
			invoice.Discount = *in.Discount
			updates["discount"] = *in.Discount
		}
		if in.CustomerName != nil {
			updates["customer_name"] = *in.CustomerName
		}
		if in.CustomerPhone != nil {
			updates["customer_phone"] = *in.CustomerPhone
		}
		if in.CustomerAddress != nil {
			updates["customer_address"] = *in.CustomerAddress
		}
		if len(updates) > 0 {
			if err := tx.Model(&invoice).Updates(updates).Error; err != nil {
				return err
			}
		}
		return saveInvoiceTotals(tx, &invoice, actorID)
	})
	if err != nil {
		return models.Invoice{}, err
	}
	return s.GetByID(id)
}

// Checkout marks an OPEN invoice PAID and records the payment fields. The
// payload may be a structured JSON payment info or a bare method string.
func (s *InvoiceService) Checkout(id uint, rawPayment string, actorID uint) (models.Invoice, error) {
	var invoice models.Invoice
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&invoice, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFound("invoice")
			}
			return err
		}
		if invoice.Status != models.InvoiceOpen {
			return utils.NewConflict(fmt.Sprintf("invoice %s is %s, only OPEN invoices can be checked out", invoice.Code, invoice.Status))
		}

		info := utils.ParsePaymentInfo(rawPayment)
		if info.Reference == "" {
			// internal receipt reference when the payload carries none
			info.Reference = uuid.NewString()
		}

		var raw datatypes.JSON
		if json.Valid([]byte(rawPayment)) {
			raw = datatypes.JSON(rawPayment)
		} else if b, err := json.Marshal(rawPayment); err == nil {
			raw = datatypes.JSON(b)
		}

		now := time.Now()
		return tx.Model(&invoice).Updates(map[string]interface{}{
			"status":            models.InvoicePaid,
			"paid_date":         now,
			"payment_method":    info.Method,
			"payment_reference": info.Reference,
			"payment_note":      info.Note,
			"payment_raw":       raw,
			"updated_by_id":     actorID,
		}).Error
	})
	if err != nil {
		return models.Invoice{}, err
	}
	return s.GetByID(id)
}

// Cancel voids an OPEN invoice and returns every inventory line's quantity
// to the ledger.
func (s *InvoiceService) Cancel(id uint, actorID uint) (models.Invoice, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var invoice models.Invoice
		if err := tx.Preload("Items").First(&invoice, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFound("invoice")
			}
			return err
		}
		if invoice.Status != models.InvoiceOpen {
			return utils.NewConflict(fmt.Sprintf("invoice %s is %s, only OPEN invoices can be cancelled", invoice.Code, invoice.Status))
		}

		if err := restoreInventoryLines(tx, invoice.Items); err != nil {
			return err
		}
		return tx.Model(&invoice).Updates(map[string]interface{}{
			"status":        models.InvoiceCancelled,
			"updated_by_id": actorID,
		}).Error
	})
	if err != nil {
		return models.Invoice{}, err
	}
	return s.GetByID(id)
}

// Remove hard-deletes an invoice. PAID invoices cannot be removed. An OPEN
// invoice restores its inventory stock first; a CANCELLED one already did at
// cancel time.
func (s *InvoiceService) Remove(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var invoice models.Invoice
		if err := tx.Preload("Items").First(&invoice, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFound("invoice")
			}
			return err
		}
		if invoice.Status == models.InvoicePaid {
			return utils.NewConflict(fmt.Sprintf("invoice %s is PAID and cannot be removed", invoice.Code))
		}
		if invoice.Status == models.InvoiceOpen {
			if err := restoreInventoryLines(tx, invoice.Items); err != nil {
				return err
			}
		}
		if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Invoice{}, invoice.ID).Error
	})
}

// appendInvoiceLines builds and persists invoice lines. Service lines are
// taken as given; inventory lines are resolved, stock-checked and
// decremented.
func appendInvoiceLines(tx *gorm.DB, invoice *models.Invoice, lines []InvoiceLineInput) ([]models.InvoiceItem, error) {
	added := make([]models.InvoiceItem, 0, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, utils.NewValidation("item quantity must be at least 1")
		}

		var row models.InvoiceItem
		if line.isServiceLine() {
			if line.Name == "" {
				return nil, utils.NewValidation("service line requires a name")
			}
			price := 0.0
			if line.Price != nil {
				price = *line.Price
			}
			itemType := line.ItemType
			if itemType == 0 {
				itemType = models.ItemTypeRoom
			}
			row = models.InvoiceItem{
				InvoiceID: invoice.ID,
				ItemID:    line.ItemID,
				Name:      line.Name,
				Type:      models.LineTypeService,
				ItemType:  itemType,
				Quantity:  line.Quantity,
				Price:     price,
				Amount:    float64(line.Quantity) * price,
				Note:      line.Note,
			}
		} else {
			item, err := resolveInventoryItem(tx, line)
			if err != nil {
				return nil, err
			}
			if err := decrementStock(tx, item, line.Quantity); err != nil {
				return nil, err
			}
			price := item.SellingPrice
			if line.Price != nil {
				price = *line.Price
			}
			itemID := item.ID
			row = models.InvoiceItem{
				InvoiceID: invoice.ID,
				ItemID:    &itemID,
				Name:      item.Name,
				Code:      item.Code,
				Type:      models.LineTypeInventory,
				ItemType:  models.ItemTypeInventory,
				Quantity:  line.Quantity,
				Price:     price,
				Amount:    float64(line.Quantity) * price,
				Note:      line.Note,
			}
		}

		if err := tx.Create(&row).Error; err != nil {
			return nil, err
		}
		added = append(added, row)
	}
	return added, nil
}

// replaceInventoryLines implements the items portion of Update: restore
// stock for the existing inventory lines, carry room/service lines over with
// in-place quantity adjustments, then process everything else as fresh
// inventory lines.
func replaceInventoryLines(tx *gorm.DB, invoice *models.Invoice, requested []InvoiceLineInput) error {
	var carried []models.InvoiceItem
	var oldInventory []models.InvoiceItem
	for _, it := range invoice.Items {
		if it.ItemType == models.ItemTypeRoom || it.Type == models.LineTypeService {
			carried = append(carried, it)
		} else {
			oldInventory = append(oldInventory, it)
		}
	}

	for _, it := range oldInventory {
		if it.ItemID != nil {
			if err := restoreStock(tx, *it.ItemID, it.Quantity); err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.InvoiceItem{}, it.ID).Error; err != nil {
			return err
		}
	}

	var fresh []InvoiceLineInput
	for _, line := range requested {
		idx := matchCarriedLine(carried, line)
		if idx < 0 {
			fresh = append(fresh, line)
			continue
		}
		if line.Quantity >= 1 && line.Quantity != carried[idx].Quantity {
			carried[idx].Quantity = line.Quantity
			carried[idx].Amount = float64(line.Quantity) * carried[idx].Price
			if err := tx.Model(&models.InvoiceItem{}).Where("id = ?", carried[idx].ID).Updates(map[string]interface{}{
				"quantity": carried[idx].Quantity,
				"amount":   carried[idx].Amount,
			}).Error; err != nil {
				return err
			}
		}
	}

	added, err := appendInvoiceLines(tx, invoice, fresh)
	if err != nil {
		return err
	}
	invoice.Items = append(carried, added...)
	return nil
}

// matchCarriedLine finds the carried room/service line a requested line
// refers to, by item id or by name.
func matchCarriedLine(carried []models.InvoiceItem, line InvoiceLineInput) int {
	if !line.isServiceLine() {
		return -1
	}
	for i, it := range carried {
		if line.ItemID != nil && it.ItemID != nil && *line.ItemID == *it.ItemID {
			return i
		}
		if line.Name != "" && line.Name == it.Name {
			return i
		}
	}
	return -1
}

func restoreInventoryLines(tx *gorm.DB, items []models.InvoiceItem) error {
	for _, it := range items {
		if it.Type != models.LineTypeInventory || it.ItemID == nil {
			continue
		}
		if err := restoreStock(tx, *it.ItemID, it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func resolveInventoryItem(tx *gorm.DB, line InvoiceLineInput) (models.InventoryItem, error) {
	var item models.InventoryItem
	var err error
	switch {
	case line.ItemID != nil:
		err = tx.First(&item, *line.ItemID).Error
	case line.Code != "":
		err = tx.Where("code = ?", line.Code).First(&item).Error
	default:
		return item, utils.NewValidation("inventory line requires itemId or code")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return item, utils.NewNotFound("inventory item")
	}
	return item, err
}

// saveInvoiceTotals recomputes totalAmount from the in-memory item set and
// persists the totals.
func saveInvoiceTotals(tx *gorm.DB, invoice *models.Invoice, actorID uint) error {
	total := 0.0
	for _, it := range invoice.Items {
		total += it.Amount
	}
	invoice.TotalAmount = total
	invoice.FinalAmount = total - invoice.Discount
	return tx.Model(invoice).Updates(map[string]interface{}{
		"total_amount":  invoice.TotalAmount,
		"final_amount":  invoice.FinalAmount,
		"updated_by_id": actorID,
	}).Error
}
