package services

import (
	"log"
	"strings"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"

	"gorm.io/gorm"
)

// InventoryService owns the stock ledger: InventoryItem rows and their
// absolute stock counts.
type InventoryService struct {
	DB *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{DB: db}
}

func (s *InventoryService) Create(item models.InventoryItem) (models.InventoryItem, error) {
	if item.HotelID == 0 {
		return models.InventoryItem{}, utils.NewValidation("hotelId is required")
	}
	if strings.TrimSpace(item.Name) == "" {
		return models.InventoryItem{}, utils.NewValidation("item name is required")
	}
	if item.Stock < 0 {
		return models.InventoryItem{}, utils.NewValidation("stock cannot be negative")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		code, err := NextCode(tx, item.HotelID, itemCodePrefix, itemCodeWidth)
		if err != nil {
			return err
		}
		item.Code = code
		return tx.Create(&item).Error
	})
	return item, err
}

func (s *InventoryService) List(hotelID uint) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	q := s.DB.Order("code")
	if hotelID != 0 {
		q = q.Where("hotel_id = ?", hotelID)
	}
	err := q.Find(&items).Error
	return items, err
}

func (s *InventoryService) GetByID(id uint) (models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.DB.First(&item, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return item, utils.NewNotFound("inventory item")
		}
		return item, err
	}
	return item, nil
}

func (s *InventoryService) GetByCode(code string) (models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.DB.Where("code = ?", code).First(&item).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return item, utils.NewNotFound("inventory item")
		}
		return item, err
	}
	return item, nil
}

// Update applies a field-level merge. Stock, when present, is an absolute
// replacement value, not a delta — callers compute the new count themselves.
func (s *InventoryService) Update(id uint, patch map[string]interface{}) (models.InventoryItem, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return item, err
	}

	delete(patch, "id")
	delete(patch, "code")
	delete(patch, "hotelId")
	delete(patch, "hotel_id")
	delete(patch, "created_at")
	delete(patch, "updated_at")

	if v, ok := patch["stock"]; ok {
		if n, ok := toInt(v); !ok || n < 0 {
			return item, utils.NewValidation("stock must be a non-negative integer")
		}
	}

	if len(patch) == 0 {
		return item, nil
	}
	if err := s.DB.Model(&item).Updates(patch).Error; err != nil {
		return item, err
	}
	return s.GetByID(id)
}

func (s *InventoryService) Remove(id uint) error {
	res := s.DB.Delete(&models.InventoryItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.NewNotFound("inventory item")
	}
	return nil
}

// decrementStock takes qty units off an item with a guarded atomic update.
// Returns InsufficientStock when fewer than qty units remain.
func decrementStock(tx *gorm.DB, item models.InventoryItem, qty int) error {
	res := tx.Model(&models.InventoryItem{}).
		Where("id = ? AND stock >= ?", item.ID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var current models.InventoryItem
		if err := tx.First(&current, item.ID).Error; err != nil {
			return utils.NewNotFound("inventory item")
		}
		return utils.NewInsufficientStock(current.Name, current.Stock, qty)
	}
	return nil
}

// restoreStock puts qty units back. Best-effort: a line whose source item was
// deleted in the meantime is logged and skipped.
func restoreStock(tx *gorm.DB, itemID uint, qty int) error {
	res := tx.Model(&models.InventoryItem{}).
		Where("id = ?", itemID).
		Update("stock", gorm.Expr("stock + ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		log.Printf("warning: cannot restore %d units, inventory item %d no longer exists", qty, itemID)
	}
	return nil
}

// toInt normalizes the numeric types a JSON patch can carry.
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
