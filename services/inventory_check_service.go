package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"

	"gorm.io/gorm"
)

// InventoryCheckService owns stock reconciliation: DRAFT checks comparing
// system stock to counted stock, and the commit of counted values into the
// ledger when a check is balanced.
type InventoryCheckService struct {
	DB *gorm.DB
}

func NewInventoryCheckService(db *gorm.DB) *InventoryCheckService {
	return &InventoryCheckService{DB: db}
}

// CheckLineInput identifies an item by id or code together with its counted
// stock.
type CheckLineInput struct {
	ItemID      *uint  `json:"itemId,omitempty"`
	Code        string `json:"code,omitempty"`
	ActualStock int    `json:"actualStock"`
}

type CreateCheckInput struct {
	HotelID uint             `json:"hotelId"`
	Note    string           `json:"note,omitempty"`
	Items   []CheckLineInput `json:"items"`
}

type UpdateCheckInput struct {
	Items  []CheckLineInput `json:"items,omitempty"`
	Note   *string          `json:"note,omitempty"`
	Status *string          `json:"status,omitempty"`
}

// Create snapshots current stock for every requested line and stores the
// check as DRAFT.
func (s *InventoryCheckService) Create(in CreateCheckInput, actorID uint) (models.InventoryCheck, error) {
	if in.HotelID == 0 {
		return models.InventoryCheck{}, utils.NewValidation("hotelId is required")
	}
	if len(in.Items) == 0 {
		return models.InventoryCheck{}, utils.NewValidation("at least one item is required")
	}

	var check models.InventoryCheck
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		code, err := NextCode(tx, in.HotelID, checkCodePrefix, checkCodeWidth)
		if err != nil {
			return err
		}

		check = models.InventoryCheck{
			HotelID:     in.HotelID,
			Code:        code,
			Status:      models.CheckDraft,
			CreatedByID: actorID,
			Note:        in.Note,
		}

		for _, line := range in.Items {
			item, err := resolveCheckItem(tx, line)
			if err != nil {
				return err
			}
			check.Items = append(check.Items, models.InventoryCheckItem{
				ItemID:      item.ID,
				Code:        item.Code,
				Name:        item.Name,
				Unit:        item.Unit,
				SystemStock: item.Stock,
				ActualStock: line.ActualStock,
				Difference:  line.ActualStock - item.Stock,
			})
		}
		recomputeCheckTotals(&check)
		return tx.Create(&check).Error
	})
	return check, err
}

func (s *InventoryCheckService) GetByID(id uint) (models.InventoryCheck, error) {
	var check models.InventoryCheck
	err := s.DB.Preload("Items").First(&check, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return check, utils.NewNotFound("inventory check")
	}
	return check, err
}

func (s *InventoryCheckService) List(hotelID uint) ([]models.InventoryCheck, error) {
	var checks []models.InventoryCheck
	q := s.DB.Preload("Items").Order("id DESC")
	if hotelID != 0 {
		q = q.Where("hotel_id = ?", hotelID)
	}
	err := q.Find(&checks).Error
	return checks, err
}

// Update replaces or extends a DRAFT check's lines. Touched lines re-read
// the live ledger value for systemStock (not the original snapshot) and
// totals are recomputed over the full item set. Setting status=BALANCED in
// the same call commits the check.
func (s *InventoryCheckService) Update(id uint, in UpdateCheckInput, actorID uint) (models.InventoryCheck, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var check models.InventoryCheck
		if err := tx.Preload("Items").First(&check, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFound("inventory check")
			}
			return err
		}
		if check.Status == models.CheckBalanced {
			return utils.NewConflict(fmt.Sprintf("inventory check %s is already balanced", check.Code))
		}

		for _, line := range in.Items {
			item, err := resolveCheckItem(tx, line)
			if err != nil {
				return err
			}

			matched := false
			for i := range check.Items {
				if check.Items[i].ItemID == item.ID || (line.Code != "" && check.Items[i].Code == line.Code) {
					check.Items[i].SystemStock = item.Stock
					check.Items[i].ActualStock = line.ActualStock
					check.Items[i].Difference = line.ActualStock - item.Stock
					if err := tx.Model(&models.InventoryCheckItem{}).Where("id = ?", check.Items[i].ID).Updates(map[string]interface{}{
						"system_stock": check.Items[i].SystemStock,
						"actual_stock": check.Items[i].ActualStock,
						"difference":   check.Items[i].Difference,
					}).Error; err != nil {
						return err
					}
					matched = true
					break
				}
			}
			if !matched {
				row := models.InventoryCheckItem{
					InventoryCheckID: check.ID,
					ItemID:           item.ID,
					Code:             item.Code,
					Name:             item.Name,
					Unit:             item.Unit,
					SystemStock:      item.Stock,
					ActualStock:      line.ActualStock,
					Difference:       line.ActualStock - item.Stock,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
				check.Items = append(check.Items, row)
			}
		}

		recomputeCheckTotals(&check)
		updates := map[string]interface{}{
			"total_difference": check.TotalDifference,
			"total_increase":   check.TotalIncrease,
			"total_decrease":   check.TotalDecrease,
		}
		if in.Note != nil {
			updates["note"] = *in.Note
		}
		if err := tx.Model(&check).Updates(updates).Error; err != nil {
			return err
		}

		if in.Status != nil && *in.Status == models.CheckBalanced {
			return commitBalance(tx, &check, actorID)
		}
		return nil
	})
	if err != nil {
		return models.InventoryCheck{}, err
	}
	return s.GetByID(id)
}

// Balance commits a DRAFT check: every line's counted stock overwrites the
// item's ledger value.
func (s *InventoryCheckService) Balance(id uint, actorID uint) (models.InventoryCheck, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var check models.InventoryCheck
		if err := tx.Preload("Items").First(&check, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFound("inventory check")
			}
			return err
		}
		if check.Status == models.CheckBalanced {
			return utils.NewConflict(fmt.Sprintf("inventory check %s is already balanced", check.Code))
		}
		return commitBalance(tx, &check, actorID)
	})
	if err != nil {
		return models.InventoryCheck{}, err
	}
	return s.GetByID(id)
}

// Remove deletes a check. A BALANCED check first rolls every item's stock
// back to the systemStock the check recorded. The rollback does not account
// for unrelated stock movements made after balancing.
func (s *InventoryCheckService) Remove(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var check models.InventoryCheck
		if err := tx.Preload("Items").First(&check, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFound("inventory check")
			}
			return err
		}

		if check.Status == models.CheckBalanced {
			for _, line := range check.Items {
				res := tx.Model(&models.InventoryItem{}).Where("id = ?", line.ItemID).
					Update("stock", line.SystemStock)
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					log.Printf("warning: cannot roll back stock for missing inventory item %d", line.ItemID)
				}
			}
		}

		if err := tx.Where("inventory_check_id = ?", check.ID).Delete(&models.InventoryCheckItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.InventoryCheck{}, check.ID).Error
	})
}

func commitBalance(tx *gorm.DB, check *models.InventoryCheck, actorID uint) error {
	for _, line := range check.Items {
		res := tx.Model(&models.InventoryItem{}).Where("id = ?", line.ItemID).
			Update("stock", line.ActualStock)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			log.Printf("warning: cannot balance stock for missing inventory item %d", line.ItemID)
		}
	}

	now := time.Now()
	return tx.Model(check).Updates(map[string]interface{}{
		"status":         models.CheckBalanced,
		"balance_date":   now,
		"balanced_by_id": actorID,
	}).Error
}

func recomputeCheckTotals(check *models.InventoryCheck) {
	total, inc, dec := 0, 0, 0
	for _, line := range check.Items {
		total += line.Difference
		if line.Difference > 0 {
			inc += line.Difference
		} else {
			dec += line.Difference
		}
	}
	check.TotalDifference = total
	check.TotalIncrease = inc
	check.TotalDecrease = dec
}

func resolveCheckItem(tx *gorm.DB, line CheckLineInput) (models.InventoryItem, error) {
	var item models.InventoryItem
	var err error
	switch {
	case line.ItemID != nil:
		err = tx.First(&item, *line.ItemID).Error
	case line.Code != "":
		err = tx.Where("code = ?", line.Code).First(&item).Error
	default:
		return item, utils.NewValidation("check line requires itemId or code")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return item, utils.NewNotFound("inventory item")
	}
	return item, err
}
