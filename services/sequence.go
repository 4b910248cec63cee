package services

import (
	"fmt"
	"strings"

	"hotel-backoffice/models"

	"gorm.io/gorm"
)

// Document code prefixes and widths.
const (
	invoiceCodePrefix = "HD"
	invoiceCodeWidth  = 6
	itemCodePrefix    = "SP"
	itemCodeWidth     = 5
	checkCodePrefix   = "KK"
	checkCodeWidth    = 6
)

// NextCode returns the next sequential document code for a hotel, e.g.
// HD000042. The counter row is incremented with an atomic UPDATE inside the
// caller's transaction, so two concurrent creates can never draw the same
// code.
func NextCode(tx *gorm.DB, hotelID uint, prefix string, width int) (string, error) {
	for attempt := 0; attempt < 2; attempt++ {
		res := tx.Model(&models.CodeCounter{}).
			Where("hotel_id = ? AND prefix = ?", hotelID, prefix).
			Update("seq", gorm.Expr("seq + 1"))
		if res.Error != nil {
			return "", res.Error
		}
		if res.RowsAffected > 0 {
			var counter models.CodeCounter
			if err := tx.Where("hotel_id = ? AND prefix = ?", hotelID, prefix).First(&counter).Error; err != nil {
				return "", err
			}
			return fmt.Sprintf("%s%0*d", prefix, width, counter.Seq), nil
		}

		// No counter row yet. Create one; on a unique-index collision another
		// request won the race, so retry the increment.
		err := tx.Create(&models.CodeCounter{HotelID: hotelID, Prefix: prefix, Seq: 1}).Error
		if err == nil {
			return fmt.Sprintf("%s%0*d", prefix, width, 1), nil
		}
		lc := strings.ToLower(err.Error())
		if !strings.Contains(lc, "duplicate") && !strings.Contains(lc, "unique") && !strings.Contains(lc, "constraint") {
			return "", err
		}
	}
	return "", fmt.Errorf("failed to allocate %s code for hotel %d", prefix, hotelID)
}
