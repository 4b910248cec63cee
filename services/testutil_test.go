package services

import (
	"fmt"
	"strings"
	"testing"

	"hotel-backoffice/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Hotel{},
		&models.Admin{},
		&models.RoomType{},
		&models.Room{},
		&models.RoomStatusLog{},
		&models.Booking{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.InventoryItem{},
		&models.InventoryCheck{},
		&models.InventoryCheckItem{},
		&models.CodeCounter{},
	))
	return db
}

func seedRoomType(t *testing.T, db *gorm.DB, hourly, daily, overnight float64) models.RoomType {
	t.Helper()
	rt := models.RoomType{
		HotelID:        1,
		TypeName:       "Standard",
		PricePerHour:   hourly,
		PricePerDay:    daily,
		PriceOvernight: overnight,
	}
	require.NoError(t, db.Create(&rt).Error)
	return rt
}

func seedRoom(t *testing.T, db *gorm.DB, rt models.RoomType, number, status string) models.Room {
	t.Helper()
	room := models.Room{
		HotelID:    1,
		RoomNumber: number,
		RoomTypeID: &rt.ID,
		Status:     status,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func seedItem(t *testing.T, db *gorm.DB, code, name string, price float64, stock int) models.InventoryItem {
	t.Helper()
	item := models.InventoryItem{
		HotelID:      1,
		Code:         code,
		Name:         name,
		Unit:         "unit",
		SellingPrice: price,
		Stock:        stock,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func itemStock(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var item models.InventoryItem
	require.NoError(t, db.First(&item, id).Error)
	return item.Stock
}
