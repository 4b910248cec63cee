package services

import (
	"testing"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryCreateAssignsCode(t *testing.T) {
	svc := NewInventoryService(setupTestDB(t))

	first, err := svc.Create(models.InventoryItem{HotelID: 1, Name: "Bottled Water", Stock: 10})
	require.NoError(t, err)
	assert.Equal(t, "SP00001", first.Code)

	second, err := svc.Create(models.InventoryItem{HotelID: 1, Name: "Soft Drink", Stock: 5})
	require.NoError(t, err)
	assert.Equal(t, "SP00002", second.Code)
}

func TestInventoryCreateValidation(t *testing.T) {
	svc := NewInventoryService(setupTestDB(t))

	_, err := svc.Create(models.InventoryItem{Name: "Bottled Water"})
	require.Error(t, err)

	_, err = svc.Create(models.InventoryItem{HotelID: 1, Name: "  "})
	require.Error(t, err)

	_, err = svc.Create(models.InventoryItem{HotelID: 1, Name: "Bottled Water", Stock: -1})
	require.Error(t, err)
	assert.True(t, utils.IsAppError(err))
}

func TestInventoryGetByCode(t *testing.T) {
	svc := NewInventoryService(setupTestDB(t))
	seedItem(t, svc.DB, "SP00001", "Bottled Water", 20, 10)

	item, err := svc.GetByCode("SP00001")
	require.NoError(t, err)
	assert.Equal(t, "Bottled Water", item.Name)

	_, err = svc.GetByCode("SP99999")
	require.Error(t, err)
	assert.True(t, utils.IsAppError(err))
}

func TestInventoryUpdate(t *testing.T) {
	svc := NewInventoryService(setupTestDB(t))
	item := seedItem(t, svc.DB, "SP00001", "Bottled Water", 20, 10)

	got, err := svc.Update(item.ID, map[string]interface{}{
		"name":  "Mineral Water",
		"stock": float64(25), // JSON numbers arrive as float64
		"code":  "SP00099",   // protected field, silently dropped
	})
	require.NoError(t, err)
	assert.Equal(t, "Mineral Water", got.Name)
	assert.Equal(t, 25, got.Stock)
	assert.Equal(t, "SP00001", got.Code)
}

func TestInventoryUpdateRejectsNegativeStock(t *testing.T) {
	svc := NewInventoryService(setupTestDB(t))
	item := seedItem(t, svc.DB, "SP00001", "Bottled Water", 20, 10)

	_, err := svc.Update(item.ID, map[string]interface{}{"stock": float64(-5)})
	require.Error(t, err)
	assert.True(t, utils.IsAppError(err))
	assert.Equal(t, 10, itemStock(t, svc.DB, item.ID))
}

func TestDecrementStockGuard(t *testing.T) {
	db := setupTestDB(t)
	item := seedItem(t, db, "SP00001", "Bottled Water", 20, 3)

	require.NoError(t, decrementStock(db, item, 3))
	assert.Equal(t, 0, itemStock(t, db, item.ID))

	err := decrementStock(db, item, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient stock")
	assert.Equal(t, 0, itemStock(t, db, item.ID))

	require.NoError(t, restoreStock(db, item.ID, 2))
	assert.Equal(t, 2, itemStock(t, db, item.ID))
}

func TestInventoryRemove(t *testing.T) {
	svc := NewInventoryService(setupTestDB(t))
	item := seedItem(t, svc.DB, "SP00001", "Bottled Water", 20, 10)

	require.NoError(t, svc.Remove(item.ID))

	err := svc.Remove(item.ID)
	require.Error(t, err)
	assert.True(t, utils.IsAppError(err))
}
