package controllers

import (
	"net/http"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
)

type InventoryController struct {
	Inventory *services.InventoryService
}

func NewInventoryController(svc *services.InventoryService) *InventoryController {
	return &InventoryController{Inventory: svc}
}

// GetItems (GET /api/inventory/items)
func (ic *InventoryController) GetItems(c *gin.Context) {
	if code := c.Query("code"); code != "" {
		item, err := ic.Inventory.GetByCode(code)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, item)
		return
	}

	items, err := ic.Inventory.List(queryHotelID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

// GetItem (GET /api/inventory/items/:id)
func (ic *InventoryController) GetItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid item id")
		return
	}
	item, err := ic.Inventory.GetByID(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, item)
}

// CreateItem (POST /api/inventory/items)
func (ic *InventoryController) CreateItem(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	created, err := ic.Inventory.Create(item)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

// UpdateItem (PATCH /api/inventory/items/:id)
func (ic *InventoryController) UpdateItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid item id")
		return
	}
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	item, err := ic.Inventory.Update(id, patch)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, item)
}

// DeleteItem (DELETE /api/inventory/items/:id)
func (ic *InventoryController) DeleteItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid item id")
		return
	}
	if err := ic.Inventory.Remove(id); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "item deleted"})
}
