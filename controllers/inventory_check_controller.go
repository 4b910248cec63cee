package controllers

import (
	"net/http"

	"hotel-backoffice/services"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
)

type InventoryCheckController struct {
	Checks *services.InventoryCheckService
}

func NewInventoryCheckController(svc *services.InventoryCheckService) *InventoryCheckController {
	return &InventoryCheckController{Checks: svc}
}

// GetChecks (GET /api/inventory/checks)
func (cc *InventoryCheckController) GetChecks(c *gin.Context) {
	checks, err := cc.Checks.List(queryHotelID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, checks)
}

// GetCheck (GET /api/inventory/checks/:id)
func (cc *InventoryCheckController) GetCheck(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid check id")
		return
	}
	check, err := cc.Checks.GetByID(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, check)
}

// CreateCheck (POST /api/inventory/checks)
func (cc *InventoryCheckController) CreateCheck(c *gin.Context) {
	var payload services.CreateCheckInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	check, err := cc.Checks.Create(payload, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, check)
}

// UpdateCheck (PATCH /api/inventory/checks/:id)
func (cc *InventoryCheckController) UpdateCheck(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid check id")
		return
	}
	var payload services.UpdateCheckInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	check, err := cc.Checks.Update(id, payload, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, check)
}

// BalanceCheck (POST /api/inventory/checks/:id/balance)
func (cc *InventoryCheckController) BalanceCheck(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid check id")
		return
	}
	check, err := cc.Checks.Balance(id, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, check)
}

// DeleteCheck (DELETE /api/inventory/checks/:id)
func (cc *InventoryCheckController) DeleteCheck(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid check id")
		return
	}
	if err := cc.Checks.Remove(id); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "inventory check deleted"})
}
