package controllers

import (
	"net/http"

	"hotel-backoffice/config"
	"hotel-backoffice/models"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
)

func GetRoomTypes(c *gin.Context) {
	var types []models.RoomType
	q := config.DB
	if hotelID := queryHotelID(c); hotelID != 0 {
		q = q.Where("hotel_id = ?", hotelID)
	}
	if err := q.Find(&types).Error; err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

func CreateRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := config.DB.Create(&rt).Error; err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rt)
}

func DeleteRoomType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid room type id")
		return
	}
	if err := config.DB.Delete(&models.RoomType{}, id).Error; err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room type deleted"})
}
