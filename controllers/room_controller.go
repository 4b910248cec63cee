package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{Rooms: svc}
}

// GetRooms (GET /api/rooms)
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.Rooms.List(queryHotelID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GetRoom (GET /api/rooms/:id)
func (rc *RoomController) GetRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}
	room, err := rc.Rooms.GetByID(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// CreateRoom (POST /api/rooms)
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	created, err := rc.Rooms.Create(room)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			utils.JSONError(c, http.StatusConflict, fmt.Sprintf("room number %q already exists", room.RoomNumber))
			return
		}
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

// UpdateRoom (PATCH /api/rooms/:id)
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	room, err := rc.Rooms.Update(id, patch)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// DeleteRoom (DELETE /api/rooms/:id)
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}
	if err := rc.Rooms.Delete(id); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room deleted"})
}

type updateStatusPayload struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note,omitempty"`
}

// UpdateRoomStatus (PATCH /api/rooms/:id/status)
func (rc *RoomController) UpdateRoomStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}
	var payload updateStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}
	room, err := rc.Rooms.UpdateStatus(id, payload.Status, actorID(c), payload.Note)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// GetRoomStatusLogs (GET /api/rooms/:id/status-logs)
func (rc *RoomController) GetRoomStatusLogs(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}
	logs, err := rc.Rooms.StatusLogs(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, logs)
}

// CheckInRoom (POST /api/rooms/:id/check-in)
func (rc *RoomController) CheckInRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}
	var payload services.CheckInInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	result, err := rc.Rooms.CheckIn(id, payload, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

// WalkInCheckIn (POST /api/rooms/:id/walk-in)
func (rc *RoomController) WalkInCheckIn(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}
	var payload services.WalkInInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	result, err := rc.Rooms.WalkIn(id, payload, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

type checkOutPayload struct {
	PaymentMethod string `json:"paymentMethod"`
}

// CheckOutRoom (POST /api/rooms/:id/check-out)
func (rc *RoomController) CheckOutRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}
	var payload checkOutPayload
	if err := c.ShouldBindJSON(&payload); err != nil && err.Error() != "EOF" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	room, err := rc.Rooms.CheckOut(id, payload.PaymentMethod, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}
