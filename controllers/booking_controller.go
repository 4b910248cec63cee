package controllers

import (
	"net/http"
	"strconv"

	"hotel-backoffice/services"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Bookings: svc}
}

// GetBookings (GET /api/bookings?hotelId=&roomId=)
func (bc *BookingController) GetBookings(c *gin.Context) {
	if q := c.Query("roomId"); q != "" {
		roomID, err := strconv.ParseUint(q, 10, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid roomId")
			return
		}
		bookings, err := bc.Bookings.FindByRoomID(uint(roomID))
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, bookings)
		return
	}

	bookings, err := bc.Bookings.FindByHotelID(queryHotelID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// SearchBookings (GET /api/bookings/search?q=)
func (bc *BookingController) SearchBookings(c *gin.Context) {
	bookings, err := bc.Bookings.SearchBookings(queryHotelID(c), c.Query("q"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetBooking (GET /api/bookings/:id)
func (bc *BookingController) GetBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	booking, err := bc.Bookings.GetByID(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CreateBooking (POST /api/bookings)
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var payload services.CreateBookingInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	booking, err := bc.Bookings.Create(payload, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// UpdateBooking (PATCH /api/bookings/:id)
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	booking, err := bc.Bookings.Update(id, patch)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// DeleteBooking (DELETE /api/bookings/:id)
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	if err := bc.Bookings.Remove(id, actorID(c)); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "booking deleted"})
}
