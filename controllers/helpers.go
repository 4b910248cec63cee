package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// actorID returns the authenticated admin id the auth middleware stored.
func actorID(c *gin.Context) uint {
	if v, ok := c.Get("actorId"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// paramID parses the numeric :id route parameter.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// queryHotelID parses the optional ?hotelId= filter, falling back to the
// actor's hotel from the token.
func queryHotelID(c *gin.Context) uint {
	if q := c.Query("hotelId"); q != "" {
		if id, err := strconv.ParseUint(q, 10, 64); err == nil {
			return uint(id)
		}
	}
	if v, ok := c.Get("hotelId"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
