package controllers

import (
	"net/http"

	"hotel-backoffice/services"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Auth: svc}
}

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login (POST /api/auth/login)
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	token, admin, err := ac.Auth.Login(payload.Username, payload.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":       admin.ID,
			"fullName": admin.FullName,
			"username": admin.Username,
			"hotelId":  admin.HotelID,
		},
	})
}
