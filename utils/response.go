package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// HandleError maps a service error onto the HTTP response: AppErrors keep
// their status code, bare gorm not-found becomes 404, everything else 500.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		JSONError(c, appErr.Code, appErr.Message)
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		JSONError(c, http.StatusNotFound, "record not found")
		return
	}
	JSONError(c, http.StatusInternalServerError, err.Error())
}
