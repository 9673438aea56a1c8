package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Welcome 回傳固定的歡迎訊息
func Welcome(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, message)
	}
}
