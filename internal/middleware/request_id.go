package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader 請求 ID 的 header 名稱
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

// RequestID 沿用呼叫端帶來的請求 ID，沒有的話產生一個新的
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID 從 context 取得請求 ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
