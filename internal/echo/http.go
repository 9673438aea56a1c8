package echo

import (
	"github.com/gin-gonic/gin"
)

// Handler 回傳處理 GET /say 的 gin handler
func Handler(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, body := Say(name, c.Query("keyword"))
		c.String(status, body)
	}
}

// NewRouter 建立只有 /say 的路由，供獨立部署使用
func NewRouter(name string, middlewares ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middlewares...)
	r.GET("/say", Handler(name))
	return r
}
