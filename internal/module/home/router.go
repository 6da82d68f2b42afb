package home

import (
	"camp-signup-system/internal/global/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (p *ModuleHome) InitRouter(r *gin.RouterGroup) {
	// 首页返回空内容
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "")
	})

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"version": "1.0.0",
		})
	})
}
