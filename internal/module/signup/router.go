package signup

import (
	"github.com/gin-gonic/gin"
)

func (p *ModuleSignup) InitRouter(r *gin.RouterGroup) {
	signupGroup := r.Group("/signups")
	{
		signupGroup.POST("", CreateSignup)

		// 导出报名花名册
		signupGroup.GET("/export", ExportRoster)
	}
}
