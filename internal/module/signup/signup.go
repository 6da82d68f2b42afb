package signup

import (
	"camp-signup-system/internal/global/response"
	"camp-signup-system/internal/model"
	"camp-signup-system/internal/store"
	"camp-signup-system/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// 报名带营员和活动，两端都不再展开各自的报名
var signupRules = view.ParseRules("-camper.signups", "-activity.signups")

// SignupCreateReq 定义创建报名请求的结构体
type SignupCreateReq struct {
	CamperID   *uint `json:"camper_id" binding:"required"`
	ActivityID *uint `json:"activity_id" binding:"required"`
	Time       *int  `json:"time" binding:"required"`
}

// CreateSignup 处理报名请求；失败时的状态码见 response.ErrSignupValidation
func CreateSignup(c *gin.Context) {
	var req SignupCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定报名请求失败", "error", err)
		response.Fail(c, response.ErrSignupValidation.WithOrigin(err))
		return
	}

	signup, err := repo.CreateSignup(c.Request.Context(), *req.CamperID, *req.ActivityID, *req.Time)
	if err != nil {
		var (
			verr *model.ValidationError
			rerr *store.ReferenceError
		)
		switch {
		case errors.As(err, &verr):
			log.Warn("报名字段校验失败", "field", verr.Field, "error", verr.Message)
			response.Fail(c, response.ErrSignupValidation.WithOrigin(err))
		case errors.As(err, &rerr):
			log.Warn("报名引用的记录不存在", "entity", rerr.Entity, "id", rerr.ID)
			response.Fail(c, response.ErrSignupReference.WithOrigin(err))
		default:
			log.Error("创建报名失败", "error", err,
				"camper_id", *req.CamperID, "activity_id", *req.ActivityID)
			response.Fail(c, response.ErrInternal.WithOrigin(err))
		}
		return
	}

	log.Info("报名成功",
		"id", signup.ID,
		"camper_id", signup.CamperID,
		"activity_id", signup.ActivityID,
		"time", signup.Time,
	)
	response.Success(c, view.Render(signup, signupRules))
}
