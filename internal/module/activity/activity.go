package activity

import (
	"camp-signup-system/internal/global/context"
	"camp-signup-system/internal/global/response"
	"camp-signup-system/internal/store"
	"camp-signup-system/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// 活动带报名，报名不再指回活动，报名的营员不再展开自己的报名
var listRules = view.ParseRules("-signups.activity", "-signups.camper.signups")

// ActivityCreateReq 定义创建活动请求的结构体，两个字段都没有取值约束
type ActivityCreateReq struct {
	Name       string `json:"name"`
	Difficulty int    `json:"difficulty"`
}

// ListActivities 获取全部活动
func ListActivities(c *gin.Context) {
	activities, err := repo.ListActivities(c.Request.Context())
	if err != nil {
		log.Error("获取活动列表失败", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	response.Success(c, view.RenderAll(activities, listRules))
}

// CreateActivity 处理创建活动请求
func CreateActivity(c *gin.Context) {
	var req ActivityCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定创建活动请求失败", "error", err)
		response.Fail(c, response.ErrActivityValidation.WithOrigin(err))
		return
	}

	activity, err := repo.CreateActivity(c.Request.Context(), req.Name, req.Difficulty)
	if err != nil {
		log.Error("创建活动失败", "error", err, "name", req.Name)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	log.Info("活动创建成功", "id", activity.ID, "name", activity.Name)
	response.Created(c, view.Render(activity, listRules))
}

// DeleteActivity 删除活动，同时删除该活动的全部报名
func DeleteActivity(c *gin.Context) {
	id, err := context.ParamID(c, "id")
	if err != nil {
		response.Fail(c, response.ErrActivityNotFound.WithOrigin(err))
		return
	}

	if err := repo.DeleteActivity(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("活动不存在", "id", id)
			response.Fail(c, response.ErrActivityNotFound.WithOrigin(err))
			return
		}
		log.Error("删除活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	log.Info("活动删除成功", "id", id)
	response.NoContent(c)
}
