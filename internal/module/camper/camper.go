package camper

import (
	"camp-signup-system/internal/global/context"
	"camp-signup-system/internal/global/response"
	"camp-signup-system/internal/model"
	"camp-signup-system/internal/store"
	"camp-signup-system/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

var (
	// 列表只输出营员本身
	listRules = view.ParseRules("-signups")
	// 详情带报名及报名的活动，但活动不再展开自己的报名
	detailRules = view.ParseRules("-signups.camper", "-signups.activity.signups")
)

// CamperCreateReq 定义创建营员请求的结构体；age 用指针区分缺省和 0
type CamperCreateReq struct {
	Name string `json:"name" binding:"required"`
	Age  *int   `json:"age" binding:"required"`
}

// CamperUpdateReq 定义更新营员请求的结构体，使用指针类型支持部分更新
type CamperUpdateReq struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

// ListCampers 获取全部营员（不含报名）
func ListCampers(c *gin.Context) {
	campers, err := repo.ListCampers(c.Request.Context())
	if err != nil {
		log.Error("获取营员列表失败", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	response.Success(c, view.RenderAll(campers, listRules))
}

// GetCamper 获取单个营员详情
func GetCamper(c *gin.Context) {
	id, err := context.ParamID(c, "id")
	if err != nil {
		response.Fail(c, response.ErrCamperNotFound.WithOrigin(err))
		return
	}

	camper, err := repo.GetCamper(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("营员不存在", "id", id)
			response.Fail(c, response.ErrCamperNotFound.WithOrigin(err))
			return
		}
		log.Error("查询营员失败", "error", err, "id", id)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	response.Success(c, view.Render(camper, detailRules))
}

// CreateCamper 处理创建营员请求
func CreateCamper(c *gin.Context) {
	var req CamperCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定创建营员请求失败", "error", err)
		response.Fail(c, response.ErrCamperValidation.WithOrigin(err))
		return
	}

	camper, err := repo.CreateCamper(c.Request.Context(), req.Name, *req.Age)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			log.Warn("营员字段校验失败", "field", verr.Field, "error", verr.Message)
			response.Fail(c, response.ErrCamperValidation.WithOrigin(err))
			return
		}
		log.Error("创建营员失败", "error", err, "name", req.Name)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	log.Info("营员创建成功", "id", camper.ID, "name", camper.Name)
	response.Created(c, view.Render(camper, detailRules))
}

// UpdateCamper 处理营员部分更新请求，成功返回 201
func UpdateCamper(c *gin.Context) {
	id, err := context.ParamID(c, "id")
	if err != nil {
		response.Fail(c, response.ErrCamperUpdate.WithOrigin(err))
		return
	}

	var req CamperUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定更新营员请求失败", "error", err, "id", id)
		response.Fail(c, response.ErrCamperPatch.WithOrigin(err))
		return
	}

	camper, err := repo.UpdateCamper(c.Request.Context(), id, store.CamperPatch{
		Name: req.Name,
		Age:  req.Age,
	})
	if err != nil {
		var verr *model.ValidationError
		switch {
		case errors.Is(err, store.ErrNotFound):
			log.Warn("营员不存在", "id", id)
			response.Fail(c, response.ErrCamperUpdate.WithOrigin(err))
		case errors.As(err, &verr):
			log.Warn("营员字段校验失败", "id", id, "field", verr.Field, "error", verr.Message)
			response.Fail(c, response.ErrCamperPatch.WithOrigin(err))
		default:
			log.Error("更新营员失败", "error", err, "id", id)
			response.Fail(c, response.ErrInternal.WithOrigin(err))
		}
		return
	}

	log.Info("营员更新成功", "id", camper.ID)
	response.Created(c, view.Render(camper, detailRules))
}
