package response

import (
	"camp-signup-system/config"
	"camp-signup-system/internal/global/logger"
	"camp-signup-system/internal/global/sentry"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// 对外的错误消息与状态码保持旧接口兼容，严格模式只修正状态码
var (
	ErrInternal = newError(http.StatusInternalServerError, "internal server error")

	ErrCamperNotFound   = newError(http.StatusBadRequest, "Camper not found").strict(http.StatusNotFound)
	ErrCamperUpdate     = newError(http.StatusNotFound, "Camper not found")
	ErrCamperPatch      = newError(http.StatusNotFound, "Camper not found").strict(http.StatusUnprocessableEntity)
	ErrCamperValidation = newError(http.StatusNotFound, "validation errors").list("error").strict(http.StatusUnprocessableEntity)

	ErrActivityNotFound   = newError(http.StatusBadRequest, "Activity not found").strict(http.StatusNotFound)
	ErrActivityValidation = newError(http.StatusNotFound, "validation errors").list("error").strict(http.StatusUnprocessableEntity)

	// /signups 失败时旧接口返回 200
	ErrSignupValidation = newError(http.StatusOK, "validation errors").list("errors").strict(http.StatusUnprocessableEntity)
	ErrSignupReference  = newError(http.StatusOK, "validation errors").list("errors").strict(http.StatusNotFound)
)

// Success 200 + JSON
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created 201 + JSON
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 204，没有响应体
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Fail 写回错误响应并中止后续 handler；非 *Error 视为内部错误
func Fail(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = ErrInternal.WithOrigin(err)
	}

	cfg := config.Get()
	body := e.Body(cfg.Mode == config.ModeDebug)

	c.Set(ErrorContextKey, e)
	c.Set(ResponseContextKey, body)
	sentry.CaptureException(c, e)

	c.AbortWithStatusJSON(e.Status(cfg.StrictStatus), body)
}

// Recovery 捕获 panic 并转成 500，不让异常传播到传输层
func Recovery(c *gin.Context) {
	r := recover()
	if r == nil {
		return
	}
	if r == http.ErrAbortHandler {
		panic(r)
	}

	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}
	logger.WithContext(logger.New("Recovery"), c).Error("请求处理发生 panic",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err,
	)
	Fail(c, ErrInternal.WithOrigin(err))
}
