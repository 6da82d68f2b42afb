package context

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// ParamID 解析路径中的正整数 id，非法或为 0 时返回错误
func ParamID(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, errors.Wrapf(err, "非法的 %s: %q", key, raw)
	}
	if id == 0 {
		return 0, errors.Errorf("非法的 %s: %q", key, raw)
	}
	return uint(id), nil
}
