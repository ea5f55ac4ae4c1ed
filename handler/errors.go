package handler

import (
	"Learnhub/pkg/context"
	"Learnhub/pkg/response"
	"Learnhub/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// bizError 将 service 层的错误转换为响应, 其余错误交给 Wrap 按 500 处理
func bizError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	case errors.Is(err, service.ErrNotFound):
		return response.NewError(http.StatusNotFound, "资源不存在")
	default:
		return err
	}
}

func currentUser(c *gin.Context) (uint64, error) {
	uid, err := context.GetUserID(c)
	if err != nil || uid == 0 {
		return 0, response.NewError(http.StatusUnauthorized, "未登录")
	}
	return uid, nil
}

// paramID 只校验格式, 记录是否存在由 service 判断
func paramID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, response.NewError(http.StatusBadRequest, "无效的"+name)
	}
	return id, nil
}
