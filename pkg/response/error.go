package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BizError 业务错误, Code 同时作为 HTTP 状态码使用
type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

// Status 返回响应使用的 HTTP 状态码
func (e *BizError) Status() int {
	if e.Code >= http.StatusBadRequest && e.Code <= 599 {
		return e.Code
	}
	return http.StatusOK
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
