package service

import "errors"

var (
	// ErrInvalidInput 参数不合法, 请求被拒绝且没有任何写入
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound 对象不存在, 或不属于当前用户
	ErrNotFound = errors.New("not found")
)
