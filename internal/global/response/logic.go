package response

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
)

// ErrorContextKey 是用于在 gin.Context 中存储错误对象的键
const ErrorContextKey = "error"

// ResponseContextKey 是用于在 gin.Context 中存储响应体的键，供 Sentry 上报使用
const ResponseContextKey = "response_body"

// Error 接口错误：HTTP 状态码、对外消息、原始错误链和堆栈
//
// Code 为兼容旧接口的状态码，StrictCode 为严格模式下的状态码。
// 响应体形如 {"error": "msg"}，List 为 true 时消息包装成数组；Key 可改为 "errors"。
type Error struct {
	Code       int32  `json:"-"`
	StrictCode int32  `json:"-"`
	Key        string `json:"-"`
	List       bool   `json:"-"`
	Message    string `json:"msg"`
	Origin     string `json:"origin,omitempty"`
	// cause 保存原始错误，用于 Unwrap() 方法和 Sentry 堆栈提取
	cause error
	// stack 保存堆栈信息，用于 Sentry 堆栈提取
	stack pkgerrors.StackTrace
}

func newError(code int32, msg string) *Error {
	return &Error{
		Code:       code,
		StrictCode: code,
		Key:        "error",
		Message:    msg,
	}
}

// strict 设置严格模式下的状态码
func (e *Error) strict(code int32) *Error {
	e.StrictCode = code
	return e
}

// list 把消息包装成数组并使用指定的键
func (e *Error) list(key string) *Error {
	e.Key = key
	e.List = true
	return e
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("code:%d, msg:%s, cause:%v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("code:%d, msg:%s", e.Code, e.Message)
}

// GetCode 返回错误码，实现 sentry.CodedError 接口
func (e *Error) GetCode() int32 {
	return e.Code
}

// Status 返回实际写回的 HTTP 状态码
func (e *Error) Status(strict bool) int {
	if strict {
		return int(e.StrictCode)
	}
	return int(e.Code)
}

// Unwrap 返回原始错误，支持 errors.Unwrap() 和 Sentry 错误链提取
func (e *Error) Unwrap() error {
	return e.cause
}

// StackTrace 返回堆栈跟踪，实现 pkg/errors 的 stackTracer 接口
func (e *Error) StackTrace() pkgerrors.StackTrace {
	if e.stack != nil {
		return e.stack
	}
	type stackTracer interface {
		StackTrace() pkgerrors.StackTrace
	}
	if st, ok := e.cause.(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

// Is 同一个预定义错误（状态码、键和消息都相同）视为相等，不比较 origin
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.StrictCode == t.StrictCode && e.Key == t.Key && e.Message == t.Message
}

// WithOrigin 附加原始错误，调试模式下写进响应体的 origin 字段
// 同时保留原始错误链，以便 Sentry 能够提取堆栈信息
func (e *Error) WithOrigin(err error) *Error {
	if err == nil {
		return e
	}

	wrappedErr := ensureStack(err)

	newErr := *e
	newErr.Origin = fmt.Sprintf("%+v", wrappedErr)
	newErr.cause = wrappedErr
	newErr.stack = nil
	if st, ok := wrappedErr.(interface{ StackTrace() pkgerrors.StackTrace }); ok {
		newErr.stack = st.StackTrace()
	}
	return &newErr
}

// Body 构造响应体，debug 为 true 时带上 origin
func (e *Error) Body(debug bool) gin.H {
	body := gin.H{}
	if e.List {
		body[e.Key] = []string{e.Message}
	} else {
		body[e.Key] = e.Message
	}
	if debug && e.cause != nil {
		body["origin"] = e.cause.Error()
	}
	return body
}

// ensureStack 确保错误带有堆栈信息
func ensureStack(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(interface{ StackTrace() pkgerrors.StackTrace }); ok {
		return err
	}
	return pkgerrors.WithStack(err)
}
