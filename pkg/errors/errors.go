// Package errors 统一应用错误
// Package errors provides the unified application error type.
package errors

import (
	"errors"
	"time"

	"github.com/hellodata/notes-web/pkg/code"
)

// AppError 统一应用错误结构体
// 包含错误码、消息、详情、追踪ID和时间戳
type AppError struct {
	// Code 错误码
	Code int `json:"code"`
	// StatusCode HTTP 状态码
	StatusCode int `json:"-"`
	// Message 错误消息
	Message string `json:"message"`
	// Details 错误详情（可选）
	Details []string `json:"details,omitempty"`
	// TraceID 请求追踪ID
	TraceID string `json:"traceId,omitempty"`
	// Cause 原始错误（不序列化到JSON）
	Cause error `json:"-"`
	// Timestamp 错误发生时间
	Timestamp time.Time `json:"timestamp"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	return e.Message
}

// Unwrap 实现 errors.Unwrap 接口，支持错误链路追踪
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError 从 Code 对象创建 AppError
func NewAppError(c *code.Code, cause error) *AppError {
	return &AppError{
		Code:       c.Code(),
		StatusCode: c.StatusCode(),
		Message:    c.Msg(),
		Details:    c.Details(),
		Cause:      cause,
		Timestamp:  time.Now(),
	}
}

// WithTraceID 设置 TraceID 并返回自身（链式调用）
func (e *AppError) WithTraceID(traceID string) *AppError {
	e.TraceID = traceID
	return e
}

// WithDetails 设置详情并返回自身（链式调用）
func (e *AppError) WithDetails(details ...string) *AppError {
	e.Details = details
	return e
}

// CodeOf extracts the business code behind err, unwrapping as needed.
// Unknown errors map to ErrorServer.
// CodeOf 提取 err 背后的业务码，必要时展开错误链；未知错误映射为 ErrorServer
func CodeOf(err error) *code.Code {
	var c *code.Code
	if errors.As(err, &c) {
		return c
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		if cause := appErr.Unwrap(); cause != nil {
			if errors.As(cause, &c) {
				return c
			}
		}
	}
	return code.ErrorServer
}

// StatusOf 返回 err 对应的 HTTP 状态码
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.StatusCode != 0 {
		return appErr.StatusCode
	}
	return CodeOf(err).StatusCode()
}
