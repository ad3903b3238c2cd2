package errors

import (
	stderrors "errors"
)

// ErrorCode 业务错误码
type ErrorCode string

const (
	ErrorCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrorCodeNotFound       ErrorCode = "NOT_FOUND"
	ErrorCodeFetchFailed    ErrorCode = "FETCH_FAILED"    // 获取视频信息失败
	ErrorCodeDownloadFailed ErrorCode = "DOWNLOAD_FAILED" // 下载失败
	ErrorCodeRateLimit      ErrorCode = "RATE_LIMIT"
	ErrorCodeInternalError  ErrorCode = "INTERNAL_ERROR"
)

// ServiceError 业务错误
// Message 保存抽取后端返回的原始错误信息, 不做二次包装
type ServiceError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

func (e *ServiceError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// NewServiceError 创建业务错误
func NewServiceError(code ErrorCode, message string) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
	}
}

// NewServiceErrorWithCause 创建带原因的业务错误
func NewServiceErrorWithCause(code ErrorCode, message string, cause error) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewServiceErrorWithDetails 创建带详情的业务错误
func NewServiceErrorWithDetails(code ErrorCode, message string, details map[string]interface{}) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// CodeOf 取出错误码, 非 ServiceError 视为内部错误
func CodeOf(err error) ErrorCode {
	var se *ServiceError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ErrorCodeInternalError
}

// MessageOf 取出面向用户的错误信息
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var se *ServiceError
	if stderrors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}

// IsCode 判断错误码
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
