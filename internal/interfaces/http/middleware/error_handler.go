package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/easayliu/ytdl-web/internal/shared/errors"
	"github.com/easayliu/ytdl-web/pkg/logger"
	"github.com/easayliu/ytdl-web/pkg/utils"
	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware 统一错误处理中间件
// 捕获handler中通过 c.Error 设置的错误, 转换为JSON响应
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		code := errors.CodeOf(err)
		status := mapErrorCodeToHTTPStatus(code)
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", "path", c.Request.URL.Path, "code", code, "error", err)
		} else {
			logger.Warn("Request rejected", "path", c.Request.URL.Path, "code", code, "error", err)
		}
		utils.ErrorWithStatus(c, status, string(code), errors.MessageOf(err))
	}
}

// mapErrorCodeToHTTPStatus 将业务错误码映射到HTTP状态码
func mapErrorCodeToHTTPStatus(code errors.ErrorCode) int {
	switch code {
	case errors.ErrorCodeInvalidRequest:
		return http.StatusBadRequest
	case errors.ErrorCodeNotFound:
		return http.StatusNotFound
	case errors.ErrorCodeRateLimit:
		return http.StatusTooManyRequests
	case errors.ErrorCodeFetchFailed, errors.ErrorCodeDownloadFailed:
		// 抽取后端失败
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// RecoverMiddleware 恢复中间件 - 捕获panic并转换为500错误
func RecoverMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic recovered",
					"path", c.Request.URL.Path,
					"panic", r,
					"stack", string(debug.Stack()))
				utils.AbortWithError(c, http.StatusInternalServerError,
					string(errors.ErrorCodeInternalError), "Internal server error")
			}
		}()
		c.Next()
	}
}
