package middleware

import (
	"net/http"

	"github.com/easayliu/ytdl-web/internal/application/contracts"
	"github.com/easayliu/ytdl-web/internal/shared/errors"
	"github.com/easayliu/ytdl-web/pkg/utils"
	"github.com/gin-gonic/gin"
)

// SessionIDKey 会话ID在 gin.Context 中的键
const SessionIDKey = "session_id"

// SessionMiddleware 每个浏览器一个会话, 会话ID保存在cookie中
// cookie 缺失或会话已被清理时创建新会话
func SessionMiddleware(sessions contracts.SessionService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(cookieName)

		sess, err := sessions.Open(c.Request.Context(), id)
		if err != nil {
			utils.AbortWithError(c, http.StatusInternalServerError,
				string(errors.CodeOf(err)), errors.MessageOf(err))
			return
		}

		if sess.ID != id {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, sess.ID, 0, "/", "", false, true)
		}
		c.Set(SessionIDKey, sess.ID)
		c.Next()
	}
}

// GetSessionID 获取当前请求的会话ID
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
