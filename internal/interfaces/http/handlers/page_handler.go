package handlers

import (
	"net/http"

	"github.com/easayliu/ytdl-web/internal/application/contracts"
	"github.com/easayliu/ytdl-web/internal/application/services/presenter"
	"github.com/easayliu/ytdl-web/internal/domain/entities"
	"github.com/easayliu/ytdl-web/internal/interfaces/http/middleware"
	"github.com/easayliu/ytdl-web/internal/shared/errors"
	"github.com/easayliu/ytdl-web/pkg/logger"
	"github.com/gin-gonic/gin"
)

// PageHandler 下载页面
// 所有表单提交都以 303 重定向回首页, 提示条保存在会话中
type PageHandler struct {
	sessions contracts.SessionService
}

// NewPageHandler 创建页面处理器
func NewPageHandler(sessions contracts.SessionService) *PageHandler {
	return &PageHandler{sessions: sessions}
}

// Index 渲染当前会话
func (h *PageHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	id := middleware.GetSessionID(c)

	sess, busy, err := h.sessions.Snapshot(ctx, id)
	switch {
	case err != nil:
		logger.Error("Failed to load session", "session_id", id, "error", err)
		c.HTML(http.StatusInternalServerError, "index.html", &presenter.PageView{
			Title:   presenter.PageTitle,
			Banners: []entities.Banner{{Level: entities.BannerError, Message: errors.MessageOf(err)}},
		})
	case busy:
		c.HTML(http.StatusOK, "index.html", presenter.RenderBusy(h.sessions.Activity(ctx, id)))
	default:
		c.HTML(http.StatusOK, "index.html", presenter.Render(sess))
	}
}

// Fetch 提交URL, 抓取视频信息
func (h *PageHandler) Fetch(c *gin.Context) {
	id := middleware.GetSessionID(c)
	url := c.PostForm("url")

	if err := h.sessions.SubmitURL(c.Request.Context(), id, url, c.PostForm("output_dir")); err != nil {
		logger.Warn("Fetch failed", "session_id", id, "url", url, "error", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Download 下载下拉框中选中的格式
func (h *PageHandler) Download(c *gin.Context) {
	id := middleware.GetSessionID(c)
	selection := c.PostForm("format")

	if err := h.sessions.Download(c.Request.Context(), id, selection, c.PostForm("output_dir")); err != nil {
		logger.Warn("Download failed", "session_id", id, "selection", selection, "error", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Reset 清空当前会话
func (h *PageHandler) Reset(c *gin.Context) {
	id := middleware.GetSessionID(c)
	if err := h.sessions.Reset(c.Request.Context(), id); err != nil {
		logger.Warn("Reset failed", "session_id", id, "error", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}
