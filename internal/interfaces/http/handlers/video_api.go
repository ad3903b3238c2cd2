package handlers

import (
	"time"

	"github.com/easayliu/ytdl-web/internal/application/contracts"
	"github.com/easayliu/ytdl-web/internal/domain/entities"
	"github.com/easayliu/ytdl-web/internal/domain/services/format"
	"github.com/easayliu/ytdl-web/internal/shared/errors"
	"github.com/easayliu/ytdl-web/pkg/utils"
	"github.com/gin-gonic/gin"
)

// VideoInfoRequest 查询视频信息请求
type VideoInfoRequest struct {
	URL string `json:"url" binding:"required" example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
}

// VideoInfoResponse 视频信息和格式表
type VideoInfoResponse struct {
	Video   *entities.VideoInfo `json:"video"`
	Formats []format.FormatRow  `json:"formats"`
	Options []string            `json:"options"`
}

// DownloadVideoRequest 下载请求, format 为空时使用 best
type DownloadVideoRequest struct {
	URL       string `json:"url" binding:"required"`
	Format    string `json:"format" example:"best"`
	OutputDir string `json:"output_dir" example:"/data/downloads"`
}

// DownloadVideoResponse 下载结果
type DownloadVideoResponse struct {
	URL       string `json:"url"`
	FormatID  string `json:"format_id"`
	OutputDir string `json:"output_dir"`
	Elapsed   string `json:"elapsed"`
}

// VideoAPIHandler JSON API
type VideoAPIHandler struct {
	video contracts.VideoService
}

// NewVideoAPIHandler 创建视频API处理器
func NewVideoAPIHandler(video contracts.VideoService) *VideoAPIHandler {
	return &VideoAPIHandler{video: video}
}

// GetInfo 获取视频信息
// @Summary 获取视频信息
// @Description 调用抽取后端获取视频元数据和可用格式
// @Tags 视频
// @Accept json
// @Produce json
// @Param request body VideoInfoRequest true "视频URL"
// @Success 200 {object} utils.Response{data=VideoInfoResponse}
// @Failure 400 {object} utils.Response
// @Failure 502 {object} utils.Response
// @Router /info [post]
func (h *VideoAPIHandler) GetInfo(c *gin.Context) {
	var req VideoInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewServiceErrorWithCause(errors.ErrorCodeInvalidRequest, "Invalid request: "+err.Error(), err))
		return
	}

	info, err := h.video.Fetch(c.Request.Context(), req.URL)
	if err != nil {
		c.Error(err)
		return
	}

	rows := format.BuildTable(info.Formats)
	utils.Success(c, VideoInfoResponse{
		Video:   info,
		Formats: rows,
		Options: format.ToOptions(rows),
	})
}

// Download 下载视频
// @Summary 下载视频
// @Description 同步下载指定格式到目录, 下载完成后返回
// @Tags 视频
// @Accept json
// @Produce json
// @Param request body DownloadVideoRequest true "下载参数"
// @Success 200 {object} utils.Response{data=DownloadVideoResponse}
// @Failure 400 {object} utils.Response
// @Failure 502 {object} utils.Response
// @Router /download [post]
func (h *VideoAPIHandler) Download(c *gin.Context) {
	var req DownloadVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewServiceErrorWithCause(errors.ErrorCodeInvalidRequest, "Invalid request: "+err.Error(), err))
		return
	}

	dl := entities.DownloadRequest{
		URL:       req.URL,
		FormatID:  format.FromOption(req.Format),
		OutputDir: req.OutputDir,
	}

	start := time.Now()
	if err := h.video.Download(c.Request.Context(), dl); err != nil {
		c.Error(err)
		return
	}

	utils.Success(c, DownloadVideoResponse{
		URL:       dl.URL,
		FormatID:  dl.EffectiveFormat(),
		OutputDir: dl.OutputDir,
		Elapsed:   time.Since(start).Round(time.Millisecond).String(),
	})
}
