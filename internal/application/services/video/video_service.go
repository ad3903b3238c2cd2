package video

import (
	"context"
	"strings"
	"time"

	"github.com/easayliu/ytdl-web/internal/application/contracts"
	"github.com/easayliu/ytdl-web/internal/domain/entities"
	"github.com/easayliu/ytdl-web/internal/infrastructure/ratelimit"
	"github.com/easayliu/ytdl-web/internal/shared/errors"
	"github.com/easayliu/ytdl-web/pkg/logger"
)

// notifyTimeout 单次通知的最长等待时间
const notifyTimeout = 15 * time.Second

// AppVideoService 元数据抓取与下载
// 抽取后端调用不随请求取消, 一旦开始就运行到结束
type AppVideoService struct {
	extractor contracts.Extractor
	limiter   *ratelimit.Limiter
	notifier  contracts.NotificationService
}

// NewAppVideoService 创建视频服务
func NewAppVideoService(extractor contracts.Extractor, limiter *ratelimit.Limiter, notifier contracts.NotificationService) contracts.VideoService {
	return &AppVideoService{
		extractor: extractor,
		limiter:   limiter,
		notifier:  notifier,
	}
}

// BackendName 当前抽取后端
func (s *AppVideoService) BackendName() string {
	return s.extractor.Name()
}

// Fetch 获取视频信息, 不做本地URL校验, 不重试
func (s *AppVideoService) Fetch(ctx context.Context, url string) (*entities.VideoInfo, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.NewServiceError(errors.ErrorCodeInvalidRequest, "URL is required")
	}
	ctx = context.WithoutCancel(ctx)

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, errors.NewServiceErrorWithCause(errors.ErrorCodeRateLimit, err.Error(), err)
	}

	start := time.Now()
	info, err := s.extractor.Extract(ctx, url)
	if err != nil {
		logger.Warn("Failed to fetch video info", "url", url, "backend", s.extractor.Name(), "error", err)
		return nil, errors.NewServiceErrorWithCause(errors.ErrorCodeFetchFailed, err.Error(), err)
	}

	logger.Info("Video info fetched",
		"url", url,
		"video_id", info.ID,
		"formats", len(info.Formats),
		"elapsed", time.Since(start))
	return info, nil
}

// Download 按格式下载, 格式ID和输出目录原样交给抽取后端
func (s *AppVideoService) Download(ctx context.Context, req entities.DownloadRequest) error {
	if strings.TrimSpace(req.URL) == "" {
		return errors.NewServiceError(errors.ErrorCodeInvalidRequest, "URL is required")
	}
	req.FormatID = req.EffectiveFormat()
	ctx = context.WithoutCancel(ctx)

	if err := s.limiter.Wait(ctx); err != nil {
		return errors.NewServiceErrorWithCause(errors.ErrorCodeRateLimit, err.Error(), err)
	}

	logger.Info("Download started", "url", req.URL, "format", req.FormatID, "output_dir", req.OutputDir)
	start := time.Now()
	err := s.extractor.Download(ctx, req)
	elapsed := time.Since(start)

	notice := contracts.DownloadNotificationRequest{
		URL:       req.URL,
		FormatID:  req.FormatID,
		OutputDir: req.OutputDir,
		Duration:  elapsed,
	}

	if err != nil {
		logger.Error("Download failed", "url", req.URL, "format", req.FormatID, "error", err)
		notice.ErrorMessage = err.Error()
		s.notify(ctx, notice, false)
		return errors.NewServiceErrorWithCause(errors.ErrorCodeDownloadFailed, err.Error(), err)
	}

	logger.Info("Download completed", "url", req.URL, "format", req.FormatID, "elapsed", elapsed)
	s.notify(ctx, notice, true)
	return nil
}

// notify 异步发送通知, 失败只记录日志
func (s *AppVideoService) notify(ctx context.Context, req contracts.DownloadNotificationRequest, success bool) {
	if s.notifier == nil || !s.notifier.IsEnabled() {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
		defer cancel()

		var err error
		if success {
			err = s.notifier.NotifyDownloadComplete(ctx, req)
		} else {
			err = s.notifier.NotifyDownloadFailed(ctx, req)
		}
		if err != nil {
			logger.Warn("Failed to send download notification", "url", req.URL, "error", err)
		}
	}()
}
