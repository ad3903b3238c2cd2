package session

import (
	"context"
	"strings"
	"time"

	"github.com/easayliu/ytdl-web/internal/application/contracts"
	"github.com/easayliu/ytdl-web/internal/domain/entities"
	"github.com/easayliu/ytdl-web/internal/domain/repositories"
	"github.com/easayliu/ytdl-web/internal/domain/services/format"
	"github.com/easayliu/ytdl-web/internal/domain/valueobjects"
	"github.com/easayliu/ytdl-web/internal/shared/errors"
	"github.com/easayliu/ytdl-web/pkg/logger"
)

// AppSessionService 页面状态机
// Idle -> Loaded -> Downloading -> Loaded, 抓取失败回到 Idle
type AppSessionService struct {
	repo       repositories.SessionRepository
	video      contracts.VideoService
	defaultDir string
	ttl        time.Duration
}

// NewAppSessionService 创建会话服务
func NewAppSessionService(repo repositories.SessionRepository, video contracts.VideoService, defaultDir string, ttl time.Duration) contracts.SessionService {
	return &AppSessionService{
		repo:       repo,
		video:      video,
		defaultDir: defaultDir,
		ttl:        ttl,
	}
}

// Open 获取会话, 不存在或已过期时创建新会话
func (s *AppSessionService) Open(ctx context.Context, id string) (*entities.Session, error) {
	if id != "" {
		if sess, err := s.repo.GetByID(ctx, id); err == nil {
			return sess, nil
		}
	}

	sess, err := s.repo.Create(ctx, s.defaultDir)
	if err != nil {
		return nil, errors.NewServiceErrorWithCause(errors.ErrorCodeInternalError, "failed to create session", err)
	}
	logger.Debug("Session created", "session_id", sess.ID)
	return sess, nil
}

// Snapshot 会话正忙时不等待, 直接返回 busy
func (s *AppSessionService) Snapshot(ctx context.Context, id string) (*entities.Session, bool, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if !sess.TryLock() {
		return nil, true, nil
	}
	defer sess.Unlock()
	return sess.Snapshot(), false, nil
}

// Activity 会话正忙时页面显示的提示
func (s *AppSessionService) Activity(ctx context.Context, id string) string {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ""
	}
	return sess.Activity()
}

// SubmitURL 每次提交都会重新抓取并整体替换快照
func (s *AppSessionService) SubmitURL(ctx context.Context, id, url, outputDir string) error {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	sess.Lock()
	defer sess.Unlock()
	defer sess.Touch()

	sess.ClearBanners()
	sess.OutputDir = outputDir

	url = strings.TrimSpace(url)
	if url == "" {
		sess.Clear()
		return nil
	}
	sess.URL = url

	sess.SetActivity(MessageFetching)
	info, err := s.video.Fetch(ctx, url)
	sess.SetActivity("")

	if err != nil {
		sess.Info = nil
		sess.Selection = ""
		sess.State = valueobjects.ViewStateIdle
		sess.AddBanner(entities.BannerError, PrefixFetchError+errors.MessageOf(err))
		return err
	}

	sess.LoadInfo(info)
	if !info.HasFormats() {
		sess.AddBanner(entities.BannerWarning, MessageNoFormats)
	}
	return nil
}

// Download 下载选中的格式, 完成后回到 Loaded
func (s *AppSessionService) Download(ctx context.Context, id, selection, outputDir string) error {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	sess.Lock()
	defer sess.Unlock()
	defer sess.Touch()

	sess.ClearBanners()
	sess.OutputDir = outputDir

	if !sess.State.CanDownload() || !sess.Info.HasFormats() {
		sess.AddBanner(entities.BannerWarning, MessageNothingLoaded)
		return errors.NewServiceError(errors.ErrorCodeInvalidRequest, MessageNothingLoaded)
	}

	sess.Selection = selection
	req := entities.DownloadRequest{
		URL:       sess.URL,
		FormatID:  format.FromOption(selection),
		OutputDir: outputDir,
	}

	sess.State = valueobjects.ViewStateDownloading
	sess.SetActivity(MessageDownloading)
	err = s.video.Download(ctx, req)
	sess.SetActivity("")
	sess.State = valueobjects.ViewStateLoaded

	if err != nil {
		sess.AddBanner(entities.BannerError, PrefixDownloadError+errors.MessageOf(err))
		return err
	}
	sess.AddBanner(entities.BannerSuccess, MessageDownloadDone)
	return nil
}

// Reset 清空URL和视频信息, 保留下载目录
func (s *AppSessionService) Reset(ctx context.Context, id string) error {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	sess.Lock()
	defer sess.Unlock()
	sess.Clear()
	sess.Touch()
	return nil
}

// SweepIdle 清理空闲超过 ttl 的会话
func (s *AppSessionService) SweepIdle(ctx context.Context) (int, error) {
	removed, err := s.repo.DeleteIdle(ctx, s.ttl)
	if err != nil {
		return removed, err
	}
	if removed > 0 {
		logger.Info("Idle sessions removed", "count", removed, "remaining", s.repo.Count(ctx))
	}
	return removed, nil
}
