package container

import (
	"context"
	"fmt"
	"sync"

	"github.com/easayliu/ytdl-web/internal/application/contracts"
	"github.com/easayliu/ytdl-web/internal/application/services/notification"
	"github.com/easayliu/ytdl-web/internal/application/services/scheduler"
	"github.com/easayliu/ytdl-web/internal/application/services/session"
	"github.com/easayliu/ytdl-web/internal/application/services/video"
	"github.com/easayliu/ytdl-web/internal/infrastructure/config"
	"github.com/easayliu/ytdl-web/internal/infrastructure/kkdai"
	"github.com/easayliu/ytdl-web/internal/infrastructure/ratelimit"
	"github.com/easayliu/ytdl-web/internal/infrastructure/repository"
	"github.com/easayliu/ytdl-web/internal/infrastructure/telegram"
	"github.com/easayliu/ytdl-web/internal/infrastructure/ytdlp"
	"github.com/easayliu/ytdl-web/internal/infrastructure/ytget"
	"github.com/easayliu/ytdl-web/pkg/logger"
)

// ServiceContainer 服务容器 - 实现依赖注入
type ServiceContainer struct {
	config *config.Config

	extractor           contracts.Extractor
	limiter             *ratelimit.Limiter
	sessionRepo         *repository.SessionRepository
	notificationService contracts.NotificationService
	videoService        contracts.VideoService
	sessionService      contracts.SessionService
	schedulerService    *scheduler.SchedulerService

	initErr error
	once    sync.Once
}

// NewServiceContainer 创建服务容器
func NewServiceContainer(cfg *config.Config) *ServiceContainer {
	return &ServiceContainer{
		config: cfg,
	}
}

// NewServiceContainerWithExtractor 使用指定抽取后端创建服务容器
func NewServiceContainerWithExtractor(cfg *config.Config, extractor contracts.Extractor) *ServiceContainer {
	return &ServiceContainer{
		config:    cfg,
		extractor: extractor,
	}
}

// GetConfig 获取配置
func (c *ServiceContainer) GetConfig() *config.Config {
	return c.config
}

// GetVideoService 获取视频服务实例
func (c *ServiceContainer) GetVideoService() contracts.VideoService {
	c.once.Do(c.initServices)
	return c.videoService
}

// GetSessionService 获取会话服务实例
func (c *ServiceContainer) GetSessionService() contracts.SessionService {
	c.once.Do(c.initServices)
	return c.sessionService
}

// GetSchedulerService 获取调度服务实例
func (c *ServiceContainer) GetSchedulerService() *scheduler.SchedulerService {
	c.once.Do(c.initServices)
	return c.schedulerService
}

// initServices 初始化所有服务（单例模式）
func (c *ServiceContainer) initServices() {
	logger.Info("Initializing service container", "backend", c.config.Extractor.Backend)

	// 1. 基础设施层
	if c.extractor == nil {
		extractor, err := NewExtractor(&c.config.Extractor)
		if err != nil {
			c.initErr = err
			logger.Error("Failed to initialize extractor", "error", err)
			return
		}
		c.extractor = extractor
	}
	c.limiter = ratelimit.New(c.config.Extractor.QPS)
	c.sessionRepo = repository.NewSessionRepository()
	c.notificationService = newNotificationService(&c.config.Telegram)

	// 2. 应用层服务
	c.videoService = video.NewAppVideoService(c.extractor, c.limiter, c.notificationService)
	c.sessionService = session.NewAppSessionService(
		c.sessionRepo,
		c.videoService,
		c.config.Download.DefaultDir,
		c.config.Session.TTL,
	)
	c.schedulerService = scheduler.NewSchedulerService(c.sessionService, c.config.Session.SweepSpec)

	logger.Info("Service container initialized successfully")
}

// NewExtractor 按配置创建抽取后端
func NewExtractor(cfg *config.ExtractorConfig) (contracts.Extractor, error) {
	switch cfg.Backend {
	case "", config.BackendYtDlp:
		return ytdlp.NewClient(cfg), nil
	case config.BackendKkdai:
		client, err := kkdai.NewClient(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create kkdai extractor: %w", err)
		}
		return client, nil
	case config.BackendYtget:
		client, err := ytget.NewClient(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create ytget extractor: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown extractor backend: %s", cfg.Backend)
	}
}

// newNotificationService Telegram 未启用或连接失败时降级为禁用服务
func newNotificationService(cfg *config.TelegramConfig) contracts.NotificationService {
	if !cfg.Enabled || cfg.BotToken == "" {
		return notification.NewDisabledNotificationService()
	}

	client, err := telegram.NewClient(cfg)
	if err != nil {
		logger.Warn("Telegram notifications disabled", "error", err)
		return notification.NewDisabledNotificationService()
	}
	return notification.NewAppNotificationService(client)
}

// Shutdown 关闭服务容器
func (c *ServiceContainer) Shutdown() {
	logger.Info("Shutting down service container")

	if c.schedulerService != nil {
		c.schedulerService.Stop()
	}

	logger.Info("Service container shutdown completed")
}

// ValidateServices 验证服务配置
func (c *ServiceContainer) ValidateServices() error {
	c.once.Do(c.initServices)

	if c.initErr != nil {
		return c.initErr
	}
	if c.videoService == nil {
		return fmt.Errorf("video service not initialized")
	}
	if c.sessionService == nil {
		return fmt.Errorf("session service not initialized")
	}
	return nil
}

// GetServiceHealth 获取服务健康状态
func (c *ServiceContainer) GetServiceHealth() map[string]interface{} {
	c.once.Do(c.initServices)

	health := map[string]interface{}{
		"container": c.getServiceStatus(c.initErr == nil),
		"services": map[string]interface{}{
			"video_service":        c.getServiceStatus(c.videoService != nil),
			"session_service":      c.getServiceStatus(c.sessionService != nil),
			"scheduler_service":    c.getSchedulerStatus(),
			"notification_service": c.getNotificationStatus(),
		},
	}
	if c.extractor != nil {
		health["backend"] = c.extractor.Name()
	}
	if c.sessionRepo != nil {
		health["sessions"] = c.sessionRepo.Count(context.Background())
	}
	return health
}

// getServiceStatus 获取服务状态
func (c *ServiceContainer) getServiceStatus(initialized bool) string {
	if initialized {
		return "healthy"
	}
	return "unhealthy"
}

func (c *ServiceContainer) getSchedulerStatus() string {
	switch {
	case c.schedulerService == nil:
		return "unhealthy"
	case c.schedulerService.IsRunning():
		return "healthy"
	default:
		return "stopped"
	}
}

func (c *ServiceContainer) getNotificationStatus() string {
	if c.notificationService == nil || !c.notificationService.IsEnabled() {
		return "disabled"
	}
	return "healthy"
}
