package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/easayliu/ytdl-web/pkg/logger"
	"github.com/robfig/cron/v3"
)

// sweepTimeout 单次清理的最长时间
const sweepTimeout = 30 * time.Second

// Sweeper 由会话服务实现
type Sweeper interface {
	SweepIdle(ctx context.Context) (int, error)
}

// SchedulerService 定时清理空闲会话
type SchedulerService struct {
	cron    *cron.Cron
	sweeper Sweeper
	spec    string
	entryID cron.EntryID
	mu      sync.Mutex
	running bool
}

// NewSchedulerService 创建调度器, spec 支持标准5字段和 @every 描述符
func NewSchedulerService(sweeper Sweeper, spec string) *SchedulerService {
	return &SchedulerService{
		cron:    cron.New(),
		sweeper: sweeper,
		spec:    spec,
	}
}

// Start 注册清理任务并启动调度器
func (s *SchedulerService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	entryID, err := s.cron.AddFunc(s.spec, s.sweep)
	if err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", s.spec, err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.running = true
	logger.Info("Scheduler service started", "spec", s.spec, "next_run", s.cron.Entry(entryID).Next)
	return nil
}

// Stop 停止调度器, 等待正在运行的任务结束
func (s *SchedulerService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	<-s.cron.Stop().Done()
	s.cron.Remove(s.entryID)
	s.running = false
	logger.Info("Scheduler service stopped")
}

// IsRunning 调度器是否在运行
func (s *SchedulerService) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *SchedulerService) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	if _, err := s.sweeper.SweepIdle(ctx); err != nil {
		logger.Error("Session sweep failed", "error", err)
	}
}
