package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/easayliu/ytdl-web/docs"
	"github.com/easayliu/ytdl-web/internal/application/container"
	"github.com/easayliu/ytdl-web/internal/infrastructure/config"
	"github.com/easayliu/ytdl-web/internal/interfaces/http/routes"
	"github.com/easayliu/ytdl-web/pkg/logger"
	"github.com/gin-gonic/gin"
)

// shutdownTimeout 等待进行中请求结束的最长时间
const shutdownTimeout = 10 * time.Second

// @title ytdl-web API
// @version 1.0
// @description 基于Gin框架的视频格式查询与下载服务

// @license.name MIT

// @host localhost:8501
// @BasePath /api/v1
// @schemes http https
func main() {
	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// 初始化日志
	if err := logger.Init(logger.Options{
		Level:     cfg.Log.Level,
		Output:    cfg.Log.Output,
		Format:    cfg.Log.Format,
		FilePath:  cfg.Log.FilePath,
		Colorize:  cfg.Log.Colorize,
		AddSource: cfg.Log.AddSource,
	}); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Close()

	// 设置Gin模式
	switch cfg.Server.Mode {
	case gin.DebugMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化服务容器
	sc := container.NewServiceContainer(cfg)
	if err := sc.ValidateServices(); err != nil {
		log.Fatal("Failed to initialize service container:", err)
	}
	defer sc.Shutdown()

	// 启动空闲会话清理
	if err := sc.GetSchedulerService().Start(); err != nil {
		logger.Error("Failed to start scheduler", "error", err)
	}

	// 下载会阻塞请求直到完成, 不设置写超时
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           routes.SetupRoutes(sc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 设置信号处理
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// 启动服务器
	go func() {
		logger.Info("Starting server",
			"address", srv.Addr,
			"backend", sc.GetVideoService().BackendName(),
			"download_dir", cfg.Download.DefaultDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// 等待退出信号
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("Server shutdown incomplete", "error", err)
	}

	logger.Info("Server stopped")
}
