package routes

import (
	"github.com/easayliu/ytdl-web/internal/application/container"
	"github.com/easayliu/ytdl-web/internal/interfaces/http/handlers"
	"github.com/easayliu/ytdl-web/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes 使用ServiceContainer设置路由
// 页面路由使用会话cookie, /api/v1 为无状态JSON接口
func SetupRoutes(sc *container.ServiceContainer) *gin.Engine {
	cfg := sc.GetConfig()

	router := gin.New()
	router.Use(middleware.RecoverMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.ContainerMiddleware(sc))

	handlers.LoadTemplates(router)

	// Swagger文档路由
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 页面路由
	pageHandler := handlers.NewPageHandler(sc.GetSessionService())
	page := router.Group("/")
	page.Use(middleware.SessionMiddleware(sc.GetSessionService(), cfg.Session.CookieName))
	{
		page.GET("/", pageHandler.Index)
		page.POST("/fetch", pageHandler.Fetch)
		page.POST("/download", pageHandler.Download)
		page.POST("/reset", pageHandler.Reset)
	}

	// API 路由组
	videoHandler := handlers.NewVideoAPIHandler(sc.GetVideoService())
	api := router.Group("/api/v1")
	api.Use(middleware.ErrorHandlerMiddleware())
	{
		api.GET("/health", handlers.HealthCheck)
		api.POST("/info", videoHandler.GetInfo)
		api.POST("/download", videoHandler.Download)
	}

	return router
}
