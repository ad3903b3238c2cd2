package handlers

import (
	"embed"
	"html/template"

	"github.com/easayliu/ytdl-web/internal/application/container"
	"github.com/easayliu/ytdl-web/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// LoadTemplates 加载内嵌的页面模板
func LoadTemplates(router *gin.Engine) {
	tmpl := template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))
	router.SetHTMLTemplate(tmpl)
}

// GetContainer 从gin.Context中获取ServiceContainer
// 这个方法假设Container已经通过中间件注入到Context中
func GetContainer(c *gin.Context) *container.ServiceContainer {
	sc, exists := c.Get("container")
	if !exists {
		panic("ServiceContainer not found in context. Did you forget to use ContainerMiddleware?")
	}
	return sc.(*container.ServiceContainer)
}

// GetConfig 从gin.Context中获取Config
func GetConfig(c *gin.Context) *config.Config {
	return GetContainer(c).GetConfig()
}
