package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck 健康检查
// @Summary 健康检查
// @Description 检查服务及各组件的健康状态
// @Tags 健康检查
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	sc := GetContainer(c)

	status := http.StatusOK
	state := "ok"
	if err := sc.ValidateServices(); err != nil {
		status = http.StatusServiceUnavailable
		state = "degraded"
	}

	c.JSON(status, gin.H{
		"status":  state,
		"message": "ytdl-web service is running",
		"health":  sc.GetServiceHealth(),
	})
}
