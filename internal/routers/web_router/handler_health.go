package web_router

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/hellodata/notes-web/internal/app"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	*Handler
}

// NewHealthHandler 创建健康检查处理器实例
func NewHealthHandler(a *app.App) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(a)}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status       string  `json:"status"`       // "healthy" 或 "unhealthy"
	Version      string  `json:"version"`      // 服务版本号
	Uptime       float64 `json:"uptime"`       // 运行时间（秒）
	Upstream     string  `json:"upstream"`     // PostgREST "connected" 或 "error"
	Goroutines   int     `json:"goroutines"`   // 当前 goroutine 数
	MemUsedPct   float64 `json:"memUsedPct"`   // 系统内存占用百分比
	Load1        float64 `json:"load1"`        // 1 分钟负载
	CheckedAtUTC string  `json:"checkedAtUtc"` // 检查时间
}

// Check 健康检查接口，探测上游 PostgREST 可达性
func (h *HealthHandler) Check(c *gin.Context) {
	response := HealthResponse{
		Status:       "healthy",
		Version:      h.App.Version(),
		Uptime:       time.Since(h.App.StartTime).Seconds(),
		Upstream:     "connected",
		Goroutines:   runtime.NumGoroutine(),
		CheckedAtUTC: time.Now().UTC().Format(time.RFC3339),
	}

	if vMem, err := mem.VirtualMemory(); err == nil {
		response.MemUsedPct = vMem.UsedPercent
	}
	if loadStat, err := load.Avg(); err == nil {
		response.Load1 = loadStat.Load1
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if _, err := h.App.FolderService.List(ctx); err != nil {
		response.Status = "unhealthy"
		response.Upstream = "error"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
