// Package web_router 提供站点页面路由处理器
package web_router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hellodata/notes-web/internal/app"
	"github.com/hellodata/notes-web/internal/dto"
	"github.com/hellodata/notes-web/internal/middleware"
	"github.com/hellodata/notes-web/pkg/errors"
	"github.com/hellodata/notes-web/pkg/logger"
)

// Handler 基础 Handler 结构体，封装 App Container
// 所有页面 Handler 都应该嵌入此结构体以获得依赖注入能力
type Handler struct {
	App *app.App
}

// NewHandler 创建基础 Handler 实例
func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// Site 布局模板共享的站点信息
func (h *Handler) Site() dto.SiteView {
	cfg := h.App.Config()
	return dto.SiteView{
		Title:       cfg.Site.Title,
		Description: cfg.Site.Description,
		URL:         cfg.Site.URL,
	}
}

// RenderError 按错误码渲染错误页，未知错误按 500 处理
func (h *Handler) RenderError(c *gin.Context, err error) {
	status := errors.StatusOf(err)
	message := "Something went wrong. Please try again later."
	if status == http.StatusNotFound {
		message = "The page you are looking for does not exist."
	}

	h.App.Logger().Error("request failed",
		zap.String(logger.FieldTraceID, middleware.GetTraceIDFromGin(c)),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	)
	_ = c.Error(err)

	c.HTML(status, "error.tmpl", dto.ErrorPage{
		Meta:    dto.Meta{PageTitle: "Error"},
		Site:    h.Site(),
		Status:  status,
		Message: message,
	})
}

// joinTags 将标签列表拼为 meta keywords
func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// NotFound 渲染 404 页面，用于未匹配路由
func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error.tmpl", dto.ErrorPage{
		Meta:    dto.Meta{PageTitle: "Not Found"},
		Site:    h.Site(),
		Status:  http.StatusNotFound,
		Message: "The page you are looking for does not exist.",
	})
}
