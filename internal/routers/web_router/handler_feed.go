package web_router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hellodata/notes-web/internal/app"
)

// FeedHandler 站点地图与 RSS 处理器
type FeedHandler struct {
	*Handler
}

// NewFeedHandler 创建 feed 处理器实例
func NewFeedHandler(a *app.App) *FeedHandler {
	return &FeedHandler{Handler: NewHandler(a)}
}

// Sitemap 输出 sitemap.xml
func (h *FeedHandler) Sitemap(c *gin.Context) {
	xml, err := h.App.FeedService.Sitemap(c.Request.Context())
	if err != nil {
		h.RenderError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(xml))
}

// RSS 输出 rss.xml
func (h *FeedHandler) RSS(c *gin.Context) {
	xml, err := h.App.FeedService.RSS(c.Request.Context())
	if err != nil {
		h.RenderError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(xml))
}
