package web_router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hellodata/notes-web/internal/app"
	"github.com/hellodata/notes-web/internal/dto"
	"github.com/hellodata/notes-web/internal/service"
)

// AboutHandler 关于页处理器
type AboutHandler struct {
	*Handler
}

// NewAboutHandler 创建关于页处理器实例
func NewAboutHandler(a *app.App) *AboutHandler {
	return &AboutHandler{Handler: NewHandler(a)}
}

// About 关于页：全部文章按月份分组
func (h *AboutHandler) About(c *gin.Context) {
	cfg := h.App.Config()

	articles, err := h.App.NoteService.Articles(c.Request.Context())
	if err != nil {
		h.RenderError(c, err)
		return
	}

	groups, err := noteGroupViews(service.GroupNotesByMonth(articles))
	if err != nil {
		h.RenderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "about.tmpl", dto.AboutPage{
		Meta: dto.Meta{
			PageTitle:       "About",
			CanonicalURL:    cfg.Site.URL + "/about",
			MetaKeywords:    joinTags(service.TagsOf(articles)),
			MetaDescription: "Articles and thoughts about web development, programming, and technology",
			SidebarSpace:    true,
		},
		Site:   h.Site(),
		Groups: groups,
	})
}
