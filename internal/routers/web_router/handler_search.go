package web_router

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/hellodata/notes-web/internal/app"
	"github.com/hellodata/notes-web/internal/dto"
	"github.com/hellodata/notes-web/internal/service"
)

// SearchHandler 全文搜索页处理器
type SearchHandler struct {
	*Handler
}

// NewSearchHandler 创建搜索处理器实例
func NewSearchHandler(a *app.App) *SearchHandler {
	return &SearchHandler{Handler: NewHandler(a)}
}

// Search 搜索页，空查询只渲染表单
func (h *SearchHandler) Search(c *gin.Context) {
	cfg := h.App.Config()
	query := c.Query("q")

	if query == "" {
		c.HTML(http.StatusOK, "search.tmpl", dto.SearchPage{
			Meta: dto.Meta{
				PageTitle:       "Search",
				CanonicalURL:    cfg.Site.URL + "/search",
				MetaDescription: "Search through " + cfg.Site.Description,
			},
			Site: h.Site(),
		})
		return
	}

	notes, err := h.App.NoteService.Search(c.Request.Context(), query)
	if err != nil {
		h.RenderError(c, err)
		return
	}

	views, err := dto.NewNoteViews(notes)
	if err != nil {
		h.RenderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "search.tmpl", dto.SearchPage{
		Meta: dto.Meta{
			PageTitle:       "Search: " + query,
			CanonicalURL:    cfg.Site.URL + "/search?q=" + url.QueryEscape(query),
			MetaKeywords:    joinTags(service.TagsOf(notes)),
			MetaDescription: fmt.Sprintf("Search results for %q - %d results found", query, len(notes)),
		},
		Site:       h.Site(),
		Query:      query,
		Notes:      views,
		HasResults: len(notes) > 0,
	})
}
