package web_router

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"

	"github.com/hellodata/notes-web/internal/app"
	"github.com/hellodata/notes-web/internal/domain"
	"github.com/hellodata/notes-web/internal/dto"
	"github.com/hellodata/notes-web/internal/service"
	pkgapp "github.com/hellodata/notes-web/pkg/app"
	"github.com/hellodata/notes-web/pkg/util"
)

// NoteHandler 笔记详情页处理器
type NoteHandler struct {
	*Handler
}

// NewNoteHandler 创建笔记处理器实例
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{Handler: NewHandler(a)}
}

// Show 笔记详情页，按 folderSlug/noteSlug 定位
func (h *NoteHandler) Show(c *gin.Context) {
	cfg := h.App.Config()
	ctx := c.Request.Context()
	folderSlug := c.Param("folderSlug")
	noteSlug := c.Param("noteSlug")

	folder, err := h.App.FolderService.GetBySlug(ctx, folderSlug)
	if err != nil {
		h.RenderError(c, err)
		return
	}
	note, err := h.App.NoteService.GetBySlug(ctx, folder, noteSlug)
	if err != nil {
		h.RenderError(c, err)
		return
	}

	canonical := cfg.Site.URL + "/" + folderSlug + "/" + noteSlug

	structuredData, err := articleStructuredData(note, canonical, cfg.Site.Title)
	if err != nil {
		h.RenderError(c, err)
		return
	}

	// 文章的描述只取首个分隔符之前的内容
	descriptionSource := coalesce(note.LinkExcerpt, note.Body)
	if folder.FolderID == cfg.Site.ArticlesFolderID {
		descriptionSource = strings.SplitN(note.Body, "---", 2)[0]
	}

	single := []*domain.Note{note}
	groups, err := noteGroupViews(service.GroupNotesByMonth(single))
	if err != nil {
		h.RenderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "note.tmpl", dto.NotePage{
		Meta: dto.Meta{
			PageTitle:       note.Title,
			CanonicalURL:    canonical,
			MetaKeywords:    joinTags(note.Tags),
			MetaDescription: util.MetaDescription(descriptionSource, cfg.App.SummaryLength),
			OGType:          "article",
			OGImage:         note.LinkImage,
			StructuredData:  structuredData,
			SidebarSpace:    true,
		},
		Site:   h.Site(),
		Folder: dto.NewFolderView(folder),
		Tags:   service.TagsOf(single),
		Groups: groups,
		URL:    pkgapp.GetRequestURL(c),
	})
}

// Redirect 旧的 /notes/:id URL 301 跳转到 slug URL，首页文章跳转到 /
func (h *NoteHandler) Redirect(c *gin.Context) {
	cfg := h.App.Config()
	ctx := c.Request.Context()
	id := c.Param("id")

	if id == cfg.Site.HomeArticleID {
		c.Redirect(http.StatusMovedPermanently, "/")
		return
	}

	note, err := h.App.NoteService.GetByID(ctx, id)
	if err != nil {
		h.RenderError(c, err)
		return
	}
	folder, err := h.App.FolderService.GetByID(ctx, note.ParentID)
	if err != nil {
		h.RenderError(c, err)
		return
	}

	c.Redirect(http.StatusMovedPermanently,
		"/"+util.Slugify(folder.Title)+"/"+util.Slugify(note.Title))
}

// articleStructuredData 生成 schema.org Article 的 JSON-LD 片段
func articleStructuredData(note *domain.Note, canonical, publisher string) (template.HTML, error) {
	payload := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "Article",
		"headline":      note.Title,
		"datePublished": note.CreatedTime.Format("2006-01-02T15:04:05Z07:00"),
		"url":           canonical,
		"publisher": map[string]interface{}{
			"@type": "Organization",
			"name":  publisher,
		},
	}
	data, err := sonic.Marshal(payload)
	if err != nil {
		return "", err
	}
	return template.HTML(fmt.Sprintf(
		"<script type=\"application/ld+json\">\n%s\n</script>", data)), nil
}
