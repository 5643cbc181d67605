package web_router

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	pkgapp "github.com/hellodata/notes-web/pkg/app"
	"github.com/hellodata/notes-web/pkg/util"

	"github.com/hellodata/notes-web/internal/app"
	"github.com/hellodata/notes-web/internal/domain"
	"github.com/hellodata/notes-web/internal/dto"
	"github.com/hellodata/notes-web/internal/service"
)

// FolderHandler 文件夹列表页处理器
type FolderHandler struct {
	*Handler
}

// NewFolderHandler 创建文件夹处理器实例
func NewFolderHandler(a *app.App) *FolderHandler {
	return &FolderHandler{Handler: NewHandler(a)}
}

// Show 文件夹页：标签过滤、分页、按月份分组
func (h *FolderHandler) Show(c *gin.Context) {
	cfg := h.App.Config()
	ctx := c.Request.Context()
	slug := c.Param("folderSlug")
	queryTag := c.Query("tag")
	page := pkgapp.GetPage(c)

	folder, err := h.App.FolderService.GetBySlug(ctx, slug)
	if err != nil {
		h.RenderError(c, err)
		return
	}

	var (
		folders  []*domain.Folder
		allNotes []*domain.Note
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		folders, err = h.App.FolderService.List(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		allNotes, err = h.App.NoteService.ListByFolder(egCtx, folder)
		return err
	})
	if err := eg.Wait(); err != nil {
		h.RenderError(c, err)
		return
	}

	// 标签过滤在分页之前，标签云始终基于全部笔记
	filtered := service.FilterByTag(allNotes, queryTag)
	pagination := pkgapp.Paginate(len(filtered), page, cfg.App.NotesPerPage)
	start, end := pkgapp.PageBounds(len(filtered), page, cfg.App.NotesPerPage)

	groups, err := noteGroupViews(service.GroupNotesByMonth(filtered[start:end]))
	if err != nil {
		h.RenderError(c, err)
		return
	}

	folderView := dto.NewFolderView(folder)
	pageTitle := folder.Title
	canonical := cfg.Site.URL + "/" + folderView.Slug
	if queryTag != "" {
		pageTitle = folder.Title + " - " + queryTag
		canonical += "?tag=" + url.QueryEscape(queryTag)
	}

	description := fmt.Sprintf("Browse %d notes about %s", len(filtered), folder.Title)
	if queryTag != "" {
		description += " tagged with " + queryTag
	}

	c.HTML(http.StatusOK, "notes.tmpl", dto.FolderPage{
		Meta: dto.Meta{
			PageTitle:       pageTitle,
			CanonicalURL:    canonical,
			MetaKeywords:    joinTags(service.TagsOf(allNotes)),
			MetaDescription: description,
		},
		Site:       h.Site(),
		Folders:    dto.NewFolderViews(folders),
		Folder:     folderView,
		Tags:       service.TagsOf(allNotes),
		QueryTag:   queryTag,
		Groups:     groups,
		Pagination: pagination,
		URL:        pkgapp.GetRequestURL(c),
	})
}

// Redirect 旧的 /folders/:id URL 301 跳转到 slug URL
func (h *FolderHandler) Redirect(c *gin.Context) {
	folder, err := h.App.FolderService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.RenderError(c, err)
		return
	}

	target := "/" + util.Slugify(folder.Title)
	if queryTag := c.Query("tag"); queryTag != "" {
		target += "?tag=" + url.QueryEscape(queryTag)
	}
	c.Redirect(http.StatusMovedPermanently, target)
}

// noteGroupViews 将分组结果转换为视图模型
func noteGroupViews(groups []*service.NoteGroup) ([]*dto.NoteGroupView, error) {
	views := make([]*dto.NoteGroupView, 0, len(groups))
	for _, g := range groups {
		notes, err := dto.NewNoteViews(g.Notes)
		if err != nil {
			return nil, err
		}
		views = append(views, &dto.NoteGroupView{Key: g.Key, Notes: notes})
	}
	return views, nil
}
