package web_router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/hellodata/notes-web/internal/app"
	"github.com/hellodata/notes-web/internal/domain"
	"github.com/hellodata/notes-web/internal/dto"
	"github.com/hellodata/notes-web/internal/service"
	"github.com/hellodata/notes-web/pkg/util"
)

// HomeHandler 首页处理器
type HomeHandler struct {
	*Handler
}

// NewHomeHandler 创建首页处理器实例
func NewHomeHandler(a *app.App) *HomeHandler {
	return &HomeHandler{Handler: NewHandler(a)}
}

// Home 首页：文件夹导航、首页文章、最近笔记与最新文章预览并发拉取
func (h *HomeHandler) Home(c *gin.Context) {
	cfg := h.App.Config()
	ctx := c.Request.Context()

	var (
		folders  []*domain.Folder
		homeNote *domain.Note
		recent   []*domain.Note
		articles []*domain.Note
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		folders, err = h.App.FolderService.List(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		homeNote, err = h.App.NoteService.HomeArticle(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		recent, err = h.App.NoteService.Recent(egCtx, cfg.App.RecentNotesLimit)
		return err
	})
	eg.Go(func() error {
		var err error
		articles, err = h.App.NoteService.Articles(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		h.RenderError(c, err)
		return
	}

	// 最近笔记需要所属文件夹用于链接
	byID := make(map[string]*domain.Folder, len(folders))
	for _, f := range folders {
		byID[f.FolderID] = f
	}
	for _, n := range recent {
		n.Folder = byID[n.ParentID]
	}

	homeView, err := dto.NewNoteView(homeNote)
	if err != nil {
		h.RenderError(c, err)
		return
	}
	recentViews, err := dto.NewNoteViews(recent)
	if err != nil {
		h.RenderError(c, err)
		return
	}

	var latest *dto.LatestArticleView
	if len(articles) > 0 {
		latest, err = dto.NewLatestArticleView(articles[0])
		if err != nil {
			h.RenderError(c, err)
			return
		}
	}

	keywordSource := recent
	if len(articles) > 0 {
		keywordSource = append(append([]*domain.Note{}, recent...), articles[0])
	}

	description := util.MetaDescription(coalesce(homeNote.LinkExcerpt, homeNote.Body), cfg.App.SummaryLength)
	if description == "" {
		description = cfg.Site.Description
	}

	c.HTML(http.StatusOK, "home.tmpl", dto.HomePage{
		Meta: dto.Meta{
			PageTitle:       cfg.Site.Title,
			CanonicalURL:    cfg.Site.URL,
			MetaKeywords:    joinTags(service.TagsOf(keywordSource)),
			MetaDescription: description,
		},
		Site:          h.Site(),
		Folders:       dto.NewFolderViews(folders),
		Note:          homeView,
		RecentNotes:   recentViews,
		LatestArticle: latest,
	})
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
