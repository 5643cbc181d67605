// Package dto 定义模板与表单使用的视图模型
// Package dto holds the view models consumed by templates and forms.
package dto

import (
	"html/template"
	"strings"

	"github.com/hellodata/notes-web/internal/domain"
	"github.com/hellodata/notes-web/pkg/convert"
	"github.com/hellodata/notes-web/pkg/util"
)

// NoteView 笔记视图模型，正文已渲染为 HTML
type NoteView struct {
	NoteID      string
	Title       string
	Slug        string
	URL         string
	BodyHTML    template.HTML
	LinkExcerpt string
	LinkImage   string
	CreatedOn   string
	Tags        []string
	FolderTitle string
	FolderSlug  string
}

// NewNoteView converts a note into its view model, rendering the
// markdown body to HTML.
func NewNoteView(n *domain.Note) (*NoteView, error) {
	view := &NoteView{}
	if err := convert.StructAssign(view, n); err != nil {
		return nil, err
	}
	view.Slug = util.Slugify(n.Title)
	view.CreatedOn = n.CreatedTime.Display()
	if n.Folder != nil {
		view.FolderTitle = n.Folder.Title
		view.FolderSlug = util.Slugify(n.Folder.Title)
		view.URL = "/" + view.FolderSlug + "/" + view.Slug
	}
	if n.Body != "" {
		rendered, err := util.RenderMarkdown(n.Body)
		if err != nil {
			return nil, err
		}
		view.BodyHTML = template.HTML(rendered)
	}
	return view, nil
}

// NewNoteViews converts a slice of notes, preserving order.
func NewNoteViews(notes []*domain.Note) ([]*NoteView, error) {
	views := make([]*NoteView, 0, len(notes))
	for _, n := range notes {
		view, err := NewNoteView(n)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// NoteGroupView 按日期或月份分桶后的笔记组
type NoteGroupView struct {
	Key   string
	Notes []*NoteView
}

// LatestArticleView 首页最新文章预览：正文在首个 "---" 处截断并附
// "Read more" 链接
type LatestArticleView struct {
	Title    string
	Slug     string
	BodyHTML template.HTML
}

// NewLatestArticleView builds the home page article preview.
func NewLatestArticleView(n *domain.Note) (*LatestArticleView, error) {
	slug := util.Slugify(n.Title)
	body := n.Body
	if parts := strings.SplitN(body, "---", 2); len(parts) > 1 {
		body = strings.TrimSpace(parts[0]) + "\n\n[Read more](/articles/" + slug + ")"
	}
	body = strings.ReplaceAll(body, `\`, "")
	rendered, err := util.RenderMarkdown(body)
	if err != nil {
		return nil, err
	}
	return &LatestArticleView{
		Title:    n.Title,
		Slug:     slug,
		BodyHTML: template.HTML(rendered),
	}, nil
}
