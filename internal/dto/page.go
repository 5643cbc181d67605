package dto

import (
	"html/template"

	"github.com/hellodata/notes-web/pkg/app"
)

// Meta 页面 SEO 元信息
type Meta struct {
	PageTitle       string
	CanonicalURL    string
	MetaKeywords    string
	MetaDescription string
	OGType          string
	OGImage         string
	StructuredData  template.HTML
	SidebarSpace    bool
}

// SiteView 布局模板共享的站点信息
type SiteView struct {
	Title       string
	Description string
	URL         string
}

// HomePage 首页视图
type HomePage struct {
	Meta
	Site          SiteView
	Folders       []*FolderView
	Note          *NoteView
	RecentNotes   []*NoteView
	LatestArticle *LatestArticleView
}

// FolderPage 文件夹（笔记列表）页视图
type FolderPage struct {
	Meta
	Site       SiteView
	Folders    []*FolderView
	Folder     *FolderView
	Tags       []string
	QueryTag   string
	Groups     []*NoteGroupView
	Pagination *app.Pagination
	URL        string
}

// NotePage 单条笔记详情页视图
type NotePage struct {
	Meta
	Site   SiteView
	Folder *FolderView
	Tags   []string
	Groups []*NoteGroupView
	URL    string
}

// SearchPage 搜索页视图
type SearchPage struct {
	Meta
	Site       SiteView
	Query      string
	Notes      []*NoteView
	HasResults bool
}

// AboutPage 关于页视图，文章按月份分组
type AboutPage struct {
	Meta
	Site   SiteView
	Groups []*NoteGroupView
}

// NewsletterPage 通讯订阅页视图
type NewsletterPage struct {
	Meta
	Site    SiteView
	Success bool
	Error   string
	Form    *SubscribeRequest
}

// ErrorPage 错误页视图
type ErrorPage struct {
	Meta
	Site    SiteView
	Status  int
	Message string
}
