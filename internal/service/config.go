package service

// SiteConfig 服务层使用的站点配置（由应用容器注入）
// SiteConfig is the site configuration injected into services
type SiteConfig struct {
	// URL 站点规范 URL，不带结尾斜杠
	URL string
	// Title 站点名称
	Title string
	// Description 站点默认 meta 描述
	Description string
	// HomeArticleID 首页文章的 note_id，所有列表都排除它
	HomeArticleID string
	// ArticlesFolderID 文章文件夹的 folder_id
	ArticlesFolderID string
	// NotesPerPage 文件夹页单页笔记数
	NotesPerPage int
	// SummaryLength meta 描述最大长度
	SummaryLength int
}
