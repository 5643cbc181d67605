package service

import (
	"context"
	"encoding/xml"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hellodata/notes-web/internal/domain"
	"github.com/hellodata/notes-web/pkg/util"
)

// RSSItemLimit RSS 输出的最大条目数
const RSSItemLimit = 20

// rssDescriptionLength RSS 条目描述的最大长度
const rssDescriptionLength = 500

// FeedService 站点地图与 RSS 输出
type FeedService interface {
	// Sitemap 生成 sitemap.org urlset 文档
	Sitemap(ctx context.Context) (string, error)
	// RSS 生成 RSS 2.0 文档，最近笔记与文章合并后取最新 20 条
	RSS(ctx context.Context) (string, error)
}

type feedService struct {
	noteService   NoteService
	folderService FolderService
	site          SiteConfig
	logger        *zap.Logger
}

// NewFeedService creates a FeedService over the read services.
func NewFeedService(noteService NoteService, folderService FolderService,
	site SiteConfig, l *zap.Logger) FeedService {
	return &feedService{
		noteService:   noteService,
		folderService: folderService,
		site:          site,
		logger:        l,
	}
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func (s *feedService) Sitemap(ctx context.Context) (string, error) {
	folders, err := s.folderService.List(ctx)
	if err != nil {
		return "", err
	}

	// 每个文件夹的笔记并发拉取，文章文件夹单独一组
	notesByFolder := make([][]*domain.Note, len(folders))
	var articles []*domain.Note
	eg, egCtx := errgroup.WithContext(ctx)
	for i, folder := range folders {
		i, folder := i, folder
		if folder.FolderID == s.site.ArticlesFolderID {
			eg.Go(func() error {
				var err error
				articles, err = s.noteService.ListByFolder(egCtx, folder)
				return err
			})
			continue
		}
		eg.Go(func() error {
			var err error
			notesByFolder[i], err = s.noteService.ListByFolder(egCtx, folder)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return "", err
	}

	now := time.Now().UTC().Format("2006-01-02")
	urls := []sitemapURL{
		{Loc: s.site.URL + "/", LastMod: now, ChangeFreq: "daily", Priority: "1.0"},
		{Loc: s.site.URL + "/about", LastMod: now, ChangeFreq: "weekly", Priority: "0.8"},
		{Loc: s.site.URL + "/search", ChangeFreq: "monthly", Priority: "0.5"},
	}

	for _, folder := range folders {
		if folder.FolderID == s.site.ArticlesFolderID {
			continue
		}
		urls = append(urls, sitemapURL{
			Loc:        s.site.URL + "/" + util.Slugify(folder.Title),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	for i, folder := range folders {
		if folder.FolderID == s.site.ArticlesFolderID {
			continue
		}
		folderSlug := util.Slugify(folder.Title)
		for _, note := range notesByFolder[i] {
			urls = append(urls, sitemapURL{
				Loc:        s.site.URL + "/" + folderSlug + "/" + util.Slugify(note.Title),
				LastMod:    note.CreatedTime.DateKey(),
				ChangeFreq: "monthly",
				Priority:   "0.6",
			})
		}
	}

	for _, note := range articles {
		urls = append(urls, sitemapURL{
			Loc:        s.site.URL + "/articles/" + util.Slugify(note.Title),
			LastMod:    note.CreatedTime.DateKey(),
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}

	return marshalXML(sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	})
}

// rssAtomLink 的元素名通过 XMLName 的值给出：encoding/xml 会把标签里的
// "atom:link" 当作命名空间前缀处理，只有字面量 Local 能原样输出
type rssAtomLink struct {
	XMLName xml.Name
	Href    string `xml:"href,attr"`
	Rel     string `xml:"rel,attr"`
	Type    string `xml:"type,attr"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        string   `xml:"guid"`
	PubDate     string   `xml:"pubDate"`
	Description string   `xml:"description,omitempty"`
	Categories  []string `xml:"category"`
}

type rssChannel struct {
	Title         string      `xml:"title"`
	Link          string      `xml:"link"`
	Description   string      `xml:"description"`
	Language      string      `xml:"language"`
	LastBuildDate string      `xml:"lastBuildDate"`
	AtomLink      rssAtomLink
	Items         []rssItem   `xml:"item"`
}

type rssFeed struct {
	XMLName   xml.Name   `xml:"rss"`
	Version   string     `xml:"version,attr"`
	XmlnsAtom string     `xml:"xmlns:atom,attr"`
	Channel   rssChannel `xml:"channel"`
}

func (s *feedService) RSS(ctx context.Context) (string, error) {
	var recent, articles []*domain.Note
	var folders []*domain.Folder

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		recent, err = s.noteService.Recent(egCtx, 5)
		return err
	})
	eg.Go(func() error {
		var err error
		articles, err = s.noteService.ListByFolder(egCtx,
			&domain.Folder{FolderID: s.site.ArticlesFolderID})
		return err
	})
	eg.Go(func() error {
		var err error
		folders, err = s.folderService.List(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return "", err
	}

	byID := make(map[string]*domain.Folder, len(folders))
	for _, f := range folders {
		byID[f.FolderID] = f
	}
	for _, n := range recent {
		n.Folder = byID[n.ParentID]
	}

	all := make([]*domain.Note, 0, len(recent)+len(articles))
	all = append(all, recent...)
	all = append(all, articles...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[j].CreatedTime.Before(all[i].CreatedTime)
	})
	if len(all) > RSSItemLimit {
		all = all[:RSSItemLimit]
	}

	items := make([]rssItem, 0, len(all))
	for _, note := range all {
		var link string
		switch {
		case note.ParentID == s.site.ArticlesFolderID:
			link = s.site.URL + "/articles/" + util.Slugify(note.Title)
		case note.Folder != nil:
			link = s.site.URL + "/" + util.Slugify(note.Folder.Title) + "/" + util.Slugify(note.Title)
		default:
			// 无法确定规范 URL 的条目不进入 feed
			continue
		}

		item := rssItem{
			Title:      note.Title,
			Link:       link,
			GUID:       link,
			PubDate:    note.CreatedTime.RFC1123(),
			Categories: note.Tags,
		}
		if note.LinkExcerpt != "" {
			item.Description = util.MetaDescription(note.LinkExcerpt, rssDescriptionLength)
		} else if note.Body != "" {
			item.Description = util.MetaDescription(note.Body, rssDescriptionLength)
		}
		items = append(items, item)
	}

	return marshalXML(rssFeed{
		Version:   "2.0",
		XmlnsAtom: "http://www.w3.org/2005/Atom",
		Channel: rssChannel{
			Title:         s.site.Title,
			Link:          s.site.URL,
			Description:   s.site.Description,
			Language:      "en-us",
			LastBuildDate: time.Now().UTC().Format(time.RFC1123Z),
			AtomLink: rssAtomLink{
				XMLName: xml.Name{Local: "atom:link"},
				Href:    s.site.URL + "/rss.xml",
				Rel:     "self",
				Type:    "application/rss+xml",
			},
			Items: items,
		},
	})
}

func marshalXML(v interface{}) (string, error) {
	body, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return xml.Header + string(body), nil
}
