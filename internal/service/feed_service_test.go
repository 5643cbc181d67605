package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hellodata/notes-web/internal/domain"
	"github.com/hellodata/notes-web/pkg/timex"
)

func newTestFeedService(notes *stubNoteRepo, folders *stubFolderRepo) FeedService {
	site := SiteConfig{
		URL:              "https://notes.example.com",
		Title:            "Notes - Hello Data",
		Description:      "Web development notes and bookmarks",
		HomeArticleID:    "home-id",
		ArticlesFolderID: "articles-id",
	}
	l := zap.NewNop()
	ns := NewNoteService(notes, folders, &stubResourceRepo{resources: map[string]string{}}, site, l)
	fs := NewFolderService(folders, l)
	return NewFeedService(ns, fs, site, l)
}

func feedNote(id, title, parentID string, day time.Time) *domain.Note {
	return &domain.Note{NoteID: id, Title: title, ParentID: parentID, CreatedTime: timex.Time(day)}
}

func TestFeedService_Sitemap(t *testing.T) {
	day := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)
	folders := &stubFolderRepo{folders: map[string]*domain.Folder{
		"f1":          {FolderID: "f1", Title: "PHP Notes"},
		"articles-id": {FolderID: "articles-id", Title: "Articles"},
	}}
	notes := &stubNoteRepo{notes: []*domain.Note{
		feedNote("n1", "Laravel Queues", "f1", day),
		feedNote("a1", "My First Article", "articles-id", day),
		feedNote("home-id", "Welcome", "articles-id", day),
	}}
	svc := newTestFeedService(notes, folders)

	xml, err := svc.Sitemap(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(xml, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, xml, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)

	// 固定页面
	assert.Contains(t, xml, "<loc>https://notes.example.com/</loc>")
	assert.Contains(t, xml, "<loc>https://notes.example.com/about</loc>")
	assert.Contains(t, xml, "<loc>https://notes.example.com/search</loc>")

	// 文件夹与笔记，文章文件夹不单独出现
	assert.Contains(t, xml, "<loc>https://notes.example.com/php-notes</loc>")
	assert.Contains(t, xml, "<loc>https://notes.example.com/php-notes/laravel-queues</loc>")
	assert.Contains(t, xml, "<lastmod>2024-03-04</lastmod>")
	assert.NotContains(t, xml, "<loc>https://notes.example.com/articles</loc>")

	// 文章走 /articles/ 路径，首页文章除外
	assert.Contains(t, xml, "<loc>https://notes.example.com/articles/my-first-article</loc>")
	assert.NotContains(t, xml, "welcome")
}

func TestFeedService_RSS(t *testing.T) {
	day := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)
	folders := &stubFolderRepo{folders: map[string]*domain.Folder{
		"f1":          {FolderID: "f1", Title: "PHP Notes"},
		"articles-id": {FolderID: "articles-id", Title: "Articles"},
	}}

	t.Run("items carry canonical links and escaped text", func(t *testing.T) {
		note := feedNote("n1", "Tips & Tricks", "f1", day)
		note.LinkExcerpt = "a <b>bold</b> excerpt"
		note.Tags = []string{"php", "laravel"}
		article := feedNote("a1", "My First Article", "articles-id", day.Add(time.Hour))
		notes := &stubNoteRepo{notes: []*domain.Note{article, note}}
		svc := newTestFeedService(notes, folders)

		xml, err := svc.RSS(context.Background())
		require.NoError(t, err)

		assert.Contains(t, xml, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
		assert.Contains(t, xml, "<title>Notes - Hello Data</title>")
		assert.Contains(t, xml, `<atom:link href="https://notes.example.com/rss.xml" rel="self" type="application/rss+xml">`)
		assert.NotContains(t, xml, `xmlns="atom"`)

		assert.Contains(t, xml, "<link>https://notes.example.com/php-notes/tips-tricks</link>")
		assert.Contains(t, xml, "<link>https://notes.example.com/articles/my-first-article</link>")
		assert.Contains(t, xml, "<title>Tips &amp; Tricks</title>")
		assert.Contains(t, xml, "bold excerpt</description>")
		assert.NotContains(t, xml, "<b>bold</b>")
		assert.Contains(t, xml, "<category>php</category>")
		assert.Contains(t, xml, "<pubDate>Mon, 04 Mar 2024 10:00:00 +0000</pubDate>")
	})

	t.Run("newest first and capped at twenty", func(t *testing.T) {
		var all []*domain.Note
		for i := 0; i < 30; i++ {
			all = append(all, feedNote(
				"a"+string(rune('a'+i)), "Article "+string(rune('a'+i)),
				"articles-id", day.Add(time.Duration(i)*time.Hour)))
		}
		notes := &stubNoteRepo{notes: all}
		svc := newTestFeedService(notes, folders)

		xml, err := svc.RSS(context.Background())
		require.NoError(t, err)
		assert.Equal(t, RSSItemLimit, strings.Count(xml, "<item>"))
	})
}
