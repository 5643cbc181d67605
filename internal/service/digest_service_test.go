package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hellodata/notes-web/internal/domain"
	"github.com/hellodata/notes-web/pkg/timex"
)

type stubMailer struct {
	sent   []string
	failOn map[string]bool
}

func (m *stubMailer) Send(to, _, _ string) error {
	if m.failOn[to] {
		return errors.New("smtp: connection refused")
	}
	m.sent = append(m.sent, to)
	return nil
}

func newTestDigestService(notes *stubNoteRepo, folders *stubFolderRepo,
	subscribers *stubSubscriberRepo, mailer *stubMailer) DigestService {
	if folders == nil {
		folders = &stubFolderRepo{folders: map[string]*domain.Folder{}}
	}
	site := SiteConfig{
		URL:              "https://notes.example.com",
		HomeArticleID:    "home-id",
		ArticlesFolderID: "articles-id",
	}
	l := zap.NewNop()
	ns := NewNoteService(notes, folders, &stubResourceRepo{resources: map[string]string{}}, site, l)
	fs := NewFolderService(folders, l)
	ss := NewSubscriberService(subscribers, l)
	return NewDigestService(ns, fs, ss, mailer, site, l)
}

func digestOnly(t *testing.T) DigestService {
	t.Helper()
	return newTestDigestService(&stubNoteRepo{}, nil, &stubSubscriberRepo{}, &stubMailer{})
}

func noteOn(day time.Time, title string) *domain.Note {
	return &domain.Note{NoteID: "id-" + title, Title: title, CreatedTime: timex.Time(day)}
}

func TestDigestService_RenderDigest(t *testing.T) {
	day := time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)

	t.Run("escapes user supplied text", func(t *testing.T) {
		svc := digestOnly(t)
		note := noteOn(day, `<script>alert("x")</script>`)
		note.LinkExcerpt = `excerpt with <b>markup</b> & "quotes"`
		note.Tags = []string{"<evil>"}
		note.Folder = &domain.Folder{FolderID: "f1", Title: "Tools & Tips"}

		html, err := svc.RenderDigest([]*domain.Note{note}, nil, PeriodWeek)
		require.NoError(t, err)

		assert.NotContains(t, html, "<script>alert")
		assert.NotContains(t, html, "<b>markup</b>")
		assert.NotContains(t, html, "<evil>")
		assert.Contains(t, html, "&lt;script&gt;")
		assert.Contains(t, html, "Tools &amp; Tips")
	})

	t.Run("articles section only when articles exist", func(t *testing.T) {
		svc := digestOnly(t)

		html, err := svc.RenderDigest([]*domain.Note{noteOn(day, "A Note")}, nil, PeriodWeek)
		require.NoError(t, err)
		assert.NotContains(t, html, "<h2>Articles</h2>")

		html, err = svc.RenderDigest([]*domain.Note{noteOn(day, "A Note")},
			[]*domain.Note{noteOn(day, "An Article")}, PeriodWeek)
		require.NoError(t, err)
		assert.Contains(t, html, "<h2>Articles</h2>")
	})

	t.Run("empty notes renders the fallback message", func(t *testing.T) {
		svc := digestOnly(t)

		html, err := svc.RenderDigest(nil, nil, PeriodMonth)
		require.NoError(t, err)
		assert.Contains(t, html, "Newsletter - Past Month")
		assert.Contains(t, html, "No notes found for the past month.")
	})

	t.Run("links use slug URL when folder is attached", func(t *testing.T) {
		svc := digestOnly(t)
		withFolder := noteOn(day, "Hello World")
		withFolder.Folder = &domain.Folder{FolderID: "f1", Title: "Guides"}
		withoutFolder := noteOn(day, "Orphan")

		html, err := svc.RenderDigest([]*domain.Note{withFolder, withoutFolder}, nil, PeriodWeek)
		require.NoError(t, err)
		assert.Contains(t, html, `href="https://notes.example.com/guides/hello-world"`)
		assert.Contains(t, html, `href="https://notes.example.com/notes/id-Orphan"`)
	})

	t.Run("body fallback excerpt is truncated", func(t *testing.T) {
		svc := digestOnly(t)
		note := noteOn(day, "Long One")
		note.Body = strings.Repeat("word ", 120)

		html, err := svc.RenderDigest([]*domain.Note{note}, nil, PeriodWeek)
		require.NoError(t, err)
		assert.Contains(t, html, "...")
	})

	t.Run("footer carries the view online link", func(t *testing.T) {
		svc := digestOnly(t)

		html, err := svc.RenderDigest(nil, nil, PeriodWeek)
		require.NoError(t, err)
		assert.Contains(t, html, "https://notes.example.com/newsletter?period=week")
		assert.Contains(t, html, "unsubscribe")
	})
}

func TestDigestService_SendDigests(t *testing.T) {
	day := timex.Time(time.Now().Add(-24 * time.Hour))
	notes := &stubNoteRepo{notes: []*domain.Note{
		{NoteID: "n1", Title: "Fresh Note", ParentID: "f1", CreatedTime: day},
	}}
	folders := &stubFolderRepo{folders: map[string]*domain.Folder{
		"f1": {FolderID: "f1", Title: "Guides"},
	}}

	t.Run("delivers only to matching frequency", func(t *testing.T) {
		subscribers := &stubSubscriberRepo{created: []*domain.Subscriber{
			{Email: "weekly@example.com", Frequency: "weekly"},
			{Email: "legacy@example.com", Frequency: "week"},
			{Email: "monthly@example.com", Frequency: "monthly"},
		}}
		mailer := &stubMailer{}
		svc := newTestDigestService(notes, folders, subscribers, mailer)

		sent, failed, err := svc.SendDigests(context.Background(), PeriodWeek, false)
		require.NoError(t, err)
		assert.Equal(t, 2, sent)
		assert.Equal(t, 0, failed)
		assert.ElementsMatch(t, []string{"weekly@example.com", "legacy@example.com"}, mailer.sent)
	})

	t.Run("per recipient failure is counted, not fatal", func(t *testing.T) {
		subscribers := &stubSubscriberRepo{created: []*domain.Subscriber{
			{Email: "ok@example.com", Frequency: "monthly"},
			{Email: "broken@example.com", Frequency: "monthly"},
		}}
		mailer := &stubMailer{failOn: map[string]bool{"broken@example.com": true}}
		svc := newTestDigestService(notes, folders, subscribers, mailer)

		sent, failed, err := svc.SendDigests(context.Background(), PeriodMonth, false)
		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Equal(t, 1, failed)
		assert.Equal(t, []string{"ok@example.com"}, mailer.sent)
	})

	t.Run("dry run counts without delivering", func(t *testing.T) {
		subscribers := &stubSubscriberRepo{created: []*domain.Subscriber{
			{Email: "weekly@example.com", Frequency: "weekly"},
		}}
		mailer := &stubMailer{}
		svc := newTestDigestService(notes, folders, subscribers, mailer)

		sent, failed, err := svc.SendDigests(context.Background(), PeriodWeek, true)
		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Equal(t, 0, failed)
		assert.Empty(t, mailer.sent)
	})
}
