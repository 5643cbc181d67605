package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hellodata/notes-web/internal/domain"
	"github.com/hellodata/notes-web/pkg/code"
	"github.com/hellodata/notes-web/pkg/errors"
	"github.com/hellodata/notes-web/pkg/timex"
)

type stubNoteRepo struct {
	notes []*domain.Note
	err   error
}

func (r *stubNoteRepo) ListByFolder(_ context.Context, folderID, excludeNoteID string) ([]*domain.Note, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.Note
	for _, n := range r.notes {
		if n.ParentID != folderID || n.NoteID == excludeNoteID {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (r *stubNoteRepo) Recent(_ context.Context, limit int, excludeNoteID, excludeFolderID string) ([]*domain.Note, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.Note
	for _, n := range r.notes {
		if n.NoteID == excludeNoteID || n.ParentID == excludeFolderID {
			continue
		}
		out = append(out, n)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *stubNoteRepo) GetByID(_ context.Context, noteID string) (*domain.Note, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, n := range r.notes {
		if n.NoteID == noteID {
			return n, nil
		}
	}
	return nil, nil
}

func (r *stubNoteRepo) Search(_ context.Context, _ string) ([]*domain.Note, error) {
	return r.notes, r.err
}

func (r *stubNoteRepo) CreatedSince(_ context.Context, _ timex.Time) ([]*domain.Note, error) {
	return r.notes, r.err
}

type stubFolderRepo struct {
	folders map[string]*domain.Folder
	calls   int
}

func (r *stubFolderRepo) List(_ context.Context) ([]*domain.Folder, error) {
	var out []*domain.Folder
	for _, f := range r.folders {
		out = append(out, f)
	}
	return out, nil
}

func (r *stubFolderRepo) GetByID(_ context.Context, folderID string) (*domain.Folder, error) {
	r.calls++
	return r.folders[folderID], nil
}

type stubResourceRepo struct {
	mu        sync.Mutex
	resources map[string]string
	err       error
	lookups   []string
}

func (r *stubResourceRepo) GetByTitle(_ context.Context, title string) (*domain.Resource, error) {
	r.mu.Lock()
	r.lookups = append(r.lookups, title)
	r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	contents, ok := r.resources[title]
	if !ok {
		return nil, nil
	}
	return &domain.Resource{Title: title, Contents: contents}, nil
}

func newTestNoteService(notes *stubNoteRepo, folders *stubFolderRepo, resources *stubResourceRepo) NoteService {
	if folders == nil {
		folders = &stubFolderRepo{folders: map[string]*domain.Folder{}}
	}
	if resources == nil {
		resources = &stubResourceRepo{resources: map[string]string{}}
	}
	site := SiteConfig{
		HomeArticleID:    "home-id",
		ArticlesFolderID: "articles-id",
	}
	return NewNoteService(notes, folders, resources, site, zap.NewNop())
}

func TestNoteService_InlineResources(t *testing.T) {
	t.Run("two distinct references trigger one lookup each", func(t *testing.T) {
		body := "before ![one.png](:/aaaa1111) middle ![two.jpg](:/bbbb2222) after"
		notes := &stubNoteRepo{notes: []*domain.Note{{NoteID: "n1", Body: body}}}
		resources := &stubResourceRepo{resources: map[string]string{
			"one.png": "AAAA",
			"two.jpg": "BBBB",
		}}
		svc := newTestNoteService(notes, nil, resources)

		note, err := svc.GetByID(context.Background(), "n1")
		require.NoError(t, err)

		assert.Len(t, resources.lookups, 2)
		assert.ElementsMatch(t, []string{"one.png", "two.jpg"}, resources.lookups)
		assert.Equal(t, `before <img src="data:image/png;base64,AAAA" /> middle <img src="data:image/png;base64,BBBB" /> after`, note.Body)
	})

	t.Run("same filename under different resource ids replaces every span", func(t *testing.T) {
		body := "![pic.png](:/aaaa1111) and ![pic.png](:/bbbb2222)"
		notes := &stubNoteRepo{notes: []*domain.Note{{NoteID: "n1", Body: body}}}
		resources := &stubResourceRepo{resources: map[string]string{"pic.png": "DDDD"}}
		svc := newTestNoteService(notes, nil, resources)

		note, err := svc.GetByID(context.Background(), "n1")
		require.NoError(t, err)

		assert.Len(t, resources.lookups, 1)
		assert.Equal(t, `<img src="data:image/png;base64,DDDD" /> and <img src="data:image/png;base64,DDDD" />`, note.Body)
	})

	t.Run("repeated filename is looked up once and replaced everywhere", func(t *testing.T) {
		body := "![pic.png](:/aaaa1111) and again ![pic.png](:/aaaa1111)"
		notes := &stubNoteRepo{notes: []*domain.Note{{NoteID: "n1", Body: body}}}
		resources := &stubResourceRepo{resources: map[string]string{"pic.png": "CCCC"}}
		svc := newTestNoteService(notes, nil, resources)

		note, err := svc.GetByID(context.Background(), "n1")
		require.NoError(t, err)

		assert.Len(t, resources.lookups, 1)
		assert.NotContains(t, note.Body, ":/aaaa1111")
		assert.Equal(t, 2, countOccurrences(note.Body, `data:image/png;base64,CCCC`))
	})

	t.Run("missing resource keeps the reference untouched", func(t *testing.T) {
		body := "look ![gone.png](:/deadbee1)"
		notes := &stubNoteRepo{notes: []*domain.Note{{NoteID: "n1", Body: body}}}
		resources := &stubResourceRepo{resources: map[string]string{}}
		svc := newTestNoteService(notes, nil, resources)

		note, err := svc.GetByID(context.Background(), "n1")
		require.NoError(t, err)
		assert.Len(t, resources.lookups, 1)
		assert.Equal(t, body, note.Body)
	})

	t.Run("lookup failure fails the whole operation", func(t *testing.T) {
		body := "![pic.png](:/aaaa1111)"
		notes := &stubNoteRepo{notes: []*domain.Note{{NoteID: "n1", Body: body}}}
		resources := &stubResourceRepo{err: errors.NewAppError(code.ErrorUpstream, nil)}
		svc := newTestNoteService(notes, nil, resources)

		_, err := svc.GetByID(context.Background(), "n1")
		require.Error(t, err)
		assert.Equal(t, code.ErrorUpstream, errors.CodeOf(err))
	})

	t.Run("body without references skips lookups", func(t *testing.T) {
		notes := &stubNoteRepo{notes: []*domain.Note{{NoteID: "n1", Body: "plain text"}}}
		resources := &stubResourceRepo{resources: map[string]string{}}
		svc := newTestNoteService(notes, nil, resources)

		_, err := svc.GetByID(context.Background(), "n1")
		require.NoError(t, err)
		assert.Empty(t, resources.lookups)
	})
}

func TestNoteService_GetByID_NotFound(t *testing.T) {
	svc := newTestNoteService(&stubNoteRepo{}, nil, nil)

	_, err := svc.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, code.ErrorNoteNotFound, errors.CodeOf(err))
}

func TestNoteService_GetBySlug(t *testing.T) {
	folder := &domain.Folder{FolderID: "f1", Title: "Guides"}
	notes := &stubNoteRepo{notes: []*domain.Note{
		{NoteID: "n1", Title: "Hello, World!", ParentID: "f1"},
		{NoteID: "n2", Title: "Another Note", ParentID: "f1"},
	}}
	svc := newTestNoteService(notes, nil, nil)

	note, err := svc.GetBySlug(context.Background(), folder, "hello-world")
	require.NoError(t, err)
	assert.Equal(t, "n1", note.NoteID)
	assert.Equal(t, folder, note.Folder)

	_, err = svc.GetBySlug(context.Background(), folder, "no-such-slug")
	require.Error(t, err)
	assert.Equal(t, code.ErrorNoteNotFound, errors.CodeOf(err))
}

func TestNoteService_SearchAttachesFolders(t *testing.T) {
	notes := &stubNoteRepo{notes: []*domain.Note{
		{NoteID: "n1", Title: "One", ParentID: "f1"},
		{NoteID: "n2", Title: "Two", ParentID: "f1"},
		{NoteID: "n3", Title: "Three", ParentID: "f2"},
	}}
	folders := &stubFolderRepo{folders: map[string]*domain.Folder{
		"f1": {FolderID: "f1", Title: "Guides"},
		"f2": {FolderID: "f2", Title: "Links"},
	}}
	svc := newTestNoteService(notes, folders, nil)

	results, err := svc.Search(context.Background(), "anything")
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "Guides", results[0].Folder.Title)
	assert.Equal(t, "Guides", results[1].Folder.Title)
	assert.Equal(t, "Links", results[2].Folder.Title)
	// 同一文件夹只查询一次
	assert.Equal(t, 2, folders.calls)
}

func TestNoteService_CreatedSinceSplitsArticles(t *testing.T) {
	notes := &stubNoteRepo{notes: []*domain.Note{
		{NoteID: "home-id", ParentID: "articles-id"},
		{NoteID: "a1", ParentID: "articles-id"},
		{NoteID: "n1", ParentID: "f1"},
		{NoteID: "n2", ParentID: "f2"},
	}}
	svc := newTestNoteService(notes, nil, nil)

	plain, articles, err := svc.CreatedSince(context.Background(), timex.Time{})
	require.NoError(t, err)

	require.Len(t, articles, 1)
	assert.Equal(t, "a1", articles[0].NoteID)
	require.Len(t, plain, 2)
	assert.Equal(t, "n1", plain[0].NoteID)
}

func countOccurrences(s, sub string) int {
	count := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			count++
		}
	}
	return count
}
