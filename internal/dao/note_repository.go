package dao

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/hellodata/notes-web/internal/domain"
	"github.com/hellodata/notes-web/pkg/timex"
)

// NewNoteRepository 创建笔记仓储
func NewNoteRepository(d *Dao) domain.NoteRepository {
	return &noteRepository{dao: d}
}

type noteRepository struct {
	dao *Dao
}

// fetch 执行查询并应用记录不变式
func (r *noteRepository) fetch(ctx context.Context, query string) ([]*domain.Note, error) {
	var notes []*domain.Note
	if err := r.dao.client.Get(ctx, query, &notes); err != nil {
		return nil, err
	}
	for _, n := range notes {
		n.Normalize()
	}
	return notes, nil
}

func (r *noteRepository) ListByFolder(ctx context.Context, folderID string, excludeNoteID string) ([]*domain.Note, error) {
	query := fmt.Sprintf("/notes?select=*&parent_id=eq.%s&order=created_time.desc", url.QueryEscape(folderID))
	if excludeNoteID != "" {
		query += "&note_id=neq." + url.QueryEscape(excludeNoteID)
	}
	return r.fetch(ctx, query)
}

func (r *noteRepository) Recent(ctx context.Context, limit int, excludeNoteID, excludeFolderID string) ([]*domain.Note, error) {
	query := fmt.Sprintf("/notes?select=*&order=created_time.desc&limit=%d", limit)
	if excludeNoteID != "" {
		query += "&note_id=neq." + url.QueryEscape(excludeNoteID)
	}
	if excludeFolderID != "" {
		query += "&parent_id=neq." + url.QueryEscape(excludeFolderID)
	}
	return r.fetch(ctx, query)
}

func (r *noteRepository) GetByID(ctx context.Context, noteID string) (*domain.Note, error) {
	notes, err := r.fetch(ctx, "/notes?select=*&note_id=eq."+url.QueryEscape(noteID))
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, nil
	}
	return notes[0], nil
}

func (r *noteRepository) Search(ctx context.Context, query string) ([]*domain.Note, error) {
	q := "/notes?select=*&link_excerpt_tsv=plfts(english)." + url.QueryEscape(query) + "&order=created_time.desc"
	return r.fetch(ctx, q)
}

func (r *noteRepository) CreatedSince(ctx context.Context, since timex.Time) ([]*domain.Note, error) {
	q := "/notes?select=*&created_time=gte." + url.QueryEscape(since.Format(time.RFC3339)) + "&order=created_time.desc"
	return r.fetch(ctx, q)
}
