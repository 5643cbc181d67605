package dao

import (
	"context"
	"net/url"

	"github.com/hellodata/notes-web/internal/domain"
)

// NewFolderRepository 创建文件夹仓储
func NewFolderRepository(d *Dao) domain.FolderRepository {
	return &folderRepository{dao: d}
}

type folderRepository struct {
	dao *Dao
}

func (r *folderRepository) List(ctx context.Context) ([]*domain.Folder, error) {
	var folders []*domain.Folder
	if err := r.dao.client.Get(ctx, "/folders?order=title", &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *folderRepository) GetByID(ctx context.Context, folderID string) (*domain.Folder, error) {
	var folders []*domain.Folder
	if err := r.dao.client.Get(ctx, "/folders?folder_id=eq."+url.QueryEscape(folderID), &folders); err != nil {
		return nil, err
	}
	if len(folders) == 0 {
		return nil, nil
	}
	return folders[0], nil
}
