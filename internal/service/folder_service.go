package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/hellodata/notes-web/internal/domain"
	"github.com/hellodata/notes-web/pkg/code"
	"github.com/hellodata/notes-web/pkg/errors"
	"github.com/hellodata/notes-web/pkg/util"
)

// FolderService 文件夹读取服务
type FolderService interface {
	// List 全部文件夹，按标题排序
	List(ctx context.Context) ([]*domain.Folder, error)
	// GetByID 按 folder_id 查询，未找到返回 ErrorFolderNotFound
	GetByID(ctx context.Context, folderID string) (*domain.Folder, error)
	// GetBySlug 按标题 slug 查询，未找到返回 ErrorFolderNotFound
	GetBySlug(ctx context.Context, slug string) (*domain.Folder, error)
}

type folderService struct {
	folderRepo domain.FolderRepository
	logger     *zap.Logger
}

// NewFolderService creates a FolderService backed by the given repository.
func NewFolderService(folderRepo domain.FolderRepository, l *zap.Logger) FolderService {
	return &folderService{folderRepo: folderRepo, logger: l}
}

func (s *folderService) List(ctx context.Context) ([]*domain.Folder, error) {
	return s.folderRepo.List(ctx)
}

func (s *folderService) GetByID(ctx context.Context, folderID string) (*domain.Folder, error) {
	folder, err := s.folderRepo.GetByID(ctx, folderID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, errors.NewAppError(code.ErrorFolderNotFound, nil)
	}
	return folder, nil
}

func (s *folderService) GetBySlug(ctx context.Context, slug string) (*domain.Folder, error) {
	folders, err := s.folderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range folders {
		if util.Slugify(f.Title) == slug {
			return f, nil
		}
	}
	return nil, errors.NewAppError(code.ErrorFolderNotFound, nil)
}
