package dao

import (
	"context"
	"net/url"

	"github.com/hellodata/notes-web/internal/domain"
)

// NewResourceRepository 创建资源仓储
func NewResourceRepository(d *Dao) domain.ResourceRepository {
	return &resourceRepository{dao: d}
}

type resourceRepository struct {
	dao *Dao
}

func (r *resourceRepository) GetByTitle(ctx context.Context, title string) (*domain.Resource, error) {
	var resources []*domain.Resource
	if err := r.dao.client.Get(ctx, "/resources?title=eq."+url.QueryEscape(title), &resources); err != nil {
		return nil, err
	}
	// 无匹配资源不是错误：调用方保持原文不变
	if len(resources) == 0 || resources[0].Contents == "" {
		return nil, nil
	}
	return resources[0], nil
}
