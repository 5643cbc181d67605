package dao

import (
	"context"
	"net/http"

	"github.com/hellodata/notes-web/internal/domain"
	"github.com/hellodata/notes-web/internal/postgrest"
	"github.com/hellodata/notes-web/pkg/code"

	pkgerrors "github.com/pkg/errors"
)

// NewSubscriberRepository 创建订阅者仓储
func NewSubscriberRepository(d *Dao) domain.SubscriberRepository {
	return &subscriberRepository{dao: d}
}

type subscriberRepository struct {
	dao *Dao
}

func (r *subscriberRepository) Create(ctx context.Context, subscriber *domain.Subscriber) error {
	err := r.dao.client.Post(ctx, "/subscribers", subscriber)
	if err == nil {
		return nil
	}

	// 409 是唯一约束冲突（邮箱重复），400 是载荷无效，需要区分上报
	var statusErr *postgrest.StatusError
	if pkgerrors.As(err, &statusErr) {
		switch statusErr.Status {
		case http.StatusConflict:
			return code.ErrorSubscribeDuplicate
		case http.StatusBadRequest:
			return code.ErrorSubscribeInvalid
		}
	}
	return err
}

func (r *subscriberRepository) List(ctx context.Context) ([]*domain.Subscriber, error) {
	var subscribers []*domain.Subscriber
	if err := r.dao.client.Get(ctx, "/subscribers", &subscribers); err != nil {
		return nil, err
	}
	return subscribers, nil
}
