package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/hellodata/notes-web/internal/domain"
	"github.com/hellodata/notes-web/internal/dto"
	"github.com/hellodata/notes-web/pkg/logger"
)

// MaxTopics 一次订阅最多保留的兴趣标签数
const MaxTopics = 10

// SubscriberService 通讯订阅服务
type SubscriberService interface {
	// Subscribe 规范化表单并写入订阅者，重复邮箱返回 ErrorSubscribeDuplicate
	Subscribe(ctx context.Context, req *dto.SubscribeRequest) error
	// List 全部订阅者
	List(ctx context.Context) ([]*domain.Subscriber, error)
}

type subscriberService struct {
	subscriberRepo domain.SubscriberRepository
	logger         *zap.Logger
}

// NewSubscriberService creates a SubscriberService backed by the given repository.
func NewSubscriberService(subscriberRepo domain.SubscriberRepository, l *zap.Logger) SubscriberService {
	return &subscriberService{subscriberRepo: subscriberRepo, logger: l}
}

func (s *subscriberService) Subscribe(ctx context.Context, req *dto.SubscribeRequest) error {
	subscriber := &domain.Subscriber{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Frequency: req.Frequency,
		Topics:    SplitTopics(req.Topics),
	}
	if err := s.subscriberRepo.Create(ctx, subscriber); err != nil {
		return err
	}
	s.logger.Info("subscriber created",
		zap.String(logger.FieldEmail, subscriber.Email), zap.String("frequency", subscriber.Frequency))
	return nil
}

func (s *subscriberService) List(ctx context.Context) ([]*domain.Subscriber, error) {
	return s.subscriberRepo.List(ctx)
}

// SplitTopics 将逗号分隔的标签拆分为切片：逐项去空白、丢弃空项，
// 最多保留 MaxTopics 个。空输入返回空切片。
func SplitTopics(raw string) []string {
	topics := []string{}
	if strings.TrimSpace(raw) == "" {
		return topics
	}
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		topics = append(topics, t)
		if len(topics) == MaxTopics {
			break
		}
	}
	return topics
}
