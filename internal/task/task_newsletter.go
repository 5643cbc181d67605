package task

import (
	"context"
	"sync"
	"time"

	"github.com/hellodata/notes-web/internal/app"
	"github.com/hellodata/notes-web/internal/service"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// NewsletterSchedule 周报发送时间, 每周一早上 8 点
const NewsletterSchedule = "0 8 * * MON"

// NewsletterTask 周期性发送邮件摘要
// 每周一发送周报; 当月第一个周一同时发送月报
type NewsletterTask struct {
	app      *app.App
	schedule cron.Schedule

	mu   sync.Mutex
	next time.Time
}

func init() {
	RegisterWithApp(func(appContainer *app.App) (Task, error) {
		if !appContainer.Config().Mail.Enabled {
			appContainer.Logger().Info("newsletter task is disabled (mail not configured)")
			return nil, nil
		}
		return NewNewsletterTask(appContainer)
	})
}

// NewNewsletterTask 创建邮件摘要任务
func NewNewsletterTask(appContainer *app.App) (*NewsletterTask, error) {
	schedule, err := cron.ParseStandard(NewsletterSchedule)
	if err != nil {
		return nil, err
	}
	return &NewsletterTask{
		app:      appContainer,
		schedule: schedule,
		next:     schedule.Next(time.Now()),
	}, nil
}

func (t *NewsletterTask) Name() string {
	return "newsletter"
}

func (t *NewsletterTask) Run(ctx context.Context) error {
	now := time.Now()

	t.mu.Lock()
	due := !now.Before(t.next)
	if due {
		t.next = t.schedule.Next(now)
	}
	t.mu.Unlock()

	if !due {
		return nil
	}

	release := t.app.TrackOperation()
	defer release()

	if err := t.send(ctx, service.PeriodWeek); err != nil {
		return err
	}

	// 当月第一个周一追加月报
	if now.Day() <= 7 {
		return t.send(ctx, service.PeriodMonth)
	}
	return nil
}

func (t *NewsletterTask) send(ctx context.Context, period service.Period) error {
	sent, failed, err := t.app.DigestService.SendDigests(ctx, period, false)
	if err != nil {
		return err
	}
	t.app.Logger().Info("newsletter task finished",
		zap.String("period", string(period)),
		zap.Int("sent", sent),
		zap.Int("failed", failed))
	return nil
}

func (t *NewsletterTask) LoopInterval() time.Duration {
	return time.Hour
}

func (t *NewsletterTask) IsStartupRun() bool {
	return false
}
