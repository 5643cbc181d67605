package service

import (
	"bytes"
	"context"
	"html/template"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hellodata/notes-web/internal/domain"
	"github.com/hellodata/notes-web/pkg/logger"
	"github.com/hellodata/notes-web/pkg/timex"
	"github.com/hellodata/notes-web/pkg/util"
)

// Period 摘要周期
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Text 周期的展示名
func (p Period) Text() string {
	if p == PeriodMonth {
		return "Past Month"
	}
	return "Past Week"
}

// Frequency 周期对应的订阅频率
func (p Period) Frequency() string {
	if p == PeriodMonth {
		return "monthly"
	}
	return "weekly"
}

// Subject 周期对应的邮件主题
func (p Period) Subject() string {
	if p == PeriodMonth {
		return "Monthly Newsletter - Notes & Articles"
	}
	return "Weekly Newsletter - Notes & Articles"
}

// Since 周期的起始时间
func (p Period) Since(now time.Time) time.Time {
	if p == PeriodMonth {
		return now.AddDate(0, -1, 0)
	}
	return now.AddDate(0, 0, -7)
}

// digestExcerptLength 正文回退摘要的最大字符数
const digestExcerptLength = 300

// Mailer 摘要投递出口，由 internal/mailer 实现
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// DigestService 通讯摘要的渲染与投递
type DigestService interface {
	// RenderDigest 将两组笔记渲染为独立完整的 HTML 邮件文档，无任何 I/O
	RenderDigest(notes, articleNotes []*domain.Note, period Period) (string, error)
	// SendDigests 取周期内新建的笔记并投递给对应频率的订阅者
	// 单个收件人失败只记录，不中断整体发送
	SendDigests(ctx context.Context, period Period, dryRun bool) (sent, failed int, err error)
}

type digestService struct {
	noteService       NoteService
	folderService     FolderService
	subscriberService SubscriberService
	mailer            Mailer
	site              SiteConfig
	logger            *zap.Logger
}

// NewDigestService assembles the digest pipeline from the read services and the mail transport.
func NewDigestService(noteService NoteService, folderService FolderService,
	subscriberService SubscriberService, mailer Mailer, site SiteConfig, l *zap.Logger) DigestService {
	return &digestService{
		noteService:       noteService,
		folderService:     folderService,
		subscriberService: subscriberService,
		mailer:            mailer,
		site:              site,
		logger:            l,
	}
}

type digestNote struct {
	Title       string
	URL         string
	Excerpt     string
	Date        string
	FolderTitle string
	Tags        []string
}

type digestData struct {
	PeriodText  string
	PeriodLower string
	PeriodParam string
	SiteURL     string
	Articles    []digestNote
	Notes       []digestNote
	NoteCount   int
}

var digestTmpl = template.Must(template.New("digest").Parse(digestTemplate))

func (s *digestService) RenderDigest(notes, articleNotes []*domain.Note, period Period) (string, error) {
	data := digestData{
		PeriodText:  period.Text(),
		PeriodLower: strings.ToLower(period.Text()),
		PeriodParam: string(period),
		SiteURL:     s.site.URL,
		Articles:    s.digestNotes(articleNotes),
		Notes:       s.digestNotes(notes),
	}
	data.NoteCount = len(data.Notes)

	var buf bytes.Buffer
	if err := digestTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *digestService) digestNotes(notes []*domain.Note) []digestNote {
	out := make([]digestNote, 0, len(notes))
	for _, n := range notes {
		item := digestNote{
			Title:   n.Title,
			URL:     s.noteURL(n),
			Excerpt: n.LinkExcerpt,
			Date:    n.CreatedTime.Display(),
			Tags:    n.Tags,
		}
		if item.Excerpt == "" && n.Body != "" {
			item.Excerpt = util.MetaDescription(n.Body, digestExcerptLength+3)
		}
		if n.Folder != nil {
			item.FolderTitle = n.Folder.Title
		}
		out = append(out, item)
	}
	return out
}

// noteURL 优先使用规范 slug URL，没有文件夹时回退到 id URL
func (s *digestService) noteURL(n *domain.Note) string {
	if n.Folder != nil {
		return s.site.URL + "/" + util.Slugify(n.Folder.Title) + "/" + util.Slugify(n.Title)
	}
	return s.site.URL + "/notes/" + n.NoteID
}

func (s *digestService) SendDigests(ctx context.Context, period Period, dryRun bool) (int, int, error) {
	since := timex.Time(period.Since(time.Now()))
	notes, articles, err := s.noteService.CreatedSince(ctx, since)
	if err != nil {
		return 0, 0, err
	}
	if err := s.attachFolders(ctx, notes, articles); err != nil {
		return 0, 0, err
	}

	html, err := s.RenderDigest(notes, articles, period)
	if err != nil {
		return 0, 0, err
	}

	subscribers, err := s.subscriberService.List(ctx)
	if err != nil {
		return 0, 0, err
	}

	var sent, failed int
	for _, sub := range subscribers {
		if !frequencyMatches(sub.Frequency, period) {
			continue
		}
		if dryRun {
			s.logger.Info("dry run, skipping delivery",
				zap.String(logger.FieldEmail, sub.Email), zap.String(logger.FieldPeriod, string(period)))
			sent++
			continue
		}
		if err := s.mailer.Send(sub.Email, period.Subject(), html); err != nil {
			failed++
			s.logger.Warn("digest delivery failed",
				zap.String(logger.FieldEmail, sub.Email), zap.String(logger.FieldPeriod, string(period)), zap.Error(err))
			continue
		}
		sent++
	}

	s.logger.Info("digest send complete",
		zap.String(logger.FieldPeriod, string(period)),
		zap.Int("sent", sent), zap.Int("failed", failed),
		zap.Int("notes", len(notes)), zap.Int("articles", len(articles)))
	return sent, failed, nil
}

func (s *digestService) attachFolders(ctx context.Context, groups ...[]*domain.Note) error {
	folders, err := s.folderService.List(ctx)
	if err != nil {
		return err
	}
	byID := make(map[string]*domain.Folder, len(folders))
	for _, f := range folders {
		byID[f.FolderID] = f
	}
	for _, notes := range groups {
		for _, n := range notes {
			n.Folder = byID[n.ParentID]
		}
	}
	return nil
}

// frequencyMatches 兼容历史记录里的 week/month 简写
func frequencyMatches(frequency string, period Period) bool {
	switch period {
	case PeriodMonth:
		return frequency == "monthly" || frequency == "month"
	default:
		return frequency == "weekly" || frequency == "week"
	}
}
