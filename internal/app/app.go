// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hellodata/notes-web/internal/dao"
	"github.com/hellodata/notes-web/internal/domain"
	"github.com/hellodata/notes-web/internal/mailer"
	"github.com/hellodata/notes-web/internal/postgrest"
	"github.com/hellodata/notes-web/internal/service"
)

// CheckVersionInfo 版本检查结果
type CheckVersionInfo struct {
	VersionIsNew   bool   `json:"versionIsNew"`
	VersionNewName string `json:"versionNewName"`
	VersionNewLink string `json:"versionNewLink"`
}

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	Client *postgrest.Client
	Dao    *dao.Dao

	// StartTime 进程启动时间
	StartTime time.Time

	// Repository 层
	NoteRepo       domain.NoteRepository
	FolderRepo     domain.FolderRepository
	ResourceRepo   domain.ResourceRepository
	SubscriberRepo domain.SubscriberRepository

	// Service 层
	NoteService       service.NoteService
	FolderService     service.FolderService
	SubscriberService service.SubscriberService
	DigestService     service.DigestService
	FeedService       service.FeedService

	// 邮件投递，Mail.Enabled 关闭时为 nil
	Mailer *mailer.Mailer

	// 关闭控制
	shutdownCh chan struct{}
	wg         sync.WaitGroup

	// 版本检查信息
	checkVersionMu sync.RWMutex
	checkVersion   CheckVersionInfo
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	a := &App{
		config:     cfg,
		logger:     logger,
		StartTime:  time.Now(),
		shutdownCh: make(chan struct{}),
	}

	// 初始化 PostgREST 客户端
	a.Client = postgrest.NewClient(postgrest.Config{
		BaseURL:   cfg.PostgREST.Host,
		AuthToken: cfg.PostgREST.Token,
		Timeout:   cfg.PostgREST.Timeout,
	}, logger)

	// 初始化 DAO（使用依赖注入）
	a.Dao = dao.NewDao(a.Client, logger)

	// 初始化 Repository 层
	a.NoteRepo = dao.NewNoteRepository(a.Dao)
	a.FolderRepo = dao.NewFolderRepository(a.Dao)
	a.ResourceRepo = dao.NewResourceRepository(a.Dao)
	a.SubscriberRepo = dao.NewSubscriberRepository(a.Dao)

	// 创建 SiteConfig（从 AppConfig 提取 Service 层需要的配置）
	siteConfig := service.SiteConfig{
		URL:              strings.TrimRight(cfg.Site.URL, "/"),
		Title:            cfg.Site.Title,
		Description:      cfg.Site.Description,
		HomeArticleID:    cfg.Site.HomeArticleID,
		ArticlesFolderID: cfg.Site.ArticlesFolderID,
		NotesPerPage:     cfg.App.NotesPerPage,
		SummaryLength:    cfg.App.SummaryLength,
	}

	// 初始化 Service 层（依赖注入）
	a.NoteService = service.NewNoteService(a.NoteRepo, a.FolderRepo, a.ResourceRepo, siteConfig, logger)
	a.FolderService = service.NewFolderService(a.FolderRepo, logger)
	a.SubscriberService = service.NewSubscriberService(a.SubscriberRepo, logger)
	a.FeedService = service.NewFeedService(a.NoteService, a.FolderService, siteConfig, logger)

	var digestMailer service.Mailer
	if cfg.Mail.Enabled {
		a.Mailer = mailer.NewMailer(&mailer.Config{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
		}, logger)
		digestMailer = a.Mailer
	} else {
		digestMailer = discardMailer{logger: logger}
	}
	a.DigestService = service.NewDigestService(
		a.NoteService, a.FolderService, a.SubscriberService, digestMailer, siteConfig, logger)

	logger.Info("App container initialized successfully",
		zap.String("postgrest", cfg.PostgREST.Host),
		zap.Bool("mailEnabled", cfg.Mail.Enabled))

	return a, nil
}

// discardMailer 邮件未启用时的空投递器
type discardMailer struct {
	logger *zap.Logger
}

func (m discardMailer) Send(to, subject, _ string) error {
	m.logger.Warn("mail disabled, digest not delivered",
		zap.String("to", to), zap.String("subject", subject))
	return nil
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Version 获取版本信息
func (a *App) Version() string {
	return Version
}

// CheckVersion 获取版本检查信息
func (a *App) CheckVersion() CheckVersionInfo {
	a.checkVersionMu.RLock()
	defer a.checkVersionMu.RUnlock()

	cv := a.checkVersion

	// 如果没有更新，把版本名称设置为空
	if !cv.VersionIsNew {
		cv.VersionNewName = ""
	}
	cv.VersionNewName = strings.TrimPrefix(cv.VersionNewName, "v")
	return cv
}

// SetCheckVersionInfo 设置版本检查信息
func (a *App) SetCheckVersionInfo(info CheckVersionInfo) {
	a.checkVersionMu.Lock()
	defer a.checkVersionMu.Unlock()
	a.checkVersion = info
}

// IsProductionMode 是否为生产模式
// 根据日志配置中的 Production 字段判断
func (a *App) IsProductionMode() bool {
	return a.config.Log.Production
}

// DefaultShutdownTimeout 默认关闭超时时间
const DefaultShutdownTimeout = 30 * time.Second

// Shutdown 优雅关闭应用容器，等待后台操作完成
// ctx 用于控制关闭超时，如果为 nil 则使用默认 30 秒超时
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("App container shutting down...")

	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()
	}

	// 标记关闭
	select {
	case <-a.shutdownCh:
		// 已经关闭
		return nil
	default:
		close(a.shutdownCh)
	}

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		a.logger.Info("All background operations completed")
	case <-ctx.Done():
		a.logger.Warn("Shutdown timeout waiting for background operations")
		return fmt.Errorf("background operations timeout: %w", ctx.Err())
	}

	a.logger.Info("App container shutdown completed successfully")
	return nil
}

// IsShuttingDown 检查应用是否正在关闭
func (a *App) IsShuttingDown() bool {
	select {
	case <-a.shutdownCh:
		return true
	default:
		return false
	}
}

// ShutdownCh 返回关闭信号通道（用于监听关闭事件）
func (a *App) ShutdownCh() <-chan struct{} {
	return a.shutdownCh
}

// TrackOperation 跟踪后台操作（用于优雅关闭时等待）
// 返回一个函数，在操作完成时调用
func (a *App) TrackOperation() func() {
	a.wg.Add(1)
	return func() {
		a.wg.Done()
	}
}
