package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hellodata/notes-web/internal/domain"
	"github.com/hellodata/notes-web/pkg/code"
	"github.com/hellodata/notes-web/pkg/errors"
	"github.com/hellodata/notes-web/pkg/logger"
	"github.com/hellodata/notes-web/pkg/timex"
	"github.com/hellodata/notes-web/pkg/util"
)

// NoteService 笔记读取服务，聚合仓储并完成资源内联与文件夹装配
type NoteService interface {
	// HomeArticle 返回首页文章
	HomeArticle(ctx context.Context) (*domain.Note, error)
	// Recent 返回最新的 limit 条笔记，排除首页文章
	Recent(ctx context.Context, limit int) ([]*domain.Note, error)
	// Articles 返回文章文件夹下的全部文章
	Articles(ctx context.Context) ([]*domain.Note, error)
	// ListByFolder 返回某文件夹下的全部笔记，按创建时间倒序
	ListByFolder(ctx context.Context, folder *domain.Folder) ([]*domain.Note, error)
	// GetByID 按 note_id 查询单条笔记，未找到返回 ErrorNoteNotFound
	GetByID(ctx context.Context, noteID string) (*domain.Note, error)
	// GetBySlug 在文件夹内按标题 slug 查询笔记
	GetBySlug(ctx context.Context, folder *domain.Folder, slug string) (*domain.Note, error)
	// Search 全文检索，并为每条结果装配所属文件夹
	Search(ctx context.Context, query string) ([]*domain.Note, error)
	// CreatedSince 返回 since 之后创建的笔记与文章两组集合
	CreatedSince(ctx context.Context, since timex.Time) (notes []*domain.Note, articles []*domain.Note, err error)
}

type noteService struct {
	noteRepo     domain.NoteRepository
	folderRepo   domain.FolderRepository
	resourceRepo domain.ResourceRepository
	site         SiteConfig
	logger       *zap.Logger
}

// NewNoteService creates a NoteService backed by the given repositories.
func NewNoteService(noteRepo domain.NoteRepository, folderRepo domain.FolderRepository,
	resourceRepo domain.ResourceRepository, site SiteConfig, l *zap.Logger) NoteService {
	return &noteService{
		noteRepo:     noteRepo,
		folderRepo:   folderRepo,
		resourceRepo: resourceRepo,
		site:         site,
		logger:       l,
	}
}

func (s *noteService) HomeArticle(ctx context.Context) (*domain.Note, error) {
	return s.GetByID(ctx, s.site.HomeArticleID)
}

func (s *noteService) Recent(ctx context.Context, limit int) ([]*domain.Note, error) {
	notes, err := s.noteRepo.Recent(ctx, limit, s.site.HomeArticleID, s.site.ArticlesFolderID)
	if err != nil {
		return nil, err
	}
	return s.inlineAll(ctx, notes)
}

func (s *noteService) Articles(ctx context.Context) ([]*domain.Note, error) {
	notes, err := s.noteRepo.ListByFolder(ctx, s.site.ArticlesFolderID, s.site.HomeArticleID)
	if err != nil {
		return nil, err
	}
	return s.inlineAll(ctx, notes)
}

func (s *noteService) ListByFolder(ctx context.Context, folder *domain.Folder) ([]*domain.Note, error) {
	notes, err := s.noteRepo.ListByFolder(ctx, folder.FolderID, s.site.HomeArticleID)
	if err != nil {
		return nil, err
	}
	for _, n := range notes {
		n.Folder = folder
	}
	return s.inlineAll(ctx, notes)
}

func (s *noteService) GetByID(ctx context.Context, noteID string) (*domain.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, errors.NewAppError(code.ErrorNoteNotFound, nil)
	}
	if err := s.inlineResources(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) GetBySlug(ctx context.Context, folder *domain.Folder, slug string) (*domain.Note, error) {
	notes, err := s.noteRepo.ListByFolder(ctx, folder.FolderID, "")
	if err != nil {
		return nil, err
	}
	for _, n := range notes {
		if util.Slugify(n.Title) == slug {
			n.Folder = folder
			if err := s.inlineResources(ctx, n); err != nil {
				return nil, err
			}
			return n, nil
		}
	}
	return nil, errors.NewAppError(code.ErrorNoteNotFound, nil)
}

func (s *noteService) Search(ctx context.Context, query string) ([]*domain.Note, error) {
	notes, err := s.noteRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if err := s.attachFolders(ctx, notes); err != nil {
		return nil, err
	}
	return s.inlineAll(ctx, notes)
}

func (s *noteService) CreatedSince(ctx context.Context, since timex.Time) ([]*domain.Note, []*domain.Note, error) {
	all, err := s.noteRepo.CreatedSince(ctx, since)
	if err != nil {
		return nil, nil, err
	}
	var notes, articles []*domain.Note
	for _, n := range all {
		if n.NoteID == s.site.HomeArticleID {
			continue
		}
		if n.ParentID == s.site.ArticlesFolderID {
			articles = append(articles, n)
		} else {
			notes = append(notes, n)
		}
	}
	return notes, articles, nil
}

// attachFolders 为检索结果装配所属文件夹，同一文件夹只查询一次
func (s *noteService) attachFolders(ctx context.Context, notes []*domain.Note) error {
	folders := map[string]*domain.Folder{}
	for _, n := range notes {
		if n.ParentID == "" {
			continue
		}
		folder, ok := folders[n.ParentID]
		if !ok {
			var err error
			folder, err = s.folderRepo.GetByID(ctx, n.ParentID)
			if err != nil {
				return err
			}
			folders[n.ParentID] = folder
		}
		n.Folder = folder
	}
	return nil
}

// inlineAll 并发处理每条笔记的资源内联
func (s *noteService) inlineAll(ctx context.Context, notes []*domain.Note) ([]*domain.Note, error) {
	eg, egCtx := errgroup.WithContext(ctx)
	for _, note := range notes {
		note := note
		eg.Go(func() error {
			return s.inlineResources(egCtx, note)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return notes, nil
}

// inlineResources 将笔记正文中的内嵌图片引用替换为 base64 data URI
// 资源缺失时保留原始片段，查询失败则整条笔记处理失败
func (s *noteService) inlineResources(ctx context.Context, note *domain.Note) error {
	refs := util.ParseResourceRefs(note.Body)
	if len(refs) == 0 {
		return nil
	}

	// 按文件名去重，同名资源只查询一次
	distinct := make(map[string]util.ResourceRef, len(refs))
	for _, ref := range refs {
		if _, ok := distinct[ref.Filename]; !ok {
			distinct[ref.Filename] = ref
		}
	}

	var mu sync.Mutex
	resolved := make(map[string]*domain.Resource, len(distinct))

	eg, egCtx := errgroup.WithContext(ctx)
	for filename := range distinct {
		filename := filename
		eg.Go(func() error {
			res, err := s.resourceRepo.GetByTitle(egCtx, filename)
			if err != nil {
				return err
			}
			mu.Lock()
			resolved[filename] = res
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	// 逐个引用替换：同名引用即使资源 ID 不同也共享同一次查询结果
	for _, ref := range refs {
		res := resolved[ref.Filename]
		if res == nil {
			s.logger.Debug("resource not found, reference kept",
				zap.String(logger.FieldNote, note.NoteID), zap.String("filename", ref.Filename))
			continue
		}
		tag := fmt.Sprintf(`<img src="data:image/png;base64,%s" />`, res.Contents)
		note.Body = strings.ReplaceAll(note.Body, ref.Raw, tag)
	}
	return nil
}
