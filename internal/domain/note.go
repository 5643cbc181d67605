// Package domain 定义站点的核心实体与仓储接口
// Package domain defines the site's core entities and repository interfaces.
package domain

import (
	"context"
	"strings"

	"github.com/hellodata/notes-web/pkg/timex"
)

// Note 笔记实体：书签或文章，隶属于一个文件夹
// Note is a content record (bookmark or article) belonging to a folder
type Note struct {
	NoteID      string     `json:"note_id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	CreatedTime timex.Time `json:"created_time"`
	Tags        []string   `json:"tags"`
	ParentID    string     `json:"parent_id"`
	LinkExcerpt string     `json:"link_excerpt"`
	LinkImage   string     `json:"link_image"`

	// Folder 所属文件夹，按需由服务层填充
	Folder *Folder `json:"-"`
}

// Normalize enforces the record invariants after decoding: body is always
// a string and link_image only keeps absolute http(s) URLs.
// Normalize 在解码后保证记录不变式：body 恒为字符串，
// link_image 只保留绝对 http(s) URL。
func (n *Note) Normalize() {
	if n.LinkImage != "" && !strings.HasPrefix(n.LinkImage, "http") {
		n.LinkImage = ""
	}
}

// HasTag reports whether the note carries the tag (exact, case-sensitive)
// HasTag 判断笔记是否带有该标签（区分大小写的精确匹配）
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Folder 文件夹实体：笔记的命名分组，同时也是主导航类目
type Folder struct {
	FolderID string `json:"folder_id"`
	Title    string `json:"title"`
}

// Resource 内嵌资源：按文件名查找，contents 为 base64 内容
type Resource struct {
	Title    string `json:"title"`
	Contents string `json:"contents"`
}

// Subscriber 通讯订阅者
type Subscriber struct {
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Frequency string   `json:"frequency"`
	Topics    []string `json:"topics"`
}

// NoteRepository 笔记数据访问接口
type NoteRepository interface {
	// ListByFolder 按文件夹列出笔记，按创建时间倒序，排除指定笔记
	ListByFolder(ctx context.Context, folderID string, excludeNoteID string) ([]*Note, error)
	// Recent 最近的笔记，排除指定笔记与指定文件夹
	Recent(ctx context.Context, limit int, excludeNoteID, excludeFolderID string) ([]*Note, error)
	// GetByID 按 note_id 获取单条笔记，不存在时返回 nil
	GetByID(ctx context.Context, noteID string) (*Note, error)
	// Search 全文搜索，按创建时间倒序
	Search(ctx context.Context, query string) ([]*Note, error)
	// CreatedSince 某时间点之后创建的笔记，按创建时间倒序
	CreatedSince(ctx context.Context, since timex.Time) ([]*Note, error)
}

// FolderRepository 文件夹数据访问接口
type FolderRepository interface {
	// List 全部文件夹，按标题排序
	List(ctx context.Context) ([]*Folder, error)
	// GetByID 按 folder_id 获取单个文件夹，不存在时返回 nil
	GetByID(ctx context.Context, folderID string) (*Folder, error)
}

// ResourceRepository 内嵌资源访问接口
type ResourceRepository interface {
	// GetByTitle 按文件名查找资源，不存在时返回 nil
	GetByTitle(ctx context.Context, title string) (*Resource, error)
}

// SubscriberRepository 订阅者数据访问接口
type SubscriberRepository interface {
	// Create 新增订阅者；重复邮箱返回 code.ErrorSubscribeDuplicate
	Create(ctx context.Context, subscriber *Subscriber) error
	// List 全部订阅者
	List(ctx context.Context) ([]*Subscriber, error)
}
