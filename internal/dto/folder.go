package dto

import (
	"github.com/hellodata/notes-web/internal/domain"
	"github.com/hellodata/notes-web/pkg/util"
)

// FolderView 文件夹视图模型，用于侧边栏导航与面包屑
type FolderView struct {
	FolderID string
	Title    string
	Slug     string
	URL      string
}

// NewFolderView converts a folder into its view model.
func NewFolderView(f *domain.Folder) *FolderView {
	slug := util.Slugify(f.Title)
	return &FolderView{
		FolderID: f.FolderID,
		Title:    f.Title,
		Slug:     slug,
		URL:      "/" + slug,
	}
}

// NewFolderViews converts a slice of folders, preserving order.
func NewFolderViews(folders []*domain.Folder) []*FolderView {
	views := make([]*FolderView, 0, len(folders))
	for _, f := range folders {
		views = append(views, NewFolderView(f))
	}
	return views
}
