package app

import (
	"github.com/hellodata/notes-web/pkg/convert"

	"github.com/gin-gonic/gin"
)

// MaxPagesToShow 分页导航最多显示的页码数
const MaxPagesToShow = 7

// PageItem 分页导航中的单个页码
type PageItem struct {
	Number    int
	IsCurrent bool
}

// Pagination 分页元数据，供模板的导航组件使用
// Pagination is the page-window metadata consumed by the navigation UI
type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int
	PageSize    int
	HasNextPage bool
	HasPrevPage bool
	NextPage    int
	PrevPage    int
	Pages       []PageItem
}

// GetPage reads the page query parameter; absent or non-positive means 1
// GetPage 读取 page 查询参数；缺失或非正数视为第 1 页
func GetPage(c *gin.Context) int {
	page := convert.StrTo(c.Query("page")).MustInt()
	if page <= 0 {
		return 1
	}
	return page
}

// Paginate computes page-window metadata. Total pages is at least 1 even
// for zero items. The current page is not clamped into range; callers
// slicing with PageBounds get an empty page for out-of-range values.
// Paginate 计算分页元数据。总页数至少为 1。
// 当前页不做范围钳制；越界时 PageBounds 返回空页而不是错误。
func Paginate(totalItems, page, pageSize int) *Pagination {
	if page <= 0 {
		page = 1
	}
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	p := &Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		PageSize:    pageSize,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
		NextPage:    page + 1,
		PrevPage:    page - 1,
	}

	// 以当前页为中心的页码窗口，两端钳制到 [1, totalPages]
	startPage := page - MaxPagesToShow/2
	if startPage < 1 {
		startPage = 1
	}
	endPage := startPage + MaxPagesToShow - 1
	if endPage > totalPages {
		endPage = totalPages
	}
	if endPage-startPage < MaxPagesToShow-1 {
		startPage = endPage - MaxPagesToShow + 1
		if startPage < 1 {
			startPage = 1
		}
	}
	for i := startPage; i <= endPage; i++ {
		p.Pages = append(p.Pages, PageItem{Number: i, IsCurrent: i == page})
	}

	return p
}

// PageBounds returns the [start, end) slice offsets for the given page.
// Out-of-range pages yield an empty interval.
// PageBounds 返回给定页的 [start, end) 切片偏移；越界页得到空区间。
func PageBounds(totalItems, page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start > totalItems {
		return totalItems, totalItems
	}
	end := start + pageSize
	if end > totalItems {
		end = totalItems
	}
	return start, end
}
