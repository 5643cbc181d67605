package app

import "testing"

func TestPaginate(t *testing.T) {
	tests := []struct {
		name         string
		totalItems   int
		page         int
		pageSize     int
		wantTotal    int
		wantHasNext  bool
		wantHasPrev  bool
		wantPageNums []int
	}{
		{
			name:       "middle page of three",
			totalItems: 45, page: 2, pageSize: 20,
			wantTotal: 3, wantHasNext: true, wantHasPrev: true,
			wantPageNums: []int{1, 2, 3},
		},
		{
			name:       "empty collection still has one page",
			totalItems: 0, page: 1, pageSize: 20,
			wantTotal: 1, wantHasNext: false, wantHasPrev: false,
			wantPageNums: []int{1},
		},
		{
			name:       "window clamps at start",
			totalItems: 200, page: 1, pageSize: 20,
			wantTotal: 10, wantHasNext: true, wantHasPrev: false,
			wantPageNums: []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:       "window centered mid-range",
			totalItems: 200, page: 5, pageSize: 20,
			wantTotal: 10, wantHasNext: true, wantHasPrev: true,
			wantPageNums: []int{2, 3, 4, 5, 6, 7, 8},
		},
		{
			name:       "window clamps at end",
			totalItems: 200, page: 10, pageSize: 20,
			wantTotal: 10, wantHasNext: false, wantHasPrev: true,
			wantPageNums: []int{4, 5, 6, 7, 8, 9, 10},
		},
		{
			name:       "non-positive page treated as first",
			totalItems: 45, page: 0, pageSize: 20,
			wantTotal: 3, wantHasNext: true, wantHasPrev: false,
			wantPageNums: []int{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(tt.totalItems, tt.page, tt.pageSize)
			if p.TotalPages != tt.wantTotal {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantTotal)
			}
			if p.HasNextPage != tt.wantHasNext {
				t.Errorf("HasNextPage = %v, want %v", p.HasNextPage, tt.wantHasNext)
			}
			if p.HasPrevPage != tt.wantHasPrev {
				t.Errorf("HasPrevPage = %v, want %v", p.HasPrevPage, tt.wantHasPrev)
			}
			var nums []int
			current := 0
			for _, item := range p.Pages {
				nums = append(nums, item.Number)
				if item.IsCurrent {
					current = item.Number
				}
			}
			if len(nums) != len(tt.wantPageNums) {
				t.Fatalf("page window = %v, want %v", nums, tt.wantPageNums)
			}
			for i := range nums {
				if nums[i] != tt.wantPageNums[i] {
					t.Fatalf("page window = %v, want %v", nums, tt.wantPageNums)
				}
			}
			wantCurrent := tt.page
			if wantCurrent <= 0 {
				wantCurrent = 1
			}
			if wantCurrent <= tt.wantTotal && current != wantCurrent {
				t.Errorf("current page marker = %d, want %d", current, wantCurrent)
			}
		})
	}
}

func TestPageBounds(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int
		page       int
		pageSize   int
		wantStart  int
		wantEnd    int
	}{
		{name: "first page", totalItems: 45, page: 1, pageSize: 20, wantStart: 0, wantEnd: 20},
		{name: "second page full", totalItems: 45, page: 2, pageSize: 20, wantStart: 20, wantEnd: 40},
		{name: "last partial page", totalItems: 45, page: 3, pageSize: 20, wantStart: 40, wantEnd: 45},
		{name: "out of range page is empty", totalItems: 45, page: 9, pageSize: 20, wantStart: 45, wantEnd: 45},
		{name: "empty collection", totalItems: 0, page: 1, pageSize: 20, wantStart: 0, wantEnd: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PageBounds(tt.totalItems, tt.page, tt.pageSize)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("PageBounds() = (%d,%d), want (%d,%d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
