package service

import (
	"reflect"
	"testing"
	"time"

	"github.com/hellodata/notes-web/internal/domain"
	"github.com/hellodata/notes-web/pkg/timex"
)

func noteAt(id string, created time.Time, tags ...string) *domain.Note {
	return &domain.Note{
		NoteID:      id,
		Title:       "Note " + id,
		CreatedTime: timex.Time(created),
		Tags:        tags,
	}
}

func TestGroupNotesByMonth(t *testing.T) {
	n1 := noteAt("n1", time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC))
	n2 := noteAt("n2", time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC))
	n3 := noteAt("n3", time.Date(2023, 12, 31, 10, 0, 0, 0, time.UTC))

	groups := GroupNotesByMonth([]*domain.Note{n1, n2, n3})

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Key != "2024 January" {
		t.Errorf("first key = %q, want %q", groups[0].Key, "2024 January")
	}
	if len(groups[0].Notes) != 2 || groups[0].Notes[0] != n1 || groups[0].Notes[1] != n2 {
		t.Errorf("january bucket lost input order: %+v", groups[0].Notes)
	}
	if groups[1].Key != "2023 December" {
		t.Errorf("second key = %q, want %q", groups[1].Key, "2023 December")
	}
}

func TestGroupNotesByDate(t *testing.T) {
	n1 := noteAt("n1", time.Date(2024, 1, 5, 23, 0, 0, 0, time.UTC))
	n2 := noteAt("n2", time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC))
	n3 := noteAt("n3", time.Date(2024, 1, 4, 8, 0, 0, 0, time.UTC))

	groups := GroupNotesByDate([]*domain.Note{n1, n2, n3})

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Key != "2024-01-05" || groups[1].Key != "2024-01-04" {
		t.Errorf("keys = %q,%q", groups[0].Key, groups[1].Key)
	}
	if len(groups[0].Notes) != 2 {
		t.Errorf("first bucket size = %d, want 2", len(groups[0].Notes))
	}
}

func TestGroupNotes_BucketOrderFollowsInput(t *testing.T) {
	// 输入未按时间排序时，分桶顺序跟随输入而非日历
	older := noteAt("old", time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC))
	newer := noteAt("new", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	groups := GroupNotesByMonth([]*domain.Note{older, newer})

	if groups[0].Key != "2023 June" {
		t.Errorf("first bucket = %q, want input-order key %q", groups[0].Key, "2023 June")
	}
}

func TestTagsOf(t *testing.T) {
	notes := []*domain.Note{
		noteAt("n1", time.Now(), "go", "web"),
		noteAt("n2", time.Now(), "web", "api"),
		noteAt("n3", time.Now()),
	}

	got := TagsOf(notes)
	want := []string{"go", "web", "api"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TagsOf() = %v, want %v", got, want)
	}

	if got := TagsOf(nil); len(got) != 0 {
		t.Errorf("TagsOf(nil) = %v, want empty", got)
	}
}

func TestFilterByTag(t *testing.T) {
	n1 := noteAt("n1", time.Now(), "go")
	n2 := noteAt("n2", time.Now(), "php")
	notes := []*domain.Note{n1, n2}

	if got := FilterByTag(notes, ""); !reflect.DeepEqual(got, notes) {
		t.Errorf("empty tag should be identity, got %v", got)
	}

	got := FilterByTag(notes, "go")
	if len(got) != 1 || got[0] != n1 {
		t.Errorf("FilterByTag(go) = %v, want [n1]", got)
	}

	// 区分大小写
	if got := FilterByTag(notes, "GO"); len(got) != 0 {
		t.Errorf("tag match must be case-sensitive, got %v", got)
	}

	// 原切片不被修改
	if len(notes) != 2 || notes[0] != n1 || notes[1] != n2 {
		t.Errorf("input mutated: %v", notes)
	}
}
