package service

import (
	"github.com/hellodata/notes-web/internal/domain"
)

// NoteGroup 按展示键分桶的一组笔记
// NoteGroup is one display bucket of notes
type NoteGroup struct {
	Key   string
	Notes []*domain.Note
}

// groupNotes partitions notes into ordered buckets. Bucket order is the
// first-occurrence order of keys while scanning the input, not calendar
// order: callers wanting chronological buckets pre-sort the input, which
// every repository query already does via order=created_time.desc.
// groupNotes 将笔记划分为有序分桶。分桶顺序是扫描输入时键首次出现的顺序，
// 不是日历顺序：需要按时间排列时由调用方预排序，
// 仓储查询均已使用 order=created_time.desc。
func groupNotes(notes []*domain.Note, keyOf func(*domain.Note) string) []*NoteGroup {
	var groups []*NoteGroup
	index := make(map[string]*NoteGroup)

	for _, note := range notes {
		key := keyOf(note)
		group, ok := index[key]
		if !ok {
			group = &NoteGroup{Key: key}
			index[key] = group
			groups = append(groups, group)
		}
		group.Notes = append(group.Notes, note)
	}
	return groups
}

// GroupNotesByDate 按 UTC 日历日分桶，键为 YYYY-MM-DD
func GroupNotesByDate(notes []*domain.Note) []*NoteGroup {
	return groupNotes(notes, func(n *domain.Note) string {
		return n.CreatedTime.DateKey()
	})
}

// GroupNotesByMonth 按月份分桶，键为 "<年份> <英文月份>"
func GroupNotesByMonth(notes []*domain.Note) []*NoteGroup {
	return groupNotes(notes, func(n *domain.Note) string {
		return n.CreatedTime.MonthKey()
	})
}

// TagsOf returns the distinct tags across notes in first-seen order
// TagsOf 返回所有笔记的去重标签，按首次出现顺序
func TagsOf(notes []*domain.Note) []string {
	seen := make(map[string]bool)
	tags := []string{}
	for _, note := range notes {
		for _, tag := range note.Tags {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags
}

// FilterByTag returns the notes carrying tag. An empty tag is the identity
// transform. The input is never mutated.
// FilterByTag 返回带有该标签的笔记。空标签为恒等变换。不修改输入。
func FilterByTag(notes []*domain.Note, tag string) []*domain.Note {
	if tag == "" {
		return notes
	}
	filtered := make([]*domain.Note, 0, len(notes))
	for _, note := range notes {
		if note.HasTag(tag) {
			filtered = append(filtered, note)
		}
	}
	return filtered
}
