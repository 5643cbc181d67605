// Package timex 提供与 PostgREST 时间戳兼容的时间类型
// Package timex provides a time type compatible with PostgREST timestamps.
package timex

import (
	"strings"
	"time"
)

// Time wraps time.Time and accepts the timestamp layouts PostgREST emits
// Time 包装 time.Time，接受 PostgREST 输出的各种时间戳格式
type Time time.Time

// PostgREST 会输出带或不带时区、带或不带小数秒的 ISO8601
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*t = Time(time.Time{})
		return nil
	}
	var lastErr error
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			*t = Time(parsed)
			return nil
		}
		lastErr = err
	}
	return lastErr
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Time().UTC().Format(time.RFC3339) + `"`), nil
}

func (t Time) Time() time.Time {
	return time.Time(t)
}

func (t Time) IsZero() bool {
	return t.Time().IsZero()
}

func (t Time) Unix() int64 {
	return t.Time().Unix()
}

func (t Time) Before(u Time) bool {
	return t.Time().Before(u.Time())
}

func (t Time) After(u Time) bool {
	return t.Time().After(u.Time())
}

// Format formats in UTC with the given layout
// Format 以 UTC 格式化
func (t Time) Format(layout string) string {
	return t.Time().UTC().Format(layout)
}

// DateKey 返回 UTC 日期 YYYY-MM-DD
func (t Time) DateKey() string {
	return t.Time().UTC().Format("2006-01-02")
}

// MonthKey 返回 "<年份> <英文月份>"
func (t Time) MonthKey() string {
	return t.Time().UTC().Format("2006 January")
}

// Display 返回站点展示用日期，如 "2 January 2006"
func (t Time) Display() string {
	return t.Time().UTC().Format("2 January 2006")
}

// RFC1123 返回 RSS pubDate 使用的格式
func (t Time) RFC1123() string {
	return t.Time().UTC().Format(time.RFC1123Z)
}
