package timex

import (
	"testing"
	"time"
)

func TestTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "rfc3339 with zone",
			input: `"2024-01-05T10:30:00Z"`,
			want:  time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "postgrest without zone",
			input: `"2024-01-05T10:30:00"`,
			want:  time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "postgrest fractional seconds",
			input: `"2024-01-05T10:30:00.123456"`,
			want:  time.Date(2024, 1, 5, 10, 30, 0, 123456000, time.UTC),
		},
		{
			name:  "date only",
			input: `"2024-01-05"`,
			want:  time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "null",
			input: `null`,
			want:  time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tx Time
			if err := tx.UnmarshalJSON([]byte(tt.input)); err != nil {
				t.Fatalf("UnmarshalJSON(%s) error: %v", tt.input, err)
			}
			if !tx.Time().Equal(tt.want) {
				t.Errorf("UnmarshalJSON(%s) = %v, want %v", tt.input, tx.Time(), tt.want)
			}
		})
	}
}

func TestTime_Keys(t *testing.T) {
	tx := Time(time.Date(2024, 1, 5, 23, 30, 0, 0, time.UTC))

	if got := tx.DateKey(); got != "2024-01-05" {
		t.Errorf("DateKey() = %q, want %q", got, "2024-01-05")
	}
	if got := tx.MonthKey(); got != "2024 January" {
		t.Errorf("MonthKey() = %q, want %q", got, "2024 January")
	}
	if got := tx.Display(); got != "5 January 2024" {
		t.Errorf("Display() = %q, want %q", got, "5 January 2024")
	}
}

func TestTime_DateKeyUsesUTC(t *testing.T) {
	// 东八区的 1月6日 早晨 02:00 对应 UTC 1月5日
	loc := time.FixedZone("UTC+8", 8*3600)
	tx := Time(time.Date(2024, 1, 6, 2, 0, 0, 0, loc))

	if got := tx.DateKey(); got != "2024-01-05" {
		t.Errorf("DateKey() = %q, want UTC date %q", got, "2024-01-05")
	}
}
