package util

import "testing"

func TestMetaDescription(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		maxLength int
		want      string
	}{
		{
			name:      "short text unchanged",
			text:      "aaaabbbb",
			maxLength: 10,
			want:      "aaaabbbb",
		},
		{
			name:      "long text truncated with ellipsis",
			text:      "aaaabbbbccccddddeeee",
			maxLength: 10,
			want:      "aaaabbb...",
		},
		{
			name:      "tiny limit falls back to the default length",
			text:      "aaaabbbbccccdddd",
			maxLength: 2,
			want:      "aaaabbbbccccdddd",
		},
		{
			name:      "zero limit falls back to the default length",
			text:      "aaaabbbbccccdddd",
			maxLength: 0,
			want:      "aaaabbbbccccdddd",
		},
		{
			name:      "html tags become word boundaries",
			text:      "<p>Hello</p><p>world</p>",
			maxLength: 160,
			want:      "Hello world",
		},
		{
			name:      "stray angle brackets removed",
			text:      "a < b > c",
			maxLength: 160,
			want:      "a b c",
		},
		{
			name:      "markdown punctuation stripped",
			text:      "# Title with *bold* and `code` and [link]",
			maxLength: 160,
			want:      "Title with bold and code and link",
		},
		{
			name:      "whitespace collapsed",
			text:      "too   many\n\nspaces",
			maxLength: 160,
			want:      "too many spaces",
		},
		{
			name:      "empty input",
			text:      "",
			maxLength: 160,
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MetaDescription(tt.text, tt.maxLength); got != tt.want {
				t.Errorf("MetaDescription(%q, %d) = %q, want %q", tt.text, tt.maxLength, got, tt.want)
			}
		})
	}
}

func TestMetaDescription_ExactTruncationLength(t *testing.T) {
	// 20 个字母截断到 10：7 个字符加省略号
	got := MetaDescription("abcdefghijklmnopqrst", 10)
	if len(got) != 10 {
		t.Errorf("len = %d, want 10 (%q)", len(got), got)
	}
	if got[len(got)-3:] != "..." {
		t.Errorf("result %q does not end with ellipsis", got)
	}
}
