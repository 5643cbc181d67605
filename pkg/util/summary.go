package util

import (
	"regexp"
	"strings"
)

// DefaultSummaryLength 摘要默认最大长度
const DefaultSummaryLength = 160

var (
	htmlTagRegex      = regexp.MustCompile(`<[^>]*>`)
	markdownPunctuation = strings.NewReplacer(
		"#", "", "*", "", "_", "", "`", "", "[", "", "]", "",
	)
)

// MetaDescription derives a plain-text, length-bounded preview from
// HTML/Markdown content. Tags are replaced by spaces, stray angle brackets
// and a small set of markdown markers removed, whitespace collapsed. When
// the cleaned text exceeds maxLength it is cut to maxLength-3 characters
// and an ellipsis appended. Empty input yields "".
// MetaDescription 从 HTML/Markdown 内容派生纯文本且限长的摘要。
// 标签替换为空格，残留尖括号与少量 markdown 记号被移除，空白折叠。
// 超出 maxLength 时截断到 maxLength-3 并追加省略号。空输入返回空串。
func MetaDescription(text string, maxLength int) string {
	if text == "" {
		return ""
	}
	// 截断公式为 maxLength-3，过小的上限退回默认值
	if maxLength <= 3 {
		maxLength = DefaultSummaryLength
	}

	clean := htmlTagRegex.ReplaceAllString(text, " ")
	clean = strings.ReplaceAll(clean, "<", "")
	clean = strings.ReplaceAll(clean, ">", "")
	clean = markdownPunctuation.Replace(clean)
	clean = strings.Join(strings.Fields(clean), " ")

	runes := []rune(clean)
	if len(runes) <= maxLength {
		return clean
	}
	return strings.TrimSpace(string(runes[:maxLength-3])) + "..."
}
