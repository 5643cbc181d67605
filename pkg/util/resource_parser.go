package util

import "regexp"

// ResourceRef represents an embedded resource reference extracted from a note body
// ResourceRef 表示从笔记正文中提取的内嵌资源引用
type ResourceRef struct {
	Raw        string // The full matched span // 完整匹配文本
	Filename   string // Image filename, e.g. "chart.png" // 图片文件名
	Ext        string // File extension without dot // 不带点的扩展名
	ResourceID string // Hex resource id after ":/" // ":/" 之后的十六进制资源 id
}

// resourceRefRegex matches markdown image references pointing at an internal resource:
// ![<filename>.(png|jpg|jpeg)](:/<hex-id>)
// Group 1: filename // 文件名
// Group 2: extension // 扩展名
// Group 3: hex id // 十六进制 id
// resourceRefRegex 匹配指向内部资源的 markdown 图片引用
var resourceRefRegex = regexp.MustCompile(`!\[([^\]]+\.(png|jpg|jpeg))\]\(:/([a-f0-9]+)\)`)

// ParseResourceRefs extracts embedded resource references from content.
// The scan is decoupled from any replacement so the matching rule stays
// testable without I/O. Every occurrence is returned, duplicates included,
// in the order they appear.
// ParseResourceRefs 从内容中提取内嵌资源引用。
// 扫描与替换解耦，匹配规则无需 I/O 即可测试。
// 按出现顺序返回每一次匹配，包含重复项。
func ParseResourceRefs(content string) []ResourceRef {
	if content == "" {
		return nil
	}

	matches := resourceRefRegex.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	refs := make([]ResourceRef, 0, len(matches))
	for _, match := range matches {
		refs = append(refs, ResourceRef{
			Raw:        match[0],
			Filename:   match[1],
			Ext:        match[2],
			ResourceID: match[3],
		})
	}
	return refs
}
